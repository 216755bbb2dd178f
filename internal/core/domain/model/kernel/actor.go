package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// ActorKind tags who performed a mutation.
type ActorKind int

const (
	ActorUnknown ActorKind = iota
	ActorDriver
	ActorClient
	ActorAdmin
	ActorSystem
)

var actorKindStrings = map[ActorKind]string{
	ActorDriver: "driver",
	ActorClient: "client",
	ActorAdmin:  "admin",
	ActorSystem: "system",
}

func (k ActorKind) String() string {
	if s, ok := actorKindStrings[k]; ok {
		return s
	}
	return "unknown"
}

func ParseActorKind(s string) (ActorKind, error) {
	for k, v := range actorKindStrings {
		if v == s {
			return k, nil
		}
	}
	return ActorUnknown, errs.NewValueIsInvalidErrorWithCause("actorKind", fmt.Errorf("%q is not a valid actor kind", s))
}

// Actor is a tagged variant: DriverActor(id), ClientActor(id), AdminActor(id)
// or SystemActor. The zero value is invalid.
type Actor struct {
	kind ActorKind
	id   UUID
}

func DriverActor(id UUID) Actor { return Actor{kind: ActorDriver, id: id} }
func ClientActor(id UUID) Actor { return Actor{kind: ActorClient, id: id} }
func AdminActor(id UUID) Actor  { return Actor{kind: ActorAdmin, id: id} }
func SystemActor() Actor        { return Actor{kind: ActorSystem} }

// RestoreActor rebuilds a persisted actor from its tag and id.
func RestoreActor(kind string, id string) (Actor, error) {
	k, err := ParseActorKind(kind)
	if err != nil {
		return Actor{}, err
	}
	if k == ActorSystem {
		return SystemActor(), nil
	}
	uid, err := UUIDFromString(id)
	if err != nil {
		return Actor{}, err
	}
	a := Actor{kind: k, id: uid}
	return a, a.Validate()
}

func (a Actor) Validate() error {
	switch a.kind {
	case ActorSystem:
		return nil
	case ActorDriver, ActorClient, ActorAdmin:
		return a.id.Validate()
	case ActorUnknown:
	}
	return errs.NewValueIsRequiredError("actor")
}

func (a Actor) Kind() ActorKind {
	return a.kind
}

// ID returns false for SystemActor.
func (a Actor) ID() (UUID, bool) {
	if a.kind == ActorSystem || a.kind == ActorUnknown {
		return UUID{}, false
	}
	return a.id, true
}

func (a Actor) Is(kind ActorKind, id UUID) bool {
	return a.kind == kind && a.id.IsEqual(id)
}

func (a Actor) String() string {
	if id, ok := a.ID(); ok {
		return a.kind.String() + ":" + id.String()
	}
	return a.kind.String()
}

// ActorMatcher holds one branch per actor kind; MatchActor panics if a branch
// is missing so that new kinds surface immediately in tests.
type ActorMatcher[T any] struct {
	Driver func(id UUID) T
	Client func(id UUID) T
	Admin  func(id UUID) T
	System func() T
}

func MatchActor[T any](a Actor, m ActorMatcher[T]) T {
	switch a.kind {
	case ActorDriver:
		return m.Driver(a.id)
	case ActorClient:
		return m.Client(a.id)
	case ActorAdmin:
		return m.Admin(a.id)
	case ActorSystem:
		return m.System()
	case ActorUnknown:
	}
	panic(fmt.Sprintf("kernel: unmatched actor kind %d", a.kind))
}
