package kernel

import "time"

// DomainEvent is recorded by an aggregate during a mutation and published
// after the enclosing unit of work commits.
type DomainEvent interface {
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
}

// EventRecorder is embedded by aggregates that emit domain events.
type EventRecorder struct {
	events []DomainEvent
}

func (r *EventRecorder) Record(e DomainEvent) {
	r.events = append(r.events, e)
}

// DomainEvents returns recorded events in the order they happened.
func (r *EventRecorder) DomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(r.events))
	copy(out, r.events)
	return out
}

func (r *EventRecorder) ClearDomainEvents() {
	r.events = nil
}
