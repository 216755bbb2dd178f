package shipment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is the lifecycle state of a shipment.
//
// Allowed transitions:
//
//	pending          -> assigned, cancelled
//	assigned         -> picked, cancelled
//	picked           -> packed, processing, failed
//	packed           -> processing, in_transit
//	processing       -> in_transit, failed
//	in_transit       -> out_for_delivery, delivered, failed
//	out_for_delivery -> delivered, failed, returned
//	failed           -> processing, cancelled
//	delivered, returned, cancelled are terminal
type Status int

const (
	// Unknown (0) catches uninitialized values.
	Unknown Status = iota
	Pending
	Assigned
	Picked
	Packed
	Processing
	InTransit
	OutForDelivery
	Delivered
	Failed
	Returned
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Assigned:       "assigned",
		Picked:         "picked",
		Packed:         "packed",
		Processing:     "processing",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Failed:         "failed",
		Returned:       "returned",
		Cancelled:      "cancelled",
	}
}

// transitions is the adjacency table. A status missing from the map, or
// mapped to an empty set, is terminal.
//
//nolint:exhaustive // terminal and unknown statuses have no outgoing edges
var transitions = map[Status][]Status{
	Pending:        {Assigned, Cancelled},
	Assigned:       {Picked, Cancelled},
	Picked:         {Packed, Processing, Failed},
	Packed:         {Processing, InTransit},
	Processing:     {InTransit, Failed},
	InTransit:      {OutForDelivery, Delivered, Failed},
	OutForDelivery: {Delivered, Failed, Returned},
	Failed:         {Processing, Cancelled},
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		Pending, Assigned, Picked, Packed, Processing, InTransit,
		OutForDelivery, Delivered, Failed, Returned, Cancelled,
	}
}

// ParseStatus accepts the snake_case wire form, e.g. "out_for_delivery".
func ParseStatus(s string) (Status, error) {
	for st, str := range getStatusStrings() {
		if st != Unknown && str == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid shipment status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// Next returns the statuses reachable from s in one step.
func (s Status) Next() []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

func (s Status) CanTransitionTo(to Status) bool {
	for _, candidate := range transitions[s] {
		if candidate == to {
			return true
		}
	}
	return false
}

// Transition returns to when the edge s -> to exists, or an
// InvalidTransitionError naming both statuses.
func (s Status) Transition(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(to) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), to.String())
	}
	return to, nil
}
