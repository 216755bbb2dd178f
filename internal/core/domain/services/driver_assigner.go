package services

import (
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// DriverAssigner is the assignment coordinator: it checks driver eligibility
// and then sets the driver and the assigned status on the shipment as one
// step.
//
// Business rules:
//   - the driver must be approved with approved KYC (IneligibleDriverError)
//   - the shipment must be pending (InvalidStateError)
//   - on any error neither the driver reference nor the timeline changes
type DriverAssigner struct{}

func NewDriverAssigner() DriverAssigner {
	return DriverAssigner{}
}

// Assign runs the assignment workflow against already loaded aggregates.
func (DriverAssigner) Assign(s *shipment.Shipment, d *identity.Driver, actor kernel.Actor, now time.Time) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}
	if err := d.CheckEligible(); err != nil {
		return err
	}
	return s.AssignDriver(d.ID(), d.FullName(), actor, now)
}
