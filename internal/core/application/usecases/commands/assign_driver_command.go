package commands

import (
	"errors"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand asks the assignment coordinator to attach a driver to a
// pending shipment.
//
// Example:
//
//	cmd, _ := NewAssignDriverCommand(admin, shipmentID, driverID)
//	s, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrIneligibleDriver):
//	    // driver or KYC not approved
//	case errors.Is(err, errs.ErrInvalidState):
//	    // shipment is no longer pending
//	}
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	principal  identity.Principal
	shipmentID kernel.UUID
	driverID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignDriverCommand(principal identity.Principal, shipmentID, driverID kernel.UUID) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setShipmentID(shipmentID),
		cmd.setDriverID(driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

func (c AssignDriverCommand) Principal() identity.Principal { return c.principal }
func (c AssignDriverCommand) ShipmentID() kernel.UUID       { return c.shipmentID }
func (c AssignDriverCommand) DriverID() kernel.UUID         { return c.driverID }
func (c AssignDriverCommand) ActivityTarget() string        { return c.shipmentID.String() }

func (c *AssignDriverCommand) setPrincipal(p identity.Principal) error {
	if err := validatePrincipal(p); err != nil {
		return err
	}
	c.principal = p
	return nil
}

func (c *AssignDriverCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *AssignDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.driverID = id
	return nil
}
