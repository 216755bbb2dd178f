package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrCancelShipmentCommandIsNotConstructed = errors.New(
	"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
)

// CancelShipmentCommand is the client and admin path to the cancelled
// status.
type CancelShipmentCommand struct { //nolint:recvcheck //using for validation
	principal  identity.Principal
	shipmentID kernel.UUID
	reason     shipment.CancellationReason
	notes      string

	guard guard.ConstructorGuard
}

func NewCancelShipmentCommand(
	principal identity.Principal,
	shipmentID kernel.UUID,
	reason shipment.CancellationReason,
	notes string,
) (CancelShipmentCommand, error) {
	cmd := CancelShipmentCommand{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setShipmentID(shipmentID),
		cmd.setReason(reason),
	); err != nil {
		return CancelShipmentCommand{}, err
	}

	return cmd, nil
}

func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}

func (c CancelShipmentCommand) Principal() identity.Principal       { return c.principal }
func (c CancelShipmentCommand) ShipmentID() kernel.UUID             { return c.shipmentID }
func (c CancelShipmentCommand) Reason() shipment.CancellationReason { return c.reason }
func (c CancelShipmentCommand) Notes() string                       { return c.notes }
func (c CancelShipmentCommand) ActivityTarget() string              { return c.shipmentID.String() }

func (c *CancelShipmentCommand) setPrincipal(p identity.Principal) error {
	if err := validatePrincipal(p); err != nil {
		return err
	}
	c.principal = p
	return nil
}

func (c *CancelShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *CancelShipmentCommand) setReason(reason shipment.CancellationReason) error {
	if err := reason.Validate(); err != nil {
		return err
	}
	c.reason = reason
	return nil
}
