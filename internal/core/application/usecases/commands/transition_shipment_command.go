package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrTransitionShipmentCommandIsNotConstructed = errors.New(
	"TransitionShipmentCommand must be created via NewTransitionShipmentCommand constructor",
)

// TransitionShipmentCommand moves a shipment along the status adjacency
// table. Only the assigned driver or an admin may issue it.
type TransitionShipmentCommand struct { //nolint:recvcheck //using for validation
	principal  identity.Principal
	shipmentID kernel.UUID
	status     shipment.Status
	notes      string
	location   *kernel.Coordinates

	guard guard.ConstructorGuard
}

func NewTransitionShipmentCommand(
	principal identity.Principal,
	shipmentID kernel.UUID,
	status string,
	notes string,
	location *kernel.Coordinates,
) (TransitionShipmentCommand, error) {
	cmd := TransitionShipmentCommand{
		notes:    strings.TrimSpace(notes),
		location: location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setShipmentID(shipmentID),
		cmd.setStatus(status),
		cmd.setLocation(location),
	); err != nil {
		return TransitionShipmentCommand{}, err
	}

	return cmd, nil
}

func (c TransitionShipmentCommand) Validate() error {
	return c.guard.Validate(ErrTransitionShipmentCommandIsNotConstructed)
}

func (c TransitionShipmentCommand) Principal() identity.Principal { return c.principal }
func (c TransitionShipmentCommand) ShipmentID() kernel.UUID       { return c.shipmentID }
func (c TransitionShipmentCommand) Status() shipment.Status       { return c.status }
func (c TransitionShipmentCommand) Notes() string                 { return c.notes }
func (c TransitionShipmentCommand) Location() *kernel.Coordinates { return c.location }
func (c TransitionShipmentCommand) ActivityTarget() string        { return c.shipmentID.String() }

func (c *TransitionShipmentCommand) setPrincipal(p identity.Principal) error {
	if err := validatePrincipal(p); err != nil {
		return err
	}
	c.principal = p
	return nil
}

func (c *TransitionShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *TransitionShipmentCommand) setStatus(raw string) error {
	status, err := shipment.ParseStatus(raw)
	if err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *TransitionShipmentCommand) setLocation(location *kernel.Coordinates) error {
	if location == nil {
		return nil
	}
	return location.Validate()
}
