package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrRateShipmentCommandIsNotConstructed = errors.New(
	"RateShipmentCommand must be created via NewRateShipmentCommand constructor",
)

// RateShipmentCommand fills the rating slot of a delivered shipment.
type RateShipmentCommand struct { //nolint:recvcheck //using for validation
	principal  identity.Principal
	shipmentID kernel.UUID
	score      int
	comment    string

	guard guard.ConstructorGuard
}

func NewRateShipmentCommand(principal identity.Principal, shipmentID kernel.UUID, score int, comment string) (RateShipmentCommand, error) {
	cmd := RateShipmentCommand{
		comment: strings.TrimSpace(comment),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setShipmentID(shipmentID),
		cmd.setScore(score),
	); err != nil {
		return RateShipmentCommand{}, err
	}

	return cmd, nil
}

func (c RateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRateShipmentCommandIsNotConstructed)
}

func (c RateShipmentCommand) Principal() identity.Principal { return c.principal }
func (c RateShipmentCommand) ShipmentID() kernel.UUID       { return c.shipmentID }
func (c RateShipmentCommand) Score() int                    { return c.score }
func (c RateShipmentCommand) Comment() string               { return c.comment }

func (c *RateShipmentCommand) setPrincipal(p identity.Principal) error {
	if err := validatePrincipal(p); err != nil {
		return err
	}
	c.principal = p
	return nil
}

func (c *RateShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *RateShipmentCommand) setScore(score int) error {
	if score < shipment.MinRatingScore || score > shipment.MaxRatingScore {
		return errs.NewValueIsOutOfRangeError("score", score, shipment.MinRatingScore, shipment.MaxRatingScore)
	}
	c.score = score
	return nil
}
