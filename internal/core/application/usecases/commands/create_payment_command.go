package commands

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/payment"
	"logistics/internal/pkg/guard"
)

var ErrCreatePaymentCommandIsNotConstructed = errors.New(
	"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor",
)

// ChargeInput is one raw line of the itemized charge list, in minor units.
type ChargeInput struct {
	Type        payment.ChargeType
	Description string
	Amount      int64
	Quantity    int
	Rate        int64
}

// CreatePaymentInput is the raw admin request. An empty Terms falls back to
// the client's billing terms and then to net_30.
type CreatePaymentInput struct {
	ShipmentID kernel.UUID
	Amount     payment.AmountParams
	Charges    []ChargeInput
	Method     payment.Method
	Terms      payment.Terms
	DueDate    *time.Time
	Notes      string
}

// CreatePaymentCommand opens the single payment of a shipment.
type CreatePaymentCommand struct { //nolint:recvcheck //using for validation
	principal  identity.Principal
	shipmentID kernel.UUID
	amount     payment.Amount
	charges    []payment.Charge
	method     payment.Method
	terms      payment.Terms
	dueDate    *time.Time
	notes      string

	guard guard.ConstructorGuard
}

func NewCreatePaymentCommand(principal identity.Principal, in CreatePaymentInput) (CreatePaymentCommand, error) {
	cmd := CreatePaymentCommand{
		dueDate: in.DueDate,
		notes:   strings.TrimSpace(in.Notes),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setShipmentID(in.ShipmentID),
		cmd.setAmount(in.Amount),
		cmd.setCharges(in.Charges, in.Amount.Currency),
		cmd.setMethod(in.Method),
		cmd.setTerms(in.Terms),
	); err != nil {
		return CreatePaymentCommand{}, err
	}

	return cmd, nil
}

func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

func (c CreatePaymentCommand) Principal() identity.Principal { return c.principal }
func (c CreatePaymentCommand) ShipmentID() kernel.UUID       { return c.shipmentID }
func (c CreatePaymentCommand) Terms() payment.Terms          { return c.terms }
func (c CreatePaymentCommand) ActivityTarget() string        { return c.shipmentID.String() }

// Params builds the aggregate input once the client and its terms are known.
func (c CreatePaymentCommand) Params(clientID kernel.UUID, terms payment.Terms) payment.CreateParams {
	return payment.CreateParams{
		ShipmentID: c.shipmentID,
		ClientID:   clientID,
		Amount:     c.amount,
		Charges:    c.charges,
		Method:     c.method,
		Terms:      terms,
		DueDate:    c.dueDate,
		Notes:      c.notes,
		CreatedBy:  c.principal.Actor(),
	}
}

func (c *CreatePaymentCommand) setPrincipal(p identity.Principal) error {
	if err := validatePrincipal(p); err != nil {
		return err
	}
	c.principal = p
	return nil
}

func (c *CreatePaymentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *CreatePaymentCommand) setAmount(p payment.AmountParams) error {
	amount, err := payment.NewAmount(p)
	if err != nil {
		return err
	}
	c.amount = amount
	return nil
}

func (c *CreatePaymentCommand) setCharges(inputs []ChargeInput, currency string) error {
	var errList []error
	charges := make([]payment.Charge, 0, len(inputs))
	for i, in := range inputs {
		charge, err := payment.NewCharge(i, in.Type, in.Description, in.Amount, in.Rate, in.Quantity, currency)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		charges = append(charges, charge)
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	c.charges = charges
	return nil
}

func (c *CreatePaymentCommand) setMethod(m payment.Method) error {
	if m == "" {
		return nil
	}
	if err := m.Validate(); err != nil {
		return err
	}
	c.method = m
	return nil
}

func (c *CreatePaymentCommand) setTerms(t payment.Terms) error {
	if t == "" {
		return nil
	}
	if err := t.Validate(); err != nil {
		return err
	}
	c.terms = t
	return nil
}
