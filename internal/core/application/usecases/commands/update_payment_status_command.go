package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/payment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUpdatePaymentStatusCommandIsNotConstructed = errors.New(
	"UpdatePaymentStatusCommand must be created via NewUpdatePaymentStatusCommand constructor",
)

// UpdatePaymentStatusCommand sets processing, completed, failed or
// cancelled directly. Refund statuses are derived and rejected here.
type UpdatePaymentStatusCommand struct { //nolint:recvcheck //using for validation
	principal identity.Principal
	paymentID kernel.UUID
	status    payment.Status
	notes     string

	guard guard.ConstructorGuard
}

func NewUpdatePaymentStatusCommand(
	principal identity.Principal,
	paymentID kernel.UUID,
	status string,
	notes string,
) (UpdatePaymentStatusCommand, error) {
	cmd := UpdatePaymentStatusCommand{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setPaymentID(paymentID),
		cmd.setStatus(status),
	); err != nil {
		return UpdatePaymentStatusCommand{}, err
	}

	return cmd, nil
}

func (c UpdatePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePaymentStatusCommandIsNotConstructed)
}

func (c UpdatePaymentStatusCommand) Principal() identity.Principal { return c.principal }
func (c UpdatePaymentStatusCommand) PaymentID() kernel.UUID        { return c.paymentID }
func (c UpdatePaymentStatusCommand) Status() payment.Status        { return c.status }
func (c UpdatePaymentStatusCommand) Notes() string                 { return c.notes }
func (c UpdatePaymentStatusCommand) ActivityTarget() string        { return c.paymentID.String() }

func (c *UpdatePaymentStatusCommand) setPrincipal(p identity.Principal) error {
	if err := validatePrincipal(p); err != nil {
		return err
	}
	c.principal = p
	return nil
}

func (c *UpdatePaymentStatusCommand) setPaymentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.paymentID = id
	return nil
}

func (c *UpdatePaymentStatusCommand) setStatus(raw string) error {
	status, err := payment.ParseStatus(raw)
	if err != nil {
		return err
	}
	if !status.IsSettable() {
		return errs.NewValueIsInvalidError("status")
	}
	c.status = status
	return nil
}
