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

var ErrAddRefundCommandIsNotConstructed = errors.New(
	"AddRefundCommand must be created via NewAddRefundCommand constructor",
)

// AddRefundCommand appends a pending refund to a completed payment.
type AddRefundCommand struct { //nolint:recvcheck //using for validation
	principal identity.Principal
	paymentID kernel.UUID
	params    payment.RefundParams

	guard guard.ConstructorGuard
}

func NewAddRefundCommand(
	principal identity.Principal,
	paymentID kernel.UUID,
	amount int64,
	reason payment.RefundReason,
	method payment.Method,
	notes string,
) (AddRefundCommand, error) {
	cmd := AddRefundCommand{guard: guard.NewConstructorGuard()}
	cmd.params.Notes = strings.TrimSpace(notes)

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setPaymentID(paymentID),
		cmd.setAmount(amount),
		cmd.setReason(reason),
		cmd.setMethod(method),
	); err != nil {
		return AddRefundCommand{}, err
	}

	return cmd, nil
}

func (c AddRefundCommand) Validate() error {
	return c.guard.Validate(ErrAddRefundCommandIsNotConstructed)
}

func (c AddRefundCommand) Principal() identity.Principal { return c.principal }
func (c AddRefundCommand) PaymentID() kernel.UUID        { return c.paymentID }
func (c AddRefundCommand) Params() payment.RefundParams  { return c.params }
func (c AddRefundCommand) ActivityTarget() string        { return c.paymentID.String() }

func (c *AddRefundCommand) setPrincipal(p identity.Principal) error {
	if err := validatePrincipal(p); err != nil {
		return err
	}
	c.principal = p
	return nil
}

func (c *AddRefundCommand) setPaymentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.paymentID = id
	return nil
}

func (c *AddRefundCommand) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 1, "unbounded")
	}
	c.params.Amount = amount
	return nil
}

func (c *AddRefundCommand) setReason(reason payment.RefundReason) error {
	if err := reason.Validate(); err != nil {
		return err
	}
	c.params.Reason = reason
	return nil
}

func (c *AddRefundCommand) setMethod(method payment.Method) error {
	if method == "" {
		return nil
	}
	if err := method.Validate(); err != nil {
		return err
	}
	c.params.Method = method
	return nil
}
