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

var ErrRecordPartialPaymentCommandIsNotConstructed = errors.New(
	"RecordPartialPaymentCommand must be created via NewRecordPartialPaymentCommand constructor",
)

// RecordPartialPaymentCommand applies a sub-payment against the remaining
// balance.
type RecordPartialPaymentCommand struct { //nolint:recvcheck //using for validation
	principal identity.Principal
	paymentID kernel.UUID
	params    payment.PartialParams
	// idempotencyKey is chosen by the caller and reused on retries.
	idempotencyKey string

	guard guard.ConstructorGuard
}

func NewRecordPartialPaymentCommand(
	principal identity.Principal,
	paymentID kernel.UUID,
	amount int64,
	method payment.Method,
	transactionID string,
	idempotencyKey string,
) (RecordPartialPaymentCommand, error) {
	cmd := RecordPartialPaymentCommand{guard: guard.NewConstructorGuard()}
	cmd.params.TransactionID = strings.TrimSpace(transactionID)
	cmd.idempotencyKey = strings.TrimSpace(idempotencyKey)

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setPaymentID(paymentID),
		cmd.setAmount(amount),
		cmd.setMethod(method),
	); err != nil {
		return RecordPartialPaymentCommand{}, err
	}

	return cmd, nil
}

func (c RecordPartialPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPartialPaymentCommandIsNotConstructed)
}

func (c RecordPartialPaymentCommand) Principal() identity.Principal { return c.principal }
func (c RecordPartialPaymentCommand) PaymentID() kernel.UUID        { return c.paymentID }
func (c RecordPartialPaymentCommand) Params() payment.PartialParams { return c.params }
func (c RecordPartialPaymentCommand) IdempotencyKey() string        { return c.idempotencyKey }
func (c RecordPartialPaymentCommand) ActivityTarget() string        { return c.paymentID.String() }

func (c *RecordPartialPaymentCommand) setPrincipal(p identity.Principal) error {
	if err := validatePrincipal(p); err != nil {
		return err
	}
	c.principal = p
	return nil
}

func (c *RecordPartialPaymentCommand) setPaymentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.paymentID = id
	return nil
}

func (c *RecordPartialPaymentCommand) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 1, "unbounded")
	}
	c.params.Amount = amount
	return nil
}

func (c *RecordPartialPaymentCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.params.Method = method
	return nil
}
