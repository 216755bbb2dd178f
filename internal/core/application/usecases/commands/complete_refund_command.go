package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCompleteRefundCommandIsNotConstructed = errors.New(
	"CompleteRefundCommand must be created via NewCompleteRefundCommand constructor",
)

// CompleteRefundCommand settles a pending refund. Without a gateway
// transaction id the refund is sent through the payment gateway, when one is
// configured.
type CompleteRefundCommand struct { //nolint:recvcheck //using for validation
	principal            identity.Principal
	paymentID            kernel.UUID
	refundID             string
	gatewayTransactionID string

	guard guard.ConstructorGuard
}

func NewCompleteRefundCommand(
	principal identity.Principal,
	paymentID kernel.UUID,
	refundID string,
	gatewayTransactionID string,
) (CompleteRefundCommand, error) {
	cmd := CompleteRefundCommand{
		gatewayTransactionID: strings.TrimSpace(gatewayTransactionID),
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setPaymentID(paymentID),
		cmd.setRefundID(refundID),
	); err != nil {
		return CompleteRefundCommand{}, err
	}

	return cmd, nil
}

func (c CompleteRefundCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRefundCommandIsNotConstructed)
}

func (c CompleteRefundCommand) Principal() identity.Principal { return c.principal }
func (c CompleteRefundCommand) PaymentID() kernel.UUID        { return c.paymentID }
func (c CompleteRefundCommand) RefundID() string              { return c.refundID }
func (c CompleteRefundCommand) GatewayTransactionID() string  { return c.gatewayTransactionID }
func (c CompleteRefundCommand) ActivityTarget() string {
	return c.paymentID.String() + "/" + c.refundID
}

func (c *CompleteRefundCommand) setPrincipal(p identity.Principal) error {
	if err := validatePrincipal(p); err != nil {
		return err
	}
	c.principal = p
	return nil
}

func (c *CompleteRefundCommand) setPaymentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.paymentID = id
	return nil
}

func (c *CompleteRefundCommand) setRefundID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("refundId")
	}
	c.refundID = id
	return nil
}
