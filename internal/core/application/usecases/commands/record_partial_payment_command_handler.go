package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/payment"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// RecordPartialPaymentCommandHandler records money received against a
// payment.
//
// A command without a transaction id is charged through the payment gateway
// when one is configured. The balance is checked before charging so an
// oversized amount never reaches the gateway. Gateway charges need the
// caller's idempotency key: a request that lost a version race is retried
// with the same key, and the gateway returns the original charge instead of
// taking the money again. A charge that is already on the ledger is not
// recorded twice.
type RecordPartialPaymentCommandHandler struct {
	uowFactory     PaymentUoWFactory
	paymentGateway ports.PaymentGateway
	gateway        services.AccessGateway
}

func NewRecordPartialPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	paymentGateway ports.PaymentGateway,
) RecordPartialPaymentCommandHandler {
	return RecordPartialPaymentCommandHandler{
		uowFactory:     uowFactory,
		paymentGateway: paymentGateway,
		gateway:        services.NewAccessGateway(),
	}
}

func (h RecordPartialPaymentCommandHandler) Handle(
	ctx context.Context,
	cmd RecordPartialPaymentCommand,
) (*payment.Payment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	principal := cmd.Principal()
	if err := errors.Join(
		h.gateway.RequireType(principal, identity.PrincipalAdmin),
		h.gateway.Require(principal, identity.ModulePayments, identity.ActionUpdate),
	); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PaymentRepository()
	p, err := repo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return nil, err
	}

	params := cmd.Params()
	if hasPartialTransaction(p, params.TransactionID) {
		return p, nil
	}
	remaining := p.RemainingBalance()
	if params.Amount > remaining.Amount() {
		return nil, errs.NewInsufficientBalanceError(params.Amount, remaining.Amount())
	}

	if params.TransactionID == "" && h.paymentGateway != nil {
		if cmd.IdempotencyKey() == "" {
			return nil, errs.NewValueIsRequiredError("idempotencyKey")
		}
		params.TransactionID, err = h.paymentGateway.Charge(ctx, ports.ChargeRequest{
			Amount:         params.Amount,
			Currency:       p.Amount().Currency(),
			Description:    fmt.Sprintf("Partial payment for shipment %s", p.ShipmentID()),
			IdempotencyKey: partialChargeKey(p.ID().String(), cmd.IdempotencyKey()),
			Metadata: map[string]string{
				"payment_id":      p.ID().String(),
				"shipment_id":     p.ShipmentID().String(),
				"idempotency_key": cmd.IdempotencyKey(),
			},
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPaymentGatewayFailed, err)
		}
	}

	if hasPartialTransaction(p, params.TransactionID) {
		return p, nil
	}

	if _, err = p.RecordPartialPayment(params, principal.Actor(), time.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}

func partialChargeKey(paymentID, key string) string {
	return "partial-" + paymentID + "-" + key
}

func hasPartialTransaction(p *payment.Payment, transactionID string) bool {
	if transactionID == "" {
		return false
	}
	for _, partial := range p.PartialPayments() {
		if partial.Status == payment.EntryCompleted && partial.TransactionID == transactionID {
			return true
		}
	}
	return false
}
