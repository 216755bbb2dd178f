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
)

// ErrPaymentGatewayFailed wraps a decline or outage reported by the payment
// gateway.
var ErrPaymentGatewayFailed = errors.New("payment gateway failed")

// CompleteRefundCommandHandler settles a pending refund.
//
// When the command carries no gateway transaction id and a gateway is
// configured, the refund is issued against the latest partial payment that
// has a gateway transaction. A gateway failure marks the refund failed,
// commits that, and returns ErrPaymentGatewayFailed.
type CompleteRefundCommandHandler struct {
	uowFactory     PaymentUoWFactory
	paymentGateway ports.PaymentGateway
	gateway        services.AccessGateway
}

// NewCompleteRefundCommandHandler accepts a nil paymentGateway; refunds are
// then completed as manual settlements.
func NewCompleteRefundCommandHandler(
	uowFactory PaymentUoWFactory,
	paymentGateway ports.PaymentGateway,
) CompleteRefundCommandHandler {
	return CompleteRefundCommandHandler{
		uowFactory:     uowFactory,
		paymentGateway: paymentGateway,
		gateway:        services.NewAccessGateway(),
	}
}

func (h CompleteRefundCommandHandler) Handle(ctx context.Context, cmd CompleteRefundCommand) (*payment.Payment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	principal := cmd.Principal()
	if err := errors.Join(
		h.gateway.RequireType(principal, identity.PrincipalAdmin),
		h.gateway.Require(principal, identity.ModulePayments, identity.ActionRefund),
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

	refund, err := p.CanCompleteRefund(cmd.RefundID())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txnID := cmd.GatewayTransactionID()
	var gatewayErr error
	if txnID == "" && h.paymentGateway != nil {
		if charged := latestGatewayTransaction(p); charged != "" {
			txnID, gatewayErr = h.paymentGateway.Refund(ctx, ports.GatewayRefundRequest{
				TransactionID:  charged,
				Amount:         refund.Amount.Amount(),
				IdempotencyKey: refund.ID,
			})
		}
	}

	if gatewayErr != nil {
		err = p.FailRefund(refund.ID, principal.Actor(), now)
	} else {
		err = p.CompleteRefund(refund.ID, txnID, principal.Actor(), now)
	}
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if gatewayErr != nil {
		return p, fmt.Errorf("%w: refund %s: %w", ErrPaymentGatewayFailed, refund.ID, gatewayErr)
	}
	return p, nil
}

func latestGatewayTransaction(p *payment.Payment) string {
	partials := p.PartialPayments()
	for i := len(partials) - 1; i >= 0; i-- {
		if partials[i].Status == payment.EntryCompleted && partials[i].TransactionID != "" {
			return partials[i].TransactionID
		}
	}
	return ""
}
