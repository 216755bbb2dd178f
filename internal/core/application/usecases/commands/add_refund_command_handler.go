package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/payment"
	"logistics/internal/core/domain/services"
)

// AddRefundCommandHandler records a refund request. Money moves only when
// the refund is completed.
type AddRefundCommandHandler struct {
	uowFactory PaymentUoWFactory
	gateway    services.AccessGateway
}

func NewAddRefundCommandHandler(uowFactory PaymentUoWFactory) AddRefundCommandHandler {
	return AddRefundCommandHandler{
		uowFactory: uowFactory,
		gateway:    services.NewAccessGateway(),
	}
}

func (h AddRefundCommandHandler) Handle(ctx context.Context, cmd AddRefundCommand) (payment.Refund, error) {
	if err := cmd.Validate(); err != nil {
		return payment.Refund{}, err
	}
	principal := cmd.Principal()
	if err := errors.Join(
		h.gateway.RequireType(principal, identity.PrincipalAdmin),
		h.gateway.Require(principal, identity.ModulePayments, identity.ActionRefund),
	); err != nil {
		return payment.Refund{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return payment.Refund{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PaymentRepository()
	p, err := repo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return payment.Refund{}, err
	}

	refund, err := p.AddRefund(cmd.Params(), principal.Actor(), time.Now())
	if err != nil {
		return payment.Refund{}, err
	}

	if err = repo.Update(ctx, p); err != nil {
		return payment.Refund{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return payment.Refund{}, err
	}

	return refund, nil
}
