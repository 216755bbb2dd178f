package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/payment"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// CreatePaymentCommandHandler opens a payment for an existing shipment.
//
// Uniqueness per shipment is checked by lookup first. Two concurrent creates
// can both pass the lookup; the repository then maps the unique index
// violation of the loser to errs.ErrDuplicatePayment.
type CreatePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	gateway    services.AccessGateway
}

func NewCreatePaymentCommandHandler(uowFactory PaymentUoWFactory) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    services.NewAccessGateway(),
	}
}

func (h CreatePaymentCommandHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) (*payment.Payment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	principal := cmd.Principal()
	if err := errors.Join(
		h.gateway.RequireType(principal, identity.PrincipalAdmin),
		h.gateway.Require(principal, identity.ModulePayments, identity.ActionCreate),
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

	s, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	paymentRepo := uow.PaymentRepository()
	existing, err := paymentRepo.GetByShipment(ctx, s.ID())
	switch {
	case err == nil:
		return nil, errs.NewDuplicatePaymentError(existing.ShipmentID().String())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	client, err := uow.ClientRepository().Get(ctx, s.ClientID())
	if err != nil {
		return nil, err
	}
	terms := payment.ResolveTerms(cmd.Terms(), client.BillingTerms())

	p, err := payment.NewPayment(cmd.Params(s.ClientID(), terms), time.Now())
	if err != nil {
		return nil, err
	}

	if err = paymentRepo.Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
