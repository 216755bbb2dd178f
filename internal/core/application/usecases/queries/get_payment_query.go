package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/payment"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetPaymentQueryIsNotConstructed = errors.New(
	"GetPaymentQuery must be created via NewGetPaymentQuery or NewGetPaymentByShipmentQuery constructor",
)

// GetPaymentQuery looks a payment up either by its own id or by the id of
// the shipment it bills.
type GetPaymentQuery struct {
	principal  identity.Principal
	paymentID  kernel.UUID
	shipmentID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetPaymentQuery(principal identity.Principal, paymentID kernel.UUID) (GetPaymentQuery, error) {
	if err := errors.Join(validatePrincipal(principal), paymentID.Validate()); err != nil {
		return GetPaymentQuery{}, err
	}
	return GetPaymentQuery{principal: principal, paymentID: paymentID, guard: guard.NewConstructorGuard()}, nil
}

func NewGetPaymentByShipmentQuery(principal identity.Principal, shipmentID kernel.UUID) (GetPaymentQuery, error) {
	if err := validatePrincipal(principal); err != nil {
		return GetPaymentQuery{}, err
	}
	if err := shipmentID.Validate(); err != nil {
		return GetPaymentQuery{}, errs.NewValueIsRequiredErrorWithCause("shipmentId", err)
	}
	return GetPaymentQuery{principal: principal, shipmentID: shipmentID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPaymentQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentQueryIsNotConstructed)
}

// GetPaymentQueryResponse carries the aggregate with its derived balances.
type GetPaymentQueryResponse struct {
	Payment          *payment.Payment
	TotalRefunded    kernel.Money
	RemainingBalance kernel.Money
}

type GetPaymentQueryHandler struct {
	payments PaymentReader
	gateway  services.AccessGateway
}

func NewGetPaymentQueryHandler(payments PaymentReader) GetPaymentQueryHandler {
	return GetPaymentQueryHandler{
		payments: payments,
		gateway:  services.NewAccessGateway(),
	}
}

func (h GetPaymentQueryHandler) Handle(ctx context.Context, query GetPaymentQuery) (GetPaymentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPaymentQueryResponse{}, err
	}

	var (
		p   *payment.Payment
		err error
	)
	if query.paymentID.IsZero() {
		p, err = h.payments.GetByShipment(ctx, query.shipmentID)
	} else {
		p, err = h.payments.Get(ctx, query.paymentID)
	}
	if err != nil {
		return GetPaymentQueryResponse{}, err
	}

	if err = h.gateway.CanViewPayment(query.principal, p); err != nil {
		return GetPaymentQueryResponse{}, err
	}

	return GetPaymentQueryResponse{
		Payment:          p,
		TotalRefunded:    p.TotalRefunded(),
		RemainingBalance: p.RemainingBalance(),
	}, nil
}
