package queries

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/payment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrListOverduePaymentsQueryIsNotConstructed = errors.New(
	"ListOverduePaymentsQuery must be created via NewListOverduePaymentsQuery constructor",
)

// ListOverduePaymentsQuery lists pending or processing payments due before
// the given instant. It carries no principal: the HTTP layer authorizes it
// and the overdue scan job runs it as the system.
type ListOverduePaymentsQuery struct {
	now   time.Time
	guard guard.ConstructorGuard
}

func NewListOverduePaymentsQuery(now time.Time) (ListOverduePaymentsQuery, error) {
	if now.IsZero() {
		return ListOverduePaymentsQuery{}, errs.NewValueIsRequiredError("now")
	}
	return ListOverduePaymentsQuery{now: now.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (q ListOverduePaymentsQuery) Validate() error {
	return q.guard.Validate(ErrListOverduePaymentsQueryIsNotConstructed)
}

type ListOverduePaymentsQueryResponse struct {
	Payment     *payment.Payment
	DaysOverdue int
}

type ListOverduePaymentsQueryHandler struct {
	payments PaymentReader
}

func NewListOverduePaymentsQueryHandler(payments PaymentReader) ListOverduePaymentsQueryHandler {
	return ListOverduePaymentsQueryHandler{payments: payments}
}

func (h ListOverduePaymentsQueryHandler) Handle(
	ctx context.Context,
	query ListOverduePaymentsQuery,
) ([]ListOverduePaymentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	list, err := h.payments.ListOverdue(ctx, query.now)
	if err != nil {
		return nil, err
	}

	out := make([]ListOverduePaymentsQueryResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ListOverduePaymentsQueryResponse{
			Payment:     p,
			DaysOverdue: int(query.now.Sub(p.DueDate()).Hours() / 24),
		})
	}
	return out, nil
}
