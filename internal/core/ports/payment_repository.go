package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/payment"
)

// PaymentRepository persists Payment aggregates. At most one payment may
// reference a shipment; Add returns errs.ErrDuplicatePayment otherwise.
type PaymentRepository interface {
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update is compare-and-swap on the aggregate version.
	Update(ctx context.Context, aggregate *payment.Payment) error

	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByShipment returns errs.ErrObjectNotFound when no payment references
	// the shipment.
	GetByShipment(ctx context.Context, shipmentID kernel.UUID) (*payment.Payment, error)

	// ListOverdue returns open payments whose due date is before now.
	ListOverdue(ctx context.Context, now time.Time) ([]*payment.Payment, error)
}
