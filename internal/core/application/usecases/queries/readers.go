// Package queries contains read operations for retrieving system state.
// Handlers that return a single aggregate load it through a reader port and
// apply the access rules; list handlers read the tables directly with SQL.
package queries

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/payment"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

// Read-side views of the repositories. The postgres repositories satisfy
// them when used outside a transaction.
type (
	ShipmentReader interface {
		Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)
		GetByTrackingNumber(ctx context.Context, trackingNumber shipment.TrackingNumber) (*shipment.Shipment, error)
	}

	PaymentReader interface {
		Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)
		GetByShipment(ctx context.Context, shipmentID kernel.UUID) (*payment.Payment, error)
		ListOverdue(ctx context.Context, now time.Time) ([]*payment.Payment, error)
	}

	DriverReader interface {
		Get(ctx context.Context, id kernel.UUID) (*identity.Driver, error)
	}

	ClientReader interface {
		Get(ctx context.Context, id kernel.UUID) (*identity.Client, error)
	}

	AdminReader interface {
		Get(ctx context.Context, id kernel.UUID) (*identity.Admin, error)
	}
)

var ErrPrincipalIsRequired = errs.NewValueIsRequiredError("principal")

func validatePrincipal(p identity.Principal) error {
	if p.ID.IsZero() {
		return ErrPrincipalIsRequired
	}
	if err := p.Type.Validate(); err != nil {
		return errors.Join(ErrPrincipalIsRequired, err)
	}
	return nil
}
