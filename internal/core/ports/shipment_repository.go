// Package ports defines the contracts between the core and its adapters:
// repositories bound to a unit of work, and outbound services such as the
// event publisher, cache, blob store, payment gateway, password hasher and
// token service.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository persists Shipment aggregates as one record each.
type ShipmentRepository interface {
	// Add persists a new shipment.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update writes the shipment if its stored version still equals the
	// loaded version, and increments the version. A lost race returns a
	// transient error wrapping errs.ErrVersionIsInvalid.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get returns errs.ErrObjectNotFound when the shipment does not exist.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	GetByTrackingNumber(ctx context.Context, trackingNumber shipment.TrackingNumber) (*shipment.Shipment, error)
}
