package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery fetches one shipment on behalf of a principal.
type GetShipmentQuery struct {
	principal  identity.Principal
	shipmentID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetShipmentQuery(principal identity.Principal, shipmentID kernel.UUID) (GetShipmentQuery, error) {
	if err := errors.Join(validatePrincipal(principal), shipmentID.Validate()); err != nil {
		return GetShipmentQuery{}, err
	}
	return GetShipmentQuery{
		principal:  principal,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

type GetShipmentQueryHandler struct {
	shipments ShipmentReader
	gateway   services.AccessGateway
}

func NewGetShipmentQueryHandler(shipments ShipmentReader) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{
		shipments: shipments,
		gateway:   services.NewAccessGateway(),
	}
}

// Handle returns the shipment when the principal may see it: its owning
// client, its assigned driver, or an admin with shipments:read.
func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (*shipment.Shipment, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	s, err := h.shipments.Get(ctx, query.shipmentID)
	if err != nil {
		return nil, err
	}

	if err = h.gateway.CanViewShipment(query.principal, s); err != nil {
		return nil, err
	}
	return s, nil
}
