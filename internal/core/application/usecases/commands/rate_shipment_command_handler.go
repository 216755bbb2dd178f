package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
)

// RateShipmentCommandHandler lets the owning client rate a delivered
// shipment once.
type RateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	gateway    services.AccessGateway
}

func NewRateShipmentCommandHandler(uowFactory ShipmentUoWFactory) RateShipmentCommandHandler {
	return RateShipmentCommandHandler{
		uowFactory: uowFactory,
		gateway:    services.NewAccessGateway(),
	}
}

func (h RateShipmentCommandHandler) Handle(ctx context.Context, cmd RateShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.gateway.RequireType(cmd.Principal(), identity.PrincipalClient); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	s, err := repo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = s.Rate(cmd.Score(), cmd.Comment(), cmd.Principal().ID, time.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
