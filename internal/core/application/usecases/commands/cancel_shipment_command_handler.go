package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
)

type CancelShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	gateway    services.AccessGateway
}

func NewCancelShipmentCommandHandler(uowFactory ShipmentUoWFactory) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{
		uowFactory: uowFactory,
		gateway:    services.NewAccessGateway(),
	}
}

// Handle cancels from pending, assigned or failed. Any other current status
// is an invalid transition.
func (h CancelShipmentCommandHandler) Handle(ctx context.Context, cmd CancelShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
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

	if err = h.gateway.CanCancelShipment(cmd.Principal(), s); err != nil {
		return nil, err
	}

	if err = s.Cancel(cmd.Reason(), cmd.Notes(), cmd.Principal().Actor(), time.Now()); err != nil {
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
