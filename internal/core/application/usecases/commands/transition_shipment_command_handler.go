package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
)

// TransitionShipmentCommandHandler applies one status change. The write is
// compare-and-swap on the shipment version, so of two concurrent transitions
// from the same state only one commits.
type TransitionShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	gateway    services.AccessGateway
}

func NewTransitionShipmentCommandHandler(uowFactory ShipmentUoWFactory) TransitionShipmentCommandHandler {
	return TransitionShipmentCommandHandler{
		uowFactory: uowFactory,
		gateway:    services.NewAccessGateway(),
	}
}

func (h TransitionShipmentCommandHandler) Handle(ctx context.Context, cmd TransitionShipmentCommand) (*shipment.Shipment, error) {
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

	if err = h.gateway.CanTransitionShipment(cmd.Principal(), s); err != nil {
		return nil, err
	}

	if err = s.Transition(cmd.Status(), cmd.Principal().Actor(), cmd.Notes(), cmd.Location(), time.Now()); err != nil {
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
