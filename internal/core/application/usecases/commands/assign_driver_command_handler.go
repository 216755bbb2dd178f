package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
)

// AssignDriverCommandHandler loads the shipment and the driver, lets the
// DriverAssigner apply the assignment and persists the shipment. The driver
// row is read but never written.
type AssignDriverCommandHandler struct {
	uowFactory ShipmentUoWFactory
	gateway    services.AccessGateway
	assigner   services.DriverAssigner
}

func NewAssignDriverCommandHandler(uowFactory ShipmentUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		gateway:    services.NewAccessGateway(),
		assigner:   services.NewDriverAssigner(),
	}
}

// Handle returns errs.ErrObjectNotFound when either aggregate is missing,
// errs.ErrIneligibleDriver and errs.ErrInvalidState from the assigner. On
// any error nothing is written.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	principal := cmd.Principal()
	if err := errors.Join(
		h.gateway.RequireType(principal, identity.PrincipalAdmin),
		h.gateway.Require(principal, identity.ModuleShipments, identity.ActionAssign),
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

	shipmentRepo := uow.ShipmentRepository()
	s, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	driver, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	if err = h.assigner.Assign(s, driver, principal.Actor(), time.Now()); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
