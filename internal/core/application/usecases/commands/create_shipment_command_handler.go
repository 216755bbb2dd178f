package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// CreateShipmentCommandHandler creates shipments for active clients.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	gateway    services.AccessGateway
}

func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		gateway:    services.NewAccessGateway(),
	}
}

// Handle checks that the caller may create shipments and that the client
// exists, then persists a new pending shipment.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	principal := cmd.Principal()
	if err := errors.Join(
		h.gateway.RequireType(principal, identity.PrincipalClient, identity.PrincipalAdmin),
		h.gateway.Require(principal, identity.ModuleShipments, identity.ActionCreate),
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

	client, err := uow.ClientRepository().Get(ctx, cmd.ClientID())
	if err != nil {
		return nil, err
	}
	if client.Status() != identity.ClientActive {
		return nil, errs.NewInvalidStateError("client", string(client.Status()), string(identity.ClientActive))
	}

	s, err := shipment.NewShipment(cmd.Params(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Add(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
