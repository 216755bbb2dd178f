package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

type ReviewDriverCommandHandler struct {
	uowFactory IdentityUoWFactory
	gateway    services.AccessGateway
}

func NewReviewDriverCommandHandler(uowFactory IdentityUoWFactory) ReviewDriverCommandHandler {
	return ReviewDriverCommandHandler{
		uowFactory: uowFactory,
		gateway:    services.NewAccessGateway(),
	}
}

func (h ReviewDriverCommandHandler) Handle(ctx context.Context, cmd ReviewDriverCommand) (*identity.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.authorize(cmd); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DriverRepository()
	driver, err := repo.Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	switch cmd.step {
	case ReviewVerifyDocument:
		err = driver.VerifyDocument(cmd.document, cmd.verified, now)
	case ReviewSubmitKYC:
		err = driver.SubmitKYC(now)
	case ReviewDecideKYC:
		err = driver.DecideKYC(cmd.approve, cmd.notes, now)
	case ReviewSetStatus:
		err = driver.SetStatus(cmd.status, now)
	default:
		err = errs.NewValueIsInvalidError("step")
	}
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, driver); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return driver, nil
}

func (h ReviewDriverCommandHandler) authorize(cmd ReviewDriverCommand) error {
	p := cmd.Principal()
	if cmd.step == ReviewSubmitKYC && p.Type == identity.PrincipalDriver {
		if !p.ID.IsEqual(cmd.DriverID()) {
			return errs.NewForbiddenError(string(identity.ModuleDrivers), string(identity.ActionUpdate))
		}
		return nil
	}
	if err := h.gateway.RequireType(p, identity.PrincipalAdmin); err != nil {
		return err
	}
	switch cmd.step {
	case ReviewVerifyDocument, ReviewDecideKYC:
		return h.gateway.Require(p, identity.ModuleDrivers, identity.ActionApprove)
	default:
		return h.gateway.Require(p, identity.ModuleDrivers, identity.ActionUpdate)
	}
}
