package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

type RegisterDriverCommandHandler struct {
	uowFactory IdentityUoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterDriverCommandHandler(uowFactory IdentityUoWFactory, hasher ports.PasswordHasher) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle returns identity.ErrEmailIsTaken when a driver with the same
// e-mail exists.
func (h RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) (*identity.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}
	driver, err := identity.NewDriver(cmd.Params(hash), time.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DriverRepository()
	_, err = repo.GetByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		return nil, identity.ErrEmailIsTaken
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	if err = repo.Add(ctx, driver); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return driver, nil
}
