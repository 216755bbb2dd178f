package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

type RegisterClientCommandHandler struct {
	uowFactory IdentityUoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterClientCommandHandler(uowFactory IdentityUoWFactory, hasher ports.PasswordHasher) RegisterClientCommandHandler {
	return RegisterClientCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

func (h RegisterClientCommandHandler) Handle(ctx context.Context, cmd RegisterClientCommand) (*identity.Client, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}
	client, err := identity.NewClient(cmd.Params(hash), time.Now())
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

	repo := uow.ClientRepository()
	_, err = repo.GetByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		return nil, identity.ErrEmailIsTaken
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	if err = repo.Add(ctx, client); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return client, nil
}
