package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/pkg/guard"
)

var ErrLogoutCommandIsNotConstructed = errors.New(
	"LogoutCommand must be created via NewLogoutCommand constructor",
)

// LogoutCommand ends the caller's session. Only admin sessions are
// server-side; for drivers and clients it is a no-op and the token simply
// expires.
type LogoutCommand struct {
	principal identity.Principal
	guard     guard.ConstructorGuard
}

func NewLogoutCommand(principal identity.Principal) (LogoutCommand, error) {
	if err := validatePrincipal(principal); err != nil {
		return LogoutCommand{}, err
	}
	return LogoutCommand{principal: principal, guard: guard.NewConstructorGuard()}, nil
}

func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}

type LogoutCommandHandler struct {
	uowFactory IdentityUoWFactory
}

func NewLogoutCommandHandler(uowFactory IdentityUoWFactory) LogoutCommandHandler {
	return LogoutCommandHandler{uowFactory: uowFactory}
}

// Handle reports whether a session was revoked.
func (h LogoutCommandHandler) Handle(ctx context.Context, cmd LogoutCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}
	if !cmd.principal.IsAdmin() || cmd.principal.SessionID == "" {
		return false, nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AdminRepository()
	admin, err := repo.Get(ctx, cmd.principal.ID)
	if err != nil {
		return false, err
	}
	if !admin.RevokeSession(cmd.principal.SessionID, time.Now()) {
		return false, nil
	}

	if err = repo.Update(ctx, admin); err != nil {
		return false, err
	}
	if err = uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}
