package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// CreateAdminCommandHandler requires admins:create. Only a super admin may
// create another super admin.
type CreateAdminCommandHandler struct {
	uowFactory IdentityUoWFactory
	hasher     ports.PasswordHasher
	gateway    services.AccessGateway
}

func NewCreateAdminCommandHandler(uowFactory IdentityUoWFactory, hasher ports.PasswordHasher) CreateAdminCommandHandler {
	return CreateAdminCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		gateway:    services.NewAccessGateway(),
	}
}

func (h CreateAdminCommandHandler) Handle(ctx context.Context, cmd CreateAdminCommand) (*identity.Admin, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	principal := cmd.Principal()
	if err := errors.Join(
		h.gateway.RequireType(principal, identity.PrincipalAdmin),
		h.gateway.Require(principal, identity.ModuleAdmins, identity.ActionCreate),
	); err != nil {
		return nil, err
	}
	if cmd.Role() == identity.RoleSuperAdmin && !principal.IsSuperAdmin() {
		return nil, errs.NewForbiddenError(string(identity.ModuleAdmins), string(identity.ActionCreate))
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}
	admin, err := identity.NewAdmin(cmd.Params(hash), time.Now())
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

	repo := uow.AdminRepository()
	_, err = repo.GetByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		return nil, identity.ErrEmailIsTaken
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	if err = repo.Add(ctx, admin); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return admin, nil
}
