package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrBootstrapAdminCommandIsNotConstructed = errors.New(
	"BootstrapAdminCommand must be created via NewBootstrapAdminCommand constructor",
)

// BootstrapAdminCommand ensures a super admin exists at start-up. It is
// issued by the process, never by a request.
type BootstrapAdminCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string
	name     string

	guard guard.ConstructorGuard
}

func NewBootstrapAdminCommand(email, password, name string) (BootstrapAdminCommand, error) {
	normalized, emailErr := identity.NormalizeEmail(email)
	if err := errors.Join(emailErr, validatePassword(password)); err != nil {
		return BootstrapAdminCommand{}, err
	}
	if name = strings.TrimSpace(name); name == "" {
		name = "Super Admin"
	}
	return BootstrapAdminCommand{
		email:    normalized,
		password: password,
		name:     name,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c BootstrapAdminCommand) Validate() error {
	return c.guard.Validate(ErrBootstrapAdminCommandIsNotConstructed)
}

// BootstrapAdminCommandHandler is idempotent: an existing admin with the
// same e-mail is left untouched, whatever its role.
type BootstrapAdminCommandHandler struct {
	uowFactory IdentityUoWFactory
	hasher     ports.PasswordHasher
	logger     *slog.Logger
}

func NewBootstrapAdminCommandHandler(
	uowFactory IdentityUoWFactory,
	hasher ports.PasswordHasher,
	logger *slog.Logger,
) BootstrapAdminCommandHandler {
	return BootstrapAdminCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		logger:     logger.With("component", "BootstrapAdmin"),
	}
}

// Handle reports whether a new admin was created.
func (h BootstrapAdminCommandHandler) Handle(ctx context.Context, cmd BootstrapAdminCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AdminRepository()
	_, err := repo.GetByEmail(ctx, cmd.email)
	switch {
	case err == nil:
		h.logger.DebugContext(ctx, "bootstrap admin already exists", "email", cmd.email)
		return false, nil
	case !errors.Is(err, errs.ErrObjectNotFound):
		return false, err
	}

	hash, err := h.hasher.Hash(cmd.password)
	if err != nil {
		return false, err
	}
	admin, err := identity.NewAdmin(identity.AdminParams{
		Email:        cmd.email,
		PasswordHash: hash,
		Name:         cmd.name,
		Role:         identity.RoleSuperAdmin,
	}, time.Now())
	if err != nil {
		return false, err
	}

	if err = repo.Add(ctx, admin); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	h.logger.InfoContext(ctx, "bootstrap admin created", "email", cmd.email, "adminId", admin.ID().String())
	return true, nil
}
