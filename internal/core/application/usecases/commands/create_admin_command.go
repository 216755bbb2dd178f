package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/pkg/guard"
)

var ErrCreateAdminCommandIsNotConstructed = errors.New(
	"CreateAdminCommand must be created via NewCreateAdminCommand constructor",
)

// CreateAdminCommand adds an administrator. A nil permission map grants the
// role defaults.
type CreateAdminCommand struct { //nolint:recvcheck //using for validation
	principal   identity.Principal
	email       string
	password    string
	name        string
	role        identity.AdminRole
	permissions *identity.Permissions

	guard guard.ConstructorGuard
}

func NewCreateAdminCommand(
	principal identity.Principal,
	email, password, name string,
	role identity.AdminRole,
	permissions map[string][]string,
) (CreateAdminCommand, error) {
	cmd := CreateAdminCommand{
		password: password,
		name:     strings.TrimSpace(name),
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}

	var emailErr, permErr error
	cmd.email, emailErr = identity.NormalizeEmail(email)
	if permissions != nil {
		var perms identity.Permissions
		perms, permErr = identity.ParsePermissions(permissions)
		cmd.permissions = &perms
	}

	if err := errors.Join(
		validatePrincipal(principal),
		emailErr,
		validatePassword(password),
		role.Validate(),
		permErr,
	); err != nil {
		return CreateAdminCommand{}, err
	}
	cmd.principal = principal

	return cmd, nil
}

func (c CreateAdminCommand) Validate() error {
	return c.guard.Validate(ErrCreateAdminCommandIsNotConstructed)
}

func (c CreateAdminCommand) Principal() identity.Principal { return c.principal }
func (c CreateAdminCommand) Email() string                 { return c.email }
func (c CreateAdminCommand) Password() string              { return c.password }
func (c CreateAdminCommand) Role() identity.AdminRole      { return c.role }
func (c CreateAdminCommand) ActivityTarget() string        { return c.email }

func (c CreateAdminCommand) Params(passwordHash string) identity.AdminParams {
	return identity.AdminParams{
		Email:        c.email,
		PasswordHash: passwordHash,
		Name:         c.name,
		Role:         c.role,
		Permissions:  c.permissions,
	}
}
