package identity

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrEmailIsTaken is returned when an account of the same type already uses
// the address.
var ErrEmailIsTaken = errs.NewValueIsInvalidErrorWithCause("email", errors.New("already registered"))

// PrincipalType is the kind of account a credential belongs to.
type PrincipalType string

const (
	PrincipalDriver PrincipalType = "driver"
	PrincipalClient PrincipalType = "client"
	PrincipalAdmin  PrincipalType = "admin"
)

func (t PrincipalType) Validate() error {
	switch t {
	case PrincipalDriver, PrincipalClient, PrincipalAdmin:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("principalType", fmt.Errorf("%q is not a valid principal type", string(t)))
}

// Principal is an authenticated caller as seen by the access gateway.
// AdminRole and Permissions are set only for admins.
type Principal struct {
	ID          kernel.UUID
	Type        PrincipalType
	AdminRole   AdminRole
	Permissions Permissions
	SessionID   string
}

// Actor converts the principal into the tagged actor recorded on timelines.
func (p Principal) Actor() kernel.Actor {
	switch p.Type {
	case PrincipalDriver:
		return kernel.DriverActor(p.ID)
	case PrincipalClient:
		return kernel.ClientActor(p.ID)
	case PrincipalAdmin:
		return kernel.AdminActor(p.ID)
	default:
		return kernel.Actor{}
	}
}

func (p Principal) IsAdmin() bool {
	return p.Type == PrincipalAdmin
}

func (p Principal) IsSuperAdmin() bool {
	return p.Type == PrincipalAdmin && p.AdminRole == RoleSuperAdmin
}

// NormalizeEmail lowercases and validates an e-mail address.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid e-mail address", email))
	}
	return email, nil
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(field)
	}
	return nil
}
