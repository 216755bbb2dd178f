package commands

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand exchanges credentials for a bearer token.
type LoginCommand struct { //nolint:recvcheck //using for validation
	principalType identity.PrincipalType
	email         string
	password      string
	ipAddress     string
	userAgent     string

	guard guard.ConstructorGuard
}

// NewLoginCommand lowercases the e-mail but does not validate its format;
// a malformed address simply matches no account.
func NewLoginCommand(principalType identity.PrincipalType, email, password, ipAddress, userAgent string) (LoginCommand, error) {
	var errList []error
	errList = append(errList, principalType.Validate())
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		errList = append(errList, errs.NewValueIsRequiredError("email"))
	}
	if password == "" {
		errList = append(errList, errs.NewValueIsRequiredError("password"))
	}
	if err := errors.Join(errList...); err != nil {
		return LoginCommand{}, err
	}

	return LoginCommand{
		principalType: principalType,
		email:         email,
		password:      password,
		ipAddress:     strings.TrimSpace(ipAddress),
		userAgent:     strings.TrimSpace(userAgent),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) PrincipalType() identity.PrincipalType { return c.principalType }
func (c LoginCommand) Email() string                         { return c.email }
func (c LoginCommand) Password() string                      { return c.password }
func (c LoginCommand) IPAddress() string                     { return c.ipAddress }
func (c LoginCommand) UserAgent() string                     { return c.userAgent }

// LoginResult is a successful authentication.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Principal identity.Principal
}
