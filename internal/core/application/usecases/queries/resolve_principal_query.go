package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrResolvePrincipalQueryIsNotConstructed = errors.New(
	"ResolvePrincipalQuery must be created via NewResolvePrincipalQuery constructor",
)

// ResolvePrincipalQuery turns a bearer token into the principal acting on a
// request.
type ResolvePrincipalQuery struct {
	token string
	guard guard.ConstructorGuard
}

func NewResolvePrincipalQuery(token string) (ResolvePrincipalQuery, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return ResolvePrincipalQuery{}, errs.NewUnauthenticatedError()
	}
	return ResolvePrincipalQuery{token: token, guard: guard.NewConstructorGuard()}, nil
}

func (q ResolvePrincipalQuery) Validate() error {
	return q.guard.Validate(ErrResolvePrincipalQueryIsNotConstructed)
}

func (q ResolvePrincipalQuery) Token() string { return q.token }

// ResolvePrincipalQueryHandler verifies the token and reloads the account
// on every request, so suspensions and permission changes apply at once.
type ResolvePrincipalQueryHandler struct {
	tokens  ports.TokenService
	drivers DriverReader
	clients ClientReader
	admins  AdminReader
}

func NewResolvePrincipalQueryHandler(
	tokens ports.TokenService,
	drivers DriverReader,
	clients ClientReader,
	admins AdminReader,
) ResolvePrincipalQueryHandler {
	return ResolvePrincipalQueryHandler{
		tokens:  tokens,
		drivers: drivers,
		clients: clients,
		admins:  admins,
	}
}

// Handle fails with UnauthenticatedError for a bad or expired token, an
// unknown account, or an admin session that was revoked or has expired. An
// account whose status no longer permits login fails with
// AccountInactiveError.
func (h ResolvePrincipalQueryHandler) Handle(
	ctx context.Context,
	query ResolvePrincipalQuery,
) (identity.Principal, error) {
	if err := query.Validate(); err != nil {
		return identity.Principal{}, err
	}

	claims, err := h.tokens.Verify(query.token)
	if err != nil {
		return identity.Principal{}, errs.NewUnauthenticatedErrorWithCause(err)
	}

	principal := identity.Principal{ID: claims.Subject, Type: claims.Type, SessionID: claims.SessionID}

	switch claims.Type {
	case identity.PrincipalDriver:
		d, getErr := h.drivers.Get(ctx, claims.Subject)
		if getErr != nil {
			return identity.Principal{}, unauthenticatedIfMissing(getErr)
		}
		if err = d.CanAuthenticate(); err != nil {
			return identity.Principal{}, err
		}

	case identity.PrincipalClient:
		c, getErr := h.clients.Get(ctx, claims.Subject)
		if getErr != nil {
			return identity.Principal{}, unauthenticatedIfMissing(getErr)
		}
		if err = c.CanAuthenticate(); err != nil {
			return identity.Principal{}, err
		}

	case identity.PrincipalAdmin:
		a, getErr := h.admins.Get(ctx, claims.Subject)
		if getErr != nil {
			return identity.Principal{}, unauthenticatedIfMissing(getErr)
		}
		if a.Status() != identity.AdminActive {
			return identity.Principal{}, errs.NewAccountInactiveError(string(a.Status()))
		}
		if !a.HasSession(claims.SessionID, time.Now()) {
			return identity.Principal{}, errs.NewUnauthenticatedError()
		}
		principal.AdminRole = a.Role()
		principal.Permissions = a.Permissions()

	default:
		return identity.Principal{}, errs.NewUnauthenticatedError()
	}

	return principal, nil
}

func unauthenticatedIfMissing(err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewUnauthenticatedErrorWithCause(err)
	}
	return err
}
