package commands

import (
	"context"
	"errors"
	"sync"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// LoginCommandHandler authenticates drivers, clients and admins.
//
// An unknown e-mail and a wrong password fail with the same
// UnauthenticatedError. For admins every attempt is persisted, failures
// included, so the failure counter survives across requests; the fifth
// consecutive failure locks the account for identity.LockDuration. An
// unknown e-mail still pays for one password verification, against a fixed
// dummy hash, so response times do not reveal which accounts exist.
type LoginCommandHandler struct {
	uowFactory IdentityUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenService
	dummy      *dummyHash
}

// dummyPassword only feeds the hash verified for unknown accounts.
const dummyPassword = "logistics-login-dummy-password"

type dummyHash struct {
	once    sync.Once
	encoded string
	err     error
}

func (d *dummyHash) get(hasher ports.PasswordHasher) (string, error) {
	d.once.Do(func() {
		d.encoded, d.err = hasher.Hash(dummyPassword)
	})
	return d.encoded, d.err
}

func NewLoginCommandHandler(
	uowFactory IdentityUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
		dummy:      &dummyHash{},
	}
}

func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoginResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now()
	switch cmd.PrincipalType() {
	case identity.PrincipalAdmin:
		return h.loginAdmin(ctx, uow, cmd, now)
	case identity.PrincipalDriver:
		return h.loginDriver(ctx, uow, cmd, now)
	case identity.PrincipalClient:
		return h.loginClient(ctx, uow, cmd, now)
	default:
		return LoginResult{}, errs.NewUnauthenticatedError()
	}
}

func (h LoginCommandHandler) loginAdmin(ctx context.Context, uow IdentityUoW, cmd LoginCommand, now time.Time) (LoginResult, error) {
	repo := uow.AdminRepository()
	admin, err := repo.GetByEmail(ctx, cmd.Email())
	if err != nil {
		return LoginResult{}, h.unknownAccount(cmd.Password(), err)
	}

	passwordOK, err := h.hasher.Verify(cmd.Password(), admin.PasswordHash())
	if err != nil {
		return LoginResult{}, err
	}

	var (
		token  string
		claims ports.TokenClaims
	)
	if passwordOK {
		token, claims, err = h.tokens.Issue(admin.ID(), identity.PrincipalAdmin, now)
		if err != nil {
			return LoginResult{}, err
		}
	}

	loginErr := admin.Login(passwordOK, identity.Session{
		ID:        claims.SessionID,
		IPAddress: cmd.IPAddress(),
		UserAgent: cmd.UserAgent(),
		CreatedAt: now.UTC(),
		ExpiresAt: claims.ExpiresAt,
	}, now)

	if err = repo.Update(ctx, admin); err != nil {
		return LoginResult{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return LoginResult{}, err
	}
	if loginErr != nil {
		return LoginResult{}, loginErr
	}

	return LoginResult{
		Token:     token,
		ExpiresAt: claims.ExpiresAt,
		Principal: identity.Principal{
			ID:          admin.ID(),
			Type:        identity.PrincipalAdmin,
			AdminRole:   admin.Role(),
			Permissions: admin.Permissions(),
			SessionID:   claims.SessionID,
		},
	}, nil
}

func (h LoginCommandHandler) loginDriver(ctx context.Context, uow IdentityUoW, cmd LoginCommand, now time.Time) (LoginResult, error) {
	repo := uow.DriverRepository()
	driver, err := repo.GetByEmail(ctx, cmd.Email())
	if err != nil {
		return LoginResult{}, h.unknownAccount(cmd.Password(), err)
	}
	if err = h.checkPassword(cmd.Password(), driver.PasswordHash()); err != nil {
		return LoginResult{}, err
	}
	if err = driver.CanAuthenticate(); err != nil {
		return LoginResult{}, err
	}

	driver.RecordLogin(now)
	if err = repo.Update(ctx, driver); err != nil {
		return LoginResult{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return LoginResult{}, err
	}
	return h.issue(driver.ID(), identity.PrincipalDriver, now)
}

func (h LoginCommandHandler) loginClient(ctx context.Context, uow IdentityUoW, cmd LoginCommand, now time.Time) (LoginResult, error) {
	repo := uow.ClientRepository()
	client, err := repo.GetByEmail(ctx, cmd.Email())
	if err != nil {
		return LoginResult{}, h.unknownAccount(cmd.Password(), err)
	}
	if err = h.checkPassword(cmd.Password(), client.PasswordHash()); err != nil {
		return LoginResult{}, err
	}
	if err = client.CanAuthenticate(); err != nil {
		return LoginResult{}, err
	}

	client.RecordLogin(now)
	if err = repo.Update(ctx, client); err != nil {
		return LoginResult{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return LoginResult{}, err
	}
	return h.issue(client.ID(), identity.PrincipalClient, now)
}

func (h LoginCommandHandler) checkPassword(password, hash string) error {
	ok, err := h.hasher.Verify(password, hash)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewUnauthenticatedError()
	}
	return nil
}

func (h LoginCommandHandler) issue(id kernel.UUID, t identity.PrincipalType, now time.Time) (LoginResult, error) {
	token, claims, err := h.tokens.Issue(id, t, now)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{
		Token:     token,
		ExpiresAt: claims.ExpiresAt,
		Principal: identity.Principal{ID: id, Type: t, SessionID: claims.SessionID},
	}, nil
}

// unknownAccount turns a missing account into UnauthenticatedError after
// spending the same work a wrong password would.
func (h LoginCommandHandler) unknownAccount(password string, err error) error {
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if encoded, hashErr := h.dummy.get(h.hasher); hashErr == nil {
		_, _ = h.hasher.Verify(password, encoded)
	}
	return errs.NewUnauthenticatedError()
}
