package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
)

// DriverRepository persists drivers. E-mail addresses are unique.
type DriverRepository interface {
	Add(ctx context.Context, driver *identity.Driver) error
	Update(ctx context.Context, driver *identity.Driver) error
	Get(ctx context.Context, id kernel.UUID) (*identity.Driver, error)
	GetByEmail(ctx context.Context, email string) (*identity.Driver, error)
}

// ClientRepository persists clients. E-mail addresses are unique.
type ClientRepository interface {
	Add(ctx context.Context, client *identity.Client) error
	Update(ctx context.Context, client *identity.Client) error
	Get(ctx context.Context, id kernel.UUID) (*identity.Client, error)
	GetByEmail(ctx context.Context, email string) (*identity.Client, error)
}

// AdminRepository persists admins with their sessions and activity log.
// Update is compare-and-swap on the aggregate version.
type AdminRepository interface {
	Add(ctx context.Context, admin *identity.Admin) error
	Update(ctx context.Context, admin *identity.Admin) error
	Get(ctx context.Context, id kernel.UUID) (*identity.Admin, error)
	GetByEmail(ctx context.Context, email string) (*identity.Admin, error)

	// ListWithExpiredSessions returns admins holding at least one session
	// that expired before now.
	ListWithExpiredSessions(ctx context.Context, now time.Time) ([]*identity.Admin, error)
}
