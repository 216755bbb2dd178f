package identityrepo

import (
	"context"
	"errors"
	"time"

	"logistics/internal/adapters/out/postgres/columns"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// mapWriteError turns a violation of the table's e-mail index into
// identity.ErrEmailIsTaken. A concurrent registration that slipped past the
// handler's lookup lands here.
func mapWriteError(operation string, err error, emailIndex string) error {
	if columns.IsUniqueViolation(err, emailIndex) {
		return identity.ErrEmailIsTaken
	}
	return columns.Transient(operation, err)
}

func firstBy[T any](ctx context.Context, db *gorm.DB, object, query string, arg any, shown string) (T, error) {
	var dto T
	if err := db.WithContext(ctx).First(&dto, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto, errs.NewObjectNotFoundError(object, shown)
		}
		return dto, columns.Transient(object+".get", err)
	}
	return dto, nil
}

// GormDriverRepository implements ports.DriverRepository.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{db: db, tracker: tracker}
}

func (r *GormDriverRepository) Add(ctx context.Context, driver *identity.Driver) error {
	if err := driver.Validate(); err != nil {
		return err
	}

	dto := driverFromDomain(driver)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return mapWriteError("driver.add", err, driverEmailIndex)
	}

	r.tracker.TrackAggregate(driver.ID(), driver)
	return nil
}

func (r *GormDriverRepository) Update(ctx context.Context, driver *identity.Driver) error {
	if err := driver.Validate(); err != nil {
		return err
	}

	dto := driverFromDomain(driver)
	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return mapWriteError("driver.update", result.Error, driverEmailIndex)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", driver.ID().String())
	}

	r.tracker.TrackAggregate(driver.ID(), driver)
	return nil
}

func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*identity.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	dto, err := firstBy[DriverDTO](ctx, r.db, "driver", "id = ?", id.Bytes(), id.String())
	if err != nil {
		return nil, err
	}
	return driverToDomain(dto)
}

func (r *GormDriverRepository) GetByEmail(ctx context.Context, email string) (*identity.Driver, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	dto, err := firstBy[DriverDTO](ctx, r.db, "email", "email = ?", email, email)
	if err != nil {
		return nil, err
	}
	return driverToDomain(dto)
}

// GormClientRepository implements ports.ClientRepository.
type GormClientRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormClientRepository(db *gorm.DB, tracker aggregateTracker) *GormClientRepository {
	return &GormClientRepository{db: db, tracker: tracker}
}

func (r *GormClientRepository) Add(ctx context.Context, client *identity.Client) error {
	if err := client.Validate(); err != nil {
		return err
	}

	dto := clientFromDomain(client)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return mapWriteError("client.add", err, clientEmailIndex)
	}

	r.tracker.TrackAggregate(client.ID(), client)
	return nil
}

func (r *GormClientRepository) Update(ctx context.Context, client *identity.Client) error {
	if err := client.Validate(); err != nil {
		return err
	}

	dto := clientFromDomain(client)
	result := r.db.WithContext(ctx).
		Model(&ClientDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return mapWriteError("client.update", result.Error, clientEmailIndex)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("client", client.ID().String())
	}

	r.tracker.TrackAggregate(client.ID(), client)
	return nil
}

func (r *GormClientRepository) Get(ctx context.Context, id kernel.UUID) (*identity.Client, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	dto, err := firstBy[ClientDTO](ctx, r.db, "client", "id = ?", id.Bytes(), id.String())
	if err != nil {
		return nil, err
	}
	return clientToDomain(dto)
}

func (r *GormClientRepository) GetByEmail(ctx context.Context, email string) (*identity.Client, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	dto, err := firstBy[ClientDTO](ctx, r.db, "email", "email = ?", email, email)
	if err != nil {
		return nil, err
	}
	return clientToDomain(dto)
}

// GormAdminRepository implements ports.AdminRepository. Admin rows carry a
// version because logins and the activity log write to the same row
// concurrently.
type GormAdminRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormAdminRepository(db *gorm.DB, tracker aggregateTracker) *GormAdminRepository {
	return &GormAdminRepository{db: db, tracker: tracker}
}

func (r *GormAdminRepository) Add(ctx context.Context, admin *identity.Admin) error {
	if err := admin.Validate(); err != nil {
		return err
	}

	dto := adminFromDomain(admin)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return mapWriteError("admin.add", err, adminEmailIndex)
	}

	r.tracker.TrackAggregate(admin.ID(), admin)
	return nil
}

func (r *GormAdminRepository) Update(ctx context.Context, admin *identity.Admin) error {
	if err := admin.Validate(); err != nil {
		return err
	}

	dto := adminFromDomain(admin)
	dto.Version = admin.Version() + 1
	result := r.db.WithContext(ctx).
		Model(&AdminDTO{}).
		Where("id = ? AND version = ?", dto.ID, admin.Version()).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return mapWriteError("admin.update", result.Error, adminEmailIndex)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&AdminDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return columns.Transient("admin.update", err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("admin", admin.ID().String())
		}
		return errs.NewTransientError("admin.update", errs.NewVersionIsInvalidError("admin.version"))
	}

	admin.IncrementVersion()
	r.tracker.TrackAggregate(admin.ID(), admin)
	return nil
}

func (r *GormAdminRepository) Get(ctx context.Context, id kernel.UUID) (*identity.Admin, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	dto, err := firstBy[AdminDTO](ctx, r.db, "admin", "id = ?", id.Bytes(), id.String())
	if err != nil {
		return nil, err
	}
	return adminToDomain(dto)
}

func (r *GormAdminRepository) GetByEmail(ctx context.Context, email string) (*identity.Admin, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	dto, err := firstBy[AdminDTO](ctx, r.db, "email", "email = ?", email, email)
	if err != nil {
		return nil, err
	}
	return adminToDomain(dto)
}

// ListWithExpiredSessions filters inside Postgres on the jsonb session array
// so the prune job never loads admins with nothing to prune.
func (r *GormAdminRepository) ListWithExpiredSessions(ctx context.Context, now time.Time) ([]*identity.Admin, error) {
	var dtos []AdminDTO
	err := r.db.WithContext(ctx).
		Where(`EXISTS (
			SELECT 1 FROM jsonb_array_elements(COALESCE(sessions, '[]'::jsonb)) AS s
			WHERE (s->>'expiresAt')::timestamptz <= ?
		)`, now.UTC()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, columns.Transient("admin.list_expired_sessions", err)
	}

	admins := make([]*identity.Admin, 0, len(dtos))
	for _, dto := range dtos {
		a, err := adminToDomain(dto)
		if err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, nil
}
