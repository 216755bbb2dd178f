// Package postgres provides the GORM-based Unit of Work shared by every
// command handler.
//
// A unit of work wraps one database transaction. Repositories obtained from
// it run inside that transaction and report every aggregate they write back
// to the unit of work. After a successful commit the unit of work:
//
//   - publishes the domain events recorded by the tracked aggregates
//   - clears those events so a retried handler does not publish them twice
//   - drops cached tracking snapshots of the shipments it wrote
//
// Publishing and cache invalidation happen after the data is durable and
// never turn a committed write into a failed request; failures are logged.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.ShipmentRepository().Update(ctx, s); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Instances are not safe for concurrent use; create one per operation.
package postgres

import (
	"context"
	"log/slog"

	"logistics/internal/adapters/out/postgres/columns"
	"logistics/internal/adapters/out/postgres/identityrepo"
	"logistics/internal/adapters/out/postgres/paymentrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

type eventSource interface {
	DomainEvents() []kernel.DomainEvent
	ClearDomainEvents()
}

// UnitOfWorkOption configures the post-commit behaviour of a factory.
type UnitOfWorkOption func(*GormUnitOfWorkFactory)

// WithEventPublisher sets the publisher receiving domain events after commit.
func WithEventPublisher(publisher ports.EventPublisher) UnitOfWorkOption {
	return func(f *GormUnitOfWorkFactory) {
		f.publisher = publisher
	}
}

// WithTrackingCache sets the cache whose tracking snapshots are invalidated
// when a shipment is written.
func WithTrackingCache(cache ports.Cache) UnitOfWorkOption {
	return func(f *GormUnitOfWorkFactory) {
		f.cache = cache
	}
}

func WithLogger(logger *slog.Logger) UnitOfWorkOption {
	return func(f *GormUnitOfWorkFactory) {
		f.logger = logger
	}
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool. Each instance has its own transaction and tracked aggregates.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
	cache     ports.Cache
	logger    *slog.Logger
}

// NewGormUnitOfWorkFactory creates a factory. Without options events are
// discarded after commit and no cache is touched.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, WithEventPublisher(kafkaPublisher))
func NewGormUnitOfWorkFactory(db *gorm.DB, opts ...UnitOfWorkOption) *GormUnitOfWorkFactory {
	f := &GormUnitOfWorkFactory{
		db:     db,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With("component", "unit_of_work")
	return f
}

// Create produces a new UnitOfWork ready for Begin.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		cache:             f.cache,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates written within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.EventPublisher
	cache             ports.Cache
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin on a unit of work with an open
// transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return columns.Transient("uow.begin", err)
	}

	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Commit makes the transaction durable, then publishes the events of the
// tracked aggregates and invalidates cached tracking snapshots.
//
// Returns gorm.ErrInvalidTransaction when no transaction is open. After
// Commit the transaction is closed; Rollback then returns
// gorm.ErrInvalidTransaction, which deferred rollbacks ignore.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return columns.Transient("uow.commit", err)
	}

	uow.afterCommit(ctx)
	return nil
}

// Rollback discards the transaction together with the tracked aggregates.
// Events recorded on those aggregates stay on them and are never published.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return identityrepo.NewGormDriverRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ClientRepository() ports.ClientRepository {
	return identityrepo.NewGormClientRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) AdminRepository() ports.AdminRepository {
	return identityrepo.NewGormAdminRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after every successful Add or Update; an aggregate
// tracked twice is processed once.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	for i := range uow.trackedAggregates {
		if uow.trackedAggregates[i].ID == id {
			uow.trackedAggregates[i].Aggregate = aggregate
			return
		}
	}
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) afterCommit(ctx context.Context) {
	var (
		events       []kernel.DomainEvent
		staleKeys    []string
		sourcesToAck []eventSource
	)
	for _, tracked := range uow.trackedAggregates {
		if src, ok := tracked.Aggregate.(eventSource); ok {
			events = append(events, src.DomainEvents()...)
			sourcesToAck = append(sourcesToAck, src)
		}
		if s, ok := tracked.Aggregate.(*shipment.Shipment); ok {
			staleKeys = append(staleKeys, ports.TrackingSnapshotKey(s.TrackingNumber().String()))
		}
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]

	for _, src := range sourcesToAck {
		src.ClearDomainEvents()
	}

	if uow.cache != nil && len(staleKeys) > 0 {
		if err := uow.cache.Delete(ctx, staleKeys...); err != nil {
			uow.logger.WarnContext(ctx, "failed to invalidate tracking snapshots",
				"keys", staleKeys, "error", err)
		}
	}

	if uow.publisher != nil && len(events) > 0 {
		if err := uow.publisher.Publish(ctx, events...); err != nil {
			uow.logger.ErrorContext(ctx, "failed to publish domain events",
				"count", len(events), "error", err)
		}
	}
}
