package postgres_test

import (
	"context"
	"errors"
	"time"

	postgres_adapter "logistics/internal/adapters/out/postgres"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
)

func (s *PostgresIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := s.factory.Create()
	uow2 := s.factory.Create()

	s.NotSame(uow1, uow2, "Factory should create separate instances")
	s.NotNil(uow1.ShipmentRepository())
	s.NotNil(uow1.PaymentRepository())
	s.NotNil(uow1.DriverRepository())
	s.NotNil(uow1.ClientRepository())
	s.NotNil(uow1.AdminRepository())
}

func (s *PostgresIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := s.factory.Create()

	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	s.Require().NoError(uow.Commit(ctx))

	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.Rollback(ctx))
}

func (s *PostgresIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := s.factory.Create()

	s.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	s.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

func (s *PostgresIntegrationTestSuite) TestUnitOfWork_ClosedDatabaseIsTransient() {
	ctx := context.Background()
	factory := postgres_adapter.NewGormUnitOfWorkFactory(s.closedDB())

	err := factory.Create().Begin(ctx)
	s.Require().ErrorIs(err, errs.ErrTransient)

	uow := factory.Create()
	_, err = uow.ShipmentRepository().Get(ctx, kernel.NewUUID())
	s.Require().ErrorIs(err, errs.ErrTransient)
	s.NotErrorIs(err, errs.ErrObjectNotFound)

	_, err = uow.PaymentRepository().ListOverdue(ctx, time.Now())
	s.Require().ErrorIs(err, errs.ErrTransient)

	_, err = uow.ClientRepository().GetByEmail(ctx, "shipper@example.com")
	s.Require().ErrorIs(err, errs.ErrTransient)
	s.NotErrorIs(err, errs.ErrObjectNotFound)
}

func (s *PostgresIntegrationTestSuite) TestUnitOfWork_CommitPersistsAcrossRepositories() {
	ctx := context.Background()
	client := newClient(s.T(), "shipper@example.com")
	sh := newShipment(s.T(), client.ID())
	pay := newPayment(s.T(), sh.ID(), 4200, nil)

	err := s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		return errors.Join(
			uow.ClientRepository().Add(ctx, client),
			uow.ShipmentRepository().Add(ctx, sh),
			uow.PaymentRepository().Add(ctx, pay),
		)
	})
	s.Require().NoError(err)

	fresh := s.factory.Create()
	_, err = fresh.ClientRepository().Get(ctx, client.ID())
	s.Require().NoError(err)
	_, err = fresh.ShipmentRepository().Get(ctx, sh.ID())
	s.Require().NoError(err)
	got, err := fresh.PaymentRepository().GetByShipment(ctx, sh.ID())
	s.Require().NoError(err)
	s.Equal(pay.ID(), got.ID())
}

func (s *PostgresIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChangesAndEvents() {
	ctx := context.Background()
	publisher := &publisherMock{}
	factory := postgres_adapter.NewGormUnitOfWorkFactory(s.db, postgres_adapter.WithEventPublisher(publisher))

	sh := newShipment(s.T(), kernel.NewUUID())
	uow := factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.ShipmentRepository().Add(ctx, sh))
	_, err := uow.ShipmentRepository().Get(ctx, sh.ID())
	s.Require().NoError(err, "Shipment should be visible inside the transaction")
	s.Require().NoError(uow.Rollback(ctx))

	_, err = factory.Create().ShipmentRepository().Get(ctx, sh.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	s.NotEmpty(sh.DomainEvents(), "Events of a rolled back aggregate stay unpublished")
	publisher.AssertNotCalled(s.T(), "Publish", mock.Anything, mock.Anything)
}

func (s *PostgresIntegrationTestSuite) TestUnitOfWork_CommitPublishesEventsAndInvalidatesTracking() {
	ctx := context.Background()
	publisher := &publisherMock{}
	cache := &cacheMock{}
	factory := postgres_adapter.NewGormUnitOfWorkFactory(s.db,
		postgres_adapter.WithEventPublisher(publisher),
		postgres_adapter.WithTrackingCache(cache),
	)

	sh := newShipment(s.T(), kernel.NewUUID())
	key := ports.TrackingSnapshotKey(sh.TrackingNumber().String())

	cache.On("Delete", mock.Anything, []string{key}).Return(nil).Once()
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(events []kernel.DomainEvent) bool {
		return len(events) == 1 && events[0].EventName() == shipment.EventCreated
	})).Return(nil).Once()

	err := s.inTx(factory, func(uow ports.UnitOfWork) error {
		return uow.ShipmentRepository().Add(ctx, sh)
	})
	s.Require().NoError(err)

	s.Empty(sh.DomainEvents(), "Published events are cleared from the aggregate")
	publisher.AssertExpectations(s.T())
	cache.AssertExpectations(s.T())
}

func (s *PostgresIntegrationTestSuite) TestUnitOfWork_AggregateTrackedTwicePublishesOnce() {
	ctx := context.Background()
	publisher := &publisherMock{}
	factory := postgres_adapter.NewGormUnitOfWorkFactory(s.db, postgres_adapter.WithEventPublisher(publisher))

	sh := newShipment(s.T(), kernel.NewUUID())
	driverID := kernel.NewUUID()

	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(events []kernel.DomainEvent) bool {
		names := make([]string, 0, len(events))
		for _, e := range events {
			names = append(names, e.EventName())
		}
		return len(names) == 3 &&
			names[0] == shipment.EventCreated &&
			names[1] == shipment.EventStatusChanged &&
			names[2] == shipment.EventDriverAssigned
	})).Return(nil).Once()

	err := s.inTx(factory, func(uow ports.UnitOfWork) error {
		repo := uow.ShipmentRepository()
		if err := repo.Add(ctx, sh); err != nil {
			return err
		}
		if err := sh.AssignDriver(driverID, "Dana Scully", kernel.AdminActor(kernel.NewUUID()), time.Now()); err != nil {
			return err
		}
		return repo.Update(ctx, sh)
	})
	s.Require().NoError(err)

	publisher.AssertExpectations(s.T())
}

func (s *PostgresIntegrationTestSuite) TestUnitOfWork_PublishFailureDoesNotFailCommit() {
	ctx := context.Background()
	publisher := &publisherMock{}
	factory := postgres_adapter.NewGormUnitOfWorkFactory(s.db, postgres_adapter.WithEventPublisher(publisher))

	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	sh := newShipment(s.T(), kernel.NewUUID())
	err := s.inTx(factory, func(uow ports.UnitOfWork) error {
		return uow.ShipmentRepository().Add(ctx, sh)
	})
	s.Require().NoError(err)

	_, err = factory.Create().ShipmentRepository().Get(ctx, sh.ID())
	s.Require().NoError(err, "Data stays committed when publishing fails")
	publisher.AssertExpectations(s.T())
}

func (s *PostgresIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()
	uow1 := s.factory.Create()
	uow2 := s.factory.Create()

	sh1 := newShipment(s.T(), kernel.NewUUID())
	sh2 := newShipment(s.T(), kernel.NewUUID())

	s.Require().NoError(uow1.Begin(ctx))
	s.Require().NoError(uow2.Begin(ctx))

	s.Require().NoError(uow1.ShipmentRepository().Add(ctx, sh1))
	s.Require().NoError(uow2.ShipmentRepository().Add(ctx, sh2))

	_, err := uow2.ShipmentRepository().Get(ctx, sh1.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound, "Uncommitted rows are invisible to other units of work")

	s.Require().NoError(uow1.Commit(ctx))
	s.Require().NoError(uow2.Rollback(ctx))

	fresh := s.factory.Create()
	_, err = fresh.ShipmentRepository().Get(ctx, sh1.ID())
	s.Require().NoError(err)
	_, err = fresh.ShipmentRepository().Get(ctx, sh2.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}
