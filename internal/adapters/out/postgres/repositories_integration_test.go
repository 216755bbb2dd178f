package postgres_test

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/payment"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

func (s *PostgresIntegrationTestSuite) TestShipmentRepository_RoundTrip() {
	ctx := context.Background()
	sh := newShipment(s.T(), kernel.NewUUID())
	admin := kernel.AdminActor(kernel.NewUUID())
	driverID := kernel.NewUUID()
	now := time.Now()

	s.Require().NoError(sh.AssignDriver(driverID, "Dana Scully", admin, now))
	loc, err := kernel.NewCoordinates(45.5231, -122.6765)
	s.Require().NoError(err)
	s.Require().NoError(sh.Transition(shipment.Picked, kernel.DriverActor(driverID), "picked at dock 3", &loc, now))
	_, err = sh.ReportIssue(shipment.IssueDelayed, "traffic on I-5", kernel.DriverActor(driverID), now)
	s.Require().NoError(err)

	err = s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		return uow.ShipmentRepository().Add(ctx, sh)
	})
	s.Require().NoError(err)

	got, err := s.factory.Create().ShipmentRepository().Get(ctx, sh.ID())
	s.Require().NoError(err)

	s.Equal(sh.TrackingNumber(), got.TrackingNumber())
	s.Equal(shipment.Picked, got.Status())
	s.Require().NotNil(got.DriverID())
	s.Equal(driverID, *got.DriverID())
	s.Equal(sh.ServiceType(), got.ServiceType())
	s.Equal(sh.TotalValue(), got.TotalValue())
	s.InDelta(sh.TotalWeight(), got.TotalWeight(), 0.0001)
	s.Equal(sh.PickupAddress(), got.PickupAddress())
	s.Len(got.Items(), 1)
	s.Len(got.Timeline(), 3)
	s.Len(got.Issues(), 1)
	s.Equal(shipment.IssueDelayed, got.Issues()[0].Type)

	current := got.CurrentStatusInfo()
	s.Equal("picked at dock 3", current.Notes())
	s.Require().NotNil(current.Location())
	s.InDelta(45.5231, current.Location().Lat(), 0.000001)
	s.Equal(kernel.DriverActor(driverID), current.Actor())
	s.Require().NotNil(got.ActualPickupDate())
}

func (s *PostgresIntegrationTestSuite) TestShipmentRepository_GetByTrackingNumber() {
	ctx := context.Background()
	sh := newShipment(s.T(), kernel.NewUUID())
	s.Require().NoError(s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		return uow.ShipmentRepository().Add(ctx, sh)
	}))

	got, err := s.factory.Create().ShipmentRepository().GetByTrackingNumber(ctx, sh.TrackingNumber())
	s.Require().NoError(err)
	s.Equal(sh.ID(), got.ID())

	other, err := shipment.NewTrackingNumber()
	s.Require().NoError(err)
	_, err = s.factory.Create().ShipmentRepository().GetByTrackingNumber(ctx, other)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *PostgresIntegrationTestSuite) TestShipmentRepository_GetMissing() {
	_, err := s.factory.Create().ShipmentRepository().Get(context.Background(), kernel.NewUUID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *PostgresIntegrationTestSuite) TestShipmentRepository_UpdateRejectsStaleVersion() {
	ctx := context.Background()
	clientID := kernel.NewUUID()
	sh := newShipment(s.T(), clientID)
	s.Require().NoError(s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		return uow.ShipmentRepository().Add(ctx, sh)
	}))

	first, err := s.factory.Create().ShipmentRepository().Get(ctx, sh.ID())
	s.Require().NoError(err)
	second, err := s.factory.Create().ShipmentRepository().Get(ctx, sh.ID())
	s.Require().NoError(err)

	s.Require().NoError(first.Cancel(shipment.CancelCustomerRequest, "", kernel.ClientActor(clientID), time.Now()))
	s.Require().NoError(s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		return uow.ShipmentRepository().Update(ctx, first)
	}))
	s.Equal(sh.Version()+1, first.Version())

	s.Require().NoError(second.AssignDriver(kernel.NewUUID(), "Late Driver", kernel.AdminActor(kernel.NewUUID()), time.Now()))
	err = s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		return uow.ShipmentRepository().Update(ctx, second)
	})
	s.Require().ErrorIs(err, errs.ErrTransient)
	s.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	stored, err := s.factory.Create().ShipmentRepository().Get(ctx, sh.ID())
	s.Require().NoError(err)
	s.Equal(shipment.Cancelled, stored.Status(), "The losing write is not applied")
	s.Require().NotNil(stored.Cancellation())
	s.Equal(shipment.CancelCustomerRequest, stored.Cancellation().Reason)
}

func (s *PostgresIntegrationTestSuite) TestShipmentRepository_UpdateMissing() {
	sh := newShipment(s.T(), kernel.NewUUID())
	err := s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		return uow.ShipmentRepository().Update(context.Background(), sh)
	})
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *PostgresIntegrationTestSuite) TestPaymentRepository_RoundTripLedger() {
	ctx := context.Background()
	pay := newPayment(s.T(), kernel.NewUUID(), 10000, nil)
	system := kernel.SystemActor()
	now := time.Now()

	_, err := pay.RecordPartialPayment(payment.PartialParams{
		Amount: 4000, Method: payment.MethodCard, TransactionID: "ch_1",
	}, system, now)
	s.Require().NoError(err)
	_, err = pay.RecordPartialPayment(payment.PartialParams{
		Amount: 6000, Method: payment.MethodCard, TransactionID: "ch_2",
	}, system, now)
	s.Require().NoError(err)
	s.Require().Equal(payment.Completed, pay.Status())

	refund, err := pay.AddRefund(payment.RefundParams{
		Amount: 2500, Reason: payment.RefundLateDelivery, Method: payment.MethodCard,
	}, kernel.AdminActor(kernel.NewUUID()), now)
	s.Require().NoError(err)
	s.Require().NoError(pay.CompleteRefund(refund.ID, "re_1", system, now))

	s.Require().NoError(s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		return uow.PaymentRepository().Add(ctx, pay)
	}))

	got, err := s.factory.Create().PaymentRepository().Get(ctx, pay.ID())
	s.Require().NoError(err)

	s.Equal(payment.PartiallyRefunded, got.Status())
	s.Equal(pay.Amount().Total(), got.Amount().Total())
	s.Equal(payment.TermsNet15, got.Terms())
	s.Len(got.PartialPayments(), 2)
	s.Equal(int64(10000), got.TotalPartiallyPaid().Amount())
	s.Require().Len(got.Refunds(), 1)
	s.Equal(refund.ID, got.Refunds()[0].ID)
	s.Equal("re_1", got.Refunds()[0].GatewayTransactionID)
	s.Equal(int64(2500), got.TotalRefunded().Amount())
	s.Equal(len(pay.Timeline()), len(got.Timeline()))
	s.Require().NotNil(got.PaidDate())
	s.WithinDuration(pay.DueDate(), got.DueDate(), time.Millisecond)
}

func (s *PostgresIntegrationTestSuite) TestPaymentRepository_DuplicateShipment() {
	ctx := context.Background()
	shipmentID := kernel.NewUUID()
	s.Require().NoError(s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		return uow.PaymentRepository().Add(ctx, newPayment(s.T(), shipmentID, 1000, nil))
	}))

	err := s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		return uow.PaymentRepository().Add(ctx, newPayment(s.T(), shipmentID, 2000, nil))
	})
	s.Require().ErrorIs(err, errs.ErrDuplicatePayment)
}

func (s *PostgresIntegrationTestSuite) TestPaymentRepository_GetByShipmentMissing() {
	_, err := s.factory.Create().PaymentRepository().GetByShipment(context.Background(), kernel.NewUUID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *PostgresIntegrationTestSuite) TestPaymentRepository_UpdateRejectsStaleVersion() {
	ctx := context.Background()
	pay := newPayment(s.T(), kernel.NewUUID(), 5000, nil)
	s.Require().NoError(s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		return uow.PaymentRepository().Add(ctx, pay)
	}))

	first, err := s.factory.Create().PaymentRepository().Get(ctx, pay.ID())
	s.Require().NoError(err)
	second, err := s.factory.Create().PaymentRepository().Get(ctx, pay.ID())
	s.Require().NoError(err)

	s.Require().NoError(first.UpdateStatus(payment.Processing, "", kernel.SystemActor(), time.Now()))
	s.Require().NoError(s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		return uow.PaymentRepository().Update(ctx, first)
	}))

	s.Require().NoError(second.UpdateStatus(payment.Cancelled, "", kernel.SystemActor(), time.Now()))
	err = s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		return uow.PaymentRepository().Update(ctx, second)
	})
	s.Require().ErrorIs(err, errs.ErrTransient)
	s.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
}

func (s *PostgresIntegrationTestSuite) TestPaymentRepository_ListOverdue() {
	ctx := context.Background()
	now := time.Now().UTC()
	past := now.Add(-48 * time.Hour)
	older := now.Add(-96 * time.Hour)
	future := now.Add(48 * time.Hour)

	overdue := newPayment(s.T(), kernel.NewUUID(), 1000, &past)
	overdueOlder := newPayment(s.T(), kernel.NewUUID(), 1000, &older)
	notDue := newPayment(s.T(), kernel.NewUUID(), 1000, &future)
	settled := newPayment(s.T(), kernel.NewUUID(), 1000, &past)
	s.Require().NoError(settled.UpdateStatus(payment.Completed, "", kernel.SystemActor(), now))

	s.Require().NoError(s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		repo := uow.PaymentRepository()
		for _, p := range []*payment.Payment{overdue, overdueOlder, notDue, settled} {
			if err := repo.Add(ctx, p); err != nil {
				return err
			}
		}
		return nil
	}))

	got, err := s.factory.Create().PaymentRepository().ListOverdue(ctx, now)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(overdueOlder.ID(), got[0].ID(), "Oldest due date first")
	s.Equal(overdue.ID(), got[1].ID())
}

func (s *PostgresIntegrationTestSuite) TestDriverRepository_RoundTripAndEmailUniqueness() {
	ctx := context.Background()
	driver := newDriver(s.T(), "dana@example.com")
	now := time.Now()
	s.Require().NoError(driver.VerifyDocument(identity.DocumentLicense, true, now))
	s.Require().NoError(driver.SubmitKYC(now))

	s.Require().NoError(s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		return uow.DriverRepository().Add(ctx, driver)
	}))

	got, err := s.factory.Create().DriverRepository().GetByEmail(ctx, "dana@example.com")
	s.Require().NoError(err)
	s.Equal(driver.ID(), got.ID())
	s.Equal(driver.Vehicle(), got.Vehicle())
	s.Equal(identity.KYCPending, got.KYCStatus())
	s.True(got.Documents().License)
	s.False(got.Documents().Insurance)
	s.Require().NotNil(got.KYCSubmittedAt())

	err = s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		return uow.DriverRepository().Add(ctx, newDriver(s.T(), "dana@example.com"))
	})
	s.Require().ErrorIs(err, identity.ErrEmailIsTaken)

	// The same address may belong to one principal of each type.
	s.Require().NoError(s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		return uow.ClientRepository().Add(ctx, newClient(s.T(), "dana@example.com"))
	}))
}

func (s *PostgresIntegrationTestSuite) TestDriverRepository_Update() {
	ctx := context.Background()
	driver := newDriver(s.T(), "mulder@example.com")
	s.Require().NoError(s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		return uow.DriverRepository().Add(ctx, driver)
	}))

	s.Require().NoError(driver.SetStatus(identity.DriverSuspended, time.Now()))
	s.Require().NoError(s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		return uow.DriverRepository().Update(ctx, driver)
	}))

	got, err := s.factory.Create().DriverRepository().Get(ctx, driver.ID())
	s.Require().NoError(err)
	s.Equal(identity.DriverSuspended, got.Status())

	err = s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		return uow.DriverRepository().Update(ctx, newDriver(s.T(), "ghost@example.com"))
	})
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *PostgresIntegrationTestSuite) TestClientRepository_RoundTrip() {
	ctx := context.Background()
	client := newClient(s.T(), "acme@example.com")
	s.Require().NoError(s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		return uow.ClientRepository().Add(ctx, client)
	}))

	got, err := s.factory.Create().ClientRepository().Get(ctx, client.ID())
	s.Require().NoError(err)
	s.Equal("Acme Corp", got.CompanyName())
	s.Equal(payment.TermsNet30, got.BillingTerms())
	s.Equal(identity.ClientActive, got.Status())

	_, err = s.factory.Create().ClientRepository().GetByEmail(ctx, "nobody@example.com")
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *PostgresIntegrationTestSuite) TestAdminRepository_SessionsPermissionsAndActivity() {
	ctx := context.Background()
	admin := newAdmin(s.T(), "ops@example.com")
	now := time.Now().UTC()

	s.Require().NoError(admin.Login(true, identity.Session{
		ID: "sess-1", IPAddress: "10.0.0.1", UserAgent: "curl", CreatedAt: now, ExpiresAt: now.Add(time.Hour),
	}, now))
	admin.RecordActivity(identity.ActivityEntry{
		Operation: "assign_driver",
		Module:    identity.ModuleShipments,
		TargetID:  "shp-1",
		Outcome:   identity.OutcomeSuccess,
		At:        now,
	})

	s.Require().NoError(s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		return uow.AdminRepository().Add(ctx, admin)
	}))

	got, err := s.factory.Create().AdminRepository().GetByEmail(ctx, "ops@example.com")
	s.Require().NoError(err)
	s.Equal(identity.RoleManager, got.Role())
	s.Equal(admin.Permissions().Map(), got.Permissions().Map())
	s.True(got.HasSession("sess-1", now))
	s.Require().Len(got.ActivityLog(), 1)
	s.Equal("assign_driver", got.ActivityLog()[0].Operation)
	s.Equal(identity.ModuleShipments, got.ActivityLog()[0].Module)
}

func (s *PostgresIntegrationTestSuite) TestAdminRepository_UpdateRejectsStaleVersion() {
	ctx := context.Background()
	admin := newAdmin(s.T(), "race@example.com")
	s.Require().NoError(s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		return uow.AdminRepository().Add(ctx, admin)
	}))

	first, err := s.factory.Create().AdminRepository().Get(ctx, admin.ID())
	s.Require().NoError(err)
	second, err := s.factory.Create().AdminRepository().Get(ctx, admin.ID())
	s.Require().NoError(err)

	now := time.Now()
	s.Require().ErrorIs(first.Login(false, identity.Session{}, now), errs.ErrUnauthenticated)
	s.Require().NoError(s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		return uow.AdminRepository().Update(ctx, first)
	}))

	second.RecordActivity(identity.ActivityEntry{
		Operation: "create_payment", Module: identity.ModulePayments, Outcome: identity.OutcomeSuccess, At: now,
	})
	err = s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		return uow.AdminRepository().Update(ctx, second)
	})
	s.Require().ErrorIs(err, errs.ErrTransient)
	s.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	stored, err := s.factory.Create().AdminRepository().Get(ctx, admin.ID())
	s.Require().NoError(err)
	s.Equal(1, stored.LoginAttempts())
	s.Empty(stored.ActivityLog())
}

func (s *PostgresIntegrationTestSuite) TestAdminRepository_ListWithExpiredSessions() {
	ctx := context.Background()
	now := time.Now().UTC()

	stale := newAdmin(s.T(), "stale@example.com")
	s.Require().NoError(stale.Login(true, identity.Session{
		ID: "old", CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour),
	}, now.Add(-2*time.Hour)))

	fresh := newAdmin(s.T(), "fresh@example.com")
	s.Require().NoError(fresh.Login(true, identity.Session{
		ID: "new", CreatedAt: now, ExpiresAt: now.Add(time.Hour),
	}, now))

	idle := newAdmin(s.T(), "idle@example.com")

	s.Require().NoError(s.inTx(s.factory, func(uow ports.UnitOfWork) error {
		repo := uow.AdminRepository()
		for _, a := range []*identity.Admin{stale, fresh, idle} {
			if err := repo.Add(ctx, a); err != nil {
				return err
			}
		}
		return nil
	}))

	got, err := s.factory.Create().AdminRepository().ListWithExpiredSessions(ctx, now)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(stale.ID(), got[0].ID())
	s.Equal(1, got[0].PruneSessions(now))
}
