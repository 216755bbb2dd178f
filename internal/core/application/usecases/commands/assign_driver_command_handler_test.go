package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignDriverCommandHandler(t *testing.T) {
	ctx := t.Context()
	s := newPendingShipment(t, kernel.NewUUID())
	driver := newDriver(t, identity.DriverApproved, identity.KYCApproved)
	cmd, err := commands.NewAssignDriverCommand(superAdmin(), s.ID(), driver.ID())
	require.NoError(t, err)

	shipmentRepo := &MockShipmentRepository{}
	driverRepo := &MockDriverRepository{}
	uow := &MockUoW{}
	factory := &MockShipmentUoWFactory{}

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, s.ID()).Return(s, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driver.ID()).Return(driver, nil).Once(),
		shipmentRepo.On("Update", ctx, s).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory.On("Create").Return(uow).Once()

	updated, err := commands.NewAssignDriverCommandHandler(factory).Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, shipment.Assigned, updated.Status())
	require.NotNil(t, updated.DriverID())
	assert.Equal(t, driver.ID(), *updated.DriverID())
	uow.AssertExpectations(t)
	shipmentRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_IneligibleDriverWritesNothing(t *testing.T) {
	ctx := t.Context()
	s := newPendingShipment(t, kernel.NewUUID())
	driver := newDriver(t, identity.DriverApproved, identity.KYCPending)
	cmd, err := commands.NewAssignDriverCommand(superAdmin(), s.ID(), driver.ID())
	require.NoError(t, err)

	shipmentRepo := &MockShipmentRepository{}
	driverRepo := &MockDriverRepository{}
	uow := &MockUoW{}
	factory := &MockShipmentUoWFactory{}

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	shipmentRepo.On("Get", ctx, s.ID()).Return(s, nil).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	driverRepo.On("Get", ctx, driver.ID()).Return(driver, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewAssignDriverCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrIneligibleDriver)
	assert.Equal(t, shipment.Pending, s.Status())
	shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAssignDriverCommandHandler_SupportAdminIsForbidden(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignDriverCommand(supportAdmin(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	factory := &MockShipmentUoWFactory{}
	_, err = commands.NewAssignDriverCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignDriverCommandHandler_MissingDriver(t *testing.T) {
	ctx := t.Context()
	s := newPendingShipment(t, kernel.NewUUID())
	driverID := kernel.NewUUID()
	cmd, err := commands.NewAssignDriverCommand(superAdmin(), s.ID(), driverID)
	require.NoError(t, err)

	shipmentRepo := &MockShipmentRepository{}
	driverRepo := &MockDriverRepository{}
	uow := &MockUoW{}
	factory := &MockShipmentUoWFactory{}

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	shipmentRepo.On("Get", ctx, s.ID()).Return(s, nil).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	driverRepo.On("Get", ctx, driverID).Return(nil, errs.NewObjectNotFoundError("driver", driverID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewAssignDriverCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
