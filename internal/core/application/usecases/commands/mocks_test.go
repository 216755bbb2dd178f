package commands_test

import (
	"context"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/payment"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}
func (m *MockShipmentRepository) GetByTrackingNumber(ctx context.Context, tn shipment.TrackingNumber) (*shipment.Shipment, error) {
	args := m.Called(ctx, tn)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*payment.Payment)
	return p, args.Error(1)
}
func (m *MockPaymentRepository) GetByShipment(ctx context.Context, shipmentID kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, shipmentID)
	p, _ := args.Get(0).(*payment.Payment)
	return p, args.Error(1)
}
func (m *MockPaymentRepository) ListOverdue(ctx context.Context, now time.Time) ([]*payment.Payment, error) {
	args := m.Called(ctx, now)
	p, _ := args.Get(0).([]*payment.Payment)
	return p, args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *identity.Driver) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockDriverRepository) Update(ctx context.Context, d *identity.Driver) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*identity.Driver, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*identity.Driver)
	return d, args.Error(1)
}
func (m *MockDriverRepository) GetByEmail(ctx context.Context, email string) (*identity.Driver, error) {
	args := m.Called(ctx, email)
	d, _ := args.Get(0).(*identity.Driver)
	return d, args.Error(1)
}

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(ctx context.Context, c *identity.Client) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockClientRepository) Update(ctx context.Context, c *identity.Client) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockClientRepository) Get(ctx context.Context, id kernel.UUID) (*identity.Client, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*identity.Client)
	return c, args.Error(1)
}
func (m *MockClientRepository) GetByEmail(ctx context.Context, email string) (*identity.Client, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(*identity.Client)
	return c, args.Error(1)
}

type MockAdminRepository struct{ mock.Mock }

func (m *MockAdminRepository) Add(ctx context.Context, a *identity.Admin) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockAdminRepository) Update(ctx context.Context, a *identity.Admin) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockAdminRepository) Get(ctx context.Context, id kernel.UUID) (*identity.Admin, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*identity.Admin)
	return a, args.Error(1)
}
func (m *MockAdminRepository) GetByEmail(ctx context.Context, email string) (*identity.Admin, error) {
	args := m.Called(ctx, email)
	a, _ := args.Get(0).(*identity.Admin)
	return a, args.Error(1)
}
func (m *MockAdminRepository) ListWithExpiredSessions(ctx context.Context, now time.Time) ([]*identity.Admin, error) {
	args := m.Called(ctx, now)
	a, _ := args.Get(0).([]*identity.Admin)
	return a, args.Error(1)
}

// MockUoW satisfies every narrowed unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	return m.Called().Get(0).(ports.ShipmentRepository)
}
func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	return m.Called().Get(0).(ports.PaymentRepository)
}
func (m *MockUoW) DriverRepository() ports.DriverRepository {
	return m.Called().Get(0).(ports.DriverRepository)
}
func (m *MockUoW) ClientRepository() ports.ClientRepository {
	return m.Called().Get(0).(ports.ClientRepository)
}
func (m *MockUoW) AdminRepository() ports.AdminRepository {
	return m.Called().Get(0).(ports.AdminRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	return m.Called().Get(0).(commands.ShipmentUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	return m.Called().Get(0).(commands.PaymentUoW)
}

type MockIdentityUoWFactory struct{ mock.Mock }

func (m *MockIdentityUoWFactory) Create() commands.IdentityUoW {
	return m.Called().Get(0).(commands.IdentityUoW)
}

type MockAdminUoWFactory struct{ mock.Mock }

func (m *MockAdminUoWFactory) Create() commands.AdminUoW {
	return m.Called().Get(0).(commands.AdminUoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}
func (m *MockPasswordHasher) Verify(password, encoded string) (bool, error) {
	args := m.Called(password, encoded)
	return args.Bool(0), args.Error(1)
}

type MockTokenService struct{ mock.Mock }

func (m *MockTokenService) Issue(subject kernel.UUID, t identity.PrincipalType, now time.Time) (string, ports.TokenClaims, error) {
	args := m.Called(subject, t, now)
	return args.String(0), args.Get(1).(ports.TokenClaims), args.Error(2)
}
func (m *MockTokenService) Verify(token string) (ports.TokenClaims, error) {
	args := m.Called(token)
	return args.Get(0).(ports.TokenClaims), args.Error(1)
}
func (m *MockTokenService) TTL() time.Duration { return time.Hour }

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) Charge(ctx context.Context, req ports.ChargeRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
func (m *MockPaymentGateway) Refund(ctx context.Context, req ports.GatewayRefundRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

type MockBlobStore struct{ mock.Mock }

func (m *MockBlobStore) Put(ctx context.Context, obj ports.BlobObject) (string, error) {
	args := m.Called(ctx, obj)
	return args.String(0), args.Error(1)
}
