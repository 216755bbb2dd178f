package queries_test

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/payment"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShipmentReader struct{ mock.Mock }

func (m *MockShipmentReader) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}
func (m *MockShipmentReader) GetByTrackingNumber(ctx context.Context, tn shipment.TrackingNumber) (*shipment.Shipment, error) {
	args := m.Called(ctx, tn)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}

type MockPaymentReader struct{ mock.Mock }

func (m *MockPaymentReader) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*payment.Payment)
	return p, args.Error(1)
}
func (m *MockPaymentReader) GetByShipment(ctx context.Context, shipmentID kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, shipmentID)
	p, _ := args.Get(0).(*payment.Payment)
	return p, args.Error(1)
}
func (m *MockPaymentReader) ListOverdue(ctx context.Context, now time.Time) ([]*payment.Payment, error) {
	args := m.Called(ctx, now)
	p, _ := args.Get(0).([]*payment.Payment)
	return p, args.Error(1)
}

type MockDriverReader struct{ mock.Mock }

func (m *MockDriverReader) Get(ctx context.Context, id kernel.UUID) (*identity.Driver, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*identity.Driver)
	return d, args.Error(1)
}

type MockClientReader struct{ mock.Mock }

func (m *MockClientReader) Get(ctx context.Context, id kernel.UUID) (*identity.Client, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*identity.Client)
	return c, args.Error(1)
}

type MockAdminReader struct{ mock.Mock }

func (m *MockAdminReader) Get(ctx context.Context, id kernel.UUID) (*identity.Admin, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*identity.Admin)
	return a, args.Error(1)
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
func (m *MockTokenService) TTL() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

type MockCache struct{ mock.Mock }

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}
func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}
func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}
