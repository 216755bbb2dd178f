package ports

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
)

// EventPublisher delivers domain events to a broker.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
	Close() error
}

// ErrCacheMiss is returned by Cache.Get for absent keys.
var ErrCacheMiss = errors.New("cache miss")

// Cache stores opaque values with a time to live.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// TrackingSnapshotKey is the cache key of a shipment's public tracking
// snapshot. Writers invalidate it, the tracking query fills it.
func TrackingSnapshotKey(trackingNumber string) string {
	return "tracking:" + trackingNumber
}

// BlobObject is an uploaded file.
type BlobObject struct {
	Key         string
	ContentType string
	Data        []byte
}

// BlobStore keeps uploaded bytes outside the database and returns the URL
// under which they can be fetched.
type BlobStore interface {
	Put(ctx context.Context, object BlobObject) (string, error)
}

// ChargeRequest is a gateway charge in minor units.
type ChargeRequest struct {
	Amount         int64
	Currency       string
	Description    string
	IdempotencyKey string
	Metadata       map[string]string
}

// GatewayRefundRequest reverses part of an earlier charge.
type GatewayRefundRequest struct {
	TransactionID  string
	Amount         int64
	IdempotencyKey string
}

// PaymentGateway is the external payment processor. It reports success with
// a gateway transaction id or fails.
type PaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (string, error)
	Refund(ctx context.Context, req GatewayRefundRequest) (string, error)
}

// PasswordHasher hashes and verifies secrets.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}

// TokenClaims is what an issued bearer token asserts.
type TokenClaims struct {
	Subject   kernel.UUID
	Type      identity.PrincipalType
	SessionID string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies bearer tokens. Verify returns an
// unauthenticated error for any malformed, forged or expired token.
type TokenService interface {
	Issue(subject kernel.UUID, principalType identity.PrincipalType, now time.Time) (string, TokenClaims, error)
	Verify(token string) (TokenClaims, error)
	TTL() time.Duration
}
