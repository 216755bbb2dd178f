package crypto

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "logistics"

var ErrSecretTooShort = errors.New("token secret must be at least 32 bytes")

type tokenClaims struct {
	Type      string `json:"typ"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// JWTService issues HS256 bearer tokens. Every token carries a fresh
// session id; admin logins store it so the session can be revoked.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTService(secret string, ttl time.Duration) (*JWTService, error) {
	if len(secret) < 32 {
		return nil, ErrSecretTooShort
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("ttl", ttl, "1ns", "unbounded")
	}
	return &JWTService{secret: []byte(secret), ttl: ttl}, nil
}

func (s *JWTService) TTL() time.Duration { return s.ttl }

func (s *JWTService) Issue(
	subject kernel.UUID,
	principalType identity.PrincipalType,
	now time.Time,
) (string, ports.TokenClaims, error) {
	if err := errors.Join(subject.Validate(), principalType.Validate()); err != nil {
		return "", ports.TokenClaims{}, err
	}

	issued := now.UTC().Truncate(time.Second)
	claims := ports.TokenClaims{
		Subject:   subject,
		Type:      principalType,
		SessionID: kernel.NewUUID().String(),
		IssuedAt:  issued,
		ExpiresAt: issued.Add(s.ttl),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Type:      string(principalType),
		SessionID: claims.SessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", ports.TokenClaims{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims, nil
}

// Verify rejects forged, expired or malformed tokens with an
// UnauthenticatedError.
func (s *JWTService) Verify(token string) (ports.TokenClaims, error) {
	var parsed tokenClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return ports.TokenClaims{}, errs.NewUnauthenticatedErrorWithCause(err)
	}

	subject, err := kernel.UUIDFromString(parsed.Subject)
	if err != nil {
		return ports.TokenClaims{}, errs.NewUnauthenticatedErrorWithCause(err)
	}
	principalType := identity.PrincipalType(parsed.Type)
	if err = principalType.Validate(); err != nil {
		return ports.TokenClaims{}, errs.NewUnauthenticatedErrorWithCause(err)
	}

	claims := ports.TokenClaims{
		Subject:   subject,
		Type:      principalType,
		SessionID: parsed.SessionID,
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.UTC()
	}
	if parsed.ExpiresAt != nil {
		claims.ExpiresAt = parsed.ExpiresAt.UTC()
	}
	return claims, nil
}
