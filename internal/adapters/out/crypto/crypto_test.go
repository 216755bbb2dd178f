package crypto_test

import (
	"strings"
	"testing"
	"time"

	"logistics/internal/adapters/out/crypto"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastParams = crypto.Argon2Params{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}

func TestArgon2Hasher_RoundTrip(t *testing.T) {
	h := crypto.NewArgon2Hasher(fastParams)

	encoded, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=8192,t=1,p=1$"))

	ok, err := h.Verify("correct horse battery staple", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2Hasher_SaltsEveryHash(t *testing.T) {
	h := crypto.NewArgon2Hasher(fastParams)
	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestArgon2Hasher_VerifiesHashesFromOtherParams(t *testing.T) {
	old, err := crypto.NewArgon2Hasher(fastParams).Hash("pw")
	require.NoError(t, err)

	ok, err := crypto.NewArgon2Hasher(crypto.DefaultArgon2Params).Verify("pw", old)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestArgon2Hasher_MalformedHash(t *testing.T) {
	h := crypto.NewArgon2Hasher(fastParams)
	for _, encoded := range []string{"", "plain", "$bcrypt$v=19$m=1,t=1,p=1$a$b", "$argon2id$v=18$m=1,t=1,p=1$YQ$Yg"} {
		_, err := h.Verify("pw", encoded)
		require.ErrorIs(t, err, crypto.ErrMalformedHash, encoded)
	}
}

const secret = "0123456789abcdef0123456789abcdef"

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := crypto.NewJWTService(secret, time.Hour)
	require.NoError(t, err)

	subject := kernel.NewUUID()
	token, issued, err := svc.Issue(subject, identity.PrincipalAdmin, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, issued.SessionID)
	assert.Equal(t, time.Hour, issued.ExpiresAt.Sub(issued.IssuedAt))

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, subject, claims.Subject)
	assert.Equal(t, identity.PrincipalAdmin, claims.Type)
	assert.Equal(t, issued.SessionID, claims.SessionID)
	assert.True(t, issued.ExpiresAt.Equal(claims.ExpiresAt))
}

func TestJWTService_EverySessionIsDistinct(t *testing.T) {
	svc, err := crypto.NewJWTService(secret, time.Hour)
	require.NoError(t, err)

	id := kernel.NewUUID()
	_, a, err := svc.Issue(id, identity.PrincipalDriver, time.Now())
	require.NoError(t, err)
	_, b, err := svc.Issue(id, identity.PrincipalDriver, time.Now())
	require.NoError(t, err)
	assert.NotEqual(t, a.SessionID, b.SessionID)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc, err := crypto.NewJWTService(secret, time.Minute)
	require.NoError(t, err)

	token, _, err := svc.Issue(kernel.NewUUID(), identity.PrincipalClient, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	svc, err := crypto.NewJWTService(secret, time.Hour)
	require.NoError(t, err)
	other, err := crypto.NewJWTService(strings.Repeat("x", 32), time.Hour)
	require.NoError(t, err)

	token, _, err := other.Issue(kernel.NewUUID(), identity.PrincipalClient, time.Now())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	svc, err := crypto.NewJWTService(secret, time.Hour)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": kernel.NewUUID().String(),
		"typ": "admin",
		"iss": "logistics",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(unsigned)
	require.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestJWTService_RejectsUnknownPrincipalType(t *testing.T) {
	svc, err := crypto.NewJWTService(secret, time.Hour)
	require.NoError(t, err)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": kernel.NewUUID().String(),
		"typ": "root",
		"iss": "logistics",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = svc.Verify(forged)
	require.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestNewJWTService_ShortSecret(t *testing.T) {
	_, err := crypto.NewJWTService("short", time.Hour)
	require.ErrorIs(t, err, crypto.ErrSecretTooShort)
}
