package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalis/internal/shared/authorization"
)

const testSecret = "test-secret-for-unit-tests"

func TestTokenService_IssueVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService(testSecret, 7)

	token, err := svc.Issue(42, "editor@example.com", authorization.RoleEditor)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	result := svc.Verify(token)
	require.True(t, result.Valid())
	require.NotNil(t, result.Claims)

	assert.Equal(t, uint(42), result.Claims.UserID)
	assert.Equal(t, "editor@example.com", result.Claims.Email)
	assert.Equal(t, authorization.RoleEditor, result.Claims.Role)

	// Expiration sits 7 days after issuance.
	iat := result.Claims.IssuedAt.Time
	exp := result.Claims.ExpiresAt.Time
	assert.Equal(t, 7*24*time.Hour, exp.Sub(iat))
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := NewTokenService(testSecret, 7)

	token, err := svc.Issue(1, "a@example.com", authorization.RoleWriter)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flip a character in the signature segment.
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	result := svc.Verify(tampered)
	assert.False(t, result.Valid())
	assert.Equal(t, StatusSignatureMismatch, result.Status)
	assert.Nil(t, result.Claims)
}

func TestTokenService_WrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-one", 7).Issue(1, "a@example.com", authorization.RoleWriter)
	require.NoError(t, err)

	result := NewTokenService("secret-two", 7).Verify(token)
	assert.Equal(t, StatusSignatureMismatch, result.Status)
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService(testSecret, 7)

	// Hand-roll a token whose expiry is already in the past.
	now := time.Now().UTC()
	claims := &Claims{
		UserID: 7,
		Email:  "old@example.com",
		Role:   authorization.RoleSuperAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-8 * 24 * time.Hour)),
			NotBefore: jwt.NewNumericDate(now.Add(-8 * 24 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	result := svc.Verify(expired)
	assert.False(t, result.Valid())
	assert.Equal(t, StatusExpired, result.Status)
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService(testSecret, 7)

	for _, garbage := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		result := svc.Verify(garbage)
		assert.False(t, result.Valid(), garbage)
		assert.Equal(t, StatusMalformed, result.Status, garbage)
	}
}

func TestTokenService_RejectsNonHMACAlg(t *testing.T) {
	svc := NewTokenService(testSecret, 7)

	// alg=none style token must not verify.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	result := svc.Verify(unsigned)
	assert.False(t, result.Valid())
}

func TestTokenService_SessionMaxAge(t *testing.T) {
	assert.Equal(t, 7*24*60*60, NewTokenService(testSecret, 7).SessionMaxAge())
	// Non-positive config falls back to 7 days.
	assert.Equal(t, 7*24*60*60, NewTokenService(testSecret, 0).SessionMaxAge())
}
