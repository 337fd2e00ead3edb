package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

// signClaims builds a token outside the service so tests can control exp and
// sub directly.
func signClaims(t *testing.T, secret []byte, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestTokenService(t *testing.T) {
	tokens := NewTokenService(testSecret, time.Hour)

	t.Run("issued token validates to the same user", func(t *testing.T) {
		token, err := tokens.Issue("user-123")
		require.NoError(t, err)

		userID, err := tokens.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", userID)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signClaims(t, testSecret, jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		})

		_, err := tokens.Validate(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		token := signClaims(t, []byte("other-secret"), jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})

		_, err := tokens.Validate(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("missing subject claim", func(t *testing.T) {
		token := signClaims(t, testSecret, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})

		_, err := tokens.Validate(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := tokens.Validate("not.a.jwt")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("non-positive ttl falls back to thirty days", func(t *testing.T) {
		s := NewTokenService(testSecret, 0)
		assert.Equal(t, DefaultTokenTTL, s.ttl)
	})
}
