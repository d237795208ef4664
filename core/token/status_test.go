package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/token"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func TestTokenStatus(t *testing.T) {
	t.Parallel()

	t.Run("empty token is unknown", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, token.StatusUnknown, token.TokenStatus(""))
	})

	t.Run("opaque non-JWT token is unknown", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, token.StatusUnknown, token.TokenStatus("not-a-jwt"))
	})

	t.Run("JWT without expiry claim is unknown", func(t *testing.T) {
		t.Parallel()

		tok := signedToken(t, jwt.MapClaims{"sub": "user-1"})

		assert.Equal(t, token.StatusUnknown, token.TokenStatus(tok))
	})

	t.Run("future expiry is valid", func(t *testing.T) {
		t.Parallel()

		tok := signedToken(t, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		status := token.TokenStatus(tok)
		assert.Equal(t, token.StatusValid, status)
		assert.False(t, status.Expired())
	})

	t.Run("past expiry is expired", func(t *testing.T) {
		t.Parallel()

		tok := signedToken(t, jwt.MapClaims{
			"exp": time.Now().Add(-time.Hour).Unix(),
		})

		status := token.TokenStatus(tok)
		assert.Equal(t, token.StatusExpired, status)
		assert.True(t, status.Expired())
	})

	t.Run("tolerates Bearer scheme prefix", func(t *testing.T) {
		t.Parallel()

		tok := signedToken(t, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		assert.Equal(t, token.StatusValid, token.TokenStatus("Bearer "+tok))
	})
}

func TestStatus_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unknown", token.StatusUnknown.String())
	assert.Equal(t, "valid", token.StatusValid.String())
	assert.Equal(t, "expired", token.StatusExpired.String())
}
