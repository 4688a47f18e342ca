package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestExpired(t *testing.T) {
	now := time.Now()

	assert.True(t, Expired(signedToken(t, now.Add(-time.Hour)), now))
	assert.False(t, Expired(signedToken(t, now.Add(time.Hour)), now))
}

func TestExpired_OpaqueTokenNeverExpires(t *testing.T) {
	assert.False(t, Expired("not-a-jwt", time.Now()))
	assert.False(t, Expired("", time.Now()))
}

func TestExpired_NoExpClaim(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	assert.False(t, Expired(s, time.Now()))
}
