package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken(secret, 1234567890123, TokenAccess, time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(secret, TokenAccess, token)
	require.NoError(t, err)
	assert.Equal(t, uint64(1234567890123), claims.UserID)
}

func TestParseRejects(t *testing.T) {
	secret := []byte("test-secret")

	expired, err := GenerateToken(secret, 1, TokenAccess, -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(secret, TokenAccess, expired)
	assert.Error(t, err)

	refresh, err := GenerateToken(secret, 1, "refresh", time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(secret, TokenAccess, refresh)
	assert.Error(t, err)

	valid, err := GenerateToken(secret, 1, TokenAccess, time.Minute)
	require.NoError(t, err)
	_, err = ParseToken([]byte("other"), TokenAccess, valid)
	assert.Error(t, err)
}
