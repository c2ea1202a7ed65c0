package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndVerifyToken(t *testing.T) {
	token, err := GenerateToken(testSecret, "1h", 42, "sarah@studio.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "sarah@studio.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestGenerateToken_InvalidExpiry(t *testing.T) {
	_, err := GenerateToken(testSecret, "um dia", 1, "a@b.com", "admin")
	assert.Error(t, err)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, "1h", 1, "a@b.com", "admin")
	require.NoError(t, err)

	claims, err := VerifyToken("other-secret", token)
	assert.Error(t, err)
	assert.Nil(t, claims, "no partial claims on verification failure")
}

func TestVerifyToken_Expired(t *testing.T) {
	token, err := GenerateToken(testSecret, "-1h", 1, "a@b.com", "admin")
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, token)
	assert.Error(t, err)
}

func TestVerifyToken_Malformed(t *testing.T) {
	_, err := VerifyToken(testSecret, "not.a.token")
	assert.Error(t, err)

	_, err = VerifyToken(testSecret, "")
	assert.Error(t, err)
}

func TestDecodeToken_NoSignatureCheck(t *testing.T) {
	token, err := GenerateToken(testSecret, "1h", 7, "view@studio.com", "reception")
	require.NoError(t, err)

	// decode ignores the signing secret entirely
	claims, ok := DecodeToken(token)
	require.True(t, ok)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "reception", claims.Role)
}

func TestDecodeToken_GarbageReturnsFalse(t *testing.T) {
	claims, ok := DecodeToken("garbage")
	assert.False(t, ok)
	assert.Nil(t, claims)
}
