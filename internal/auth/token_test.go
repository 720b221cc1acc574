package auth

import (
	"testing"

	"jobboard_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(secret string, ttlHours int) {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = ttlHours
	config.AppConfig = cfg
}

func TestGenerateAndParseToken(t *testing.T) {
	setTestConfig("unit-test-secret", 1)

	token, err := GenerateToken("user-123", "employer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "employer", claims.Role)
}

func TestParseToken_RejectsGarbage(t *testing.T) {
	setTestConfig("unit-test-secret", 1)

	_, err := ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_RejectsWrongSecret(t *testing.T) {
	setTestConfig("secret-one", 1)
	token, err := GenerateToken("user-123", "jobseeker")
	require.NoError(t, err)

	setTestConfig("secret-two", 1)
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
