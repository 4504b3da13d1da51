package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coldreach/config"
	"coldreach/models"
)

func TestGenerateAndParseJWTToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	user := &models.User{
		Email: "sara@acme.io",
		Role:  "user",
	}
	user.ID = 42

	token, err := GenerateJWTToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWTToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "sara@acme.io", claims.Email)
	assert.Equal(t, "user", claims.Role)

	// Tokens are valid for seven days
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, (7 * 24 * time.Hour).Seconds(), remaining.Seconds(), 60)
}

func TestParseJWTTokenRejectsWrongSecret(t *testing.T) {
	config.AppConfig.JWTSecret = "first-secret"
	user := &models.User{Email: "sara@acme.io", Role: "user"}

	token, err := GenerateJWTToken(user)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "second-secret"
	_, err = ParseJWTToken(token)
	assert.Error(t, err)
}

func TestParseJWTTokenRejectsGarbage(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	_, err := ParseJWTToken("not.a.token")
	assert.Error(t, err)
}
