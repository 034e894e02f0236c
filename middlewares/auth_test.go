package middlewares

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hvac-backoffice/models"
)

func setSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
}

func TestGenerateAndParseJWT(t *testing.T) {
	setSecret(t)

	user := &models.User{ID: 42, Role: &models.Role{Name: "sales"}}
	token, err := GenerateJWT(user)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "sales", claims.Role)
}

func TestShareTokenRoundTrip(t *testing.T) {
	setSecret(t)

	token, err := GenerateShareToken("invoice:7", time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "invoice:7", claims.Subject)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	setSecret(t)

	token, err := GenerateShareToken("invoice:7", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	setSecret(t)

	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}
