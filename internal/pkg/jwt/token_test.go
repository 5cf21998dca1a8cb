package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "karhabty-admin-test",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	token, expiresAt, err := GenerateToken(userID, "admin@karhabty.com", "superadmin", cfg)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := ValidateToken(token, cfg.Secret)
	assert.NoError(t, err)
	assert.Equal(t, userID.String(), (*claims)["user_id"])
	assert.Equal(t, "admin@karhabty.com", (*claims)["email"])
	assert.Equal(t, "superadmin", (*claims)["role"])
	assert.Equal(t, cfg.Issuer, (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	token, _, err := GenerateToken(uuid.New(), "admin@karhabty.com", "superadmin", cfg)
	assert.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "test-secret")
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Expiration = -1

	token, _, err := GenerateToken(uuid.New(), "admin@karhabty.com", "superadmin", cfg)
	assert.NoError(t, err)

	_, err = ValidateToken(token, cfg.Secret)
	assert.Error(t, err)
}
