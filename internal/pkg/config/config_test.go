package config

import (
	"testing"

	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestGetEnv_Default(t *testing.T) {
	assert.Equal(t, "fallback", GetEnv("CONFIG_TEST_UNSET_KEY", "fallback"))
}

func TestGetEnv_Set(t *testing.T) {
	t.Setenv("CONFIG_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("CONFIG_TEST_KEY", "fallback"))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("CONFIG_TEST_INT", "42")
	assert.Equal(t, 42, GetEnvAsInt("CONFIG_TEST_INT", 7))

	t.Setenv("CONFIG_TEST_INT", "not-a-number")
	assert.Equal(t, 7, GetEnvAsInt("CONFIG_TEST_INT", 7))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("CONFIG_TEST_BOOL", "true")
	assert.True(t, GetEnvAsBool("CONFIG_TEST_BOOL", false))

	t.Setenv("CONFIG_TEST_BOOL", "banana")
	assert.False(t, GetEnvAsBool("CONFIG_TEST_BOOL", false))
}

func TestValidate_MissingRequired(t *testing.T) {
	cfg := &models.Config{}

	err := Validate(cfg)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "MARKETPLACE_API_URL")
	assert.Contains(t, err.Error(), "MARKETPLACE_API_KEY")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidate_BadBaseURL(t *testing.T) {
	cfg := &models.Config{}
	cfg.Marketplace.BaseURL = "marketplace.internal"
	cfg.Marketplace.APIKey = "key"
	cfg.JWT.Secret = "secret"

	err := Validate(cfg)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "MARKETPLACE_API_URL")
}

func TestValidate_OK(t *testing.T) {
	cfg := &models.Config{}
	cfg.Marketplace.BaseURL = "https://api.karhabty.com"
	cfg.Marketplace.APIKey = "key"
	cfg.JWT.Secret = "secret"

	assert.NoError(t, Validate(cfg))
}
