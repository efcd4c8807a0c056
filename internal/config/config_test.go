package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_SESSION_SECRET", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingSessionSecret)
}

func TestLoadProductionWithSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_SESSION_SECRET", "4f6a1c9e2b8d")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, "4f6a1c9e2b8d", cfg.Auth.SessionSecret)
}

func TestLoadDevelopmentDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("AUTH_SESSION_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.App.IsProduction())
	assert.NotEmpty(t, cfg.Auth.SessionSecret)
	assert.Equal(t, "complaint-portal", cfg.App.Name)
	assert.Equal(t, 12*60, cfg.Auth.SessionTTLMinutes)
	assert.Equal(t, "admin@example.com", cfg.Seed.AdminEmail)
}
