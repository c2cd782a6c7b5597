package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadClean(t *testing.T) *Config {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)
	return cfg
}

func TestLoadDefaults(t *testing.T) {
	cfg := loadClean(t)

	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, ".sahaara", cfg.Storage.Dir)
	assert.Equal(t, "prompt", cfg.Location.Permission)
	assert.True(t, cfg.Location.Available)
	assert.Equal(t, 2*time.Second, cfg.UX.FollowUpDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.UX.RedirectDelay)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "sqlite")
	t.Setenv("LOCATION_PERMISSION", "granted")
	t.Setenv("UX_FOLLOW_UP_DELAY", "50ms")

	cfg := loadClean(t)

	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "granted", cfg.Location.Permission)
	assert.Equal(t, 50*time.Millisecond, cfg.UX.FollowUpDelay)
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "redis")
	viper.Reset()
	t.Cleanup(viper.Reset)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage backend")
}

func TestValidateRejectsUnknownPermission(t *testing.T) {
	t.Setenv("LOCATION_PERMISSION", "always")
	viper.Reset()
	t.Cleanup(viper.Reset)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "location permission")
}
