package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envBindings {
		t.Setenv(env, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "SiMATA", cfg.App.Name)
	assert.Equal(t, "0.1", cfg.App.Version)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8000", cfg.ListenAddr())
	assert.Equal(t, 10*time.Second, cfg.Database.StoreTimeout)
	assert.False(t, cfg.Database.Configured())
	assert.False(t, cfg.Schema.Strict)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", " 9090 ")
	t.Setenv("DATABASE_URL", "mongodb://mongo:27017")
	t.Setenv("DATABASE_NAME", "simata")
	t.Setenv("STORE_TIMEOUT", "3s")
	t.Setenv("STRICT_SCHEMA", "true")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr())
	assert.True(t, cfg.Database.Configured())
	assert.Equal(t, 3*time.Second, cfg.Database.StoreTimeout)
	assert.True(t, cfg.Schema.Strict)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_URLWithoutName(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "mongodb://mongo:27017")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Database.Configured())
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_FORMAT", "xml")

	_, err := Load()
	assert.ErrorContains(t, err, "LOG_FORMAT")
}
