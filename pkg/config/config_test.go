package config_test

import (
	"log/slog"
	"testing"

	"github.com/amirasaad/bankledger/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "Bank.data", cfg.Data.File)
	assert.Equal(t, "MySecretKey123", cfg.Data.CodecKey)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("DATA_FILE", "/var/lib/bankledger/accounts.data")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "/var/lib/bankledger/accounts.data", cfg.Data.File)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelInfo,
		"":      slog.LevelInfo,
	}
	for name, want := range tests {
		assert.Equal(t, want, config.Log{Level: name}.SlogLevel())
	}
}
