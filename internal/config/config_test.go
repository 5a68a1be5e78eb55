package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Addr)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.UseRedis())
	assert.Empty(t, cfg.DataDir)
	assert.Equal(t, 5*time.Minute, cfg.PriceWindow)
	assert.Equal(t, 2.0, cfg.WriteRPS)
	assert.Equal(t, 10, cfg.WriteBurst)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SAMKO_ADDR", ":8080")
	t.Setenv("SAMKO_ENV", "production")
	t.Setenv("SAMKO_REDIS_ADDR", "localhost:6379")
	t.Setenv("SAMKO_PRICE_WINDOW", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.UseRedis())
	assert.Equal(t, 30*time.Second, cfg.PriceWindow)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("SAMKO_PRICE_WINDOW", "0s")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsBadLogLevel(t *testing.T) {
	t.Setenv("SAMKO_LOG_LEVEL", "chatty")
	_, err := Load()
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	cfg := Config{Env: "production", LogLevel: "warn"}
	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1))
	assert.True(t, logger.Core().Enabled(1))
}
