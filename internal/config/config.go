package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	Addr     string `env:"SAMKO_ADDR" envDefault:":3000"`
	Env      string `env:"SAMKO_ENV" envDefault:"development"`
	LogLevel string `env:"SAMKO_LOG_LEVEL" envDefault:"info"`

	// Optional. Without Redis the price cache and import queue stay in process.
	RedisAddr string `env:"SAMKO_REDIS_ADDR"`
	// Optional. Without a data dir Badger runs in memory and posts reset on restart.
	DataDir   string `env:"SAMKO_DATA_DIR"`

	PriceWindow time.Duration `env:"SAMKO_PRICE_WINDOW" envDefault:"5m"`

	// Token bucket for POST/PUT/DELETE, per client address
	WriteRPS   float64 `env:"SAMKO_WRITE_RPS" envDefault:"2"`
	WriteBurst int     `env:"SAMKO_WRITE_BURST" envDefault:"10"`

	ImportQueueSize int `env:"SAMKO_IMPORT_QUEUE_SIZE" envDefault:"100"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// UseRedis returns true if a Redis server is configured.
func (c Config) UseRedis() bool {
	return c.RedisAddr != ""
}

// Load reads an optional .env file, then parses environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the server cannot run with.
func (c Config) Validate() error {
	if c.PriceWindow <= 0 {
		return fmt.Errorf("SAMKO_PRICE_WINDOW must be positive, got %s", c.PriceWindow)
	}
	if c.WriteRPS <= 0 || c.WriteBurst <= 0 {
		return fmt.Errorf("SAMKO_WRITE_RPS and SAMKO_WRITE_BURST must be positive")
	}
	if c.ImportQueueSize <= 0 {
		return fmt.Errorf("SAMKO_IMPORT_QUEUE_SIZE must be positive")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("SAMKO_LOG_LEVEL: %w", err)
	}
	return nil
}

// NewLogger builds a development logger in development and a JSON production logger otherwise.
func (c Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return nil, err
	}

	var zc zap.Config
	if c.IsDevelopment() {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
