// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	Port        int           `env:"PORT" envDefault:"8080"`
	DBPath      string        `env:"DB_PATH"`
	JWTSecret   string        `env:"JWT_SECRET,required,notEmpty"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	LogLevel    slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	MetricsPath string        `env:"METRICS_PATH" envDefault:"/metrics"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("token TTL must be positive, got %s", cfg.TokenTTL)
	}
	if !strings.HasPrefix(cfg.MetricsPath, "/") {
		return nil, fmt.Errorf("metrics path must start with /: %q", cfg.MetricsPath)
	}

	return &cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// InMemory reports whether sessions live only in process memory.
func (c *Config) InMemory() bool {
	return c.DBPath == ""
}
