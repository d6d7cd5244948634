// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"WADMIN_DB_PATH" envDefault:"./data/wadmin.db"`
	ServerHost string `env:"WADMIN_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"WADMIN_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"WADMIN_ENV" envDefault:"development"`
	LogLevel   string `env:"WADMIN_LOG_LEVEL" envDefault:"info"`

	// Cache configuration
	RedisURL     string        `env:"WADMIN_REDIS_URL"` // Optional, memory cache when empty
	CachePrefix  string        `env:"WADMIN_CACHE_PREFIX" envDefault:"wadmin:"`
	CacheTTL     time.Duration `env:"WADMIN_CACHE_TTL" envDefault:"1h"`
	CacheMaxSize int           `env:"WADMIN_CACHE_MAX_SIZE" envDefault:"1000"`

	// Admin sessions
	DraftTTL           time.Duration `env:"WADMIN_DRAFT_TTL" envDefault:"2h"`
	EventRetentionDays int           `env:"WADMIN_EVENT_RETENTION_DAYS" envDefault:"30"`

	// API rate limiting, requests per second and burst per client IP
	APIRateLimit float64 `env:"WADMIN_API_RATE_LIMIT" envDefault:"10"`
	APIRateBurst int     `env:"WADMIN_API_RATE_BURST" envDefault:"20"`

	DoSeed bool `env:"WADMIN_DO_SEED" envDefault:"false"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return net.JoinHostPort(c.ServerHost, strconv.Itoa(c.ServerPort))
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// EventRetention returns how long event log rows are kept.
func (c Config) EventRetention() time.Duration {
	return time.Duration(c.EventRetentionDays) * 24 * time.Hour
}

// Load parses environment variables and returns a validated Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every out-of-range value at once.
func (c Config) Validate() error {
	var errs []error
	if c.ServerPort < 1 || c.ServerPort > 65535 {
		errs = append(errs, fmt.Errorf("WADMIN_SERVER_PORT must be between 1 and 65535, got %d", c.ServerPort))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("WADMIN_LOG_LEVEL %q is not one of debug, info, warn, error", c.LogLevel))
	}
	if c.DraftTTL <= 0 {
		errs = append(errs, errors.New("WADMIN_DRAFT_TTL must be positive"))
	}
	if c.EventRetentionDays < 1 {
		errs = append(errs, errors.New("WADMIN_EVENT_RETENTION_DAYS must be at least 1"))
	}
	if c.APIRateLimit <= 0 || c.APIRateBurst < 1 {
		errs = append(errs, errors.New("WADMIN_API_RATE_LIMIT and WADMIN_API_RATE_BURST must be positive"))
	}
	if c.CacheMaxSize < 0 {
		errs = append(errs, errors.New("WADMIN_CACHE_MAX_SIZE must not be negative"))
	}
	return errors.Join(errs...)
}
