// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/wellness-admin/internal/model"
)

// Backend names accepted by Config.Type.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config selects and tunes a cache backend.
type Config struct {
	Type            string
	RedisURL        string
	Prefix          string
	DefaultTTL      time.Duration
	MaxSize         int
	CleanupInterval time.Duration

	// FallbackToMemory makes NewCache return a memory cache when Redis is
	// unreachable instead of failing.
	FallbackToMemory bool
}

// DefaultConfig returns an in-memory configuration.
func DefaultConfig() Config {
	return Config{
		Type:             BackendMemory,
		Prefix:           DefaultRedisPrefix,
		DefaultTTL:       time.Hour,
		MaxSize:          1000,
		CleanupInterval:  time.Minute,
		FallbackToMemory: true,
	}
}

// NewCache builds the backend named by cfg.Type.
func NewCache(cfg Config, logger *slog.Logger) (Cacher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Type {
	case BackendRedis:
		rc, err := NewRedisCacheFromURL(cfg.RedisURL, cfg.Prefix, cfg.DefaultTTL)
		if err == nil {
			logger.Info("cache backend ready", "backend", BackendRedis, "prefix", cfg.Prefix)
			return rc, nil
		}
		if !cfg.FallbackToMemory {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		logger.Warn("redis unavailable, falling back to memory cache",
			"category", model.EventCategoryCache, "error", err)
	case BackendMemory, "":
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Type)
	}

	logger.Info("cache backend ready", "backend", BackendMemory, "max_size", cfg.MaxSize)
	return NewMemoryCache(MemoryCacheOptions{
		DefaultTTL:      cfg.DefaultTTL,
		MaxSize:         cfg.MaxSize,
		CleanupInterval: cfg.CleanupInterval,
	}), nil
}
