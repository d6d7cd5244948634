// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package settings

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/olegiv/wellness-admin/internal/cache"
)

// cacheKeyPrefix namespaces settings blobs inside a shared cache.
const cacheKeyPrefix = "setting:"

// CachedStore is a read-through cache in front of another Store. Writes go to
// the backing store first and then drop the cached copy, so a failed write
// never leaves a stale value behind.
type CachedStore struct {
	next   Store
	cache  cache.Cacher
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedStore wraps next with c. A zero ttl uses the cache default.
func NewCachedStore(next Store, c cache.Cacher, ttl time.Duration, logger *slog.Logger) *CachedStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedStore{next: next, cache: c, ttl: ttl, logger: logger}
}

// Get serves key from cache, falling back to the backing store. Cache
// failures degrade to a backing-store read.
func (s *CachedStore) Get(ctx context.Context, key string) ([]byte, error) {
	ck := cacheKeyPrefix + key

	data, err := s.cache.Get(ctx, ck)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("settings cache read failed", "key", key, "error", err)
	}

	data, err = s.next.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, ck, data, s.ttl); err != nil {
		s.logger.Debug("settings cache fill failed", "key", key, "error", err)
	}
	return data, nil
}

// Set writes through to the backing store and invalidates the cached copy.
func (s *CachedStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.next.Set(ctx, key, value); err != nil {
		return err
	}
	if err := s.cache.Delete(ctx, cacheKeyPrefix+key); err != nil {
		s.logger.Warn("settings cache invalidation failed", "key", key, "error", err)
	}
	return nil
}

// Invalidate drops every cached settings blob.
func (s *CachedStore) Invalidate(ctx context.Context) error {
	if pd, ok := s.cache.(cache.PrefixDeleter); ok {
		return pd.DeleteByPrefix(ctx, cacheKeyPrefix)
	}
	return s.cache.Clear(ctx)
}

var _ Store = (*CachedStore)(nil)
