// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package settings reads and writes the named JSON blobs that hold every
// navigation collection and the page visibility map.
package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/olegiv/wellness-admin/internal/store"
)

// ErrNotFound is returned by Store.Get when nothing is stored under a key.
var ErrNotFound = errors.New("setting not found")

// Store is the get/set contract of the settings backend. Set is a full
// replacement of the blob.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// SQLStore persists blobs in the settings table.
type SQLStore struct {
	queries *store.Queries
	now     func() time.Time
}

// NewSQLStore creates a store on db, which may be a *sql.DB or *sql.Tx.
func NewSQLStore(db store.DBTX) *SQLStore {
	return &SQLStore{
		queries: store.New(db),
		now:     time.Now,
	}
}

// Get returns the raw blob stored under key.
func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	row, err := s.queries.GetSetting(ctx, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading setting %s: %w", key, err)
	}
	return []byte(row.Value), nil
}

// Set replaces the blob stored under key.
func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	err := s.queries.UpsertSetting(ctx, store.UpsertSettingParams{
		Key:       key,
		Value:     string(value),
		UpdatedAt: s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("writing setting %s: %w", key, err)
	}
	return nil
}

var _ Store = (*SQLStore)(nil)
