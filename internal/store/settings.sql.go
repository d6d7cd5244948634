// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

// Setting is a stored settings blob.
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

const getSetting = `SELECT key, value, updated_at FROM settings WHERE key = ?`

// GetSetting returns the blob stored under key, or sql.ErrNoRows.
func (q *Queries) GetSetting(ctx context.Context, key string) (Setting, error) {
	var s Setting
	err := q.db.QueryRowContext(ctx, getSetting, key).Scan(&s.Key, &s.Value, &s.UpdatedAt)
	return s, err
}

const upsertSetting = `
INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

// UpsertSettingParams holds the values of UpsertSetting.
type UpsertSettingParams struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// UpsertSetting replaces the blob stored under key.
func (q *Queries) UpsertSetting(ctx context.Context, arg UpsertSettingParams) error {
	_, err := q.db.ExecContext(ctx, upsertSetting, arg.Key, arg.Value, arg.UpdatedAt)
	return err
}

const insertSettingIfAbsent = `
INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO NOTHING`

// InsertSettingIfAbsent stores the blob only when key has no value yet.
// Returns true if a row was written.
func (q *Queries) InsertSettingIfAbsent(ctx context.Context, arg UpsertSettingParams) (bool, error) {
	res, err := q.db.ExecContext(ctx, insertSettingIfAbsent, arg.Key, arg.Value, arg.UpdatedAt)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

const listSettingKeys = `SELECT key FROM settings ORDER BY key`

// ListSettingKeys returns every stored key.
func (q *Queries) ListSettingKeys(ctx context.Context) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, listSettingKeys)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

const deleteSetting = `DELETE FROM settings WHERE key = ?`

// DeleteSetting removes the blob stored under key.
func (q *Queries) DeleteSetting(ctx context.Context, key string) error {
	_, err := q.db.ExecContext(ctx, deleteSetting, key)
	return err
}
