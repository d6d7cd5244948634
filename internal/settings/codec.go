// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/olegiv/wellness-admin/internal/model"
)

// Load decodes the blob under key into a T. A missing key yields def.
func Load[T any](ctx context.Context, s Store, key model.SettingKey, def T) (T, error) {
	data, err := s.Get(ctx, string(key))
	if errors.Is(err, ErrNotFound) {
		return def, nil
	}
	if err != nil {
		return def, err
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return def, fmt.Errorf("decoding setting %s: %w", key, err)
	}
	return v, nil
}

// Save encodes v and stores it under key as one full replacement.
func Save[T any](ctx context.Context, s Store, key model.SettingKey, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding setting %s: %w", key, err)
	}
	return s.Set(ctx, string(key), data)
}
