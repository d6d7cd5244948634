// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package admin implements the editing sessions of the admin console. Each
// screen loads a settings blob into a Draft, applies local edits and writes
// the whole blob back on an explicit commit.
package admin

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/olegiv/wellness-admin/internal/model"
	"github.com/olegiv/wellness-admin/internal/settings"
)

// Draft is an in-memory working copy of one settings blob. It is safe for
// concurrent use.
type Draft[T any] struct {
	mu        sync.Mutex
	store     settings.Store
	key       model.SettingKey
	base      T
	value     T
	version   uint64
	committed uint64
	touched   time.Time
	now       func() time.Time
	onCommit  func(ctx context.Context, key model.SettingKey)
}

// Open loads key from s. A missing blob opens the draft on def.
func Open[T any](ctx context.Context, s settings.Store, key model.SettingKey, def T) (*Draft[T], error) {
	v, err := settings.Load(ctx, s, key, def)
	if err != nil {
		return nil, fmt.Errorf("opening draft %s: %w", key, err)
	}
	return newDraft(s, key, v), nil
}

func newDraft[T any](s settings.Store, key model.SettingKey, v T) *Draft[T] {
	d := &Draft[T]{store: s, key: key, base: v, value: v, now: time.Now}
	d.touched = d.now()
	return d
}

// Key returns the settings key the draft writes to.
func (d *Draft[T]) Key() model.SettingKey { return d.key }

// Value returns the current working value.
func (d *Draft[T]) Value() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.value
}

// Update replaces the working value with fn applied to it. fn must not keep
// or mutate its argument; the transforms in navigation, ordering and
// registry all return fresh values.
func (d *Draft[T]) Update(fn func(T) T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.value = fn(d.value)
	d.version++
	d.touched = d.now()
}

// apply is Update for edits that may not apply. The draft only changes
// when fn reports ok.
func (d *Draft[T]) apply(fn func(T) (T, bool)) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := fn(d.value)
	if !ok {
		return false
	}
	d.value = v
	d.version++
	d.touched = d.now()
	return true
}

// Dirty reports whether the draft has edits that were not committed.
func (d *Draft[T]) Dirty() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.version != d.committed
}

// Discard drops uncommitted edits and returns to the last loaded or
// committed value. Discarding while a commit is in flight leaves the draft
// on the value that commit stores.
func (d *Draft[T]) Discard() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.value = d.base
	d.version++
	d.committed = d.version
	d.touched = d.now()
}

// Commit writes the working value as one full replacement. On failure the
// stored blob is untouched and the draft stays dirty. Edits made while the
// write is in flight keep the draft dirty.
func (d *Draft[T]) Commit(ctx context.Context) error {
	d.mu.Lock()
	v, ver := d.value, d.version
	d.mu.Unlock()

	if err := settings.Save(ctx, d.store, d.key, v); err != nil {
		return fmt.Errorf("committing %s: %w", d.key, err)
	}

	d.mu.Lock()
	d.base = v
	switch {
	case d.version == ver:
		d.committed = ver
	case d.committed == d.version:
		// discarded during the write
		d.value = v
	}
	d.touched = d.now()
	hook := d.onCommit
	d.mu.Unlock()

	if hook != nil {
		hook(ctx, d.key)
	}
	return nil
}

// LastTouched returns when the draft was opened or last edited.
func (d *Draft[T]) LastTouched() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.touched
}

// session is the part of a draft the Console needs for housekeeping.
type session interface {
	Key() model.SettingKey
	Dirty() bool
	LastTouched() time.Time
}

func (d *Draft[T]) setOnCommit(fn func(context.Context, model.SettingKey)) {
	d.mu.Lock()
	d.onCommit = fn
	d.mu.Unlock()
}
