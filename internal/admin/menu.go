// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package admin

import (
	"slices"

	"github.com/olegiv/wellness-admin/internal/model"
	"github.com/olegiv/wellness-admin/internal/ordering"
)

// SettingsMenuDraft edits the account/settings menu. Items are reordered and
// shown or hidden; their views come from the declared view table.
type SettingsMenuDraft struct {
	*Draft[[]model.SettingsMenuItem]
}

// Items returns the working menu in position order.
func (m *SettingsMenuDraft) Items() []model.SettingsMenuItem {
	return ordering.Sorted(m.Value())
}

// Move swaps the item at index with its neighbour in dir.
func (m *SettingsMenuDraft) Move(index int, dir ordering.Direction) {
	m.Update(func(items []model.SettingsMenuItem) []model.SettingsMenuItem {
		return ordering.Move(items, index, dir)
	})
}

// SetActive shows or hides one menu entry.
func (m *SettingsMenuDraft) SetActive(id string, active bool) error {
	ok := m.apply(func(items []model.SettingsMenuItem) ([]model.SettingsMenuItem, bool) {
		i := slices.IndexFunc(items, func(it model.SettingsMenuItem) bool { return it.ID == id })
		if i < 0 {
			return items, false
		}
		out := slices.Clone(items)
		out[i].Active = active
		return out, true
	})
	if !ok {
		return ErrItemNotFound
	}
	return nil
}
