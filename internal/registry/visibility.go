// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package registry

import "github.com/olegiv/wellness-admin/internal/model"

// Visibility reports whether the header is shown on view. A view without an
// explicit setting is visible.
func Visibility(settings model.PageSettings, view model.View) bool {
	if s, ok := settings[view]; ok {
		return s.ShowHeader
	}
	return true
}

// ToggleVisibility flips the effective header visibility of view and records
// it explicitly. The returned map is a copy; once toggled a view keeps an
// explicit entry, even when it matches the default again.
func ToggleVisibility(settings model.PageSettings, view model.View) model.PageSettings {
	out := settings.Clone()
	out[view] = model.PageSetting{ShowHeader: !Visibility(settings, view)}
	return out
}

// ResetVisibility returns empty settings, restoring every view to its default.
func ResetVisibility() model.PageSettings {
	return model.PageSettings{}
}

// PageRow is a page map entry with its effective header visibility.
type PageRow struct {
	Page
	ShowHeader bool `json:"showHeader"`
	Explicit   bool `json:"explicit"`
}

// Rows joins the page map with the visibility settings for display.
func Rows(m *PageMap, settings model.PageSettings) []PageRow {
	pages := m.Pages()
	out := make([]PageRow, len(pages))
	for i, p := range pages {
		_, explicit := settings[p.View]
		out[i] = PageRow{Page: p, ShowHeader: Visibility(settings, p.View), Explicit: explicit}
	}
	return out
}
