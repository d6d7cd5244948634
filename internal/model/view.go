// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// View identifies one navigable screen of the application.
type View string

// Route is one row of the declared view table.
type Route struct {
	View  View   `json:"view"`
	Path  string `json:"path"`
	Label string `json:"label"`
}

// CanonicalPath returns the app path of the route, "/" + view unless Path is set.
func (r Route) CanonicalPath() string {
	if r.Path != "" {
		return r.Path
	}
	return "/" + string(r.View)
}

// PageSetting holds the chrome settings of a single view.
type PageSetting struct {
	ShowHeader bool `json:"showHeader"`
}

// PageSettings maps views to their explicit chrome settings.
// A view without an entry uses its default.
type PageSettings map[View]PageSetting

// Clone returns a copy of the settings map.
func (ps PageSettings) Clone() PageSettings {
	out := make(PageSettings, len(ps))
	for k, v := range ps {
		out[k] = v
	}
	return out
}
