// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package registry aggregates every navigable view of the application into a
// single page map and manages the per-view chrome visibility settings.
package registry

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/olegiv/wellness-admin/internal/model"
	"github.com/olegiv/wellness-admin/internal/navigation"
)

// Source tells which input first introduced a view into the page map.
type Source string

const (
	SourceRoute        Source = "route"
	SourceHeaderNav    Source = "header_nav"
	SourceMobileNav    Source = "mobile_nav"
	SourceSettingsMenu Source = "settings_menu"
	SourceOrphan       Source = "orphan"
)

// legacyActionPrefix prefixes the action names stored by older settings menus.
const legacyActionPrefix = "navigateTo"

// Page is one entry of the page map.
type Page struct {
	View   model.View `json:"view"`
	Label  string     `json:"label"`
	Source Source     `json:"source"`
}

// PageMap is an insertion-ordered set of views with their display labels.
// The first source to add a view owns its label.
type PageMap struct {
	pages []Page
	index map[model.View]int
}

func newPageMap() *PageMap {
	return &PageMap{index: make(map[model.View]int)}
}

// add inserts view unless it is already present. Returns true if inserted.
func (m *PageMap) add(view model.View, label string, src Source) bool {
	if view == "" {
		return false
	}
	if _, ok := m.index[view]; ok {
		return false
	}
	m.index[view] = len(m.pages)
	m.pages = append(m.pages, Page{View: view, Label: label, Source: src})
	return true
}

// Pages returns the entries in insertion order.
func (m *PageMap) Pages() []Page {
	out := make([]Page, len(m.pages))
	copy(out, m.pages)
	return out
}

// Label returns the label of view.
func (m *PageMap) Label(view model.View) (string, bool) {
	i, ok := m.index[view]
	if !ok {
		return "", false
	}
	return m.pages[i].Label, true
}

// Has reports whether view is in the map.
func (m *PageMap) Has(view model.View) bool {
	_, ok := m.index[view]
	return ok
}

// Len returns the number of views.
func (m *PageMap) Len() int {
	return len(m.pages)
}

// BuildPageMap collects every known view, in strict precedence order: static
// routes, header navigation, mobile navigation, settings menu, then orphan
// views. A later source never overwrites the label of an existing view.
func BuildPageMap(routes []model.Route, headerNav, mobileNav []model.NavItem, settingsMenu []model.SettingsMenuItem) *PageMap {
	m := newPageMap()

	for _, r := range routes {
		m.add(r.View, r.Label, SourceRoute)
	}

	for _, it := range headerNav {
		if view, ok := ViewForLink(routes, it.Link); ok {
			m.add(view, it.Label, SourceHeaderNav)
		}
	}
	for _, it := range mobileNav {
		if view, ok := ViewForLink(routes, it.Link); ok {
			m.add(view, it.Label, SourceMobileNav)
		}
	}

	for _, it := range NormalizeSettingsMenu(settingsMenu) {
		m.add(it.View, it.Label, SourceSettingsMenu)
	}

	for _, r := range OrphanViews {
		m.add(r.View, r.Label, SourceOrphan)
	}

	return m
}

// ViewForLink resolves a navigation link to a view. A link equal to a
// route's canonical path maps to that route's view; any other internal link
// maps to its path without the leading slash. External and empty links have
// no view.
func ViewForLink(routes []model.Route, link string) (model.View, bool) {
	link = strings.TrimSpace(link)
	if link == "" || navigation.IsExternal(link) {
		return "", false
	}
	for _, r := range routes {
		if r.CanonicalPath() == link {
			return r.View, true
		}
	}
	view := strings.TrimPrefix(link, "/")
	if view == "" {
		return "", false
	}
	return model.View(view), true
}

// ViewFromAction converts a legacy settings-menu action name such as
// "navigateToProfile" into its view ("profile").
func ViewFromAction(action string) (model.View, bool) {
	name := strings.TrimPrefix(strings.TrimSpace(action), legacyActionPrefix)
	if name == "" {
		return "", false
	}
	r, size := utf8.DecodeRuneInString(name)
	return model.View(string(unicode.ToLower(r)) + name[size:]), true
}

// NormalizeSettingsMenu returns a copy of items in which legacy action
// names have been converted to explicit views.
func NormalizeSettingsMenu(items []model.SettingsMenuItem) []model.SettingsMenuItem {
	out := make([]model.SettingsMenuItem, len(items))
	for i, it := range items {
		if it.View == "" && it.Action != "" {
			if view, ok := ViewFromAction(it.Action); ok {
				it.View = view
				it.Action = ""
			}
		}
		out[i] = it
	}
	return out
}
