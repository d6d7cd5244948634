// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the plain data structures shared by the admin console.
package model

// NavItem is one entry of a navigation collection (desktop header or mobile bar).
type NavItem struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Icon        string `json:"icon"` // icon-library key or data URI
	Link        string `json:"link"` // canonical path or external URL
	Position    int    `json:"position"`
	Active      bool   `json:"active"`
	HasMegaMenu bool   `json:"hasMegaMenu,omitempty"` // desktop collection only
}

// GetPosition returns the 1-based position of the item.
func (n *NavItem) GetPosition() int { return n.Position }

// SetPosition sets the 1-based position of the item.
func (n *NavItem) SetPosition(p int) { n.Position = p }

// SettingsMenuItem is an entry of the account/settings menu.
// Action holds the legacy "navigateToX" action name of older blobs.
type SettingsMenuItem struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Icon     string `json:"icon,omitempty"`
	View     View   `json:"view,omitempty"`
	Action   string `json:"action,omitempty"`
	Position int    `json:"position"`
	Active   bool   `json:"active"`
}

func (s *SettingsMenuItem) GetPosition() int  { return s.Position }
func (s *SettingsMenuItem) SetPosition(p int) { s.Position = p }

// LinkColumn is a titled column of links, used by the footer and the mega menu.
type LinkColumn struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Position int          `json:"position"`
	Links    []ColumnLink `json:"links"`
}

func (c *LinkColumn) GetPosition() int  { return c.Position }
func (c *LinkColumn) SetPosition(p int) { c.Position = p }

// ColumnLink is a single link inside a LinkColumn.
type ColumnLink struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Link     string `json:"link"`
	Position int    `json:"position"`
}

func (l *ColumnLink) GetPosition() int  { return l.Position }
func (l *ColumnLink) SetPosition(p int) { l.Position = p }

// LinkTarget is a selectable destination offered by link-editing controls.
// Section headers are Disabled and never selectable.
type LinkTarget struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Disabled bool   `json:"disabled"`
}
