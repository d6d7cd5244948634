// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package navigation holds the operations on navigation collections and the
// catalog of link targets offered to link-editing controls.
//
// Every function is a pure transformation: it returns a new collection and
// leaves its input untouched. Unknown ids are absorbed as no-ops.
package navigation

import (
	"html"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/olegiv/wellness-admin/internal/model"
	"github.com/olegiv/wellness-admin/internal/ordering"
)

// MobileActiveLimit is the advisory number of active items in the mobile bar.
const MobileActiveLimit = 5

var labelPolicy = bluemonday.StrictPolicy()

// SanitizeLabel strips markup and surrounding whitespace from an operator-supplied label.
// Entities escaped by the policy are decoded again; labels are plain text.
func SanitizeLabel(label string) string {
	return strings.TrimSpace(html.UnescapeString(labelPolicy.Sanitize(label)))
}

// NewItem creates an active item with a fresh id. Its position is assigned by Add.
func NewItem(label, icon, link string) model.NavItem {
	return model.NavItem{
		ID:     uuid.NewString(),
		Label:  SanitizeLabel(label),
		Icon:   icon,
		Link:   link,
		Active: true,
	}
}

// Move moves the item at index (in position order) one step up or down.
func Move(items []model.NavItem, index int, dir ordering.Direction) []model.NavItem {
	return ordering.Move(items, index, dir)
}

// IndexOf returns the index of the item with id in position order, or -1.
func IndexOf(items []model.NavItem, id string) int {
	return ordering.IndexFunc(items, func(it model.NavItem) bool { return it.ID == id })
}

// Add appends item at the end of the collection.
func Add(items []model.NavItem, item model.NavItem) []model.NavItem {
	return ordering.Append(items, item)
}

// Remove deletes the item with id and renumbers the rest.
func Remove(items []model.NavItem, id string) []model.NavItem {
	return ordering.RemoveFunc(items, func(it model.NavItem) bool { return it.ID == id })
}

// Update applies fn to the item with id. The id and position cannot be changed by fn.
func Update(items []model.NavItem, id string, fn func(*model.NavItem)) []model.NavItem {
	out := slices.Clone(items)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		keepID, keepPos := out[i].ID, out[i].Position
		fn(&out[i])
		out[i].ID, out[i].Position = keepID, keepPos
		out[i].Label = SanitizeLabel(out[i].Label)
	}
	return out
}

// SetActive sets the visibility of a single item; positions and the other
// items are left as they are.
func SetActive(items []model.NavItem, id string, active bool) []model.NavItem {
	out := slices.Clone(items)
	for i := range out {
		if out[i].ID == id {
			out[i].Active = active
		}
	}
	return out
}

// SetMegaMenuTrigger toggles the mega menu flag on the item with id and
// clears it on every other item, so at most one trigger exists. Calling it
// on the current trigger leaves the collection without a trigger.
func SetMegaMenuTrigger(items []model.NavItem, id string) []model.NavItem {
	out := slices.Clone(items)
	for i := range out {
		if out[i].ID == id {
			out[i].HasMegaMenu = !out[i].HasMegaMenu
		} else {
			out[i].HasMegaMenu = false
		}
	}
	return out
}

// MegaMenuTrigger returns the item that opens the mega menu, if any.
func MegaMenuTrigger(items []model.NavItem) (model.NavItem, bool) {
	for _, it := range items {
		if it.HasMegaMenu {
			return it, true
		}
	}
	return model.NavItem{}, false
}

// ActiveCount returns the number of active items.
func ActiveCount(items []model.NavItem) int {
	n := 0
	for _, it := range items {
		if it.Active {
			n++
		}
	}
	return n
}

// MobileCapExceeded reports whether more than MobileActiveLimit items are active.
// The limit is advisory: callers warn the operator but still accept the collection.
func MobileCapExceeded(items []model.NavItem) bool {
	return ActiveCount(items) > MobileActiveLimit
}
