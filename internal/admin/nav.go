// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/olegiv/wellness-admin/internal/model"
	"github.com/olegiv/wellness-admin/internal/navigation"
	"github.com/olegiv/wellness-admin/internal/ordering"
)

var (
	// ErrItemNotFound is returned when an edit names an id the draft does not hold.
	ErrItemNotFound = errors.New("item not found")

	// ErrMegaMenuUnsupported is returned when a mega menu trigger is set
	// outside the desktop header collection.
	ErrMegaMenuUnsupported = errors.New("mega menu is only available in the header navigation")
)

// ItemInput carries the editable fields of a navigation item.
type ItemInput struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Link  string `json:"link"`
}

// NavDraft edits a header or mobile navigation collection.
type NavDraft struct {
	*Draft[[]model.NavItem]
	logger *slog.Logger
}

// Items returns the working collection in position order.
func (n *NavDraft) Items() []model.NavItem {
	return ordering.Sorted(n.Value())
}

// Move swaps the item at index with its neighbour in dir. Out of range moves
// leave the collection as is.
func (n *NavDraft) Move(index int, dir ordering.Direction) {
	n.Update(func(items []model.NavItem) []model.NavItem {
		return navigation.Move(items, index, dir)
	})
}

// SetActive shows or hides one item.
func (n *NavDraft) SetActive(id string, active bool) error {
	return n.edit(id, func(items []model.NavItem) []model.NavItem {
		return navigation.SetActive(items, id, active)
	})
}

// ToggleMegaMenu makes id the mega menu trigger, or clears it when id
// already is the trigger.
func (n *NavDraft) ToggleMegaMenu(id string) error {
	if n.Key() != model.SettingHeaderNav {
		return ErrMegaMenuUnsupported
	}
	return n.edit(id, func(items []model.NavItem) []model.NavItem {
		return navigation.SetMegaMenuTrigger(items, id)
	})
}

// Add appends a new active item at the end of the collection.
func (n *NavDraft) Add(in ItemInput) model.NavItem {
	item := navigation.NewItem(in.Label, in.Icon, in.Link)
	n.Update(func(items []model.NavItem) []model.NavItem {
		out := navigation.Add(items, item)
		item = out[navigation.IndexOf(out, item.ID)]
		return out
	})
	return item
}

// UpdateItem replaces the label, icon and link of id.
func (n *NavDraft) UpdateItem(id string, in ItemInput) error {
	return n.edit(id, func(items []model.NavItem) []model.NavItem {
		return navigation.Update(items, id, func(it *model.NavItem) {
			it.Label, it.Icon, it.Link = in.Label, in.Icon, in.Link
		})
	})
}

// Delete removes id once c confirms. A declined confirmation returns false
// and no error.
func (n *NavDraft) Delete(ctx context.Context, id string, c Confirmer) (bool, error) {
	items := ordering.Sorted(n.Value())
	idx := navigation.IndexOf(items, id)
	if idx < 0 {
		return false, ErrItemNotFound
	}
	label := items[idx].Label
	if !c.Confirm(ctx, fmt.Sprintf("Supprimer « %s » ?", label)) {
		return false, nil
	}
	err := n.edit(id, func(items []model.NavItem) []model.NavItem {
		return navigation.Remove(items, id)
	})
	return err == nil, err
}

// Warnings lists advisory problems with the working collection. They never
// block a commit.
func (n *NavDraft) Warnings() []string {
	if n.Key() != model.SettingMobileNav {
		return nil
	}
	items := n.Value()
	if !navigation.MobileCapExceeded(items) {
		return nil
	}
	return []string{fmt.Sprintf("%d éléments actifs : la barre mobile n'en affiche que %d",
		navigation.ActiveCount(items), navigation.MobileActiveLimit)}
}

// Commit saves the collection, logging a warning when the mobile cap is exceeded.
func (n *NavDraft) Commit(ctx context.Context) error {
	if n.Key() == model.SettingMobileNav {
		if items := n.Value(); navigation.MobileCapExceeded(items) {
			n.logger.Warn("mobile navigation exceeds active item limit",
				"category", model.EventCategoryNavigation,
				"active", navigation.ActiveCount(items),
				"limit", navigation.MobileActiveLimit)
		}
	}
	return n.Draft.Commit(ctx)
}

// edit applies fn when id exists in the draft.
func (n *NavDraft) edit(id string, fn func([]model.NavItem) []model.NavItem) error {
	ok := n.apply(func(items []model.NavItem) ([]model.NavItem, bool) {
		if navigation.IndexOf(items, id) < 0 {
			return items, false
		}
		return fn(items), true
	})
	if !ok {
		return ErrItemNotFound
	}
	return nil
}
