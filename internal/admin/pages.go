// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package admin

import (
	"context"
	"errors"

	"github.com/olegiv/wellness-admin/internal/model"
	"github.com/olegiv/wellness-admin/internal/registry"
)

// ErrUnknownView is returned when a visibility edit names a view that is not
// in the page map.
var ErrUnknownView = errors.New("unknown view")

// PagesDraft edits the per-view header visibility against the page map that
// was current when the draft was opened.
type PagesDraft struct {
	*Draft[model.PageSettings]
	pages *registry.PageMap
}

// Rows returns every known view with its effective visibility.
func (p *PagesDraft) Rows() []registry.PageRow {
	return registry.Rows(p.pages, p.Value())
}

// Toggle flips the header visibility of view and returns the new value.
func (p *PagesDraft) Toggle(view model.View) (bool, error) {
	if !p.pages.Has(view) {
		return false, ErrUnknownView
	}
	var shown bool
	p.Update(func(ps model.PageSettings) model.PageSettings {
		out := registry.ToggleVisibility(ps, view)
		shown = registry.Visibility(out, view)
		return out
	})
	return shown, nil
}

// Reset restores every view to its default once c confirms.
func (p *PagesDraft) Reset(ctx context.Context, c Confirmer) bool {
	if !c.Confirm(ctx, "Rétablir l'affichage par défaut de toutes les pages ?") {
		return false
	}
	p.Update(func(model.PageSettings) model.PageSettings {
		return registry.ResetVisibility()
	})
	return true
}
