// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/wellness-admin/internal/admin"
	"github.com/olegiv/wellness-admin/internal/model"
)

// AdminHandler serves the navigation and page registry screens.
type AdminHandler struct {
	console *admin.Console
	logger  *slog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(console *admin.Console, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{console: console, logger: logger}
}

// Routes registers every admin endpoint on r.
func (h *AdminHandler) Routes(r chi.Router) {
	r.Get(RouteLinkTargets, h.LinkTargets)
	r.Get(RoutePages, h.Pages)

	r.Post(RouteNavDrafts, h.OpenNav)
	r.Route(RouteDraftsNav, func(r chi.Router) {
		r.Get("/", h.GetNav)
		r.Delete("/", h.closeDraft)
		r.Post(RouteSuffixMove, h.MoveNav)
		r.Post(RouteSuffixItems, h.AddNavItem)
		r.Put(RouteItemsItemID, h.UpdateNavItem)
		r.Delete(RouteItemsItemID, h.DeleteNavItem)
		r.Post(RouteItemsItemID+RouteSuffixActive, h.SetNavItemActive)
		r.Post(RouteItemsItemID+RouteSuffixMegaMenu, h.ToggleMegaMenu)
		r.Post(RouteSuffixCommit, h.CommitNav)
	})

	r.Post(RouteColumnDrafts, h.OpenColumns)
	r.Route(RouteDraftsColumns, func(r chi.Router) {
		r.Get("/", h.GetColumns)
		r.Delete("/", h.closeDraft)
		r.Post(RouteSuffixMove, h.MoveColumn)
		r.Post(RouteSuffixColumns, h.AddColumn)
		r.Delete(RouteColumnsID, h.RemoveColumn)
		r.Post(RouteColumnsID+RouteSuffixMove, h.MoveColumnLink)
		r.Post(RouteColumnsID+RouteSuffixLinks, h.AddColumnLink)
		r.Delete(RouteColumnsID+RouteLinksID, h.RemoveColumnLink)
		r.Post(RouteSuffixCommit, h.CommitColumns)
	})

	r.Post(RouteSettingsMenuDrafts, h.OpenSettingsMenu)
	r.Route(RouteDraftsSettingsMenu, func(r chi.Router) {
		r.Get("/", h.GetSettingsMenu)
		r.Delete("/", h.closeDraft)
		r.Post(RouteSuffixMove, h.MoveSettingsMenu)
		r.Post(RouteItemsItemID+RouteSuffixActive, h.SetSettingsMenuActive)
		r.Post(RouteSuffixCommit, h.CommitSettingsMenu)
	})

	r.Post(RoutePageDrafts, h.OpenPages)
	r.Route(RouteDraftsPages, func(r chi.Router) {
		r.Get("/", h.GetPages)
		r.Delete("/", h.closeDraft)
		r.Post(RouteViewsToggle, h.TogglePage)
		r.Post(RouteSuffixReset, h.ResetPages)
		r.Post(RouteSuffixCommit, h.CommitPages)
	})
}

// LinkTargets handles GET /link-targets.
func (h *AdminHandler) LinkTargets(w http.ResponseWriter, r *http.Request) {
	targets, err := h.console.LinkTargets(r.Context())
	if err != nil {
		writeAdminError(w, r, h.logger, err)
		return
	}
	writeJSONSuccess(w, map[string]any{"targets": targets})
}

// Pages handles GET /pages, the committed page map with visibility.
func (h *AdminHandler) Pages(w http.ResponseWriter, r *http.Request) {
	rows, err := h.console.PageRows(r.Context())
	if err != nil {
		writeAdminError(w, r, h.logger, err)
		return
	}
	writeJSONSuccess(w, map[string]any{"pages": rows})
}

// closeDraft handles DELETE on any draft: the draft is dropped uncommitted.
func (h *AdminHandler) closeDraft(w http.ResponseWriter, r *http.Request) {
	if !h.console.Close(chi.URLParam(r, "id")) {
		writeAdminError(w, r, h.logger, admin.ErrDraftNotFound)
		return
	}
	writeJSONSuccess(w, nil)
}

// collectionKey resolves the {collection} URL segment.
func collectionKey(r *http.Request) (model.SettingKey, bool) {
	key, ok := collections[chi.URLParam(r, "collection")]
	return key, ok
}

// draftHeader is the part of every draft response shared by all editors.
func draftHeader(id string, key model.SettingKey, dirty bool) map[string]any {
	return map[string]any{"id": id, "key": key, "dirty": dirty}
}
