// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/wellness-admin/internal/admin"
	"github.com/olegiv/wellness-admin/internal/model"
	"github.com/olegiv/wellness-admin/internal/navigation"
)

func navView(id string, nd *admin.NavDraft) map[string]any {
	d := draftHeader(id, nd.Key(), nd.Dirty())
	d["items"] = nd.Items()
	d["warnings"] = nd.Warnings()
	d["activeCount"] = navigation.ActiveCount(nd.Value())
	return map[string]any{"draft": d}
}

// navDraft loads the draft named by the {id} URL parameter.
func (h *AdminHandler) navDraft(w http.ResponseWriter, r *http.Request) (string, *admin.NavDraft, bool) {
	id := chi.URLParam(r, "id")
	nd, err := h.console.Nav(id)
	if err != nil {
		writeAdminError(w, r, h.logger, err)
		return "", nil, false
	}
	return id, nd, true
}

// OpenNav handles POST /nav/{collection}/drafts.
func (h *AdminHandler) OpenNav(w http.ResponseWriter, r *http.Request) {
	key, ok := collectionKey(r)
	if !ok {
		writeAdminError(w, r, h.logger, admin.ErrUnknownCollection)
		return
	}
	id, nd, err := h.console.OpenNav(r.Context(), key)
	if err != nil {
		writeAdminError(w, r, h.logger, err)
		return
	}
	h.logger.Debug(logDraftOpened, "draft", id, "key", key)
	writeJSONStatus(w, http.StatusCreated, navView(id, nd))
}

// GetNav handles GET /drafts/nav/{id}.
func (h *AdminHandler) GetNav(w http.ResponseWriter, r *http.Request) {
	id, nd, ok := h.navDraft(w, r)
	if !ok {
		return
	}
	writeJSONSuccess(w, navView(id, nd))
}

// MoveNav handles POST /drafts/nav/{id}/move.
func (h *AdminHandler) MoveNav(w http.ResponseWriter, r *http.Request) {
	id, nd, ok := h.navDraft(w, r)
	if !ok {
		return
	}
	req, ok := decodeMove(w, r)
	if !ok {
		return
	}
	nd.Move(req.Index, req.Direction)
	writeJSONSuccess(w, navView(id, nd))
}

// AddNavItem handles POST /drafts/nav/{id}/items.
func (h *AdminHandler) AddNavItem(w http.ResponseWriter, r *http.Request) {
	id, nd, ok := h.navDraft(w, r)
	if !ok {
		return
	}
	var req admin.ItemInput
	if !decodeJSON(w, r, &req) {
		return
	}
	if navigation.SanitizeLabel(req.Label) == "" {
		writeJSONError(w, http.StatusBadRequest, "label is required")
		return
	}
	item := nd.Add(req)
	resp := navView(id, nd)
	resp["item"] = item
	writeJSONStatus(w, http.StatusCreated, resp)
}

// UpdateNavItem handles PUT /drafts/nav/{id}/items/{itemID}.
func (h *AdminHandler) UpdateNavItem(w http.ResponseWriter, r *http.Request) {
	id, nd, ok := h.navDraft(w, r)
	if !ok {
		return
	}
	var req admin.ItemInput
	if !decodeJSON(w, r, &req) {
		return
	}
	if navigation.SanitizeLabel(req.Label) == "" {
		writeJSONError(w, http.StatusBadRequest, "label is required")
		return
	}
	if err := nd.UpdateItem(chi.URLParam(r, "itemID"), req); err != nil {
		writeAdminError(w, r, h.logger, err)
		return
	}
	writeJSONSuccess(w, navView(id, nd))
}

// SetNavItemActive handles POST /drafts/nav/{id}/items/{itemID}/active.
func (h *AdminHandler) SetNavItemActive(w http.ResponseWriter, r *http.Request) {
	id, nd, ok := h.navDraft(w, r)
	if !ok {
		return
	}
	var req activeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := nd.SetActive(chi.URLParam(r, "itemID"), req.Active); err != nil {
		writeAdminError(w, r, h.logger, err)
		return
	}
	writeJSONSuccess(w, navView(id, nd))
}

// ToggleMegaMenu handles POST /drafts/nav/{id}/items/{itemID}/mega-menu.
func (h *AdminHandler) ToggleMegaMenu(w http.ResponseWriter, r *http.Request) {
	id, nd, ok := h.navDraft(w, r)
	if !ok {
		return
	}
	if err := nd.ToggleMegaMenu(chi.URLParam(r, "itemID")); err != nil {
		writeAdminError(w, r, h.logger, err)
		return
	}
	writeJSONSuccess(w, navView(id, nd))
}

// DeleteNavItem handles DELETE /drafts/nav/{id}/items/{itemID}?confirm=true.
func (h *AdminHandler) DeleteNavItem(w http.ResponseWriter, r *http.Request) {
	id, nd, ok := h.navDraft(w, r)
	if !ok {
		return
	}
	conf := newQueryConfirmer(r)
	deleted, err := nd.Delete(r.Context(), chi.URLParam(r, "itemID"), conf)
	if err != nil {
		writeAdminError(w, r, h.logger, err)
		return
	}
	writeConfirmation(w, conf, deleted, navView(id, nd))
}

// CommitNav handles POST /drafts/nav/{id}/commit.
func (h *AdminHandler) CommitNav(w http.ResponseWriter, r *http.Request) {
	id, nd, ok := h.navDraft(w, r)
	if !ok {
		return
	}
	if err := nd.Commit(r.Context()); err != nil {
		writeAdminError(w, r, h.logger, err)
		return
	}
	h.logger.Info(logDraftCommitted, "category", model.EventCategoryNavigation, "draft", id, "key", nd.Key())
	writeJSONSuccess(w, navView(id, nd))
}
