// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/wellness-admin/internal/admin"
	"github.com/olegiv/wellness-admin/internal/model"
)

func settingsMenuView(id string, md *admin.SettingsMenuDraft) map[string]any {
	d := draftHeader(id, md.Key(), md.Dirty())
	d["items"] = md.Items()
	return map[string]any{"draft": d}
}

func (h *AdminHandler) settingsMenuDraft(w http.ResponseWriter, r *http.Request) (string, *admin.SettingsMenuDraft, bool) {
	id := chi.URLParam(r, "id")
	md, err := h.console.SettingsMenu(id)
	if err != nil {
		writeAdminError(w, r, h.logger, err)
		return "", nil, false
	}
	return id, md, true
}

// OpenSettingsMenu handles POST /settings-menu/drafts.
func (h *AdminHandler) OpenSettingsMenu(w http.ResponseWriter, r *http.Request) {
	id, md, err := h.console.OpenSettingsMenu(r.Context())
	if err != nil {
		writeAdminError(w, r, h.logger, err)
		return
	}
	h.logger.Debug(logDraftOpened, "draft", id, "key", md.Key())
	writeJSONStatus(w, http.StatusCreated, settingsMenuView(id, md))
}

// GetSettingsMenu handles GET /drafts/settings-menu/{id}.
func (h *AdminHandler) GetSettingsMenu(w http.ResponseWriter, r *http.Request) {
	id, md, ok := h.settingsMenuDraft(w, r)
	if !ok {
		return
	}
	writeJSONSuccess(w, settingsMenuView(id, md))
}

// MoveSettingsMenu handles POST /drafts/settings-menu/{id}/move.
func (h *AdminHandler) MoveSettingsMenu(w http.ResponseWriter, r *http.Request) {
	id, md, ok := h.settingsMenuDraft(w, r)
	if !ok {
		return
	}
	req, ok := decodeMove(w, r)
	if !ok {
		return
	}
	md.Move(req.Index, req.Direction)
	writeJSONSuccess(w, settingsMenuView(id, md))
}

// SetSettingsMenuActive handles POST /drafts/settings-menu/{id}/items/{itemID}/active.
func (h *AdminHandler) SetSettingsMenuActive(w http.ResponseWriter, r *http.Request) {
	id, md, ok := h.settingsMenuDraft(w, r)
	if !ok {
		return
	}
	var req activeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := md.SetActive(chi.URLParam(r, "itemID"), req.Active); err != nil {
		writeAdminError(w, r, h.logger, err)
		return
	}
	writeJSONSuccess(w, settingsMenuView(id, md))
}

// CommitSettingsMenu handles POST /drafts/settings-menu/{id}/commit.
func (h *AdminHandler) CommitSettingsMenu(w http.ResponseWriter, r *http.Request) {
	id, md, ok := h.settingsMenuDraft(w, r)
	if !ok {
		return
	}
	if err := md.Commit(r.Context()); err != nil {
		writeAdminError(w, r, h.logger, err)
		return
	}
	h.logger.Info(logDraftCommitted, "category", model.EventCategoryNavigation, "draft", id, "key", md.Key())
	writeJSONSuccess(w, settingsMenuView(id, md))
}
