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

type columnRequest struct {
	Title string `json:"title"`
}

type columnLinkRequest struct {
	Label string `json:"label"`
	Link  string `json:"link"`
}

func columnsView(id string, cd *admin.ColumnsDraft) map[string]any {
	d := draftHeader(id, cd.Key(), cd.Dirty())
	d["columns"] = cd.Columns()
	return map[string]any{"draft": d}
}

func (h *AdminHandler) columnsDraft(w http.ResponseWriter, r *http.Request) (string, *admin.ColumnsDraft, bool) {
	id := chi.URLParam(r, "id")
	cd, err := h.console.Columns(id)
	if err != nil {
		writeAdminError(w, r, h.logger, err)
		return "", nil, false
	}
	return id, cd, true
}

// OpenColumns handles POST /columns/{collection}/drafts.
func (h *AdminHandler) OpenColumns(w http.ResponseWriter, r *http.Request) {
	key, ok := collectionKey(r)
	if !ok {
		writeAdminError(w, r, h.logger, admin.ErrUnknownCollection)
		return
	}
	id, cd, err := h.console.OpenColumns(r.Context(), key)
	if err != nil {
		writeAdminError(w, r, h.logger, err)
		return
	}
	h.logger.Debug(logDraftOpened, "draft", id, "key", key)
	writeJSONStatus(w, http.StatusCreated, columnsView(id, cd))
}

// GetColumns handles GET /drafts/columns/{id}.
func (h *AdminHandler) GetColumns(w http.ResponseWriter, r *http.Request) {
	id, cd, ok := h.columnsDraft(w, r)
	if !ok {
		return
	}
	writeJSONSuccess(w, columnsView(id, cd))
}

// MoveColumn handles POST /drafts/columns/{id}/move.
func (h *AdminHandler) MoveColumn(w http.ResponseWriter, r *http.Request) {
	id, cd, ok := h.columnsDraft(w, r)
	if !ok {
		return
	}
	req, ok := decodeMove(w, r)
	if !ok {
		return
	}
	cd.MoveColumn(req.Index, req.Direction)
	writeJSONSuccess(w, columnsView(id, cd))
}

// AddColumn handles POST /drafts/columns/{id}/columns.
func (h *AdminHandler) AddColumn(w http.ResponseWriter, r *http.Request) {
	id, cd, ok := h.columnsDraft(w, r)
	if !ok {
		return
	}
	var req columnRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if navigation.SanitizeLabel(req.Title) == "" {
		writeJSONError(w, http.StatusBadRequest, "title is required")
		return
	}
	col := cd.AddColumn(req.Title)
	resp := columnsView(id, cd)
	resp["column"] = col
	writeJSONStatus(w, http.StatusCreated, resp)
}

// RemoveColumn handles DELETE /drafts/columns/{id}/columns/{columnID}?confirm=true.
func (h *AdminHandler) RemoveColumn(w http.ResponseWriter, r *http.Request) {
	id, cd, ok := h.columnsDraft(w, r)
	if !ok {
		return
	}
	conf := newQueryConfirmer(r)
	removed, err := cd.RemoveColumn(r.Context(), chi.URLParam(r, "columnID"), conf)
	if err != nil {
		writeAdminError(w, r, h.logger, err)
		return
	}
	writeConfirmation(w, conf, removed, columnsView(id, cd))
}

// MoveColumnLink handles POST /drafts/columns/{id}/columns/{columnID}/move.
func (h *AdminHandler) MoveColumnLink(w http.ResponseWriter, r *http.Request) {
	id, cd, ok := h.columnsDraft(w, r)
	if !ok {
		return
	}
	req, ok := decodeMove(w, r)
	if !ok {
		return
	}
	if err := cd.MoveLink(chi.URLParam(r, "columnID"), req.Index, req.Direction); err != nil {
		writeAdminError(w, r, h.logger, err)
		return
	}
	writeJSONSuccess(w, columnsView(id, cd))
}

// AddColumnLink handles POST /drafts/columns/{id}/columns/{columnID}/links.
func (h *AdminHandler) AddColumnLink(w http.ResponseWriter, r *http.Request) {
	id, cd, ok := h.columnsDraft(w, r)
	if !ok {
		return
	}
	var req columnLinkRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if navigation.SanitizeLabel(req.Label) == "" {
		writeJSONError(w, http.StatusBadRequest, "label is required")
		return
	}
	link, err := cd.AddLink(chi.URLParam(r, "columnID"), req.Label, req.Link)
	if err != nil {
		writeAdminError(w, r, h.logger, err)
		return
	}
	resp := columnsView(id, cd)
	resp["link"] = link
	writeJSONStatus(w, http.StatusCreated, resp)
}

// RemoveColumnLink handles DELETE /drafts/columns/{id}/columns/{columnID}/links/{linkID}.
func (h *AdminHandler) RemoveColumnLink(w http.ResponseWriter, r *http.Request) {
	id, cd, ok := h.columnsDraft(w, r)
	if !ok {
		return
	}
	if err := cd.RemoveLink(chi.URLParam(r, "columnID"), chi.URLParam(r, "linkID")); err != nil {
		writeAdminError(w, r, h.logger, err)
		return
	}
	writeJSONSuccess(w, columnsView(id, cd))
}

// CommitColumns handles POST /drafts/columns/{id}/commit.
func (h *AdminHandler) CommitColumns(w http.ResponseWriter, r *http.Request) {
	id, cd, ok := h.columnsDraft(w, r)
	if !ok {
		return
	}
	if err := cd.Commit(r.Context()); err != nil {
		writeAdminError(w, r, h.logger, err)
		return
	}
	h.logger.Info(logDraftCommitted, "category", model.EventCategoryNavigation, "draft", id, "key", cd.Key())
	writeJSONSuccess(w, columnsView(id, cd))
}
