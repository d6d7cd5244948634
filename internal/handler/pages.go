// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/wellness-admin/internal/admin"
	"github.com/olegiv/wellness-admin/internal/model"
)

func pagesView(id string, pd *admin.PagesDraft) map[string]any {
	d := draftHeader(id, pd.Key(), pd.Dirty())
	d["pages"] = pd.Rows()
	return map[string]any{"draft": d}
}

func (h *AdminHandler) pagesDraft(w http.ResponseWriter, r *http.Request) (string, *admin.PagesDraft, bool) {
	id := chi.URLParam(r, "id")
	pd, err := h.console.Pages(id)
	if err != nil {
		writeAdminError(w, r, h.logger, err)
		return "", nil, false
	}
	return id, pd, true
}

// OpenPages handles POST /pages/drafts.
func (h *AdminHandler) OpenPages(w http.ResponseWriter, r *http.Request) {
	id, pd, err := h.console.OpenPages(r.Context())
	if err != nil {
		writeAdminError(w, r, h.logger, err)
		return
	}
	h.logger.Debug(logDraftOpened, "draft", id, "key", pd.Key())
	writeJSONStatus(w, http.StatusCreated, pagesView(id, pd))
}

// GetPages handles GET /drafts/pages/{id}.
func (h *AdminHandler) GetPages(w http.ResponseWriter, r *http.Request) {
	id, pd, ok := h.pagesDraft(w, r)
	if !ok {
		return
	}
	writeJSONSuccess(w, pagesView(id, pd))
}

// TogglePage handles POST /drafts/pages/{id}/views/{view}/toggle. A view
// containing "/" is sent with it escaped as %2F.
func (h *AdminHandler) TogglePage(w http.ResponseWriter, r *http.Request) {
	id, pd, ok := h.pagesDraft(w, r)
	if !ok {
		return
	}
	// Views derived from nested links contain "/" and arrive escaped.
	raw, err := url.PathUnescape(chi.URLParam(r, "view"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid view")
		return
	}
	view := model.View(raw)
	shown, err := pd.Toggle(view)
	if err != nil {
		writeAdminError(w, r, h.logger, err)
		return
	}
	resp := pagesView(id, pd)
	resp["view"] = view
	resp["showHeader"] = shown
	writeJSONSuccess(w, resp)
}

// ResetPages handles POST /drafts/pages/{id}/reset?confirm=true.
func (h *AdminHandler) ResetPages(w http.ResponseWriter, r *http.Request) {
	id, pd, ok := h.pagesDraft(w, r)
	if !ok {
		return
	}
	conf := newQueryConfirmer(r)
	done := pd.Reset(r.Context(), conf)
	writeConfirmation(w, conf, done, pagesView(id, pd))
}

// CommitPages handles POST /drafts/pages/{id}/commit.
func (h *AdminHandler) CommitPages(w http.ResponseWriter, r *http.Request) {
	id, pd, ok := h.pagesDraft(w, r)
	if !ok {
		return
	}
	if err := pd.Commit(r.Context()); err != nil {
		writeAdminError(w, r, h.logger, err)
		return
	}
	h.logger.Info(logDraftCommitted, "category", model.EventCategoryPages, "draft", id)
	writeJSONSuccess(w, pagesView(id, pd))
}
