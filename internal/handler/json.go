// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/olegiv/wellness-admin/internal/admin"
	"github.com/olegiv/wellness-admin/internal/ordering"
)

// writeJSONError writes a JSON error response.
func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   message,
	})
}

// writeJSONSuccess writes a JSON success response.
func writeJSONSuccess(w http.ResponseWriter, data map[string]any) {
	writeJSONStatus(w, http.StatusOK, data)
}

// writeJSONStatus writes a JSON success response with a custom status code.
func writeJSONStatus(w http.ResponseWriter, statusCode int, data map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data == nil {
		data = make(map[string]any)
	}
	data["success"] = true
	_ = json.NewEncoder(w).Encode(data)
}

// decodeJSON reads a bounded JSON body into v, rejecting unknown fields.
// It writes the 400 response itself and reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// writeAdminError maps console errors to status codes. Unexpected errors are
// logged and reported as 500 without detail.
func writeAdminError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, admin.ErrDraftNotFound):
		writeJSONError(w, http.StatusNotFound, "Draft not found")
	case errors.Is(err, admin.ErrItemNotFound):
		writeJSONError(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, admin.ErrUnknownView):
		writeJSONError(w, http.StatusNotFound, "Unknown view")
	case errors.Is(err, admin.ErrUnknownCollection):
		writeJSONError(w, http.StatusNotFound, "Unknown collection")
	case errors.Is(err, admin.ErrMegaMenuUnsupported):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("admin request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

// moveRequest is the body of every move endpoint.
type moveRequest struct {
	Index     int                `json:"index"`
	Direction ordering.Direction `json:"direction"`
}

func decodeMove(w http.ResponseWriter, r *http.Request) (moveRequest, bool) {
	var req moveRequest
	if !decodeJSON(w, r, &req) {
		return req, false
	}
	if !req.Direction.Valid() {
		writeJSONError(w, http.StatusBadRequest, "direction must be up or down")
		return req, false
	}
	return req, true
}

// activeRequest is the body of the show/hide endpoints.
type activeRequest struct {
	Active bool `json:"active"`
}

// queryConfirmer answers confirmation prompts with the confirm query
// parameter and records the prompt it was asked.
type queryConfirmer struct {
	ok     bool
	prompt string
}

func newQueryConfirmer(r *http.Request) *queryConfirmer {
	return &queryConfirmer{ok: r.URL.Query().Get("confirm") == "true"}
}

func (c *queryConfirmer) Confirm(_ context.Context, prompt string) bool {
	c.prompt = prompt
	return c.ok
}

// writeConfirmation reports the outcome of a confirmed action. A declined
// confirmation is not an error: the caller gets the prompt to show.
func writeConfirmation(w http.ResponseWriter, c *queryConfirmer, done bool, data map[string]any) {
	if data == nil {
		data = make(map[string]any)
	}
	data["confirmed"] = done
	if !done {
		data["prompt"] = c.prompt
	}
	writeJSONSuccess(w, data)
}
