// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/wellness-admin/internal/cache"
	"github.com/olegiv/wellness-admin/internal/store"
	"github.com/olegiv/wellness-admin/internal/version"
)

// Event listing bounds.
const (
	defaultEventLimit = 50
	maxEventLimit     = 500
)

// SystemHandler serves health, cache and event log endpoints.
type SystemHandler struct {
	db        *sql.DB
	queries   *store.Queries
	cache     cache.Cacher
	version   version.Info
	logger    *slog.Logger
	startTime time.Time
}

// NewSystemHandler creates a new system handler.
func NewSystemHandler(db *sql.DB, c cache.Cacher, info version.Info, logger *slog.Logger) *SystemHandler {
	return &SystemHandler{
		db:        db,
		queries:   store.New(db),
		cache:     c,
		version:   info,
		logger:    logger,
		startTime: time.Now(),
	}
}

// Routes registers the system endpoints on r.
func (h *SystemHandler) Routes(r chi.Router) {
	r.Get(RouteHealth, h.Health)
	r.Get(RouteCacheStats, h.CacheStats)
	r.Get(RouteEvents, h.Events)
}

// Check represents a single health check result.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Health handles GET /health. It returns 503 when the database is unreachable.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]Check{
		"database": h.checkDatabase(ctx),
		"cache":    h.checkCache(ctx),
	}

	status, code := "healthy", http.StatusOK
	if checks["database"].Status != "ok" {
		status, code = "unhealthy", http.StatusServiceUnavailable
	} else if checks["cache"].Status != "ok" {
		status = "degraded"
	}

	writeJSONStatus(w, code, map[string]any{
		"status":  status,
		"version": h.version.String(),
		"uptime":  time.Since(h.startTime).Round(time.Second).String(),
		"checks":  checks,
	})
}

func (h *SystemHandler) checkDatabase(ctx context.Context) Check {
	start := time.Now()
	if err := h.db.PingContext(ctx); err != nil {
		return Check{Status: "error", Message: err.Error()}
	}
	return Check{Status: "ok", Latency: time.Since(start).String()}
}

func (h *SystemHandler) checkCache(ctx context.Context) Check {
	start := time.Now()
	if _, err := h.cache.Has(ctx, "health"); err != nil {
		return Check{Status: "error", Message: err.Error()}
	}
	return Check{Status: "ok", Latency: time.Since(start).String()}
}

// CacheStats handles GET /cache/stats.
func (h *SystemHandler) CacheStats(w http.ResponseWriter, _ *http.Request) {
	sp, ok := h.cache.(cache.StatsProvider)
	if !ok {
		writeJSONError(w, http.StatusNotImplemented, "Cache backend does not report statistics")
		return
	}
	writeJSONSuccess(w, map[string]any{"stats": sp.Stats()})
}

// eventResponse is one row of GET /events.
type eventResponse struct {
	ID        int64     `json:"id"`
	Level     string    `json:"level"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Metadata  string    `json:"metadata"`
	CreatedAt time.Time `json:"createdAt"`
}

// Events handles GET /events?limit=N, newest first.
func (h *SystemHandler) Events(w http.ResponseWriter, r *http.Request) {
	limit := defaultEventLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			writeJSONError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxEventLimit)
	}

	rows, err := h.queries.ListEvents(r.Context(), int64(limit))
	if err != nil {
		h.logger.Error("failed to list events", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	events := make([]eventResponse, len(rows))
	for i, e := range rows {
		events[i] = eventResponse(e)
	}
	writeJSONSuccess(w, map[string]any{"events": events})
}
