// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs the periodic maintenance jobs of the console.
package scheduler

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/olegiv/wellness-admin/internal/model"
	"github.com/olegiv/wellness-admin/internal/store"
)

// Job schedules.
const (
	SpecPurgeDrafts  = "*/5 * * * *"
	SpecPruneEvents  = "30 3 * * *"
	SpecPruneClients = "@hourly"
)

// DraftPurger closes editing sessions that were abandoned.
type DraftPurger interface {
	PurgeStale(maxAge time.Duration) int
}

// ClientPruner forgets rate limiter state.
type ClientPruner interface {
	Prune() bool
}

// Options configures the maintenance jobs.
type Options struct {
	DraftTTL       time.Duration
	EventRetention time.Duration
}

// Scheduler runs maintenance jobs on cron schedules.
type Scheduler struct {
	queries *store.Queries
	cron    *cron.Cron
	logger  *slog.Logger
	drafts  DraftPurger
	clients ClientPruner
	opts    Options
	now     func() time.Time
}

// New creates a scheduler. clients may be nil.
func New(db *sql.DB, drafts DraftPurger, clients ClientPruner, opts Options, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		queries: store.New(db),
		cron:    cron.New(),
		logger:  logger,
		drafts:  drafts,
		clients: clients,
		opts:    opts,
		now:     time.Now,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(SpecPurgeDrafts, func() { s.PurgeDrafts() }); err != nil {
		return err
	}
	_, err := s.cron.AddFunc(SpecPruneEvents, func() {
		if _, err := s.PruneEvents(context.Background()); err != nil {
			s.logger.Error("failed to prune event log", "category", model.EventCategorySystem, "error", err)
		}
	})
	if err != nil {
		return err
	}
	if s.clients != nil {
		if _, err := s.cron.AddFunc(SpecPruneClients, func() {
			if s.clients.Prune() {
				s.logger.Info("rate limiter client table reset")
			}
		}); err != nil {
			return err
		}
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// PurgeDrafts closes drafts untouched for longer than the draft TTL.
func (s *Scheduler) PurgeDrafts() int {
	n := s.drafts.PurgeStale(s.opts.DraftTTL)
	if n > 0 {
		s.logger.Info("purged stale drafts", "count", n, "ttl", s.opts.DraftTTL)
	}
	return n
}

// PruneEvents deletes event log rows older than the retention window.
func (s *Scheduler) PruneEvents(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.opts.EventRetention).UTC()
	n, err := s.queries.DeleteEventsBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("pruned event log", "deleted", n, "before", cutoff.Format(time.RFC3339))
	}
	return n, nil
}
