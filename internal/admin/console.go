// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/olegiv/wellness-admin/internal/cache"
	"github.com/olegiv/wellness-admin/internal/model"
	"github.com/olegiv/wellness-admin/internal/navigation"
	"github.com/olegiv/wellness-admin/internal/registry"
	"github.com/olegiv/wellness-admin/internal/settings"
)

var (
	// ErrDraftNotFound is returned for unknown, closed or purged draft ids.
	ErrDraftNotFound = errors.New("draft not found")

	// ErrUnknownCollection is returned when a key does not name a collection
	// of the requested kind.
	ErrUnknownCollection = errors.New("unknown collection")
)

const linkTargetsCacheKey = "derived:link_targets"

// Console owns the open drafts of the admin screens and the read-only views
// derived from the settings store.
type Console struct {
	store   settings.Store
	logger  *slog.Logger
	targets *cache.TypedCache[[]model.LinkTarget]
	now     func() time.Time

	mu     sync.Mutex
	drafts map[string]session
}

// NewConsole creates a console over s. Derived link targets are cached in c
// for ttl.
func NewConsole(s settings.Store, c cache.Cacher, ttl time.Duration, logger *slog.Logger) *Console {
	if logger == nil {
		logger = slog.Default()
	}
	return &Console{
		store:   s,
		logger:  logger,
		targets: cache.NewTypedCache[[]model.LinkTarget](c, ttl),
		now:     time.Now,
		drafts:  make(map[string]session),
	}
}

// LinkTargets returns the selectable link targets for the link control.
func (c *Console) LinkTargets(ctx context.Context) ([]model.LinkTarget, error) {
	return c.targets.GetOrSet(ctx, linkTargetsCacheKey, func() ([]model.LinkTarget, error) {
		categories, err := settings.Load(ctx, c.store, model.SettingCategories, []model.Category{})
		if err != nil {
			return nil, err
		}
		courses, err := settings.Load(ctx, c.store, model.SettingCourses, []model.Course{})
		if err != nil {
			return nil, err
		}
		return navigation.BuildTargets(registry.Routes, categories, courses), nil
	})
}

// PageMap aggregates the stored navigation into the page map.
func (c *Console) PageMap(ctx context.Context) (*registry.PageMap, error) {
	header, err := settings.Load(ctx, c.store, model.SettingHeaderNav, []model.NavItem{})
	if err != nil {
		return nil, err
	}
	mobile, err := settings.Load(ctx, c.store, model.SettingMobileNav, []model.NavItem{})
	if err != nil {
		return nil, err
	}
	menu, err := settings.Load(ctx, c.store, model.SettingSettingsMenu, []model.SettingsMenuItem{})
	if err != nil {
		return nil, err
	}
	return registry.BuildPageMap(registry.Routes, header, mobile, menu), nil
}

// PageRows returns the committed page map joined with the committed visibility.
func (c *Console) PageRows(ctx context.Context) ([]registry.PageRow, error) {
	pm, err := c.PageMap(ctx)
	if err != nil {
		return nil, err
	}
	ps, err := settings.Load(ctx, c.store, model.SettingPageVisibility, model.PageSettings{})
	if err != nil {
		return nil, err
	}
	return registry.Rows(pm, ps), nil
}

// OpenNav opens a draft of the header or mobile navigation.
func (c *Console) OpenNav(ctx context.Context, key model.SettingKey) (string, *NavDraft, error) {
	if !model.IsNavCollection(key) {
		return "", nil, fmt.Errorf("%w: %s", ErrUnknownCollection, key)
	}
	d, err := Open(ctx, c.store, key, []model.NavItem{})
	if err != nil {
		return "", nil, err
	}
	nd := &NavDraft{Draft: d, logger: c.logger}
	return c.register(d, nd), nd, nil
}

// Nav returns an open navigation draft.
func (c *Console) Nav(id string) (*NavDraft, error) {
	return lookup[*NavDraft](c, id)
}

// OpenColumns opens a draft of the footer or mega menu columns.
func (c *Console) OpenColumns(ctx context.Context, key model.SettingKey) (string, *ColumnsDraft, error) {
	if !model.IsColumnCollection(key) {
		return "", nil, fmt.Errorf("%w: %s", ErrUnknownCollection, key)
	}
	d, err := Open(ctx, c.store, key, []model.LinkColumn{})
	if err != nil {
		return "", nil, err
	}
	cd := &ColumnsDraft{Draft: d}
	return c.register(d, cd), cd, nil
}

// Columns returns an open columns draft.
func (c *Console) Columns(id string) (*ColumnsDraft, error) {
	return lookup[*ColumnsDraft](c, id)
}

// OpenSettingsMenu opens a draft of the settings menu. Legacy action names
// are converted to views on load, so the next commit stores views.
func (c *Console) OpenSettingsMenu(ctx context.Context) (string, *SettingsMenuDraft, error) {
	items, err := settings.Load(ctx, c.store, model.SettingSettingsMenu, []model.SettingsMenuItem{})
	if err != nil {
		return "", nil, fmt.Errorf("opening draft %s: %w", model.SettingSettingsMenu, err)
	}
	d := newDraft(c.store, model.SettingSettingsMenu, registry.NormalizeSettingsMenu(items))
	md := &SettingsMenuDraft{Draft: d}
	return c.register(d, md), md, nil
}

// SettingsMenu returns an open settings menu draft.
func (c *Console) SettingsMenu(id string) (*SettingsMenuDraft, error) {
	return lookup[*SettingsMenuDraft](c, id)
}

// OpenPages opens a draft of the page visibility settings.
func (c *Console) OpenPages(ctx context.Context) (string, *PagesDraft, error) {
	pm, err := c.PageMap(ctx)
	if err != nil {
		return "", nil, err
	}
	d, err := Open(ctx, c.store, model.SettingPageVisibility, model.PageSettings{})
	if err != nil {
		return "", nil, err
	}
	pd := &PagesDraft{Draft: d, pages: pm}
	return c.register(d, pd), pd, nil
}

// Pages returns an open page visibility draft.
func (c *Console) Pages(id string) (*PagesDraft, error) {
	return lookup[*PagesDraft](c, id)
}

// Close forgets a draft without committing it. It reports whether the
// draft was open.
func (c *Console) Close(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.drafts[id]
	delete(c.drafts, id)
	return ok
}

// Len returns the number of open drafts.
func (c *Console) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.drafts)
}

// PurgeStale closes drafts untouched for longer than maxAge and returns how
// many were closed.
func (c *Console) PurgeStale(maxAge time.Duration) int {
	cutoff := c.now().Add(-maxAge)

	c.mu.Lock()
	defer c.mu.Unlock()

	purged := 0
	for id, s := range c.drafts {
		if !s.LastTouched().Before(cutoff) {
			continue
		}
		if s.Dirty() {
			c.logger.Warn("discarding abandoned draft with uncommitted edits",
				"category", model.EventCategorySettings, "draft", id, "key", s.Key())
		}
		delete(c.drafts, id)
		purged++
	}
	return purged
}

// register stores s under a fresh id and hooks cache invalidation into d.
func (c *Console) register(d interface{ setOnCommit(func(context.Context, model.SettingKey)) }, s session) string {
	d.setOnCommit(c.committed)
	id := uuid.NewString()

	c.mu.Lock()
	c.drafts[id] = s
	c.mu.Unlock()

	c.logger.Debug("draft opened", "draft", id, "key", s.Key())
	return id
}

// committed drops derived views after any save.
func (c *Console) committed(ctx context.Context, key model.SettingKey) {
	c.logger.Info("settings saved", "key", key)
	if err := c.targets.Delete(ctx, linkTargetsCacheKey); err != nil {
		c.logger.Warn("dropping cached link targets failed",
			"category", model.EventCategoryCache, "error", err)
	}
}

func lookup[D session](c *Console, id string) (D, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.drafts[id].(D)
	if !ok {
		var zero D
		return zero, ErrDraftNotFound
	}
	return d, nil
}
