// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/wellness-admin/internal/model"
)

// DefaultSettings returns the blobs written on first start.
func DefaultSettings() map[model.SettingKey]any {
	return map[model.SettingKey]any{
		model.SettingHeaderNav: []model.NavItem{
			{ID: "hdr-home", Label: "Accueil", Icon: "home", Link: "/grid", Position: 1, Active: true},
			{ID: "hdr-explore", Label: "Explorer", Icon: "compass", Link: "/explore", Position: 2, Active: true},
			{ID: "hdr-courses", Label: "Cours", Icon: "book-open", Link: "/courses", Position: 3, Active: true, HasMegaMenu: true},
			{ID: "hdr-favorites", Label: "Favoris", Icon: "heart", Link: "/favorites", Position: 4, Active: true},
			{ID: "hdr-subscription", Label: "Abonnement", Icon: "crown", Link: "/subscription", Position: 5, Active: false},
		},
		model.SettingMobileNav: []model.NavItem{
			{ID: "mob-home", Label: "Accueil", Icon: "home", Link: "/grid", Position: 1, Active: true},
			{ID: "mob-explore", Label: "Explorer", Icon: "compass", Link: "/explore", Position: 2, Active: true},
			{ID: "mob-search", Label: "Recherche", Icon: "search", Link: "/search", Position: 3, Active: true},
			{ID: "mob-favorites", Label: "Favoris", Icon: "heart", Link: "/favorites", Position: 4, Active: true},
			{ID: "mob-profile", Label: "Profil", Icon: "user", Link: "/profile", Position: 5, Active: true},
		},
		model.SettingSettingsMenu: []model.SettingsMenuItem{
			{ID: "set-profile", Label: "Mon profil", Icon: "user", View: "profile", Position: 1, Active: true},
			{ID: "set-subscription", Label: "Mon abonnement", Icon: "crown", View: "subscription", Position: 2, Active: true},
			{ID: "set-downloads", Label: "Téléchargements", Icon: "download", View: "downloads", Position: 3, Active: true},
			{ID: "set-notifications", Label: "Notifications", Icon: "bell", View: "notifications", Position: 4, Active: true},
			{ID: "set-help", Label: "Aide", Icon: "life-buoy", View: "help", Position: 5, Active: true},
		},
		model.SettingFooterColumns: []model.LinkColumn{
			{ID: "ftr-app", Title: "L'application", Position: 1, Links: []model.ColumnLink{
				{ID: "ftr-app-courses", Label: "Tous les cours", Link: "/courses", Position: 1},
				{ID: "ftr-app-subscription", Label: "Abonnement", Link: "/subscription", Position: 2},
			}},
			{ID: "ftr-help", Title: "Aide", Position: 2, Links: []model.ColumnLink{
				{ID: "ftr-help-faq", Label: "FAQ", Link: "/help", Position: 1},
				{ID: "ftr-help-contact", Label: "Contact", Link: "mailto:contact@example.com", Position: 2},
			}},
		},
		model.SettingMegaMenu: []model.LinkColumn{
			{ID: "mega-themes", Title: "Thèmes", Position: 1, Links: []model.ColumnLink{
				{ID: "mega-sleep", Label: "Sommeil", Link: "/categorie/sommeil", Position: 1},
				{ID: "mega-stress", Label: "Stress & Anxiété", Link: "/categorie/stress-anxiete", Position: 2},
			}},
		},
		model.SettingPageVisibility: model.PageSettings{},
		model.SettingCategories: []model.Category{
			{ID: "cat-sleep", Name: "Sommeil"},
			{ID: "cat-stress", Name: "Stress & Anxiété"},
			{ID: "cat-focus", Name: "Concentration"},
		},
		model.SettingCourses: []model.Course{
			{ID: "crs-morning", Title: "Méditation du Matin", CategoryID: "cat-focus"},
			{ID: "crs-breath", Title: "Respiration Carrée", CategoryID: "cat-stress"},
			{ID: "crs-night", Title: "Nuit Paisible", CategoryID: "cat-sleep"},
		},
	}
}

// SeedDefaults writes the default blob of every key that has no value yet.
// Existing values are never overwritten.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	q := New(db)
	now := time.Now().UTC()

	defaults := DefaultSettings()
	seeded := 0
	for _, key := range model.SettingKeys {
		value, ok := defaults[key]
		if !ok {
			continue
		}
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encoding default %s: %w", key, err)
		}
		written, err := q.InsertSettingIfAbsent(ctx, UpsertSettingParams{
			Key:       string(key),
			Value:     string(data),
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("seeding %s: %w", key, err)
		}
		if written {
			seeded++
		}
	}

	if seeded == 0 {
		slog.Info("settings already present, skipping seed")
		return nil
	}
	slog.Info("seeded default settings", "keys", seeded)
	return nil
}
