// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/wellness-admin/internal/model"
)

func TestBuildPageMap_FirstWriterWins(t *testing.T) {
	routes := []model.Route{{View: "grid", Label: "Accueil"}}
	header := []model.NavItem{{ID: "h1", Label: "Home", Link: "/grid", Position: 1}}

	m := BuildPageMap(routes, header, nil, nil)

	label, ok := m.Label("grid")
	require.True(t, ok)
	assert.Equal(t, "Accueil", label)
}

func TestBuildPageMap_Precedence(t *testing.T) {
	routes := []model.Route{{View: "grid", Path: "/grid", Label: "Accueil"}}
	header := []model.NavItem{
		{ID: "h1", Label: "Explorer (header)", Link: "/explore"},
		{ID: "h2", Label: "Blog", Link: "https://blog.example.com"},
		{ID: "h3", Label: "Vide", Link: ""},
	}
	mobile := []model.NavItem{
		{ID: "m1", Label: "Explorer (mobile)", Link: "/explore"},
		{ID: "m2", Label: "Favoris", Link: "/favorites"},
	}
	menu := []model.SettingsMenuItem{
		{ID: "s1", Label: "Mes favoris", Action: "navigateToFavorites"},
		{ID: "s2", Label: "Mon profil", Action: "navigateToProfile"},
		{ID: "s3", Label: "Abonnement", View: "subscription"},
		{ID: "s4", Label: "Déconnexion"},
		{ID: "s5", Label: "Lecteur perso", View: "player"},
	}

	m := BuildPageMap(routes, header, mobile, menu)

	want := []Page{
		{View: "grid", Label: "Accueil", Source: SourceRoute},
		{View: "explore", Label: "Explorer (header)", Source: SourceHeaderNav},
		{View: "favorites", Label: "Favoris", Source: SourceMobileNav},
		{View: "profile", Label: "Mon profil", Source: SourceSettingsMenu},
		{View: "subscription", Label: "Abonnement", Source: SourceSettingsMenu},
		{View: "player", Label: "Lecteur perso", Source: SourceSettingsMenu},
		{View: "player-view", Label: "Lecteur plein écran", Source: SourceOrphan},
		{View: "ambience-player", Label: "Lecteur d'ambiance", Source: SourceOrphan},
		{View: "category-detail", Label: "Détail de catégorie", Source: SourceOrphan},
	}
	assert.Equal(t, want, m.Pages())
	assert.Equal(t, len(want), m.Len())
	assert.False(t, m.Has("https://blog.example.com"))
}

func TestBuildPageMap_EmptyInputsStillHaveOrphans(t *testing.T) {
	m := BuildPageMap(nil, nil, nil, nil)

	require.Equal(t, len(OrphanViews), m.Len())
	for _, r := range OrphanViews {
		assert.True(t, m.Has(r.View), r.View)
	}
}

func TestBuildPageMap_DefaultTable(t *testing.T) {
	m := BuildPageMap(Routes, nil, nil, nil)

	assert.Equal(t, len(Routes)+len(OrphanViews), m.Len())
	_, ok := m.Label("does-not-exist")
	assert.False(t, ok)
}

func TestViewForLink(t *testing.T) {
	routes := []model.Route{{View: "grid", Path: "/accueil", Label: "Accueil"}}

	tests := []struct {
		link   string
		want   model.View
		wantOK bool
	}{
		{"/accueil", "grid", true},
		{"/profile", "profile", true},
		{"/categorie/sommeil", "categorie/sommeil", true},
		{"profile", "profile", true},
		{"/", "", false},
		{"", "", false},
		{"https://example.com/grid", "", false},
	}
	for _, tt := range tests {
		got, ok := ViewForLink(routes, tt.link)
		assert.Equal(t, tt.wantOK, ok, tt.link)
		assert.Equal(t, tt.want, got, tt.link)
	}
}

func TestViewFromAction(t *testing.T) {
	tests := []struct {
		action string
		want   model.View
		wantOK bool
	}{
		{"navigateToProfile", "profile", true},
		{"navigateToCategoryDetail", "categoryDetail", true},
		{"navigateToÉcoute", "écoute", true},
		{"Downloads", "downloads", true},
		{"navigateTo", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ViewFromAction(tt.action)
		assert.Equal(t, tt.wantOK, ok, tt.action)
		assert.Equal(t, tt.want, got, tt.action)
	}
}

func TestNormalizeSettingsMenu(t *testing.T) {
	items := []model.SettingsMenuItem{
		{ID: "a", Action: "navigateToHelp"},
		{ID: "b", View: "settings", Action: "navigateToSomethingElse"},
		{ID: "c"},
	}

	got := NormalizeSettingsMenu(items)

	assert.Equal(t, model.View("help"), got[0].View)
	assert.Empty(t, got[0].Action)
	assert.Equal(t, model.View("settings"), got[1].View)
	assert.Equal(t, "navigateToSomethingElse", got[1].Action)
	assert.Empty(t, got[2].View)
	assert.Equal(t, "navigateToHelp", items[0].Action, "input must not be mutated")
}
