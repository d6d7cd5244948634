// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package registry

import "github.com/olegiv/wellness-admin/internal/model"

// Routes is the static view table compiled into the application.
var Routes = []model.Route{
	{View: "grid", Path: "/grid", Label: "Accueil"},
	{View: "explore", Path: "/explore", Label: "Explorer"},
	{View: "search", Path: "/search", Label: "Recherche"},
	{View: "categories", Path: "/categories", Label: "Catégories"},
	{View: "courses", Path: "/courses", Label: "Cours"},
	{View: "favorites", Path: "/favorites", Label: "Favoris"},
	{View: "downloads", Path: "/downloads", Label: "Téléchargements"},
	{View: "history", Path: "/history", Label: "Historique"},
	{View: "profile", Path: "/profile", Label: "Profil"},
	{View: "subscription", Path: "/subscription", Label: "Abonnement"},
	{View: "notifications", Path: "/notifications", Label: "Notifications"},
	{View: "settings", Path: "/settings", Label: "Paramètres"},
	{View: "help", Path: "/help", Label: "Aide"},
}

// OrphanViews exist in the application but are never linked from navigation.
var OrphanViews = []model.Route{
	{View: "player", Label: "Lecteur"},
	{View: "player-view", Label: "Lecteur plein écran"},
	{View: "ambience-player", Label: "Lecteur d'ambiance"},
	{View: "category-detail", Label: "Détail de catégorie"},
}
