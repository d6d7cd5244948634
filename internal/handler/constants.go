// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import "github.com/olegiv/wellness-admin/internal/model"

// Route pattern constants for chi router registration.
const (
	RouteHealth      = "/health"
	RouteLinkTargets = "/link-targets"
	RoutePages       = "/pages"
	RouteEvents      = "/events"
	RouteCacheStats  = "/cache/stats"

	RouteNavDrafts          = "/nav/{collection}/drafts"
	RouteColumnDrafts       = "/columns/{collection}/drafts"
	RouteSettingsMenuDrafts = "/settings-menu/drafts"
	RoutePageDrafts         = "/pages/drafts"

	RouteDraftsNav          = "/drafts/nav/{id}"
	RouteDraftsColumns      = "/drafts/columns/{id}"
	RouteDraftsSettingsMenu = "/drafts/settings-menu/{id}"
	RouteDraftsPages        = "/drafts/pages/{id}"

	RouteSuffixMove     = "/move"
	RouteSuffixCommit   = "/commit"
	RouteSuffixItems    = "/items"
	RouteItemsItemID    = "/items/{itemID}"
	RouteSuffixActive   = "/active"
	RouteSuffixMegaMenu = "/mega-menu"
	RouteSuffixColumns  = "/columns"
	RouteColumnsID      = "/columns/{columnID}"
	RouteSuffixLinks    = "/links"
	RouteLinksID        = "/links/{linkID}"
	RouteViewsToggle    = "/views/{view}/toggle"
	RouteSuffixReset    = "/reset"
)

// Log messages shared by several handlers.
const (
	logDraftOpened    = "draft opened"
	logDraftCommitted = "draft committed"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 64 << 10

// collections maps the collection segment of a URL to its settings key.
var collections = map[string]model.SettingKey{
	"header":    model.SettingHeaderNav,
	"mobile":    model.SettingMobileNav,
	"footer":    model.SettingFooterColumns,
	"mega-menu": model.SettingMegaMenu,
}
