// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// SettingKey names a settings blob in the settings store.
type SettingKey string

// Setting keys
const (
	SettingHeaderNav      SettingKey = "nav.header"
	SettingMobileNav      SettingKey = "nav.mobile"
	SettingFooterColumns  SettingKey = "nav.footer"
	SettingMegaMenu       SettingKey = "nav.mega_menu"
	SettingSettingsMenu   SettingKey = "menu.settings"
	SettingPageVisibility SettingKey = "pages.visibility"
	SettingCategories     SettingKey = "catalog.categories"
	SettingCourses        SettingKey = "catalog.courses"
)

// SettingKeys lists every known key.
var SettingKeys = []SettingKey{
	SettingHeaderNav,
	SettingMobileNav,
	SettingFooterColumns,
	SettingMegaMenu,
	SettingSettingsMenu,
	SettingPageVisibility,
	SettingCategories,
	SettingCourses,
}

// IsNavCollection reports whether key holds a []NavItem collection.
func IsNavCollection(key SettingKey) bool {
	return key == SettingHeaderNav || key == SettingMobileNav
}

// IsColumnCollection reports whether key holds a []LinkColumn collection.
func IsColumnCollection(key SettingKey) bool {
	return key == SettingFooterColumns || key == SettingMegaMenu
}
