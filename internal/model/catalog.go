// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Category is a course category of the catalog.
// Slug is an optional editorial override of the generated slug.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// Course is a course of the catalog.
type Course struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Slug       string `json:"slug,omitempty"`
	CategoryID string `json:"categoryId,omitempty"`
}
