// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package navigation

import (
	"strings"

	"github.com/olegiv/wellness-admin/internal/model"
	"github.com/olegiv/wellness-admin/internal/util"
)

// Path prefixes of catalog pages.
const (
	CategoryPathPrefix = "/categorie/"
	CoursePathPrefix   = "/cours/"
)

// CustomLinkValue is the value of the escape-hatch entry that switches a
// link control to free-text input.
const CustomLinkValue = "__custom__"

// Section header labels.
const (
	headerPages      = "── Pages ──"
	headerCategories = "── Catégories ──"
	headerCourses    = "── Cours ──"
	labelCustomLink  = "Lien externe…"
)

// BuildTargets returns the flat list of link destinations: the static
// routes, the category pages and the course pages, each group preceded by a
// disabled header, followed by the external-link escape hatch.
// Slugs are unique within each of the category and course namespaces.
func BuildTargets(routes []model.Route, categories []model.Category, courses []model.Course) []model.LinkTarget {
	out := make([]model.LinkTarget, 0, len(routes)+len(categories)+len(courses)+4)

	out = append(out, model.LinkTarget{Label: headerPages, Disabled: true})
	for _, r := range routes {
		out = append(out, model.LinkTarget{Label: r.Label, Value: r.CanonicalPath()})
	}

	out = append(out, model.LinkTarget{Label: headerCategories, Disabled: true})
	for i, slug := range CategorySlugs(categories) {
		out = append(out, model.LinkTarget{Label: categories[i].Name, Value: CategoryPathPrefix + slug})
	}

	out = append(out, model.LinkTarget{Label: headerCourses, Disabled: true})
	for i, slug := range CourseSlugs(courses) {
		out = append(out, model.LinkTarget{Label: courses[i].Title, Value: CoursePathPrefix + slug})
	}

	out = append(out, model.LinkTarget{Label: labelCustomLink, Value: CustomLinkValue})
	return out
}

// CategorySlugs returns the slug of every category, index-aligned with categories.
func CategorySlugs(categories []model.Category) []string {
	set := util.NewSlugSet()
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = set.Claim(c.Name, c.Slug, c.ID)
	}
	return out
}

// CourseSlugs returns the slug of every course, index-aligned with courses.
func CourseSlugs(courses []model.Course) []string {
	set := util.NewSlugSet()
	out := make([]string, len(courses))
	for i, c := range courses {
		out[i] = set.Claim(c.Title, c.Slug, c.ID)
	}
	return out
}

// FindTarget returns the selectable entry whose value equals value.
func FindTarget(targets []model.LinkTarget, value string) (model.LinkTarget, bool) {
	for _, t := range targets {
		if !t.Disabled && t.Value != CustomLinkValue && t.Value == value {
			return t, true
		}
	}
	return model.LinkTarget{}, false
}

// IsExternal reports whether link is an absolute URL rather than an app path.
func IsExternal(link string) bool {
	l := strings.ToLower(strings.TrimSpace(link))
	return strings.Contains(l, "://") || strings.HasPrefix(l, "mailto:") || strings.HasPrefix(l, "tel:")
}

// LinkField is the state of a link-editing control.
// In Custom mode the control shows a free-text input seeded with Value.
type LinkField struct {
	Value  string `json:"value"`
	Custom bool   `json:"custom"`
}

// NewLinkField prepares the control for value. A non-empty value that
// matches no catalog entry opens in Custom mode.
func NewLinkField(targets []model.LinkTarget, value string) LinkField {
	_, known := FindTarget(targets, value)
	return LinkField{Value: value, Custom: value != "" && !known}
}

// Select applies a choice from the catalog. Choosing the escape hatch keeps
// the current value and switches to free-text input.
func (f LinkField) Select(value string) LinkField {
	if value == CustomLinkValue {
		return LinkField{Value: f.Value, Custom: true}
	}
	return LinkField{Value: value}
}

// Edit replaces the value with text exactly as typed.
func (f LinkField) Edit(text string) LinkField {
	return LinkField{Value: text, Custom: true}
}
