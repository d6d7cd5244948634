// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides general-purpose utility functions including
// URL slug generation and validation with Unicode normalization support.
package util

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// whitespaceRun matches one or more whitespace characters
	whitespaceRun = regexp.MustCompile(`\s+`)
	// slugRegex matches anything outside word characters and hyphens
	slugRegex = regexp.MustCompile(`[^\w-]+`)
	// multipleHyphens matches multiple consecutive hyphens
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Slugify converts a string to a URL-friendly slug.
// Accents are dropped (NFD, combining marks removed), remaining non-ASCII
// text is transliterated, then the result is lower-cased, whitespace runs
// become a single hyphen and everything outside [a-z0-9_-] is removed.
// Slugify is idempotent.
func Slugify(s string) string {
	if s == "" {
		return ""
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}

	result = unidecode.Unidecode(result)
	result = strings.ToLower(result)
	result = whitespaceRun.ReplaceAllString(result, "-")
	result = slugRegex.ReplaceAllString(result, "")
	result = multipleHyphens.ReplaceAllString(result, "-")

	return strings.Trim(result, "-")
}

// IsValidSlug checks if a string is a valid slug format.
func IsValidSlug(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_') {
			return false
		}
	}

	if s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}

	return !strings.Contains(s, "--")
}

// SlugSet hands out collision-free slugs within one URL namespace.
// The first claimant of a slug keeps it; later ones get -2, -3, etc.
type SlugSet struct {
	used map[string]struct{}
}

// NewSlugSet creates an empty SlugSet.
func NewSlugSet() *SlugSet {
	return &SlugSet{used: make(map[string]struct{})}
}

// Claim returns a unique slug for text. A non-empty override replaces the
// text as the slug source; fallback is used when both slugify to nothing.
// Returns "" only if every source is empty after slugification.
func (s *SlugSet) Claim(text, override, fallback string) string {
	base := Slugify(override)
	if base == "" {
		base = Slugify(text)
	}
	if base == "" {
		base = Slugify(fallback)
	}
	if base == "" {
		return ""
	}

	slug := base
	for i := 2; s.taken(slug); i++ {
		slug = base + "-" + strconv.Itoa(i)
	}
	s.used[slug] = struct{}{}
	return slug
}

func (s *SlugSet) taken(slug string) bool {
	_, ok := s.used[slug]
	return ok
}
