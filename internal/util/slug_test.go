package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple title",
			input:    "Hello World",
			expected: "hello-world",
		},
		{
			name:     "french course title",
			input:    "Méditation du Matin",
			expected: "meditation-du-matin",
		},
		{
			name:     "with special characters",
			input:    "Yoga, Souffle & Détente!",
			expected: "yoga-souffle-detente",
		},
		{
			name:     "with numbers",
			input:    "Programme 21 jours",
			expected: "programme-21-jours",
		},
		{
			name:     "tabs and newlines",
			input:    "Sommeil\t\nprofond",
			expected: "sommeil-profond",
		},
		{
			name:     "with hyphens",
			input:    "Respiration - Niveau 1",
			expected: "respiration-niveau-1",
		},
		{
			name:     "underscore is a word character",
			input:    "body_scan",
			expected: "body_scan",
		},
		{
			name:     "with leading/trailing spaces",
			input:    "  Pleine Conscience  ",
			expected: "pleine-conscience",
		},
		{
			name:     "leading hyphens",
			input:    "--calme--",
			expected: "calme",
		},
		{
			name:     "all special characters",
			input:    "!@#$%^&*()",
			expected: "",
		},
		{
			name:     "german umlauts",
			input:    "Über München",
			expected: "uber-munchen",
		},
		{
			name:     "ligature transliterated",
			input:    "Cœur ouvert",
			expected: "coeur-ouvert",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "mixed case",
			input:    "SéRéNiTé",
			expected: "serenite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Slugify(tt.input)
			if result != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSlugify_NonLatinProducesValidSlug(t *testing.T) {
	for _, input := range []string{"日本語タイトル", "Медитация", "Ελληνικά"} {
		got := Slugify(input)
		if !IsValidSlug(got) {
			t.Errorf("Slugify(%q) = %q, not a valid slug", input, got)
		}
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Méditation du Matin",
		"  --Hello   World--  ",
		"a_b-c d",
		"Über München",
		"日本語タイトル",
		"!!!",
		"Déjà  vu -- encore",
	}

	for _, input := range inputs {
		once := Slugify(input)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestIsValidSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"valid simple slug", "hello-world", true},
		{"valid slug with numbers", "page-123", true},
		{"valid with underscore", "body_scan", true},
		{"valid numbers only", "123", true},
		{"invalid - empty", "", false},
		{"invalid - uppercase", "Hello-World", false},
		{"invalid - spaces", "hello world", false},
		{"invalid - special chars", "hello!world", false},
		{"invalid - starts with hyphen", "-hello", false},
		{"invalid - ends with hyphen", "hello-", false},
		{"invalid - consecutive hyphens", "hello--world", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidSlug(tt.input)
			if result != tt.expected {
				t.Errorf("IsValidSlug(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSlugSet_Claim(t *testing.T) {
	set := NewSlugSet()

	steps := []struct {
		text, override, fallback string
		want                     string
	}{
		{"Sommeil", "", "c1", "sommeil"},
		{"sommeil!", "", "c2", "sommeil-2"},
		{"SOMMEIL", "", "c3", "sommeil-3"},
		{"Anything", "Sommeil", "c4", "sommeil-4"},
		{"Stress", "", "c5", "stress"},
		{"", "", "c6", "c6"},
		{"???", "", "", ""},
	}

	for _, s := range steps {
		got := set.Claim(s.text, s.override, s.fallback)
		if got != s.want {
			t.Errorf("Claim(%q, %q, %q) = %q, want %q", s.text, s.override, s.fallback, got, s.want)
		}
	}
}

func TestSlugSet_SuffixDoesNotCollideWithExistingSlug(t *testing.T) {
	set := NewSlugSet()

	if got := set.Claim("Yoga 2", "", ""); got != "yoga-2" {
		t.Fatalf("first claim = %q, want yoga-2", got)
	}
	if got := set.Claim("Yoga", "", ""); got != "yoga" {
		t.Fatalf("second claim = %q, want yoga", got)
	}
	if got := set.Claim("Yoga", "", ""); got != "yoga-3" {
		t.Errorf("third claim = %q, want yoga-3", got)
	}
}
