package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/wellness-admin/internal/model"
)

var testRoutes = []model.Route{
	{View: "grid", Path: "/grid", Label: "Accueil"},
	{View: "profile", Label: "Profil"},
}

func TestBuildTargets_Layout(t *testing.T) {
	categories := []model.Category{{ID: "c1", Name: "Sommeil"}, {ID: "c2", Name: "Méditation Guidée"}}
	courses := []model.Course{{ID: "k1", Title: "Méditation du Matin"}}

	got := BuildTargets(testRoutes, categories, courses)

	want := []model.LinkTarget{
		{Label: headerPages, Disabled: true},
		{Label: "Accueil", Value: "/grid"},
		{Label: "Profil", Value: "/profile"},
		{Label: headerCategories, Disabled: true},
		{Label: "Sommeil", Value: "/categorie/sommeil"},
		{Label: "Méditation Guidée", Value: "/categorie/meditation-guidee"},
		{Label: headerCourses, Disabled: true},
		{Label: "Méditation du Matin", Value: "/cours/meditation-du-matin"},
		{Label: labelCustomLink, Value: CustomLinkValue},
	}
	assert.Equal(t, want, got)
}

func TestBuildTargets_EmptySources(t *testing.T) {
	got := BuildTargets(nil, nil, nil)

	require.Len(t, got, 4)
	for _, target := range got[:3] {
		assert.True(t, target.Disabled)
	}
	assert.Equal(t, CustomLinkValue, got[3].Value)
}

func TestBuildTargets_SlugCollisionsAreDisambiguated(t *testing.T) {
	courses := []model.Course{
		{ID: "k1", Title: "Respiration"},
		{ID: "k2", Title: "Respiration !"},
		{ID: "k3", Title: "???"},
		{ID: "k4", Title: "Anything", Slug: "souffle"},
	}
	categories := []model.Category{{ID: "c1", Name: "Respiration"}}

	got := BuildTargets(nil, categories, courses)

	values := make([]string, 0, len(got))
	for _, target := range got {
		if !target.Disabled {
			values = append(values, target.Value)
		}
	}
	assert.Equal(t, []string{
		"/categorie/respiration",
		"/cours/respiration",
		"/cours/respiration-2",
		"/cours/k3",
		"/cours/souffle",
		CustomLinkValue,
	}, values)
}

func TestLinkField(t *testing.T) {
	targets := BuildTargets(testRoutes, nil, []model.Course{{ID: "k1", Title: "Yoga Doux"}})

	known := NewLinkField(targets, "/cours/yoga-doux")
	assert.False(t, known.Custom)

	empty := NewLinkField(targets, "")
	assert.False(t, empty.Custom)

	custom := NewLinkField(targets, "https://blog.example.com/article")
	assert.True(t, custom.Custom)
	assert.Equal(t, "https://blog.example.com/article", custom.Value)

	edited := custom.Edit("  not validated at all ")
	assert.Equal(t, "  not validated at all ", edited.Value)
	assert.True(t, edited.Custom)

	picked := edited.Select("/grid")
	assert.Equal(t, LinkField{Value: "/grid"}, picked)

	hatch := picked.Select(CustomLinkValue)
	assert.Equal(t, LinkField{Value: "/grid", Custom: true}, hatch)
}

func TestFindTarget_IgnoresEscapeHatch(t *testing.T) {
	targets := BuildTargets(testRoutes, nil, nil)

	_, ok := FindTarget(targets, CustomLinkValue)
	assert.False(t, ok)

	target, ok := FindTarget(targets, "/profile")
	require.True(t, ok)
	assert.Equal(t, "Profil", target.Label)
}

func TestIsExternal(t *testing.T) {
	tests := []struct {
		link string
		want bool
	}{
		{"https://example.com", true},
		{"HTTP://EXAMPLE.COM", true},
		{"mailto:hello@example.com", true},
		{"tel:+33100000000", true},
		{"/grid", false},
		{"grid", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsExternal(tt.link), tt.link)
	}
}
