package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/olegiv/wellness-admin/internal/model"
)

func TestVisibility_DefaultsToVisible(t *testing.T) {
	assert.True(t, Visibility(nil, "grid"))
	assert.True(t, Visibility(model.PageSettings{}, "unknown-view"))
}

func TestVisibility_EveryTableViewStartsVisible(t *testing.T) {
	for _, table := range [][]model.Route{Routes, OrphanViews} {
		for _, r := range table {
			t.Run(string(r.View), func(t *testing.T) {
				assert.True(t, Visibility(nil, r.View))
				assert.False(t, Visibility(ToggleVisibility(nil, r.View), r.View))
			})
		}
	}
}

func TestToggleVisibility_RoundTrip(t *testing.T) {
	settings := model.PageSettings{}

	once := ToggleVisibility(settings, "grid")
	assert.False(t, Visibility(once, "grid"))
	assert.Empty(t, settings, "input must not be mutated")

	twice := ToggleVisibility(once, "grid")
	assert.True(t, Visibility(twice, "grid"))

	_, explicit := twice["grid"]
	assert.True(t, explicit, "toggled view keeps an explicit entry")
}

func TestToggleVisibility_PlayerHidesOnFirstToggle(t *testing.T) {
	got := ToggleVisibility(nil, "player")
	assert.False(t, Visibility(got, "player"))
	assert.Equal(t, model.PageSettings{"player": {ShowHeader: false}}, got)
}

func TestResetVisibility(t *testing.T) {
	settings := ResetVisibility()
	assert.Empty(t, settings)
	assert.True(t, Visibility(settings, "grid"))
}

func TestRows(t *testing.T) {
	m := BuildPageMap([]model.Route{{View: "grid", Label: "Accueil"}}, nil, nil, nil)
	settings := ToggleVisibility(nil, "grid")

	rows := Rows(m, settings)

	assert.Equal(t, model.View("grid"), rows[0].View)
	assert.False(t, rows[0].ShowHeader)
	assert.True(t, rows[0].Explicit)
	for _, r := range rows[1:] {
		assert.False(t, r.Explicit)
	}
}
