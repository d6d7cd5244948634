package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkTargets(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.do(http.MethodGet, RouteLinkTargets, nil)
	require.Equal(t, http.StatusOK, code)
	targets, ok := resp["targets"].([]any)
	require.True(t, ok)

	first := targets[0].(map[string]any)
	assert.Equal(t, true, first["disabled"])

	var values []string
	for _, tg := range targets {
		if v, ok := tg.(map[string]any)["value"].(string); ok {
			values = append(values, v)
		}
	}
	assert.Contains(t, values, "/grid")
	assert.Contains(t, values, "/categorie/stress-anxiete")
	assert.Contains(t, values, "/cours/respiration-carree")
}

func TestPages(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.do(http.MethodGet, RoutePages, nil)
	require.Equal(t, http.StatusOK, code)
	pages := resp["pages"].([]any)
	first := pages[0].(map[string]any)
	assert.Equal(t, "grid", first["view"])
	assert.Equal(t, "Accueil", first["label"])
	assert.Equal(t, true, first["showHeader"])
}

func TestNavDraftLifecycle(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.do(http.MethodPost, "/nav/header/drafts", nil)
	require.Equal(t, http.StatusCreated, code)
	d := draft(t, resp)
	id := d["id"].(string)
	base := "/drafts/nav/" + id
	assert.Equal(t, false, d["dirty"])
	assert.Equal(t, "hdr-home", itemIDs(t, d)[0])

	code, resp = s.do(http.MethodPost, base+"/move", map[string]any{"index": 0, "direction": "down"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"hdr-explore", "hdr-home"}, itemIDs(t, draft(t, resp))[:2])

	code, _ = s.do(http.MethodPost, base+"/move", map[string]any{"index": 0, "direction": "sideways"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, resp = s.do(http.MethodPost, base+"/items/hdr-explore/mega-menu", nil)
	require.Equal(t, http.StatusOK, code)
	triggers := 0
	for _, it := range draft(t, resp)["items"].([]any) {
		if it.(map[string]any)["hasMegaMenu"] == true {
			triggers++
		}
	}
	assert.Equal(t, 1, triggers)

	code, resp = s.do(http.MethodPost, base+"/items", map[string]any{"label": "Blog", "icon": "rss", "link": "/blog"})
	require.Equal(t, http.StatusCreated, code)
	newID := resp["item"].(map[string]any)["id"].(string)

	code, _ = s.do(http.MethodPut, base+"/items/"+newID, map[string]any{"label": "  ", "link": "/blog"})
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = s.do(http.MethodPut, base+"/items/"+newID, map[string]any{"label": "Journal", "link": "/journal"})
	assert.Equal(t, http.StatusOK, code)

	code, resp = s.do(http.MethodDelete, base+"/items/"+newID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, resp["confirmed"])
	assert.Contains(t, resp["prompt"], "Journal")
	assert.Len(t, itemIDs(t, draft(t, resp)), 6)

	code, resp = s.do(http.MethodDelete, base+"/items/"+newID+"?confirm=true", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["confirmed"])
	assert.Len(t, itemIDs(t, draft(t, resp)), 5)

	code, resp = s.do(http.MethodPost, base+"/commit", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, draft(t, resp)["dirty"])

	code, resp = s.do(http.MethodGet, RoutePages, nil)
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, resp["pages"])

	code, _ = s.do(http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = s.do(http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestNavDraft_Errors(t *testing.T) {
	s := newTestServer(t)

	code, _ := s.do(http.MethodPost, "/nav/sidebar/drafts", nil)
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = s.do(http.MethodPost, "/nav/footer/drafts", nil)
	assert.Equal(t, http.StatusNotFound, code, "footer is a column collection")

	_, resp := s.do(http.MethodPost, "/nav/mobile/drafts", nil)
	base := "/drafts/nav/" + draft(t, resp)["id"].(string)

	code, _ = s.do(http.MethodPost, base+"/items/mob-home/mega-menu", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = s.do(http.MethodPost, base+"/items/missing/active", map[string]any{"active": false})
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = s.do(http.MethodPost, base+"/items", map[string]any{"label": "x", "unknown": 1})
	assert.Equal(t, http.StatusBadRequest, code)

	code, resp = s.do(http.MethodPost, base+"/items", map[string]any{"label": "Historique", "link": "/history"})
	require.Equal(t, http.StatusCreated, code)
	warnings := draft(t, resp)["warnings"].([]any)
	assert.Len(t, warnings, 1)
	assert.Equal(t, float64(6), draft(t, resp)["activeCount"])

	code, _ = s.do(http.MethodGet, "/drafts/nav/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestColumnsDraftLifecycle(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.do(http.MethodPost, "/columns/footer/drafts", nil)
	require.Equal(t, http.StatusCreated, code)
	base := "/drafts/columns/" + draft(t, resp)["id"].(string)

	code, resp = s.do(http.MethodPost, base+"/columns", map[string]any{"title": "Réseaux"})
	require.Equal(t, http.StatusCreated, code)
	colID := resp["column"].(map[string]any)["id"].(string)

	code, resp = s.do(http.MethodPost, base+"/columns/"+colID+"/links", map[string]any{"label": "Instagram", "link": "https://instagram.com/x"})
	require.Equal(t, http.StatusCreated, code)
	linkID := resp["link"].(map[string]any)["id"].(string)

	code, _ = s.do(http.MethodPost, base+"/columns/"+colID+"/move", map[string]any{"index": 0, "direction": "up"})
	assert.Equal(t, http.StatusOK, code)
	code, _ = s.do(http.MethodDelete, base+"/columns/"+colID+"/links/"+linkID, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = s.do(http.MethodDelete, base+"/columns/"+colID+"/links/"+linkID, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, resp = s.do(http.MethodPost, base+"/move", map[string]any{"index": 2, "direction": "up"})
	require.Equal(t, http.StatusOK, code)
	cols := draft(t, resp)["columns"].([]any)
	assert.Equal(t, colID, cols[1].(map[string]any)["id"])

	code, resp = s.do(http.MethodDelete, base+"/columns/"+colID+"?confirm=true", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["confirmed"])

	code, _ = s.do(http.MethodPost, base+"/commit", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestSettingsMenuDraft(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.do(http.MethodPost, RouteSettingsMenuDrafts, nil)
	require.Equal(t, http.StatusCreated, code)
	base := "/drafts/settings-menu/" + draft(t, resp)["id"].(string)

	code, resp = s.do(http.MethodPost, base+"/move", map[string]any{"index": 1, "direction": "up"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "set-subscription", itemIDs(t, draft(t, resp))[0])

	code, _ = s.do(http.MethodPost, base+"/items/set-help/active", map[string]any{"active": false})
	assert.Equal(t, http.StatusOK, code)
	code, _ = s.do(http.MethodPost, base+"/commit", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestPagesDraftLifecycle(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.do(http.MethodPost, RoutePageDrafts, nil)
	require.Equal(t, http.StatusCreated, code)
	base := "/drafts/pages/" + draft(t, resp)["id"].(string)

	code, resp = s.do(http.MethodPost, base+"/views/grid/toggle", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, resp["showHeader"])

	code, _ = s.do(http.MethodPost, base+"/views/nowhere/toggle", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, resp = s.do(http.MethodPost, base+"/reset", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, resp["confirmed"])
	assert.NotEmpty(t, resp["prompt"])

	code, _ = s.do(http.MethodPost, base+"/commit", nil)
	require.Equal(t, http.StatusOK, code)

	_, resp = s.do(http.MethodGet, RoutePages, nil)
	for _, p := range resp["pages"].([]any) {
		row := p.(map[string]any)
		if row["view"] == "grid" {
			assert.Equal(t, false, row["showHeader"])
			assert.Equal(t, true, row["explicit"])
		}
	}

	code, resp = s.do(http.MethodPost, base+"/reset?confirm=true", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["confirmed"])
	assert.Equal(t, true, draft(t, resp)["dirty"])
}

func TestPagesDraft_ToggleNestedView(t *testing.T) {
	s := newTestServer(t)

	_, resp := s.do(http.MethodPost, "/nav/header/drafts", nil)
	nav := "/drafts/nav/" + draft(t, resp)["id"].(string)
	code, _ := s.do(http.MethodPost, nav+"/items", map[string]any{"label": "Sommeil", "link": "/categorie/sommeil"})
	require.Equal(t, http.StatusCreated, code)
	code, _ = s.do(http.MethodPost, nav+"/commit", nil)
	require.Equal(t, http.StatusOK, code)

	_, resp = s.do(http.MethodPost, RoutePageDrafts, nil)
	base := "/drafts/pages/" + draft(t, resp)["id"].(string)

	code, resp = s.do(http.MethodPost, base+"/views/categorie%2Fsommeil/toggle", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "categorie/sommeil", resp["view"])
	assert.Equal(t, false, resp["showHeader"])
}
