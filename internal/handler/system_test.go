package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.do(http.MethodGet, RouteHealth, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "v0.0.1-test (unknown)", resp["version"])

	checks := resp["checks"].(map[string]any)
	assert.Equal(t, "ok", checks["database"].(map[string]any)["status"])
	assert.Equal(t, "ok", checks["cache"].(map[string]any)["status"])
}

func TestCacheStats(t *testing.T) {
	s := newTestServer(t)
	s.do(http.MethodGet, RouteLinkTargets, nil)

	code, resp := s.do(http.MethodGet, RouteCacheStats, nil)
	require.Equal(t, http.StatusOK, code)
	stats := resp["stats"].(map[string]any)
	assert.Equal(t, "memory", stats["backend"])
	assert.Greater(t, stats["sets"].(float64), float64(0))
}

func TestEvents(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.do(http.MethodGet, RouteEvents, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, resp["events"])

	code, _ = s.do(http.MethodGet, RouteEvents+"?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = s.do(http.MethodGet, RouteEvents+"?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}
