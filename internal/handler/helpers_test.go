package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/wellness-admin/internal/admin"
	"github.com/olegiv/wellness-admin/internal/cache"
	"github.com/olegiv/wellness-admin/internal/settings"
	"github.com/olegiv/wellness-admin/internal/testutil"
	"github.com/olegiv/wellness-admin/internal/version"
)

// testServer wires both handlers on a seeded database.
type testServer struct {
	t       *testing.T
	router  chi.Router
	console *admin.Console
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := testutil.SeededDB(t)
	mem := cache.NewMemoryCache(cache.MemoryCacheOptions{DefaultTTL: time.Hour})
	t.Cleanup(func() { _ = mem.Close() })

	logger := testutil.TestLoggerSilent()
	store := settings.NewCachedStore(settings.NewSQLStore(db), mem, 0, logger)
	console := admin.NewConsole(store, mem, time.Hour, logger)

	r := chi.NewRouter()
	NewAdminHandler(console, logger).Routes(r)
	NewSystemHandler(db, mem, version.Info{Version: "v0.0.1-test"}, logger).Routes(r)

	return &testServer{t: t, router: r, console: console}
}

// do sends a request with an optional JSON body and decodes the JSON reply.
func (s *testServer) do(method, path string, body any) (int, map[string]any) {
	s.t.Helper()

	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			s.t.Fatalf("encoding body: %v", err)
		}
		rd = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		s.t.Fatalf("%s %s: response is not JSON: %q", method, path, w.Body.String())
	}
	return w.Code, out
}

// draft returns the "draft" object of a response.
func draft(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	d, ok := resp["draft"].(map[string]any)
	if !ok {
		t.Fatalf("response has no draft: %v", resp)
	}
	return d
}

// itemIDs returns the ids of a draft's "items" in order.
func itemIDs(t *testing.T, d map[string]any) []string {
	t.Helper()
	raw, _ := d["items"].([]any)
	out := make([]string, len(raw))
	for i, it := range raw {
		out[i], _ = it.(map[string]any)["id"].(string)
	}
	return out
}
