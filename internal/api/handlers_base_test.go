// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/shopwise/internal/cache"
	"github.com/tomtom215/shopwise/internal/catalog"
	"github.com/tomtom215/shopwise/internal/logging"
	"github.com/tomtom215/shopwise/internal/models"
	"github.com/tomtom215/shopwise/internal/recommend"
)

func row(user int, id, name, brand, category string, rating float64) catalog.Record {
	return catalog.Record{
		UserID:      user,
		ProductID:   id,
		ProductName: name,
		Brand:       brand,
		Category:    category,
		Rating:      rating,
		ReviewCount: 10,
	}
}

// beautyTable mirrors the engine fixtures:
//
//	users 1 and 2 agree on the shampoos and the lipstick; user 2 also loves Nail Polish
//	user 3 only rates skin care
//	user 4 rates Gentle Shampoo and Nail Polish
func beautyTable() *catalog.Table {
	return catalog.NewTable([]catalog.Record{
		row(1, "1", "Gentle Shampoo", "Acme", "Hair Shampoo", 5),
		row(1, "2", "Volume Shampoo", "Brio", "Hair Shampoo", 4),
		row(1, "3", "Red Lipstick", "Glam", "Lipstick Makeup", 1),
		row(2, "1", "Gentle Shampoo", "Acme", "Hair Shampoo", 5),
		row(2, "2", "Volume Shampoo", "Brio", "Hair Shampoo", 4),
		row(2, "3", "Red Lipstick", "Glam", "Lipstick Makeup", 1),
		row(2, "4", "Nail Polish", "Glam", "Nail Polish", 5),
		row(3, "5", "Face Cream", "Dewy", "Skin Care", 5),
		row(3, "6", "Body Lotion", "Dewy", "Skin Care", 4),
		row(4, "1", "Gentle Shampoo", "Acme", "Hair Shampoo", 3),
		row(4, "4", "Nail Polish", "Glam", "Nail Polish", 4),
	}, nil)
}

// testServer bundles a handler, its holder, and the routed http.Handler.
type testServer struct {
	handler *Handler
	holder  *catalog.Holder
	router  http.Handler
}

// newTestServer builds a server with a memory result cache and rate
// limiting disabled. loaded controls whether beautyTable is published.
func newTestServer(t *testing.T, loaded bool) *testServer {
	t.Helper()

	engine, err := recommend.NewEngine(nil, logging.NewTestLogger(io.Discard))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	mem := cache.NewMemoryCache(time.Minute, 100)
	t.Cleanup(func() { mem.Close() })

	holder := catalog.NewHolder()
	if loaded {
		holder.Swap(beautyTable(), "test")
	}

	h := NewHandler(engine, holder, mem, "test")
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return &testServer{handler: h, holder: holder, router: h.SetupChi(NewChiMiddleware(cfg))}
}

// envelope is models.APIResponse with the payload left raw.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func (s *testServer) get(t *testing.T, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("GET %s: failed to decode response %q: %v", path, rec.Body.String(), err)
	}
	return rec, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("failed to decode data %s: %v", env.Data, err)
	}
	return out
}

func itemNames(items []catalog.Record) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].ProductName
	}
	return out
}

func containsName(items []catalog.Record, name string) bool {
	for i := range items {
		if items[i].ProductName == name {
			return true
		}
	}
	return false
}

func TestNewHandler(t *testing.T) {
	engine, err := recommend.NewEngine(nil, logging.NewTestLogger(io.Discard))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	h := NewHandler(engine, catalog.NewHolder(), nil, "v1")
	if h.cache == nil || h.cache.Backend() != "none" {
		t.Errorf("nil cache should become Noop, got %v", h.cache)
	}
	if h.perfMon == nil {
		t.Error("Expected performance monitor to be initialized")
	}
	if h.startTime.IsZero() {
		t.Error("Expected start time to be set")
	}
	if h.defaultN != recommend.DefaultConfig().Limits.DefaultN {
		t.Errorf("defaultN = %d, want %d", h.defaultN, recommend.DefaultConfig().Limits.DefaultN)
	}
}
