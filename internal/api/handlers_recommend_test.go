// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package api

import (
	"io"
	"net/http"
	"testing"

	"github.com/tomtom215/shopwise/internal/catalog"
	"github.com/tomtom215/shopwise/internal/logging"
	"github.com/tomtom215/shopwise/internal/models"
	"github.com/tomtom215/shopwise/internal/recommend"
)

func TestRecommendations_CatalogUnavailable(t *testing.T) {
	s := newTestServer(t, false)

	paths := []string{
		"/api/v1/recommendations/top-rated",
		"/api/v1/recommendations/similar?item=Gentle+Shampoo",
		"/api/v1/recommendations/user/1",
		"/api/v1/recommendations/purchase/1",
		"/api/v1/recommendations/hybrid?item=Gentle+Shampoo&user_id=1",
		"/api/v1/products/search?q=shampoo",
		"/api/v1/users/1/history",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rec, env := s.get(t, path)
			if rec.Code != http.StatusServiceUnavailable {
				t.Errorf("status = %d, want 503", rec.Code)
			}
			if env.Error == nil || env.Error.Code != ErrCodeCatalogUnavailable {
				t.Errorf("error = %+v, want %s", env.Error, ErrCodeCatalogUnavailable)
			}
			if rec.Header().Get("Retry-After") == "" {
				t.Error("Expected Retry-After header")
			}
		})
	}
}

func TestRecommendations_ParameterErrors(t *testing.T) {
	s := newTestServer(t, true)

	tests := []struct {
		name     string
		path     string
		wantCode string
	}{
		{"n zero", "/api/v1/recommendations/top-rated?n=0", ErrCodeValidation},
		{"n too large", "/api/v1/recommendations/top-rated?n=101", ErrCodeValidation},
		{"n not a number", "/api/v1/recommendations/top-rated?n=ten", ErrCodeInvalidParameter},
		{"similar without item", "/api/v1/recommendations/similar", ErrCodeValidation},
		{"similar blank item", "/api/v1/recommendations/similar?item=%20%20", ErrCodeValidation},
		{"user id not a number", "/api/v1/recommendations/user/abc", ErrCodeInvalidParameter},
		{"user id negative", "/api/v1/recommendations/user/-1", ErrCodeInvalidParameter},
		{"hybrid bad strategy", "/api/v1/recommendations/hybrid?item=Soap&strategy=zigzag", ErrCodeValidation},
		{"hybrid negative user", "/api/v1/recommendations/hybrid?item=Soap&user_id=-4", ErrCodeValidation},
		{"hybrid user not a number", "/api/v1/recommendations/hybrid?item=Soap&user_id=x", ErrCodeInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := s.get(t, tt.path)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if env.Status != "error" || env.Error == nil {
				t.Fatalf("expected error envelope, got %+v", env)
			}
			if env.Error.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", env.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestTopRated(t *testing.T) {
	s := newTestServer(t, true)

	rec, env := s.get(t, "/api/v1/recommendations/top-rated?n=3")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	res := decodeData[models.RecommendationResult](t, env)
	if res.Algorithm != recommend.AlgorithmTopRated {
		t.Errorf("algorithm = %s, want %s", res.Algorithm, recommend.AlgorithmTopRated)
	}
	want := []string{"Face Cream", "Nail Polish", "Gentle Shampoo"}
	got := itemNames(res.Items)
	if len(got) != len(want) {
		t.Fatalf("items = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("items[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	if res.Count != 3 {
		t.Errorf("count = %d, want 3", res.Count)
	}
}

func TestTopRated_DefaultN(t *testing.T) {
	s := newTestServer(t, true)

	_, env := s.get(t, "/api/v1/recommendations/top-rated")
	res := decodeData[models.RecommendationResult](t, env)
	// Six products, default n is 10.
	if res.Count != 6 {
		t.Errorf("count = %d, want 6", res.Count)
	}
}

func TestSimilarItems(t *testing.T) {
	s := newTestServer(t, true)

	t.Run("known item", func(t *testing.T) {
		_, env := s.get(t, "/api/v1/recommendations/similar?item=Gentle+Shampoo&n=5")
		res := decodeData[models.RecommendationResult](t, env)
		if len(res.Items) == 0 || res.Items[0].ProductName != "Volume Shampoo" {
			t.Errorf("items = %v, want Volume Shampoo first", itemNames(res.Items))
		}
		if containsName(res.Items, "Gentle Shampoo") {
			t.Error("item recommended to itself")
		}
	})

	t.Run("unknown item is empty, not an error", func(t *testing.T) {
		rec, env := s.get(t, "/api/v1/recommendations/similar?item=Unicorn+Dust")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		res := decodeData[models.RecommendationResult](t, env)
		if res.Count != 0 || res.Items == nil {
			t.Errorf("got %+v, want empty items list", res)
		}
	})
}

func TestForUser(t *testing.T) {
	s := newTestServer(t, true)

	_, env := s.get(t, "/api/v1/recommendations/user/1?n=5")
	res := decodeData[models.RecommendationResult](t, env)
	if !containsName(res.Items, "Nail Polish") {
		t.Errorf("items = %v, want Nail Polish from the nearest neighbour", itemNames(res.Items))
	}
	for _, rated := range []string{"Gentle Shampoo", "Volume Shampoo", "Red Lipstick"} {
		if containsName(res.Items, rated) {
			t.Errorf("already rated %s recommended", rated)
		}
	}
	if res.Input["user_id"] != float64(1) {
		t.Errorf("input = %v, want user_id 1", res.Input)
	}

	_, env = s.get(t, "/api/v1/recommendations/user/999")
	if res := decodeData[models.RecommendationResult](t, env); res.Count != 0 {
		t.Errorf("unknown user count = %d, want 0", res.Count)
	}
}

func TestByPurchase(t *testing.T) {
	s := newTestServer(t, true)

	_, env := s.get(t, "/api/v1/recommendations/purchase/2?n=5")
	res := decodeData[models.RecommendationResult](t, env)
	if len(res.Items) == 0 || res.Items[0].ProductName != "Red Lipstick" {
		t.Errorf("items = %v, want Red Lipstick first", itemNames(res.Items))
	}
	if containsName(res.Items, "Volume Shampoo") {
		t.Error("product recommended to itself")
	}
}

func TestHybrid(t *testing.T) {
	s := newTestServer(t, true)

	for _, strategy := range []string{"", recommend.StrategyConcat, recommend.StrategyWeighted} {
		t.Run("strategy="+strategy, func(t *testing.T) {
			_, env := s.get(t, "/api/v1/recommendations/hybrid?item=Gentle+Shampoo&user_id=1&n=4&strategy="+strategy)
			res := decodeData[models.RecommendationResult](t, env)
			if res.Count == 0 || res.Count > 4 {
				t.Errorf("count = %d, want 1..4", res.Count)
			}
			if res.Algorithm != recommend.AlgorithmHybrid {
				t.Errorf("algorithm = %s, want %s", res.Algorithm, recommend.AlgorithmHybrid)
			}
			if got, _ := res.Input["strategy"].(string); got != strategy {
				t.Errorf("input strategy = %q, want %q", got, strategy)
			}
		})
	}
}

func TestAlgorithms(t *testing.T) {
	s := newTestServer(t, true)

	rec, env := s.get(t, "/api/v1/recommendations/algorithms")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	algos := decodeData[[]recommend.AlgorithmInfo](t, env)
	if len(algos) != len(recommend.Algorithms()) {
		t.Errorf("got %d algorithms, want %d", len(algos), len(recommend.Algorithms()))
	}
}

func TestResultCache(t *testing.T) {
	s := newTestServer(t, true)
	const path = "/api/v1/recommendations/top-rated?n=2"

	_, first := s.get(t, path)
	if first.Metadata.Cached {
		t.Error("first request should not be cached")
	}

	_, second := s.get(t, path)
	if !second.Metadata.Cached {
		t.Error("second request should be served from cache")
	}
	if string(first.Data) != string(second.Data) {
		t.Errorf("cached data differs:\n%s\n%s", first.Data, second.Data)
	}

	// A new catalog version makes old entries unreachable.
	s.holder.Swap(beautyTable(), "test")
	_, third := s.get(t, path)
	if third.Metadata.Cached {
		t.Error("request after reload should not be cached")
	}
}

func TestRecommendations_ConfiguredMaxN(t *testing.T) {
	cfg := recommend.DefaultConfig()
	cfg.Limits.DefaultN = 2
	cfg.Limits.MaxN = 3
	engine, err := recommend.NewEngine(cfg, logging.NewTestLogger(io.Discard))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	holder := catalog.NewHolder()
	holder.Swap(beautyTable(), "test")
	mwCfg := DefaultChiMiddlewareConfig()
	mwCfg.RateLimitDisabled = true
	s := &testServer{holder: holder, router: NewHandler(engine, holder, nil, "test").SetupChi(NewChiMiddleware(mwCfg))}

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantCount  int
	}{
		{"default n", "/api/v1/recommendations/top-rated", http.StatusOK, 2},
		{"at max", "/api/v1/recommendations/top-rated?n=3", http.StatusOK, 3},
		{"above max", "/api/v1/recommendations/top-rated?n=4", http.StatusBadRequest, 0},
		{"above max on search", "/api/v1/products/search?q=shampoo&n=50", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := s.get(t, tt.path)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				if env.Error == nil || env.Error.Code != ErrCodeValidation {
					t.Errorf("error = %+v, want %s", env.Error, ErrCodeValidation)
				}
				return
			}
			if res := decodeData[models.RecommendationResult](t, env); res.Count != tt.wantCount {
				t.Errorf("count = %d, want %d", res.Count, tt.wantCount)
			}
		})
	}
}
