// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/shopwise/internal/cache"
	"github.com/tomtom215/shopwise/internal/catalog"
	"github.com/tomtom215/shopwise/internal/logging"
	"github.com/tomtom215/shopwise/internal/middleware"
	"github.com/tomtom215/shopwise/internal/recommend"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, cache plumbing (this file)
//   - handlers_helpers.go: response and parameter helpers
//   - handlers_health.go: health and performance endpoints
//   - handlers_recommend.go: recommendation endpoints
//   - handlers_products.go: product search and user history
type Handler struct {
	engine    *recommend.Engine
	catalog   *catalog.Holder
	cache     cache.Cache
	perfMon   *middleware.PerformanceMonitor
	startTime time.Time
	version   string
	defaultN  int
	maxN      int
}

// NewHandler creates a new API handler.
//
// A nil cache disables result caching. The handler keeps a performance
// monitor over the last 1000 requests for /health/performance.
//
// Example:
//
//	handler := api.NewHandler(engine, holder, resultCache, version)
//	mw := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security))
//	http.ListenAndServe(":8080", handler.SetupChi(mw))
func NewHandler(engine *recommend.Engine, holder *catalog.Holder, c cache.Cache, version string) *Handler {
	if c == nil {
		c = cache.Noop{}
	}
	limits := engine.Config().Limits
	maxN := min(limits.MaxN, MaxResults)
	defaultN := min(limits.DefaultN, maxN)
	return &Handler{
		engine:    engine,
		catalog:   holder,
		cache:     c,
		perfMon:   middleware.NewPerformanceMonitor(1000),
		startTime: time.Now(),
		version:   version,
		defaultN:  defaultN,
		maxN:      maxN,
	}
}

// ClearCache drops every cached result. Called after a catalog reload so
// clients receive fresh data before entries expire.
func (h *Handler) ClearCache(ctx context.Context) error {
	if err := h.cache.Clear(ctx); err != nil {
		return err
	}
	logging.Info().Str("backend", h.cache.Backend()).Msg("Result cache cleared")
	return nil
}

// snapshot returns the active catalog or writes a 503 and returns nil.
func (h *Handler) snapshot(w http.ResponseWriter) *catalog.Snapshot {
	snap := h.catalog.Current()
	if snap == nil || snap.Table == nil {
		w.Header().Set("Retry-After", "5")
		respondError(w, http.StatusServiceUnavailable, ErrCodeCatalogUnavailable,
			"The product catalog has not been loaded yet", nil)
		return nil
	}
	return snap
}

// serveCached serves the result for (endpoint, params) from the result
// cache, computing and storing it on a miss. Keys include the catalog
// version so results never outlive the catalog they were computed from.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, snap *catalog.Snapshot, endpoint string, params []any, compute func() interface{}) {
	start := time.Now()
	key := cache.GenerateKey(endpoint, append([]any{snap.Version}, params...)...)

	if body, ok := h.cache.Get(r.Context(), key); ok {
		respondSuccess(w, json.RawMessage(body), start, true)
		return
	}

	data := compute()
	if body, err := json.Marshal(data); err == nil {
		h.cache.Set(r.Context(), key, body)
	} else {
		logging.Ctx(r.Context()).Warn().Err(err).Str("endpoint", endpoint).Msg("Failed to encode result for cache")
	}
	respondSuccess(w, data, start, false)
}

// respondBadParam reports a parse failure as INVALID_PARAMETER.
func respondBadParam(w http.ResponseWriter, err error) {
	var pe *paramError
	if errors.As(err, &pe) {
		respondAPIError(w, pe.apiError())
		return
	}
	respondError(w, http.StatusBadRequest, ErrCodeInvalidParameter, err.Error(), nil)
}
