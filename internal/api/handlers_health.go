// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/shopwise/internal/models"
)

// Health handles GET /api/v1/health.
//
// The status is "healthy" when a catalog is loaded and the last reload
// succeeded, "degraded" otherwise. It always answers 200; use
// /health/ready for gating traffic.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	health := models.HealthResponse{
		Status:    "healthy",
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Seconds(),
		LastError: h.catalog.LastError(),
		Cache:     h.cache.Backend(),
	}

	if snap := h.catalog.Current(); snap != nil && snap.Table != nil {
		stats := snap.Table.Stats()
		loadedAt := snap.LoadedAt
		health.CatalogLoaded = true
		health.CatalogSource = snap.Source
		health.Catalog = &stats
		health.LastReload = &loadedAt
	}
	if !health.CatalogLoaded || health.LastError != "" {
		health.Status = "degraded"
	}

	w.Header().Set("Cache-Control", "no-store")
	respondSuccess(w, health, start, false)
}

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of the catalog.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	respondSuccess(w, map[string]string{"status": "alive"}, time.Now(), false)
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 503 until the first catalog load succeeds.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshot(w)
	if snap == nil {
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	respondSuccess(w, map[string]any{
		"status":          "ready",
		"catalog_version": snap.Version,
	}, time.Now(), false)
}

// HealthPerformance handles GET /api/v1/health/performance with latency
// percentiles per route over the recent request window.
func (h *Handler) HealthPerformance(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	respondSuccess(w, h.perfMon.GetStats(), time.Now(), false)
}
