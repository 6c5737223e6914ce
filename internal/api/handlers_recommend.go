// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/shopwise/internal/models"
	"github.com/tomtom215/shopwise/internal/recommend"
)

// TopRated handles GET /api/v1/recommendations/top-rated.
func (h *Handler) TopRated(w http.ResponseWriter, r *http.Request) {
	n, err := intQuery(r, "n", h.defaultN)
	if err != nil {
		respondBadParam(w, err)
		return
	}
	req := TopRatedRequest{N: n}
	if apiErr := h.validateWithN(&req, req.N); apiErr != nil {
		respondAPIError(w, apiErr)
		return
	}

	snap := h.snapshot(w)
	if snap == nil {
		return
	}
	h.serveCached(w, r, snap, recommend.AlgorithmTopRated, []any{req.N}, func() interface{} {
		items := h.engine.TopRated(r.Context(), snap.Table, req.N)
		return models.NewRecommendationResult(recommend.AlgorithmTopRated, map[string]any{"n": req.N}, items)
	})
}

// SimilarItems handles GET /api/v1/recommendations/similar.
func (h *Handler) SimilarItems(w http.ResponseWriter, r *http.Request) {
	n, err := intQuery(r, "n", h.defaultN)
	if err != nil {
		respondBadParam(w, err)
		return
	}
	req := SimilarRequest{Item: r.URL.Query().Get("item"), N: n}
	if apiErr := h.validateWithN(&req, req.N); apiErr != nil {
		respondAPIError(w, apiErr)
		return
	}

	snap := h.snapshot(w)
	if snap == nil {
		return
	}
	h.serveCached(w, r, snap, recommend.AlgorithmContent, []any{req.Item, req.N}, func() interface{} {
		items := h.engine.SimilarItems(r.Context(), snap.Table, req.Item, req.N)
		return models.NewRecommendationResult(recommend.AlgorithmContent,
			map[string]any{"item": req.Item, "n": req.N}, items)
	})
}

// ForUser handles GET /api/v1/recommendations/user/{userID}.
func (h *Handler) ForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := intPath(chi.URLParam(r, "userID"), "user_id")
	if err != nil {
		respondBadParam(w, err)
		return
	}
	n, err := intQuery(r, "n", h.defaultN)
	if err != nil {
		respondBadParam(w, err)
		return
	}
	req := UserRequest{UserID: userID, N: n}
	if apiErr := h.validateWithN(&req, req.N); apiErr != nil {
		respondAPIError(w, apiErr)
		return
	}

	snap := h.snapshot(w)
	if snap == nil {
		return
	}
	h.serveCached(w, r, snap, recommend.AlgorithmUserCF, []any{req.UserID, req.N}, func() interface{} {
		items := h.engine.RecommendForUser(r.Context(), snap.Table, req.UserID, req.N)
		return models.NewRecommendationResult(recommend.AlgorithmUserCF,
			map[string]any{"user_id": req.UserID, "n": req.N}, items)
	})
}

// ByPurchase handles GET /api/v1/recommendations/purchase/{productID}.
func (h *Handler) ByPurchase(w http.ResponseWriter, r *http.Request) {
	n, err := intQuery(r, "n", h.defaultN)
	if err != nil {
		respondBadParam(w, err)
		return
	}
	req := PurchaseRequest{ProductID: chi.URLParam(r, "productID"), N: n}
	if apiErr := h.validateWithN(&req, req.N); apiErr != nil {
		respondAPIError(w, apiErr)
		return
	}

	snap := h.snapshot(w)
	if snap == nil {
		return
	}
	h.serveCached(w, r, snap, recommend.AlgorithmItemCF, []any{req.ProductID, req.N}, func() interface{} {
		items := h.engine.SimilarByPurchase(r.Context(), snap.Table, req.ProductID, req.N)
		return models.NewRecommendationResult(recommend.AlgorithmItemCF,
			map[string]any{"product_id": req.ProductID, "n": req.N}, items)
	})
}

// Hybrid handles GET /api/v1/recommendations/hybrid.
func (h *Handler) Hybrid(w http.ResponseWriter, r *http.Request) {
	n, err := intQuery(r, "n", h.defaultN)
	if err != nil {
		respondBadParam(w, err)
		return
	}
	userID, err := intQuery(r, "user_id", 0)
	if err != nil {
		respondBadParam(w, err)
		return
	}
	query := r.URL.Query()
	req := HybridRequest{
		Item:     query.Get("item"),
		UserID:   userID,
		N:        n,
		Strategy: query.Get("strategy"),
	}
	if apiErr := h.validateWithN(&req, req.N); apiErr != nil {
		respondAPIError(w, apiErr)
		return
	}

	snap := h.snapshot(w)
	if snap == nil {
		return
	}
	params := []any{req.Item, req.UserID, req.N, req.Strategy}
	h.serveCached(w, r, snap, recommend.AlgorithmHybrid, params, func() interface{} {
		items := h.engine.HybridWithStrategy(r.Context(), snap.Table, req.Item, req.UserID, req.N, req.Strategy)
		input := map[string]any{"item": req.Item, "user_id": req.UserID, "n": req.N}
		if req.Strategy != "" {
			input["strategy"] = req.Strategy
		}
		return models.NewRecommendationResult(recommend.AlgorithmHybrid, input, items)
	})
}

// Algorithms handles GET /api/v1/recommendations/algorithms.
func (h *Handler) Algorithms(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, h.engine.Algorithms(), time.Now(), false)
}
