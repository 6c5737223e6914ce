// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/shopwise/internal/catalog"
	"github.com/tomtom215/shopwise/internal/models"
)

// SearchProducts handles GET /api/v1/products/search.
//
// When a non-empty query matches nothing, the hybrid engine is run with the
// query as the anchor item and the result is flagged as a fallback.
func (h *Handler) SearchProducts(w http.ResponseWriter, r *http.Request) {
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
	minRating, err := floatQuery(r, "min_rating", 0)
	if err != nil {
		respondBadParam(w, err)
		return
	}
	maxPrice, err := floatQuery(r, "max_price", 0)
	if err != nil {
		respondBadParam(w, err)
		return
	}

	query := r.URL.Query()
	req := SearchRequest{
		Query:     strings.TrimSpace(query.Get("q")),
		Brands:    parseCommaSeparated(query.Get("brand")),
		Category:  strings.TrimSpace(query.Get("category")),
		MinRating: minRating,
		MaxPrice:  maxPrice,
		Sort:      query.Get("sort"),
		UserID:    userID,
		N:         n,
	}
	if apiErr := h.validateWithN(&req, req.N); apiErr != nil {
		respondAPIError(w, apiErr)
		return
	}

	snap := h.snapshot(w)
	if snap == nil {
		return
	}
	params := []any{req.Query, req.Brands, req.Category, req.MinRating, req.MaxPrice, req.Sort, req.UserID, req.N}
	h.serveCached(w, r, snap, "search", params, func() interface{} {
		items := catalog.Search(snap.Table, catalog.SearchQuery{
			Text:      req.Query,
			Brands:    req.Brands,
			Category:  req.Category,
			MinRating: req.MinRating,
			MaxPrice:  req.MaxPrice,
			Sort:      req.Sort,
			Limit:     req.N,
		})

		fallback := false
		if len(items) == 0 && req.Query != "" {
			items = h.engine.Hybrid(r.Context(), snap.Table, req.Query, req.UserID, req.N)
			fallback = true
		}
		if items == nil {
			items = []catalog.Record{}
		}
		return models.SearchResult{
			Query:    req.Query,
			Count:    len(items),
			Fallback: fallback,
			Items:    items,
		}
	})
}

// UserHistory handles GET /api/v1/users/{userID}/history.
func (h *Handler) UserHistory(w http.ResponseWriter, r *http.Request) {
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
	h.serveCached(w, r, snap, "history", []any{req.UserID, req.N}, func() interface{} {
		return models.NewUserHistoryResult(req.UserID, catalog.UserHistory(snap.Table, req.UserID, req.N))
	})
}
