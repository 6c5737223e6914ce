// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package models

import (
	"time"

	"github.com/tomtom215/shopwise/internal/catalog"
)

// RecommendationResult is the payload of every recommendation endpoint.
//
// Example:
//
//	{
//	  "algorithm": "hybrid",
//	  "input": {"item": "Nail Polish", "user_id": 42, "n": 10},
//	  "count": 2,
//	  "items": [{"product_id": "7", "product_name": "Top Coat", ...}, ...]
//	}
type RecommendationResult struct {
	Algorithm string           `json:"algorithm"`
	Input     map[string]any   `json:"input,omitempty"`
	Count     int              `json:"count"`
	Items     []catalog.Record `json:"items"`
}

// NewRecommendationResult builds a result, normalising nil items to an
// empty list so clients always receive an array.
func NewRecommendationResult(algorithm string, input map[string]any, items []catalog.Record) RecommendationResult {
	if items == nil {
		items = []catalog.Record{}
	}
	return RecommendationResult{
		Algorithm: algorithm,
		Input:     input,
		Count:     len(items),
		Items:     items,
	}
}

// SearchResult is the payload of the product search endpoint. Fallback is
// set when nothing matched the query and the items are hybrid
// recommendations instead.
type SearchResult struct {
	Query    string           `json:"query"`
	Count    int              `json:"count"`
	Fallback bool             `json:"fallback,omitempty"`
	Items    []catalog.Record `json:"items"`
}

// UserHistoryResult is the payload of the user history endpoint: the
// user's own ratings, most recent first.
type UserHistoryResult struct {
	UserID int              `json:"user_id"`
	Count  int              `json:"count"`
	Items  []catalog.Record `json:"items"`
}

// NewUserHistoryResult builds a history result with a non-nil item list.
func NewUserHistoryResult(userID int, items []catalog.Record) UserHistoryResult {
	if items == nil {
		items = []catalog.Record{}
	}
	return UserHistoryResult{UserID: userID, Count: len(items), Items: items}
}

// HealthResponse reports liveness and the state of the active catalog.
type HealthResponse struct {
	Status        string         `json:"status"` // "healthy" or "degraded"
	Version       string         `json:"version"`
	Uptime        float64        `json:"uptime_seconds"`
	CatalogLoaded bool           `json:"catalog_loaded"`
	CatalogSource string         `json:"catalog_source,omitempty"`
	Catalog       *catalog.Stats `json:"catalog,omitempty"`
	LastReload    *time.Time     `json:"last_reload,omitempty"`
	LastError     string         `json:"last_error,omitempty"`
	Cache         string         `json:"cache"`
}
