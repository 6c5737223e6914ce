// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package api

import "github.com/tomtom215/shopwise/internal/config"

// Request structs carry parsed query parameters through
// go-playground/validator before any engine runs. The json tags name the
// query parameters so validation messages use them.
//
// Example usage:
//
//	req := SimilarRequest{Item: r.URL.Query().Get("item"), N: n}
//	if apiErr := h.validateWithN(&req, req.N); apiErr != nil {
//	    respondAPIError(w, apiErr)
//	    return
//	}

// MaxResults is the largest n any endpoint accepts. The engine's
// configured max_n can lower it further.
const MaxResults = config.MaxResultsLimit

// TopRatedRequest represents the validated query parameters for /recommendations/top-rated.
type TopRatedRequest struct {
	N int `json:"n" validate:"min=1,max=100"`
}

// SimilarRequest represents the validated query parameters for /recommendations/similar.
type SimilarRequest struct {
	Item string `json:"item" validate:"productname,max=200"`
	N    int    `json:"n" validate:"min=1,max=100"`
}

// UserRequest represents the validated parameters for /recommendations/user/{userID}
// and /users/{userID}/history.
type UserRequest struct {
	UserID int `json:"user_id" validate:"min=0"`
	N      int `json:"n" validate:"min=1,max=100"`
}

// PurchaseRequest represents the validated parameters for /recommendations/purchase/{productID}.
type PurchaseRequest struct {
	ProductID string `json:"product_id" validate:"required,max=200"`
	N         int    `json:"n" validate:"min=1,max=100"`
}

// HybridRequest represents the validated query parameters for /recommendations/hybrid.
//
// Fields:
//   - Item: anchor product name for the content side
//   - UserID: user for the collaborative side (0 means anonymous)
//   - Strategy: concat or weighted; empty uses the configured default
type HybridRequest struct {
	Item     string `json:"item" validate:"productname,max=200"`
	UserID   int    `json:"user_id" validate:"min=0"`
	N        int    `json:"n" validate:"min=1,max=100"`
	Strategy string `json:"strategy" validate:"omitempty,oneof=concat weighted"`
}

// SearchRequest represents the validated query parameters for /products/search.
type SearchRequest struct {
	Query     string   `json:"q" validate:"max=200"`
	Brands    []string `json:"brand" validate:"max=20,dive,max=100"`
	Category  string   `json:"category" validate:"max=100"`
	MinRating float64  `json:"min_rating" validate:"min=0,max=5"`
	MaxPrice  float64  `json:"max_price" validate:"min=0"`
	Sort      string   `json:"sort" validate:"omitempty,oneof=relevance rating_desc price_asc price_desc deals"`
	UserID    int      `json:"user_id" validate:"min=0"`
	N         int      `json:"n" validate:"min=1,max=100"`
}
