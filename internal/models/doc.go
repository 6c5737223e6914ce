// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

/*
Package models defines the HTTP API data structures for Shopwise.

Key Components:

  - APIResponse: standard response wrapper with Metadata and APIError
  - RecommendationResult: ranked rows plus the algorithm and inputs that produced them
  - SearchResult: storefront search rows, flagged when they fell back to recommendations
  - UserHistoryResult: a user's own ratings
  - HealthResponse: liveness plus catalog statistics

Row payloads reuse catalog.Record so API clients see the same columns the
catalog was loaded with.

All types marshal with github.com/goccy/go-json through the api package.
*/
package models
