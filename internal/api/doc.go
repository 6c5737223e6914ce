// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

/*
Package api provides the HTTP surface of Shopwise.

All endpoints are read-only GETs that return the models.APIResponse
envelope. Handlers read the active catalog from a catalog.Holder, run the
recommend.Engine, and cache encoded results keyed by catalog version.

# Routes

	GET /api/v1/health                                 liveness + catalog stats
	GET /api/v1/health/live                            process is up
	GET /api/v1/health/ready                           503 until a catalog is loaded
	GET /api/v1/health/performance                     per-route latency percentiles
	GET /api/v1/recommendations/top-rated              ?n=
	GET /api/v1/recommendations/similar                ?item=&n=
	GET /api/v1/recommendations/user/{userID}          ?n=
	GET /api/v1/recommendations/purchase/{productID}   ?n=
	GET /api/v1/recommendations/hybrid                 ?item=&user_id=&n=&strategy=
	GET /api/v1/recommendations/algorithms
	GET /api/v1/products/search                        ?q=&brand=&category=&min_rating=&max_price=&sort=&user_id=&n=
	GET /api/v1/users/{userID}/history                 ?n=
	GET /metrics                                       Prometheus

# Errors

  - VALIDATION_ERROR (400): a query parameter failed validation
  - INVALID_PARAMETER (400): a path or numeric parameter could not be parsed
  - CATALOG_UNAVAILABLE (503): no catalog has been loaded yet
  - RATE_LIMIT_EXCEEDED (429): too many requests from one client

An empty recommendation is not an error: it is a 200 with an empty items list.

# Middleware

Global: request id, real ip, recoverer, Prometheus metrics, performance
monitor, gzip, CORS. The /api/v1 tree is rate limited per client IP with
go-chi/httprate; health probes are not.
*/
package api
