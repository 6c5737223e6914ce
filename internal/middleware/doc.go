// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

/*
Package middleware provides HTTP middleware components for the API server.

Key Components:

  - RequestID: UUID request ids carried in X-Request-ID and the logging context
  - PrometheusMetrics: request counts, latency, and in-flight gauge
  - Compression: chi Compressor limited to JSON payloads
  - PerformanceMonitor: sliding-window latency percentiles per route

All middleware has the func(http.Handler) http.Handler shape and labels by
chi route pattern ("/api/v1/users/{userID}/history") rather than the raw
path, so ids in URLs do not explode metric cardinality.

Middleware Stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(monitor.Middleware)
	r.Use(middleware.Compression)
*/
package middleware
