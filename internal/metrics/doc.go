// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

Recommendations:
  - recommend_requests_total{algorithm,outcome}: engine calls, outcome "ok" or "empty"
  - recommend_duration_seconds{algorithm}: engine latency
  - recommend_results{algorithm}: rows returned per call

Catalog:
  - catalog_rows: rows in the active catalog table
  - catalog_skipped_rows: source rows dropped by the normalizer
  - catalog_reloads_total{status}: reload attempts, status "success" or "failure"
  - catalog_last_reload_timestamp_seconds: unix time of the last good reload

Cache:
  - cache_operations_total{backend,result}: result is "hit", "miss", "set" or "error"
  - cache_entries{backend}: current entry count where the backend can report it

HTTP:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests

Circuit breaker:
  - circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

# Usage

	start := time.Now()
	recs := recommend.TopRated(table, 10)
	metrics.RecordRecommendation(recommend.AlgorithmTopRated, len(recs), time.Since(start))

# Thread Safety

All functions are safe for concurrent use.
*/
package metrics
