// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

/*
Package cache stores encoded API results so repeated recommendation requests
skip the engines.

# Backends

  - memory: MemoryCache, an LRU with a fixed TTL (CACHE_MAX_ENTRIES bound)
  - redis: RedisCache, shared across replicas, behind a circuit breaker
  - none: Noop, always misses

Values are opaque bytes; the API layer stores the JSON it would have sent.
Keys come from GenerateKey and embed the catalog version, so a reload makes
old entries unreachable even before they expire.

# Usage Example

	c, err := cache.New(cfg.Cache)
	if err != nil {
	    return err
	}
	key := cache.GenerateKey("top_rated", version, n)
	if body, ok := c.Get(ctx, key); ok {
	    // serve body
	}
	c.Set(ctx, key, body)

# Failure Handling

Backend failures never reach callers: Get reports a miss and Set drops the
value. Every outcome is counted in cache_operations_total.
*/
package cache
