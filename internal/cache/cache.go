// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package cache

import (
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/shopwise/internal/config"
)

// KeyPrefix namespaces every key this service writes.
const KeyPrefix = "shopwise:"

// Cache stores encoded API results. Implementations are safe for concurrent
// use. A failing backend reports misses rather than errors so that callers
// always fall through to computing the result.
type Cache interface {
	// Get returns the stored value and true on a hit.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key with the backend's TTL.
	Set(ctx context.Context, key string, value []byte)

	// Clear drops every entry written by this service.
	Clear(ctx context.Context) error

	// Backend names the implementation for metrics and health output.
	Backend() string
}

// New builds the cache selected by cfg.Backend.
func New(cfg config.CacheConfig) (Cache, error) {
	switch cfg.Backend {
	case config.CacheMemory:
		return NewMemoryCache(cfg.TTL, cfg.MaxEntries), nil
	case config.CacheRedis:
		return NewRedisCache(cfg.Redis, cfg.TTL), nil
	case config.CacheNone:
		return Noop{}, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// GenerateKey creates a cache key from the method name and parameters.
// Equal inputs always give equal keys.
func GenerateKey(method string, params ...any) string {
	data, err := json.Marshal(params)
	if err != nil {
		// Fallback to simple string key
		return fmt.Sprintf("%s%s:%v", KeyPrefix, method, params)
	}

	// Hash the JSON data for a compact key
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s%s:%x", KeyPrefix, method, hash[:16])
}

// Noop is a Cache that stores nothing.
type Noop struct{}

// Get always misses.
func (Noop) Get(context.Context, string) ([]byte, bool) { return nil, false }

// Set discards the value.
func (Noop) Set(context.Context, string, []byte) {}

// Clear does nothing.
func (Noop) Clear(context.Context) error { return nil }

// Backend implements Cache.
func (Noop) Backend() string { return config.CacheNone }

// Verify interface implementations at compile time
var (
	_ Cache = (*MemoryCache)(nil)
	_ Cache = (*RedisCache)(nil)
	_ Cache = Noop{}
)
