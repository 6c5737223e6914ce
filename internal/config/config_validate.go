// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package config

import (
	"fmt"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	return nil
}

// validateCatalog checks that the selected source has what it needs.
func (c *Config) validateCatalog() error {
	switch c.Catalog.Source {
	case SourceCSV, SourceJSON:
		if c.Catalog.Path == "" {
			return fmt.Errorf("CATALOG_PATH is required when CATALOG_SOURCE=%s", c.Catalog.Source)
		}
	case SourceSQL:
		if err := c.validateSQLSource(); err != nil {
			return err
		}
	case SourceMongo:
		if c.Catalog.Mongo.URI == "" {
			return fmt.Errorf("MONGO_URI is required when CATALOG_SOURCE=mongo")
		}
		if c.Catalog.Mongo.Database == "" || c.Catalog.Mongo.Collection == "" {
			return fmt.Errorf("MONGO_DATABASE and MONGO_COLLECTION are required when CATALOG_SOURCE=mongo")
		}
	case SourceBadger:
		if c.Catalog.SnapshotPath == "" {
			return fmt.Errorf("CATALOG_SNAPSHOT_PATH is required when CATALOG_SOURCE=badger")
		}
	default:
		return fmt.Errorf("CATALOG_SOURCE must be one of: csv, json, sql, mongo, badger")
	}

	if c.Catalog.RefreshInterval < 0 {
		return fmt.Errorf("CATALOG_REFRESH_INTERVAL must not be negative")
	}
	if c.Catalog.LoadTimeout <= 0 {
		return fmt.Errorf("CATALOG_LOAD_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateSQLSource() error {
	switch c.Catalog.Driver {
	case "duckdb":
	case "postgres":
		if c.Catalog.DSN == "" {
			return fmt.Errorf("CATALOG_DSN is required when CATALOG_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("CATALOG_DRIVER must be one of: duckdb, postgres")
	}
	if c.Catalog.Query == "" {
		return fmt.Errorf("CATALOG_QUERY is required when CATALOG_SOURCE=sql")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.Neighbors < 1 {
		return fmt.Errorf("RECOMMEND_NEIGHBORS must be positive")
	}
	if r.HighRating < 0 || r.HighRating > 5 {
		return fmt.Errorf("RECOMMEND_HIGH_RATING must be between 0 and 5")
	}
	if r.HybridStrategy != "concat" && r.HybridStrategy != "weighted" {
		return fmt.Errorf("RECOMMEND_HYBRID_STRATEGY must be one of: concat, weighted")
	}
	if r.ContentWeight < 0 || r.CollaborativeWeight < 0 {
		return fmt.Errorf("RECOMMEND_CONTENT_WEIGHT and RECOMMEND_COLLABORATIVE_WEIGHT must not be negative")
	}
	if r.DefaultN < 1 || r.MaxN < r.DefaultN {
		return fmt.Errorf("RECOMMEND_DEFAULT_N must be positive and not exceed RECOMMEND_MAX_N")
	}
	if r.MaxN > MaxResultsLimit {
		return fmt.Errorf("RECOMMEND_MAX_N must not exceed %d", MaxResultsLimit)
	}
	return nil
}

func (c *Config) validateCache() error {
	switch c.Cache.Backend {
	case CacheMemory, CacheNone:
	case CacheRedis:
		if c.Cache.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required when CACHE_BACKEND=redis")
		}
	default:
		return fmt.Errorf("CACHE_BACKEND must be one of: memory, redis, none")
	}
	if c.Cache.Backend != CacheNone && c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	if c.Cache.Backend == CacheMemory && c.Cache.MaxEntries < 1 {
		return fmt.Errorf("CACHE_MAX_ENTRIES must be at least 1")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// HasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
