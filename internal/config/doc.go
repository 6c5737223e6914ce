// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

/*
Package config provides centralized configuration management for Shopwise.

# Configuration Sources

Configuration is layered with Koanf v2, lowest to highest precedence:
  - Built-in defaults
  - A YAML file: CONFIG_PATH, or config.yaml / /etc/shopwise/config.yaml
  - Environment variables

A .env file (DOTENV_PATH, default ./.env) is read into the environment
before the last layer. Variables already exported take precedence over it.

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT (default 8080), SERVER_TIMEOUT, SHUTDOWN_TIMEOUT, ENVIRONMENT

Catalog:
  - CATALOG_SOURCE: csv, json, sql, mongo, badger (default csv)
  - CATALOG_PATH: file for csv/json sources
  - CATALOG_DRIVER: duckdb or postgres; CATALOG_DSN or DATABASE_URL; CATALOG_QUERY
  - MONGO_URI, MONGO_DATABASE, MONGO_COLLECTION
  - CATALOG_SNAPSHOT_PATH: Badger snapshot directory
  - CATALOG_REFRESH_INTERVAL: reload period, 0 loads once
  - CATALOG_REINDEX, CATALOG_PLACEHOLDER_IMAGES

Recommendation:
  - RECOMMEND_NEIGHBORS (5), RECOMMEND_HIGH_RATING (4.0)
  - RECOMMEND_CONTENT_BRAND (true), RECOMMEND_CONTENT_NAME (false)
  - RECOMMEND_HYBRID_STRATEGY: concat or weighted
  - RECOMMEND_CONTENT_WEIGHT, RECOMMEND_COLLABORATIVE_WEIGHT
  - RECOMMEND_DEFAULT_N (10), RECOMMEND_MAX_N (100)

Cache:
  - CACHE_BACKEND: memory, redis, none; CACHE_TTL; CACHE_MAX_ENTRIES (10000)
  - REDIS_ADDR, REDIS_PASSWORD, REDIS_DB

Security:
  - CORS_ORIGINS (comma-separated), RATE_LIMIT_REQS, RATE_LIMIT_WINDOW, RATE_LIMIT_DISABLED

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config
