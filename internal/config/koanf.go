// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/shopwise/config.yaml",
	"/etc/shopwise/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotEnvPathEnvVar overrides the .env file location.
const DotEnvPathEnvVar = "DOTENV_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Catalog: CatalogConfig{
			Source:            SourceCSV,
			Path:              "data/ratings.csv",
			Driver:            "duckdb",
			Query:             "SELECT * FROM ratings",
			RefreshInterval:   0,
			LoadTimeout:       2 * time.Minute,
			Reindex:           false,
			PlaceholderImages: false,
			Mongo: MongoConfig{
				Database:   "shopwise",
				Collection: "ratings",
			},
		},
		Recommend: RecommendConfig{
			Neighbors:           5,
			HighRating:          4.0,
			ContentBrand:        true,
			ContentName:         false,
			HybridStrategy:      "concat",
			ContentWeight:       0.5,
			CollaborativeWeight: 0.5,
			DefaultN:            10,
			MaxN:                100,
		},
		Cache: CacheConfig{
			Backend:    CacheMemory,
			TTL:        5 * time.Minute,
			MaxEntries: 10000,
			Redis: RedisConfig{
				Addr: "localhost:6379",
			},
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
//
// A .env file, when present, is loaded into the process environment before
// layer 3. Variables already set in the environment win over the file.
func LoadWithKoanf() (*Config, error) {
	loadDotEnv()

	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// CATALOG_SOURCE -> catalog.source
	// REDIS_ADDR -> cache.redis.addr
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadDotEnv loads DOTENV_PATH, or .env in the working directory. A missing
// file is not an error.
func loadDotEnv() {
	path := os.Getenv(DotEnvPathEnvVar)
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		return
	}
	_ = godotenv.Load(path)
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// This is necessary because env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to config paths.
var envMappings = map[string]string{
	// Server
	"http_host":        "server.host",
	"http_port":        "server.port",
	"server_host":      "server.host",
	"server_port":      "server.port",
	"server_timeout":   "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Catalog
	"catalog_source":             "catalog.source",
	"catalog_path":               "catalog.path",
	"catalog_driver":             "catalog.driver",
	"catalog_dsn":                "catalog.dsn",
	"database_url":               "catalog.dsn",
	"catalog_query":              "catalog.query",
	"catalog_snapshot_path":      "catalog.snapshot_path",
	"catalog_refresh_interval":   "catalog.refresh_interval",
	"catalog_load_timeout":       "catalog.load_timeout",
	"catalog_reindex":            "catalog.reindex",
	"catalog_placeholder_images": "catalog.placeholder_images",
	"mongo_uri":                  "catalog.mongo.uri",
	"mongo_database":             "catalog.mongo.database",
	"mongo_collection":           "catalog.mongo.collection",

	// Recommendation engine
	"recommend_neighbors":            "recommend.neighbors",
	"recommend_high_rating":          "recommend.high_rating",
	"recommend_content_brand":        "recommend.content_brand",
	"recommend_content_name":         "recommend.content_name",
	"recommend_hybrid_strategy":      "recommend.hybrid_strategy",
	"recommend_content_weight":       "recommend.content_weight",
	"recommend_collaborative_weight": "recommend.collaborative_weight",
	"recommend_default_n":            "recommend.default_n",
	"recommend_max_n":                "recommend.max_n",

	// Cache
	"cache_backend":     "cache.backend",
	"cache_ttl":         "cache.ttl",
	"cache_max_entries": "cache.max_entries",
	"redis_addr":        "cache.redis.addr",
	"redis_password":    "cache.redis.password",
	"redis_db":          "cache.redis.db",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_reqs":     "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"rate_limit_disabled": "security.rate_limit_disabled",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - CATALOG_SOURCE -> catalog.source
//   - DATABASE_URL -> catalog.dsn
//   - REDIS_ADDR -> cache.redis.addr
//   - HTTP_PORT -> server.port
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// For unmapped keys, return empty string to skip them
	// This prevents random environment variables from polluting config
	return ""
}
