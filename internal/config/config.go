// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package config

import "time"

// Catalog sources.
const (
	SourceCSV    = "csv"
	SourceJSON   = "json"
	SourceSQL    = "sql"
	SourceMongo  = "mongo"
	SourceBadger = "badger"
)

// Cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

// MaxResultsLimit is the largest recommend.max_n the API can serve.
const MaxResultsLimit = 100

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Cache     CacheConfig     `koanf:"cache"`
	Security  SecurityConfig  `koanf:"security"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production"
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// CatalogConfig selects and tunes the ratings catalog source.
type CatalogConfig struct {
	// Source is one of csv, json, sql, mongo, badger.
	Source string `koanf:"source"`

	// Path is the file read by the csv and json sources.
	Path string `koanf:"path"`

	// Driver is the database/sql driver for the sql source: duckdb or postgres.
	Driver string `koanf:"driver"`

	// DSN is the connection string for the sql source. Empty with the duckdb
	// driver opens an in-memory database.
	DSN string `koanf:"dsn"`

	// Query selects the ratings rows for the sql source.
	Query string `koanf:"query"`

	// Mongo configures the mongo source.
	Mongo MongoConfig `koanf:"mongo"`

	// SnapshotPath is a Badger directory. When set, every good load is
	// snapshotted there and the snapshot serves when the source fails.
	// With source=badger it is the source itself.
	SnapshotPath string `koanf:"snapshot_path"`

	// RefreshInterval reloads the catalog periodically. Zero loads once.
	RefreshInterval time.Duration `koanf:"refresh_interval"`

	// LoadTimeout bounds a single load.
	LoadTimeout time.Duration `koanf:"load_timeout"`

	// Reindex assigns fresh sequential product ids after loading.
	Reindex bool `koanf:"reindex"`

	// PlaceholderImages fills missing image URLs with stock images.
	PlaceholderImages bool `koanf:"placeholder_images"`
}

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI        string `koanf:"uri"`
	Database   string `koanf:"database"`
	Collection string `koanf:"collection"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	// Neighbors is the number of similar users consulted by user-based CF.
	Neighbors int `koanf:"neighbors"`

	// HighRating is the minimum neighbour rating that counts as a vote.
	HighRating float64 `koanf:"high_rating"`

	// ContentBrand and ContentName add brand and name text to the
	// content-based item documents. Category is always used.
	ContentBrand bool `koanf:"content_brand"`
	ContentName  bool `koanf:"content_name"`

	// HybridStrategy is concat or weighted.
	HybridStrategy string `koanf:"hybrid_strategy"`

	// ContentWeight and CollaborativeWeight apply to the weighted strategy.
	ContentWeight       float64 `koanf:"content_weight"`
	CollaborativeWeight float64 `koanf:"collaborative_weight"`

	DefaultN int `koanf:"default_n"`
	MaxN     int `koanf:"max_n"`
}

// CacheConfig holds API result cache settings.
type CacheConfig struct {
	// Backend is memory, redis, or none.
	Backend string        `koanf:"backend"`
	TTL     time.Duration `koanf:"ttl"`

	// MaxEntries bounds the memory backend; least recently used entries
	// are evicted beyond it.
	MaxEntries int `koanf:"max_entries"`

	Redis RedisConfig `koanf:"redis"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

// SecurityConfig holds CORS and rate limit settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Load reads configuration using Koanf with the following precedence
// (lowest to highest):
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables, including any loaded from a .env file
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
