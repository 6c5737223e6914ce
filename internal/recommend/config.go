// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package recommend

import (
	"fmt"

	"github.com/tomtom215/shopwise/internal/catalog"
)

// Hybrid strategies.
const (
	StrategyConcat   = "concat"
	StrategyWeighted = "weighted"
)

// Config contains all configuration for the recommendation engines.
type Config struct {
	// Content configures content-based filtering.
	Content ContentOptions `json:"content"`

	// Collaborative configures user-based collaborative filtering.
	Collaborative CFOptions `json:"collaborative"`

	// Hybrid configures how content and collaborative results merge.
	Hybrid HybridOptions `json:"hybrid"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`
}

// ContentOptions selects the text fields that make up an item's document.
// Category is always included. Rating never is.
type ContentOptions struct {
	IncludeBrand bool `json:"include_brand"`
	IncludeName  bool `json:"include_name"`
}

// CFOptions configures user-based collaborative filtering.
type CFOptions struct {
	// Neighbors is the number of most similar users consulted.
	Neighbors int `json:"neighbors"`

	// HighRating is the minimum neighbour rating that counts as a vote.
	HighRating float64 `json:"high_rating"`
}

// HybridOptions configures the hybrid engine.
type HybridOptions struct {
	// Strategy is StrategyConcat or StrategyWeighted.
	Strategy string `json:"strategy"`

	// Weights apply to the weighted strategy only.
	Weights HybridWeights `json:"weights"`

	// Content and Collaborative configure the two sides.
	Content       ContentOptions `json:"-"`
	Collaborative CFOptions      `json:"-"`
}

// HybridWeights defines the relative contribution of each side.
// Weights are normalized at runtime, so they don't need to sum to 1.0.
type HybridWeights struct {
	Content       float64 `json:"content"`
	Collaborative float64 `json:"collaborative"`
}

// Normalize returns a copy with weights normalized to sum to 1.0.
func (w HybridWeights) Normalize() HybridWeights {
	sum := w.Content + w.Collaborative
	if sum == 0 {
		return HybridWeights{Content: 0.5, Collaborative: 0.5}
	}
	return HybridWeights{
		Content:       w.Content / sum,
		Collaborative: w.Collaborative / sum,
	}
}

// LimitsConfig bounds result sizes.
type LimitsConfig struct {
	// DefaultN is used when a request does not specify n.
	DefaultN int `json:"default_n"`

	// MaxN caps every request.
	MaxN int `json:"max_n"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		Content: ContentOptions{
			IncludeBrand: true,
			IncludeName:  false,
		},
		Collaborative: CFOptions{
			Neighbors:  5,
			HighRating: 4.0,
		},
		Hybrid: HybridOptions{
			Strategy: StrategyConcat,
			Weights: HybridWeights{
				Content:       0.5,
				Collaborative: 0.5,
			},
		},
		Limits: LimitsConfig{
			DefaultN: 10,
			MaxN:     100,
		},
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Collaborative.Neighbors < 1 {
		return fmt.Errorf("collaborative.neighbors must be positive, got %d", c.Collaborative.Neighbors)
	}
	if c.Collaborative.HighRating < catalog.MinRating || c.Collaborative.HighRating > catalog.MaxRating {
		return fmt.Errorf("collaborative.high_rating must be in [%v, %v], got %f",
			catalog.MinRating, catalog.MaxRating, c.Collaborative.HighRating)
	}

	switch c.Hybrid.Strategy {
	case StrategyConcat, StrategyWeighted:
	default:
		return fmt.Errorf("hybrid.strategy must be %q or %q, got %q", StrategyConcat, StrategyWeighted, c.Hybrid.Strategy)
	}
	if c.Hybrid.Weights.Content < 0 || c.Hybrid.Weights.Collaborative < 0 {
		return fmt.Errorf("hybrid.weights must be non-negative, got %+v", c.Hybrid.Weights)
	}

	if c.Limits.DefaultN < 1 {
		return fmt.Errorf("limits.default_n must be positive, got %d", c.Limits.DefaultN)
	}
	if c.Limits.MaxN < c.Limits.DefaultN {
		return fmt.Errorf("limits.max_n must be >= limits.default_n, got %d", c.Limits.MaxN)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// HybridOptions returns the hybrid options with both sides filled in from c.
func (c *Config) HybridOptions() HybridOptions {
	opts := c.Hybrid
	opts.Content = c.Content
	opts.Collaborative = c.Collaborative
	return opts
}
