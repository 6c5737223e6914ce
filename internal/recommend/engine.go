// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/shopwise/internal/catalog"
	"github.com/tomtom215/shopwise/internal/logging"
	"github.com/tomtom215/shopwise/internal/metrics"
)

// Engine runs the recommendation algorithms with a fixed configuration,
// logging and recording metrics for every call.
type Engine struct {
	cfg    *Config
	logger zerolog.Logger
}

// NewEngine creates an engine. The configuration is validated and copied.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recommend config: %w", err)
	}
	return &Engine{
		cfg:    cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.cfg.Clone()
}

// Algorithms lists the available algorithms.
func (e *Engine) Algorithms() []AlgorithmInfo {
	return Algorithms()
}

// ClampN maps a requested result size onto the configured limits: n <= 0
// becomes DefaultN and anything above MaxN is capped.
func (e *Engine) ClampN(n int) int {
	if n <= 0 {
		return e.cfg.Limits.DefaultN
	}
	if n > e.cfg.Limits.MaxN {
		return e.cfg.Limits.MaxN
	}
	return n
}

// TopRated runs TopRated.
func (e *Engine) TopRated(ctx context.Context, t *catalog.Table, n int) []catalog.Record {
	return e.observe(ctx, AlgorithmTopRated, func() []catalog.Record {
		return TopRated(t, e.ClampN(n))
	})
}

// SimilarItems runs content-based SimilarItems with the configured features.
func (e *Engine) SimilarItems(ctx context.Context, t *catalog.Table, itemName string, n int) []catalog.Record {
	return e.observe(ctx, AlgorithmContent, func() []catalog.Record {
		return SimilarItems(t, itemName, e.ClampN(n), e.cfg.Content)
	})
}

// RecommendForUser runs user-based collaborative filtering.
func (e *Engine) RecommendForUser(ctx context.Context, t *catalog.Table, userID int, n int) []catalog.Record {
	return e.observe(ctx, AlgorithmUserCF, func() []catalog.Record {
		return RecommendForUser(t, userID, e.ClampN(n), e.cfg.Collaborative)
	})
}

// SimilarByPurchase runs item-based collaborative filtering.
func (e *Engine) SimilarByPurchase(ctx context.Context, t *catalog.Table, productID string, n int) []catalog.Record {
	return e.observe(ctx, AlgorithmItemCF, func() []catalog.Record {
		return SimilarByPurchase(t, productID, e.ClampN(n))
	})
}

// Hybrid runs the hybrid engine with the configured strategy.
func (e *Engine) Hybrid(ctx context.Context, t *catalog.Table, itemName string, userID int, n int) []catalog.Record {
	return e.HybridWithStrategy(ctx, t, itemName, userID, n, "")
}

// HybridWithStrategy runs the hybrid engine, overriding the configured
// strategy when strategy is non-empty.
func (e *Engine) HybridWithStrategy(ctx context.Context, t *catalog.Table, itemName string, userID int, n int, strategy string) []catalog.Record {
	opts := e.cfg.HybridOptions()
	if strategy != "" {
		opts.Strategy = strategy
	}
	return e.observe(ctx, AlgorithmHybrid, func() []catalog.Record {
		return Hybrid(t, itemName, userID, e.ClampN(n), opts)
	})
}

func (e *Engine) observe(ctx context.Context, algorithm string, run func() []catalog.Record) []catalog.Record {
	start := time.Now()
	out := run()
	elapsed := time.Since(start)

	metrics.RecordRecommendation(algorithm, len(out), elapsed)

	logger := e.logger
	if requestID := logging.RequestIDFromContext(ctx); requestID != "" {
		logger = logger.With().Str("request_id", requestID).Logger()
	}
	logger.Debug().
		Str("algorithm", algorithm).
		Int("results", len(out)).
		Dur("duration", elapsed).
		Msg("Recommendation computed")
	return out
}
