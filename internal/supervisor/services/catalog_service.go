// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/shopwise/internal/catalog"
	"github.com/tomtom215/shopwise/internal/loader"
	"github.com/tomtom215/shopwise/internal/metrics"
)

// CacheClearer drops cached API results after a reload.
type CacheClearer interface {
	ClearCache(ctx context.Context) error
}

// CatalogServiceConfig holds configuration for the catalog service.
type CatalogServiceConfig struct {
	// RefreshInterval reloads the catalog periodically. Zero loads once.
	RefreshInterval time.Duration

	// LoadTimeout bounds a single load. Default: 2m
	LoadTimeout time.Duration

	// Reindex assigns fresh sequential product ids after normalizing.
	Reindex bool

	// PlaceholderImages fills missing image URLs with stock images.
	PlaceholderImages bool
}

// CatalogService loads the ratings catalog, normalizes it, and publishes it
// to a catalog.Holder. A failed load keeps the previous table published.
type CatalogService struct {
	loader  loader.Loader
	holder  *catalog.Holder
	clearer CacheClearer
	config  CatalogServiceConfig
	logger  zerolog.Logger
	name    string
}

// NewCatalogService creates a new catalog service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogService(l loader.Loader, holder *catalog.Holder, cfg CatalogServiceConfig, logger zerolog.Logger) *CatalogService {
	if cfg.LoadTimeout <= 0 {
		cfg.LoadTimeout = 2 * time.Minute
	}
	return &CatalogService{
		loader: l,
		holder: holder,
		config: cfg,
		logger: logger.With().Str("service", "catalog").Str("source", l.Name()).Logger(),
		name:   "catalog-service",
	}
}

// SetCacheClearer registers the cache to clear after each successful reload.
func (s *CatalogService) SetCacheClearer(c CacheClearer) {
	s.clearer = c
}

// Serve implements suture.Service. The first load happens immediately. If
// it fails, the next tick retries it; without a refresh interval Serve
// returns the error so the supervisor restarts the service with backoff.
func (s *CatalogService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("refresh_interval", s.config.RefreshInterval).
		Msg("catalog service starting")

	if err := s.Reload(ctx); err != nil {
		s.logger.Error().Err(err).Msg("initial catalog load failed")
		if s.config.RefreshInterval <= 0 {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("initial catalog load: %w", err)
		}
	}

	if s.config.RefreshInterval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog service shutting down")
			return ctx.Err()

		case <-ticker.C:
			if err := s.Reload(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("scheduled catalog reload failed, keeping previous catalog")
			}
		}
	}
}

// Reload performs one load, normalize, and publish cycle.
func (s *CatalogService) Reload(ctx context.Context) error {
	loadCtx, cancel := context.WithTimeout(ctx, s.config.LoadTimeout)
	defer cancel()

	start := time.Now()
	raw, err := s.loader.Load(loadCtx)
	if err != nil {
		return s.fail(fmt.Errorf("load catalog from %s: %w", s.loader.Name(), err))
	}

	table, err := catalog.NormalizeWithOptions(raw, catalog.NormalizeOptions{
		PlaceholderImages: s.config.PlaceholderImages,
	})
	if err != nil {
		return s.fail(fmt.Errorf("normalize catalog: %w", err))
	}
	if s.config.Reindex {
		table, _ = catalog.Reindex(table)
	}

	snap := s.holder.Swap(table, s.loader.Name())
	metrics.RecordCatalogReload(table.Len(), table.Skipped(), nil)

	if s.clearer != nil {
		if err := s.clearer.ClearCache(ctx); err != nil {
			// Stale entries are unreachable anyway: keys carry the version.
			s.logger.Warn().Err(err).Msg("failed to clear result cache after reload")
		}
	}

	s.logger.Info().
		Uint64("version", snap.Version).
		Int("rows", table.Len()).
		Int("skipped", table.Skipped()).
		Dur("duration", time.Since(start)).
		Msg("catalog loaded")
	return nil
}

func (s *CatalogService) fail(err error) error {
	s.holder.Fail(err)
	metrics.RecordCatalogReload(0, 0, err)
	return err
}

// Close releases the loader's connections, if it holds any.
func (s *CatalogService) Close() error {
	if c, ok := s.loader.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// String returns the service name for logging.
func (s *CatalogService) String() string {
	return s.name
}
