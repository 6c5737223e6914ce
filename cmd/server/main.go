// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/shopwise/internal/api"
	"github.com/tomtom215/shopwise/internal/cache"
	"github.com/tomtom215/shopwise/internal/catalog"
	"github.com/tomtom215/shopwise/internal/config"
	"github.com/tomtom215/shopwise/internal/loader"
	"github.com/tomtom215/shopwise/internal/logging"
	"github.com/tomtom215/shopwise/internal/recommend"
	"github.com/tomtom215/shopwise/internal/supervisor"
	"github.com/tomtom215/shopwise/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

// run wires and serves the application, returning the process exit code.
// Deferred closes run before main exits.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		logging.Error().Err(err).Msg("Failed to load configuration")
		return 1
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Version:   version,
	})

	logging.Info().
		Str("version", version).
		Str("catalog_source", cfg.Catalog.Source).
		Str("cache_backend", cfg.Cache.Backend).
		Msg("Starting Shopwise with supervisor tree")

	engine, err := recommend.NewEngine(engineConfig(cfg.Recommend), logging.Logger())
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create recommendation engine")
		return 1
	}

	resultCache, err := cache.New(cfg.Cache)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create result cache")
		return 1
	}
	defer closeQuietly("cache", resultCache)

	source, err := loader.FromConfig(cfg.Catalog)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create catalog loader")
		return 1
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (RATE_LIMIT_DISABLED=true)")
	}
	if cfg.HasWildcardCORS() && cfg.IsProduction() {
		logging.Warn().Msg("CORS allows any origin in production; set CORS_ORIGINS")
	}

	holder := catalog.NewHolder()
	handler := api.NewHandler(engine, holder, resultCache, version)
	router := handler.SetupChi(api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security)))

	catalogSvc := services.NewCatalogService(source, holder, services.CatalogServiceConfig{
		RefreshInterval:   cfg.Catalog.RefreshInterval,
		LoadTimeout:       cfg.Catalog.LoadTimeout,
		Reindex:           cfg.Catalog.Reindex,
		PlaceholderImages: cfg.Catalog.PlaceholderImages,
	}, logging.Logger())
	catalogSvc.SetCacheClearer(handler)
	defer closeQuietly("catalog loader", catalogSvc)

	treeCfg := supervisor.DefaultTreeConfig()
	if cfg.Server.ShutdownTimeout > 0 {
		treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout + 5*time.Second
	}
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), treeCfg)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create supervisor tree")
		return 1
	}

	server := services.NewHTTPServer(cfg.Server, router)
	tree.AddDataService(catalogSvc)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	for err := range tree.ServeBackground(ctx) {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}
	if len(unstopped) > 0 {
		return 1
	}

	logging.Info().Msg("Application stopped gracefully")
	return 0
}

// engineConfig maps the flat recommend settings onto the engine config.
func engineConfig(rc config.RecommendConfig) *recommend.Config {
	cfg := recommend.DefaultConfig()
	cfg.Content = recommend.ContentOptions{
		IncludeBrand: rc.ContentBrand,
		IncludeName:  rc.ContentName,
	}
	if rc.Neighbors > 0 {
		cfg.Collaborative.Neighbors = rc.Neighbors
	}
	if rc.HighRating > 0 {
		cfg.Collaborative.HighRating = rc.HighRating
	}
	if rc.HybridStrategy != "" {
		cfg.Hybrid.Strategy = rc.HybridStrategy
	}
	if rc.ContentWeight > 0 || rc.CollaborativeWeight > 0 {
		cfg.Hybrid.Weights = recommend.HybridWeights{
			Content:       rc.ContentWeight,
			Collaborative: rc.CollaborativeWeight,
		}
	}
	if rc.DefaultN > 0 {
		cfg.Limits.DefaultN = rc.DefaultN
	}
	if rc.MaxN > 0 {
		cfg.Limits.MaxN = rc.MaxN
	}
	return cfg
}

func closeQuietly(name string, v any) {
	c, ok := v.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		logging.Error().Err(err).Str("component", name).Msg("Error during close")
	}
}
