// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

/*
Package supervisor provides process supervision for Shopwise using suture v4.

# Overview

	RootSupervisor ("shopwise")
	├── DataSupervisor ("data-layer")
	│   └── CatalogService (load on start, reload on catalog.refresh_interval)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A failing catalog source never takes the API down: the catalog service
keeps the last good table published and suture restarts it with backoff if
it crashes.

# Usage Example

	logger := logging.NewSlogLogger()
	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewCatalogService(l, holder, catCfg, logging.Logger()))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped")
	}

# Logging

Supervisor events (service start, failure, restart, backoff) go through
sutureslog into the slog adapter from the logging package, so they share the
zerolog output of the rest of the service.
*/
package supervisor
