// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

/*
Package services provides the suture.Service implementations run by the
Shopwise supervisor tree.

# Available Services

Catalog (CatalogService), data layer:
  - Loads the ratings table through a loader.Loader
  - Normalizes it and publishes it to a catalog.Holder
  - Reloads on RefreshInterval; a failed reload keeps the previous table
  - Without RefreshInterval a failed first load returns from Serve, so the
    supervisor retries it with backoff
  - Clears the result cache after each successful reload

HTTP Server (HTTPServerService), API layer:
  - Wraps *http.Server with graceful shutdown
  - Converts ListenAndServe to Serve

# Usage Example

	holder := catalog.NewHolder()
	catSvc := services.NewCatalogService(l, holder, services.CatalogServiceConfig{
	    RefreshInterval: cfg.Catalog.RefreshInterval,
	}, logging.Logger())
	catSvc.SetCacheClearer(handler)
	tree.AddDataService(catSvc)

	srv := services.NewHTTPServer(cfg.Server, router)
	tree.AddAPIService(services.NewHTTPServerService(srv, 10*time.Second))

# Error Handling

Return values determine supervisor behavior:

	nil         -> stopped cleanly, not restarted
	error       -> crashed, restarted with backoff
	ctx.Err()   -> shutdown requested

CatalogService never returns a load error from Serve: the API answers 503
until a catalog is published, and restarting would only repeat the load.
*/
package services
