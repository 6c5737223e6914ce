// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

/*
Package main is the entry point for the Shopwise server.

Shopwise serves product recommendations over HTTP from a table of user
ratings: top-rated, content-based, user-based collaborative, item-based
collaborative, and hybrid.

# Application Architecture

	RootSupervisor ("shopwise")
	├── DataSupervisor ("data-layer")
	│   └── Catalog service (load, normalize, publish, refresh)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Initialization order:

 1. Configuration: koanf with defaults, config file, .env, environment
 2. Logging: zerolog, JSON or console
 3. Recommendation engine
 4. Result cache: memory, redis, or none
 5. Catalog loader: csv, json, sql, mongo, or badger, optionally snapshotting to badger
 6. Supervisor tree and HTTP server

# Example Usage

	export CATALOG_SOURCE=csv
	export CATALOG_PATH=/data/ratings.csv
	export CACHE_BACKEND=memory
	./shopwise

The API answers 503 CATALOG_UNAVAILABLE until the first load succeeds.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains for
SHUTDOWN_TIMEOUT, then the loader and cache connections are closed.
*/
package main
