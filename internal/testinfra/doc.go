// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

// Package testinfra provides test infrastructure for integration testing with containers.
//
// This package uses testcontainers-go to run the real backing services the
// server talks to: Redis for the result cache and MongoDB as a catalog source.
// All files carry the integration build tag:
//
//	go test -tags integration ./internal/testinfra/...
//
// # Redis
//
//	redisC := testinfra.Start(t, ctx, testinfra.NewRedisContainer)
//	c := cache.NewRedisCache(config.RedisConfig{Addr: redisC.Addr}, time.Minute)
//
// # MongoDB
//
//	mongoC := testinfra.Start(t, ctx, testinfra.NewMongoContainer)
//	// seed mongoC.URI, then point loader.NewMongoLoader at it
//
// # CI Considerations
//
// Start skips the test in -short mode and when testcontainers finds no
// healthy container provider.
package testinfra
