// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

//go:build integration

package testinfra

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go"
)

// Start runs a container for the duration of t. The test is skipped in
// -short mode or when no container runtime is reachable, and the container
// is terminated by t.Cleanup.
//
//	redisC := testinfra.Start(t, ctx, testinfra.NewRedisContainer)
func Start[C testcontainers.Container](t *testing.T, ctx context.Context, start func(context.Context) (C, error)) C {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	c, err := start(ctx)
	if err != nil {
		t.Fatalf("start container: %v", err)
	}
	testcontainers.CleanupContainer(t, c)
	return c
}
