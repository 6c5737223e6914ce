// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

//go:build integration

package testinfra

import (
	"context"
	"testing"
	"time"

	"github.com/tomtom215/shopwise/internal/cache"
	"github.com/tomtom215/shopwise/internal/config"
)

// TestRedisCache_Integration runs the result cache against a real Redis.
func TestRedisCache_Integration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	redisC := Start(t, ctx, NewRedisContainer)

	c := cache.NewRedisCache(config.RedisConfig{Addr: redisC.Addr}, time.Minute)
	defer c.Close()

	if err := c.Ping(ctx); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}

	key := cache.GenerateKey("top_rated", "v1", 10)
	if _, ok := c.Get(ctx, key); ok {
		t.Fatal("Get() hit on an empty server")
	}

	c.Set(ctx, key, []byte(`{"items":[]}`))
	got, ok := c.Get(ctx, key)
	if !ok || string(got) != `{"items":[]}` {
		t.Fatalf("Get() = %q, %v; want stored value", got, ok)
	}

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, ok := c.Get(ctx, key); ok {
		t.Error("Get() hit after Clear()")
	}
	if state := c.BreakerState(); state != "closed" {
		t.Errorf("BreakerState() = %q, want closed", state)
	}
}
