// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/shopwise/internal/config"
)

func TestGenerateKey(t *testing.T) {
	a := GenerateKey("top_rated", "v1", 10)
	b := GenerateKey("top_rated", "v1", 10)
	c := GenerateKey("top_rated", "v1", 11)
	d := GenerateKey("content", "v1", 10)

	assert.Equal(t, a, b, "equal inputs must give equal keys")
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
	assert.True(t, strings.HasPrefix(a, KeyPrefix+"top_rated:"), "key %q lacks prefix", a)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.CacheConfig
		backend string
		wantErr bool
	}{
		{"memory", config.CacheConfig{Backend: config.CacheMemory, TTL: time.Minute, MaxEntries: 10}, config.CacheMemory, false},
		{"redis", config.CacheConfig{Backend: config.CacheRedis, TTL: time.Minute, Redis: config.RedisConfig{Addr: "localhost:6379"}}, config.CacheRedis, false},
		{"none", config.CacheConfig{Backend: config.CacheNone}, config.CacheNone, false},
		{"unknown", config.CacheConfig{Backend: "memcached"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.backend, c.Backend())
			if closer, ok := c.(interface{ Close() error }); ok {
				assert.NoError(t, closer.Close())
			}
		})
	}
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var c Cache = Noop{}

	c.Set(ctx, "k", []byte("v"))
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	assert.NoError(t, c.Clear(ctx))
}
