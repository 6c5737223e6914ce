// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/shopwise/internal/config"
	"github.com/tomtom215/shopwise/internal/logging"
	"github.com/tomtom215/shopwise/internal/metrics"
)

// redisBreakerName labels the Redis circuit breaker in metrics.
const redisBreakerName = "redis-cache"

// RedisCache stores results in Redis behind a circuit breaker. While the
// breaker is open every Get misses and every Set is dropped, so a Redis
// outage costs latency only until the breaker trips.
type RedisCache struct {
	client *redis.Client
	cb     *gobreaker.CircuitBreaker[[]byte]
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisCache creates a client for cfg. The client connects lazily.
func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
	return newRedisCache(client, ttl, redisBreakerSettings())
}

func newRedisCache(client *redis.Client, ttl time.Duration, st gobreaker.Settings) *RedisCache {
	logger := logging.WithComponent("cache")
	metrics.CircuitBreakerState.WithLabelValues(st.Name).Set(0) // 0 = closed

	userHook := st.OnStateChange
	st.OnStateChange = func(name string, from, to gobreaker.State) {
		logger.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
			Msg("[CIRCUIT BREAKER] State transition")
		metrics.RecordCircuitBreakerTransition(name, from.String(), to.String())
		if userHook != nil {
			userHook(name, from, to)
		}
	}

	return &RedisCache{
		client: client,
		cb:     gobreaker.NewCircuitBreaker[[]byte](st),
		ttl:    ttl,
		logger: logger,
	}
}

// redisBreakerSettings opens after 5 consecutive failures and probes again
// after 30 seconds with a single request.
func redisBreakerSettings() gobreaker.Settings {
	return gobreaker.Settings{
		Name:        redisBreakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
}

// Backend implements Cache.
func (c *RedisCache) Backend() string { return config.CacheRedis }

// Get implements Cache.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.cb.Execute(func() ([]byte, error) {
		b, err := c.client.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			// A miss is a healthy answer.
			return nil, nil
		}
		return b, err
	})
	if err != nil {
		c.recordError("get", err)
		return nil, false
	}
	if val == nil {
		metrics.RecordCacheOperation(config.CacheRedis, metrics.CacheMiss)
		return nil, false
	}
	metrics.RecordCacheOperation(config.CacheRedis, metrics.CacheHit)
	return val, true
}

// Set implements Cache.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte) {
	_, err := c.cb.Execute(func() ([]byte, error) {
		return nil, c.client.Set(ctx, key, value, c.ttl).Err()
	})
	if err != nil {
		c.recordError("set", err)
		return
	}
	metrics.RecordCacheOperation(config.CacheRedis, metrics.CacheSet)
}

// Clear implements Cache. Only keys under KeyPrefix are removed.
func (c *RedisCache) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, KeyPrefix+"*", 500).Result()
		if err != nil {
			return fmt.Errorf("scan cache keys: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("delete cache keys: %w", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// Ping checks connectivity, bypassing the breaker.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// BreakerState reports the circuit breaker state: closed, half-open, or open.
func (c *RedisCache) BreakerState() string {
	return c.cb.State().String()
}

// Close closes the client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) recordError(op string, err error) {
	metrics.RecordCacheOperation(config.CacheRedis, metrics.CacheError)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		// Rejections are expected while open; the transition was logged.
		return
	}
	c.logger.Warn().Err(err).Str("op", op).Msg("Redis cache operation failed")
}
