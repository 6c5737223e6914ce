// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package cache

import (
	"context"
	"sync"
	"time"

	"github.com/tomtom215/shopwise/internal/config"
	"github.com/tomtom215/shopwise/internal/metrics"
)

// cleanupInterval is how often expired entries are swept.
const cleanupInterval = time.Minute

type memoryEntry struct {
	key       string
	value     []byte
	expiresAt time.Time
	prev      *memoryEntry
	next      *memoryEntry
}

// MemoryCache is a thread-safe LRU cache with a fixed TTL.
//
// Entries live in a doubly-linked list ordered by recency plus a map for
// O(1) lookup. Expired entries are dropped lazily on Get and by a background
// sweep; when the cache is full the least recently used entry is evicted.
type MemoryCache struct {
	mu       sync.Mutex
	ttl      time.Duration
	capacity int
	items    map[string]*memoryEntry

	// head.next is the most recently used, tail.prev the least.
	head *memoryEntry
	tail *memoryEntry

	stats Stats

	stop     chan struct{}
	stopOnce sync.Once
}

// Stats tracks cache performance.
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// NewMemoryCache creates a cache and starts its cleanup goroutine. Call
// Close to stop it.
func NewMemoryCache(ttl time.Duration, capacity int) *MemoryCache {
	if capacity <= 0 {
		capacity = 10000
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	c := &MemoryCache{
		ttl:      ttl,
		capacity: capacity,
		items:    make(map[string]*memoryEntry),
		head:     &memoryEntry{},
		tail:     &memoryEntry{},
		stats:    Stats{LastCleanup: time.Now()},
		stop:     make(chan struct{}),
	}
	c.head.next = c.tail
	c.tail.prev = c.head

	go c.cleanupLoop()

	return c
}

// Backend implements Cache.
func (c *MemoryCache) Backend() string { return config.CacheMemory }

// Get implements Cache. Hits move the entry to the front.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		metrics.RecordCacheOperation(config.CacheMemory, metrics.CacheMiss)
		return nil, false
	}

	if time.Now().After(entry.expiresAt) {
		c.removeEntry(entry)
		c.stats.Misses++
		c.stats.Evictions++
		c.updateSize()
		metrics.RecordCacheOperation(config.CacheMemory, metrics.CacheMiss)
		return nil, false
	}

	c.moveToFront(entry)
	c.stats.Hits++
	metrics.RecordCacheOperation(config.CacheMemory, metrics.CacheHit)
	return entry.value, true
}

// Set implements Cache. The value is stored as given and must not be
// modified afterwards.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := time.Now().Add(c.ttl)
	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = expiresAt
		c.moveToFront(entry)
	} else {
		entry := &memoryEntry{key: key, value: value, expiresAt: expiresAt}
		c.addToFront(entry)
		c.items[key] = entry

		for len(c.items) > c.capacity {
			c.evictOldest()
		}
	}

	c.updateSize()
	metrics.RecordCacheOperation(config.CacheMemory, metrics.CacheSet)
}

// Clear implements Cache.
func (c *MemoryCache) Clear(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.Evictions += int64(len(c.items))
	c.items = make(map[string]*memoryEntry)
	c.head.next = c.tail
	c.tail.prev = c.head
	c.updateSize()
	return nil
}

// Len returns the number of stored entries, expired ones included until
// they are swept.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// GetStats returns a copy of the current statistics.
func (c *MemoryCache) GetStats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// HitRate returns the cache hit rate as a percentage
func (c *MemoryCache) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// Close stops the cleanup goroutine. It is safe to call more than once.
func (c *MemoryCache) Close() error {
	c.stopOnce.Do(func() { close(c.stop) })
	return nil
}

func (c *MemoryCache) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanupExpired()
		case <-c.stop:
			return
		}
	}
}

// cleanupExpired removes expired entries and returns how many it removed.
func (c *MemoryCache) cleanupExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	removed := 0
	// Walk from tail (oldest) to head (newest)
	for entry := c.tail.prev; entry != c.head; {
		prev := entry.prev
		if now.After(entry.expiresAt) {
			c.removeEntry(entry)
			removed++
		}
		entry = prev
	}

	c.stats.Evictions += int64(removed)
	c.stats.LastCleanup = now
	c.updateSize()
	return removed
}

// Internal methods (must be called with lock held)

func (c *MemoryCache) updateSize() {
	c.stats.TotalKeys = int64(len(c.items))
	metrics.CacheSize.WithLabelValues(config.CacheMemory).Set(float64(len(c.items)))
}

func (c *MemoryCache) addToFront(entry *memoryEntry) {
	entry.prev = c.head
	entry.next = c.head.next
	c.head.next.prev = entry
	c.head.next = entry
}

func (c *MemoryCache) moveToFront(entry *memoryEntry) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	c.addToFront(entry)
}

func (c *MemoryCache) removeEntry(entry *memoryEntry) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	delete(c.items, entry.key)
}

func (c *MemoryCache) evictOldest() {
	oldest := c.tail.prev
	if oldest == c.head {
		return
	}
	c.removeEntry(oldest)
	c.stats.Evictions++
}
