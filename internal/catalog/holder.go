// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package catalog

import (
	"sync"
	"sync/atomic"
	"time"
)

// Snapshot is one loaded generation of the catalog.
type Snapshot struct {
	Table    *Table
	Version  uint64
	Source   string
	LoadedAt time.Time
}

// Holder publishes the active catalog to concurrent readers. Readers always
// see a complete Snapshot; a reload replaces it in one step.
type Holder struct {
	current atomic.Pointer[Snapshot]
	version atomic.Uint64

	mu        sync.RWMutex
	lastError string
	lastTry   time.Time
}

// NewHolder returns an empty holder.
func NewHolder() *Holder {
	return &Holder{}
}

// Current returns the active snapshot, or nil before the first load.
func (h *Holder) Current() *Snapshot {
	return h.current.Load()
}

// Swap publishes t as the next version and clears the last error.
func (h *Holder) Swap(t *Table, source string) *Snapshot {
	now := time.Now()
	snap := &Snapshot{
		Table:    t,
		Version:  h.version.Add(1),
		Source:   source,
		LoadedAt: now,
	}
	h.current.Store(snap)

	h.mu.Lock()
	h.lastError = ""
	h.lastTry = now
	h.mu.Unlock()
	return snap
}

// Fail records a failed load. The active snapshot is kept.
func (h *Holder) Fail(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastTry = time.Now()
	if err != nil {
		h.lastError = err.Error()
	}
}

// LastError returns the message of the most recent failed load, or "" if
// the most recent attempt succeeded.
func (h *Holder) LastError() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.lastError
}

// LastAttempt returns when a load last finished, successfully or not.
func (h *Holder) LastAttempt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.lastTry
}
