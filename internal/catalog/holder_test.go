// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package catalog

import (
	"errors"
	"sync"
	"testing"
)

func TestHolder(t *testing.T) {
	h := NewHolder()
	if h.Current() != nil {
		t.Fatal("Current() before first load should be nil")
	}

	t1 := NewTable([]Record{{UserID: 1, ProductName: "Soap"}}, CanonicalColumns)
	s1 := h.Swap(t1, "csv")
	if s1.Version != 1 || h.Current().Table != t1 {
		t.Errorf("first Swap = version %d, want 1 and the same table", s1.Version)
	}

	h.Fail(errors.New("source down"))
	if got := h.LastError(); got != "source down" {
		t.Errorf("LastError() = %q, want %q", got, "source down")
	}
	if h.Current() != s1 {
		t.Error("Fail must keep the active snapshot")
	}

	t2 := NewTable(nil, CanonicalColumns)
	s2 := h.Swap(t2, "csv")
	if s2.Version != 2 {
		t.Errorf("second Swap version = %d, want 2", s2.Version)
	}
	if h.LastError() != "" {
		t.Error("Swap should clear the last error")
	}
	if h.LastAttempt().IsZero() {
		t.Error("LastAttempt() should be set")
	}
}

func TestHolder_ConcurrentReaders(t *testing.T) {
	h := NewHolder()
	h.Swap(NewTable(nil, CanonicalColumns), "csv")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if s := h.Current(); s == nil || s.Table == nil {
					t.Error("reader saw an incomplete snapshot")
					return
				}
			}
		}()
	}
	for i := 0; i < 50; i++ {
		h.Swap(NewTable(nil, CanonicalColumns), "csv")
	}
	wg.Wait()

	if got := h.Current().Version; got != 51 {
		t.Errorf("Version = %d, want 51", got)
	}
}
