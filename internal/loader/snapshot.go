// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/shopwise/internal/catalog"
	"github.com/tomtom215/shopwise/internal/logging"
)

// SnapshotLoader saves every successful primary load to a BadgerStore and
// serves the stored snapshot when the primary fails.
type SnapshotLoader struct {
	primary Loader
	store   *BadgerStore
	logger  zerolog.Logger
}

// WithSnapshot wraps primary with store.
func WithSnapshot(primary Loader, store *BadgerStore) *SnapshotLoader {
	return &SnapshotLoader{
		primary: primary,
		store:   store,
		logger:  logging.WithComponent("loader"),
	}
}

// Name implements Loader.
func (l *SnapshotLoader) Name() string { return l.primary.Name() }

// Load implements Loader.
func (l *SnapshotLoader) Load(ctx context.Context) (catalog.RawTable, error) {
	raw, err := l.primary.Load(ctx)
	if err == nil {
		if saveErr := l.store.Save(ctx, l.primary.Name(), raw); saveErr != nil {
			l.logger.Warn().Err(saveErr).Msg("Failed to save catalog snapshot")
		}
		return raw, nil
	}

	snap, snapErr := l.store.Load(ctx)
	if snapErr != nil {
		if errors.Is(snapErr, ErrNoSnapshot) {
			return catalog.RawTable{}, err
		}
		return catalog.RawTable{}, fmt.Errorf("%w (snapshot fallback: %v)", err, snapErr)
	}

	l.logger.Warn().
		Err(err).
		Str("source", l.primary.Name()).
		Int("rows", len(snap.Rows)).
		Msg("Catalog source failed, serving snapshot")
	return snap, nil
}

// Close closes the primary loader, if it holds resources, and the store.
func (l *SnapshotLoader) Close() error {
	var errs []error
	if c, ok := l.primary.(interface{ Close() error }); ok {
		errs = append(errs, c.Close())
	}
	errs = append(errs, l.store.Close())
	return errors.Join(errs...)
}
