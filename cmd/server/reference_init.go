// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package main

import (
	"context"
	"fmt"

	"github.com/tomtom215/vinoscope/internal/api"
	"github.com/tomtom215/vinoscope/internal/config"
	"github.com/tomtom215/vinoscope/internal/logging"
	"github.com/tomtom215/vinoscope/internal/metrics"
	"github.com/tomtom215/vinoscope/internal/reference"
	"github.com/tomtom215/vinoscope/internal/store"
)

// referenceSource names where the active registry came from, for logs.
type referenceSource string

const (
	sourceFile     referenceSource = "file"
	sourceStore    referenceSource = "store"
	sourceEmbedded referenceSource = "embedded"
)

// loadReference picks the reference registry at startup. A configured file
// wins, then rows already in the store, then the embedded dataset.
func loadReference(ctx context.Context, cfg config.ReferenceConfig, st *store.Store) (*reference.Registry, referenceSource, error) {
	if cfg.Path != "" {
		reg, err := reference.LoadFile(cfg.Path)
		if err != nil {
			return nil, "", fmt.Errorf("load reference file %s: %w", cfg.Path, err)
		}
		if cfg.SeedStore {
			if err := persistReference(ctx, st, reg); err != nil {
				return nil, "", err
			}
		}
		return reg, sourceFile, nil
	}

	currencies, countries, err := st.LoadReference(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("load stored reference rows: %w", err)
	}
	if len(currencies) > 0 && len(countries) > 0 {
		reg, err := reference.New(currencies, countries)
		if err != nil {
			return nil, "", fmt.Errorf("stored reference rows: %w", err)
		}
		return reg, sourceStore, nil
	}

	reg, err := reference.Default()
	if err != nil {
		return nil, "", err
	}
	if cfg.SeedStore {
		if err := persistReference(ctx, st, reg); err != nil {
			return nil, "", err
		}
	}
	return reg, sourceEmbedded, nil
}

func persistReference(ctx context.Context, st *store.Store, reg *reference.Registry) error {
	if err := st.PutReference(ctx, reg.Currencies(), reg.Countries()); err != nil {
		return fmt.Errorf("seed reference rows: %w", err)
	}
	return nil
}

// newReferenceReloader returns the reload callback for the file watcher.
// The new registry is validated in full before the handler swaps engines,
// so a bad edit leaves the running dataset untouched.
func newReferenceReloader(cfg config.ReferenceConfig, st *store.Store, handler *api.Handler) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		reg, err := reference.LoadFile(cfg.Path)
		if err != nil {
			return fmt.Errorf("reload %s: %w", cfg.Path, err)
		}
		if cfg.SeedStore {
			if err := persistReference(ctx, st, reg); err != nil {
				return err
			}
		}

		handler.SetEngine(handler.Engine().Rebind(reg))

		currencies, countries := reg.Size()
		metrics.SetReferenceRows(currencies, countries)
		logging.Info().
			Int("currencies", currencies).
			Int("countries", countries).
			Msg("Reference registry swapped")
		return nil
	}
}
