// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// WatchFunc starts watching path and invokes onChange for each write.
// config.WatchConfigFile has this shape.
type WatchFunc func(path string, onChange func()) (stop func() error, err error)

// ReloadFunc rebuilds reference data from disk and installs it.
type ReloadFunc func(ctx context.Context) error

// ReferenceReloadService watches the reference dataset file and calls
// reload after each change. Bursts of change events collapse into a single
// reload. A failed reload keeps the previous dataset in service.
type ReferenceReloadService struct {
	path     string
	watch    WatchFunc
	reload   ReloadFunc
	debounce time.Duration
	logger   zerolog.Logger
	name     string
}

// NewReferenceReloadService creates the watcher service for path.
//
//nolint:gocritic // zerolog.Logger is passed by value
func NewReferenceReloadService(path string, watch WatchFunc, reload ReloadFunc, logger zerolog.Logger) *ReferenceReloadService {
	return &ReferenceReloadService{
		path:     path,
		watch:    watch,
		reload:   reload,
		debounce: 250 * time.Millisecond,
		logger:   logger.With().Str("service", "reference-reload").Str("path", path).Logger(),
		name:     "reference-reload",
	}
}

// Serve implements suture.Service. A watch setup error is returned so the
// supervisor retries with backoff.
func (s *ReferenceReloadService) Serve(ctx context.Context) error {
	changed := make(chan struct{}, 1)
	stop, err := s.watch(s.path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return fmt.Errorf("watch reference file: %w", err)
	}
	defer func() {
		if err := stop(); err != nil {
			s.logger.Debug().Err(err).Msg("stopping reference watch")
		}
	}()

	s.logger.Info().Msg("watching reference dataset")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-changed:
			// Editors often write a file in several steps.
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.debounce):
			}
			select {
			case <-changed:
			default:
			}

			if err := s.reload(ctx); err != nil {
				s.logger.Error().Err(err).Msg("reference reload failed, keeping current dataset")
				continue
			}
			s.logger.Info().Msg("reference dataset reloaded")
		}
	}
}

func (s *ReferenceReloadService) String() string {
	return s.name
}
