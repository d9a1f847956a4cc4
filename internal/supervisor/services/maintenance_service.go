// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Sweeper drops expired cache entries. Satisfied by *cache.RecordCache.
type Sweeper interface {
	Sweep() int
}

// GarbageCollector reclaims storage space. Satisfied by *store.Store.
type GarbageCollector interface {
	RunGC() error
}

// CacheJanitorService periodically sweeps expired records out of the
// record cache so idle entries do not hold memory until evicted by size.
type CacheJanitorService struct {
	sweeper  Sweeper
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheJanitorService sweeps every interval; a non-positive interval means one minute.
//
//nolint:gocritic // zerolog.Logger is passed by value
func NewCacheJanitorService(sweeper Sweeper, interval time.Duration, logger zerolog.Logger) *CacheJanitorService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheJanitorService{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger.With().Str("service", "cache-janitor").Logger(),
		name:     "cache-janitor",
	}
}

// Serve implements suture.Service.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Debug().Dur("interval", s.interval).Msg("cache janitor running")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if n := s.sweeper.Sweep(); n > 0 {
				s.logger.Debug().Int("removed", n).Msg("expired cache entries removed")
			}
		}
	}
}

func (s *CacheJanitorService) String() string {
	return s.name
}

// StoreGCService runs value-log garbage collection on a schedule.
// GC errors are logged and retried on the next tick; they do not fail the
// service.
type StoreGCService struct {
	gc       GarbageCollector
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewStoreGCService creates the GC service. A non-positive interval
// disables collection and the service idles until canceled.
//
//nolint:gocritic // zerolog.Logger is passed by value
func NewStoreGCService(gc GarbageCollector, interval time.Duration, logger zerolog.Logger) *StoreGCService {
	return &StoreGCService{
		gc:       gc,
		interval: interval,
		logger:   logger.With().Str("service", "store-gc").Logger(),
		name:     "store-gc",
	}
}

// Serve implements suture.Service.
func (s *StoreGCService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Debug().Msg("value log GC disabled")
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			if err := s.gc.RunGC(); err != nil {
				s.logger.Warn().Err(err).Msg("value log GC failed")
				continue
			}
			s.logger.Debug().Dur("duration", time.Since(start)).Msg("value log GC complete")
		}
	}
}

func (s *StoreGCService) String() string {
	return s.name
}
