// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

// Package cache keeps recently read wine records in memory in front of the
// store. Only raw records are cached; valuations depend on the viewer and are
// always recomputed.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/tomtom215/vinoscope/internal/metrics"
	"github.com/tomtom215/vinoscope/internal/models"
)

// Config sizes the record cache.
type Config struct {
	Enabled  bool          `koanf:"enabled"`
	Capacity int           `koanf:"capacity" validate:"gte=0"`
	TTL      time.Duration `koanf:"ttl"`

	// JanitorInterval is how often expired entries are swept.
	JanitorInterval time.Duration `koanf:"janitor_interval"`
}

// LoadFunc fetches a record on a cache miss.
type LoadFunc func(ctx context.Context, id string) (*models.WineRecord, error)

// RecordCache caches decoded wine records by id. Returned records are
// shared and must not be modified by callers.
//
// Every Invalidate advances a write epoch. GetOrLoad only caches a loaded
// record when no invalidation happened while it was loading, so a read that
// raced a store write cannot park the old record for the whole TTL.
type RecordCache struct {
	lru *LRU[*models.WineRecord]

	mu    sync.Mutex
	epoch uint64
}

// NewRecordCache creates a record cache and publishes its metrics.
func NewRecordCache(cfg Config) *RecordCache {
	lru := NewLRU[*models.WineRecord](cfg.Capacity, cfg.TTL)
	lru.OnEvict(func(cause string) {
		metrics.CacheEvictions.WithLabelValues(cause).Inc()
	})
	metrics.CacheEntries.Set(0)
	return &RecordCache{lru: lru}
}

// Get returns the cached record for id.
func (c *RecordCache) Get(id string) (*models.WineRecord, bool) {
	record, ok := c.lru.Get(id)
	if ok {
		metrics.CacheHits.Inc()
	} else {
		metrics.CacheMisses.Inc()
	}
	c.publishSize()
	return record, ok
}

// GetOrLoad returns the cached record for id, calling load on a miss and
// caching its result. Load errors are returned as-is and nothing is cached.
func (c *RecordCache) GetOrLoad(ctx context.Context, id string, load LoadFunc) (*models.WineRecord, error) {
	if record, ok := c.Get(id); ok {
		return record, nil
	}

	c.mu.Lock()
	started := c.epoch
	c.mu.Unlock()

	record, err := load(ctx, id)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.epoch == started {
		c.Put(record)
	}
	c.mu.Unlock()
	return record, nil
}

// Put caches record under its id.
func (c *RecordCache) Put(record *models.WineRecord) {
	if record == nil || record.ID == "" {
		return
	}
	c.lru.Add(record.ID, record)
	c.publishSize()
}

// Invalidate drops id after a write or delete.
func (c *RecordCache) Invalidate(id string) {
	c.mu.Lock()
	c.epoch++
	c.lru.Remove(id)
	c.mu.Unlock()
	c.publishSize()
}

// Clear drops every record.
func (c *RecordCache) Clear() {
	c.mu.Lock()
	c.epoch++
	c.lru.Clear()
	c.mu.Unlock()
	c.publishSize()
}

// Sweep removes expired records and returns how many were removed.
func (c *RecordCache) Sweep() int {
	n := c.lru.CleanupExpired()
	c.publishSize()
	return n
}

// Len returns the number of cached records.
func (c *RecordCache) Len() int { return c.lru.Len() }

// HitRate returns the hit percentage since creation.
func (c *RecordCache) HitRate() float64 {
	hits, misses, _ := c.lru.Stats()
	total := hits + misses
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total) * 100
}

func (c *RecordCache) publishSize() {
	metrics.CacheEntries.Set(float64(c.lru.Len()))
}
