// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package api

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/tomtom215/vinoscope/internal/cache"
	"github.com/tomtom215/vinoscope/internal/config"
	"github.com/tomtom215/vinoscope/internal/models"
	"github.com/tomtom215/vinoscope/internal/valuation"
)

// WineStore is the persistence the handlers need. *store.Store satisfies it.
type WineStore interface {
	GetWine(ctx context.Context, id string) (*models.WineRecord, error)
	PutWine(ctx context.Context, record *models.WineRecord) error
	DeleteWine(ctx context.Context, id string) error
	ListWineIDs(ctx context.Context, after string, limit int) ([]string, string, error)
	Ping() error
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response, decoding and parameter helpers
//   - handlers_health.go: liveness and readiness probes
//   - handlers_wines.go: wine record CRUD
//   - handlers_valuation.go: valuation endpoints
//   - handlers_reference.go: currency and country tables
type Handler struct {
	store     WineStore
	cache     *cache.RecordCache // nil when the record cache is disabled
	config    *config.Config
	engine    atomic.Pointer[valuation.Engine]
	startTime time.Time
	version   string
}

// NewHandler creates a new API handler.
//
// recordCache may be nil. The engine can be replaced later with SetEngine,
// which the reference reload service does after a dataset change.
//
// Example:
//
//	handler := api.NewHandler(db, engine, recordCache, cfg, version)
//	router := api.NewRouter(handler, cfg)
//	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())
func NewHandler(db WineStore, engine *valuation.Engine, recordCache *cache.RecordCache, cfg *config.Config, version string) *Handler {
	h := &Handler{
		store:     db,
		cache:     recordCache,
		config:    cfg,
		startTime: time.Now(),
		version:   version,
	}
	h.engine.Store(engine)
	return h
}

// SetEngine swaps the engine used by subsequent requests. In-flight
// requests finish with the engine they started with.
func (h *Handler) SetEngine(engine *valuation.Engine) {
	if engine != nil {
		h.engine.Store(engine)
	}
}

// Engine returns the current engine.
func (h *Handler) Engine() *valuation.Engine {
	return h.engine.Load()
}

// loadWine reads a record through the cache. cached reports whether the
// store was skipped.
func (h *Handler) loadWine(ctx context.Context, id string) (record *models.WineRecord, cached bool, err error) {
	if h.cache == nil {
		record, err = h.store.GetWine(ctx, id)
		return record, false, err
	}
	cached = true
	record, err = h.cache.GetOrLoad(ctx, id, func(ctx context.Context, id string) (*models.WineRecord, error) {
		cached = false
		return h.store.GetWine(ctx, id)
	})
	if err != nil {
		return nil, false, err
	}
	return record, cached, nil
}

func (h *Handler) invalidate(id string) {
	if h.cache != nil {
		h.cache.Invalidate(id)
	}
}
