// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/vinoscope/internal/api"
	"github.com/tomtom215/vinoscope/internal/cache"
	"github.com/tomtom215/vinoscope/internal/config"
	"github.com/tomtom215/vinoscope/internal/logging"
	"github.com/tomtom215/vinoscope/internal/metrics"
	"github.com/tomtom215/vinoscope/internal/store"
	"github.com/tomtom215/vinoscope/internal/supervisor"
	"github.com/tomtom215/vinoscope/internal/supervisor/services"
	"github.com/tomtom215/vinoscope/internal/valuation"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

//nolint:gocyclo // sequential startup steps
func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.LoggingOptions())
	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Vinoscope")

	db, err := store.Open(cfg.Store)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open store")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store")
		}
	}()
	logging.Info().
		Str("path", cfg.Store.Path).
		Bool("in_memory", cfg.Store.InMemory).
		Msg("Store opened")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg, source, err := loadReference(ctx, cfg.Reference, db)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to load reference data")
		stop()
		_ = db.Close()
		os.Exit(1)
	}
	currencies, countries := reg.Size()
	metrics.SetReferenceRows(currencies, countries)
	logging.Info().
		Str("source", string(source)).
		Int("currencies", currencies).
		Int("countries", countries).
		Msg("Reference data loaded")

	engine := valuation.New(reg, valuation.WithDefaultLocation(cfg.Engine.DefaultLocation))

	var recordCache *cache.RecordCache
	if cfg.Cache.Enabled {
		recordCache = cache.NewRecordCache(cfg.Cache)
		logging.Info().
			Int("capacity", cfg.Cache.Capacity).
			Dur("ttl", cfg.Cache.TTL).
			Msg("Record cache enabled")
	}

	handler := api.NewHandler(db, engine, recordCache, cfg, version)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	log := logging.Logger()

	tree.AddDataService(services.NewStoreGCService(db, db.GCInterval(), log))

	if recordCache != nil {
		tree.AddBackgroundService(services.NewCacheJanitorService(recordCache, cfg.Cache.JanitorInterval, log))
	}
	if cfg.Reference.Watch && cfg.Reference.Path != "" {
		tree.AddBackgroundService(services.NewReferenceReloadService(
			cfg.Reference.Path,
			config.WatchConfigFile,
			newReferenceReloader(cfg.Reference, db, handler),
			log,
		))
		logging.Info().Str("path", cfg.Reference.Path).Msg("Reference hot reload enabled")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, log))

	errCh := tree.ServeBackground(ctx)

	// errCh yields exactly one value when the tree stops.
	var treeErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, stopping services")
		treeErr = <-errCh
	case treeErr = <-errCh:
	}
	stop()
	if treeErr != nil && !errors.Is(treeErr, context.Canceled) {
		logging.Error().Err(treeErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Vinoscope stopped")
}
