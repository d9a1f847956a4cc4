// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

/*
Package supervisor provides process supervision for the Vinoscope server
using suture v4.

The tree has three layers so that a failing maintenance task never takes
the HTTP listener down with it:

	RootSupervisor ("vinoscope")
	├── DataSupervisor ("data-layer")
	│   └── StoreGCService
	├── BackgroundSupervisor ("background-layer")
	│   ├── CacheJanitorService (if the record cache is enabled)
	│   └── ReferenceReloadService (if REFERENCE_WATCH is set)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Supervisor events (service panics, restarts, backoff) are written through
sutureslog to the process slog logger, which logging.NewSlogLogger bridges
to zerolog.

# Usage

	tree, err := supervisor.NewSupervisorTree(slogger, supervisor.TreeConfig{})
	if err != nil {
		return err
	}
	tree.AddDataService(services.NewStoreGCService(db, interval, log.Logger))
	tree.AddAPIService(services.NewHTTPServerService(srv, 10*time.Second))

	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	<-errCh
*/
package supervisor
