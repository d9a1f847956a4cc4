// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

/*
Package services provides suture.Service wrappers for Vinoscope components.

Each wrapper turns a component lifecycle into suture's Serve(ctx) pattern
and implements fmt.Stringer so supervisor events name the service.

  - HTTPServerService: ListenAndServe with graceful Shutdown on cancel
  - CacheJanitorService: periodic sweep of expired record cache entries
  - StoreGCService: periodic Badger value-log garbage collection
  - ReferenceReloadService: rebuilds the reference registry when the
    dataset file changes on disk

Services return ctx.Err() on cancellation. Any other returned error is a
failure and suture restarts the service with backoff.
*/
package services
