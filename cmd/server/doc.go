// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

/*
Command server runs the Vinoscope HTTP API.

Vinoscope stores wine records (critic scores, market offers, a price
estimate) in BadgerDB and answers valuation requests for a location and
language: local actual price, predicted price, price-for-value ratio,
cost-effectiveness tier, critic consensus and localized highlights.

# Startup

 1. Configuration: Koanf v2 (defaults, then YAML file, then environment)
 2. Logging: zerolog, JSON or console
 3. Store: BadgerDB at BADGER_PATH (or in memory)
 4. Reference data: REFERENCE_PATH file, else stored rows, else the
    embedded dataset
 5. Valuation engine and record cache
 6. Supervisor tree (suture v4) with the HTTP server, store GC, cache
    janitor and the optional reference file watcher

SIGINT or SIGTERM cancels the tree; the HTTP server drains for
HTTP_SHUTDOWN_TIMEOUT before the store is closed.

# Environment

	HTTP_PORT=8080
	LOG_LEVEL=info              # trace, debug, info, warn, error
	LOG_FORMAT=json             # json or console
	BADGER_PATH=/data/vinoscope
	BADGER_GC_INTERVAL=1h       # 0 disables value log GC
	REFERENCE_PATH=             # .json or .yaml currency/country dataset
	REFERENCE_WATCH=false       # reload REFERENCE_PATH on change
	DEFAULT_LOCATION=US
	DEFAULT_LANGUAGE=en         # en, ko, ja
	CACHE_ENABLED=true
	CACHE_TTL=5m
	RATE_LIMIT_REQUESTS=100
	CORS_ORIGINS=*

CONFIG_PATH points at a YAML file using the koanf keys of config.Config.
*/
package main
