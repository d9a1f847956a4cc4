// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

/*
Package config loads and validates Vinoscope configuration.

Settings are layered with Koanf v2: built-in defaults, then an optional YAML
file (CONFIG_PATH, ./config.yaml or /etc/vinoscope/config.yaml), then
environment variables. Only mapped environment variables are read.

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:8080)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
  - ENVIRONMENT: development, staging or production

Security:
  - CORS_ORIGINS: comma-separated list (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - MAX_BODY_BYTES: request body cap for writes (default: 1 MiB)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Store (BadgerDB):
  - BADGER_PATH (default: /data/vinoscope), BADGER_IN_MEMORY
  - BADGER_SYNC_WRITES, BADGER_COMPRESSION
  - BADGER_GC_RATIO, BADGER_GC_INTERVAL, BADGER_CLOSE_TIMEOUT

Reference data:
  - REFERENCE_PATH: .json or .yaml dataset
  - REFERENCE_SEED_STORE: write the dataset into an empty store
  - REFERENCE_WATCH: reload the dataset when the file changes

Engine:
  - DEFAULT_LOCATION (default: US), DEFAULT_LANGUAGE (default: en)

Record cache:
  - CACHE_ENABLED, CACHE_CAPACITY, CACHE_TTL, CACHE_JANITOR_INTERVAL

# Example config.yaml

	server:
	  port: 8080
	  environment: production
	security:
	  cors_origins: ["https://vinoscope.example.com"]
	store:
	  path: /var/lib/vinoscope
	reference:
	  path: /etc/vinoscope/reference.yaml
	  watch: true
	engine:
	  default_location: KR
	  default_language: ko
*/
package config
