// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

/*
Package api provides the HTTP surface of Vinoscope on the Chi router.

# Endpoints

Health (not rate limited):
  - GET /api/v1/health: store, reference and cache status
  - GET /api/v1/health/live: liveness probe
  - GET /api/v1/health/ready: readiness probe, 503 until ready

Wines:
  - GET /api/v1/wines?after=&limit=: page through stored ids
  - GET /api/v1/wines/{id}: stored record
  - PUT /api/v1/wines/{id}: create or replace a record
  - DELETE /api/v1/wines/{id}: remove a record
  - GET /api/v1/wines/{id}/valuation?location=KR&language=ko: value a stored record

Valuations:
  - POST /api/v1/valuations: value a record sent in the body

Reference data:
  - GET /api/v1/reference/currencies
  - GET /api/v1/reference/countries

Metrics:
  - GET /metrics: Prometheus exposition

# Response Format

Every JSON endpoint answers with models.APIResponse:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "...", "query_time_ms": 2, "cached": true, "request_id": "..."}
	}

Errors set status to "error" and carry {"code", "message", "details"}.

# Language

Narrative text is produced in the language named by ?language= or ?lang= (or the
"language" field of a POST body), else the best Accept-Language match,
else the configured default.

# Middleware

Global: request id, RealIP, Recoverer, debug request log, CORS and
gzip compression. The /api/v1 group adds per-IP rate limiting via
httprate, security headers and Prometheus request metrics.
*/
package api
