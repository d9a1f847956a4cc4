// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package models

import (
	"time"
)

// APIResponse is the envelope returned by every HTTP endpoint.
//
// Status is "success" (see Data) or "error" (see Error):
//
//	{
//	  "status": "success",
//	  "data": {"id": "opus-one-2019", "actualPrice": {...}},
//	  "metadata": {"timestamp": "2026-05-01T12:00:00Z", "query_time_ms": 3}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata describes how the response was produced. Cached is set when the
// wine record came from the in-process record cache instead of the store.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError is a machine-readable error.
//
// Codes in use: VALIDATION_ERROR, BAD_REQUEST, NOT_FOUND, STORE_ERROR,
// INTERNAL_ERROR, RATE_LIMIT_EXCEEDED, METHOD_NOT_ALLOWED, PAYLOAD_TOO_LARGE,
// SERVICE_UNAVAILABLE.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is returned by the readiness probe.
type HealthStatus struct {
	Status         string  `json:"status"` // healthy or degraded
	Version        string  `json:"version"`
	StoreConnected bool    `json:"store_connected"`
	Currencies     int     `json:"currencies"`
	Countries      int     `json:"countries"`
	CachedRecords  int     `json:"cached_records"`
	UptimeSeconds  float64 `json:"uptime_seconds"`
}

// ValuationRequest is the body of POST /api/v1/valuations.
type ValuationRequest struct {
	Record   WineRecord `json:"record" validate:"required"`
	Location string     `json:"location,omitempty" validate:"omitempty,country"`
	Language string     `json:"language,omitempty" validate:"omitempty,wine_language"`
}

// ValuationQuery holds the query parameters of GET /api/v1/wines/{id}/valuation.
type ValuationQuery struct {
	WineID   string `validate:"required,max=128"`
	Location string `validate:"omitempty,country"`
	Language string `validate:"omitempty,wine_language"`
}

// WineList is returned by GET /api/v1/wines.
type WineList struct {
	IDs        []string `json:"ids"`
	NextCursor string   `json:"next_cursor,omitempty"`
}

// WineListQuery holds the query parameters of GET /api/v1/wines.
type WineListQuery struct {
	After string `validate:"max=128"`
	Limit int    `validate:"gte=1,lte=1000"`
}
