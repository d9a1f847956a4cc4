// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

/*
Package middleware provides HTTP middleware shared by the API router.

  - RequestID: accepts or generates X-Request-ID and seeds the logging
    context with request_id and correlation_id
  - PrometheusMetrics: request count, duration and in-flight gauge, labelled
    by chi route pattern

Both are http.HandlerFunc decorators; the router adapts them to chi with a
small wrapper:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
*/
package middleware
