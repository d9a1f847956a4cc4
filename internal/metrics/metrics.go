// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Skip kinds used with EngineItemsSkipped.
const (
	SkipOffer        = "offer"
	SkipHistoryPoint = "history_point"
	SkipReview       = "review"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vinoscope_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vinoscope_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vinoscope_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vinoscope_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Valuation Engine Metrics
	ValuationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vinoscope_valuation_duration_seconds",
			Help:    "Time spent building one valuation view model",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
		},
	)

	ValuationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vinoscope_valuations_total",
			Help: "Valuations produced, by language",
		},
		[]string{"language"},
	)

	EngineItemsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vinoscope_engine_items_skipped_total",
			Help: "Input items dropped during a valuation instead of failing it",
		},
		[]string{"kind", "reason"}, // kind: offer, history_point, review
	)

	// Store Metrics
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vinoscope_store_operation_duration_seconds",
			Help:    "Duration of badger store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	StoreOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vinoscope_store_operation_errors_total",
			Help: "Store operations that returned an error other than not-found",
		},
		[]string{"operation"},
	)

	// Record Cache Metrics
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vinoscope_record_cache_hits_total",
			Help: "Wine record lookups served from the in-process cache",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vinoscope_record_cache_misses_total",
			Help: "Wine record lookups that fell through to the store",
		},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vinoscope_record_cache_evictions_total",
			Help: "Record cache evictions by cause",
		},
		[]string{"cause"}, // capacity, expired, invalidated
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vinoscope_record_cache_entries",
			Help: "Current number of cached wine records",
		},
	)

	// Reference Data Metrics
	ReferenceRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "vinoscope_reference_rows",
			Help: "Rows loaded into the reference registry",
		},
		[]string{"table"}, // currencies, countries
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest moves the in-flight gauge up or down.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordValuation records a completed valuation.
func RecordValuation(language string, duration time.Duration) {
	ValuationsTotal.WithLabelValues(language).Inc()
	ValuationDuration.Observe(duration.Seconds())
}

// RecordSkipped counts one dropped input item.
func RecordSkipped(kind, reason string) {
	EngineItemsSkipped.WithLabelValues(kind, reason).Inc()
}

// RecordStoreOperation records a store call. Pass notFound=true when err is
// the store's not-found sentinel so it is not counted as an error.
func RecordStoreOperation(operation string, duration time.Duration, err error, notFound bool) {
	StoreOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil && !notFound {
		StoreOperationErrors.WithLabelValues(operation).Inc()
	}
}

// SetReferenceRows publishes the registry size.
func SetReferenceRows(currencies, countries int) {
	ReferenceRows.WithLabelValues("currencies").Set(float64(currencies))
	ReferenceRows.WithLabelValues("countries").Set(float64(countries))
}
