// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/vinoscope/internal/metrics"
)

func wrap(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

func TestPrometheusMetricsUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(wrap(PrometheusMetrics))
	r.Get("/api/v1/wines/{id}/valuation", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	counter := metrics.APIRequestsTotal.WithLabelValues("GET", "/api/v1/wines/{id}/valuation", "200")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"a", "b", "c"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/wines/"+id+"/valuation", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
	}

	if d := testutil.ToFloat64(counter) - before; d != 3 {
		t.Errorf("counter delta = %v, want 3", d)
	}
}

func TestPrometheusMetricsStatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		write  func(w http.ResponseWriter)
	}{
		{"explicit 201", http.StatusCreated, func(w http.ResponseWriter) { w.WriteHeader(http.StatusCreated) }},
		{"explicit 500", http.StatusInternalServerError, func(w http.ResponseWriter) { w.WriteHeader(http.StatusInternalServerError) }},
		{"implicit 200", http.StatusOK, func(w http.ResponseWriter) { _, _ = w.Write([]byte("ok")) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured int
			handler := PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {
				tt.write(w)
				if mw, ok := w.(*metricsResponseWriter); ok {
					captured = mw.statusCode
				}
			})

			rec := httptest.NewRecorder()
			handler(rec, httptest.NewRequest(http.MethodPost, "/x", nil))

			if rec.Code != tt.status {
				t.Errorf("recorder status = %d, want %d", rec.Code, tt.status)
			}
			if captured != tt.status {
				t.Errorf("captured status = %d, want %d", captured, tt.status)
			}
		})
	}
}

func TestPrometheusMetricsUnmatched(t *testing.T) {
	counter := metrics.APIRequestsTotal.WithLabelValues("GET", unmatchedEndpoint, "200")
	before := testutil.ToFloat64(counter)

	handler := PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {})
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/no-router", nil))

	if d := testutil.ToFloat64(counter) - before; d != 1 {
		t.Errorf("unmatched delta = %v, want 1", d)
	}
}

func TestPrometheusMetricsActiveGauge(t *testing.T) {
	before := testutil.ToFloat64(metrics.APIActiveRequests)
	var during float64

	handler := PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {
		during = testutil.ToFloat64(metrics.APIActiveRequests)
	})
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if during != before+1 {
		t.Errorf("in-flight during request = %v, want %v", during, before+1)
	}
	if after := testutil.ToFloat64(metrics.APIActiveRequests); after != before {
		t.Errorf("in-flight after request = %v, want %v", after, before)
	}
}
