// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("GET", "/api/v1/test-endpoint", "200")
	before := testutil.ToFloat64(counter)

	RecordAPIRequest("GET", "/api/v1/test-endpoint", "200", 3*time.Millisecond)
	RecordAPIRequest("GET", "/api/v1/test-endpoint", "200", 5*time.Millisecond)

	if got := testutil.ToFloat64(counter) - before; got != 2 {
		t.Errorf("expected 2 requests recorded, got %v", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 2 {
		t.Errorf("expected gauge +2, got %v", got)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("expected gauge back at %v, got %v", before, got)
	}
}

func TestRecordValuation(t *testing.T) {
	before := testutil.ToFloat64(ValuationsTotal.WithLabelValues("ja"))
	RecordValuation("ja", 200*time.Microsecond)
	if got := testutil.ToFloat64(ValuationsTotal.WithLabelValues("ja")) - before; got != 1 {
		t.Errorf("expected 1 valuation, got %v", got)
	}
}

func TestRecordSkipped(t *testing.T) {
	tests := []struct {
		kind   string
		reason string
	}{
		{SkipOffer, "unknown_currency"},
		{SkipHistoryPoint, "unknown_currency"},
		{SkipReview, "missing_critic"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			c := EngineItemsSkipped.WithLabelValues(tt.kind, tt.reason)
			before := testutil.ToFloat64(c)
			RecordSkipped(tt.kind, tt.reason)
			if got := testutil.ToFloat64(c) - before; got != 1 {
				t.Errorf("expected +1, got %v", got)
			}
		})
	}
}

func TestRecordStoreOperation(t *testing.T) {
	errCounter := StoreOperationErrors.WithLabelValues("get_wine")
	before := testutil.ToFloat64(errCounter)

	RecordStoreOperation("get_wine", time.Millisecond, nil, false)
	RecordStoreOperation("get_wine", time.Millisecond, errors.New("not found"), true)
	RecordStoreOperation("get_wine", time.Millisecond, errors.New("disk full"), false)

	if got := testutil.ToFloat64(errCounter) - before; got != 1 {
		t.Errorf("expected exactly 1 error counted, got %v", got)
	}
}

func TestSetReferenceRows(t *testing.T) {
	SetReferenceRows(7, 8)
	if got := testutil.ToFloat64(ReferenceRows.WithLabelValues("currencies")); got != 7 {
		t.Errorf("currencies = %v, want 7", got)
	}
	if got := testutil.ToFloat64(ReferenceRows.WithLabelValues("countries")); got != 8 {
		t.Errorf("countries = %v, want 8", got)
	}
}
