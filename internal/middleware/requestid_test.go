// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/vinoscope/internal/logging"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{"generates when absent", "", false},
		{"preserves upstream id", "existing-request-id-12345", true},
		{"replaces oversized id", strings.Repeat("x", maxRequestIDLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ctxID, logID, correlationID string
			handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
				ctxID = GetRequestID(r.Context())
				logID = logging.RequestIDFromContext(r.Context())
				correlationID = logging.CorrelationIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			if tt.wantSame {
				if got != tt.incoming {
					t.Errorf("header = %q, want %q", got, tt.incoming)
				}
			} else if _, err := uuid.Parse(got); err != nil {
				t.Errorf("header %q is not a UUID: %v", got, err)
			}

			if ctxID != got || logID != got {
				t.Errorf("context ids %q/%q do not match header %q", ctxID, logID, got)
			}
			if correlationID == "" {
				t.Error("expected a correlation id in the logging context")
			}
		})
	}
}

func TestGetRequestIDMissing(t *testing.T) {
	if id := GetRequestID(context.Background()); id != "" {
		t.Errorf("GetRequestID() = %q, want empty", id)
	}
}
