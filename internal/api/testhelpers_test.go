// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/vinoscope/internal/cache"
	"github.com/tomtom215/vinoscope/internal/config"
	"github.com/tomtom215/vinoscope/internal/models"
	"github.com/tomtom215/vinoscope/internal/reference"
	"github.com/tomtom215/vinoscope/internal/store"
	"github.com/tomtom215/vinoscope/internal/valuation"
)

// envelope mirrors models.APIResponse with the payload left raw.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func testConfig() *config.Config {
	return &config.Config{
		Security: config.SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
			CORSOrigins:       []string{"*"},
			MaxBodyBytes:      1 << 20,
		},
		Engine: config.EngineConfig{
			DefaultLocation: "US",
			DefaultLanguage: "en",
		},
	}
}

type testEnv struct {
	handler *Handler
	store   *store.Store
	server  http.Handler
}

func newTestEnv(t *testing.T, cfg *config.Config) *testEnv {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}

	db, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	engine := valuation.New(reference.MustDefault(), valuation.WithDefaultLocation(cfg.Engine.DefaultLocation))
	records := cache.NewRecordCache(cache.Config{Enabled: true, Capacity: 100, TTL: time.Minute})

	h := NewHandler(db, engine, records, cfg, "test")
	return &testEnv{
		handler: h,
		store:   db,
		server:  NewRouter(h, cfg).SetupChi(),
	}
}

func offer(value float64, currency, market string) models.MarketOffer {
	return models.MarketOffer{
		Value:         value,
		Currency:      currency,
		OriginalPrice: models.OriginalPrice{Value: value, Currency: currency, BottleCount: 1},
		Market:        models.MarketSource{Name: market, URL: "https://" + market + ".example"},
	}
}

func sampleWine(id string) *models.WineRecord {
	return &models.WineRecord{
		ID:   id,
		Name: "Opus One",
		Localized: map[string]models.LocalizedFields{
			"ko": {Name: "오퍼스 원"},
		},
		GlobalMarketPrice: map[string][]models.MarketOffer{
			"US": {offer(100, "USD", "shop-us")},
			"KR": {offer(150000, "KRW", "shop-kr")},
		},
		EstimatedPrice: &models.EstimatedPrice{Value: 120},
	}
}

func (e *testEnv) seed(t *testing.T, records ...*models.WineRecord) {
	t.Helper()
	for _, r := range records {
		if err := e.store.PutWine(context.Background(), r); err != nil {
			t.Fatalf("PutWine(%s) error = %v", r.ID, err)
		}
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = "192.0.2.1:1234"
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	e.server.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") == "application/json" {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, env
}
