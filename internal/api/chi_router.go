// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/vinoscope/internal/config"
	"github.com/tomtom215/vinoscope/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router for handler using the security settings in cfg.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFromConfig(cfg.Security)),
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(chiMiddleware(middleware.RequestID)) // X-Request-ID plus logging context
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(RequestLogging())
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(chimiddleware.Compress(5, "application/json"))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	// ========================
	// Health Endpoints
	// ========================
	// Not rate limited so orchestrator probes never see 429.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Core API Endpoints
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Route("/wines", func(r chi.Router) {
			r.Get("/", router.handler.ListWines)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", router.handler.GetWine)
				r.Put("/", router.handler.PutWine)
				r.Delete("/", router.handler.DeleteWine)
				r.Get("/valuation", router.handler.WineValuation)
			})
		})

		r.Post("/valuations", router.handler.Valuate)

		r.Route("/reference", func(r chi.Router) {
			r.Get("/currencies", router.handler.Currencies)
			r.Get("/countries", router.handler.Countries)
		})
	})

	// ========================
	// Prometheus
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	return r
}
