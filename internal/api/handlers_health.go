// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/vinoscope/internal/models"
)

// Health reports store connectivity, reference table sizes and cache
// occupancy. It always answers 200; see HealthReady for the probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, http.StatusOK, time.Now(), false, h.healthStatus())
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only when the store answers and reference data is loaded.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	health := h.healthStatus()
	if health.Status != "healthy" {
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status: "error",
			Data:   health,
			Metadata: models.Metadata{
				Timestamp: time.Now().UTC(),
			},
			Error: &models.APIError{
				Code:    "SERVICE_UNAVAILABLE",
				Message: "Service is not ready",
			},
		})
		return
	}

	respondData(w, r, http.StatusOK, time.Now(), false, health)
}

func (h *Handler) healthStatus() models.HealthStatus {
	storeConnected := h.store != nil && h.store.Ping() == nil

	var currencies, countries int
	if engine := h.Engine(); engine != nil && engine.Registry() != nil {
		currencies, countries = engine.Registry().Size()
	}

	cached := 0
	if h.cache != nil {
		cached = h.cache.Len()
	}

	status := "healthy"
	if !storeConnected || currencies == 0 || countries == 0 {
		status = "degraded"
	}

	return models.HealthStatus{
		Status:         status,
		Version:        h.version,
		StoreConnected: storeConnected,
		Currencies:     currencies,
		Countries:      countries,
		CachedRecords:  cached,
		UptimeSeconds:  time.Since(h.startTime).Seconds(),
	}
}
