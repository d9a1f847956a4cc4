// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package api

import (
	"net/http"
	"time"
)

// Currencies lists the loaded currency table.
func (h *Handler) Currencies(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, http.StatusOK, time.Now(), false, h.Engine().Registry().Currencies())
}

// Countries lists the loaded country table, sorted by alpha-2.
func (h *Handler) Countries(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, http.StatusOK, time.Now(), false, h.Engine().Registry().Countries())
}
