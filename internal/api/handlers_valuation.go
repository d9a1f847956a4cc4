// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/vinoscope/internal/models"
	"github.com/tomtom215/vinoscope/internal/validation"
)

// WineValuation values a stored wine for ?location= (ISO alpha-2) in
// ?language= (alias ?lang=) or the Accept-Language header.
func (h *Handler) WineValuation(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	params := r.URL.Query()
	lang := params.Get("language")
	if lang == "" {
		lang = params.Get("lang")
	}

	q := models.ValuationQuery{
		WineID:   chi.URLParam(r, "id"),
		Location: strings.ToUpper(strings.TrimSpace(params.Get("location"))),
		Language: strings.ToLower(strings.TrimSpace(lang)),
	}
	if apiErr := validateRequest(&q); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	record, cached, err := h.loadWine(r.Context(), q.WineID)
	if err != nil {
		h.respondStoreError(w, q.WineID, err)
		return
	}

	valuation, err := h.Engine().Evaluate(r.Context(), record, q.Location, h.resolveLanguage(r, q.Language))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build valuation", err)
		return
	}

	respondData(w, r, http.StatusOK, start, cached, valuation)
}

// Valuate values a wine record supplied in the request body without
// storing it. Only the record envelope is validated; malformed offers,
// history points and reviews are skipped by the engine.
func (h *Handler) Valuate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.ValuationRequest
	if err := decodeJSONBody(w, r, h.config.Security.MaxBodyBytes, &req); err != nil {
		h.respondDecodeError(w, err)
		return
	}
	req.Location = strings.ToUpper(strings.TrimSpace(req.Location))
	req.Language = strings.ToLower(strings.TrimSpace(req.Language))

	if apiErr := validateValuationRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	valuation, err := h.Engine().Evaluate(r.Context(), &req.Record, req.Location, h.resolveLanguage(r, req.Language))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build valuation", err)
		return
	}

	respondData(w, r, http.StatusOK, start, false, valuation)
}

// validateValuationRequest checks a valuation body without descending into
// the record's per-item collections.
func validateValuationRequest(req *models.ValuationRequest) *models.APIError {
	except := make([]string, 0, len(models.WineItemFields))
	for _, f := range models.WineItemFields {
		except = append(except, "Record."+f)
	}
	return toAPIError(validation.ValidateStructExcept(req, except...))
}
