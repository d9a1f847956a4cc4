// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/vinoscope/internal/logging"
	"github.com/tomtom215/vinoscope/internal/models"
	"github.com/tomtom215/vinoscope/internal/store"
)

// ListWines returns stored wine ids in key order, one page at a time.
// The next_cursor value is passed back as ?after= to continue.
func (h *Handler) ListWines(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := models.WineListQuery{
		After: r.URL.Query().Get("after"),
		Limit: getIntParam(r, "limit", store.DefaultListLimit),
	}
	if apiErr := validateRequest(&q); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	ids, next, err := h.store.ListWineIDs(r.Context(), q.After, q.Limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to list wines", err)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	respondData(w, r, http.StatusOK, start, false, models.WineList{IDs: ids, NextCursor: next})
}

// GetWine returns one stored wine record.
func (h *Handler) GetWine(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := chi.URLParam(r, "id")

	record, cached, err := h.loadWine(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, id, err)
		return
	}

	respondData(w, r, http.StatusOK, start, cached, record)
}

// PutWine creates or replaces a wine record. The body's _id may be omitted;
// when present it must match the path.
func (h *Handler) PutWine(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := chi.URLParam(r, "id")

	var record models.WineRecord
	if err := decodeJSONBody(w, r, h.config.Security.MaxBodyBytes, &record); err != nil {
		h.respondDecodeError(w, err)
		return
	}

	if record.ID == "" {
		record.ID = id
	}
	if record.ID != id {
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Record _id does not match the path", nil)
		return
	}
	if apiErr := validateRequest(&record); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	if err := h.store.PutWine(r.Context(), &record); err != nil {
		h.respondStoreError(w, id, err)
		return
	}
	h.invalidate(id)

	logging.Ctx(r.Context()).Info().Str("wine_id", sanitizeLogValue(id)).Msg("Wine record stored")
	respondData(w, r, http.StatusOK, start, false, &record)
}

// DeleteWine removes a wine record.
func (h *Handler) DeleteWine(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := chi.URLParam(r, "id")

	if err := h.store.DeleteWine(r.Context(), id); err != nil {
		h.respondStoreError(w, id, err)
		return
	}
	h.invalidate(id)

	logging.Ctx(r.Context()).Info().Str("wine_id", sanitizeLogValue(id)).Msg("Wine record deleted")
	respondData(w, r, http.StatusOK, start, false, map[string]interface{}{
		"id":      id,
		"deleted": true,
	})
}

// respondStoreError maps store errors onto HTTP statuses.
func (h *Handler) respondStoreError(w http.ResponseWriter, id string, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Wine not found: "+sanitizeLogValue(id), nil)
	case errors.Is(err, store.ErrEmptyID):
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Wine id is required", nil)
	case errors.Is(err, store.ErrClosed):
		respondError(w, http.StatusServiceUnavailable, "STORE_ERROR", "Store is closed", err)
	default:
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Store operation failed", err)
	}
}

func (h *Handler) respondDecodeError(w http.ResponseWriter, err error) {
	switch {
	case isBodyTooLarge(err):
		respondError(w, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Request body too large", nil)
	case errors.Is(err, errEmptyBody):
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Request body is required", nil)
	default:
		msg := "Invalid JSON body"
		if detail := strings.TrimSpace(err.Error()); detail != "" {
			msg += ": " + sanitizeLogValue(detail)
		}
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", msg, nil)
	}
}
