// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package api

import (
	"bytes"
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/vinoscope/internal/logging"
	"github.com/tomtom215/vinoscope/internal/middleware"
	"github.com/tomtom215/vinoscope/internal/models"
	"github.com/tomtom215/vinoscope/internal/narrative"
	"github.com/tomtom215/vinoscope/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
// This includes newlines, carriage returns, tabs, and other control characters that could
// allow attackers to forge log entries or corrupt log files.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Vary", "Accept-Encoding, Accept-Language")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondData wraps data in a success envelope.
func respondData(w http.ResponseWriter, r *http.Request, status int, start time.Time, cached bool, data interface{}) {
	respondJSON(w, status, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			Cached:      cached,
			RequestID:   middleware.GetRequestID(r.Context()),
		},
	})
}

// generateETag creates a weak ETag from the FNV-1a hash of data.
func generateETag(data []byte) string {
	h := fnv.New32a()
	_, _ = h.Write(data)
	return `W/"` + strconv.FormatUint(uint64(h.Sum32()), 16) + `"`
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", sanitizeLogValue(code)).Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondValidationError sends a 400 carrying the per-field details.
func respondValidationError(w http.ResponseWriter, apiErr *models.APIError) {
	respondJSON(w, http.StatusBadRequest, &models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error:    apiErr,
	})
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a models.APIError if validation fails.
//
// Example:
//
//	q := models.ValuationQuery{WineID: chi.URLParam(r, "id")}
//	if apiErr := validateRequest(&q); apiErr != nil {
//	    respondValidationError(w, apiErr)
//	    return
//	}
func validateRequest(v interface{}) *models.APIError {
	return toAPIError(validation.ValidateStruct(v))
}

func toAPIError(validationErr *validation.RequestValidationError) *models.APIError {
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// getIntParam extracts an integer query parameter with a default value
func getIntParam(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

var errEmptyBody = errors.New("request body is empty")

// decodeJSONBody decodes a single JSON object of at most limit bytes into
// dst. Fields the models do not carry are ignored.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, limit int64, dst interface{}) error {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return errEmptyBody
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// isBodyTooLarge reports whether err came from http.MaxBytesReader.
func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// resolveLanguage picks the response language: the explicit request value,
// then Accept-Language, then the configured default.
func (h *Handler) resolveLanguage(r *http.Request, explicit string) narrative.Language {
	if l, ok := narrative.LookupLanguage(explicit); ok {
		return l
	}
	if l, ok := narrative.LookupAcceptLanguage(r.Header.Get("Accept-Language")); ok {
		return l
	}
	return narrative.ParseLanguage(h.config.Engine.DefaultLanguage)
}
