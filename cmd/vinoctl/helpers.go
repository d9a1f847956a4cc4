// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/vinoscope/internal/models"
	"github.com/tomtom215/vinoscope/internal/reference"
	"github.com/tomtom215/vinoscope/internal/validation"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readRecord loads and validates one wine record document. With strict
// unset only the envelope is checked and malformed offers, history points
// and reviews are left for the engine to skip.
func readRecord(path string, strict bool) (*models.WineRecord, error) {
	if path == "" {
		return nil, fmt.Errorf("--record is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}
	var record models.WineRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode record %s: %w", path, err)
	}
	var verr *validation.RequestValidationError
	if strict {
		verr = validation.ValidateStruct(&record)
	} else {
		verr = validation.ValidateStructExcept(&record, models.WineItemFields...)
	}
	if verr != nil {
		return nil, fmt.Errorf("invalid record %s: %w", path, verr)
	}
	return &record, nil
}

func loadRegistry(path string) (*reference.Registry, error) {
	if path == "" {
		return reference.Default()
	}
	return reference.LoadFile(path)
}

func formatPrice(p *models.Price) string {
	if p == nil {
		return "-"
	}
	return p.Symbol + strconv.FormatFloat(p.Value, 'f', -1, 64)
}

func formatPercent(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 1, 64) + "%"
}

func formatScore(s models.Score) string {
	if s.Value == nil {
		return "-"
	}
	return strconv.FormatFloat(*s.Value, 'f', 1, 64) + "/" + strconv.FormatFloat(s.Ground, 'f', -1, 64)
}

func costEffectivenessLabel(v *int) string {
	if v == nil {
		return "-"
	}
	switch *v {
	case 1:
		return "high"
	case -1:
		return "low"
	default:
		return "average"
	}
}
