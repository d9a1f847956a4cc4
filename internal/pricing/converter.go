// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

// Package pricing converts market offers and price history into the viewer's
// currency.
//
// All conversions pivot through USD using the factors held by the reference
// registry. Conversion never rounds; rounding to one decimal happens only where
// a value is presented (minimum, average, history buckets). The factors are
// not exact reciprocals of each other, so converting A to B and back drifts by
// a small amount. That drift is expected.
package pricing

import (
	"fmt"

	"github.com/tomtom215/vinoscope/internal/reference"
)

// Converter converts values between currencies via USD.
type Converter struct {
	reg *reference.Registry
}

// NewConverter returns a converter bound to reg.
func NewConverter(reg *reference.Registry) *Converter {
	return &Converter{reg: reg}
}

// ToUSD converts value in currency to USD.
func (c *Converter) ToUSD(currency string, value float64) (float64, error) {
	if currency == reference.BaseCurrency {
		return value, nil
	}
	row, err := c.reg.Currency(currency)
	if err != nil {
		return 0, err
	}
	return value * row.ToUSD, nil
}

// FromUSD converts a USD value into currency.
func (c *Converter) FromUSD(currency string, usd float64) (float64, error) {
	if currency == reference.BaseCurrency {
		return usd, nil
	}
	row, err := c.reg.Currency(currency)
	if err != nil {
		return 0, err
	}
	return usd * row.FromUSD, nil
}

// Convert converts value from src to dst.
func (c *Converter) Convert(src, dst string, value float64) (float64, error) {
	usd, err := c.ToUSD(src, value)
	if err != nil {
		return 0, fmt.Errorf("convert from %s: %w", src, err)
	}
	out, err := c.FromUSD(dst, usd)
	if err != nil {
		return 0, fmt.Errorf("convert to %s: %w", dst, err)
	}
	return out, nil
}
