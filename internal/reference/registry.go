// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

// Package reference holds the immutable currency and country tables every
// valuation is computed against.
//
// A Registry is built once at startup, from the store or from a dataset file,
// and then shared by all requests. It has no mutating methods, so concurrent
// readers need no locking. A changed dataset produces a new Registry, and
// callers swap engines rather than mutate the one in use.
package reference

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tomtom215/vinoscope/internal/models"
	"github.com/tomtom215/vinoscope/internal/validation"
)

// DefaultLocation is used when the viewer's location is empty or unknown.
const DefaultLocation = "US"

// BaseCurrency is the pivot every conversion goes through.
const BaseCurrency = "USD"

var (
	// ErrUnknownCurrency is returned for a currency code missing from the registry.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrUnknownCountry is returned for a country key missing from the registry.
	ErrUnknownCountry = errors.New("unknown country")

	// ErrInvalidRow is returned when a reference row fails validation.
	ErrInvalidRow = errors.New("invalid reference row")
)

// Location is a resolved viewer location.
type Location struct {
	CountryID    string
	Alpha2       string
	CurrencyCode string
}

// Registry indexes currencies by code and countries by both id and alpha-2.
type Registry struct {
	currencies map[string]models.CurrencyRow
	byID       map[string]models.CountryRow
	byAlpha2   map[string]models.CountryRow
}

// New validates the rows and builds the indexes. Any country whose currency
// is not in currencies is a configuration error. The default location must
// resolve, since it is the fallback for every unknown viewer.
func New(currencies []models.CurrencyRow, countries []models.CountryRow) (*Registry, error) {
	r := &Registry{
		currencies: make(map[string]models.CurrencyRow, len(currencies)),
		byID:       make(map[string]models.CountryRow, len(countries)),
		byAlpha2:   make(map[string]models.CountryRow, len(countries)),
	}

	for i := range currencies {
		row := currencies[i]
		if err := validation.ValidateStruct(&row); err != nil {
			return nil, fmt.Errorf("%w: currency %q: %s", ErrInvalidRow, row.Code, err.Error())
		}
		if _, dup := r.currencies[row.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate currency %q", ErrInvalidRow, row.Code)
		}
		if row.Code == BaseCurrency {
			row.ToUSD, row.FromUSD = 1, 1
		}
		r.currencies[row.Code] = row
	}

	for i := range countries {
		row := countries[i]
		if err := validation.ValidateStruct(&row); err != nil {
			return nil, fmt.Errorf("%w: country %q: %s", ErrInvalidRow, row.ID, err.Error())
		}
		if _, ok := r.currencies[row.CurrencyCode]; !ok {
			return nil, fmt.Errorf("country %q: %w %q", row.ID, ErrUnknownCurrency, row.CurrencyCode)
		}
		if _, dup := r.byAlpha2[row.Alpha2]; dup {
			return nil, fmt.Errorf("%w: duplicate alpha-2 %q", ErrInvalidRow, row.Alpha2)
		}
		if _, dup := r.byID[row.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate country id %q", ErrInvalidRow, row.ID)
		}
		r.byID[row.ID] = row
		r.byAlpha2[row.Alpha2] = row
	}

	if _, ok := r.byAlpha2[DefaultLocation]; !ok {
		return nil, fmt.Errorf("default location %q: %w", DefaultLocation, ErrUnknownCountry)
	}
	return r, nil
}

// Currency looks up a currency by code.
func (r *Registry) Currency(code string) (models.CurrencyRow, error) {
	row, ok := r.currencies[code]
	if !ok {
		return models.CurrencyRow{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return row, nil
}

// Country looks up a country by internal id or alpha-2 code.
func (r *Registry) Country(key string) (models.CountryRow, bool) {
	if row, ok := r.byID[key]; ok {
		return row, true
	}
	row, ok := r.byAlpha2[strings.ToUpper(key)]
	return row, ok
}

// ResolveLocation maps a viewer location to its country and currency. Empty
// or unknown codes fall back to DefaultLocation; it never fails.
func (r *Registry) ResolveLocation(code string) Location {
	row, ok := r.Country(strings.TrimSpace(code))
	if !ok || code == "" {
		row = r.byAlpha2[DefaultLocation]
	}
	return Location{
		CountryID:    row.ID,
		Alpha2:       row.Alpha2,
		CurrencyCode: row.CurrencyCode,
	}
}

// SameCountry reports whether key (id or alpha-2) names the location's country.
func (loc Location) SameCountry(r *Registry, key string) bool {
	if key == loc.CountryID || key == loc.Alpha2 {
		return true
	}
	row, ok := r.Country(key)
	return ok && row.ID == loc.CountryID
}

// Currencies returns all currencies sorted by code.
func (r *Registry) Currencies() []models.CurrencyRow {
	out := make([]models.CurrencyRow, 0, len(r.currencies))
	for _, row := range r.currencies {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Countries returns all countries sorted by alpha-2.
func (r *Registry) Countries() []models.CountryRow {
	out := make([]models.CountryRow, 0, len(r.byAlpha2))
	for _, row := range r.byAlpha2 {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Alpha2 < out[j].Alpha2 })
	return out
}

// Size returns the number of currencies and countries.
func (r *Registry) Size() (currencies, countries int) {
	return len(r.currencies), len(r.byAlpha2)
}
