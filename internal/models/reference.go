// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package models

// CurrencyRow is one row of the currency reference table. ToUSD multiplies a
// value in this currency into dollars; FromUSD does the reverse. USD itself
// carries 1/1.
type CurrencyRow struct {
	Code    string  `json:"code" yaml:"code" koanf:"code" validate:"required,currency"`
	Symbol  string  `json:"symbol" yaml:"symbol" koanf:"symbol" validate:"required"`
	ToUSD   float64 `json:"to_usd" yaml:"to_usd" koanf:"to_usd" validate:"gt=0"`
	FromUSD float64 `json:"from_usd" yaml:"from_usd" koanf:"from_usd" validate:"gt=0"`
}

// CountryRow is one row of the country reference table.
type CountryRow struct {
	ID           string `json:"_id" yaml:"id" koanf:"id" validate:"required"` // internal id, e.g. "united-states"
	Alpha2       string `json:"alpha_2" yaml:"alpha_2" koanf:"alpha_2" validate:"required,country"`
	Alpha3       string `json:"alpha_3,omitempty" yaml:"alpha_3" koanf:"alpha_3" validate:"omitempty,len=3,alpha"`
	Name         string `json:"name" yaml:"name" koanf:"name" validate:"required"`
	CurrencyCode string `json:"currency_code" yaml:"currency_code" koanf:"currency_code" validate:"required,currency"`

	// LocalNames holds translated names keyed by language.
	LocalNames map[string]string `json:"local_names,omitempty" yaml:"local_names" koanf:"local_names"`
}

// DisplayName returns the country name in language, falling back to Name.
func (c CountryRow) DisplayName(language string) string {
	if n := c.LocalNames[language]; n != "" {
		return n
	}
	return c.Name
}

// ReferenceDataset is the on-disk shape of the reference tables.
type ReferenceDataset struct {
	Currencies []CurrencyRow `json:"currencies" yaml:"currencies" koanf:"currencies" validate:"required,min=1,dive"`
	Countries  []CountryRow  `json:"countries" yaml:"countries" koanf:"countries" validate:"required,min=1,dive"`
}
