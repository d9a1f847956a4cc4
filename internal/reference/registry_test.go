// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package reference

import (
	"errors"
	"sync"
	"testing"

	"github.com/tomtom215/vinoscope/internal/models"
)

func testRows() ([]models.CurrencyRow, []models.CountryRow) {
	currencies := []models.CurrencyRow{
		{Code: "USD", Symbol: "$", ToUSD: 1, FromUSD: 1},
		{Code: "EUR", Symbol: "€", ToUSD: 1.1, FromUSD: 0.9},
	}
	countries := []models.CountryRow{
		{ID: "united-states", Alpha2: "US", Name: "United States", CurrencyCode: "USD"},
		{ID: "france", Alpha2: "FR", Name: "France", CurrencyCode: "EUR"},
	}
	return currencies, countries
}

func TestNew(t *testing.T) {
	currencies, countries := testRows()
	r, err := New(currencies, countries)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	nc, nk := r.Size()
	if nc != 2 || nk != 2 {
		t.Errorf("Size() = %d, %d; want 2, 2", nc, nk)
	}

	byID, ok := r.Country("france")
	if !ok {
		t.Fatal("france not found by id")
	}
	byAlpha, ok := r.Country("FR")
	if !ok {
		t.Fatal("FR not found by alpha-2")
	}
	if byID.ID != byAlpha.ID || byID.CurrencyCode != byAlpha.CurrencyCode {
		t.Errorf("id and alpha-2 lookups disagree: %+v vs %+v", byID, byAlpha)
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cur []models.CurrencyRow, ctr []models.CountryRow) ([]models.CurrencyRow, []models.CountryRow)
		wantIs error
	}{
		{
			name: "country with unknown currency",
			mutate: func(cur []models.CurrencyRow, ctr []models.CountryRow) ([]models.CurrencyRow, []models.CountryRow) {
				return cur, append(ctr, models.CountryRow{ID: "japan", Alpha2: "JP", Name: "Japan", CurrencyCode: "JPY"})
			},
			wantIs: ErrUnknownCurrency,
		},
		{
			name: "duplicate currency",
			mutate: func(cur []models.CurrencyRow, ctr []models.CountryRow) ([]models.CurrencyRow, []models.CountryRow) {
				return append(cur, models.CurrencyRow{Code: "EUR", Symbol: "€", ToUSD: 1, FromUSD: 1}), ctr
			},
			wantIs: ErrInvalidRow,
		},
		{
			name: "duplicate alpha-2",
			mutate: func(cur []models.CurrencyRow, ctr []models.CountryRow) ([]models.CurrencyRow, []models.CountryRow) {
				return cur, append(ctr, models.CountryRow{ID: "fr2", Alpha2: "FR", Name: "France", CurrencyCode: "EUR"})
			},
			wantIs: ErrInvalidRow,
		},
		{
			name: "invalid currency row",
			mutate: func(cur []models.CurrencyRow, ctr []models.CountryRow) ([]models.CurrencyRow, []models.CountryRow) {
				return append(cur, models.CurrencyRow{Code: "yen", Symbol: "¥", ToUSD: 1, FromUSD: 1}), ctr
			},
			wantIs: ErrInvalidRow,
		},
		{
			name: "missing default location",
			mutate: func(cur []models.CurrencyRow, ctr []models.CountryRow) ([]models.CurrencyRow, []models.CountryRow) {
				return cur, ctr[1:]
			},
			wantIs: ErrUnknownCountry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur, ctr := tt.mutate(testRows())
			_, err := New(cur, ctr)
			if !errors.Is(err, tt.wantIs) {
				t.Errorf("New() error = %v, want %v", err, tt.wantIs)
			}
		})
	}
}

func TestUSDIsIdentity(t *testing.T) {
	r, err := New([]models.CurrencyRow{{Code: "USD", Symbol: "$", ToUSD: 2, FromUSD: 3}},
		[]models.CountryRow{{ID: "united-states", Alpha2: "US", Name: "United States", CurrencyCode: "USD"}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	usd, err := r.Currency("USD")
	if err != nil {
		t.Fatal(err)
	}
	if usd.ToUSD != 1 || usd.FromUSD != 1 {
		t.Errorf("USD factors = %v/%v, want 1/1", usd.ToUSD, usd.FromUSD)
	}
}

func TestResolveLocation(t *testing.T) {
	r := MustDefault()

	tests := []struct {
		input        string
		wantAlpha2   string
		wantCurrency string
	}{
		{"KR", "KR", "KRW"},
		{"kr", "KR", "KRW"},
		{"france", "FR", "EUR"},
		{"", "US", "USD"},
		{"ZZ", "US", "USD"},
		{"atlantis", "US", "USD"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			loc := r.ResolveLocation(tt.input)
			if loc.Alpha2 != tt.wantAlpha2 || loc.CurrencyCode != tt.wantCurrency {
				t.Errorf("ResolveLocation(%q) = %+v, want %s/%s", tt.input, loc, tt.wantAlpha2, tt.wantCurrency)
			}
		})
	}
}

func TestSameCountry(t *testing.T) {
	r := MustDefault()
	loc := r.ResolveLocation("FR")

	for _, key := range []string{"FR", "france", "fr"} {
		if !loc.SameCountry(r, key) {
			t.Errorf("SameCountry(%q) = false, want true", key)
		}
	}
	for _, key := range []string{"IT", "italy", "unknown"} {
		if loc.SameCountry(r, key) {
			t.Errorf("SameCountry(%q) = true, want false", key)
		}
	}
}

func TestCurrencyUnknown(t *testing.T) {
	_, err := MustDefault().Currency("XYZ")
	if !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("Currency(XYZ) error = %v, want ErrUnknownCurrency", err)
	}
}

func TestListingsAreSorted(t *testing.T) {
	r := MustDefault()

	currencies := r.Currencies()
	for i := 1; i < len(currencies); i++ {
		if currencies[i-1].Code >= currencies[i].Code {
			t.Fatalf("currencies not sorted at %d: %s >= %s", i, currencies[i-1].Code, currencies[i].Code)
		}
	}
	countries := r.Countries()
	for i := 1; i < len(countries); i++ {
		if countries[i-1].Alpha2 >= countries[i].Alpha2 {
			t.Fatalf("countries not sorted at %d", i)
		}
	}
}

func TestConcurrentReaders(t *testing.T) {
	r := MustDefault()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = r.ResolveLocation("JP")
				_, _ = r.Currency("EUR")
			}
		}()
	}
	wg.Wait()
}

func TestCountryDisplayName(t *testing.T) {
	kr, ok := MustDefault().Country("KR")
	if !ok {
		t.Fatal("KR missing from default dataset")
	}
	if got := kr.DisplayName("ko"); got != "한국" {
		t.Errorf("DisplayName(ko) = %q", got)
	}
	if got := kr.DisplayName("fr"); got != "South Korea" {
		t.Errorf("DisplayName(fr) = %q", got)
	}
}
