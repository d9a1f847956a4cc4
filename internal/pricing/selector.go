// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package pricing

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/tomtom215/vinoscope/internal/logging"
	"github.com/tomtom215/vinoscope/internal/metrics"
	"github.com/tomtom215/vinoscope/internal/models"
	"github.com/tomtom215/vinoscope/internal/reference"
)

// ErrNoPrices is returned by MinimumPrice and AveragePrice for an empty list.
// Callers are expected to check the length first.
var ErrNoPrices = errors.New("no prices")

// Selector picks and converts the market offers shown to a viewer.
type Selector struct {
	reg  *reference.Registry
	conv *Converter
}

// NewSelector returns a selector bound to reg.
func NewSelector(reg *reference.Registry) *Selector {
	return &Selector{reg: reg, conv: NewConverter(reg)}
}

// SelectLocalPrices returns the offers for the viewer's own country when it
// has any, otherwise the offers of every country, converted to the viewer's
// currency. Countries missing from the registry and offers that fail to
// convert are skipped.
func (s *Selector) SelectLocalPrices(ctx context.Context, location string, byCountry map[string][]models.MarketOffer) []models.MarketPrice {
	if len(byCountry) == 0 {
		return nil
	}
	loc := s.reg.ResolveLocation(location)

	for _, key := range sortedKeys(byCountry) {
		if len(byCountry[key]) > 0 && loc.SameCountry(s.reg, key) {
			return s.convertCountry(ctx, loc, key, byCountry[key])
		}
	}

	var out []models.MarketPrice
	for _, key := range sortedKeys(byCountry) {
		out = append(out, s.convertCountry(ctx, loc, key, byCountry[key])...)
	}
	return out
}

func (s *Selector) convertCountry(ctx context.Context, loc reference.Location, key string, offers []models.MarketOffer) []models.MarketPrice {
	country, ok := s.reg.Country(key)
	if !ok {
		metrics.RecordSkipped(metrics.SkipOffer, "unknown_country")
		logging.Ctx(ctx).Debug().Str("country", key).Int("offers", len(offers)).Msg("market offers skipped: country not in registry")
		return nil
	}

	symbol := s.symbol(loc.CurrencyCode)
	out := make([]models.MarketPrice, 0, len(offers))
	for i := range offers {
		offer := &offers[i]
		if offer.Value < 0 {
			metrics.RecordSkipped(metrics.SkipOffer, "negative_value")
			logging.Ctx(ctx).Debug().Str("country", key).Str("market", offer.Market.Name).Msg("market offer skipped")
			continue
		}
		value, err := s.conv.Convert(offer.Currency, loc.CurrencyCode, offer.Value)
		if err != nil {
			metrics.RecordSkipped(metrics.SkipOffer, "unknown_currency")
			logging.Ctx(ctx).Debug().Err(err).Str("country", key).Str("market", offer.Market.Name).Msg("market offer skipped")
			continue
		}
		out = append(out, models.MarketPrice{
			Value:       value,
			Symbol:      symbol,
			Country:     country.Alpha2,
			Currency:    loc.CurrencyCode,
			BottleCount: offer.OriginalPrice.BottleCount,
			Market: models.MarketLink{
				Name:      offer.Market.Name,
				Href:      offer.Market.URL,
				IsAuction: offer.Market.IsAuction,
			},
		})
	}
	return out
}

func (s *Selector) symbol(currency string) string {
	row, err := s.reg.Currency(currency)
	if err != nil {
		return currency
	}
	return row.Symbol
}

// MinimumPrice returns the lowest value rounded to one decimal.
func MinimumPrice(prices []models.MarketPrice) (float64, error) {
	if len(prices) == 0 {
		return 0, ErrNoPrices
	}
	lowest := prices[0].Value
	for _, p := range prices[1:] {
		if p.Value < lowest {
			lowest = p.Value
		}
	}
	return Round1(lowest), nil
}

// AveragePrice returns the arithmetic mean rounded to one decimal.
func AveragePrice(prices []models.MarketPrice) (float64, error) {
	if len(prices) == 0 {
		return 0, ErrNoPrices
	}
	var total float64
	for _, p := range prices {
		total += p.Value
	}
	return Round1(total / float64(len(prices))), nil
}

// PriceString renders the cheapest local offer as "{symbol} {integer}", with
// thousands grouped. It returns "" when no offer resolves.
func (s *Selector) PriceString(ctx context.Context, location string, byCountry map[string][]models.MarketOffer) string {
	return FormatPrices(s.SelectLocalPrices(ctx, location, byCountry))
}

// FormatPrices renders already selected prices the way PriceString does.
func FormatPrices(prices []models.MarketPrice) string {
	lowest, err := MinimumPrice(prices)
	if err != nil {
		return ""
	}
	return FormatSymbolSpaced(prices[0].Symbol, lowest)
}

// GlobalPrices averages each registered country's offers in the viewer's
// currency and returns them cheapest first. Fewer than two countries carry no
// comparison, so the result is empty in that case.
func (s *Selector) GlobalPrices(ctx context.Context, location string, byCountry map[string][]models.MarketOffer) []models.GlobalPrice {
	loc := s.reg.ResolveLocation(location)
	symbol := s.symbol(loc.CurrencyCode)

	out := make([]models.GlobalPrice, 0, len(byCountry))
	for _, key := range sortedKeys(byCountry) {
		prices := s.convertCountry(ctx, loc, key, byCountry[key])
		avg, err := AveragePrice(prices)
		if err != nil {
			continue
		}
		out = append(out, models.GlobalPrice{
			Value:    avg,
			Currency: loc.CurrencyCode,
			Symbol:   symbol,
			Country:  prices[0].Country,
		})
	}

	if len(out) < 2 {
		return []models.GlobalPrice{}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

// ActualPrice is the cheapest selected offer, in that offer's currency and
// symbol. Nil when there are no offers.
func ActualPrice(prices []models.MarketPrice) *models.Price {
	lowest, err := MinimumPrice(prices)
	if err != nil {
		return nil
	}
	return &models.Price{Value: lowest, Symbol: prices[0].Symbol, Currency: prices[0].Currency}
}

// PredictedPrice converts a USD estimate into the viewer's currency. Nil when
// there is no estimate or it is zero.
func (s *Selector) PredictedPrice(location string, estimate *models.EstimatedPrice) (*models.Price, error) {
	if estimate == nil || estimate.Value == 0 {
		return nil, nil
	}
	loc := s.reg.ResolveLocation(location)
	value, err := s.conv.FromUSD(loc.CurrencyCode, estimate.Value)
	if err != nil {
		return nil, fmt.Errorf("predicted price: %w", err)
	}
	return &models.Price{Value: Round1(value), Symbol: s.symbol(loc.CurrencyCode), Currency: loc.CurrencyCode}, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
