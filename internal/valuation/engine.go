// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

// Package valuation assembles the localized valuation view of a wine record.
//
// An Engine holds only immutable collaborators, so one instance serves all
// requests concurrently. Every step degrades on partial data: a record with
// no offers, history or reviews still produces a valuation with the
// corresponding fields empty.
package valuation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tomtom215/vinoscope/internal/critic"
	"github.com/tomtom215/vinoscope/internal/logging"
	"github.com/tomtom215/vinoscope/internal/metrics"
	"github.com/tomtom215/vinoscope/internal/models"
	"github.com/tomtom215/vinoscope/internal/narrative"
	"github.com/tomtom215/vinoscope/internal/pricing"
	"github.com/tomtom215/vinoscope/internal/reference"
)

// ErrNilRecord is returned when Evaluate is called without a record.
var ErrNilRecord = errors.New("valuation: nil wine record")

// Cost-effectiveness cutoffs on priceForValue, in percent.
const (
	effectiveBelowPercent  = -10
	ineffectiveFromPercent = 10
)

// Engine computes valuations against one reference registry.
type Engine struct {
	reg      *reference.Registry
	selector *pricing.Selector
	bucketer *pricing.Bucketer
	critics  *critic.Aggregator
	composer *narrative.Composer
	now      func() time.Time

	defaultLocation string
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the clock used for history windows.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithDefaultLocation sets the location used when a request names none, or
// names one the registry does not know.
func WithDefaultLocation(code string) Option {
	return func(e *Engine) { e.defaultLocation = code }
}

// New returns an engine bound to reg.
func New(reg *reference.Registry, opts ...Option) *Engine {
	composer := narrative.NewComposer()
	e := &Engine{
		reg:      reg,
		selector: pricing.NewSelector(reg),
		bucketer: pricing.NewBucketer(reg),
		critics:  critic.NewAggregator(composer),
		composer: composer,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rebind returns an engine with the same options bound to reg.
func (e *Engine) Rebind(reg *reference.Registry) *Engine {
	return New(reg, WithClock(e.now), WithDefaultLocation(e.defaultLocation))
}

// Registry returns the registry the engine was built with.
func (e *Engine) Registry() *reference.Registry { return e.reg }

// Evaluate builds the valuation of record for a viewer in location reading
// lang. Unknown locations fall back to the default location.
func (e *Engine) Evaluate(ctx context.Context, record *models.WineRecord, location string, lang narrative.Language) (*models.Valuation, error) {
	if record == nil {
		return nil, ErrNilRecord
	}
	if !lang.Valid() {
		lang = narrative.DefaultLanguage
	}
	start := time.Now()
	log := logging.Ctx(ctx)

	location = strings.TrimSpace(location)
	if _, known := e.reg.Country(location); !known && e.defaultLocation != "" {
		location = e.defaultLocation
	}
	loc := e.reg.ResolveLocation(location)
	name := record.DisplayName(string(lang))
	localCountry := e.countryName(loc.Alpha2, lang)

	local := e.selector.SelectLocalPrices(ctx, loc.Alpha2, record.GlobalMarketPrice)
	if local == nil {
		local = []models.MarketPrice{}
	}
	actual := pricing.ActualPrice(local)

	predicted, err := e.selector.PredictedPrice(loc.Alpha2, record.EstimatedPrice)
	if err != nil {
		log.Warn().Err(err).Str("wine_id", record.ID).Msg("predicted price unavailable")
	}

	priceForValue := PriceForValue(actual, predicted)
	costEffectiveness := CostEffectiveness(priceForValue)

	globalPrices := e.selector.GlobalPrices(ctx, loc.Alpha2, record.GlobalMarketPrice)

	v := &models.Valuation{
		ID:                     record.ID,
		Name:                   name,
		ActualPrice:            actual,
		PredictedPrice:         predicted,
		PriceForValue:          priceForValue,
		CostEffectiveness:      costEffectiveness,
		PriceString:            pricing.FormatPrices(local),
		CurrentMarketPrices:    local,
		GlobalPrices:           globalPrices,
		GlobalPriceDescription: e.composer.GlobalPriceDescription(narrative.GlobalPriceInput{
			Name:          name,
			Viewer:        loc.Alpha2,
			Prices:        globalPrices,
			PriceForValue: priceForValue,
			CountryName:   func(alpha2 string) string { return e.countryName(alpha2, lang) },
		}, lang),
		PriceDescription: e.composer.PriceDescription(name, costEffectiveness, localCountry, lang),
		HistoryPrice:     e.bucketer.Bucket(ctx, loc.Alpha2, record.GlobalHistoryPrice, e.now()),
		CriticReview:     e.critics.Aggregate(ctx, name, record.CriticReviews, lang),
		Highlights:       e.highlights(record, costEffectiveness, lang),
		MetaData: models.ValuationMeta{
			Location: loc.Alpha2,
			Currency: loc.CurrencyCode,
			Language: string(lang),
		},
	}

	metrics.RecordValuation(string(lang), time.Since(start))
	log.Debug().
		Str("wine_id", record.ID).
		Str("location", loc.Alpha2).
		Str("language", string(lang)).
		Int("local_prices", len(local)).
		Int("global_prices", len(globalPrices)).
		Msg("valuation built")
	return v, nil
}

func (e *Engine) countryName(alpha2 string, lang narrative.Language) string {
	row, ok := e.reg.Country(alpha2)
	if !ok {
		return alpha2
	}
	return row.DisplayName(string(lang))
}

// PriceForValue is the percent deviation of the actual price from the
// predicted one, two decimals. Nil when either price is missing or the
// prediction is zero.
func PriceForValue(actual, predicted *models.Price) *float64 {
	if actual == nil || predicted == nil || predicted.Value == 0 {
		return nil
	}
	v := pricing.Round2((actual.Value - predicted.Value) / predicted.Value * 100)
	return &v
}

// CostEffectiveness classifies a priceForValue: 1 when clearly below the
// prediction, -1 when clearly above it, 0 otherwise.
func CostEffectiveness(priceForValue *float64) *int {
	if priceForValue == nil {
		return nil
	}
	class := narrative.CostIneffective
	switch {
	case *priceForValue < effectiveBelowPercent:
		class = narrative.CostEffective
	case *priceForValue < ineffectiveFromPercent:
		class = narrative.CostAverage
	}
	return &class
}

// Rating sources shown as highlights.
var (
	userScoreSources = map[string]string{
		"vivino":        "Vivino",
		"wine-searcher": "Wine-Searcher",
	}
	criticScoreSources = map[string]string{
		"robertparker":  "Robert Parker",
		"jamessuckling": "James Suckling",
		"vinous":        "Vinous",
	}
)

// highlights returns, in order: the editorial highlight, the user score, the
// cost-effectiveness badge and the critic score. When several sources of one
// kind are rated, the last in key order wins.
func (e *Engine) highlights(record *models.WineRecord, costEffectiveness *int, lang narrative.Language) []models.Highlight {
	out := make([]models.Highlight, 0, 4)

	if editorial := record.DisplayHighlights(string(lang)); len(editorial) > 0 {
		out = append(out, models.Highlight{Kind: models.HighlightEditorial, Value: editorial[0]})
	}

	var userScore, criticScore *models.Highlight
	sources := make([]string, 0, len(record.Score))
	for source := range record.Score {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	for _, source := range sources {
		value := record.Score[source].Value
		if value == 0 {
			continue
		}
		if label, ok := userScoreSources[source]; ok {
			userScore = &models.Highlight{
				Kind:  models.HighlightUserScore,
				Value: fmt.Sprintf("%s %.1f/5.0", label, value),
			}
		}
		if label, ok := criticScoreSources[source]; ok {
			criticScore = &models.Highlight{
				Kind:  models.HighlightCriticScore,
				Value: fmt.Sprintf("%d By %s", int(value), label),
			}
		}
	}

	if userScore != nil {
		out = append(out, *userScore)
	}
	if costEffectiveness != nil {
		out = append(out, models.Highlight{
			Kind:  models.HighlightCostEffectiveness,
			Value: e.composer.CostEffectivenessLabel(*costEffectiveness, lang),
		})
	}
	if criticScore != nil {
		out = append(out, *criticScore)
	}
	return out
}
