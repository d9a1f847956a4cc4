// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package narrative

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tomtom215/vinoscope/internal/models"
	"github.com/tomtom215/vinoscope/internal/pricing"
)

// Cost-effectiveness classes.
const (
	CostEffective   = 1
	CostAverage     = 0
	CostIneffective = -1
)

// Thresholds on priceForValue, in percent.
const (
	ineffectiveAppendPercent = 20
	effectiveAppendPercent   = 0
)

// Critic score buckets.
const (
	criticHighScore    = 90
	criticAverageScore = 80
)

// keywordsShown is how many keywords of each kind a critic description names.
const keywordsShown = 3

// Vars holds placeholder values keyed by name without braces.
type Vars map[string]string

// Composer interpolates template tables.
type Composer struct{}

// NewComposer returns a Composer.
func NewComposer() *Composer { return &Composer{} }

// Render looks up key in table and replaces every {name} with vars[name].
// A language missing from the table falls back to English. Unknown keys
// render as "".
func (c *Composer) Render(table Table, key string, lang Language, vars Vars) string {
	texts, ok := table[key]
	if !ok {
		return ""
	}
	text, ok := texts[lang]
	if !ok {
		text = texts[DefaultLanguage]
	}
	if len(vars) == 0 {
		return text
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// CostEffectivenessKey maps a class to its template id.
func CostEffectivenessKey(class int) string {
	switch {
	case class > 0:
		return KeyHigh
	case class < 0:
		return KeyLow
	default:
		return KeyAverage
	}
}

// CostEffectivenessLabel returns the highlight badge text for class.
func (c *Composer) CostEffectivenessLabel(class int, lang Language) string {
	return c.Render(CostEffectivenessLabels, CostEffectivenessKey(class), lang, nil)
}

// PriceDescription describes cost-effectiveness in localCountry. A nil class
// means no prediction was available.
func (c *Composer) PriceDescription(name string, class *int, localCountry string, lang Language) string {
	if class == nil {
		return c.Render(PriceDescriptions, KeyDefault, lang, Vars{"name": name})
	}
	return c.Render(PriceDescriptions, CostEffectivenessKey(*class), lang, Vars{
		"name":          name,
		"local_country": localCountry,
	})
}

// GlobalPriceInput is what GlobalPriceDescription needs about one valuation.
type GlobalPriceInput struct {
	Name          string
	Viewer        string               // alpha-2 of the viewer's country
	Prices        []models.GlobalPrice // ascending by value
	PriceForValue *float64
	CountryName   func(alpha2 string) string // localized display name
}

// GlobalPriceDescription compares the viewer's market with the cheapest one.
// Nil when there are no global prices.
func (c *Composer) GlobalPriceDescription(in GlobalPriceInput, lang Language) *string {
	if len(in.Prices) == 0 {
		return nil
	}
	countryName := in.CountryName
	if countryName == nil {
		countryName = func(alpha2 string) string { return alpha2 }
	}

	lowest := in.Prices[0]
	var local *models.GlobalPrice
	for i := range in.Prices {
		if in.Prices[i].Country == in.Viewer {
			local = &in.Prices[i]
			break
		}
	}

	var out string
	switch {
	case local == nil:
		out = c.Render(GlobalPriceDescriptions, KeyDefault, lang, Vars{
			"name":           in.Name,
			"lowest_price":   pricing.FormatSymbolTight(lowest.Symbol, lowest.Value),
			"lowest_country": countryName(lowest.Country),
		})

	case local.Country == lowest.Country:
		localCountry := countryName(local.Country)
		out = c.Render(GlobalPriceDescriptions, KeyCheap, lang, Vars{
			"name":          in.Name,
			"local_price":   pricing.FormatSymbolTight(local.Symbol, local.Value),
			"local_country": localCountry,
		})
		if in.PriceForValue != nil && *in.PriceForValue >= ineffectiveAppendPercent {
			out += " " + c.Render(EstimatedPriceDescriptions, KeyIneffective, lang, Vars{
				"name":          in.Name,
				"percent":       strconv.FormatFloat(*in.PriceForValue, 'f', -1, 64),
				"local_country": localCountry,
			})
		}

	default:
		localCountry := countryName(local.Country)
		out = c.Render(GlobalPriceDescriptions, KeyExpensive, lang, Vars{
			"name":           in.Name,
			"local_price":    pricing.FormatSymbolTight(local.Symbol, local.Value),
			"local_country":  localCountry,
			"lowest_price":   pricing.FormatSymbolTight(lowest.Symbol, lowest.Value),
			"lowest_country": countryName(lowest.Country),
		})
		if in.PriceForValue != nil && *in.PriceForValue <= effectiveAppendPercent {
			out += " " + c.Render(EstimatedPriceDescriptions, KeyEffective, lang, Vars{
				"name":          in.Name,
				"local_country": localCountry,
			})
		}
	}
	return &out
}

// CriticInput is what CriticDescription needs from a consensus. Keyword
// lists are ordered by descending frequency.
type CriticInput struct {
	Name     string
	Score    *float64 // mean actual score out of 100
	Aromas   []string
	Palates  []string
	Colors   []string
	Pairings []string
}

// CriticDescription summarizes a consensus. The keyword-rich template is used
// only when every keyword list is non-empty. Nil without an actual score.
func (c *Composer) CriticDescription(in CriticInput, lang Language) *string {
	if in.Score == nil {
		return nil
	}
	score := *in.Score

	key := KeyLow
	switch {
	case score >= criticHighScore:
		key = KeyHigh
	case score >= criticAverageScore:
		key = KeyAverage
	}

	rating := strconv.Itoa(int(score))
	rich := len(in.Colors) > 0 && len(in.Aromas) > 0 && len(in.Palates) > 0 && len(in.Pairings) > 0
	if !rich {
		out := c.Render(CriticDescriptions, "default_"+key, lang, Vars{"rating": rating})
		return &out
	}

	out := c.Render(CriticDescriptions, key, lang, Vars{
		"name":    in.Name,
		"aromas":  joinTop(in.Aromas),
		"taste":   joinTop(in.Palates),
		"color":   joinTop(in.Colors),
		"pairing": joinTop(in.Pairings),
		"rating":  rating,
	})
	return &out
}

// joinTop title-cases the first few keywords and joins them with ", ".
func joinTop(items []string) string {
	if len(items) > keywordsShown {
		items = items[:keywordsShown]
	}
	caser := cases.Title(language.English)
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = caser.String(item)
	}
	return strings.Join(out, ", ")
}
