// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package pricing

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Round rounds v to the given number of decimal places, half away from zero.
func Round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// Round1 rounds to one decimal place, the precision of every displayed price.
func Round1(v float64) float64 { return Round(v, 1) }

// Round2 rounds to two decimal places.
func Round2(v float64) float64 { return Round(v, 2) }

var groupPrinter = message.NewPrinter(language.English)

// GroupThousands truncates v to an integer and groups its digits with commas,
// e.g. 1250.7 -> "1,250".
func GroupThousands(v float64) string {
	return groupPrinter.Sprintf("%d", int64(v))
}

// FormatSymbolSpaced renders "{symbol} {grouped integer}", e.g. "$ 1,250".
func FormatSymbolSpaced(symbol string, v float64) string {
	return symbol + " " + GroupThousands(v)
}

// FormatSymbolTight renders "{symbol}{value}" with one decimal, e.g. "€90.5".
func FormatSymbolTight(symbol string, v float64) string {
	return symbol + groupPrinter.Sprintf("%.1f", v)
}
