// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package models

// Valuation is the localized view model returned for one wine, one viewer
// location and one language. Optional fields are nil when the record does not
// carry enough data to compute them.
type Valuation struct {
	ID                     string        `json:"id"`
	Name                   string        `json:"name"`
	ActualPrice            *Price        `json:"actualPrice"`
	PredictedPrice         *Price        `json:"predictedPrice"`
	PriceForValue          *float64      `json:"priceForValue"`     // percent deviation of actual from predicted
	CostEffectiveness      *int          `json:"costEffectiveness"` // 1 high, 0 average, -1 low
	PriceString            string        `json:"priceString"`
	CurrentMarketPrices    []MarketPrice `json:"currentMarketPrices"`
	GlobalPrices           []GlobalPrice `json:"globalPrices"`
	GlobalPriceDescription *string       `json:"globalPriceDescription"`
	PriceDescription       string        `json:"priceDescription"`
	HistoryPrice           *HistoryPrice `json:"historyPrice,omitempty"`
	CriticReview           *CriticReview `json:"criticReview"`
	Highlights             []Highlight   `json:"highlights"`
	MetaData               ValuationMeta `json:"metaData"`
}

// ValuationMeta echoes the resolved request inputs.
type ValuationMeta struct {
	Location string `json:"location"` // alpha-2 actually used after fallback
	Currency string `json:"currency"`
	Language string `json:"language"`
}

// Price is a value in the viewer's currency.
type Price struct {
	Value    float64 `json:"value"`
	Symbol   string  `json:"symbol"`
	Currency string  `json:"currency"`
}

// MarketPrice is a market offer converted to the viewer's currency.
type MarketPrice struct {
	Value       float64    `json:"value"`
	Symbol      string     `json:"symbol"`
	Country     string     `json:"country"` // alpha-2 of the offer's market
	Currency    string     `json:"currency"`
	Market      MarketLink `json:"market"`
	BottleCount int        `json:"bottleCount"`
}

type MarketLink struct {
	Name      string `json:"name"`
	Href      string `json:"href"`
	IsAuction bool   `json:"isAuction"`
}

// GlobalPrice is one country's average offer in the viewer's currency.
type GlobalPrice struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
	Symbol   string  `json:"symbol"`
	Country  string  `json:"country"`
}

// HistoryPrice holds three downsampled series, each in ascending time order.
type HistoryPrice struct {
	Option1 []HistoryPriceOption `json:"option1"` // six months, raw
	Option2 []HistoryPriceOption `json:"option2"` // twelve months, 2-point mean
	Option3 []HistoryPriceOption `json:"option3"` // twenty-four months, 4-point mean
}

type HistoryPriceOption struct {
	Timestamp      int64    `json:"timestamp"`
	GlobalAvgValue *float64 `json:"globalAvgValue"`
	LocalAvgValue  *float64 `json:"localAvgValue"`
}

// Highlight is a short badge shown above the fold.
type Highlight struct {
	Kind  string `json:"kind"` // editorial, user_score, cost_effectiveness, critic_score
	Value string `json:"value"`
}

// Highlight kinds.
const (
	HighlightEditorial         = "editorial"
	HighlightUserScore         = "user_score"
	HighlightCostEffectiveness = "cost_effectiveness"
	HighlightCriticScore       = "critic_score"
)
