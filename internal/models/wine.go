// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package models

import "time"

// WineRecord is the stored wine document, already joined with its critic
// profiles. Only the sub-documents the valuation engine reads are modelled.
type WineRecord struct {
	ID         string                     `json:"_id" validate:"required,max=128"`
	Name       string                     `json:"name" validate:"required,max=256"`
	Vintage    string                     `json:"vintage,omitempty" validate:"omitempty,max=16"`
	Highlights []string                   `json:"highlights,omitempty"`
	Localized  map[string]LocalizedFields `json:"localized,omitempty" validate:"omitempty,dive"` // keyed by language: ko, ja

	// Score holds external ratings keyed by source (vivino, robertparker, ...).
	Score map[string]SourceRating `json:"score,omitempty"`

	GlobalMarketPrice  map[string][]MarketOffer `json:"global_market_price,omitempty" validate:"omitempty,dive,dive"`
	GlobalHistoryPrice map[string]HistorySeries `json:"global_history_price,omitempty" validate:"omitempty,dive"`
	EstimatedPrice     *EstimatedPrice          `json:"vestimated_price,omitempty"`
	CriticReviews      []CriticReviewRecord     `json:"critic_reviews,omitempty" validate:"omitempty,dive"`
}

// WineItemFields are the WineRecord collections whose elements are
// validated one by one. Valuation skips a malformed element instead of
// rejecting the record, so valuation paths validate with these excluded.
var WineItemFields = []string{"GlobalMarketPrice", "GlobalHistoryPrice", "CriticReviews"}

// LocalizedFields overrides display fields for one language.
type LocalizedFields struct {
	Name       string   `json:"name,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

// SourceRating is a single external rating.
type SourceRating struct {
	Value float64 `json:"value"`
}

// MarketOffer is one seller's listing in one country.
type MarketOffer struct {
	Value         float64       `json:"value" validate:"gte=0"`
	Currency      string        `json:"currency" validate:"required,currency"`
	OriginalPrice OriginalPrice `json:"original_price"`
	Market        MarketSource  `json:"market"`
}

// OriginalPrice is the listing as published by the seller, before any
// per-bottle normalization.
type OriginalPrice struct {
	Value       float64 `json:"value"`
	Currency    string  `json:"currency"`
	BottleCount int     `json:"bottle_count"`
	Volume      float64 `json:"volume"` // ml
}

// MarketSource identifies the seller.
type MarketSource struct {
	Name         string `json:"name"`
	URL          string `json:"url"`
	IsAuction    bool   `json:"is_auction"`
	ProductName  string `json:"product_name,omitempty"`
	ShippingInfo string `json:"shipping_info,omitempty"`
	TaxInfo      string `json:"tax_info,omitempty"`
}

// HistorySeries is one country's price history.
type HistorySeries struct {
	References []HistoryReference `json:"references,omitempty"`
	Items      []HistoryPoint     `json:"items" validate:"dive"`
}

// HistoryReference names the site a history series was collected from.
type HistoryReference struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// HistoryPoint is a single observation. Timestamp is unix seconds.
type HistoryPoint struct {
	Timestamp int64   `json:"timestamp" validate:"gt=0"`
	Currency  string  `json:"currency" validate:"required,currency"`
	Value     float64 `json:"value" validate:"gte=0"`
}

// EstimatedPrice is the predicted fair market price, always in USD.
type EstimatedPrice struct {
	Value float64 `json:"value" validate:"gte=0"`
}

// CriticReviewRecord is a review joined with its critic profile. Critic is
// nil when the join failed.
type CriticReviewRecord struct {
	Critic         *CriticRecord   `json:"critic,omitempty"`
	Score          ReviewScores    `json:"score"`
	Quality        ReviewQualities `json:"quality"`
	Keyword        ReviewKeywords  `json:"keyword"`
	TasteStructure ReviewTaste     `json:"taste_structure"`
	TastedAt       *time.Time      `json:"tasted_at,omitempty"`
	PublishedAt    *time.Time      `json:"published_at,omitempty"`
	Note           ReviewNote      `json:"note"`
	Source         ReviewSource    `json:"source"`
	IsPredicted    bool            `json:"is_predicted"`
}

// CriticRecord is the stored critic profile.
type CriticRecord struct {
	ID           string       `json:"_id" validate:"required"`
	Name         string       `json:"name" validate:"required"`
	Description  string       `json:"description,omitempty"`
	Image        CriticImage  `json:"image"`
	Organization Organization `json:"organization"`
}

// CriticImage holds the critic's profile picture.
type CriticImage struct {
	Profile Thumbnail `json:"profile"`
}

// Organization is the publication a critic writes for.
type Organization struct {
	Name string `json:"name"`
}

type ReviewScores struct {
	Actual    RawScore `json:"actual"`
	Predicted RawScore `json:"predicted"`
}

// RawScore is a score on its own scale, e.g. 17 out of 20.
type RawScore struct {
	Value  float64 `json:"value"`
	Ground float64 `json:"ground"`
}

type ReviewQualities struct {
	Actual    QualityRef `json:"actual"`
	Predicted QualityRef `json:"predicted"`
}

type QualityRef struct {
	ID string `json:"_id"`
}

type ReviewKeywords struct {
	Aromas      []string `json:"aromas,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Palates     []string `json:"palates,omitempty"`
	Pairings    []string `json:"pairings,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
}

// ReviewTaste carries 0-5 axis scores; nil means the critic did not rate it.
type ReviewTaste struct {
	Body      *float64 `json:"body,omitempty"`
	Acidity   *float64 `json:"acidity,omitempty"`
	Tannin    *float64 `json:"tannin,omitempty"`
	Sweetness *float64 `json:"sweetness,omitempty"`
}

type ReviewNote struct {
	Actual    string `json:"actual,omitempty"`
	Predicted string `json:"predicted,omitempty"`
}

type ReviewSource struct {
	URL string `json:"url"`
}

// DisplayName returns the localized name, falling back to the base name.
func (w *WineRecord) DisplayName(language string) string {
	if loc, ok := w.Localized[language]; ok && loc.Name != "" {
		return loc.Name
	}
	return w.Name
}

// DisplayHighlights returns the localized highlights, falling back to the base list.
func (w *WineRecord) DisplayHighlights(language string) []string {
	if loc, ok := w.Localized[language]; ok && len(loc.Highlights) > 0 {
		return loc.Highlights
	}
	return w.Highlights
}
