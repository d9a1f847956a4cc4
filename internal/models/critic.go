// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package models

// CriticReview is the critic consensus for one wine.
type CriticReview struct {
	Total       TotalCriticReview             `json:"total"`
	DetailItem  map[string]DetailCriticReview `json:"detailItem"` // keyed by critic id
	DetailTypes []CriticChip                  `json:"detailTypes"`
}

// TotalCriticReview aggregates every attributable review.
type TotalCriticReview struct {
	Description    *string        `json:"description"` // nil without an actual score
	ReviewCount    int            `json:"reviewCount"`
	ActualScore    Score          `json:"actualScore"`
	PredictedScore Score          `json:"predictedScore"`
	TasteStructure TasteStructure `json:"tasteStructure"`
	ActualVotes    []Vote         `json:"actualVotes"`
	PredictedVotes []Vote         `json:"predictedVotes"`
	Colors         []string       `json:"colors"`
	Aromas         []string       `json:"aromas"`
	Palates        []string       `json:"palates"`
	Pairings       []string       `json:"pairings"`
	Ingredients    []string       `json:"ingredients"`
}

// DetailCriticReview is the last review seen for one critic.
type DetailCriticReview struct {
	Profile          CriticProfile  `json:"profile"`
	Href             string         `json:"href"`
	Note             string         `json:"note"`
	IsPredicted      bool           `json:"isPredicted"`
	ActualScore      Score          `json:"actualScore"`
	PredictedScore   Score          `json:"predictedScore"`
	ActualQuality    Element        `json:"actualQuality"`
	PredictedQuality Element        `json:"predictedQuality"`
	TasteStructure   TasteStructure `json:"tasteStructure"`
	TastedAt         *string        `json:"tastedAt"`
	Colors           []string       `json:"colors"`
	Aromas           []string       `json:"aromas"`
	Palates          []string       `json:"palates"`
	Pairings         []string       `json:"pairings"`
	Ingredients      []string       `json:"ingredients"`
}

// Score is a value on a known scale. Value is nil when there is no data.
type Score struct {
	Value  *float64 `json:"value"`
	Ground float64  `json:"ground"`
}

type Element struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Vote counts how many reviews assigned a quality category.
type Vote struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TasteChart is one tiered taste axis.
type TasteChart struct {
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	Description string  `json:"description"`
}

type TasteStructure struct {
	Body      *TasteChart `json:"body"`
	Tannin    *TasteChart `json:"tannin"`
	Acidity   *TasteChart `json:"acidity"`
	Sweetness *TasteChart `json:"sweetness"`
}

type CriticProfile struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Thumbnail    Thumbnail `json:"thumbnail"`
	Organization string    `json:"organization"`
	Description  string    `json:"description,omitempty"`
}

// CriticChip is the compact critic entry used for UI chips.
type CriticChip struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Thumbnail Thumbnail `json:"thumbnail"`
}

type Thumbnail struct {
	Src  string        `json:"src"`
	Alt  string        `json:"alt"`
	Size ThumbnailSize `json:"size"`
}

type ThumbnailSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}
