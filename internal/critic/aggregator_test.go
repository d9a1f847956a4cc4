// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package critic

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/vinoscope/internal/metrics"
	"github.com/tomtom215/vinoscope/internal/models"
	"github.com/tomtom215/vinoscope/internal/narrative"
)

func fptr(v float64) *float64 { return &v }

func critic(id, name string) *models.CriticRecord {
	return &models.CriticRecord{
		ID:           id,
		Name:         name,
		Organization: models.Organization{Name: name + " Media"},
		Image: models.CriticImage{Profile: models.Thumbnail{
			Src: "https://img.example/" + id + ".png", Alt: name, Size: models.ThumbnailSize{Width: 48, Height: 48},
		}},
	}
}

func review(c *models.CriticRecord, value, ground float64, quality string) models.CriticReviewRecord {
	return models.CriticReviewRecord{
		Critic: c,
		Score: models.ReviewScores{
			Actual:    models.RawScore{Value: value, Ground: ground},
			Predicted: models.RawScore{Value: value, Ground: ground},
		},
		Quality: models.ReviewQualities{
			Actual:    models.QualityRef{ID: quality},
			Predicted: models.QualityRef{ID: quality},
		},
		Source: models.ReviewSource{URL: "https://reviews.example/" + c.ID},
	}
}

func voteCount(votes []models.Vote, q Quality) int {
	for _, v := range votes {
		if v.ID == string(q) {
			return v.Count
		}
	}
	return -1
}

func TestAggregateTwoOutstandingReviews(t *testing.T) {
	agg := NewAggregator(nil)
	reviews := []models.CriticReviewRecord{
		review(critic("jancis", "Jancis Robinson"), 90, 100, "outstanding"),
		review(critic("decanter", "Decanter"), 90, 100, "outstanding"),
	}

	got := agg.Aggregate(context.Background(), "Opus One", reviews, narrative.English)
	if got == nil {
		t.Fatal("Aggregate() = nil")
	}
	if v := got.Total.ActualScore.Value; v == nil || *v != 90.0 {
		t.Errorf("actualScore = %v, want 90.0", v)
	}
	if got.Total.ActualScore.Ground != 100 {
		t.Errorf("ground = %v, want 100", got.Total.ActualScore.Ground)
	}
	if c := voteCount(got.Total.ActualVotes, Outstanding); c != 2 {
		t.Errorf("outstanding votes = %d, want 2", c)
	}
	if got.Total.ReviewCount != 2 {
		t.Errorf("reviewCount = %d, want 2", got.Total.ReviewCount)
	}
	if got.Total.Description == nil || !strings.HasPrefix(*got.Total.Description, "This wine has received a high rating of 90") {
		t.Errorf("description = %v", got.Total.Description)
	}
}

func TestAggregateVoteSums(t *testing.T) {
	agg := NewAggregator(nil)
	reviews := []models.CriticReviewRecord{
		review(critic("a", "A"), 95, 100, "extraordinary"),
		review(critic("b", "B"), 17, 20, "good"),
		review(critic("c", "C"), 88, 100, "good"),
		review(critic("d", "D"), 70, 100, "not-recommended"),
		review(critic("e", "E"), 80, 100, "bogus"),
	}

	got := agg.Aggregate(context.Background(), "X", reviews, narrative.English)

	if len(got.Total.ActualVotes) != len(Qualities) || len(got.Total.PredictedVotes) != len(Qualities) {
		t.Fatalf("expected a vote per quality, got %d and %d", len(got.Total.ActualVotes), len(got.Total.PredictedVotes))
	}

	sum := 0
	for i, v := range got.Total.ActualVotes {
		if v.ID != string(Qualities[i]) {
			t.Errorf("vote %d id = %q, want %q", i, v.ID, Qualities[i])
		}
		sum += v.Count
	}
	// The unknown quality is not counted.
	if sum != 4 {
		t.Errorf("vote sum = %d, want 4", sum)
	}
	if got.Total.ActualVotes[4].Name != "Not Recommended" {
		t.Errorf("name = %q, want Not Recommended", got.Total.ActualVotes[4].Name)
	}

	// (95 + 85 + 88 + 70 + 80) / 5
	if v := got.Total.ActualScore.Value; v == nil || *v != 83.6 {
		t.Errorf("actualScore = %v, want 83.6", v)
	}
}

func TestAggregateSkipsReviewsWithoutCritic(t *testing.T) {
	agg := NewAggregator(nil)
	skipped := metrics.EngineItemsSkipped.WithLabelValues(metrics.SkipReview, "missing_critic")
	before := testutil.ToFloat64(skipped)

	orphan := review(critic("x", "X"), 50, 100, "average")
	orphan.Critic = nil

	if got := agg.Aggregate(context.Background(), "X", []models.CriticReviewRecord{orphan}, narrative.English); got != nil {
		t.Errorf("expected nil consensus, got %+v", got)
	}
	if got := agg.Aggregate(context.Background(), "X", nil, narrative.English); got != nil {
		t.Errorf("expected nil for no reviews, got %+v", got)
	}

	got := agg.Aggregate(context.Background(), "X", []models.CriticReviewRecord{
		orphan,
		review(critic("a", "A"), 92, 100, "outstanding"),
	}, narrative.English)
	if got == nil || got.Total.ReviewCount != 1 {
		t.Fatalf("expected one attributed review, got %+v", got)
	}
	if v := got.Total.ActualScore.Value; v == nil || *v != 92 {
		t.Errorf("orphan score leaked into the mean: %v", v)
	}
	if d := testutil.ToFloat64(skipped) - before; d != 2 {
		t.Errorf("missing critic counter moved by %v, want 2", d)
	}
}

func TestAggregateSkipsInvalidCriticProfile(t *testing.T) {
	agg := NewAggregator(nil)
	skipped := metrics.EngineItemsSkipped.WithLabelValues(metrics.SkipReview, "invalid_critic")
	before := testutil.ToFloat64(skipped)

	nameless := review(critic("b", ""), 50, 100, "average")

	got := agg.Aggregate(context.Background(), "X", []models.CriticReviewRecord{
		review(critic("a", "A"), 92, 100, "outstanding"),
		nameless,
	}, narrative.English)
	if got == nil || got.Total.ReviewCount != 1 {
		t.Fatalf("expected one attributed review, got %+v", got)
	}
	if v := got.Total.ActualScore.Value; v == nil || *v != 92 {
		t.Errorf("actualScore = %v, want 92 from the valid review only", v)
	}
	if n := voteCount(got.Total.ActualVotes, Average); n > 0 {
		t.Errorf("average votes = %d, want none from the skipped review", n)
	}
	if n := voteCount(got.Total.ActualVotes, Outstanding); n != 1 {
		t.Errorf("outstanding votes = %d, want 1", n)
	}
	if _, ok := got.DetailItem["b"]; ok {
		t.Error("skipped critic b has a detail entry")
	}
	if d := testutil.ToFloat64(skipped) - before; d != 1 {
		t.Errorf("invalid critic counter moved by %v, want 1", d)
	}
}

func TestAggregateMissingQualityStillCountsScore(t *testing.T) {
	agg := NewAggregator(nil)
	r := review(critic("a", "A"), 80, 100, "")

	got := agg.Aggregate(context.Background(), "X", []models.CriticReviewRecord{
		r,
		review(critic("b", "B"), 90, 100, "good"),
	}, narrative.English)

	if v := got.Total.ActualScore.Value; v == nil || *v != 85 {
		t.Errorf("actualScore = %v, want 85", v)
	}
	if got.Total.ReviewCount != 1 {
		t.Errorf("review without quality should not reach the detail map, count = %d", got.Total.ReviewCount)
	}
	if _, ok := got.DetailItem["a"]; ok {
		t.Error("critic a should have no detail entry")
	}
}

func TestAggregateDetailAndKeywords(t *testing.T) {
	agg := NewAggregator(nil)
	tasted := time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)
	published := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	first := review(critic("a", "Alice"), 93, 100, "outstanding")
	first.Keyword = models.ReviewKeywords{
		Aromas:   []string{"black_cherry", "cedar", "cassis"},
		Colors:   []string{"deep_ruby"},
		Palates:  []string{"dark_fruit"},
		Pairings: []string{"lamb"},
	}
	first.TasteStructure = models.ReviewTaste{Body: fptr(4.5), Acidity: fptr(3), Tannin: fptr(2), Sweetness: fptr(1)}
	first.TastedAt = &tasted
	first.Note = models.ReviewNote{Predicted: "predicted note"}

	second := review(critic("b", "Bob"), 91, 100, "outstanding")
	second.Keyword = models.ReviewKeywords{
		Aromas:   []string{"cassis", "tobacco", "cassis"},
		Colors:   []string{"garnet"},
		Palates:  []string{"dark_fruit"},
		Pairings: []string{"beef"},
	}
	second.TasteStructure = models.ReviewTaste{Body: fptr(3.5)}
	second.PublishedAt = &published
	second.Note = models.ReviewNote{Actual: "actual note", Predicted: "ignored"}

	got := agg.Aggregate(context.Background(), "Opus One", []models.CriticReviewRecord{first, second}, narrative.English)
	if got == nil {
		t.Fatal("Aggregate() = nil")
	}

	wantAromas := []string{"cassis", "black cherry", "cedar", "tobacco"}
	if !reflect.DeepEqual(got.Total.Aromas, wantAromas) {
		t.Errorf("aromas = %v, want %v", got.Total.Aromas, wantAromas)
	}
	if !reflect.DeepEqual(got.Total.Palates, []string{"dark fruit"}) {
		t.Errorf("palates = %v", got.Total.Palates)
	}

	// Body mean (4.5 + 3.5) / 2 = 4.0
	body := got.Total.TasteStructure.Body
	if body == nil || body.Name != "Full Bodied" || body.Score != 4.0 {
		t.Errorf("body = %+v, want Full Bodied at 4.0", body)
	}
	if sw := got.Total.TasteStructure.Sweetness; sw == nil || sw.Name != "Dry" {
		t.Errorf("sweetness = %+v, want Dry", sw)
	}

	a := got.DetailItem["a"]
	if a.Note != "predicted note" || a.TastedAt == nil || *a.TastedAt != "Mar 07, 2025" {
		t.Errorf("detail a = note %q tastedAt %v", a.Note, a.TastedAt)
	}
	if a.Profile.Organization != "Alice Media" || a.Href != "https://reviews.example/a" {
		t.Errorf("detail a profile = %+v href %q", a.Profile, a.Href)
	}
	if a.ActualQuality.Name != "Outstanding" {
		t.Errorf("actual quality = %+v", a.ActualQuality)
	}
	if a.TasteStructure.Tannin == nil || a.TasteStructure.Tannin.Name != "Low Tannin" {
		t.Errorf("tannin = %+v, want Low Tannin", a.TasteStructure.Tannin)
	}

	b := got.DetailItem["b"]
	if b.Note != "actual note" || b.TastedAt == nil || *b.TastedAt != "Apr 01, 2025" {
		t.Errorf("detail b = note %q tastedAt %v", b.Note, b.TastedAt)
	}

	if len(got.DetailTypes) != 2 || got.DetailTypes[0].ID != "a" || got.DetailTypes[1].ID != "b" {
		t.Errorf("detailTypes = %+v", got.DetailTypes)
	}

	want := "Opus One is characterized by complex aromas of Cassis, Black Cherry, Cedar"
	if got.Total.Description == nil || !strings.HasPrefix(*got.Total.Description, want) {
		t.Errorf("description = %v, want prefix %q", got.Total.Description, want)
	}
}

func TestAggregateLastReviewPerCriticWins(t *testing.T) {
	agg := NewAggregator(nil)
	c := critic("a", "Alice")
	older := review(c, 85, 100, "good")
	older.Note.Actual = "first"
	newer := review(c, 95, 100, "extraordinary")
	newer.Note.Actual = "second"

	got := agg.Aggregate(context.Background(), "X", []models.CriticReviewRecord{older, newer}, narrative.English)
	if got.Total.ReviewCount != 1 || len(got.DetailTypes) != 1 {
		t.Errorf("expected one critic entry, got %d", got.Total.ReviewCount)
	}
	if got.DetailItem["a"].Note != "second" {
		t.Errorf("note = %q, want second", got.DetailItem["a"].Note)
	}
	// Both reviews still count toward the totals.
	if v := got.Total.ActualScore.Value; v == nil || *v != 90 {
		t.Errorf("actualScore = %v, want 90", v)
	}
}

func TestAggregateLocalized(t *testing.T) {
	agg := NewAggregator(nil)
	r := review(critic("a", "A"), 92, 100, "outstanding")
	r.TasteStructure.Body = fptr(2)

	got := agg.Aggregate(context.Background(), "X", []models.CriticReviewRecord{r}, narrative.Korean)
	if body := got.Total.TasteStructure.Body; body == nil || body.Name != "가벼운 바디감" {
		t.Errorf("body = %+v", body)
	}
	if d := got.Total.Description; d == nil || !strings.HasPrefix(*d, "이 와인은 전문가들로부터 높은 평점인 92점을") {
		t.Errorf("description = %v", d)
	}
}

func TestScore100(t *testing.T) {
	tests := []struct {
		in   models.RawScore
		want *float64
	}{
		{models.RawScore{Value: 17, Ground: 20}, fptr(85)},
		{models.RawScore{Value: 4.2, Ground: 5}, fptr(84)},
		{models.RawScore{Value: 2, Ground: 3}, fptr(66.67)},
		{models.RawScore{Value: 0, Ground: 100}, nil},
		{models.RawScore{Value: 90, Ground: 0}, nil},
	}

	for _, tt := range tests {
		got := Score100(tt.in)
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("Score100(%+v) = %v, want nil", tt.in, *got)
		case tt.want != nil && (got == nil || *got != *tt.want):
			t.Errorf("Score100(%+v) = %v, want %v", tt.in, got, *tt.want)
		}
	}
}

func TestChartTiers(t *testing.T) {
	tests := []struct {
		axis  Axis
		value float64
		want  string
	}{
		{Body, 4, "Full Bodied"},
		{Body, 3.9, "Medium Bodied"},
		{Body, 2.5, "Medium Bodied"},
		{Body, 2.4, "Light Bodied"},
		{Acidity, 4.2, "High Acidity"},
		{Acidity, 1, "Low Acidity"},
		{Tannin, 2.5, "Medium Tannin"},
		{Sweetness, 4, "Sweet"},
		{Sweetness, 3.5, "Semi-Sweet"},
		{Sweetness, 2, "Off-Dry"},
		{Sweetness, 1.9, "Dry"},
	}

	for _, tt := range tests {
		t.Run(tt.axis.String()+"/"+tt.want, func(t *testing.T) {
			got := Chart(tt.axis, fptr(tt.value), narrative.English)
			if got == nil || got.Name != tt.want {
				t.Errorf("Chart(%s, %v) = %+v, want %q", tt.axis, tt.value, got, tt.want)
			}
			if got != nil && got.Score != tt.value {
				t.Errorf("score = %v, want raw %v", got.Score, tt.value)
			}
		})
	}

	if got := Chart(Body, nil, narrative.English); got != nil {
		t.Errorf("nil value gave %+v", got)
	}
	if got := Chart(Body, fptr(0), narrative.English); got != nil {
		t.Errorf("zero value gave %+v", got)
	}
}

func TestQuality(t *testing.T) {
	if q, ok := ParseQuality("not-recommended"); !ok || q.Name() != "Not Recommended" {
		t.Errorf("ParseQuality(not-recommended) = %q, %v", q, ok)
	}
	if _, ok := ParseQuality("superb"); ok {
		t.Error("unknown quality accepted")
	}
}
