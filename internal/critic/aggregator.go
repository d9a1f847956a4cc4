// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

// Package critic folds a wine's critic reviews into a single consensus:
// normalized scores, quality votes, keyword frequencies, taste structure and
// a per-critic breakdown.
package critic

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/vinoscope/internal/logging"
	"github.com/tomtom215/vinoscope/internal/metrics"
	"github.com/tomtom215/vinoscope/internal/models"
	"github.com/tomtom215/vinoscope/internal/narrative"
	"github.com/tomtom215/vinoscope/internal/pricing"
	"github.com/tomtom215/vinoscope/internal/validation"
)

const (
	// ScoreGround is the scale every consensus score is expressed on.
	ScoreGround = 100

	// KeywordLimit caps each keyword list, per review and in the totals.
	KeywordLimit = 5

	tastedAtLayout = "Jan 02, 2006"
)

var errMissingCritic = errors.New("review has no critic")

// Aggregator builds critic consensus views.
type Aggregator struct {
	composer *narrative.Composer
}

// NewAggregator returns an aggregator that renders descriptions with composer.
func NewAggregator(composer *narrative.Composer) *Aggregator {
	if composer == nil {
		composer = narrative.NewComposer()
	}
	return &Aggregator{composer: composer}
}

// mean is a running sum and count.
type mean struct {
	sum   float64
	count int
}

func (m *mean) add(v *float64) {
	if v == nil || *v == 0 {
		return
	}
	m.sum += *v
	m.count++
}

func (m *mean) value() *float64 {
	if m.count == 0 {
		return nil
	}
	v := m.sum / float64(m.count)
	return &v
}

// tally accumulates everything a consensus needs across reviews.
type tally struct {
	actualScore    mean
	predictedScore mean

	actualVotes    map[Quality]int
	predictedVotes map[Quality]int

	aromas      *keywordCounter
	colors      *keywordCounter
	palates     *keywordCounter
	pairings    *keywordCounter
	ingredients *keywordCounter

	taste map[Axis]*mean

	details     map[string]models.DetailCriticReview
	criticOrder []string
	attributed  int
}

func newTally() *tally {
	t := &tally{
		actualVotes:    make(map[Quality]int, len(Qualities)),
		predictedVotes: make(map[Quality]int, len(Qualities)),
		aromas:         newKeywordCounter(),
		colors:         newKeywordCounter(),
		palates:        newKeywordCounter(),
		pairings:       newKeywordCounter(),
		ingredients:    newKeywordCounter(),
		taste:          make(map[Axis]*mean, 4),
		details:        make(map[string]models.DetailCriticReview),
	}
	for _, axis := range []Axis{Body, Acidity, Tannin, Sweetness} {
		t.taste[axis] = &mean{}
	}
	return t
}

// Aggregate builds the consensus for the wine called name. Reviews without a
// critic are skipped. Nil when no review can be attributed to a critic.
func (a *Aggregator) Aggregate(ctx context.Context, name string, reviews []models.CriticReviewRecord, lang narrative.Language) *models.CriticReview {
	if len(reviews) == 0 {
		return nil
	}
	log := logging.Ctx(ctx)

	t := newTally()
	for i := range reviews {
		if err := t.add(&reviews[i], lang); err != nil {
			reason := "invalid_critic"
			if errors.Is(err, errMissingCritic) {
				reason = "missing_critic"
			}
			metrics.RecordSkipped(metrics.SkipReview, reason)
			log.Debug().Err(err).Int("review", i).Msg("critic review skipped")
		}
	}
	if t.attributed == 0 {
		return nil
	}

	return a.build(t, name, lang)
}

// add folds one review into the tally.
func (t *tally) add(review *models.CriticReviewRecord, lang narrative.Language) error {
	if review.Critic == nil {
		return errMissingCritic
	}
	if verr := validation.ValidateStruct(review.Critic); verr != nil {
		return fmt.Errorf("critic profile: %w", verr)
	}
	t.attributed++

	actual := Score100(review.Score.Actual)
	predicted := Score100(review.Score.Predicted)
	t.actualScore.add(actual)
	t.predictedScore.add(predicted)

	actualID := review.Quality.Actual.ID
	predictedID := review.Quality.Predicted.ID
	if actualID == "" || predictedID == "" {
		return nil
	}

	if q, ok := ParseQuality(actualID); ok {
		t.actualVotes[q]++
	}
	if q, ok := ParseQuality(predictedID); ok {
		t.predictedVotes[q]++
	}

	kw := review.Keyword
	t.aromas.Add(kw.Aromas)
	t.colors.Add(kw.Colors)
	t.palates.Add(kw.Palates)
	t.pairings.Add(kw.Pairings)
	t.ingredients.Add(kw.Ingredients)

	structure := Structure(review.TasteStructure, lang)
	t.addTaste(Body, structure.Body)
	t.addTaste(Acidity, structure.Acidity)
	t.addTaste(Tannin, structure.Tannin)
	t.addTaste(Sweetness, structure.Sweetness)

	critic := review.Critic
	if _, seen := t.details[critic.ID]; !seen {
		t.criticOrder = append(t.criticOrder, critic.ID)
	}
	t.details[critic.ID] = detail(review, structure)
	return nil
}

func (t *tally) addTaste(axis Axis, chart *models.TasteChart) {
	if chart == nil {
		return
	}
	t.taste[axis].add(&chart.Score)
}

func detail(review *models.CriticReviewRecord, structure models.TasteStructure) models.DetailCriticReview {
	critic := review.Critic

	note := review.Note.Actual
	if note == "" {
		note = review.Note.Predicted
	}

	return models.DetailCriticReview{
		Profile: models.CriticProfile{
			ID:           critic.ID,
			Name:         critic.Name,
			Thumbnail:    critic.Image.Profile,
			Organization: critic.Organization.Name,
			Description:  critic.Description,
		},
		Href:             review.Source.URL,
		Note:             note,
		IsPredicted:      review.IsPredicted,
		ActualScore:      rawScore(review.Score.Actual),
		PredictedScore:   rawScore(review.Score.Predicted),
		ActualQuality:    element(review.Quality.Actual.ID),
		PredictedQuality: element(review.Quality.Predicted.ID),
		TasteStructure:   structure,
		TastedAt:         tastedAt(review),
		Colors:           firstN(review.Keyword.Colors, KeywordLimit),
		Aromas:           firstN(review.Keyword.Aromas, KeywordLimit),
		Palates:          firstN(review.Keyword.Palates, KeywordLimit),
		Pairings:         firstN(review.Keyword.Pairings, KeywordLimit),
		Ingredients:      firstN(review.Keyword.Ingredients, KeywordLimit),
	}
}

func (a *Aggregator) build(t *tally, name string, lang narrative.Language) *models.CriticReview {
	chips := make([]models.CriticChip, 0, len(t.criticOrder))
	for _, id := range t.criticOrder {
		d := t.details[id]
		chips = append(chips, models.CriticChip{ID: id, Name: d.Profile.Name, Thumbnail: d.Profile.Thumbnail})
	}

	actual := roundedMean(&t.actualScore)
	aromas := t.aromas.Top(KeywordLimit)
	colors := t.colors.Top(KeywordLimit)
	palates := t.palates.Top(KeywordLimit)
	pairings := t.pairings.Top(KeywordLimit)

	total := models.TotalCriticReview{
		Description: a.composer.CriticDescription(narrative.CriticInput{
			Name:     name,
			Score:    t.actualScore.value(),
			Aromas:   aromas,
			Palates:  palates,
			Colors:   colors,
			Pairings: pairings,
		}, lang),
		ReviewCount:    len(chips),
		ActualScore:    models.Score{Value: actual, Ground: ScoreGround},
		PredictedScore: models.Score{Value: roundedMean(&t.predictedScore), Ground: ScoreGround},
		TasteStructure: models.TasteStructure{
			Body:      Chart(Body, t.taste[Body].value(), lang),
			Acidity:   Chart(Acidity, t.taste[Acidity].value(), lang),
			Tannin:    Chart(Tannin, t.taste[Tannin].value(), lang),
			Sweetness: Chart(Sweetness, t.taste[Sweetness].value(), lang),
		},
		ActualVotes:    votes(t.actualVotes),
		PredictedVotes: votes(t.predictedVotes),
		Colors:         colors,
		Aromas:         aromas,
		Palates:        palates,
		Pairings:       pairings,
		Ingredients:    t.ingredients.Top(KeywordLimit),
	}

	return &models.CriticReview{
		Total:       total,
		DetailItem:  t.details,
		DetailTypes: chips,
	}
}

// Score100 rescales a raw score to 100 points, two decimals. Nil when the
// value or the scale is zero.
func Score100(s models.RawScore) *float64 {
	if s.Value == 0 || s.Ground == 0 {
		return nil
	}
	v := pricing.Round2(s.Value / s.Ground * ScoreGround)
	return &v
}

func roundedMean(m *mean) *float64 {
	v := m.value()
	if v == nil {
		return nil
	}
	r := pricing.Round1(*v)
	return &r
}

func rawScore(s models.RawScore) models.Score {
	out := models.Score{Ground: s.Ground}
	if s.Value != 0 {
		v := s.Value
		out.Value = &v
	}
	return out
}

func element(id string) models.Element {
	q, _ := ParseQuality(id)
	return models.Element{ID: id, Name: q.Name()}
}

func votes(counts map[Quality]int) []models.Vote {
	out := make([]models.Vote, 0, len(Qualities))
	for _, q := range Qualities {
		out = append(out, models.Vote{ID: string(q), Name: q.Name(), Count: counts[q]})
	}
	return out
}

func tastedAt(review *models.CriticReviewRecord) *string {
	at := review.TastedAt
	if at == nil || at.IsZero() {
		at = review.PublishedAt
	}
	if at == nil || at.IsZero() {
		return nil
	}
	s := at.Format(tastedAtLayout)
	return &s
}
