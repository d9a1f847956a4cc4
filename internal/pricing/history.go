// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package pricing

import (
	"context"
	"sort"
	"time"

	"github.com/tomtom215/vinoscope/internal/logging"
	"github.com/tomtom215/vinoscope/internal/metrics"
	"github.com/tomtom215/vinoscope/internal/models"
	"github.com/tomtom215/vinoscope/internal/reference"
)

// History windows, counted back from now.
const (
	shortWindow  = 180 * 24 * time.Hour
	mediumWindow = 360 * 24 * time.Hour
	longWindow   = 720 * 24 * time.Hour
)

// Bucketer folds per-country price history into three chart series.
type Bucketer struct {
	reg  *reference.Registry
	conv *Converter
}

// NewBucketer returns a bucketer bound to reg.
func NewBucketer(reg *reference.Registry) *Bucketer {
	return &Bucketer{reg: reg, conv: NewConverter(reg)}
}

// bucket accumulates every observation sharing one timestamp.
type bucket struct {
	timestamp int64
	total     float64
	count     int
	local     float64
	observed  bool
}

func (b *bucket) global() float64 { return Round1(b.total / float64(b.count)) }

func (b *bucket) localOrGlobal() float64 {
	if b.observed {
		return b.local
	}
	return b.global()
}

// Bucket groups history points by timestamp, converts them into the viewer's
// currency and downsamples them:
//
//   - Option1 holds every point of the last 180 days.
//   - Option2 holds, for the last 360 days, the mean of the two newer
//     neighbours of each point from the third newest on.
//   - Option3 holds, for the last 720 days, the mean of the four newer
//     neighbours of every third point from the seventh newest on.
//
// All three series are returned oldest first. Empty history returns nil.
func (b *Bucketer) Bucket(ctx context.Context, location string, history map[string]models.HistorySeries, now time.Time) *models.HistoryPrice {
	buckets := b.group(ctx, location, history)
	if len(buckets) == 0 {
		return nil
	}

	cutoff1 := now.Add(-shortWindow).Unix()
	cutoff2 := now.Add(-mediumWindow).Unix()
	cutoff3 := now.Add(-longWindow).Unix()

	out := &models.HistoryPrice{
		Option1: []models.HistoryPriceOption{},
		Option2: []models.HistoryPriceOption{},
		Option3: []models.HistoryPriceOption{},
	}
	for i, bk := range buckets {
		if bk.timestamp >= cutoff1 {
			opt := models.HistoryPriceOption{Timestamp: bk.timestamp, GlobalAvgValue: ptr(bk.global())}
			if bk.observed {
				opt.LocalAvgValue = ptr(bk.local)
			}
			out.Option1 = append(out.Option1, opt)
		}
		if i >= 2 && bk.timestamp >= cutoff2 {
			if opt, ok := meanOption(bk.timestamp, buckets[i-2:i]); ok {
				out.Option2 = append(out.Option2, opt)
			}
		}
		if i >= 4 && i%3 == 0 && bk.timestamp >= cutoff3 {
			if opt, ok := meanOption(bk.timestamp, buckets[i-4:i]); ok {
				out.Option3 = append(out.Option3, opt)
			}
		}
	}

	reverse(out.Option1)
	reverse(out.Option2)
	reverse(out.Option3)
	return out
}

// group returns one bucket per distinct timestamp, newest first.
func (b *Bucketer) group(ctx context.Context, location string, history map[string]models.HistorySeries) []*bucket {
	loc := b.reg.ResolveLocation(location)
	byTS := make(map[int64]*bucket)

	for _, key := range sortedKeys(history) {
		local := loc.SameCountry(b.reg, key)
		for _, p := range history[key].Items {
			if p.Timestamp <= 0 || p.Value < 0 {
				metrics.RecordSkipped(metrics.SkipHistoryPoint, "invalid_point")
				logging.Ctx(ctx).Debug().Str("country", key).Int64("timestamp", p.Timestamp).Float64("value", p.Value).Msg("history point skipped")
				continue
			}
			value, err := b.conv.Convert(p.Currency, loc.CurrencyCode, p.Value)
			if err != nil {
				metrics.RecordSkipped(metrics.SkipHistoryPoint, "unknown_currency")
				logging.Ctx(ctx).Debug().Err(err).Str("country", key).Int64("timestamp", p.Timestamp).Msg("history point skipped")
				continue
			}
			bk, ok := byTS[p.Timestamp]
			if !ok {
				bk = &bucket{timestamp: p.Timestamp}
				byTS[p.Timestamp] = bk
			}
			bk.total += value
			bk.count++
			if local {
				bk.local = Round1(value)
				bk.observed = true
			}
		}
	}

	out := make([]*bucket, 0, len(byTS))
	for _, bk := range byTS {
		out = append(out, bk)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].timestamp > out[j].timestamp })
	return out
}

// meanOption averages the window. A zero mean is reported as nil and the
// option is dropped when both means are nil.
func meanOption(ts int64, window []*bucket) (models.HistoryPriceOption, bool) {
	var global, local float64
	for _, bk := range window {
		global += bk.global()
		local += bk.localOrGlobal()
	}
	n := float64(len(window))
	opt := models.HistoryPriceOption{
		Timestamp:      ts,
		GlobalAvgValue: nonZero(Round1(global / n)),
		LocalAvgValue:  nonZero(Round1(local / n)),
	}
	return opt, opt.GlobalAvgValue != nil || opt.LocalAvgValue != nil
}

func nonZero(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}

func ptr(v float64) *float64 { return &v }

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
