// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/vinoscope/internal/models"
	"github.com/tomtom215/vinoscope/internal/narrative"
	"github.com/tomtom215/vinoscope/internal/valuation"
)

type valuateOptions struct {
	recordPath string
	location   string
	language   string
	asJSON     bool
}

func newValuateCommand(root *rootOptions) *cobra.Command {
	opts := &valuateOptions{}

	cmd := &cobra.Command{
		Use:   "valuate",
		Short: "Value a wine record file for a location and language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := readRecord(opts.recordPath, false)
			if err != nil {
				return err
			}
			reg, err := loadRegistry(root.referencePath)
			if err != nil {
				return err
			}

			lang, ok := narrative.LookupLanguage(opts.language)
			if !ok {
				return fmt.Errorf("unsupported language %q (want en, ko or ja)", opts.language)
			}

			engine := valuation.New(reg)
			v, err := engine.Evaluate(cmd.Context(), record, strings.ToUpper(opts.location), lang)
			if err != nil {
				return err
			}

			if opts.asJSON {
				return writeJSON(cmd, v)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), renderValuation(v))
			return err
		},
	}

	cmd.Flags().StringVar(&opts.recordPath, "record", "", "Wine record JSON file")
	cmd.Flags().StringVar(&opts.location, "location", "US", "Viewer location (ISO 3166-1 alpha-2)")
	cmd.Flags().StringVar(&opts.language, "language", "en", "Narrative language: en, ko, ja")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the valuation as JSON")

	return cmd
}

func renderValuation(v *models.Valuation) string {
	var b strings.Builder

	summary := [][]string{
		{"Wine", v.Name},
		{"Location", v.MetaData.Location + " (" + v.MetaData.Currency + ")"},
		{"Actual price", formatPrice(v.ActualPrice)},
		{"Predicted price", formatPrice(v.PredictedPrice)},
		{"Price for value", formatPercent(v.PriceForValue)},
		{"Cost-effectiveness", costEffectivenessLabel(v.CostEffectiveness)},
	}
	if v.CriticReview != nil {
		total := v.CriticReview.Total
		summary = append(summary,
			[]string{"Critic score", formatScore(total.ActualScore)},
			[]string{"Predicted score", formatScore(total.PredictedScore)},
			[]string{"Reviews", strconv.Itoa(total.ReviewCount)},
		)
	}
	b.WriteString(renderTable("Valuation", []string{"Field", "Value"}, summary, nil))
	b.WriteString("\n")

	if v.PriceDescription != "" {
		b.WriteString(v.PriceDescription)
		b.WriteString("\n")
	}
	if v.GlobalPriceDescription != nil {
		b.WriteString(*v.GlobalPriceDescription)
		b.WriteString("\n")
	}

	if len(v.CurrentMarketPrices) > 0 {
		rows := make([][]string, 0, len(v.CurrentMarketPrices))
		for _, p := range v.CurrentMarketPrices {
			rows = append(rows, []string{
				p.Market.Name,
				p.Country,
				p.Symbol + strconv.FormatFloat(p.Value, 'f', -1, 64),
				strconv.Itoa(p.BottleCount),
			})
		}
		b.WriteString(renderTable("Local market", []string{"Market", "Country", "Price", "Bottles"}, rows,
			[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight}))
		b.WriteString("\n")
	}

	if len(v.GlobalPrices) > 0 {
		rows := make([][]string, 0, len(v.GlobalPrices))
		for _, p := range v.GlobalPrices {
			rows = append(rows, []string{p.Country, p.Symbol + strconv.FormatFloat(p.Value, 'f', -1, 64)})
		}
		b.WriteString(renderTable("Global average", []string{"Country", "Price"}, rows,
			[]columnAlignment{alignLeft, alignRight}))
		b.WriteString("\n")
	}

	if v.CriticReview != nil && len(v.CriticReview.DetailItem) > 0 {
		ids := make([]string, 0, len(v.CriticReview.DetailItem))
		for id := range v.CriticReview.DetailItem {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		rows := make([][]string, 0, len(ids))
		for _, id := range ids {
			d := v.CriticReview.DetailItem[id]
			score := formatScore(d.ActualScore)
			if d.IsPredicted {
				score = formatScore(d.PredictedScore) + " (predicted)"
			}
			rows = append(rows, []string{d.Profile.Name, score})
		}
		b.WriteString(renderTable("Critics", []string{"Critic", "Score"}, rows,
			[]columnAlignment{alignLeft, alignRight}))
		b.WriteString("\n")
	}

	if len(v.Highlights) > 0 {
		rows := make([][]string, 0, len(v.Highlights))
		for _, h := range v.Highlights {
			rows = append(rows, []string{h.Kind, h.Value})
		}
		b.WriteString(renderTable("Highlights", []string{"Kind", "Text"}, rows, nil))
		b.WriteString("\n")
	}

	return b.String()
}
