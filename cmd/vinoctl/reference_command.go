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
)

func newReferenceCommand(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "reference",
		Short: "List the currencies and countries of a reference dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(root.referencePath)
			if err != nil {
				return err
			}
			currencies := reg.Currencies()
			countries := reg.Countries()

			if asJSON {
				return writeJSON(cmd, models.ReferenceDataset{Currencies: currencies, Countries: countries})
			}

			currencyRows := make([][]string, 0, len(currencies))
			for _, c := range currencies {
				currencyRows = append(currencyRows, []string{
					c.Code,
					c.Symbol,
					strconv.FormatFloat(c.ToUSD, 'g', 6, 64),
					strconv.FormatFloat(c.FromUSD, 'g', 6, 64),
				})
			}
			countryRows := make([][]string, 0, len(countries))
			for _, c := range countries {
				countryRows = append(countryRows, []string{c.Alpha2, c.Name, c.CurrencyCode, localNames(c.LocalNames)})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable("Currencies", []string{"Code", "Symbol", "To USD", "From USD"}, currencyRows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight}))
			fmt.Fprintln(out, renderTable("Countries", []string{"Alpha-2", "Name", "Currency", "Local names"}, countryRows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the dataset as JSON")
	return cmd
}

func localNames(names map[string]string) string {
	if len(names) == 0 {
		return ""
	}
	langs := make([]string, 0, len(names))
	for lang := range names {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	parts := make([]string, 0, len(langs))
	for _, lang := range langs {
		parts = append(parts, lang+"="+names[lang])
	}
	return strings.Join(parts, ", ")
}
