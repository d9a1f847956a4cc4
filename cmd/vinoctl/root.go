// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/vinoscope/internal/logging"
)

type rootOptions struct {
	referencePath string
	logLevel      string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "vinoctl",
		Short:         "Vinoscope valuation and store CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logCfg := logging.DefaultConfig()
			logCfg.Level = opts.logLevel
			logCfg.Format = "console"
			logging.Init(logCfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.referencePath, "reference", "", "Reference dataset file (.json or .yaml); defaults to the built-in dataset")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newValuateCommand(opts))
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newReferenceCommand(opts))

	return rootCmd
}
