// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/vinoscope/internal/store"
)

type importOptions struct {
	storePath   string
	recordPaths []string
}

func newImportCommand() *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Store wine record files in a Vinoscope BadgerDB directory",
		Long: "Validates each --record file and writes it to the store, replacing any\n" +
			"record with the same _id. Stop the server first: BadgerDB allows one\n" +
			"process per directory.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if opts.storePath == "" {
				return errors.New("--store is required")
			}
			if len(opts.recordPaths) == 0 {
				return errors.New("at least one --record is required")
			}

			// Validate everything before touching the store.
			for _, path := range opts.recordPaths {
				if _, err := readRecord(path, true); err != nil {
					return err
				}
			}

			st, err := store.Open(store.Config{Path: opts.storePath, Compression: true})
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := st.Close(); closeErr != nil && err == nil {
					err = closeErr
				}
			}()

			out := cmd.OutOrStdout()
			for _, path := range opts.recordPaths {
				record, err := readRecord(path, true)
				if err != nil {
					return err
				}
				if err := st.PutWine(cmd.Context(), record); err != nil {
					return fmt.Errorf("store %s: %w", record.ID, err)
				}
				fmt.Fprintf(out, "Stored %s (%s)\n", record.ID, record.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.storePath, "store", "", "BadgerDB data directory")
	cmd.Flags().StringArrayVar(&opts.recordPaths, "record", nil, "Wine record JSON file (repeatable)")

	return cmd
}
