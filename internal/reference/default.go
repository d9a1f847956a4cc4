// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package reference

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"
)

//go:embed dataset.json
var defaultDataset []byte

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns the registry built from the dataset compiled into the
// binary. It is used when neither the store nor a configured file provides
// reference rows, and by tests.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		ds, err := DecodeJSON(bytes.NewReader(defaultDataset))
		if err != nil {
			defaultErr = fmt.Errorf("embedded dataset: %w", err)
			return
		}
		defaultRegistry, defaultErr = New(ds.Currencies, ds.Countries)
	})
	return defaultRegistry, defaultErr
}

// MustDefault is Default for callers that cannot recover, mainly tests.
func MustDefault() *Registry {
	r, err := Default()
	if err != nil {
		panic(err)
	}
	return r
}
