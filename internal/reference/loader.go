// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package reference

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/vinoscope/internal/models"
	"github.com/tomtom215/vinoscope/internal/validation"
)

// LoadDataset reads a reference dataset from a .json, .yaml or .yml file.
func LoadDataset(path string) (*models.ReferenceDataset, error) {
	var (
		ds  *models.ReferenceDataset
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var f *os.File
		f, err = os.Open(path) //nolint:gosec // path comes from operator configuration
		if err != nil {
			return nil, fmt.Errorf("open reference dataset: %w", err)
		}
		defer f.Close()
		ds, err = DecodeJSON(f)
	case ".yaml", ".yml":
		ds, err = loadYAML(path)
	default:
		return nil, fmt.Errorf("reference dataset %s: unsupported extension", path)
	}
	if err != nil {
		return nil, fmt.Errorf("reference dataset %s: %w", path, err)
	}

	if verr := validation.ValidateStruct(ds); verr != nil {
		return nil, fmt.Errorf("reference dataset %s: %w", path, verr)
	}
	return ds, nil
}

// DecodeJSON decodes a dataset from r without validating it.
func DecodeJSON(r io.Reader) (*models.ReferenceDataset, error) {
	var ds models.ReferenceDataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return &ds, nil
}

func loadYAML(path string) (*models.ReferenceDataset, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	var ds models.ReferenceDataset
	if err := k.UnmarshalWithConf("", &ds, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	return &ds, nil
}

// LoadFile loads a dataset file and builds a Registry from it.
func LoadFile(path string) (*Registry, error) {
	ds, err := LoadDataset(path)
	if err != nil {
		return nil, err
	}
	return New(ds.Currencies, ds.Countries)
}
