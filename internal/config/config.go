// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/vinoscope/internal/cache"
	"github.com/tomtom215/vinoscope/internal/logging"
	"github.com/tomtom215/vinoscope/internal/store"
)

// Config holds all application configuration.
//
// Loading order (Koanf v2):
//  1. Defaults: built-in values for every setting
//  2. Config file: optional YAML file (config.yaml or CONFIG_PATH)
//  3. Environment variables: override any mapped setting
//
// Example:
//
//	cfg, err := config.LoadWithKoanf()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load config")
//	}
//	st, err := store.Open(cfg.Store)
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Store     store.Config    `koanf:"store"`
	Reference ReferenceConfig `koanf:"reference"`
	Engine    EngineConfig    `koanf:"engine"`
	Cache     cache.Config    `koanf:"cache"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
}

// Addr returns host:port for net/http.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds CORS, rate limit and request size settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`

	// MaxBodyBytes caps request bodies on write endpoints.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes file and line in logs.
	Caller bool `koanf:"caller"`
}

// ReferenceConfig selects where currency and country rows come from.
type ReferenceConfig struct {
	// Path is a .json/.yaml dataset and wins over stored rows. Empty means
	// the store, then the dataset compiled into the binary.
	Path string `koanf:"path"`

	// SeedStore persists the dataset in use: the file when Path is set,
	// the embedded dataset when the store is empty.
	SeedStore bool `koanf:"seed_store"`

	// Watch reloads the dataset file when it changes.
	Watch bool `koanf:"watch"`
}

// EngineConfig holds valuation defaults.
type EngineConfig struct {
	// DefaultLocation is used when a request names no known location.
	DefaultLocation string `koanf:"default_location"`

	// DefaultLanguage is used when neither the query nor Accept-Language
	// names a supported language.
	DefaultLanguage string `koanf:"default_language"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// LoggingOptions converts the logging section for logging.Init.
func (c *Config) LoggingOptions() logging.Config {
	opts := logging.DefaultConfig()
	opts.Level = c.Logging.Level
	opts.Format = c.Logging.Format
	opts.Caller = c.Logging.Caller
	return opts
}
