// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/tomtom215/vinoscope/internal/narrative"
)

// Validate checks that the configuration is complete and within bounds.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateStore(); err != nil {
		return err
	}
	if err := c.validateReference(); err != nil {
		return err
	}
	if err := c.validateEngine(); err != nil {
		return err
	}
	return c.validateCache()
}

var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("HTTP_READ_TIMEOUT and HTTP_WRITE_TIMEOUT must be positive")
	}
	return nil
}

// validateSecurity validates security configuration
func (c *Config) validateSecurity() error {
	if err := c.validateCORS(); err != nil {
		return err
	}
	if err := c.validateRateLimits(); err != nil {
		return err
	}
	if c.Security.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}
	return nil
}

// validateCORS rejects wildcard CORS in production.
func (c *Config) validateCORS() error {
	if c.hasWildcardCORS() && c.IsProduction() {
		return fmt.Errorf("CORS_ORIGINS=* (wildcard) is not allowed in production. " +
			"Set specific origins: CORS_ORIGINS=https://yourdomain.com,https://app.yourdomain.com " +
			"or use ENVIRONMENT=development for testing purposes")
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true if CORS configuration has security concerns
// that should be logged at startup
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.hasWildcardCORS()
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

func (c *Config) validateStore() error {
	if !c.Store.InMemory && strings.TrimSpace(c.Store.Path) == "" {
		return fmt.Errorf("BADGER_PATH is required unless BADGER_IN_MEMORY=true")
	}
	if c.Store.GCRatio <= 0 || c.Store.GCRatio >= 1 {
		return fmt.Errorf("BADGER_GC_RATIO must be between 0 and 1 (exclusive)")
	}
	if c.Store.GCInterval < 0 {
		return fmt.Errorf("BADGER_GC_INTERVAL cannot be negative")
	}
	return nil
}

var referenceExtensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

func (c *Config) validateReference() error {
	if c.Reference.Path == "" {
		if c.Reference.Watch {
			return fmt.Errorf("REFERENCE_WATCH requires REFERENCE_PATH")
		}
		return nil
	}
	if !referenceExtensions[strings.ToLower(filepath.Ext(c.Reference.Path))] {
		return fmt.Errorf("REFERENCE_PATH must be a .json, .yaml or .yml file")
	}
	return nil
}

func (c *Config) validateEngine() error {
	loc := c.Engine.DefaultLocation
	if len(loc) != 2 || strings.ToUpper(loc) != loc {
		return fmt.Errorf("DEFAULT_LOCATION must be an uppercase ISO 3166 alpha-2 code")
	}
	if !narrative.Language(c.Engine.DefaultLanguage).Valid() {
		return fmt.Errorf("DEFAULT_LANGUAGE must be one of: en, ko, ja")
	}
	return nil
}

func (c *Config) validateCache() error {
	if !c.Cache.Enabled {
		return nil
	}
	if c.Cache.Capacity < 1 {
		return fmt.Errorf("CACHE_CAPACITY must be at least 1 when the cache is enabled")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive when the cache is enabled")
	}
	if c.Cache.JanitorInterval <= 0 {
		return fmt.Errorf("CACHE_JANITOR_INTERVAL must be positive when the cache is enabled")
	}
	return nil
}
