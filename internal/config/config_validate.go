// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package config

import (
	"fmt"
	"time"
)

// Validate checks that configuration values are within their allowed ranges
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateMining,
		c.validateServer,
		c.validateStore,
		c.validateCache,
		c.validateSecurity,
		c.validateLogging,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

// validateMining validates mining defaults and batch settings
func (c *Config) validateMining() error {
	if c.Mining.MaxLength < 0 {
		return fmt.Errorf("MINING_MAX_LENGTH must be 0 (unbounded) or positive")
	}
	if c.Mining.Interval < 0 {
		return fmt.Errorf("MINING_INTERVAL must not be negative")
	}
	if c.Mining.ResultLimit < 1 {
		return fmt.Errorf("MINING_RESULT_LIMIT must be at least 1")
	}
	if c.Mining.InputPath != "" {
		if c.Mining.PersonColumn == "" {
			return fmt.Errorf("MINING_PERSON_COLUMN is required when MINING_INPUT_PATH is set")
		}
		if c.Mining.ItemColumn == "" {
			return fmt.Errorf("MINING_ITEM_COLUMN is required when MINING_INPUT_PATH is set")
		}
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

// validateStore validates run store configuration
func (c *Config) validateStore() error {
	if !c.Store.InMemory && c.Store.Path == "" {
		return fmt.Errorf("STORE_PATH is required unless STORE_IN_MEMORY=true")
	}
	return nil
}

// validateCache validates result cache configuration
func (c *Config) validateCache() error {
	if c.Cache.Capacity < 0 {
		return fmt.Errorf("CACHE_CAPACITY must not be negative")
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("CACHE_TTL must not be negative")
	}
	if c.Cache.CleanupInterval < 0 {
		return fmt.Errorf("CACHE_CLEANUP_INTERVAL must not be negative")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateSecurity validates rate limiting bounds
func (c *Config) validateSecurity() error {
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

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
