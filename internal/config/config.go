// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package config

import "time"

// Config holds all application configuration.
type Config struct {
	Mining   MiningConfig   `koanf:"mining"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Store    StoreConfig    `koanf:"store"`
	Cache    CacheConfig    `koanf:"cache"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// MiningConfig controls the batch mining service and the defaults applied to
// API requests that leave a parameter unset.
type MiningConfig struct {
	// InputPath is a CSV file with one (person, item) row per purchase.
	// Empty disables the batch service.
	InputPath string `koanf:"input_path"`

	// OutputPath receives the association rule report after each batch run.
	OutputPath string `koanf:"output_path"`

	PersonColumn string `koanf:"person_column"`
	ItemColumn   string `koanf:"item_column"`

	// MinSupport is the minimum number of transactions an itemset must
	// appear in. Values below 1 are treated as 1.
	MinSupport int `koanf:"min_support"`

	// MaxLength bounds the size of mined itemsets. Zero means unbounded.
	MaxLength int `koanf:"max_length"`

	// Interval re-runs the batch periodically. Zero runs it once.
	Interval     time.Duration `koanf:"interval"`
	RunOnStartup bool          `koanf:"run_on_startup"`

	// ResultLimit caps the itemsets persisted with a run.
	ResultLimit int `koanf:"result_limit"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging, production
}

// DatabaseConfig holds DuckDB settings
type DatabaseConfig struct {
	Path      string `koanf:"path"` // empty for an in-memory database
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // 0 = use NumCPU
}

// StoreConfig holds BadgerDB settings for persisted mining runs
type StoreConfig struct {
	Path       string `koanf:"path"`
	InMemory   bool   `koanf:"in_memory"`
	SyncWrites bool   `koanf:"sync_writes"`
}

// CacheConfig holds result cache settings
type CacheConfig struct {
	Capacity int           `koanf:"capacity"`
	TTL      time.Duration `koanf:"ttl"`

	// CleanupInterval is how often expired entries are swept. Zero disables
	// the sweep; expired entries are then only dropped on lookup.
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// SecurityConfig holds rate limiting and CORS settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// JSON is recommended for production, console for development.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, an optional config file and the
// environment, in that order of precedence.
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
