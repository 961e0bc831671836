// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package config

import (
	"time"

	"github.com/tomtom215/vitrine/internal/logging"
)

// Config holds all application configuration.
//
// Configuration is loaded in layers by LoadWithKoanf: built-in defaults,
// then an optional YAML file, then environment variables.
type Config struct {
	Catalog    CatalogConfig    `koanf:"catalog"`
	Extraction ExtractionConfig `koanf:"extraction"`
	Server     ServerConfig     `koanf:"server"`
	Security   SecurityConfig   `koanf:"security"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// CatalogConfig holds settings for the federated catalog search API.
type CatalogConfig struct {
	// BaseURL is the API root, e.g. https://api.europeana.eu. The search
	// path is appended by the client.
	BaseURL string `koanf:"base_url"`

	// APIKey is sent as the wskey parameter. It is never validated
	// against the catalog at startup.
	APIKey string `koanf:"api_key"`

	// PageSize is the rows requested per page. The catalog caps this at 100.
	PageSize int `koanf:"page_size"`

	// RequestTimeout bounds a single page request, including 429 backoff.
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// RateLimit is the outbound request rate in requests per second
	// shared by every query; 0 disables pacing.
	RateLimit float64 `koanf:"rate_limit"`
	RateBurst int     `koanf:"rate_burst"`

	// MaxRetries bounds retries of a page that got HTTP 429.
	MaxRetries     int           `koanf:"max_retries"`
	RetryBaseDelay time.Duration `koanf:"retry_base_delay"`

	// CacheSize is the number of search pages kept in memory; 0 disables
	// the page cache.
	CacheSize int           `koanf:"cache_size"`
	CacheTTL  time.Duration `koanf:"cache_ttl"`
}

// ExtractionConfig holds the pipeline policy knobs.
type ExtractionConfig struct {
	// RowTarget is the total number of rows wanted per section. With a
	// geographic focus it is split evenly across countries.
	RowTarget int `koanf:"row_target"`

	// MaxConcurrentQueries bounds the executor's fan-out.
	MaxConcurrentQueries int `koanf:"max_concurrent_queries"`

	// MinWorks drops identities with fewer attributed works.
	MinWorks int `koanf:"min_works"`

	// MaxUnknownRatio drops identities whose unknown-work ratio exceeds it.
	MaxUnknownRatio float64 `koanf:"max_unknown_ratio"`

	// TopN truncates the ranked list.
	TopN int `koanf:"top_n"`

	// MinArtistsTarget raises a low identity yield warning when fewer
	// artists survive filtering.
	MinArtistsTarget int `koanf:"min_artists_target"`

	// RecencyThreshold is the year before which a latest work marks an
	// artist as possibly inactive.
	RecencyThreshold int `koanf:"recency_threshold"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// SecurityConfig holds HTTP request limiting and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	MaxBodyBytes      int64         `koanf:"max_body_bytes"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// ToLoggingConfig converts the logging section to a logging.Config.
func (c LoggingConfig) ToLoggingConfig() logging.Config {
	lc := logging.DefaultConfig()
	if c.Level != "" {
		lc.Level = c.Level
	}
	if c.Format != "" {
		lc.Format = c.Format
	}
	lc.Caller = c.Caller
	return lc
}

// Addr returns the listen address host:port.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}
