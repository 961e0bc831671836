// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/vitrine/config.yaml",
	"/etc/vitrine/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultCatalogBaseURL is the public Europeana API root.
const DefaultCatalogBaseURL = "https://api.europeana.eu"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL:        DefaultCatalogBaseURL,
			APIKey:         "",
			PageSize:       100,
			RequestTimeout: 30 * time.Second,
			RateLimit:      10,
			RateBurst:      5,
			MaxRetries:     3,
			RetryBaseDelay: time.Second,
			CacheSize:      256,
			CacheTTL:       15 * time.Minute,
		},
		Extraction: ExtractionConfig{
			RowTarget:            200,
			MaxConcurrentQueries: 8,
			MinWorks:             3,
			MaxUnknownRatio:      0.5,
			TopN:                 50,
			MinArtistsTarget:     10,
			RecencyThreshold:     2000,
		},
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         5 * time.Minute, // extraction requests fan out to the catalog
			ShutdownTimeout: 15 * time.Second,
		},
		Security: SecurityConfig{
			RateLimitReqs:     30,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
			MaxBodyBytes:      1 << 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Defaults returns a copy of the built-in defaults. Useful for tests and
// for callers that construct components without loading configuration.
func Defaults() *Config {
	return defaultConfig()
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
//
// Precedence is ENV > File > Defaults.
func LoadWithKoanf() (*Config, error) {
	return Load("")
}

// Load is LoadWithKoanf with an explicit config file path. An empty path
// searches CONFIG_PATH and DefaultConfigPaths.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := path
	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// EUROPEANA_API_KEY -> catalog.api_key
	// EXTRACTION_TOP_N -> extraction.top_n
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
var envMappings = map[string]string{
	// Catalog
	"europeana_api_key":        "catalog.api_key",
	"catalog_base_url":         "catalog.base_url",
	"catalog_page_size":        "catalog.page_size",
	"catalog_request_timeout":  "catalog.request_timeout",
	"catalog_rate_limit":       "catalog.rate_limit",
	"catalog_rate_burst":       "catalog.rate_burst",
	"catalog_max_retries":      "catalog.max_retries",
	"catalog_retry_base_delay": "catalog.retry_base_delay",
	"catalog_cache_size":       "catalog.cache_size",
	"catalog_cache_ttl":        "catalog.cache_ttl",

	// Extraction policy
	"extraction_row_target":        "extraction.row_target",
	"extraction_max_concurrent":    "extraction.max_concurrent_queries",
	"extraction_min_works":         "extraction.min_works",
	"extraction_max_unknown_ratio": "extraction.max_unknown_ratio",
	"extraction_top_n":             "extraction.top_n",
	"extraction_min_artists":       "extraction.min_artists_target",
	"extraction_recency_threshold": "extraction.recency_threshold",

	// Server
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",
	"max_body_bytes":      "security.max_body_bytes",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped variables return "" and are skipped so that unrelated
// environment variables never pollute the config.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
