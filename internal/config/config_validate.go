// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package config

import (
	"fmt"
	"time"
)

// maxCatalogPageSize is the largest rows value the catalog accepts.
const maxCatalogPageSize = 100

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateExtraction(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateCatalog() error {
	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("CATALOG_BASE_URL is required")
	}
	if err := validateHTTPURL(c.Catalog.BaseURL, "CATALOG_BASE_URL"); err != nil {
		return err
	}
	if c.Catalog.PageSize < 1 || c.Catalog.PageSize > maxCatalogPageSize {
		return fmt.Errorf("CATALOG_PAGE_SIZE must be between 1 and %d, got %d", maxCatalogPageSize, c.Catalog.PageSize)
	}
	if c.Catalog.RequestTimeout < time.Second {
		return fmt.Errorf("CATALOG_REQUEST_TIMEOUT must be at least 1s, got %v", c.Catalog.RequestTimeout)
	}
	if c.Catalog.RateLimit < 0 {
		return fmt.Errorf("CATALOG_RATE_LIMIT must not be negative")
	}
	if c.Catalog.RateLimit > 0 && c.Catalog.RateBurst < 1 {
		return fmt.Errorf("CATALOG_RATE_BURST must be at least 1 when rate limiting is enabled")
	}
	if c.Catalog.MaxRetries < 0 || c.Catalog.MaxRetries > 10 {
		return fmt.Errorf("CATALOG_MAX_RETRIES must be between 0 and 10")
	}
	if c.Catalog.CacheSize < 0 {
		return fmt.Errorf("CATALOG_CACHE_SIZE must not be negative")
	}
	if c.Catalog.CacheSize > 0 && c.Catalog.CacheTTL <= 0 {
		return fmt.Errorf("CATALOG_CACHE_TTL must be positive when the page cache is enabled")
	}
	return nil
}

func (c *Config) validateExtraction() error {
	e := c.Extraction
	if e.RowTarget < 1 {
		return fmt.Errorf("EXTRACTION_ROW_TARGET must be at least 1")
	}
	if e.MaxConcurrentQueries < 1 || e.MaxConcurrentQueries > 64 {
		return fmt.Errorf("EXTRACTION_MAX_CONCURRENT must be between 1 and 64, got %d", e.MaxConcurrentQueries)
	}
	if e.MinWorks < 1 {
		return fmt.Errorf("EXTRACTION_MIN_WORKS must be at least 1")
	}
	if e.MaxUnknownRatio < 0 || e.MaxUnknownRatio > 1 {
		return fmt.Errorf("EXTRACTION_MAX_UNKNOWN_RATIO must be between 0 and 1, got %v", e.MaxUnknownRatio)
	}
	if e.TopN < 1 {
		return fmt.Errorf("EXTRACTION_TOP_N must be at least 1")
	}
	if e.MinArtistsTarget < 0 {
		return fmt.Errorf("EXTRACTION_MIN_ARTISTS must not be negative")
	}
	if e.RecencyThreshold < 1000 || e.RecencyThreshold > 2100 {
		return fmt.Errorf("EXTRACTION_RECENCY_THRESHOLD must be a year between 1000 and 2100")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1 unless DISABLE_RATE_LIMIT=true")
		}
		if c.Security.RateLimitWindow < time.Second {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s")
		}
	}
	if c.Security.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	return nil
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
