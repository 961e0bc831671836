// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

/*
Package config provides layered configuration loading for Vitrine.

Configuration is loaded with Koanf v2 from three layers, later layers
overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: CONFIG_PATH, ./config.yaml, /etc/vitrine/config.yaml
 3. Environment variables, mapped explicitly by envTransformFunc

# Sections

  - catalog: search API base URL, key, page size, request timeout,
    outbound rate limit, 429 retry policy
  - extraction: row target, fan-out bound, filter thresholds, top-N,
    minimum artist target, recency threshold
  - server: listen host/port, request and shutdown timeouts
  - security: HTTP rate limit, CORS origins, body size limit
  - logging: level, format, caller

# Environment Variables

	EUROPEANA_API_KEY            catalog.api_key
	CATALOG_BASE_URL             catalog.base_url (default https://api.europeana.eu)
	CATALOG_PAGE_SIZE            catalog.page_size (1-100, default 100)
	CATALOG_REQUEST_TIMEOUT      catalog.request_timeout (default 30s)
	CATALOG_RATE_LIMIT           catalog.rate_limit (req/s, default 10)
	EXTRACTION_ROW_TARGET        extraction.row_target (default 200)
	EXTRACTION_MAX_CONCURRENT    extraction.max_concurrent_queries (default 8)
	EXTRACTION_MIN_WORKS         extraction.min_works (default 3)
	EXTRACTION_MAX_UNKNOWN_RATIO extraction.max_unknown_ratio (default 0.5)
	EXTRACTION_TOP_N             extraction.top_n (default 50)
	EXTRACTION_MIN_ARTISTS       extraction.min_artists_target (default 10)
	HTTP_PORT, HTTP_HOST         server.port, server.host
	RATE_LIMIT_REQUESTS          security.rate_limit_reqs
	RATE_LIMIT_WINDOW            security.rate_limit_window
	CORS_ORIGINS                 security.cors_origins (comma-separated)
	LOG_LEVEL, LOG_FORMAT        logging.level, logging.format

The API key is read but never checked against the catalog; a missing key
surfaces as failed queries at run time.

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(cfg.Logging.ToLoggingConfig())
*/
package config
