// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

/*
Package main is the entry point for the Vitrine API server.

Vitrine helps exhibition curators discover artists for a themed exhibition.
Given a thematic brief and its sections, it plans searches against a
federated cultural-heritage catalog, fetches the results concurrently,
groups records into artist identities, and returns a ranked, explained
shortlist.

# Application Architecture

	RootSupervisor ("vitrine")
	├── APISupervisor ("api-layer")
	│   └── HTTP Server (chi router)
	└── MonitoringSupervisor ("monitoring-layer")
	    └── Performance report (periodic endpoint latency log)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, optional YAML file, environment
 2. Logging: zerolog with JSON/console output modes
 3. Catalog client: rate limited, circuit breaker, 429 retries
 4. Coordinator: planner, executor, grouping, scoring
 5. HTTP: chi router with CORS, rate limits, metrics, compression
 6. Supervisor tree: suture v4 with sutureslog event logging

# Configuration

Key environment variables:

	EUROPEANA_API_KEY          catalog API key
	CATALOG_BASE_URL           catalog base URL
	EXTRACTION_ROW_TARGET      records requested per section (split by country)
	EXTRACTION_MAX_CONCURRENT  concurrent catalog queries
	EXTRACTION_MIN_WORKS       minimum works per artist
	EXTRACTION_TOP_N           shortlist size
	HTTP_HOST, HTTP_PORT       listen address
	LOG_LEVEL, LOG_FORMAT      logging

# Shutdown

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and gives in-flight requests HTTP_SHUTDOWN_TIMEOUT to finish.
*/
package main
