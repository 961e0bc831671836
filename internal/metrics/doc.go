// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and
exposed by the server at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

Catalog Client:
  - catalog_requests_total, catalog_request_duration_seconds
    Labels: outcome (success, error, unsuccessful)
  - catalog_rate_limited_total: HTTP 429 responses
  - catalog_items_received_total: decoded items

Circuit Breaker:
  - circuit_breaker_state (0=closed, 1=half-open, 2=open)
  - circuit_breaker_requests_total, Labels: name, result
  - circuit_breaker_consecutive_failures
  - circuit_breaker_state_transitions_total

Extraction:
  - extraction_queries_planned_total, extraction_queries_failed_total
  - extraction_records_fetched_total, extraction_records_unique_total
  - extraction_queries_in_flight
  - extraction_runs_total, Labels: status (ok, warning, empty)
  - extraction_run_duration_seconds
  - extraction_identities_found
  - extraction_identities_filtered_total, Labels: stage
  - extraction_warnings_total, Labels: code

API:
  - api_requests_total, api_request_duration_seconds, api_active_requests

# Usage

	start := time.Now()
	resp, err := client.Search(ctx, req)
	metrics.RecordCatalogRequest("success", time.Since(start), len(resp.Items))

# Thread Safety

All metric operations are safe for concurrent use.
*/
package metrics
