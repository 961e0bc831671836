// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - Catalog search requests (latency, outcome, rate limiting)
// - Circuit breaker state
// - Query fan-out and deduplication
// - Identity grouping and filtering
// - API endpoint latency and throughput

var (
	// Catalog Client Metrics
	CatalogRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Duration of catalog search page requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"outcome"}, // "success", "error", "unsuccessful"
	)

	CatalogRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of catalog search page requests",
		},
		[]string{"outcome"},
	)

	CatalogRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_rate_limited_total",
			Help: "Total number of HTTP 429 responses received from the catalog",
		},
	)

	CatalogItemsReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_items_received_total",
			Help: "Total number of items decoded from catalog responses",
		},
	)

	CatalogCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_lookups_total",
			Help: "Total number of catalog page cache lookups",
		},
		[]string{"result"}, // "hit", "miss"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Query Execution Metrics
	QueriesPlanned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "extraction_queries_planned_total",
			Help: "Total number of catalog queries planned",
		},
	)

	QueriesFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "extraction_queries_failed_total",
			Help: "Total number of catalog queries that failed and contributed no records",
		},
	)

	RecordsFetched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "extraction_records_fetched_total",
			Help: "Total number of records fetched before deduplication",
		},
	)

	RecordsUnique = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "extraction_records_unique_total",
			Help: "Total number of unique records after deduplication",
		},
	)

	QueriesInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "extraction_queries_in_flight",
			Help: "Current number of catalog queries being executed",
		},
	)

	// Pipeline Metrics
	PipelineRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extraction_runs_total",
			Help: "Total number of pipeline runs",
		},
		[]string{"status"}, // "ok", "warning", "empty"
	)

	PipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "extraction_run_duration_seconds",
			Help:    "Duration of complete pipeline runs in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		},
	)

	IdentitiesFound = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "extraction_identities_found",
			Help:    "Distinct normalized identities found per run",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	IdentitiesFiltered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extraction_identities_filtered_total",
			Help: "Total number of identities removed by each filter stage",
		},
		[]string{"stage"}, // "min_works", "unknown_ratio", "top_limit"
	)

	PipelineWarnings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extraction_warnings_total",
			Help: "Total number of warnings raised by pipeline runs",
		},
		[]string{"code"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)
)

// RecordCatalogRequest records one catalog page request.
func RecordCatalogRequest(outcome string, duration time.Duration, items int) {
	CatalogRequestsTotal.WithLabelValues(outcome).Inc()
	CatalogRequestDuration.WithLabelValues(outcome).Observe(duration.Seconds())
	if items > 0 {
		CatalogItemsReceived.Add(float64(items))
	}
}

// RecordCacheLookup records one catalog page cache lookup.
func RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CatalogCacheLookups.WithLabelValues(result).Inc()
}

// RecordExecution records the aggregate outcome of one fan-out run.
func RecordExecution(planned, failed, fetched, unique int) {
	QueriesPlanned.Add(float64(planned))
	QueriesFailed.Add(float64(failed))
	RecordsFetched.Add(float64(fetched))
	RecordsUnique.Add(float64(unique))
}

// TrackQueryInFlight tracks queries currently running in the executor.
func TrackQueryInFlight(inc bool) {
	if inc {
		QueriesInFlight.Inc()
	} else {
		QueriesInFlight.Dec()
	}
}

// RecordPipelineRun records a completed pipeline run.
func RecordPipelineRun(status string, duration time.Duration, identities int) {
	PipelineRuns.WithLabelValues(status).Inc()
	PipelineDuration.Observe(duration.Seconds())
	IdentitiesFound.Observe(float64(identities))
}

// RecordFiltered records identities removed by a filter stage.
func RecordFiltered(stage string, count int) {
	if count > 0 {
		IdentitiesFiltered.WithLabelValues(stage).Add(float64(count))
	}
}

// RecordWarning records a pipeline warning by code.
func RecordWarning(code string) {
	PipelineWarnings.WithLabelValues(code).Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
