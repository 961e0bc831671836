// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

/*
Package middleware provides HTTP middleware for the Vitrine API.

Key Components:

  - RequestID: X-Request-ID propagation into the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge labelled
    by chi route pattern
  - Compression: gzip for large JSON bodies (extraction results run to
    hundreds of kilobytes)
  - PerformanceMonitor: sliding-window latency percentiles per route, with
    slow-request logging

All middleware use the http.HandlerFunc shape. The api package adapts them
to chi's func(http.Handler) http.Handler with a one-line wrapper.

Middleware Stack:

	RequestID -> PrometheusMetrics -> PerformanceMonitor -> Compression -> handler

Thread Safety:

PerformanceMonitor guards its window with a sync.RWMutex. The other
middleware keep no shared state.
*/
package middleware
