// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package middleware

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/tomtom215/vitrine/internal/logging"
)

// DefaultSlowThreshold flags extraction requests that take longer than a
// typical full fan-out against the catalog.
const DefaultSlowThreshold = 10 * time.Second

// RequestSample is one observed request.
type RequestSample struct {
	Route      string
	Method     string
	DurationMS int64
	StatusCode int
	Timestamp  time.Time
}

// EndpointStats aggregates the samples of one route within the window.
type EndpointStats struct {
	Endpoint     string  `json:"endpoint"`
	RequestCount int64   `json:"request_count"`
	ErrorCount   int64   `json:"error_count"`
	AvgDuration  float64 `json:"avg_duration_ms"`
	P50Duration  int64   `json:"p50_duration_ms"`
	P95Duration  int64   `json:"p95_duration_ms"`
	P99Duration  int64   `json:"p99_duration_ms"`
	MinDuration  int64   `json:"min_duration_ms"`
	MaxDuration  int64   `json:"max_duration_ms"`
}

// PerformanceMonitor keeps a sliding window of request samples.
type PerformanceMonitor struct {
	mu            sync.RWMutex
	samples       []RequestSample
	maxSamples    int
	slowThreshold time.Duration
}

// NewPerformanceMonitor creates a monitor retaining at most maxSamples.
// A non-positive slowThreshold selects DefaultSlowThreshold.
func NewPerformanceMonitor(maxSamples int, slowThreshold time.Duration) *PerformanceMonitor {
	if maxSamples < 1 {
		maxSamples = 1
	}
	if slowThreshold <= 0 {
		slowThreshold = DefaultSlowThreshold
	}
	return &PerformanceMonitor{
		samples:       make([]RequestSample, 0, maxSamples),
		maxSamples:    maxSamples,
		slowThreshold: slowThreshold,
	}
}

// Record adds a sample, evicting the oldest once the window is full.
func (pm *PerformanceMonitor) Record(s RequestSample) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.samples = append(pm.samples, s)
	if len(pm.samples) > pm.maxSamples {
		pm.samples = pm.samples[len(pm.samples)-pm.maxSamples:]
	}
}

// Stats returns per-endpoint statistics, busiest endpoint first.
func (pm *PerformanceMonitor) Stats() []EndpointStats {
	pm.mu.RLock()
	durations := make(map[string][]int64)
	errors := make(map[string]int64)
	for _, s := range pm.samples {
		key := s.Method + " " + s.Route
		durations[key] = append(durations[key], s.DurationMS)
		if s.StatusCode >= http.StatusInternalServerError {
			errors[key]++
		}
	}
	pm.mu.RUnlock()

	stats := make([]EndpointStats, 0, len(durations))
	for endpoint, ds := range durations {
		sort.Slice(ds, func(i, j int) bool { return ds[i] < ds[j] })

		var sum int64
		for _, d := range ds {
			sum += d
		}

		stats = append(stats, EndpointStats{
			Endpoint:     endpoint,
			RequestCount: int64(len(ds)),
			ErrorCount:   errors[endpoint],
			AvgDuration:  float64(sum) / float64(len(ds)),
			P50Duration:  percentile(ds, 0.50),
			P95Duration:  percentile(ds, 0.95),
			P99Duration:  percentile(ds, 0.99),
			MinDuration:  ds[0],
			MaxDuration:  ds[len(ds)-1],
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].RequestCount != stats[j].RequestCount {
			return stats[i].RequestCount > stats[j].RequestCount
		}
		return stats[i].Endpoint < stats[j].Endpoint
	})
	return stats
}

// Recent returns up to n of the newest samples, oldest first.
func (pm *PerformanceMonitor) Recent(n int) []RequestSample {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	if n > len(pm.samples) {
		n = len(pm.samples)
	}
	if n <= 0 {
		return nil
	}
	out := make([]RequestSample, n)
	copy(out, pm.samples[len(pm.samples)-n:])
	return out
}

// Middleware records a sample per request and warns on slow ones.
func (pm *PerformanceMonitor) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next(wrapper, r)

		elapsed := time.Since(start)
		route := routeLabel(r)
		pm.Record(RequestSample{
			Route:      route,
			Method:     r.Method,
			DurationMS: elapsed.Milliseconds(),
			StatusCode: wrapper.statusCode,
			Timestamp:  start,
		})

		if elapsed > pm.slowThreshold {
			logging.Ctx(r.Context()).Warn().
				Str("method", r.Method).
				Str("route", route).
				Dur("duration", elapsed).
				Dur("threshold", pm.slowThreshold).
				Msg("Slow request detected")
		}
	}
}

// percentile reads the nearest-rank value from a sorted slice.
func percentile(sorted []int64, p float64) int64 {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[int(float64(len(sorted)-1)*p)]
}
