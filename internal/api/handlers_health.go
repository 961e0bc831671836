// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the payload of the health endpoint.
type HealthStatus struct {
	Status       string  `json:"status"`
	Version      string  `json:"version"`
	CatalogState string  `json:"catalog_circuit,omitempty"`
	Uptime       float64 `json:"uptime_seconds"`
}

// catalogOpen reports whether the catalog circuit breaker is rejecting
// calls. Without a catalog status source the upstream is assumed usable.
func (h *Handler) catalogOpen() (string, bool) {
	if h.catalog == nil {
		return "", false
	}
	state := h.catalog.BreakerState()
	return state, state == "open"
}

// Health reports overall status. An open catalog circuit is "degraded"
// rather than an error: runs still complete, with every query failed.
//
// GET /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	state, open := h.catalogOpen()
	status := "healthy"
	if open {
		status = "degraded"
	}

	NewResponseWriter(w, r).Success(HealthStatus{
		Status:       status,
		Version:      h.version,
		CatalogState: state,
		Uptime:       time.Since(h.startTime).Seconds(),
	})
}

// HealthLive is the liveness probe. It never checks dependencies.
//
// GET /api/v1/health/live
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady is the readiness probe. It returns 503 while the catalog
// circuit is open.
//
// GET /api/v1/health/ready
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	state, open := h.catalogOpen()
	statusCode := http.StatusOK
	if open {
		statusCode = http.StatusServiceUnavailable
	}

	NewResponseWriter(w, r).SuccessWithStatus(statusCode, map[string]interface{}{
		"ready_to_serve":  !open,
		"catalog_circuit": state,
	}, nil)
}

// HealthPerformance returns per-endpoint latency statistics.
//
// GET /api/v1/health/performance
func (h *Handler) HealthPerformance(w http.ResponseWriter, r *http.Request) {
	stats := h.perfMon.Stats()
	NewResponseWriter(w, r).SuccessWithCount(stats, len(stats))
}
