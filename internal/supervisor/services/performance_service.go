// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package services

import (
	"context"
	"time"

	"github.com/tomtom215/vitrine/internal/logging"
	"github.com/tomtom215/vitrine/internal/middleware"
)

// DefaultReportInterval is how often endpoint statistics are logged.
const DefaultReportInterval = 5 * time.Minute

// StatsSource is satisfied by *middleware.PerformanceMonitor.
type StatsSource interface {
	Stats() []middleware.EndpointStats
}

// PerformanceReportService periodically logs per-endpoint latency
// percentiles so that slow extraction runs show up in log search without
// a Prometheus stack.
type PerformanceReportService struct {
	source   StatsSource
	interval time.Duration
	name     string
}

// NewPerformanceReportService creates the reporter. A non-positive
// interval selects DefaultReportInterval.
func NewPerformanceReportService(source StatsSource, interval time.Duration) *PerformanceReportService {
	if interval <= 0 {
		interval = DefaultReportInterval
	}
	return &PerformanceReportService{
		source:   source,
		interval: interval,
		name:     "performance-report",
	}
}

// Serve implements suture.Service.
func (p *PerformanceReportService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.report()
		}
	}
}

// report logs one line per endpoint. Nothing is logged for an idle window.
func (p *PerformanceReportService) report() int {
	logger := logging.Component(p.name)
	stats := p.source.Stats()
	for _, s := range stats {
		logger.Info().
			Str("endpoint", s.Endpoint).
			Int64("requests", s.RequestCount).
			Int64("errors", s.ErrorCount).
			Int64("p50_ms", s.P50Duration).
			Int64("p95_ms", s.P95Duration).
			Int64("max_ms", s.MaxDuration).
			Msg("Endpoint performance")
	}
	return len(stats)
}

// String implements fmt.Stringer.
func (p *PerformanceReportService) String() string {
	return p.name
}
