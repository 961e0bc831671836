// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/vitrine/internal/middleware"
)

var _ suture.Service = (*PerformanceReportService)(nil)

type countingSource struct {
	calls atomic.Int32
	stats []middleware.EndpointStats
}

func (c *countingSource) Stats() []middleware.EndpointStats {
	c.calls.Add(1)
	return c.stats
}

func TestPerformanceReportService_Defaults(t *testing.T) {
	t.Parallel()

	svc := NewPerformanceReportService(&countingSource{}, 0)
	if svc.interval != DefaultReportInterval {
		t.Errorf("interval = %v, want %v", svc.interval, DefaultReportInterval)
	}
	if svc.String() != "performance-report" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestPerformanceReportService_Report(t *testing.T) {
	t.Parallel()

	pm := middleware.NewPerformanceMonitor(10, time.Second)
	pm.Record(middleware.RequestSample{Route: "/api/v1/extract", Method: "POST", DurationMS: 1200, StatusCode: 200})
	pm.Record(middleware.RequestSample{Route: "/api/v1/plan", Method: "POST", DurationMS: 3, StatusCode: 200})

	if n := NewPerformanceReportService(pm, time.Minute).report(); n != 2 {
		t.Errorf("report() logged %d endpoints, want 2", n)
	}
	if n := NewPerformanceReportService(&countingSource{}, time.Minute).report(); n != 0 {
		t.Errorf("idle report() logged %d endpoints, want 0", n)
	}
}

func TestPerformanceReportService_ServeTicksUntilCanceled(t *testing.T) {
	t.Parallel()

	source := &countingSource{}
	svc := NewPerformanceReportService(source, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	deadline := time.Now().Add(time.Second)
	for source.calls.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(2 * time.Millisecond)
	}
	cancel()

	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
	if source.calls.Load() < 2 {
		t.Errorf("Stats called %d times, want >= 2", source.calls.Load())
	}
}
