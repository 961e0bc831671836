// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

/*
Package services provides suture.Service wrappers for Vitrine components.

Each wrapper translates a component lifecycle into suture's context-aware
Serve pattern and implements fmt.Stringer for supervisor log events.

Available Services:

  - HTTPServerService: wraps *http.Server with graceful shutdown
  - PerformanceReportService: logs endpoint latency percentiles on a ticker

Error Semantics:

Serve returns ctx.Err() on requested shutdown, which suture treats as a
clean stop. Any other error counts as a failure and triggers a restart with
backoff.
*/
package services
