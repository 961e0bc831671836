// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

/*
Package supervisor provides the suture/v4 process supervision tree for the
Vitrine server.

Tree layout:

	vitrine (root)
	├── api-layer         services.HTTPServerService
	└── monitoring-layer  services.PerformanceReportService

Each layer restarts its own services with exponential backoff. Supervisor
events (service failures, restarts, backoff) are routed to zerolog through
logging.NewSlogLogger and sutureslog.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	tree.AddMonitoringService(services.NewPerformanceReportService(perfMon, 5*time.Minute))
	err = tree.Serve(ctx) // blocks until ctx is canceled
*/
package supervisor
