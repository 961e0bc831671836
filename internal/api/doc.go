// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

/*
Package api provides the HTTP REST API layer for Vitrine.

Curators (or the exhibition planning tool acting for them) submit a
thematic brief with its exhibition sections and receive a ranked list of
candidate artists, each with a profile and score breakdowns.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: extract, plan and health handlers
  - ResponseWriter: standardized APIResponse envelope with request metadata
  - ChiMiddleware: go-chi/cors and go-chi/httprate configuration

Endpoints:

	POST /api/v1/extract             run the discovery pipeline
	POST /api/v1/plan                planned catalog queries, no catalog calls
	GET  /api/v1/health              overall status and catalog circuit state
	GET  /api/v1/health/live         liveness probe
	GET  /api/v1/health/ready        readiness probe (503 while circuit open)
	GET  /api/v1/health/performance  sliding-window latency statistics
	GET  /metrics                    Prometheus exposition

Request body for extract and plan:

	{
	  "brief": {
	    "movements": ["surrealism"],
	    "media_types": ["digital"],
	    "time_period": "contemporary",
	    "geography": ["Netherlands"],
	    "description": "..."
	  },
	  "sections": [{"title": "Dreams", "focus": "dreamlike digital landscapes"}]
	}

Bodies are capped (MaxBytesReader), unknown fields are rejected, and the
brief is validated with validator/v10 before the pipeline starts. Partial
catalog failures do not produce error responses: they appear as warnings
inside a successful ExtractionResult.

Rate Limits (per client IP):

  - extract: 10 requests/minute
  - plan: 120 requests/minute
  - health: 1000 requests/minute
  - all /api/v1 routes: the configured general limit

See Also:

  - internal/pipeline: the coordinator behind Extract
  - internal/validation: request validation
  - internal/middleware: request ID, metrics, compression
*/
package api
