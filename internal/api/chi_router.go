// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/vitrine/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil chiMW selects the default middleware
// configuration.
func NewRouter(handler *Handler, chiMW *ChiMiddleware) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: chiMW}
}

// chiMiddleware adapts the HandlerFunc-style middleware of the middleware
// package to chi's signature.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi builds the HTTP handler.
//
//	/api/v1/health             GET  overall status
//	/api/v1/health/live        GET  liveness probe
//	/api/v1/health/ready       GET  readiness probe
//	/api/v1/health/performance GET  endpoint latency statistics
//	/api/v1/extract            POST run the discovery pipeline
//	/api/v1/plan               POST planned catalog queries only
//	/metrics                   GET  Prometheus exposition
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware(middleware.RequestID)) // X-Request-ID into the logging context
	r.Use(chimiddleware.RealIP)                // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)             // Recover from panics
	r.Use(router.chiMiddleware.CORS())         // CORS must be global to handle OPTIONS preflight

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).NotFound("Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).MethodNotAllowed()
	})

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/performance", router.handler.HealthPerformance)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(router.handler.perfMon.Middleware))
		r.Use(chiMiddleware(middleware.Compression))

		r.With(router.chiMiddleware.RateLimitExtract()).Post("/extract", router.handler.Extract)
		r.With(router.chiMiddleware.RateLimitPlan()).Post("/plan", router.handler.Plan)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
