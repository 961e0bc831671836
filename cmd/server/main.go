// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/vitrine/internal/api"
	"github.com/tomtom215/vitrine/internal/catalog"
	"github.com/tomtom215/vitrine/internal/config"
	"github.com/tomtom215/vitrine/internal/logging"
	"github.com/tomtom215/vitrine/internal/middleware"
	"github.com/tomtom215/vitrine/internal/pipeline"
	"github.com/tomtom215/vitrine/internal/supervisor"
	"github.com/tomtom215/vitrine/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.Logging.ToLoggingConfig())

	logging.Info().
		Str("version", version).
		Str("catalog_url", cfg.Catalog.BaseURL).
		Bool("api_key_set", cfg.Catalog.APIKey != "").
		Int("row_target", cfg.Extraction.RowTarget).
		Int("max_concurrent_queries", cfg.Extraction.MaxConcurrentQueries).
		Msg("Starting Vitrine")

	if cfg.Catalog.APIKey == "" {
		logging.Warn().Msg("EUROPEANA_API_KEY is not set; catalog requests will be rejected upstream")
	}

	catalogClient := catalog.New(&cfg.Catalog)
	searcher := catalog.WithCache(catalogClient, cfg.Catalog.CacheSize, cfg.Catalog.CacheTTL)
	coordinator := pipeline.New(searcher, &cfg.Catalog, &cfg.Extraction)

	perfMon := middleware.NewPerformanceMonitor(1000, 0)
	handler := api.NewHandler(coordinator, api.HandlerOptions{
		Catalog:      catalogClient,
		PerfMon:      perfMon,
		MaxBodyBytes: cfg.Security.MaxBodyBytes,
		Version:      version,
	})
	router := api.NewRouter(handler, api.NewChiMiddleware(api.NewChiMiddlewareConfig(&cfg.Security)))

	// WriteTimeout must cover a full extraction run.
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout))
	tree.AddMonitoringService(services.NewPerformanceReportService(perfMon, services.DefaultReportInterval))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	// Blocks until a signal cancels ctx or the tree fails.
	if err := tree.Run(ctx); err != nil {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Vitrine stopped")
}
