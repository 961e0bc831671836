// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"
)

// TreeConfig holds restart policy for every supervisor in the tree.
type TreeConfig struct {
	// FailureThreshold is the number of failures before backoff kicks in.
	FailureThreshold float64

	// FailureDecay is the half-life of the failure count, in seconds.
	FailureDecay float64

	// FailureBackoff is how long to wait once the threshold is crossed.
	FailureBackoff time.Duration

	// ShutdownTimeout bounds how long each service gets to stop.
	ShutdownTimeout time.Duration
}

// DefaultTreeConfig returns the production restart policy.
func DefaultTreeConfig() TreeConfig {
	return TreeConfig{
		FailureThreshold: 5.0,
		FailureDecay:     30.0,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

// SupervisorTree is the process supervision hierarchy:
//
//	vitrine (root)
//	├── api-layer         HTTP server
//	└── monitoring-layer  periodic performance reports
//
// A crash loop in monitoring never restarts the HTTP server.
type SupervisorTree struct {
	root       *suture.Supervisor
	api        *suture.Supervisor
	monitoring *suture.Supervisor
	logger     *slog.Logger
	config     TreeConfig
}

// NewSupervisorTree builds the tree. Zero config fields take their
// DefaultTreeConfig values. Supervisor events are logged through logger
// via sutureslog.
func NewSupervisorTree(logger *slog.Logger, config TreeConfig) (*SupervisorTree, error) {
	defaults := DefaultTreeConfig()
	if config.FailureThreshold == 0 {
		config.FailureThreshold = defaults.FailureThreshold
	}
	if config.FailureDecay == 0 {
		config.FailureDecay = defaults.FailureDecay
	}
	if config.FailureBackoff == 0 {
		config.FailureBackoff = defaults.FailureBackoff
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = defaults.ShutdownTimeout
	}

	handler := &sutureslog.Handler{Logger: logger}

	rootSpec := suture.Spec{
		EventHook:        handler.MustHook(),
		FailureThreshold: config.FailureThreshold,
		FailureDecay:     config.FailureDecay,
		FailureBackoff:   config.FailureBackoff,
		Timeout:          config.ShutdownTimeout,
	}

	// Child events propagate to the root hook.
	childSpec := suture.Spec{
		FailureThreshold: config.FailureThreshold,
		FailureDecay:     config.FailureDecay,
		FailureBackoff:   config.FailureBackoff,
		Timeout:          config.ShutdownTimeout,
	}

	root := suture.New("vitrine", rootSpec)
	api := suture.New("api-layer", childSpec)
	monitoring := suture.New("monitoring-layer", childSpec)

	root.Add(api)
	root.Add(monitoring)

	return &SupervisorTree{
		root:       root,
		api:        api,
		monitoring: monitoring,
		logger:     logger,
		config:     config,
	}, nil
}

// Root returns the root supervisor.
func (t *SupervisorTree) Root() *suture.Supervisor {
	return t.root
}

// AddAPIService adds a service to the API layer.
func (t *SupervisorTree) AddAPIService(svc suture.Service) suture.ServiceToken {
	return t.api.Add(svc)
}

// AddMonitoringService adds a service to the monitoring layer.
func (t *SupervisorTree) AddMonitoringService(svc suture.Service) suture.ServiceToken {
	return t.monitoring.Add(svc)
}

// Serve runs the tree until ctx is canceled.
func (t *SupervisorTree) Serve(ctx context.Context) error {
	return t.root.Serve(ctx)
}

// ServeBackground runs the tree in a goroutine. The channel receives the
// result of Serve.
func (t *SupervisorTree) ServeBackground(ctx context.Context) <-chan error {
	return t.root.ServeBackground(ctx)
}

// Run serves the tree in the background and blocks for its single result.
// Shutdown caused by ctx cancellation returns nil.
func (t *SupervisorTree) Run(ctx context.Context) error {
	if err := <-t.ServeBackground(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// UnstoppedServiceReport lists services that did not stop within the
// shutdown timeout.
func (t *SupervisorTree) UnstoppedServiceReport() ([]suture.UnstoppedService, error) {
	return t.root.UnstoppedServiceReport()
}
