// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/vitrine/internal/catalog"
	"github.com/tomtom215/vitrine/internal/config"
	"github.com/tomtom215/vitrine/internal/logging"
	"github.com/tomtom215/vitrine/internal/pipeline"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	catalogURL string
	logLevel   string
}

// RootCmd returns the vitrine root command with all subcommands attached.
func RootCmd(version string) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:     "vitrine",
		Short:   "Vitrine - artist discovery for exhibition curators",
		Version: version,
		Long: `Vitrine searches a federated cultural-heritage catalog for artists that
fit a thematic exhibition brief, and ranks them by collection quality and
thematic relevance.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file path (default: CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().StringVar(&opts.catalogURL, "catalog-url", "", "catalog base URL override")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level for stderr output")

	root.AddCommand(DiscoverCmd(opts))
	root.AddCommand(PlanCmd(opts))

	return root
}

// loadConfig loads configuration and points logging at stderr in console
// format so that stdout carries only command output.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if o.catalogURL != "" {
		cfg.Catalog.BaseURL = o.catalogURL
	}

	lc := cfg.Logging.ToLoggingConfig()
	lc.Format = "console"
	lc.Level = o.logLevel
	lc.Output = os.Stderr
	logging.Init(lc)

	return cfg, nil
}

// newCoordinator builds the pipeline against the configured catalog.
func newCoordinator(cfg *config.Config) *pipeline.Coordinator {
	searcher := catalog.WithCache(catalog.New(&cfg.Catalog), cfg.Catalog.CacheSize, cfg.Catalog.CacheTTL)
	return pipeline.New(searcher, &cfg.Catalog, &cfg.Extraction)
}
