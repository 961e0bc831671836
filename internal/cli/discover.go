// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package cli

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// DiscoverCmd returns the discover command.
func DiscoverCmd(opts *globalOptions) *cobra.Command {
	var (
		briefPath string
		topN      int
		asJSON    bool
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Run artist discovery for a brief",
		Long: `Plan catalog searches from the brief, fetch results, group records by
artist and print the ranked shortlist.

Catalog failures do not abort the run: failed sections are reported as
warnings and the remaining results are still ranked.`,
		Example: `  vitrine discover --brief dreams.yaml
  vitrine discover --brief dreams.yaml --top 10 --verbose
  vitrine discover --brief dreams.yaml --json > result.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			bf, err := LoadBriefFile(briefPath)
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if topN > 0 {
				cfg.Extraction.TopN = topN
			}

			result := newCoordinator(cfg).Run(cmd.Context(), bf.Brief, bf.Sections)

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return fmt.Errorf("encode result: %w", err)
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}

			RenderResult(out, result, verbose)
			return nil
		},
	}

	cmd.Flags().StringVarP(&briefPath, "brief", "b", "", "YAML brief file (required)")
	cmd.Flags().IntVar(&topN, "top", 0, "shortlist size (overrides EXTRACTION_TOP_N)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print a profile line under each artist")
	_ = cmd.MarkFlagRequired("brief")

	return cmd
}
