// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package cli

import (
	"github.com/spf13/cobra"
)

// PlanCmd returns the plan command. It makes no catalog calls.
func PlanCmd(opts *globalOptions) *cobra.Command {
	var briefPath string

	cmd := &cobra.Command{
		Use:     "plan",
		Short:   "Show the catalog queries a brief would run",
		Example: `  vitrine plan --brief dreams.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			bf, err := LoadBriefFile(briefPath)
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			RenderQueries(cmd.OutOrStdout(), newCoordinator(cfg).Plan(bf.Brief, bf.Sections))
			return nil
		},
	}

	cmd.Flags().StringVarP(&briefPath, "brief", "b", "", "YAML brief file (required)")
	_ = cmd.MarkFlagRequired("brief")

	return cmd
}
