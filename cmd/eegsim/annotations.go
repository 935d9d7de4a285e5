// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neurotap/eeg-pipeline/annotations"
)

// NewAnnotationsCommand builds the annotations subcommand.
func NewAnnotationsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "annotations <summary.txt ...>",
		Short: "Summarize CHB-MIT seizure annotation files",
		Long: `Annotations parses one or more chbXX-summary.txt files and prints a
per-patient report: hours recorded, seizure counts and durations, and
the seizure rate per 24 hours of recording.

This runs entirely offline; no server is involved.

Example:
  eegsim annotations chb01-summary.txt chb02-summary.txt`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := annotations.AnalyzeFiles(cmd.Context(), args)
			if err != nil {
				return err
			}

			for i, s := range summaries {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				if err := annotations.WriteReport(cmd.OutOrStdout(), s); err != nil {
					return err
				}
			}
			return nil
		},
	}

	return cmd
}
