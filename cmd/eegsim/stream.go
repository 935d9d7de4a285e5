// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/neurotap/eeg-pipeline/simulator"
)

// StreamOptions holds flags for the stream subcommand.
type StreamOptions struct {
	*RootOptions
	APIURL      string
	RecordingID string
	Limit       int
	Delay       time.Duration
	SessionPath string
}

// NewStreamCommand builds the stream subcommand.
func NewStreamCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StreamOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "stream [recording.edf ...]",
		Short: "Replay EDF recordings through the ingest API",
		Long: `Stream slices each recording into one-second chunks and posts them
sequentially to the ingest endpoint, the way a bedside device would.

Chunks the server has already stored come back as duplicates, so an
interrupted run can simply be restarted from the top.

Examples:
  eegsim stream chb01_03.edf
  eegsim stream --limit 10 --delay 0s chb01_03.edf
  eegsim stream --session patient01.yaml`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStream(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.APIURL, "url", simulator.DefaultAPIURL, "ingest endpoint URL")
	cmd.Flags().StringVar(&opts.RecordingID, "recording-id", "", "recording ID override (single file only)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "max chunks to send per recording (0 = all)")
	cmd.Flags().DurationVar(&opts.Delay, "delay", 10*time.Millisecond, "pause between chunks")
	cmd.Flags().StringVar(&opts.SessionPath, "session", "", "YAML session playlist instead of file arguments")

	return cmd
}

func runStream(cmd *cobra.Command, opts *StreamOptions, args []string) error {
	if opts.SessionPath == "" && len(args) == 0 {
		return fmt.Errorf("nothing to stream: pass EDF files or --session")
	}
	if opts.SessionPath != "" && len(args) > 0 {
		return fmt.Errorf("--session and file arguments are mutually exclusive")
	}
	if opts.RecordingID != "" && len(args) != 1 {
		return fmt.Errorf("--recording-id requires exactly one file argument")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var results []*simulator.Result
	var runErr error

	if opts.SessionPath != "" {
		session, err := simulator.LoadSession(opts.SessionPath)
		if err != nil {
			return err
		}
		results, runErr = session.Run(ctx)
	} else {
		for _, path := range args {
			result, err := simulator.StreamFile(ctx, path, simulator.Options{
				APIURL:      opts.APIURL,
				RecordingID: opts.RecordingID,
				Limit:       opts.Limit,
				Delay:       opts.Delay,
			})
			if result != nil {
				results = append(results, result)
			}
			if err != nil {
				runErr = fmt.Errorf("stream %s: %w", path, err)
				break
			}
		}
	}

	for _, r := range results {
		fmt.Fprintln(cmd.OutOrStdout(), r.Summary())
	}
	return runErr
}
