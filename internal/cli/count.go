package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tkruke/roundtrip/grid"
	"github.com/tkruke/roundtrip/tour"
)

// countOpts holds the command-line flags for the count command.
type countOpts struct {
	show             int   // number of tours to draw (0 = none)
	progressInterval int64 // accepted-tour spacing between progress logs
}

// newCountCmd creates the count command: one validated board, one
// enumeration run, one counter block.
func newCountCmd() *cobra.Command {
	opts := &countOpts{}

	cmd := &cobra.Command{
		Use:   "count <n> <m>",
		Short: "Count the closed tours of an n×m board",
		Long: `Count runs one exhaustive enumeration over the n×m board and prints the
accepted-tour count together with the search-tree counters. n ≤ m is
required (the transpose has the same tours); board size n*m must be even
and within the published 12..128 window.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseDimension("n", args[0])
			if err != nil {
				return err
			}
			m, err := parseDimension("m", args[1])
			if err != nil {
				return err
			}

			return runCount(cmd, n, m, opts)
		},
	}

	cmd.Flags().IntVar(&opts.show, "show", 0, "draw the first k accepted tours")
	cmd.Flags().Int64Var(&opts.progressInterval, "progress-interval", tour.DefaultProgressInterval,
		"log progress every k accepted tours")

	return cmd
}

// runCount validates the board, runs the engine once and prints the result.
// The command context flows into the search, so Ctrl-C interrupts a long
// run; the partial counters gathered so far are still printed.
func runCount(cmd *cobra.Command, n, m int, opts *countOpts) error {
	if err := validateBoard(n, m); err != nil {
		return err
	}

	logger := loggerFromContext(cmd.Context())
	logger.Debug("building topology", "n", n, "m", m)
	topo, err := grid.NewTopology(n, m)
	if err != nil {
		return fmt.Errorf("building %d×%d topology: %w", n, m, err)
	}

	eopts := []tour.Option{
		tour.WithContext(cmd.Context()),
		tour.WithProgressInterval(opts.progressInterval),
		tour.WithProgress(func(elapsed time.Duration, tours int64) {
			logger.Info("still searching", "tours", tours, "elapsed", elapsed.Round(time.Millisecond))
		}),
	}
	if opts.show > 0 {
		eopts = append(eopts, tour.WithTourRecording())
	}

	logger.Debug("searching", "vertices", topo.Vertices(), "rim", topo.RimLen())
	res, err := tour.Enumerate(topo, eopts...)
	if err != nil {
		// Print what we have before surfacing the interruption.
		fmt.Fprint(cmd.OutOrStdout(), renderSummary(n, m, res))

		return fmt.Errorf("enumeration interrupted: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), renderSummary(n, m, res))
	for k := 0; k < opts.show && k < len(res.Tours); k++ {
		fmt.Fprintf(cmd.OutOrStdout(), "\ntour %d:\n%s", k+1, renderTour(topo, res.Tours[k]))
	}

	return nil
}
