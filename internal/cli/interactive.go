package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// newInteractiveCmd creates the interactive command: the original
// prompt loop. Enter board dimensions until a 0 ends the session.
func newInteractiveCmd() *cobra.Command {
	opts := &countOpts{}

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Prompt for board sizes in a loop (0 to end)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.show, "show", 0, "draw the first k accepted tours of each run")
	cmd.Flags().Int64Var(&opts.progressInterval, "progress-interval", 10_000,
		"log progress every k accepted tours")

	return cmd
}

// runInteractive loops: prompt for n and m, validate, enumerate, report.
// Invalid input never ends the session; only the 0 sentinel (or EOF) does.
func runInteractive(cmd *cobra.Command, opts *countOpts) error {
	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())

	fmt.Fprintln(out, "--- La Linea RoundTrip ---")
	for {
		fmt.Fprintln(out, "Enter board size n × m (or 0 to end)")

		n, ok, err := promptDimension(out, in, "n")
		if err != nil || !ok {
			return err
		}
		m, ok, err := promptDimension(out, in, "m")
		if err != nil || !ok {
			return err
		}

		if err = runCount(cmd, n, m, opts); err != nil {
			if cmd.Context().Err() != nil {
				return err // interrupted, stop the session
			}
			fmt.Fprintf(out, "%v\nadjust parameters and try again\n", err)
		}
	}
}

// promptDimension reads one dimension. ok=false means the 0 sentinel or
// end of input: the session is over without error.
func promptDimension(out io.Writer, in *bufio.Scanner, name string) (int, bool, error) {
	for {
		fmt.Fprintf(out, "%s: ", strings.ToUpper(name))
		if !in.Scan() {
			return 0, false, in.Err()
		}
		v, err := parseDimension(name, strings.TrimSpace(in.Text()))
		if err != nil {
			fmt.Fprintf(out, "%v\nplease try again\n", err)
			continue
		}
		if v == 0 {
			return 0, false, nil
		}

		return v, true, nil
	}
}
