// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvblock/binop"
	"github.com/katalvlaran/lvblock/harness"
	"github.com/katalvlaran/lvblock/sparsity"
)

// errSuiteFailed is returned when at least one scenario missed its expectation.
var errSuiteFailed = errors.New("blockharness: suite failed")

type runFlags struct {
	threshold float64
	verbose   bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "blockharness",
		Short:         "Run elementwise operator scenario suites",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd())

	return root
}

func newRunCmd() *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "run suite.yaml [suite.yaml...]",
		Short: "Execute every scenario of the given suites",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if math.IsNaN(flags.threshold) || flags.threshold < 0 || flags.threshold > 1 {
				return fmt.Errorf("--threshold %g: must lie in [0, 1]", flags.threshold)
			}
			return runSuites(cmd.OutOrStdout(), cmd.ErrOrStderr(), flags, args)
		},
	}
	cmd.Flags().Float64Var(&flags.threshold, "threshold", sparsity.DefaultThreshold, "density at or below which results are stored sparse")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log engine decisions at debug level")

	return cmd
}

func runSuites(stdout, stderr io.Writer, flags runFlags, paths []string) error {
	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	eng := binop.NewEngine(binop.WithThreshold(flags.threshold), binop.WithLogger(logger))

	failed := false
	for _, path := range paths {
		suite, err := harness.LoadSuiteFile(path)
		if err != nil {
			return err
		}
		sum, err := suite.RunAll(eng, harness.WithLogger(logger))
		printSummary(stdout, sum)
		if err != nil {
			failed = true
		}
	}
	if failed {
		return errSuiteFailed
	}

	return nil
}

func printSummary(w io.Writer, sum harness.Summary) {
	fmt.Fprintf(w, "suite %s (run %s)\n", sum.Suite, sum.RunID)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tSTRATEGY\tOUTCOME\tNNZ")
	for _, r := range sum.Reports {
		outcome := r.ResultKind.String()
		if r.Rejected {
			outcome = "dimension mismatch"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", r.Scenario, r.Strategy, outcome, r.NonZeros)
	}
	_ = tw.Flush()
	for _, err := range sum.Failures {
		fmt.Fprintf(w, "FAIL %v\n", err)
	}
	if sum.Passed() {
		fmt.Fprintln(w, "ok")
	}
}
