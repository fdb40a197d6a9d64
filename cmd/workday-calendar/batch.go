package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func batchCmd() *cobra.Command {
	var inPath, outPath string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Compute increments for every start,delta row of a CSV file",
		Example: `  workday-calendar batch --in requests.csv --out results.csv
  cat requests.csv | workday-calendar batch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, err := initializeCalculator(cmd.Context())
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if inPath != "-" {
				f, err := os.Open(inPath)
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			var out io.Writer = cmd.OutOrStdout()
			if outPath != "-" {
				f, err := os.OpenFile(outPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
				if err != nil {
					return fmt.Errorf("failed to open output: %w", err)
				}
				defer f.Close()
				out = f
			}

			summary, err := calc.ProcessBatch(in, out)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Processed %d row(s), %d failed, took %s\n",
				summary.Rows, summary.Failed, summary.Duration)
			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "-", "Input CSV with start,delta columns (- for stdin)")
	cmd.Flags().StringVar(&outPath, "out", "-", "Output CSV (- for stdout)")

	return cmd
}
