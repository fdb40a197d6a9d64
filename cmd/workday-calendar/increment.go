package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/workday-calendar/pkg/dateutil"
)

func incrementCmd() *cobra.Command {
	var startStr string
	var delta float64

	cmd := &cobra.Command{
		Use:   "increment",
		Short: "Add workdays to a start time",
		Example: `  workday-calendar increment --start "2004-05-24 19:03" --delta 44.723656
  workday-calendar increment --start "2020-11-27 16:00" --delta -3.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := dateutil.ParseDateTime(startStr)
			if err != nil {
				return err
			}

			calc, err := initializeCalculator(cmd.Context())
			if err != nil {
				return err
			}

			result, err := calc.Increment(start, delta)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s with the addition of %v working days is %s\n",
				dateutil.FormatDateTime(start), delta, dateutil.FormatDateTime(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&startStr, "start", "s", "", "Start time, format: "+dateutil.DateTimeLayout)
	cmd.Flags().Float64VarP(&delta, "delta", "d", 0, "Workdays to add, negative to subtract")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("delta")

	return cmd
}
