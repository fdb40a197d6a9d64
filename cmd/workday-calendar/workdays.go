package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/workday-calendar/internal/calendar"
)

func workdaysCmd() *cobra.Command {
	var fromStr, toStr string
	var all bool

	cmd := &cobra.Command{
		Use:   "workdays",
		Short: "List working days in a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := calendar.ParseDate(fromStr)
			if err != nil {
				return err
			}
			to, err := calendar.ParseDate(toStr)
			if err != nil {
				return err
			}
			if to.Before(from) {
				return fmt.Errorf("--to %s is before --from %s", to, from)
			}

			calc, err := initializeCalculator(cmd.Context())
			if err != nil {
				return err
			}
			cal := calc.Calendar()

			out := cmd.OutOrStdout()
			if !all {
				days := cal.Workdays(from, to)
				for _, d := range days {
					fmt.Fprintf(out, "%s %s\n", d, d.Weekday().String()[:3])
				}
				fmt.Fprintf(out, "%d working day(s)\n", len(days))
				return nil
			}

			for d := from; !d.After(to); d = d.AddDays(1) {
				fmt.Fprintf(out, "%s %s %s\n", d, d.Weekday().String()[:3], cal.Classify(d))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "First date, format: 2006-01-02 or 02.01.2006")
	cmd.Flags().StringVar(&toStr, "to", "", "Last date, format: 2006-01-02 or 02.01.2006")
	cmd.Flags().BoolVar(&all, "all", false, "Show every date with its day type")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
