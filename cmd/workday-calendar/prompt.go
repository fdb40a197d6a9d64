package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/workday-calendar/internal/calculator"
	"github.com/username/workday-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

var (
	errNoInput         = errors.New("input closed")
	errTooManyAttempts = errors.New("too many invalid entries")
)

func promptCmd() *cobra.Command {
	var maxAttempts int

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Interactive session: read a start time and an increment from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxAttempts < 1 {
				return fmt.Errorf("--max-attempts must be at least 1")
			}

			calc, err := initializeCalculator(cmd.Context())
			if err != nil {
				return err
			}

			return runPrompt(calc, cmd.InOrStdin(), cmd.OutOrStdout(), maxAttempts)
		},
	}

	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 3, "Invalid entries tolerated per value before giving up")

	return cmd
}

// promptSession reads values line by line, re-asking on invalid input up
// to maxAttempts times
type promptSession struct {
	in          *bufio.Scanner
	out         io.Writer
	maxAttempts int
}

func runPrompt(calc *calculator.Calculator, in io.Reader, out io.Writer, maxAttempts int) error {
	s := &promptSession{
		in:          bufio.NewScanner(in),
		out:         out,
		maxAttempts: maxAttempts,
	}

	cal := calc.Calendar()
	window, _ := cal.Window()
	fmt.Fprintln(out, "Welcome to the workday calculator")
	fmt.Fprintf(out, "Workday is set from %s to %s\n", window.Start, window.Stop)
	for _, d := range cal.Holidays() {
		fmt.Fprintf(out, "Specific holiday: %s\n", d)
	}
	for _, md := range cal.RecurringHolidays() {
		fmt.Fprintf(out, "Recurring holiday: %s every year\n", md)
	}

	var start time.Time
	err := s.ask("Please enter start date-time in format yyyy-MM-dd HH:mm, such as 2004-05-24 07:00", func(line string) error {
		var err error
		start, err = time.Parse(dateutil.DateTimeLayout, line)
		return err
	})
	if err != nil {
		return fmt.Errorf("start date-time: %w", err)
	}

	var delta float64
	err = s.ask("Please enter workdays to add in format x.xx, such as -5.5", func(line string) error {
		var err error
		delta, err = parseDelta(line)
		return err
	})
	if err != nil {
		return fmt.Errorf("workday increment: %w", err)
	}

	result, err := calc.Increment(start, delta)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s with the addition of %v working days is %s\n",
		dateutil.FormatDateTime(start), delta, dateutil.FormatDateTime(result))
	return nil
}

func (s *promptSession) ask(question string, parse func(line string) error) error {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		fmt.Fprintln(s.out, question)

		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return errNoInput
		}

		line := strings.TrimSpace(s.in.Text())
		if err := parse(line); err != nil {
			logger.Warn("Invalid entry",
				zap.String("input", line),
				zap.Int("attempt", attempt),
				zap.Error(err))
			fmt.Fprintf(s.out, "Invalid entry %q, try again (%d of %d)\n", line, attempt, s.maxAttempts)
			continue
		}
		return nil
	}

	return fmt.Errorf("%w: gave up after %d attempts", errTooManyAttempts, s.maxAttempts)
}

func parseDelta(line string) (float64, error) {
	delta, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return 0, fmt.Errorf("increment must be a finite number")
	}
	return delta, nil
}
