package calculator

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/username/workday-calendar/internal/calendar"
	"github.com/username/workday-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

// Calculator runs workday increments against a configured calendar and logs them
type Calculator struct {
	calendar calendar.Calendar
	logger   *zap.Logger
}

// NewCalculator creates a new calculator
func NewCalculator(cal calendar.Calendar, logger *zap.Logger) *Calculator {
	return &Calculator{
		calendar: cal,
		logger:   logger,
	}
}

// Calendar returns the calendar used for computations
func (c *Calculator) Calendar() calendar.Calendar {
	return c.calendar
}

// Increment adds delta workdays to start
func (c *Calculator) Increment(start time.Time, delta float64) (time.Time, error) {
	result, err := c.calendar.Increment(start, delta)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to add %v workdays to %s: %w",
			delta, dateutil.FormatDateTime(start), err)
	}

	c.logger.Info("Workday increment computed",
		zap.Time("start", start),
		zap.Float64("delta", delta),
		zap.Time("result", result))

	return result, nil
}

// Row is one line of a batch file
type Row struct {
	Start  string `csv:"start"`
	Delta  string `csv:"delta"`
	Result string `csv:"result"`
	Error  string `csv:"error"`
}

// BatchSummary reports the outcome of ProcessBatch
type BatchSummary struct {
	Rows     int
	Failed   int
	Duration time.Duration
}

// ProcessBatch reads start,delta rows as CSV from r and writes them to w with
// result and error columns filled in. A row that cannot be computed keeps an
// empty result and its error text; the remaining rows are still processed.
func (c *Calculator) ProcessBatch(r io.Reader, w io.Writer) (*BatchSummary, error) {
	startTime := time.Now()

	var rows []*Row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to read batch input: %w", err)
	}

	summary := &BatchSummary{Rows: len(rows)}
	for i, row := range rows {
		row.Result, row.Error = "", ""

		result, err := c.processRow(row)
		if err != nil {
			summary.Failed++
			row.Error = err.Error()
			c.logger.Warn("Batch row failed",
				zap.Int("row", i+1),
				zap.String("start", row.Start),
				zap.String("delta", row.Delta),
				zap.Error(err))
			continue
		}
		row.Result = dateutil.FormatDateTime(result)
	}

	if err := gocsv.Marshal(&rows, w); err != nil {
		return nil, fmt.Errorf("failed to write batch output: %w", err)
	}

	summary.Duration = time.Since(startTime)
	c.logger.Info("Batch processed",
		zap.Int("rows", summary.Rows),
		zap.Int("failed", summary.Failed),
		zap.Duration("duration", summary.Duration))

	return summary, nil
}

func (c *Calculator) processRow(row *Row) (time.Time, error) {
	start, err := dateutil.ParseDateTime(strings.TrimSpace(row.Start))
	if err != nil {
		return time.Time{}, err
	}
	delta, err := strconv.ParseFloat(strings.TrimSpace(row.Delta), 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid delta %q: %w", row.Delta, err)
	}
	return c.Increment(start, delta)
}
