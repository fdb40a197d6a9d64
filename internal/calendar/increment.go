package calendar

import (
	"fmt"
	"math"
	"time"
)

const (
	// MaxIncrement bounds the whole-workday part of an increment
	MaxIncrement = 1_000_000

	// maxSkippedDays is the longest run of non-working days tolerated while
	// stepping. A longer run means the holidays cover every weekday.
	maxSkippedDays = 366
)

// SplitIncrement splits delta into whole workdays truncated toward zero and a
// remainder carrying the sign of delta. -3.5 splits into -3 and -0.5.
func SplitIncrement(delta float64) (whole int64, remainder float64) {
	w := math.Trunc(delta)
	return int64(w), delta - w
}

// Increment adds delta workdays to start.
//
// The start date is first anchored: moving forward from after the work window
// begins on the next day, moving backward from before it begins on the previous
// day. Whole workdays are then stepped one calendar day at a time, skipping
// weekends and holidays. The fractional remainder becomes a proportional offset
// from the window start (forward) or stop (backward).
//
// delta must be finite and at most MaxIncrement in magnitude, otherwise
// ErrInvalidArgument is returned.
func (c Calendar) Increment(start time.Time, delta float64) (time.Time, error) {
	if !c.configured {
		return time.Time{}, ErrNotConfigured
	}
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return time.Time{}, fmt.Errorf("%w: increment %v is not a finite number", ErrInvalidArgument, delta)
	}
	if math.Abs(delta) > MaxIncrement {
		return time.Time{}, fmt.Errorf("%w: increment %v exceeds %d workdays", ErrInvalidArgument, delta, MaxIncrement)
	}

	whole, remainder := SplitIncrement(delta)
	forward := delta >= 0

	date, err := c.walk(c.anchor(start, forward), whole, forward)
	if err != nil {
		return time.Time{}, err
	}

	return date.At(c.remainderTime(remainder, forward), start.Location()), nil
}

// anchor picks the date stepping starts from. The window edges are inclusive:
// a start exactly at the stop time still belongs to its own day.
func (c Calendar) anchor(start time.Time, forward bool) Date {
	date := DateOf(start)
	tod := TimeOfDayOf(start)

	if forward && tod > c.window.Stop {
		return date.AddDays(1)
	}
	if !forward && tod < c.window.Start {
		return date.AddDays(-1)
	}
	return date
}

// walk steps |whole| workdays from date. The anchor itself is never tested.
func (c Calendar) walk(date Date, whole int64, forward bool) (Date, error) {
	step := 1
	if !forward {
		step = -1
	}
	if whole < 0 {
		whole = -whole
	}

	for i := int64(0); i < whole; i++ {
		date = date.AddDays(step)
		for skipped := 0; !c.IsWorkday(date); skipped++ {
			if skipped >= maxSkippedDays {
				return Date{}, fmt.Errorf("%w: no working day within %d days of %s", ErrConfiguration, maxSkippedDays, date)
			}
			date = date.AddDays(step)
		}
	}

	return date, nil
}

// remainderTime maps a fractional workday onto the work window in nanoseconds
func (c Calendar) remainderTime(remainder float64, forward bool) TimeOfDay {
	offset := TimeOfDay(float64(c.window.Duration()) * math.Abs(remainder))
	if forward {
		return c.window.Start + offset
	}
	return c.window.Stop - offset
}
