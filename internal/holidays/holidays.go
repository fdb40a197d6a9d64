// Package holidays loads holiday sets from files, national presets and remote
// calendars, and folds them into a calendar.Calendar.
package holidays

import (
	"context"
	"fmt"

	"github.com/username/workday-calendar/internal/calendar"
)

// Set is a collection of specific and recurring holidays
type Set struct {
	Specific  []calendar.Date
	Recurring []calendar.MonthDay
}

// Merge appends the holidays of other
func (s *Set) Merge(other *Set) {
	if other == nil {
		return
	}
	s.Specific = append(s.Specific, other.Specific...)
	s.Recurring = append(s.Recurring, other.Recurring...)
}

// Len returns the number of entries, duplicates included
func (s *Set) Len() int {
	return len(s.Specific) + len(s.Recurring)
}

// Apply returns cal with all holidays of the set added
func (s *Set) Apply(cal calendar.Calendar) calendar.Calendar {
	return cal.WithHolidays(s.Specific...).WithRecurringHolidays(s.Recurring...)
}

// Source provides a holiday set
type Source interface {
	// Name identifies the source in logs
	Name() string

	// Load reads the holidays
	Load(ctx context.Context) (*Set, error)
}

// StaticSource serves literal dates, usually from the configuration file
type StaticSource struct {
	Specific  []string
	Recurring []string
}

func (s *StaticSource) Name() string {
	return "static"
}

// Load parses YYYY-MM-DD specific dates and MM-DD recurring dates
func (s *StaticSource) Load(ctx context.Context) (*Set, error) {
	set := &Set{}
	for _, value := range s.Specific {
		date, err := calendar.ParseDate(value)
		if err != nil {
			return nil, fmt.Errorf("specific holiday: %w", err)
		}
		set.Specific = append(set.Specific, date)
	}
	for _, value := range s.Recurring {
		md, err := calendar.ParseMonthDay(value)
		if err != nil {
			return nil, fmt.Errorf("recurring holiday: %w", err)
		}
		set.Recurring = append(set.Recurring, md)
	}
	return set, nil
}
