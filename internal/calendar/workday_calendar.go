package calendar

import (
	"sort"
)

// Calendar is the immutable workday configuration: a daily work window plus
// specific and recurring holidays. The zero value has no work window.
//
// With* methods return a new Calendar and never modify the receiver, so a
// configured value can be shared by concurrent Increment calls.
type Calendar struct {
	window     Window
	configured bool
	holidays   map[Date]struct{}
	recurring  map[MonthDay]struct{}
}

// New returns a calendar configured with the given work window
func New(start, stop TimeOfDay) (Calendar, error) {
	return Calendar{}.WithWorkWindow(start, stop)
}

// WithWorkWindow replaces the daily work window
func (c Calendar) WithWorkWindow(start, stop TimeOfDay) (Calendar, error) {
	window, err := NewWindow(start, stop)
	if err != nil {
		return c, err
	}
	c.window = window
	c.configured = true
	return c, nil
}

// WithHoliday adds a non-recurring holiday. Weekend dates are ignored since
// they are never working days.
func (c Calendar) WithHoliday(date Date) Calendar {
	return c.WithHolidays(date)
}

// WithHolidays adds several non-recurring holidays at once
func (c Calendar) WithHolidays(dates ...Date) Calendar {
	holidays := make(map[Date]struct{}, len(c.holidays)+len(dates))
	for d := range c.holidays {
		holidays[d] = struct{}{}
	}
	for _, d := range dates {
		if d.IsWeekend() {
			continue
		}
		holidays[d] = struct{}{}
	}
	c.holidays = holidays
	return c
}

// WithRecurringHoliday adds the month and day of date as a yearly holiday.
// The year of date is discarded.
func (c Calendar) WithRecurringHoliday(date Date) Calendar {
	return c.WithRecurringHolidays(date.MonthDay())
}

// WithRecurringHolidays adds several yearly holidays at once
func (c Calendar) WithRecurringHolidays(days ...MonthDay) Calendar {
	recurring := make(map[MonthDay]struct{}, len(c.recurring)+len(days))
	for md := range c.recurring {
		recurring[md] = struct{}{}
	}
	for _, md := range days {
		recurring[md] = struct{}{}
	}
	c.recurring = recurring
	return c
}

// Window returns the work window and whether one was configured
func (c Calendar) Window() (Window, bool) {
	return c.window, c.configured
}

// Holidays returns the specific holidays in ascending order
func (c Calendar) Holidays() []Date {
	dates := make([]Date, 0, len(c.holidays))
	for d := range c.holidays {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// RecurringHolidays returns the recurring holidays in calendar order
func (c Calendar) RecurringHolidays() []MonthDay {
	days := make([]MonthDay, 0, len(c.recurring))
	for md := range c.recurring {
		days = append(days, md)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// IsHoliday reports whether date is a specific holiday
func (c Calendar) IsHoliday(date Date) bool {
	_, ok := c.holidays[date]
	return ok
}

// IsRecurringHoliday reports whether the month and day of date recur as a holiday
func (c Calendar) IsRecurringHoliday(date Date) bool {
	_, ok := c.recurring[date.MonthDay()]
	return ok
}

// Classify returns the type of the given date. Weekends take precedence
// over holidays.
func (c Calendar) Classify(date Date) DayType {
	switch {
	case date.IsWeekend():
		return DayTypeWeekend
	case c.IsHoliday(date):
		return DayTypeHoliday
	case c.IsRecurringHoliday(date):
		return DayTypeRecurringHoliday
	default:
		return DayTypeWorkday
	}
}

// IsWorkday checks if the given date is a working day
func (c Calendar) IsWorkday(date Date) bool {
	return c.Classify(date) == DayTypeWorkday
}

// Workdays returns the working days in [from, to]
func (c Calendar) Workdays(from, to Date) []Date {
	var days []Date
	for d := from; !d.After(to); d = d.AddDays(1) {
		if c.IsWorkday(d) {
			days = append(days, d)
		}
	}
	return days
}
