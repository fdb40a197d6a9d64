package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/username/workday-calendar/pkg/dateutil"
)

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
	DayTypeRecurringHoliday
)

func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	case DayTypeRecurringHoliday:
		return "recurring holiday"
	default:
		return "unknown"
	}
}

// Date is a calendar date without time of day or location
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's own location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// NewDate returns a normalized date, so NewDate(2020, 11, 31) is 2020-12-01
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses a date in YYYY-MM-DD or DD.MM.YYYY form
func ParseDate(value string) (Date, error) {
	t, err := dateutil.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// Time returns midnight of d in UTC
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays moves d by n calendar days
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// IsWeekend returns true for Saturday and Sunday
func (d Date) IsWeekend() bool {
	return dateutil.IsWeekend(d.Time())
}

// MonthDay drops the year
func (d Date) MonthDay() MonthDay {
	return MonthDay{Month: d.Month, Day: d.Day}
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

// At combines d with a time of day in loc
func (d Date) At(tod TimeOfDay, loc *time.Location) time.Time {
	h, m, s, ns := tod.Clock()
	return time.Date(d.Year, d.Month, d.Day, h, m, s, ns, loc)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MonthDay identifies a recurring holiday independent of year
type MonthDay struct {
	Month time.Month
	Day   int
}

// days per month, February counted with its leap day
var maxMonthDays = [...]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// NewMonthDay validates month and day. 02-29 is accepted.
func NewMonthDay(month time.Month, day int) (MonthDay, error) {
	if month < time.January || month > time.December {
		return MonthDay{}, fmt.Errorf("invalid month %d", int(month))
	}
	if day < 1 || day > maxMonthDays[month] {
		return MonthDay{}, fmt.Errorf("invalid day %d for %s", day, month)
	}
	return MonthDay{Month: month, Day: day}, nil
}

// ParseMonthDay parses "MM-DD"
func ParseMonthDay(value string) (MonthDay, error) {
	parts := strings.Split(strings.TrimSpace(value), "-")
	if len(parts) != 2 {
		return MonthDay{}, fmt.Errorf("invalid month-day %q, expected MM-DD", value)
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return MonthDay{}, fmt.Errorf("invalid month-day %q: %w", value, err)
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return MonthDay{}, fmt.Errorf("invalid month-day %q: %w", value, err)
	}
	return NewMonthDay(time.Month(month), day)
}

func (md MonthDay) Before(other MonthDay) bool {
	if md.Month != other.Month {
		return md.Month < other.Month
	}
	return md.Day < other.Day
}

func (md MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(md.Month), md.Day)
}

// TimeOfDay is a wall-clock offset from midnight with nanosecond resolution
type TimeOfDay time.Duration

// NewTimeOfDay returns hour:minute
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// TimeOfDayOf returns the wall clock of t
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay(time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond()))
}

// ParseTimeOfDay parses "15:04" or "15:04:05"
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return TimeOfDayOf(t), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q, expected HH:MM", value)
}

// Clock splits the offset into hour, minute, second and nanosecond
func (t TimeOfDay) Clock() (hour, minute, second, nanosecond int) {
	d := time.Duration(t)
	hour = int(d / time.Hour)
	d -= time.Duration(hour) * time.Hour
	minute = int(d / time.Minute)
	d -= time.Duration(minute) * time.Minute
	second = int(d / time.Second)
	d -= time.Duration(second) * time.Second
	return hour, minute, second, int(d)
}

func (t TimeOfDay) String() string {
	h, m, s, ns := t.Clock()
	if s == 0 && ns == 0 {
		return fmt.Sprintf("%02d:%02d", h, m)
	}
	if ns == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%09d", h, m, s, ns)
}

// Window is the daily working interval [Start, Stop]
type Window struct {
	Start TimeOfDay
	Stop  TimeOfDay
}

// NewWindow returns a window, failing unless start precedes stop
func NewWindow(start, stop TimeOfDay) (Window, error) {
	if start < 0 || stop >= TimeOfDay(24*time.Hour) {
		return Window{}, fmt.Errorf("%w: work window %s-%s is outside a single day", ErrConfiguration, start, stop)
	}
	if start >= stop {
		return Window{}, fmt.Errorf("%w: work window start %s must precede stop %s", ErrConfiguration, start, stop)
	}
	return Window{Start: start, Stop: stop}, nil
}

// Duration returns the length of the working interval
func (w Window) Duration() time.Duration {
	return time.Duration(w.Stop - w.Start)
}

func (w Window) String() string {
	return w.Start.String() + "-" + w.Stop.String()
}
