package holidays

import (
	"context"
	"fmt"
	"sort"
	"strings"

	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/no"
	"github.com/rickar/cal/v2/us"
	"github.com/username/workday-calendar/internal/calendar"
)

var presets = map[string][]*cal.Holiday{
	"gb": gb.Holidays,
	"no": no.Holidays,
	"us": us.Holidays,
}

// Countries returns the supported preset country codes
func Countries() []string {
	codes := make([]string, 0, len(presets))
	for code := range presets {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// PresetSource expands a country's public holidays into specific dates for
// an inclusive range of years. Observed dates are used, so a holiday moved
// off a weekend lands on the day actually taken off.
type PresetSource struct {
	country  string
	fromYear int
	toYear   int
}

// NewPresetSource validates the country code and year range
func NewPresetSource(country string, fromYear, toYear int) (*PresetSource, error) {
	country = strings.ToLower(country)
	if _, ok := presets[country]; !ok {
		return nil, fmt.Errorf("unknown holiday preset %q, supported: %s", country, strings.Join(Countries(), ", "))
	}
	if fromYear > toYear {
		return nil, fmt.Errorf("invalid preset year range %d..%d", fromYear, toYear)
	}
	return &PresetSource{country: country, fromYear: fromYear, toYear: toYear}, nil
}

func (ps *PresetSource) Name() string {
	return fmt.Sprintf("preset:%s:%d-%d", ps.country, ps.fromYear, ps.toYear)
}

// Load computes the holidays of every year in range
func (ps *PresetSource) Load(ctx context.Context) (*Set, error) {
	set := &Set{}
	for year := ps.fromYear; year <= ps.toYear; year++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, h := range presets[ps.country] {
			_, observed := h.Calc(year)
			if observed.IsZero() {
				continue
			}
			set.Specific = append(set.Specific, calendar.DateOf(observed))
		}
	}
	return set, nil
}
