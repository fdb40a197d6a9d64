package holidays

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/username/workday-calendar/internal/calendar"
	"go.uber.org/zap/zaptest"
)

func TestParseBulkResponse(t *testing.T) {
	// November 2025: Nov 1 shortened, Nov 3 and Nov 4 are holidays
	data := "211100011000001100000110000011"

	set, err := parseBulkResponse(2025, time.November, data)
	if err != nil {
		t.Fatalf("parseBulkResponse() error = %v", err)
	}

	want := []calendar.Date{calendar.NewDate(2025, 11, 3), calendar.NewDate(2025, 11, 4)}
	if len(set.Specific) != len(want) {
		t.Fatalf("Specific = %v, want %v", set.Specific, want)
	}
	for i := range want {
		if set.Specific[i] != want[i] {
			t.Errorf("Specific[%d] = %s, want %s", i, set.Specific[i], want[i])
		}
	}
}

func TestParseBulkResponse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Too short", "21110001100000110000011000001"},
		{"Unknown code", "911100011000001100000110000011"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseBulkResponse(2025, time.November, tt.data); err == nil {
				t.Error("parseBulkResponse() expected error, got nil")
			}
		})
	}
}

// weekdaysOnly marks weekends as non-working and the first weekday of every
// month as a holiday
func weekdaysOnly(year int, month time.Month) string {
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	var sb strings.Builder
	holidaySet := false
	for d := 1; d <= days; d++ {
		date := calendar.NewDate(year, month, d)
		switch {
		case date.IsWeekend():
			sb.WriteByte('1')
		case !holidaySet:
			sb.WriteByte('1')
			holidaySet = true
		default:
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func TestIsDayOffSource_Load(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		year, _ := strconv.Atoi(r.URL.Query().Get("year"))
		month, _ := strconv.Atoi(r.URL.Query().Get("month"))
		if r.URL.Query().Get("cc") != "no" {
			http.Error(w, "bad country", http.StatusBadRequest)
			return
		}
		fmt.Fprint(w, weekdaysOnly(year, time.Month(month)))
	}))
	defer server.Close()

	src := NewIsDayOffSource(server.URL, "no", 2021, 2021, zaptest.NewLogger(t))

	set, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(set.Specific) != 12 {
		t.Errorf("Specific = %d holidays, want 12", len(set.Specific))
	}
	if !contains(set.Specific, calendar.NewDate(2021, 1, 1)) {
		t.Error("missing 2021-01-01")
	}
	if !contains(set.Specific, calendar.NewDate(2021, 5, 3)) {
		t.Error("missing 2021-05-03")
	}

	// second load is served from cache
	if _, err := src.Load(context.Background()); err != nil {
		t.Fatalf("second Load() error = %v", err)
	}
	if got := atomic.LoadInt32(&requests); got != 12 {
		t.Errorf("requests = %d, want 12", got)
	}
}

func TestIsDayOffSource_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	src := NewIsDayOffSource(server.URL, "ru", 2021, 2021, zaptest.NewLogger(t))
	if _, err := src.Load(context.Background()); err == nil {
		t.Error("Load() expected error for failing server")
	}
}
