package holidays

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/username/workday-calendar/internal/calendar"
	"go.uber.org/zap"
)

const (
	isdayoffBaseURL    = "https://isdayoff.ru"
	defaultHTTPTimeout = 10 * time.Second
)

// IsDayOffSource fetches public holidays from the isdayoff.ru bulk API.
// Weekdays the API marks as non-working become specific holidays.
// Working weekends have no counterpart in the calendar and are ignored.
type IsDayOffSource struct {
	httpClient *http.Client
	baseURL    string
	country    string
	fromYear   int
	toYear     int
	logger     *zap.Logger

	cacheMu sync.RWMutex
	cache   map[string]*Set // key: "YYYY-MM"
}

// NewIsDayOffSource creates a new IsDayOffSource instance
func NewIsDayOffSource(baseURL, country string, fromYear, toYear int, logger *zap.Logger) *IsDayOffSource {
	if baseURL == "" {
		baseURL = isdayoffBaseURL
	}
	if country == "" {
		country = "ru"
	}

	return &IsDayOffSource{
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
		baseURL:  strings.TrimRight(baseURL, "/"),
		country:  country,
		fromYear: fromYear,
		toYear:   toYear,
		logger:   logger,
		cache:    make(map[string]*Set),
	}
}

func (s *IsDayOffSource) Name() string {
	return fmt.Sprintf("isdayoff:%s:%d-%d", s.country, s.fromYear, s.toYear)
}

// Load fetches every month of the configured years
func (s *IsDayOffSource) Load(ctx context.Context) (*Set, error) {
	set := &Set{}
	for year := s.fromYear; year <= s.toYear; year++ {
		for month := time.January; month <= time.December; month++ {
			monthSet, err := s.month(ctx, year, month)
			if err != nil {
				return nil, err
			}
			set.Merge(monthSet)
		}
	}
	return set, nil
}

func (s *IsDayOffSource) month(ctx context.Context, year int, month time.Month) (*Set, error) {
	cacheKey := fmt.Sprintf("%d-%02d", year, month)

	s.cacheMu.RLock()
	if cached, ok := s.cache[cacheKey]; ok {
		s.cacheMu.RUnlock()
		return cached, nil
	}
	s.cacheMu.RUnlock()

	set, err := s.fetchMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	s.cacheMu.Lock()
	s.cache[cacheKey] = set
	s.cacheMu.Unlock()

	return set, nil
}

// fetchMonth fetches an entire month from the bulk API
func (s *IsDayOffSource) fetchMonth(ctx context.Context, year int, month time.Month) (*Set, error) {
	// Build URL: https://isdayoff.ru/api/getdata?year=2025&month=11&cc=ru
	url := fmt.Sprintf("%s/api/getdata?year=%d&month=%d&cc=%s",
		s.baseURL, year, int(month), s.country)

	s.logger.Debug("Fetching month from isdayoff",
		zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch calendar data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("isdayoff API returned status %d for %d-%02d", resp.StatusCode, year, month)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	set, err := parseBulkResponse(year, month, strings.TrimSpace(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse bulk response: %w", err)
	}

	s.logger.Debug("Month fetched from isdayoff",
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.Int("holidays", len(set.Specific)))

	return set, nil
}

// parseBulkResponse parses an isdayoff bulk response string
// Format: "211100011000001100000110000011" where:
// 0 = working day
// 1 = non-working day (holiday/weekend)
// 2 = shortened working day
// 4 = working day (covid-era code)
func parseBulkResponse(year int, month time.Month, data string) (*Set, error) {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	if len(data) != daysInMonth {
		return nil, fmt.Errorf("bulk data length mismatch: expected %d, got %d", daysInMonth, len(data))
	}

	set := &Set{}
	for i, code := range data {
		date := calendar.NewDate(year, month, i+1)

		switch code {
		case '0', '2', '4':
		case '1':
			if !date.IsWeekend() {
				set.Specific = append(set.Specific, date)
			}
		default:
			return nil, fmt.Errorf("unknown code '%c' at position %d", code, i)
		}
	}

	return set, nil
}
