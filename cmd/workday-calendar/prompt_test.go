package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/username/workday-calendar/internal/calculator"
	"github.com/username/workday-calendar/internal/calendar"
	"go.uber.org/zap/zaptest"
)

func newPromptCalculator(t *testing.T) *calculator.Calculator {
	t.Helper()

	cal, err := calendar.New(calendar.NewTimeOfDay(8, 0), calendar.NewTimeOfDay(16, 0))
	if err != nil {
		t.Fatalf("calendar.New() error = %v", err)
	}
	cal = cal.WithHoliday(calendar.NewDate(2004, 5, 27)).
		WithRecurringHoliday(calendar.NewDate(2004, 5, 17))

	return calculator.NewCalculator(cal, zaptest.NewLogger(t))
}

func TestRunPrompt(t *testing.T) {
	in := strings.NewReader("24.05.2004 07:03\n2004-05-24 07:03\nabout eight\n8.276628\n")
	var out bytes.Buffer

	if err := runPrompt(newPromptCalculator(t), in, &out, 3); err != nil {
		t.Fatalf("runPrompt() error = %v", err)
	}

	output := out.String()
	for _, want := range []string{
		"Workday is set from 08:00 to 16:00",
		"Specific holiday: 2004-05-27",
		"Recurring holiday: 05-17 every year",
		"Invalid entry \"24.05.2004 07:03\"",
		"Invalid entry \"about eight\"",
		"2004-05-24 07:03 with the addition of 8.276628 working days is 2004-06-04 10:12",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestRunPrompt_GivesUp(t *testing.T) {
	in := strings.NewReader("a\nb\nc\n2004-05-24 07:03\n1\n")
	var out bytes.Buffer

	err := runPrompt(newPromptCalculator(t), in, &out, 3)
	if !errors.Is(err, errTooManyAttempts) {
		t.Errorf("runPrompt() error = %v, want errTooManyAttempts", err)
	}
}

func TestRunPrompt_InputClosed(t *testing.T) {
	in := strings.NewReader("2004-05-24 07:03\n")
	var out bytes.Buffer

	err := runPrompt(newPromptCalculator(t), in, &out, 3)
	if !errors.Is(err, errNoInput) {
		t.Errorf("runPrompt() error = %v, want errNoInput", err)
	}
}

func TestParseDelta(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"-5.5", -5.5, false},
		{"44.723656", 44.723656, false},
		{"0", 0, false},
		{"NaN", 0, true},
		{"-Inf", 0, true},
		{"five", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseDelta(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDelta(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseDelta(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
