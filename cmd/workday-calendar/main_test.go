package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/username/workday-calendar/internal/calendar"
	"github.com/username/workday-calendar/internal/config"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestBuildCalendar(t *testing.T) {
	dir := t.TempDir()
	holidayFile := writeTestFile(t, dir, "holidays.txt", "12-25 Christmas\n2020-11-24\n")

	cfg := config.Default()
	cfg.Holidays.Specific = []string{"2004-05-27"}
	cfg.Holidays.Recurring = []string{"05-17"}
	cfg.Holidays.Files = []string{holidayFile}

	cal, err := buildCalendar(context.Background(), cfg)
	if err != nil {
		t.Fatalf("buildCalendar() error = %v", err)
	}

	checks := []struct {
		date calendar.Date
		want calendar.DayType
	}{
		{calendar.NewDate(2004, 5, 27), calendar.DayTypeHoliday},
		{calendar.NewDate(2020, 11, 24), calendar.DayTypeHoliday},
		{calendar.NewDate(2030, 5, 17), calendar.DayTypeRecurringHoliday},
		{calendar.NewDate(2030, 12, 25), calendar.DayTypeRecurringHoliday},
		{calendar.NewDate(2020, 11, 23), calendar.DayTypeWorkday},
	}
	for _, c := range checks {
		if got := cal.Classify(c.date); got != c.want {
			t.Errorf("Classify(%s) = %s, want %s", c.date, got, c.want)
		}
	}
}

func TestBuildCalendar_MissingHolidayFile(t *testing.T) {
	cfg := config.Default()
	cfg.Holidays.Files = []string{filepath.Join(t.TempDir(), "missing.txt")}

	if _, err := buildCalendar(context.Background(), cfg); err == nil {
		t.Error("buildCalendar() expected error for missing holiday file")
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestIncrementCommand(t *testing.T) {
	cfgPath := writeTestFile(t, t.TempDir(), "config.yaml", `work_window:
  start: "08:00"
  stop: "16:00"
holidays:
  specific: ["2004-05-27"]
  recurring: ["05-17"]
`)

	tests := []struct {
		name  string
		start string
		delta string
		want  string
	}{
		{"Forward across holidays", "2004-05-24 19:03", "44.723656", "is 2004-07-27 13:47"},
		{"Backward fractional", "2004-05-24 18:05", "-5.5", "is 2004-05-14 12:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, "--config", cfgPath, "--log-level", "error",
				"increment", "--start", tt.start, "--delta", tt.delta)
			if err != nil {
				t.Fatalf("increment error = %v, output: %s", err, out)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want it to contain %q", out, tt.want)
			}
		})
	}
}

func TestIncrementCommand_InvalidStart(t *testing.T) {
	cfgPath := writeTestFile(t, t.TempDir(), "config.yaml", "log:\n  level: error\n")

	if _, err := runCLI(t, "--config", cfgPath, "increment", "--start", "soon", "--delta", "1"); err == nil {
		t.Error("increment expected error for invalid start")
	}
}

func TestWorkdaysCommand(t *testing.T) {
	cfgPath := writeTestFile(t, t.TempDir(), "config.yaml", "holidays:\n  specific: [\"2020-11-25\"]\nlog:\n  level: error\n")

	tests := []struct {
		name     string
		from, to string
	}{
		{"ISO dates", "2020-11-23", "2020-11-29"},
		{"Dotted dates", "23.11.2020", "29.11.2020"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, "--config", cfgPath, "workdays", "--from", tt.from, "--to", tt.to)
			if err != nil {
				t.Fatalf("workdays error = %v", err)
			}
			if !strings.Contains(out, "4 working day(s)") {
				t.Errorf("output = %q, want 4 working days", out)
			}
			if strings.Contains(out, "2020-11-25") {
				t.Errorf("output lists holiday 2020-11-25: %q", out)
			}
		})
	}
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestFile(t, dir, "config.yaml", `holidays:
  specific: ["2004-05-27"]
  recurring: ["05-17"]
log:
  level: error
`)
	inPath := writeTestFile(t, dir, "requests.csv", "start,delta\n2004-05-24 19:03,44.723656\nsoon,1\n")
	outPath := filepath.Join(dir, "results.csv")

	out, err := runCLI(t, "--config", cfgPath, "batch", "--in", inPath, "--out", outPath)
	if err != nil {
		t.Fatalf("batch error = %v, output: %s", err, out)
	}
	if !strings.Contains(out, "Processed 2 row(s), 1 failed") {
		t.Errorf("output = %q, want batch summary", out)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read %s: %v", outPath, err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("results.csv has %d lines, want 3: %q", len(lines), data)
	}
	if !strings.HasPrefix(lines[1], "2004-05-24 19:03,44.723656,2004-07-27 13:47,") {
		t.Errorf("row 1 = %q, want result 2004-07-27 13:47", lines[1])
	}
	if !strings.HasPrefix(lines[2], "soon,1,,") {
		t.Errorf("row 2 = %q, want empty result and an error", lines[2])
	}
}

func TestBatchCommand_MissingInput(t *testing.T) {
	cfgPath := writeTestFile(t, t.TempDir(), "config.yaml", "log:\n  level: error\n")

	if _, err := runCLI(t, "--config", cfgPath, "batch", "--in", filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("batch expected error for missing input file")
	}
}
