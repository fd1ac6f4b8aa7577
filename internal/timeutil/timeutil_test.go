package timeutil

import (
	"testing"
	"time"
)

func TestTrimSeconds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "01:02:03", want: "01:02"},
		{input: "00:00:00", want: "00:00"},
		{input: "23:59:59", want: "23:59"},
	}

	for _, tt := range tests {
		got, err := TrimSeconds(tt.input)
		if err != nil {
			t.Fatalf("trim %q: %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("trim %q: expected %q, got %q", tt.input, tt.want, got)
		}
	}
}

func TestTrimSecondsRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "12:34", "9:00:00", "12:60:00", "12:00:61", "ab:cd:ef"} {
		if _, err := TrimSeconds(input); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}

func TestDurationSameDay(t *testing.T) {
	t.Parallel()

	got, err := Duration("09:15:00", "17:45:30", false)
	if err != nil {
		t.Fatalf("duration: %v", err)
	}
	if got != "08:30:30" {
		t.Fatalf("expected 08:30:30, got %s", got)
	}
}

func TestDurationCrossesMidnight(t *testing.T) {
	t.Parallel()

	got, err := Duration("23:00:00", "02:00:00", true)
	if err != nil {
		t.Fatalf("duration: %v", err)
	}
	if got != "03:00:00" {
		t.Fatalf("expected 03:00:00, got %s", got)
	}
}

func TestDurationNegativeWithoutFlagFails(t *testing.T) {
	t.Parallel()

	if _, err := Duration("23:00:00", "02:00:00", false); err == nil {
		t.Fatalf("expected error for negative duration without midnight flag")
	}
}

func TestDurationToEndOfDay(t *testing.T) {
	t.Parallel()

	got, err := Duration("23:00:00", EndOfDay, false)
	if err != nil {
		t.Fatalf("duration: %v", err)
	}
	if got != "00:59:59" {
		t.Fatalf("expected 00:59:59, got %s", got)
	}
}

func TestShortDurationTruncates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "00:59:59", want: "0:59"},
		{input: "02:00:00", want: "2:00"},
		{input: "00:59:30", want: "0:59"},
		{input: "13:05:00", want: "13:05"},
	}

	for _, tt := range tests {
		got, err := ShortDuration(tt.input)
		if err != nil {
			t.Fatalf("short duration %q: %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("short duration %q: expected %q, got %q", tt.input, tt.want, got)
		}
	}
}

func TestParseClockRejectsOutOfRangeHours(t *testing.T) {
	t.Parallel()

	if _, err := ParseClock("24:00:00"); err == nil {
		t.Fatalf("expected error for 24:00:00")
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	got, err := ParseDate("2025-04-08")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	want := time.Date(2025, 4, 8, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if FormatDate(got.AddDate(0, 0, 1)) != "2025-04-09" {
		t.Fatalf("expected next day 2025-04-09, got %s", FormatDate(got.AddDate(0, 0, 1)))
	}

	if _, err := ParseDate("08.04.2025"); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
}
