// Package timeutil does whole-second arithmetic on wall-clock strings.
// Times never carry a timezone; a "HH:MM:SS" value is exactly what the
// source export printed.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// Midnight and EndOfDay bound a single-day fragment.
	Midnight = "00:00:00"
	EndOfDay = "23:59:59"

	secondsPerDay = 24 * 60 * 60
)

// ParseClock parses a strict "HH:MM:SS" time-of-day value into seconds since
// midnight. Hours above 23 are rejected.
func ParseClock(value string) (int, error) {
	seconds, err := parseHMS(value)
	if err != nil {
		return 0, err
	}
	if seconds >= secondsPerDay {
		return 0, fmt.Errorf("time of day out of range: %q", value)
	}
	return seconds, nil
}

// ParseDate parses a strict "YYYY-MM-DD" calendar date. The result is fixed
// to UTC so date arithmetic never shifts across DST boundaries.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil || len(value) != 10 {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return parsed, nil
}

// FormatDate renders a calendar date as "YYYY-MM-DD".
func FormatDate(value time.Time) string {
	return value.Format("2006-01-02")
}

// TrimSeconds reduces "HH:MM:SS" to "HH:MM" by truncation.
func TrimSeconds(value string) (string, error) {
	if _, err := parseHMS(value); err != nil {
		return "", err
	}
	return strings.TrimSpace(value)[:5], nil
}

// Duration computes end - start on a 24-hour clock and renders it as
// "HH:MM:SS". With crossesMidnight set, end is treated as falling on the
// following day. A negative raw difference without the flag means the record
// is inconsistent.
func Duration(start, end string, crossesMidnight bool) (string, error) {
	startSeconds, err := ParseClock(start)
	if err != nil {
		return "", err
	}
	endSeconds, err := ParseClock(end)
	if err != nil {
		return "", err
	}

	diff := endSeconds - startSeconds
	if crossesMidnight {
		diff += secondsPerDay
	}
	if diff < 0 {
		return "", fmt.Errorf("end time %s is before start time %s", end, start)
	}

	return formatHMS(diff), nil
}

// ShortDuration renders a "HH:MM:SS" duration as "H:MM", truncating any
// seconds remainder (00:59:30 becomes "0:59").
func ShortDuration(value string) (string, error) {
	seconds, err := parseHMS(value)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d:%02d", seconds/3600, (seconds/60)%60), nil
}

func parseHMS(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid time %q (expected HH:MM:SS)", value)
	}
	if len(parts[0]) != 2 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return 0, fmt.Errorf("invalid time %q (expected HH:MM:SS)", value)
	}

	fields := make([]int, 3)
	for i, part := range parts {
		parsed, err := strconv.Atoi(part)
		if err != nil || parsed < 0 {
			return 0, fmt.Errorf("invalid time %q (expected HH:MM:SS)", value)
		}
		fields[i] = parsed
	}

	if fields[1] > 59 || fields[2] > 59 {
		return 0, fmt.Errorf("invalid time %q (minutes and seconds must be 00-59)", value)
	}

	return fields[0]*3600 + fields[1]*60 + fields[2], nil
}

func formatHMS(seconds int) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds/60)%60, seconds%60)
}
