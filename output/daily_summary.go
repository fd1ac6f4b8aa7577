package output

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"togglzoho/zoho"
)

// DailySummary aggregates the converted entries of one calendar date. Time
// totals are whole minutes rendered as "H:MM"; begin/end are "HH:MM" clock
// values, so string comparison follows clock order.
type DailySummary struct {
	Date            string
	Entries         int
	BillableTime    string
	NonBillableTime string
	TotalTime       string
	FirstBegin      string
	LastEnd         string
}

func BuildDailySummaries(entries []zoho.Entry) []DailySummary {
	if len(entries) == 0 {
		return []DailySummary{}
	}

	byDay := make(map[string][]zoho.Entry)
	for _, entry := range entries {
		byDay[entry.Date] = append(byDay[entry.Date], entry)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	summaries := make([]DailySummary, 0, len(days))
	for _, day := range days {
		summaries = append(summaries, summarizeDay(day, byDay[day]))
	}

	return summaries
}

func summarizeDay(day string, entries []zoho.Entry) DailySummary {
	summary := DailySummary{Date: day, Entries: len(entries)}

	billableMinutes := 0
	nonBillableMinutes := 0
	for _, entry := range entries {
		minutes := spentMinutes(entry.TimeSpent)
		if entry.BillableStatus == zoho.StatusBillable {
			billableMinutes += minutes
		} else {
			nonBillableMinutes += minutes
		}

		if summary.FirstBegin == "" || entry.BeginTime < summary.FirstBegin {
			summary.FirstBegin = entry.BeginTime
		}
		if entry.EndTime > summary.LastEnd {
			summary.LastEnd = entry.EndTime
		}
	}

	summary.BillableTime = formatMinutes(billableMinutes)
	summary.NonBillableTime = formatMinutes(nonBillableMinutes)
	summary.TotalTime = formatMinutes(billableMinutes + nonBillableMinutes)
	return summary
}

// spentMinutes parses a "H:MM" Time Spent value. Entries are produced by the
// converter, so malformed values count as zero instead of failing an export.
func spentMinutes(value string) int {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0
	}
	return hours*60 + minutes
}

func formatMinutes(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

func WriteDailySummaries(path, format string, summaries []DailySummary) error {
	switch normalizeFormat(format) {
	case "csv":
		return writeDailySummariesCSV(path, summaries)
	case "excel", "xlsx":
		return writeDailySummariesExcel(path, summaries)
	default:
		return fmt.Errorf("unsupported output format for daily summaries: %s", format)
	}
}
