package converter

import (
	"togglzoho/importer"
	"togglzoho/internal/timeutil"
)

// fragment is a single-day slice of a source entry, still in source time
// shapes ("YYYY-MM-DD", "HH:MM:SS").
type fragment struct {
	date  string
	start string
	end   string
}

// splitRow confines a validated record to calendar days. Same-day records
// yield one fragment. A record whose end falls on a later day yields two:
// start day up to and including 23:59:59, then the end day from 00:00:00.
// The boundary second belongs to the first fragment, so the two durations
// sum to the cross-midnight duration plus one second.
//
// Entries spanning more than one day boundary are outside the upstream
// export contract; only the first and last day are emitted and the second
// return value reports the inconsistency so the caller can warn or reject.
func splitRow(record importer.Record) ([]fragment, bool, error) {
	startDate, err := timeutil.ParseDate(record.Get(FieldStartDate))
	if err != nil {
		return nil, false, &DataError{Row: record.RowNumber, Field: FieldStartDate, Reason: err.Error()}
	}
	endDate, err := timeutil.ParseDate(record.Get(FieldEndDate))
	if err != nil {
		return nil, false, &DataError{Row: record.RowNumber, Field: FieldEndDate, Reason: err.Error()}
	}

	startTime := record.Get(FieldStartTime)
	endTime := record.Get(FieldEndTime)

	if startDate.Equal(endDate) {
		return []fragment{{date: timeutil.FormatDate(startDate), start: startTime, end: endTime}}, false, nil
	}
	if endDate.Before(startDate) {
		return nil, false, &DataError{Row: record.RowNumber, Field: FieldEndDate, Reason: "end date is before start date"}
	}

	fragments := []fragment{
		{date: timeutil.FormatDate(startDate), start: startTime, end: timeutil.EndOfDay},
		{date: timeutil.FormatDate(endDate), start: timeutil.Midnight, end: endTime},
	}

	spansExtraDays := endDate.Sub(startDate).Hours() > 24
	return fragments, spansExtraDays, nil
}
