package converter

import (
	"togglzoho/importer"
	"togglzoho/internal/timeutil"
	"togglzoho/zoho"
)

// mapFragment builds one Zoho entry from a validated record and one of its
// single-day fragments. The source Duration column is ignored; Time Spent is
// recomputed from the fragment bounds so split fragments stay consistent.
// User, Client, End date and Tags are dropped here by never being copied.
func mapFragment(record importer.Record, frag fragment) (zoho.Entry, error) {
	duration, err := timeutil.Duration(frag.start, frag.end, false)
	if err != nil {
		return zoho.Entry{}, &DataError{Row: record.RowNumber, Field: FieldEndTime, Reason: err.Error()}
	}
	timeSpent, err := timeutil.ShortDuration(duration)
	if err != nil {
		return zoho.Entry{}, &DataError{Row: record.RowNumber, Field: FieldDuration, Reason: err.Error()}
	}

	beginTime, err := timeutil.TrimSeconds(frag.start)
	if err != nil {
		return zoho.Entry{}, &DataError{Row: record.RowNumber, Field: FieldStartTime, Reason: err.Error()}
	}
	endTime, err := timeutil.TrimSeconds(frag.end)
	if err != nil {
		return zoho.Entry{}, &DataError{Row: record.RowNumber, Field: FieldEndTime, Reason: err.Error()}
	}

	// Validation has already checked the flag; this guards direct callers.
	var status string
	switch record.Get(FieldBillable) {
	case billableYes:
		status = zoho.StatusBillable
	case billableNo:
		status = zoho.StatusNonBillable
	default:
		return zoho.Entry{}, &DataError{
			Row:    record.RowNumber,
			Field:  FieldBillable,
			Reason: `unrecognized value (expected "Yes" or "No")`,
		}
	}

	return zoho.Entry{
		ProjectName:    record.Get(FieldProject),
		Notes:          record.Get(FieldDescription),
		Email:          record.Get(FieldEmail),
		TaskName:       record.Get(FieldTask),
		TimeSpent:      timeSpent,
		BeginTime:      beginTime,
		EndTime:        endTime,
		Date:           frag.date,
		BillableStatus: status,
	}, nil
}
