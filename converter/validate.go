package converter

import (
	"togglzoho/importer"
	"togglzoho/internal/timeutil"
)

// ValidateHeaders confirms every required column is present in the input
// header row. All missing columns are reported at once.
func ValidateHeaders(headers []string, required []string) error {
	present := make(map[string]bool, len(headers))
	for _, header := range headers {
		present[importer.NormalizeHeader(header)] = true
	}

	missing := make([]string, 0)
	for _, column := range required {
		if !present[importer.NormalizeHeader(column)] {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

// validateRow checks one record before any transformation: required values
// non-empty, dates and times well-formed, Billable a known flag, and the end
// date not before the start date. The first failure wins.
func validateRow(record importer.Record, requiredValues []string) error {
	for _, column := range requiredValues {
		if record.Get(column) == "" {
			return &DataError{Row: record.RowNumber, Field: column, Reason: "required value is empty"}
		}
	}

	for _, column := range []string{FieldStartDate, FieldEndDate} {
		if _, err := timeutil.ParseDate(record.Get(column)); err != nil {
			return &DataError{Row: record.RowNumber, Field: column, Reason: err.Error()}
		}
	}

	for _, column := range []string{FieldStartTime, FieldEndTime} {
		if _, err := timeutil.ParseClock(record.Get(column)); err != nil {
			return &DataError{Row: record.RowNumber, Field: column, Reason: err.Error()}
		}
	}

	switch record.Get(FieldBillable) {
	case billableYes, billableNo:
	default:
		return &DataError{
			Row:    record.RowNumber,
			Field:  FieldBillable,
			Reason: `unrecognized value (expected "Yes" or "No")`,
		}
	}

	startDate, _ := timeutil.ParseDate(record.Get(FieldStartDate))
	endDate, _ := timeutil.ParseDate(record.Get(FieldEndDate))
	if endDate.Before(startDate) {
		return &DataError{Row: record.RowNumber, Field: FieldEndDate, Reason: "end date is before start date"}
	}

	return nil
}
