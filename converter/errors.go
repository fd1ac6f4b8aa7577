package converter

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns missing from the input header. It is
// fatal for the whole run and raised before any row is transformed.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required column(s): %s", strings.Join(e.Missing, ", "))
}

// DataError reports the first invalid field of a source row, or an internal
// consistency failure. Any DataError aborts the run; invalid rows are never
// silently skipped.
type DataError struct {
	Row    int
	Field  string
	Reason string
}

func (e *DataError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
	}
	return fmt.Sprintf("row %d: column %q: %s", e.Row, e.Field, e.Reason)
}
