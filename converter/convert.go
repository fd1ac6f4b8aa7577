// Package converter transforms Toggl export rows into Zoho timesheet rows:
// header and row validation, midnight-crossing date splitting, time and
// duration recomputation, and field mapping. The pipeline is pure: it reads
// in-memory records and produces new entries, one row at a time, preserving
// input order.
package converter

import (
	"fmt"

	"togglzoho/config"
	"togglzoho/importer"
	"togglzoho/zoho"
)

// Warning is a non-fatal inconsistency tied to a source row.
type Warning struct {
	Row     int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("row %d: %s", w.Row, w.Message)
}

// Result is the output of one conversion run.
type Result struct {
	Header        []string
	Entries       []zoho.Entry
	RowsRead      int
	RowsConverted int
	RowsSplit     int
	Warnings      []Warning
}

// Convert runs the full pipeline over already-parsed rows: header check
// first, then per row validate, split, and map. The first SchemaError or
// DataError aborts the run with no partial output. Split fragments appear
// consecutively, start-day fragment first.
func Convert(headers []string, records []importer.Record, cfg config.Config) (*Result, error) {
	if err := ValidateHeaders(headers, cfg.Columns.Required); err != nil {
		return nil, err
	}

	result := &Result{
		Header:  zoho.Columns(cfg.Output.IncludeRateColumns),
		Entries: make([]zoho.Entry, 0, len(records)),
	}

	for _, record := range records {
		result.RowsRead++

		if err := validateRow(record, cfg.Columns.RequiredValues); err != nil {
			return nil, err
		}

		fragments, spansExtraDays, err := splitRow(record)
		if err != nil {
			return nil, err
		}
		if spansExtraDays {
			if cfg.Split.Policy == config.SplitPolicyReject {
				return nil, &DataError{
					Row:    record.RowNumber,
					Field:  FieldEndDate,
					Reason: "entry spans more than two calendar days",
				}
			}
			result.Warnings = append(result.Warnings, Warning{
				Row:     record.RowNumber,
				Message: "entry spans more than two calendar days; only the first and last day were emitted",
			})
		}
		if len(fragments) > 1 {
			result.RowsSplit++
		}

		for _, frag := range fragments {
			entry, err := mapFragment(record, frag)
			if err != nil {
				return nil, err
			}
			result.Entries = append(result.Entries, entry)
		}

		result.RowsConverted++
	}

	return result, nil
}
