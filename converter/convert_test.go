package converter

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"togglzoho/config"
	"togglzoho/importer"
	"togglzoho/zoho"
)

var togglHeader = []string{
	"User", "Email", "Client", "Project", "Task", "Description", "Billable",
	"Start date", "Start time", "End date", "End time", "Duration", "Tags",
}

func makeRecord(rowNumber int, overrides map[string]string) importer.Record {
	values := map[string]string{
		"User":        "Jane Doe",
		"Email":       "jane@example.com",
		"Client":      "Acme",
		"Project":     "Project Alpha",
		"Task":        "Design",
		"Description": "Work",
		"Billable":    "Yes",
		"Start date":  "2025-04-08",
		"Start time":  "09:00:00",
		"End date":    "2025-04-08",
		"End time":    "17:00:00",
		"Duration":    "08:00:00",
		"Tags":        "",
	}
	for key, value := range overrides {
		values[key] = value
	}

	normalized := make(map[string]string, len(values))
	for key, value := range values {
		normalized[importer.NormalizeHeader(key)] = value
	}
	return importer.Record{RowNumber: rowNumber, Values: normalized}
}

func TestConvert_MidnightCrossingSplitsIntoTwoRows(t *testing.T) {
	t.Parallel()

	record := makeRecord(2, map[string]string{
		"Start time": "23:00:00",
		"End date":   "2025-04-09",
		"End time":   "02:00:00",
		"Duration":   "03:00:00",
	})

	result, err := Convert(togglHeader, []importer.Record{record}, config.Default())
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	wantHeader := []string{
		"Project Name", "Notes", "Email", "Task Name", "Time Spent",
		"Begin Time", "End Time", "Date", "Billable Status",
	}
	if !reflect.DeepEqual(result.Header, wantHeader) {
		t.Fatalf("unexpected header: %v", result.Header)
	}

	want := []zoho.Entry{
		{
			ProjectName: "Project Alpha", Notes: "Work", Email: "jane@example.com",
			TaskName: "Design", TimeSpent: "0:59", BeginTime: "23:00", EndTime: "23:59",
			Date: "2025-04-08", BillableStatus: "Billable",
		},
		{
			ProjectName: "Project Alpha", Notes: "Work", Email: "jane@example.com",
			TaskName: "Design", TimeSpent: "2:00", BeginTime: "00:00", EndTime: "02:00",
			Date: "2025-04-09", BillableStatus: "Billable",
		},
	}
	if !reflect.DeepEqual(result.Entries, want) {
		t.Fatalf("unexpected entries:\n got %+v\nwant %+v", result.Entries, want)
	}

	if result.RowsRead != 1 || result.RowsConverted != 1 || result.RowsSplit != 1 {
		t.Fatalf("unexpected counters: %+v", result)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", result.Warnings)
	}
}

func TestConvert_SameDayRowPassesThroughUnsplit(t *testing.T) {
	t.Parallel()

	record := makeRecord(2, map[string]string{"Billable": "No"})

	result, err := Convert(togglHeader, []importer.Record{record}, config.Default())
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	if len(result.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(result.Entries))
	}
	entry := result.Entries[0]
	if entry.Date != "2025-04-08" || entry.BeginTime != "09:00" || entry.EndTime != "17:00" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.TimeSpent != "8:00" {
		t.Fatalf("expected recomputed time spent 8:00, got %s", entry.TimeSpent)
	}
	if entry.BillableStatus != zoho.StatusNonBillable {
		t.Fatalf("expected Non Billable, got %s", entry.BillableStatus)
	}
	if result.RowsSplit != 0 {
		t.Fatalf("expected no split rows, got %d", result.RowsSplit)
	}
}

func TestConvert_MissingHeaderFailsBeforeRows(t *testing.T) {
	t.Parallel()

	headerWithoutEmail := []string{
		"User", "Client", "Project", "Task", "Description", "Billable",
		"Start date", "Start time", "End date", "End time", "Duration", "Tags",
	}
	// The row itself is invalid too; the header error must win.
	record := makeRecord(2, map[string]string{"Billable": "Maybe"})

	_, err := Convert(headerWithoutEmail, []importer.Record{record}, config.Default())

	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if !reflect.DeepEqual(schemaErr.Missing, []string{"Email"}) {
		t.Fatalf("unexpected missing columns: %v", schemaErr.Missing)
	}
}

func TestConvert_UnrecognizedBillableNamesRow(t *testing.T) {
	t.Parallel()

	records := []importer.Record{
		makeRecord(2, nil),
		makeRecord(3, map[string]string{"Billable": "Maybe"}),
	}

	_, err := Convert(togglHeader, records, config.Default())

	var dataErr *DataError
	if !errors.As(err, &dataErr) {
		t.Fatalf("expected DataError, got %v", err)
	}
	if dataErr.Row != 3 || dataErr.Field != "Billable" {
		t.Fatalf("unexpected error target: %+v", dataErr)
	}
	if !strings.Contains(err.Error(), "row 3") {
		t.Fatalf("error must name the row: %v", err)
	}
}

func TestConvert_RowValidationFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		overrides map[string]string
		wantField string
	}{
		{name: "empty email", overrides: map[string]string{"Email": ""}, wantField: "Email"},
		{name: "empty project", overrides: map[string]string{"Project": ""}, wantField: "Project"},
		{name: "bad start date", overrides: map[string]string{"Start date": "08.04.2025"}, wantField: "Start date"},
		{name: "bad end time", overrides: map[string]string{"End time": "17:00"}, wantField: "End time"},
		{name: "end date before start date", overrides: map[string]string{"End date": "2025-04-07"}, wantField: "End date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Convert(togglHeader, []importer.Record{makeRecord(2, tt.overrides)}, config.Default())

			var dataErr *DataError
			if !errors.As(err, &dataErr) {
				t.Fatalf("expected DataError, got %v", err)
			}
			if dataErr.Field != tt.wantField {
				t.Fatalf("expected field %q, got %q", tt.wantField, dataErr.Field)
			}
			if dataErr.Row != 2 {
				t.Fatalf("expected row 2, got %d", dataErr.Row)
			}
		})
	}
}

func TestConvert_EndBeforeStartOnSameDayFails(t *testing.T) {
	t.Parallel()

	record := makeRecord(2, map[string]string{
		"Start time": "17:00:00",
		"End time":   "09:00:00",
	})

	_, err := Convert(togglHeader, []importer.Record{record}, config.Default())

	var dataErr *DataError
	if !errors.As(err, &dataErr) {
		t.Fatalf("expected DataError for negative duration, got %v", err)
	}
}

func TestConvert_MultiDaySpanWarnsByDefault(t *testing.T) {
	t.Parallel()

	record := makeRecord(2, map[string]string{
		"Start time": "23:00:00",
		"End date":   "2025-04-11",
		"End time":   "02:00:00",
	})

	result, err := Convert(togglHeader, []importer.Record{record}, config.Default())
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	if len(result.Entries) != 2 {
		t.Fatalf("expected first and last day fragments only, got %d entries", len(result.Entries))
	}
	if result.Entries[0].Date != "2025-04-08" || result.Entries[1].Date != "2025-04-11" {
		t.Fatalf("unexpected fragment dates: %s, %s", result.Entries[0].Date, result.Entries[1].Date)
	}
	if len(result.Warnings) != 1 || result.Warnings[0].Row != 2 {
		t.Fatalf("expected one warning for row 2, got %v", result.Warnings)
	}
}

func TestConvert_MultiDaySpanRejectedUnderRejectPolicy(t *testing.T) {
	t.Parallel()

	record := makeRecord(2, map[string]string{
		"Start time": "23:00:00",
		"End date":   "2025-04-11",
		"End time":   "02:00:00",
	})

	cfg := config.Default()
	cfg.Split.Policy = config.SplitPolicyReject

	_, err := Convert(togglHeader, []importer.Record{record}, cfg)

	var dataErr *DataError
	if !errors.As(err, &dataErr) {
		t.Fatalf("expected DataError under reject policy, got %v", err)
	}
	if dataErr.Row != 2 {
		t.Fatalf("expected row 2, got %d", dataErr.Row)
	}
}

func TestConvert_PreservesInputOrderWithConsecutiveFragments(t *testing.T) {
	t.Parallel()

	records := []importer.Record{
		makeRecord(2, map[string]string{"Description": "first"}),
		makeRecord(3, map[string]string{
			"Description": "second",
			"Start time":  "23:30:00",
			"End date":    "2025-04-09",
			"End time":    "01:00:00",
		}),
		makeRecord(4, map[string]string{"Description": "third"}),
	}

	result, err := Convert(togglHeader, records, config.Default())
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	notes := make([]string, 0, len(result.Entries))
	for _, entry := range result.Entries {
		notes = append(notes, entry.Notes)
	}
	want := []string{"first", "second", "second", "third"}
	if !reflect.DeepEqual(notes, want) {
		t.Fatalf("unexpected output order: %v", notes)
	}
}

func TestConvert_IsDeterministic(t *testing.T) {
	t.Parallel()

	records := []importer.Record{
		makeRecord(2, map[string]string{
			"Start time": "22:10:05",
			"End date":   "2025-04-09",
			"End time":   "03:45:59",
		}),
	}

	first, err := Convert(togglHeader, records, config.Default())
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	second, err := Convert(togglHeader, records, config.Default())
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	if !reflect.DeepEqual(first.Entries, second.Entries) {
		t.Fatalf("conversion is not deterministic")
	}
}

func TestConvert_RateColumnsAppendedWhenEnabled(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Output.IncludeRateColumns = true

	result, err := Convert(togglHeader, []importer.Record{makeRecord(2, nil)}, cfg)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	if len(result.Header) != 12 || result.Header[9] != "Staff Rate" {
		t.Fatalf("unexpected header: %v", result.Header)
	}
	values := result.Entries[0].Values(true)
	if len(values) != 12 || values[9] != "" || values[10] != "" || values[11] != "" {
		t.Fatalf("rate columns must be empty: %v", values)
	}
}
