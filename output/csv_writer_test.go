package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"togglzoho/zoho"
)

func sampleEntries() []zoho.Entry {
	return []zoho.Entry{
		{
			ProjectName: "Project Alpha", Notes: "Work", Email: "jane@example.com",
			TaskName: "Design", TimeSpent: "0:59", BeginTime: "23:00", EndTime: "23:59",
			Date: "2025-04-08", BillableStatus: zoho.StatusBillable,
		},
		{
			ProjectName: "Project Alpha", Notes: "Work", Email: "jane@example.com",
			TaskName: "Design", TimeSpent: "2:00", BeginTime: "00:00", EndTime: "02:00",
			Date: "2025-04-09", BillableStatus: zoho.StatusBillable,
		},
	}
}

func TestCSVWriter_WriteToEmitsFixedColumnOrder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	writer := &CSVWriter{}
	if err := writer.WriteTo(&buf, sampleEntries()); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Project Name,Notes,Email,Task Name,Time Spent,Begin Time,End Time,Date,Billable Status" {
		t.Fatalf("unexpected header line: %s", lines[0])
	}
	if lines[1] != "Project Alpha,Work,jane@example.com,Design,0:59,23:00,23:59,2025-04-08,Billable" {
		t.Fatalf("unexpected first row: %s", lines[1])
	}
	if lines[2] != "Project Alpha,Work,jane@example.com,Design,2:00,00:00,02:00,2025-04-09,Billable" {
		t.Fatalf("unexpected second row: %s", lines[2])
	}
}

func TestCSVWriter_IncludesRateColumnsWhenEnabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	writer := &CSVWriter{IncludeRateColumns: true}
	if err := writer.WriteTo(&buf, sampleEntries()[:1]); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if !strings.HasSuffix(lines[0], "Billable Status,Staff Rate,Billed Status,Cost Rate") {
		t.Fatalf("expected rate columns in header: %s", lines[0])
	}
	if !strings.HasSuffix(lines[1], "Billable,,,") {
		t.Fatalf("expected empty rate values: %s", lines[1])
	}
}

func TestCSVWriter_WritesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "zoho_out.csv")
	writer := &CSVWriter{}
	if err := writer.Write(path, sampleEntries()); err != nil {
		t.Fatalf("write csv file: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(content), "2025-04-09") {
		t.Fatalf("output missing data row: %s", content)
	}
}

func TestWriterForFormat(t *testing.T) {
	t.Parallel()

	if _, err := WriterForFormat("csv", false); err != nil {
		t.Fatalf("csv writer: %v", err)
	}
	if _, err := WriterForFormat("Excel", true); err != nil {
		t.Fatalf("excel writer: %v", err)
	}
	if _, err := WriterForFormat("pdf", false); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
