package web

import (
	"testing"

	"togglzoho/converter"
	"togglzoho/zoho"
)

func TestBuildConvertResponse(t *testing.T) {
	t.Parallel()

	result := &converter.Result{
		Header: zoho.Columns(false),
		Entries: []zoho.Entry{
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
		},
		RowsRead:      1,
		RowsConverted: 1,
		RowsSplit:     1,
		Warnings:      []converter.Warning{{Row: 4, Message: "entry spans more than two calendar days; only the first and last day were emitted"}},
	}

	resp := buildConvertResponse(result, false)

	if len(resp.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(resp.Rows))
	}
	if len(resp.Rows[0]) != 9 {
		t.Fatalf("expected 9 values per row, got %d", len(resp.Rows[0]))
	}
	if resp.Rows[0][0] != "Project Alpha" || resp.Rows[0][8] != "Billable" {
		t.Fatalf("unexpected first row: %v", resp.Rows[0])
	}
	if len(resp.Warnings) != 1 || resp.Warnings[0] != "row 4: entry spans more than two calendar days; only the first and last day were emitted" {
		t.Fatalf("unexpected warnings: %v", resp.Warnings)
	}
	if len(resp.Daily) != 2 || resp.Daily[0].Date != "2025-04-08" || resp.Daily[0].BillableTime != "0:59" {
		t.Fatalf("unexpected daily rows: %+v", resp.Daily)
	}
}

func TestBuildConvertResponse_RateColumns(t *testing.T) {
	t.Parallel()

	result := &converter.Result{
		Header: zoho.Columns(true),
		Entries: []zoho.Entry{
			{
				ProjectName: "Project Alpha", Notes: "Work", Email: "jane@example.com",
				TaskName: "Design", TimeSpent: "8:00", BeginTime: "09:00", EndTime: "17:00",
				Date: "2025-04-08", BillableStatus: zoho.StatusNonBillable,
			},
		},
		RowsRead:      1,
		RowsConverted: 1,
	}

	resp := buildConvertResponse(result, true)

	if len(resp.Header) != 12 {
		t.Fatalf("expected 12 header columns, got %d", len(resp.Header))
	}
	if len(resp.Rows[0]) != 12 {
		t.Fatalf("expected 12 values per row, got %d", len(resp.Rows[0]))
	}
	if resp.Rows[0][9] != "" || resp.Rows[0][10] != "" || resp.Rows[0][11] != "" {
		t.Fatalf("expected empty rate values: %v", resp.Rows[0])
	}
}
