package zoho

// Entry is one row of the Zoho timesheet import schema. Entries are built by
// the converter and never mutated afterwards; a Toggl row that crosses
// midnight yields more than one Entry.
type Entry struct {
	ProjectName    string
	Notes          string
	Email          string
	TaskName       string
	TimeSpent      string
	BeginTime      string
	EndTime        string
	Date           string
	BillableStatus string
}

// Billable status values of the target schema.
const (
	StatusBillable    = "Billable"
	StatusNonBillable = "Non Billable"
)

// Columns returns the output header in the fixed emission order. When
// includeRateColumns is set, the target-schema columns with no Toggl source
// are appended (they are always emitted empty).
func Columns(includeRateColumns bool) []string {
	columns := []string{
		"Project Name",
		"Notes",
		"Email",
		"Task Name",
		"Time Spent",
		"Begin Time",
		"End Time",
		"Date",
		"Billable Status",
	}
	if includeRateColumns {
		columns = append(columns, "Staff Rate", "Billed Status", "Cost Rate")
	}
	return columns
}

// Values returns the entry's fields in the same order as Columns.
func (e Entry) Values(includeRateColumns bool) []string {
	values := []string{
		e.ProjectName,
		e.Notes,
		e.Email,
		e.TaskName,
		e.TimeSpent,
		e.BeginTime,
		e.EndTime,
		e.Date,
		e.BillableStatus,
	}
	if includeRateColumns {
		values = append(values, "", "", "")
	}
	return values
}
