package converter

// Column names of the Toggl export schema. Lookup is position-independent
// and case-insensitive (importer.Record normalizes names), so these are the
// canonical display forms used in error messages.
const (
	FieldUser        = "User"
	FieldEmail       = "Email"
	FieldClient      = "Client"
	FieldProject     = "Project"
	FieldTask        = "Task"
	FieldDescription = "Description"
	FieldBillable    = "Billable"
	FieldStartDate   = "Start date"
	FieldStartTime   = "Start time"
	FieldEndDate     = "End date"
	FieldEndTime     = "End time"
	FieldDuration    = "Duration"
	FieldTags        = "Tags"
)

// Billable flag values accepted in the source schema.
const (
	billableYes = "Yes"
	billableNo  = "No"
)
