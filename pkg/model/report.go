package model

const (
	ReportEMS         = "OF"
	ReportPlaceholder = "-"
	ReportClearTrap   = "Yes"
)

var ReportHeader = []string{
	"Alarm Code",
	"Alarm Name",
	"EMS",
	"Classification",
	"Service Affected",
	"Category",
	"MO",
	"Default Severity",
	"Alarm Type",
	"Alarming Delay (minutes)",
	"Estimated time to Close(Minutes)",
	"Incident Creation",
	"TT Delay (minutes)",
	"WO Delay (minutes)",
	"Clear Name",
	"Clear Trap",
	"Software Release",
	"Description",
	"Impact",
	"Suggestion",
	"Generic Alarm Name",
	"Probable Cause",
}

// ReportRow is one entry of the OSS alarm dictionary.
type ReportRow struct {
	AlarmCode        string
	AlarmName        string
	Classification   string
	ServiceAffected  string
	DefaultSeverity  string
	IncidentCreation string
	Description      string
}

// Values returns the row in ReportHeader column order.
func (r ReportRow) Values() []string {
	return []string{
		r.AlarmCode,
		r.AlarmName,
		ReportEMS,
		r.Classification,
		r.ServiceAffected,
		ReportPlaceholder,
		ReportPlaceholder,
		r.DefaultSeverity,
		ReportPlaceholder,
		ReportPlaceholder,
		ReportPlaceholder,
		r.IncidentCreation,
		ReportPlaceholder,
		ReportPlaceholder,
		ReportPlaceholder,
		ReportClearTrap,
		ReportPlaceholder,
		r.Description,
		ReportPlaceholder,
		ReportPlaceholder,
		ReportPlaceholder,
		ReportPlaceholder,
	}
}

type Report struct {
	Rows []ReportRow
}
