package flag

// Job carries the command line flags of one worker run.
type Job struct {
	JobName string
	Version string
	// Date is YYYY-MM-DD; empty means today.
	Date string
	// ID names the record a job works on, e.g. the check run to export.
	ID string
}
