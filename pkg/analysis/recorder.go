package analysis

// Recorder receives counts from an analysis run.
type Recorder interface {
	ObserveGroups(n int)
	ObserveFault(dropped bool, rules []string)
	ObserveAlert(level string)
	ObserveReportRows(n int)
}

type nopRecorder struct{}

func (nopRecorder) ObserveGroups(int)           {}
func (nopRecorder) ObserveFault(bool, []string) {}
func (nopRecorder) ObserveAlert(string)         {}
func (nopRecorder) ObserveReportRows(int)       {}
