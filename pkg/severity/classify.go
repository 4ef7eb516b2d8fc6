package severity

// Classification is every downstream view of one severity.
type Classification struct {
	Severity          Severity
	AlertLevel        string
	Priority          int
	OSSLabel          string
	OSSClassification string
	ServiceAffected   bool
	IncidentCreation  bool
}

func Classify(token string) (Classification, error) {
	s, err := Parse(token)
	if err != nil {
		return Classification{}, err
	}
	return s.Classify()
}

func (s Severity) Classify() (Classification, error) {
	a, err := s.alerting()
	if err != nil {
		return Classification{}, err
	}
	o, err := s.oss()
	if err != nil {
		return Classification{}, err
	}
	return Classification{
		Severity:          s,
		AlertLevel:        a.level,
		Priority:          a.priority,
		OSSLabel:          o.label,
		OSSClassification: o.classification,
		ServiceAffected:   o.serviceAffected,
		IncidentCreation:  o.incidentCreation,
	}, nil
}

// YesNo renders a flag the way the OSS dictionary expects it.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
