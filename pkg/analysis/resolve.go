package analysis

import (
	"github.com/pkg/errors"

	"github.com/marek-kar/apic-faults/pkg/model"
	"github.com/marek-kar/apic-faults/pkg/severity"
)

var errEmptyGroup = errors.New("empty fault group")

// MostSevere returns the record with the lowest syslog priority. The first
// record wins ties.
func MostSevere(faults []model.FaultRecord) (model.FaultRecord, error) {
	switch len(faults) {
	case 0:
		return model.FaultRecord{}, errEmptyGroup
	case 1:
		return faults[0], nil
	}

	best := -1
	bestPriority := 0
	for i, f := range faults {
		p, err := priority(f)
		if err != nil {
			return model.FaultRecord{}, err
		}
		if best < 0 || p < bestPriority {
			best, bestPriority = i, p
		}
	}
	return faults[best], nil
}

func priority(f model.FaultRecord) (int, error) {
	s, err := severity.Parse(f.Severity)
	if err != nil {
		return 0, errors.Wrapf(err, "fault %s", f.Code)
	}
	return s.Priority()
}
