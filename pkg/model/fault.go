package model

import "time"

const SchemaVersion = "v1"

// EmptyExplanation is what the fault catalogue prints when a fault has no
// explanation.
const EmptyExplanation = "None set."

type FaultRecord struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Cause       string `json:"cause"`
	Severity    string `json:"severity"`
	Explanation string `json:"explanation"`
	Message     string `json:"message"`
}

// Description returns the explanation, or the message when the explanation
// is missing.
func (f FaultRecord) Description() string {
	if f.Explanation == "" || f.Explanation == EmptyExplanation {
		return f.Message
	}
	return f.Explanation
}

type Snapshot struct {
	SchemaVersion string        `json:"schemaVersion"`
	CollectedAt   time.Time     `json:"collectedAt"`
	Source        string        `json:"source"`
	Faults        []FaultRecord `json:"faults"`
}

func NewSnapshot(source string, faults []FaultRecord) *Snapshot {
	return &Snapshot{
		SchemaVersion: SchemaVersion,
		CollectedAt:   time.Now().UTC(),
		Source:        source,
		Faults:        faults,
	}
}
