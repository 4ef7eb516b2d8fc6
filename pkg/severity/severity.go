// Package severity maps APIC fault severities onto the alerting levels and
// OSS alarm dictionary columns used downstream.
package severity

import (
	"github.com/pkg/errors"
)

// ErrUnknown is returned for any severity outside the five APIC levels.
var ErrUnknown = errors.New("unknown APIC severity")

type Severity int

const (
	invalid Severity = iota
	Critical
	Major
	Minor
	Warning
	Info
)

var tokens = map[string]Severity{
	"critical": Critical,
	"major":    Major,
	"minor":    Minor,
	"warning":  Warning,
	"info":     Info,
}

// Parse converts a raw catalogue token. Matching is exact.
func Parse(token string) (Severity, error) {
	s, ok := tokens[token]
	if !ok {
		return invalid, errors.Wrapf(ErrUnknown, "severity %q", token)
	}
	return s, nil
}

func (s Severity) String() string {
	for tok, v := range tokens {
		if v == s {
			return tok
		}
	}
	return "unknown"
}

type alerting struct {
	level    string
	priority int
}

// Alert levels follow syslog naming; priority is the syslog code, lower is
// more severe.
var alertingTable = map[Severity]alerting{
	Critical: {"critical", 2},
	Major:    {"error", 3},
	Minor:    {"warning", 4},
	Warning:  {"warning", 5},
	Info:     {"info", 6},
}

type oss struct {
	label            string
	classification   string
	serviceAffected  bool
	incidentCreation bool
}

var ossTable = map[Severity]oss{
	Critical: {"Critical", "Outage", true, true},
	Major:    {"Major", "Deterioration", true, true},
	Minor:    {"Minor", "Deterioration", false, true},
	Warning:  {"Warning", "Notification", false, true},
	Info:     {"Info", "Normal", false, false},
}

func (s Severity) alerting() (alerting, error) {
	a, ok := alertingTable[s]
	if !ok {
		return alerting{}, errors.Wrapf(ErrUnknown, "severity %d", int(s))
	}
	return a, nil
}

func (s Severity) oss() (oss, error) {
	o, ok := ossTable[s]
	if !ok {
		return oss{}, errors.Wrapf(ErrUnknown, "severity %d", int(s))
	}
	return o, nil
}

// AlertLevel returns the alert severity written into the alert configuration.
func (s Severity) AlertLevel() (string, error) {
	a, err := s.alerting()
	return a.level, err
}

// Priority returns the syslog code of the severity.
func (s Severity) Priority() (int, error) {
	a, err := s.alerting()
	return a.priority, err
}
