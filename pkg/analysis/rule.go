package analysis

import (
	"strings"

	"github.com/marek-kar/apic-faults/pkg/model"
)

// DropRule decides whether a single catalogue record is left out of the
// alert configuration.
type DropRule interface {
	Name() string
	Drop(f model.FaultRecord) bool
}

// DeniedCodes are faults that are known to be noisy or not actionable.
var DeniedCodes = []string{
	"F0021", "F0023", "F0132", "F0413", "F0454", "F0467", "F0475", "F0603",
	"F0699", "F0756", "F0843", "F0844", "F0845", "F0846", "F0847", "F0848",
	"F0849", "F1199", "F1228", "F1296", "F1298", "F1299", "F1300", "F1313",
	"F1368", "F1371", "F1425", "F1432", "F1449", "F1471", "F1483", "F1545",
	"F1546", "F1547", "F1548", "F1549", "F1550", "F1551", "F1563", "F1564",
	"F1572", "F1573", "F1574", "F2168", "F2194", "F2543", "F2547", "F2773",
	"F2840", "F2844", "F2967", "F3019", "F3057", "F3062", "F100264", "F110473",
	"F112425", "F119936", "F606391", "F608054",
}

const fsmPrefix = "fsm"

type DenyListRule struct {
	codes map[string]struct{}
}

func NewDenyListRule(codes ...string) *DenyListRule {
	r := &DenyListRule{codes: make(map[string]struct{}, len(codes))}
	for _, c := range codes {
		r.codes[c] = struct{}{}
	}
	return r
}

func (r *DenyListRule) Name() string { return "deny-list" }

func (r *DenyListRule) Drop(f model.FaultRecord) bool {
	_, ok := r.codes[f.Code]
	return ok
}

// PrefixRule drops faults raised by APIC's internal state machines.
type PrefixRule struct {
	Prefix string
}

func (r *PrefixRule) Name() string { return "fsm-prefix" }

func (r *PrefixRule) Drop(f model.FaultRecord) bool {
	return strings.HasPrefix(f.Name, r.Prefix)
}

// DescriptionRule drops faults nobody could act on because the catalogue
// says nothing about them.
type DescriptionRule struct{}

func (r *DescriptionRule) Name() string { return "no-description" }

func (r *DescriptionRule) Drop(f model.FaultRecord) bool {
	d := f.Description()
	return d == "" || d == model.EmptyExplanation
}

// DefaultRules returns the built-in rules. extraCodes are added to the deny
// list.
func DefaultRules(extraCodes ...string) []DropRule {
	codes := make([]string, 0, len(DeniedCodes)+len(extraCodes))
	codes = append(codes, DeniedCodes...)
	codes = append(codes, extraCodes...)
	return []DropRule{
		NewDenyListRule(codes...),
		&PrefixRule{Prefix: fsmPrefix},
		&DescriptionRule{},
	}
}
