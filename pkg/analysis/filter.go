package analysis

import "github.com/marek-kar/apic-faults/pkg/model"

type Verdict struct {
	Dropped bool
	Rules   []string
}

type Filter struct {
	rules []DropRule
}

func NewFilter(rules ...DropRule) *Filter {
	return &Filter{rules: rules}
}

// Evaluate runs every rule, even after one has matched, so the verdict
// names all of them.
func (f *Filter) Evaluate(rec model.FaultRecord) Verdict {
	var v Verdict
	for _, r := range f.rules {
		if r.Drop(rec) {
			v.Dropped = true
			v.Rules = append(v.Rules, r.Name())
		}
	}
	return v
}

func (f *Filter) ShouldDrop(rec model.FaultRecord) bool {
	return f.Evaluate(rec).Dropped
}
