package analysis

import (
	"github.com/pkg/errors"

	"github.com/marek-kar/apic-faults/pkg/model"
)

var ErrUnknownFault = errors.New("unknown fault name")

// Group is every catalogue record sharing one MIB fault name, in catalogue
// order.
type Group struct {
	Name   string
	Faults []model.FaultRecord
}

// Groups keeps groups in the order their name was first seen.
type Groups struct {
	order  []string
	byName map[string]*Group
}

func GroupByName(faults []model.FaultRecord) *Groups {
	g := &Groups{byName: make(map[string]*Group)}
	for _, f := range faults {
		grp, ok := g.byName[f.Name]
		if !ok {
			grp = &Group{Name: f.Name}
			g.order = append(g.order, f.Name)
			g.byName[f.Name] = grp
		}
		grp.Faults = append(grp.Faults, f)
	}
	return g
}

func (g *Groups) Len() int { return len(g.order) }

func (g *Groups) Names() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

func (g *Groups) Get(name string) (*Group, error) {
	grp, ok := g.byName[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFault, "%q", name)
	}
	return grp, nil
}
