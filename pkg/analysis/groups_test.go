package analysis

import (
	"errors"
	"testing"

	"github.com/marek-kar/apic-faults/pkg/model"
)

func TestGroupByName_PreservesOrder(t *testing.T) {
	faults := []model.FaultRecord{
		{Code: "F0003", Name: "fltB"},
		{Code: "F0001", Name: "fltA"},
		{Code: "F0004", Name: "fltB"},
		{Code: "F0002", Name: "fltC"},
		{Code: "F0005", Name: "fltA"},
	}

	g := GroupByName(faults)

	if g.Len() != 3 {
		t.Fatalf("groups: got %d, want 3", g.Len())
	}
	wantNames := []string{"fltB", "fltA", "fltC"}
	for i, n := range g.Names() {
		if n != wantNames[i] {
			t.Errorf("name[%d]: got %q, want %q", i, n, wantNames[i])
		}
	}

	b, err := g.Get("fltB")
	if err != nil {
		t.Fatalf("Get(fltB): %v", err)
	}
	if len(b.Faults) != 2 || b.Faults[0].Code != "F0003" || b.Faults[1].Code != "F0004" {
		t.Errorf("fltB members: got %+v", b.Faults)
	}
}

func TestGroupByName_NoRecordLost(t *testing.T) {
	faults := []model.FaultRecord{
		{Code: "F1", Name: "a"},
		{Code: "F1", Name: "a"},
		{Code: "F2", Name: "b"},
	}

	g := GroupByName(faults)

	total := 0
	for _, n := range g.Names() {
		grp, err := g.Get(n)
		if err != nil {
			t.Fatalf("Get(%q): %v", n, err)
		}
		total += len(grp.Faults)
	}
	if total != len(faults) {
		t.Errorf("records: got %d, want %d", total, len(faults))
	}
}

func TestGroups_GetUnknown(t *testing.T) {
	g := GroupByName(nil)
	_, err := g.Get("fltMissing")
	if !errors.Is(err, ErrUnknownFault) {
		t.Errorf("got %v, want ErrUnknownFault", err)
	}
}

func TestGroups_NamesIsACopy(t *testing.T) {
	g := GroupByName([]model.FaultRecord{{Code: "F1", Name: "a"}})
	names := g.Names()
	names[0] = "changed"
	if g.Names()[0] != "a" {
		t.Error("Names must not expose internal order slice")
	}
}
