package collector

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/marek-kar/apic-faults/pkg/model"
)

func TestParse_Fixture(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "FaultMessages.html"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	faults, err := Parse(f)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []model.FaultRecord{
		{
			Code:        "F0020",
			Name:        "fltFabricSelectorIssuesConfigFailed",
			Type:        "config",
			Cause:       "configuration-failed",
			Severity:    "minor",
			Explanation: "This fault occurs when the selector configuration fails.",
			Message:     "Configuration failed for selector",
		},
		{
			Code:        "F0021",
			Name:        "fltFabricSelectorIssuesConfigFailed",
			Severity:    "major",
			Explanation: "None set.",
			Message:     "Selector misconfigured",
		},
		{
			Code:     "F1394",
			Name:     "fsmFailHcloudHealthUpdateSyncHealth",
			Severity: "warning",
		},
	}

	if len(faults) != len(want) {
		t.Fatalf("fault count: got %d, want %d (%+v)", len(faults), len(want), faults)
	}
	for i := range want {
		if faults[i] != want[i] {
			t.Errorf("fault[%d]:\n got %+v\nwant %+v", i, faults[i], want[i])
		}
	}
}

func TestParse_RepeatedCodeReusesRecord(t *testing.T) {
	page := `<table>
<tr><td>Fault Code</td><td>F1</td></tr>
<tr><td>MIB Fault Name</td><td>fltA</td></tr>
<tr><td>Fault Code</td><td>F2</td></tr>
<tr><td>MIB Fault Name</td><td>fltB</td></tr>
<tr><td>Fault Code</td><td>F1</td></tr>
<tr><td>Severity</td><td>critical</td></tr>
</table>`

	faults, err := Parse(strings.NewReader(page))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(faults) != 2 {
		t.Fatalf("fault count: got %d, want 2", len(faults))
	}
	if faults[0].Code != "F1" || faults[0].Name != "fltA" || faults[0].Severity != "critical" {
		t.Errorf("F1: got %+v", faults[0])
	}
	if faults[1].Code != "F2" {
		t.Errorf("second fault: got %q, want F2", faults[1].Code)
	}
}

func TestParse_OrphanRow(t *testing.T) {
	page := `<table><tr><td>Severity</td><td>major</td></tr></table>`
	_, err := Parse(strings.NewReader(page))
	if !errors.Is(err, ErrOrphanRow) {
		t.Errorf("got %v, want ErrOrphanRow", err)
	}
}

func TestParse_Empty(t *testing.T) {
	faults, err := Parse(strings.NewReader("<html><body><p>nothing here</p></body></html>"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(faults) != 0 {
		t.Errorf("got %d faults, want 0", len(faults))
	}
}

func TestCleanup(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  plain  ", "plain"},
		{"a\nb", "a b"},
		{"zero\u200bwidth", "zerowidth"},
		{"tabs\tand   spaces", "tabs and spaces"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := cleanup(tt.in); got != tt.want {
			t.Errorf("cleanup(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}
