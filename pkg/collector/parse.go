package collector

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/marek-kar/apic-faults/pkg/model"
)

// ErrOrphanRow is returned when a fault attribute appears before any fault
// code in the table.
var ErrOrphanRow = errors.New("fault attribute row without a fault code")

const (
	labelCode        = "Fault Code"
	labelName        = "MIB Fault Name"
	labelType        = "Type"
	labelCause       = "Cause"
	labelSeverity    = "Severity"
	labelExplanation = "Explanation"
	labelMessage     = "Message"
)

// Parse reads the fault catalogue page. The page is one long table where a
// "Fault Code" row opens a fault and the rows after it describe that fault
// until the next one. Faults are returned in the order their code first
// appears.
func Parse(r io.Reader) ([]model.FaultRecord, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse html")
	}

	var (
		order   []string
		byCode  = make(map[string]*model.FaultRecord)
		current *model.FaultRecord
	)

	for _, row := range findAll(doc, atom.Tr) {
		cells := findAll(row, atom.Td)
		if len(cells) == 0 {
			continue
		}
		label := cleanup(textOf(cells[0]))
		value := ""
		if len(cells) > 1 {
			value = cleanup(textOf(cells[1]))
		}

		if label == labelCode {
			rec, ok := byCode[value]
			if !ok {
				rec = &model.FaultRecord{Code: value}
				byCode[value] = rec
				order = append(order, value)
			}
			current = rec
			continue
		}

		field := fieldFor(label)
		if field == nil {
			continue
		}
		if current == nil {
			return nil, errors.Wrapf(ErrOrphanRow, "%q", label)
		}
		*field(current) = value
	}

	faults := make([]model.FaultRecord, 0, len(order))
	for _, code := range order {
		faults = append(faults, *byCode[code])
	}
	return faults, nil
}

func fieldFor(label string) func(*model.FaultRecord) *string {
	switch label {
	case labelName:
		return func(f *model.FaultRecord) *string { return &f.Name }
	case labelType:
		return func(f *model.FaultRecord) *string { return &f.Type }
	case labelCause:
		return func(f *model.FaultRecord) *string { return &f.Cause }
	case labelSeverity:
		return func(f *model.FaultRecord) *string { return &f.Severity }
	case labelExplanation:
		return func(f *model.FaultRecord) *string { return &f.Explanation }
	case labelMessage:
		return func(f *model.FaultRecord) *string { return &f.Message }
	}
	return nil
}

// findAll returns every descendant element of n with the given tag, in
// document order.
func findAll(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == a {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// cleanup drops zero-width spaces and collapses whitespace.
func cleanup(s string) string {
	s = strings.ReplaceAll(s, "\u200b", "")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.Join(strings.Fields(s), " ")
}
