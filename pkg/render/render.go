package render

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/marek-kar/apic-faults/pkg/model"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// Header marks the YAML output as generated.
const Header = "# Generated by apic-faults, DO NOT MODIFY BY HAND\n"

type Renderer interface {
	Render(w io.Writer, res *model.Result) error
}

func New(f Format) Renderer {
	switch f {
	case FormatCSV:
		return &csvRenderer{}
	default:
		return &yamlRenderer{}
	}
}

type yamlRenderer struct{}

func (r *yamlRenderer) Render(w io.Writer, res *model.Result) error {
	if _, err := io.WriteString(w, Header); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res.Config); err != nil {
		return errors.Wrap(err, "encode alerts config")
	}
	return enc.Close()
}

type csvRenderer struct{}

func (r *csvRenderer) Render(w io.Writer, res *model.Result) error {
	cw := newQuotedWriter(w)
	if err := cw.Write(model.ReportHeader); err != nil {
		return err
	}
	for _, row := range res.Report.Rows {
		if err := cw.Write(row.Values()); err != nil {
			return err
		}
	}
	return cw.Flush()
}
