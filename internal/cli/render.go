package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dmitrymomot/constraints/pkg/config"
	"github.com/dmitrymomot/constraints/pkg/validator"
)

// tabular values know how to print themselves as a table.
type tabular interface {
	renderTable(w io.Writer)
}

// render writes v as indented JSON or as a table.
func render(w io.Writer, format string, v tabular) error {
	if format == config.OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	v.renderTable(w)
	return nil
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

type validationReport struct {
	Target     string                     `json:"target"`
	Groups     []string                   `json:"groups"`
	Valid      bool                       `json:"valid"`
	Violations validator.ValidationErrors `json:"violations"`
	Document   validator.Map              `json:"document,omitempty"`
}

func (r validationReport) renderTable(w io.Writer) {
	if r.Valid {
		_, _ = fmt.Fprintf(w, "%s: valid\n", r.Target)
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Property", "Kind", "Message", "Value"})
	for _, v := range r.Violations {
		t.AppendRow(table.Row{v.Field, v.Kind, v.Message, formatValue(v.Value)})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "%s: %d violation(s)\n", r.Target, len(r.Violations))
}

type ruleView struct {
	Target   string         `json:"target"`
	Property string         `json:"property"`
	Kind     validator.Kind `json:"kind"`
	Params   []any          `json:"params,omitempty"`
	Groups   []string       `json:"groups,omitempty"`
	Always   bool           `json:"always,omitempty"`
	Message  string         `json:"message,omitempty"`
}

func newRuleView(d validator.Descriptor) ruleView {
	return ruleView{
		Target:   d.Target,
		Property: d.Property,
		Kind:     d.Kind,
		Params:   d.Params,
		Groups:   d.Groups,
		Always:   d.Always,
		Message:  d.Message,
	}
}

type ruleList []ruleView

func (l ruleList) renderTable(w io.Writer) {
	if len(l) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rules)")
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Target", "Property", "Kind", "Params", "Groups", "Always"})
	for _, r := range l {
		params := make([]string, len(r.Params))
		for i, p := range r.Params {
			params[i] = formatValue(p)
		}
		always := ""
		if r.Always {
			always = "yes"
		}
		t.AppendRow(table.Row{r.Target, r.Property, r.Kind, strings.Join(params, ", "), strings.Join(r.Groups, ", "), always})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rules)\n", len(l))
}

type kindView struct {
	Kind      validator.Kind `json:"kind"`
	Sanitizer bool           `json:"sanitizer"`
}

type kindList []kindView

func (l kindList) renderTable(w io.Writer) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Kind", "Type"})
	for _, k := range l {
		typ := "constraint"
		if k.Sanitizer {
			typ = "sanitizer"
		}
		t.AppendRow(table.Row{k.Kind, typ})
	}
	t.Render()
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case string:
		return fmt.Sprintf("%q", x)
	case time.Time:
		return x.Format(time.RFC3339)
	case []any:
		parts := make([]string, len(x))
		for i, item := range x {
			parts[i] = formatValue(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%+v", x)
	}
}
