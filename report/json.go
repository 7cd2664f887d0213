package report

import (
	"encoding/json"
	"io"

	"github.com/viant/annolint/diag"
)

// Finding is the JSON projection of one diagnostic
type Finding struct {
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Path     string `json:"path,omitempty"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
	Message  string `json:"message"`
}

// WriteJSON renders diagnostics as an indented JSON array
func WriteJSON(w io.Writer, diagnostics []diag.Diagnostic, index map[string]diag.Descriptor) error {
	findings := make([]Finding, 0, len(diagnostics))
	for _, d := range diagnostics {
		findings = append(findings, Finding{
			Rule:     d.Rule,
			Severity: d.Severity.String(),
			Path:     d.Location.Path,
			Line:     d.Location.Line,
			Column:   d.Location.Column,
			Message:  message(d, index),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(findings)
}
