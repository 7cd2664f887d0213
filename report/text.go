package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/viant/annolint/diag"
)

var (
	headerColor    = color.New(color.Bold, color.FgCyan)
	locationColor  = color.New(color.Bold)
	severityColors = map[diag.Severity]*color.Color{
		diag.SevInfo:     color.New(color.FgGreen),
		diag.SevAdvisory: color.New(color.FgCyan),
		diag.SevWarning:  color.New(color.FgYellow),
		diag.SevError:    color.New(color.FgRed),
	}
)

// WriteText renders diagnostics as one line per finding plus a summary
func WriteText(w io.Writer, diagnostics []diag.Diagnostic, index map[string]diag.Descriptor) error {
	if _, err := headerColor.Fprintln(w, "=== annolint report ==="); err != nil {
		return err
	}
	for _, d := range diagnostics {
		if at := d.Location.String(); at != "" {
			locationColor.Fprint(w, at)
			fmt.Fprint(w, " ")
		}
		severityColor(d.Severity).Fprintf(w, "%s", d.Severity)
		fmt.Fprintf(w, " %s: %s\n", d.Rule, message(d, index))
	}
	if len(diagnostics) == 0 {
		_, err := fmt.Fprintln(w, "no findings")
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d finding(s)\n", len(diagnostics))
	return err
}

func severityColor(severity diag.Severity) *color.Color {
	if c, ok := severityColors[severity]; ok {
		return c
	}
	return color.New(color.Reset)
}
