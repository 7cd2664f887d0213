package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/viant/annolint/diag"
)

// Output formats accepted by Write
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatSARIF = "sarif"
)

// Write renders the diagnostics in the requested format
func Write(w io.Writer, format string, diagnostics []diag.Diagnostic, catalog []diag.Descriptor) error {
	index := Index(catalog)
	switch format {
	case FormatText, "":
		return WriteText(w, diagnostics, index)
	case FormatJSON:
		return WriteJSON(w, diagnostics, index)
	case FormatSARIF:
		return WriteSARIF(w, diagnostics, catalog)
	}
	return fmt.Errorf("unsupported report format: %s", format)
}

// Index keys descriptors by their diagnostic ID
func Index(catalog []diag.Descriptor) map[string]diag.Descriptor {
	index := make(map[string]diag.Descriptor, len(catalog))
	for _, desc := range catalog {
		index[desc.ID] = desc
	}
	return index
}

// message renders a diagnostic through its descriptor template, falling back
// to the raw arguments when the descriptor is unknown.
func message(d diag.Diagnostic, index map[string]diag.Descriptor) string {
	if desc, ok := index[d.Rule]; ok {
		return desc.Format(d.Args...)
	}
	return strings.Join(d.Args, " ")
}
