package golang

import (
	"strconv"
	"strings"

	"github.com/viant/annolint/symbol"
)

// DirectiveSpec describes one inspector directive usable on type declarations
type DirectiveSpec struct {
	Name    string // Canonical directive name, e.g. inspector:rule
	Extends string // Directive this one refines, empty for roots
}

var directiveRegistry = map[string]DirectiveSpec{
	"inspector:rule":     {Name: "inspector:rule"},
	"inspector:astrule":  {Name: "inspector:astrule", Extends: "inspector:rule"},
	"inspector:textrule": {Name: "inspector:textrule", Extends: "inspector:rule"},
}

// LookupDirective returns the catalog entry for a directive name. Directive
// names are case sensitive, like every Go toolchain directive.
func LookupDirective(name string) (DirectiveSpec, bool) {
	spec, ok := directiveRegistry[name]
	return spec, ok
}

// cutDirective splits a comment into directive name and argument text.
// Directives follow the toolchain convention: no space between // and the
// name, e.g. //inspector:rule Go.
func cutDirective(comment string) (string, string, bool) {
	const prefix = "//inspector:"
	if !strings.HasPrefix(comment, prefix) {
		return "", "", false
	}
	body := comment[2:]
	name, rest, _ := strings.Cut(body, " ")
	name = strings.TrimSpace(name)
	if name == "inspector:" {
		return "", "", false
	}
	return name, strings.TrimSpace(rest), true
}

// parseDirectiveArgs converts the directive's argument text to positional
// values. key=value fields are named arguments and are skipped.
func parseDirectiveArgs(text string) []symbol.Value {
	var out []symbol.Value
	for _, field := range strings.Fields(text) {
		if strings.Contains(field, "=") {
			continue
		}
		out = append(out, parseDirectiveValue(field))
	}
	return out
}

// parseDirectiveValue types a single argument field
func parseDirectiveValue(field string) symbol.Value {
	if strings.HasPrefix(field, `"`) {
		if unquoted, err := strconv.Unquote(field); err == nil {
			return symbol.PrimitiveValue(unquoted)
		}
		return symbol.OtherValue(field)
	}
	if field == "true" || field == "false" {
		return symbol.PrimitiveValue(field == "true")
	}
	if v, err := strconv.ParseInt(field, 10, 64); err == nil {
		return symbol.PrimitiveValue(v)
	}
	if v, err := strconv.ParseFloat(field, 64); err == nil {
		return symbol.PrimitiveValue(v)
	}
	return symbol.PrimitiveValue(field)
}
