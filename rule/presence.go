package rule

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/viant/annolint/diag"
	"github.com/viant/annolint/symbol"
)

// Languages the inspector platform ships engines for
const (
	LanguageGo   = "Go"
	LanguageJava = "Java"
)

// Engine modules providing per-language support
const (
	moduleGo   = "inspector-golang"
	moduleJava = "inspector-java"
)

// support names the language a project could additionally handle and the
// engine module that provides it
type support struct {
	language string
	module   string
}

var complements = map[string]support{
	LanguageGo:   {language: LanguageJava, module: moduleJava},
	LanguageJava: {language: LanguageGo, module: moduleGo},
}

var (
	// MissingMarker flags rule types the platform will never load because
	// they lack the marker annotation.
	MissingMarker = diag.Descriptor{
		ID:       "AL1001",
		Title:    "missing rule marker",
		Template: "rule type %s is missing the rule marker annotation",
		Severity: diag.SevAdvisory,
		Enabled:  false,
		Tags:     []string{diag.TagTelemetry},
	}

	// AddLanguageSupport flags rule types declaring a single language whose
	// project does not reference the complementary language engine.
	AddLanguageSupport = diag.Descriptor{
		ID:       "AL1002",
		Title:    "add language support",
		Template: "consider adding %[2]s support to rule type %[1]s",
		Severity: diag.SevAdvisory,
		Enabled:  false,
		Tags:     []string{diag.TagTelemetry},
	}
)

func init() {
	Register(MarkerPresence{})
}

// MarkerPresence checks that rule types carry the platform marker annotation
// and, when a marker declares single-language support, that the project
// references the complementary language engine.
type MarkerPresence struct{}

// Name returns the rule's catalog name
func (MarkerPresence) Name() string {
	return "marker-presence"
}

// Descriptors lists the two diagnostic kinds the rule produces
func (MarkerPresence) Descriptors() []diag.Descriptor {
	return []diag.Descriptor{MissingMarker, AddLanguageSupport}
}

// Evaluate applies the check to a single symbol
func (MarkerPresence) Evaluate(ctx context.Context, sym symbol.Symbol, marker symbol.TypeRef, references []string) ([]diag.Diagnostic, error) {
	if sym == nil || marker == nil || sym.Abstract() {
		return nil, nil
	}

	var matched []symbol.Annotation
	for _, anno := range sym.Annotations() {
		if anno == nil {
			continue
		}
		if DerivesFrom(anno.Type(), marker) {
			matched = append(matched, anno)
		}
	}

	if len(matched) == 0 {
		var at symbol.Location
		if locs := sym.Locations(); len(locs) > 0 {
			at = locs[0]
		}
		return []diag.Diagnostic{{
			Rule:     MissingMarker.ID,
			Severity: MissingMarker.Severity,
			Location: at,
			Args:     []string{sym.Name()},
		}}, nil
	}
	// More than one marker is ambiguous; the platform rejects such types on
	// its own, so stay silent rather than guess which application counts.
	if len(matched) > 1 {
		return nil, nil
	}

	language, ok := declaredLanguage(matched[0].Arguments())
	if !ok {
		return nil, nil
	}
	at, err := matched[0].Location(ctx)
	if err != nil {
		return nil, err
	}
	missing, ok := complements[language]
	if !ok {
		return nil, nil
	}
	if referencesModule(references, missing.module) {
		return nil, nil
	}
	return []diag.Diagnostic{{
		Rule:     AddLanguageSupport.ID,
		Severity: AddLanguageSupport.Severity,
		Location: at,
		Args:     []string{sym.Name(), missing.language},
	}}, nil
}

// declaredLanguage returns the first primitive string constructor argument
func declaredLanguage(args []symbol.Value) (string, bool) {
	for _, arg := range args {
		if s, ok := arg.StringValue(); ok {
			return s, true
		}
	}
	return "", false
}

// referencesModule reports whether any reference display name resolves to
// the module, comparing file names case-insensitively with the directory
// and a trailing extension stripped. Malformed display names never match,
// which biases the check toward reporting.
func referencesModule(references []string, module string) bool {
	for _, display := range references {
		display = strings.TrimSpace(display)
		if display == "" {
			continue
		}
		name := filepath.Base(display)
		if strings.EqualFold(name, module) {
			return true
		}
		if ext := filepath.Ext(name); ext != "" && strings.EqualFold(strings.TrimSuffix(name, ext), module) {
			return true
		}
	}
	return false
}
