package rule

import (
	"context"
	"sort"

	"github.com/viant/annolint/diag"
	"github.com/viant/annolint/symbol"
)

// Rule evaluates one symbol of a borrowed compilation. Implementations are
// stateless and safe for concurrent use; they read the supplied graph and
// return findings without retaining anything.
type Rule interface {
	Name() string
	// Descriptors lists every diagnostic kind the rule can produce.
	Descriptors() []diag.Descriptor
	// Evaluate inspects a single symbol. The marker identifies the platform
	// annotation type within the symbol's compilation and references holds
	// the compilation's module display names. The returned error is non-nil
	// only when ctx was cancelled mid-evaluation.
	Evaluate(ctx context.Context, sym symbol.Symbol, marker symbol.TypeRef, references []string) ([]diag.Diagnostic, error)
}

var registry = make(map[string]Rule)

// Register adds a rule to the process-wide catalog
func Register(r Rule) {
	if r == nil {
		return
	}
	if _, ok := registry[r.Name()]; ok {
		panic("rule: duplicate registration of " + r.Name())
	}
	registry[r.Name()] = r
}

// Lookup returns a registered rule by name
func Lookup(name string) (Rule, bool) {
	r, ok := registry[name]
	return r, ok
}

// All returns the registered rules sorted by name
func All() []Rule {
	rules := make([]Rule, 0, len(registry))
	for _, r := range registry {
		rules = append(rules, r)
	}
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].Name() < rules[j].Name()
	})
	return rules
}

// Descriptors returns every diagnostic descriptor of every registered rule,
// sorted by ID.
func Descriptors() []diag.Descriptor {
	var out []diag.Descriptor
	for _, r := range registry {
		out = append(out, r.Descriptors()...)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}
