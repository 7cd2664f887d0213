package audit

import (
	"context"
	"fmt"
	"runtime"

	"github.com/viant/annolint/diag"
	"github.com/viant/annolint/rule"
	"github.com/viant/annolint/symbol"
	"golang.org/x/sync/errgroup"
)

// Selector decides whether a symbol is audited
type Selector func(sym symbol.Symbol) bool

// Options configure a run over one compilation
type Options struct {
	Marker   string          // Qualified name of the rule marker annotation type
	Base     string          // Qualified name of the rule base type used by the default selector
	Selector Selector        // Custom selection policy, overrides Base when set
	Rules    []rule.Rule     // Rules to evaluate, every registered rule when empty
	Enabled  map[string]bool // Per-descriptor opt-in or opt-out, overriding descriptor defaults
	Jobs     int             // Parallel symbol evaluations, NumCPU when zero
}

// Run evaluates the configured rules against every selected symbol of the
// compilation and reports retained diagnostics to the sink in symbol order.
// The compilation is borrowed read-only; nothing is retained after return.
func Run(ctx context.Context, comp symbol.Compilation, sink diag.Sink, opts Options) error {
	if comp == nil {
		return fmt.Errorf("failed to audit: compilation was nil")
	}
	if sink == nil {
		return fmt.Errorf("failed to audit: sink was nil")
	}
	rules := opts.Rules
	if len(rules) == 0 {
		rules = rule.All()
	}
	allowed := allowedDescriptors(rules, opts.Enabled)

	marker := comp.ResolveType(opts.Marker)
	if marker == nil {
		// The platform annotation is unknown to this compilation, so no
		// symbol can be checked against it.
		return nil
	}

	selected := selectSymbols(comp, opts)
	if len(selected) == 0 {
		return nil
	}
	references := comp.References()

	results := make([][]diag.Diagnostic, len(selected))
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(jobCount(opts.Jobs, len(selected)))

	for i, sym := range selected {
		i, sym := i, sym
		group.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			for _, r := range rules {
				found, err := r.Evaluate(gctx, sym, marker, references)
				if err != nil {
					return fmt.Errorf("failed to evaluate %s on %s: %w", r.Name(), sym.Name(), err)
				}
				results[i] = append(results[i], found...)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	for _, batch := range results {
		for _, d := range batch {
			if !allowed[d.Rule] {
				continue
			}
			sink.Report(d)
		}
	}
	return nil
}

// selectSymbols applies the selection policy to the compilation's symbols
func selectSymbols(comp symbol.Compilation, opts Options) []symbol.Symbol {
	selector := opts.Selector
	if selector == nil && opts.Base != "" {
		base := comp.ResolveType(opts.Base)
		if base == nil {
			return nil
		}
		selector = func(sym symbol.Symbol) bool {
			return rule.DerivesFrom(sym.Type(), base)
		}
	}
	symbols := comp.Symbols()
	if selector == nil {
		return symbols
	}
	selected := make([]symbol.Symbol, 0, len(symbols))
	for _, sym := range symbols {
		if sym == nil || !selector(sym) {
			continue
		}
		selected = append(selected, sym)
	}
	return selected
}

// allowedDescriptors folds descriptor defaults with per-run overrides
func allowedDescriptors(rules []rule.Rule, overrides map[string]bool) map[string]bool {
	allowed := make(map[string]bool)
	for _, r := range rules {
		for _, desc := range r.Descriptors() {
			on := desc.Enabled
			if v, ok := overrides[desc.ID]; ok {
				on = v
			}
			allowed[desc.ID] = on
		}
	}
	return allowed
}

func jobCount(jobs, pending int) int {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > pending {
		jobs = pending
	}
	if jobs < 1 {
		jobs = 1
	}
	return jobs
}
