package rule

import "github.com/viant/annolint/symbol"

// DerivesFrom reports whether candidate is the target type or transitively
// extends it. Identity is the canonical qualified name; an empty name never
// matches. A visited set keeps degenerate cyclic hierarchies from looping.
func DerivesFrom(candidate, target symbol.TypeRef) bool {
	if candidate == nil || target == nil {
		return false
	}
	want := target.QualifiedName()
	if want == "" {
		return false
	}
	visited := make(map[string]bool)
	for current := candidate; current != nil; current = current.Base() {
		name := current.QualifiedName()
		if name == "" || visited[name] {
			return false
		}
		if name == want {
			return true
		}
		visited[name] = true
	}
	return false
}
