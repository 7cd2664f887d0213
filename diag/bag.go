package diag

import "sort"

// Bag accumulates diagnostics, dropping duplicates by fingerprint. A Bag is
// not safe for concurrent use.
type Bag struct {
	items []Diagnostic
	seen  map[uint64]bool
}

// NewBag creates an empty bag
func NewBag() *Bag {
	return &Bag{seen: make(map[uint64]bool)}
}

// Report adds a diagnostic, implementing Sink
func (b *Bag) Report(d Diagnostic) {
	b.Add(d)
}

// Add appends a diagnostic unless an identical one was already added
func (b *Bag) Add(d Diagnostic) bool {
	fp := Fingerprint(d)
	if b.seen[fp] {
		return false
	}
	b.seen[fp] = true
	b.items = append(b.items, d)
	return true
}

// Merge adds every diagnostic from the other bag, preserving dedup
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	for _, d := range other.items {
		b.Add(d)
	}
}

// Len returns the number of retained diagnostics
func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns the retained diagnostics. The returned slice aliases the
// bag's storage; callers must not modify it.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Count returns how many retained diagnostics reach the minimum severity
func (b *Bag) Count(min Severity) int {
	var n int
	for i := range b.items {
		if b.items[i].Severity >= min {
			n++
		}
	}
	return n
}

// Sort orders diagnostics by file, line, column, severity descending and
// rule ID ascending, for deterministic output.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Location.Path != dj.Location.Path {
			return di.Location.Path < dj.Location.Path
		}
		if di.Location.Line != dj.Location.Line {
			return di.Location.Line < dj.Location.Line
		}
		if di.Location.Column != dj.Location.Column {
			return di.Location.Column < dj.Location.Column
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Rule < dj.Rule
	})
}
