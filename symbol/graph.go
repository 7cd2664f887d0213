package symbol

import "context"

// TypeDef is an interned in-memory type definition
type TypeDef struct {
	name   string
	parent *TypeDef
}

// QualifiedName returns the canonical name the definition was interned under
func (t *TypeDef) QualifiedName() string {
	if t == nil {
		return ""
	}
	return t.name
}

// Base returns the immediate base definition, nil when none was recorded
func (t *TypeDef) Base() TypeRef {
	if t == nil || t.parent == nil {
		return nil
	}
	return t.parent
}

// AppliedAnnotation is an in-memory annotation application
type AppliedAnnotation struct {
	def  *TypeDef
	args []Value
	at   Location
}

// NewAppliedAnnotation creates an annotation application of the supplied type
func NewAppliedAnnotation(def *TypeDef, args []Value, at Location) *AppliedAnnotation {
	return &AppliedAnnotation{def: def, args: args, at: at}
}

// Type returns the annotation's type definition
func (a *AppliedAnnotation) Type() TypeRef {
	if a == nil || a.def == nil {
		return nil
	}
	return a.def
}

// Arguments returns the positional constructor arguments
func (a *AppliedAnnotation) Arguments() []Value {
	if a == nil {
		return nil
	}
	return a.args
}

// Location returns the recorded application position, honoring cancellation
func (a *AppliedAnnotation) Location(ctx context.Context) (Location, error) {
	if err := ctx.Err(); err != nil {
		return Location{}, err
	}
	return a.at, nil
}

// TypeSymbol is an in-memory declared type symbol
type TypeSymbol struct {
	def      *TypeDef
	abstract bool
	locs     []Location
	annos    []Annotation
}

// NewTypeSymbol creates a symbol for the supplied type definition
func NewTypeSymbol(def *TypeDef, abstract bool) *TypeSymbol {
	return &TypeSymbol{def: def, abstract: abstract}
}

// Name returns the simple name, the last dotted segment of the qualified name
func (s *TypeSymbol) Name() string {
	name := s.def.QualifiedName()
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' || name[i] == '/' {
			return name[i+1:]
		}
	}
	return name
}

// Type returns the symbol's own type definition
func (s *TypeSymbol) Type() TypeRef {
	if s.def == nil {
		return nil
	}
	return s.def
}

// Abstract reports whether the symbol was declared non-instantiable
func (s *TypeSymbol) Abstract() bool {
	return s.abstract
}

// Locations returns the recorded declaration locations in source order
func (s *TypeSymbol) Locations() []Location {
	return s.locs
}

// Annotations returns the applied annotations in declaration order
func (s *TypeSymbol) Annotations() []Annotation {
	return s.annos
}

// AddLocation appends a declaration location
func (s *TypeSymbol) AddLocation(loc Location) {
	s.locs = append(s.locs, loc)
}

// Annotate appends an applied annotation
func (s *TypeSymbol) Annotate(anno Annotation) {
	s.annos = append(s.annos, anno)
}

// Graph is the canonical in-memory Compilation. Adapters populate it on a
// single goroutine; once handed to an evaluation driver it is read-only.
type Graph struct {
	types   map[string]*TypeDef
	order   []*TypeSymbol
	refs    []string
	seenRef map[string]bool
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{
		types:   make(map[string]*TypeDef),
		seenRef: make(map[string]bool),
	}
}

// Type interns a type definition under its canonical qualified name
func (g *Graph) Type(qualifiedName string) *TypeDef {
	if def, ok := g.types[qualifiedName]; ok {
		return def
	}
	def := &TypeDef{name: qualifiedName}
	g.types[qualifiedName] = def
	return def
}

// Extend interns both names and records base as the immediate base type
func (g *Graph) Extend(qualifiedName, base string) *TypeDef {
	def := g.Type(qualifiedName)
	if base != "" {
		def.parent = g.Type(base)
	}
	return def
}

// AddSymbol appends a symbol to the compilation
func (g *Graph) AddSymbol(sym *TypeSymbol) {
	g.order = append(g.order, sym)
}

// AddReference appends a referenced module display name, keeping first-seen order
func (g *Graph) AddReference(display string) {
	if g.seenRef[display] {
		return
	}
	g.seenRef[display] = true
	g.refs = append(g.refs, display)
}

// Symbols returns the declared symbols in insertion order
func (g *Graph) Symbols() []Symbol {
	symbols := make([]Symbol, 0, len(g.order))
	for _, sym := range g.order {
		symbols = append(symbols, sym)
	}
	return symbols
}

// References returns the referenced module display names in insertion order
func (g *Graph) References() []string {
	return g.refs
}

// ResolveType returns the interned definition for the name, nil when absent
func (g *Graph) ResolveType(qualifiedName string) TypeRef {
	if def, ok := g.types[qualifiedName]; ok {
		return def
	}
	return nil
}
