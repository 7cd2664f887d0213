package symbol

import "context"

// TypeRef identifies a resolved type within a compilation. Implementations
// return a canonical qualified name: the same type yields the same name for
// the lifetime of the compilation, and an unknown type yields an empty name.
type TypeRef interface {
	QualifiedName() string
	// Base returns the immediate base type, or nil when there is none or it
	// could not be resolved.
	Base() TypeRef
}

// Annotation is a single attribute application on a symbol
type Annotation interface {
	Type() TypeRef
	// Arguments returns the positional constructor arguments in source order.
	Arguments() []Value
	// Location resolves the application's syntax position. Resolution may be
	// expensive; implementations honor ctx and return its error when
	// cancelled.
	Location(ctx context.Context) (Location, error)
}

// Symbol is a declared type as observed by an inspection host
type Symbol interface {
	Name() string
	Type() TypeRef
	// Abstract reports whether the symbol cannot be instantiated directly.
	Abstract() bool
	// Locations returns the declaration locations in source order.
	Locations() []Location
	// Annotations returns the applied annotations in declaration order.
	Annotations() []Annotation
}

// Compilation is a read-only view of one inspected project. The view is
// owned by the host and borrowed for the duration of a call; callers must
// not retain it afterwards.
type Compilation interface {
	Symbols() []Symbol
	// References returns the display names of referenced modules in
	// declaration order.
	References() []string
	// ResolveType looks a type up by its canonical qualified name, returning
	// nil when the compilation does not know it.
	ResolveType(qualifiedName string) TypeRef
}
