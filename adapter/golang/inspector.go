package golang

import (
	"fmt"
	"go/parser"
	"go/token"
	"strings"

	"github.com/viant/annolint/symbol"
	"golang.org/x/tools/go/packages"
)

// Platform types every Go rule plugin compiles against. The marker is a
// toolchain-style directive comment rather than a declared type; the
// directive catalog supplies its derivation chain.
const (
	MarkerTypeName = "inspector:rule"
	BaseTypeName   = "github.com/viant/inspector-golang.Rule"
)

// Config controls which Go sources are inspected
type Config struct {
	SkipTests bool // Skip *_test.go files
}

// Inspector builds annotation symbol graphs from Go sources
type Inspector struct {
	config *Config
	fset   *token.FileSet
}

// NewInspector creates a Go inspector with the provided configuration
func NewInspector(config *Config) *Inspector {
	if config == nil {
		config = &Config{}
	}
	return &Inspector{config: config, fset: token.NewFileSet()}
}

const defaultFilename = "source.go"

// InspectSource parses Go source code from a byte slice into a fresh graph
func (i *Inspector) InspectSource(src []byte) (*symbol.Graph, error) {
	graph := newGraph()
	file, err := parser.ParseFile(i.fset, defaultFilename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	i.processFile(graph, file, file.Name.Name)
	return graph, nil
}

// InspectFile parses a single Go source file into a fresh graph
func (i *Inspector) InspectFile(filename string) (*symbol.Graph, error) {
	graph := newGraph()
	file, err := parser.ParseFile(i.fset, filename, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", filename, err)
	}
	i.processFile(graph, file, file.Name.Name)
	return graph, nil
}

// InspectProject loads every package under dir through go/packages and merges
// their declarations into one shared graph so cross-package embedding chains
// resolve by import path.
func (i *Inspector) InspectProject(dir string) (*symbol.Graph, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
		Dir:  dir,
		Fset: i.fset,
	}
	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, fmt.Errorf("failed to load project %s: %w", dir, err)
	}
	graph := newGraph()
	var seen int
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			filename := i.fset.Position(file.Pos()).Filename
			if i.config.SkipTests && strings.HasSuffix(filename, "_test.go") {
				continue
			}
			seen++
			i.processFile(graph, file, packagePath(pkg, file.Name.Name))
		}
	}
	if seen == 0 {
		return nil, fmt.Errorf("no Go files found in project: %s", dir)
	}
	return graph, nil
}

// packagePath prefers the resolved import path over the package clause name
func packagePath(pkg *packages.Package, fallback string) string {
	if pkg.PkgPath != "" {
		return pkg.PkgPath
	}
	return fallback
}

// newGraph creates a graph that already knows the directive catalog and the
// platform rule base.
func newGraph() *symbol.Graph {
	graph := symbol.NewGraph()
	for _, spec := range directiveRegistry {
		graph.Extend(spec.Name, spec.Extends)
	}
	graph.Type(BaseTypeName)
	return graph
}
