package java

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/viant/annolint/symbol"
)

// Platform types every Java rule plugin compiles against
const (
	MarkerTypeName = "io.viant.inspector.RuleSpec"
	BaseTypeName   = "io.viant.inspector.Rule"
)

// Config controls which Java sources are inspected
type Config struct {
	SkipTests bool // Skip *Test.java and *IT.java files
}

// Inspector builds annotation symbol graphs from Java sources
type Inspector struct {
	config    *Config
	importMap map[string]string
	pkg       string
	source    []byte
}

// NewInspector creates a Java inspector with the provided configuration
func NewInspector(config *Config) *Inspector {
	if config == nil {
		config = &Config{}
	}
	return &Inspector{config: config}
}

// InspectSource parses Java source code from a byte slice into a fresh graph
func (i *Inspector) InspectSource(src []byte) (*symbol.Graph, error) {
	graph := newGraph()
	if err := i.processSource(graph, src, "source.java"); err != nil {
		return nil, err
	}
	return graph, nil
}

// InspectFile parses a single Java source file into a fresh graph
func (i *Inspector) InspectFile(filename string) (*symbol.Graph, error) {
	graph := newGraph()
	if err := i.processFile(graph, filename); err != nil {
		return nil, err
	}
	return graph, nil
}

// InspectProject parses every Java source under dir into one shared graph so
// that cross-file extends chains and annotation aliases resolve.
func (i *Inspector) InspectProject(dir string) (*symbol.Graph, error) {
	graph := newGraph()
	var seen int
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			name := entry.Name()
			if name == "target" || name == "build" || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".java" {
			return nil
		}
		if i.config.SkipTests && isTestFile(path) {
			return nil
		}
		seen++
		return i.processFile(graph, path)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to inspect project %s: %w", dir, err)
	}
	if seen == 0 {
		return nil, fmt.Errorf("no Java files found in project: %s", dir)
	}
	return graph, nil
}

// processFile reads and parses one file into the shared graph
func (i *Inspector) processFile(graph *symbol.Graph, filename string) error {
	src, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return i.processSource(graph, src, filename)
}

// processSource parses one compilation unit and adds its symbols to the graph
func (i *Inspector) processSource(graph *symbol.Graph, src []byte, filename string) error {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	rootNode := tree.RootNode()

	i.source = src
	i.pkg = ""
	i.importMap = make(map[string]string)

	var typeNodes []*sitter.Node
	for j := uint32(0); j < rootNode.NamedChildCount(); j++ {
		childNode := rootNode.NamedChild(int(j))
		switch childNode.Type() {
		case "package_declaration":
			i.pkg = parsePackageDeclaration(childNode, src)
		case "import_declaration":
			for name, scope := range parseImportDeclarations(childNode, src) {
				i.importMap[name] = scope
			}
		case "class_declaration", "interface_declaration", "enum_declaration", "annotation_type_declaration":
			typeNodes = append(typeNodes, childNode)
		}
	}

	for _, typeNode := range typeNodes {
		i.addDeclaration(graph, typeNode, filename)
	}
	return nil
}

// isTestFile reports whether the file follows Maven surefire test naming
func isTestFile(path string) bool {
	base := strings.TrimSuffix(filepath.Base(path), ".java")
	return strings.HasSuffix(base, "Test") || strings.HasSuffix(base, "Tests") ||
		strings.HasSuffix(base, "IT") || strings.HasSuffix(base, "ITCase")
}

// newGraph creates a graph that already knows the platform types
func newGraph() *symbol.Graph {
	graph := symbol.NewGraph()
	graph.Type(MarkerTypeName)
	graph.Type(BaseTypeName)
	return graph
}
