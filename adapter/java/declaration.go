package java

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/annolint/symbol"
)

// parsePackageDeclaration extracts the package name from a compilation unit
func parsePackageDeclaration(node *sitter.Node, source []byte) string {
	if node.Type() != "package_declaration" {
		return ""
	}
	nameNode := node.NamedChild(0)
	if nameNode == nil {
		return ""
	}
	return nameNode.Content(source)
}

// parseImportDeclarations extracts simple name to package mappings
func parseImportDeclarations(node *sitter.Node, source []byte) map[string]string {
	imports := make(map[string]string)
	if node.Type() != "import_declaration" {
		return imports
	}
	importNode := node.NamedChild(0)
	if importNode == nil {
		return imports
	}
	scopeNode := importNode.ChildByFieldName("scope")
	nameNode := importNode.ChildByFieldName("name")
	if scopeNode != nil && nameNode != nil {
		imports[nameNode.Content(source)] = scopeNode.Content(source)
	}
	return imports
}

// addDeclaration turns one top-level type declaration into a graph symbol
func (i *Inspector) addDeclaration(graph *symbol.Graph, node *sitter.Node, filename string) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	qualified := i.qualifyLocal(nameNode.Content(i.source))

	abstract := false
	switch node.Type() {
	case "interface_declaration", "annotation_type_declaration":
		abstract = true
	case "class_declaration":
		abstract = hasModifier(node, "abstract")
	}

	def := graph.Type(qualified)
	if base := i.baseTypeName(node); base != "" {
		def = graph.Extend(qualified, base)
	}

	sym := symbol.NewTypeSymbol(def, abstract)
	// Anchor the symbol at its name identifier; the declaration node itself
	// starts at the leading annotations.
	sym.AddLocation(nodeLocation(nameNode, filename))
	for _, anno := range i.parseAnnotations(graph, node, filename) {
		sym.Annotate(anno)
	}
	graph.AddSymbol(sym)
}

// baseTypeName resolves a declaration's base type, the superclass of a class
// or the first non java.lang.annotation meta annotation of an annotation
// type declaration.
func (i *Inspector) baseTypeName(node *sitter.Node) string {
	switch node.Type() {
	case "class_declaration":
		superNode := node.ChildByFieldName("superclass")
		if superNode == nil {
			return ""
		}
		typeNode := superNode.NamedChild(0)
		if typeNode == nil {
			return ""
		}
		return i.qualify(rawTypeName(typeNode.Content(i.source)))
	case "annotation_type_declaration":
		for _, annoNode := range annotationNodes(node) {
			name := i.annotationTypeName(annoNode)
			if name == "" || strings.HasPrefix(name, "java.lang.annotation.") {
				continue
			}
			return name
		}
	}
	return ""
}

// hasModifier scans a declaration's modifiers for a keyword token
func hasModifier(node *sitter.Node, keyword string) bool {
	modifiersNode := findModifiers(node)
	if modifiersNode == nil {
		return false
	}
	for j := 0; j < int(modifiersNode.ChildCount()); j++ {
		if modifiersNode.Child(j).Type() == keyword {
			return true
		}
	}
	return false
}

// findModifiers returns a declaration's modifiers node when present
func findModifiers(node *sitter.Node) *sitter.Node {
	if node.NamedChildCount() == 0 {
		return nil
	}
	if first := node.NamedChild(0); first.Type() == "modifiers" {
		return first
	}
	return nil
}

// annotationNodes returns the annotation applications within a declaration's
// modifiers, in source order.
func annotationNodes(node *sitter.Node) []*sitter.Node {
	modifiersNode := findModifiers(node)
	if modifiersNode == nil {
		return nil
	}
	var out []*sitter.Node
	for j := uint32(0); j < modifiersNode.NamedChildCount(); j++ {
		child := modifiersNode.NamedChild(int(j))
		if child.Type() == "marker_annotation" || child.Type() == "annotation" {
			out = append(out, child)
		}
	}
	return out
}

// qualifyLocal prefixes a declared name with the compilation unit's package
func (i *Inspector) qualifyLocal(name string) string {
	if i.pkg == "" {
		return name
	}
	return i.pkg + "." + name
}

// qualify resolves a referenced type name through the import map, falling
// back to the local package for unimported simple names.
func (i *Inspector) qualify(name string) string {
	if name == "" || strings.Contains(name, ".") {
		return name
	}
	if scope, ok := i.importMap[name]; ok {
		return scope + "." + name
	}
	return i.qualifyLocal(name)
}

// rawTypeName strips generics from a type reference, e.g. Rule<T> -> Rule
func rawTypeName(name string) string {
	if idx := strings.IndexByte(name, '<'); idx != -1 {
		name = name[:idx]
	}
	return strings.TrimSpace(name)
}

// nodeLocation converts a node start point to a 1-based source location
func nodeLocation(node *sitter.Node, filename string) symbol.Location {
	point := node.StartPoint()
	return symbol.Location{
		Path:   filename,
		Line:   int(point.Row) + 1,
		Column: int(point.Column) + 1,
	}
}
