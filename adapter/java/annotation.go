package java

import (
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/annolint/symbol"
)

// parseAnnotations converts a declaration's annotation applications
func (i *Inspector) parseAnnotations(graph *symbol.Graph, node *sitter.Node, filename string) []symbol.Annotation {
	var out []symbol.Annotation
	for _, annoNode := range annotationNodes(node) {
		name := i.annotationTypeName(annoNode)
		if name == "" {
			continue
		}
		anno := symbol.NewAppliedAnnotation(
			graph.Type(name),
			i.parseArguments(graph, annoNode),
			nodeLocation(annoNode, filename),
		)
		out = append(out, anno)
	}
	return out
}

// annotationTypeName resolves the qualified type name of an application
func (i *Inspector) annotationTypeName(annoNode *sitter.Node) string {
	nameNode := annoNode.ChildByFieldName("name")
	if nameNode == nil {
		return ""
	}
	return i.qualify(nameNode.Content(i.source))
}

// parseArguments extracts the positional constructor arguments in source
// order. Named element value pairs are not constructor arguments and are
// skipped.
func (i *Inspector) parseArguments(graph *symbol.Graph, annoNode *sitter.Node) []symbol.Value {
	argsNode := annoNode.ChildByFieldName("arguments")
	if argsNode == nil {
		return nil
	}
	var out []symbol.Value
	for j := uint32(0); j < argsNode.NamedChildCount(); j++ {
		child := argsNode.NamedChild(int(j))
		if child.Type() == "element_value_pair" {
			continue
		}
		out = append(out, i.parseValue(graph, child))
	}
	return out
}

// parseValue converts one element value to a typed argument
func (i *Inspector) parseValue(graph *symbol.Graph, node *sitter.Node) symbol.Value {
	text := node.Content(i.source)
	switch node.Type() {
	case "string_literal":
		if unquoted, err := strconv.Unquote(text); err == nil {
			return symbol.PrimitiveValue(unquoted)
		}
		return symbol.PrimitiveValue(strings.Trim(text, `"`))
	case "decimal_integer_literal", "hex_integer_literal":
		if v, err := strconv.ParseInt(strings.TrimSuffix(text, "L"), 0, 64); err == nil {
			return symbol.PrimitiveValue(v)
		}
		return symbol.OtherValue(text)
	case "decimal_floating_point_literal":
		if v, err := strconv.ParseFloat(strings.TrimSuffix(text, "d"), 64); err == nil {
			return symbol.PrimitiveValue(v)
		}
		return symbol.OtherValue(text)
	case "true":
		return symbol.PrimitiveValue(true)
	case "false":
		return symbol.PrimitiveValue(false)
	case "element_value_array_initializer":
		var elems []symbol.Value
		for j := uint32(0); j < node.NamedChildCount(); j++ {
			elems = append(elems, i.parseValue(graph, node.NamedChild(int(j))))
		}
		return symbol.ArrayValue(elems...)
	case "class_literal":
		name := i.qualify(rawTypeName(strings.TrimSuffix(text, ".class")))
		return symbol.TypeValue(graph.Type(name))
	default:
		// Field accesses, identifiers and expressions stay uninterpreted.
		return symbol.OtherValue(text)
	}
}
