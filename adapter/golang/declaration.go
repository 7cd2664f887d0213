package golang

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	"github.com/viant/annolint/symbol"
)

// processFile adds every type declaration of one parsed file to the graph.
// pkgPath qualifies declared names; referenced names qualify through the
// file's import table.
func (i *Inspector) processFile(graph *symbol.Graph, file *ast.File, pkgPath string) {
	imports := buildImportMap(file)
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			i.addDeclaration(graph, genDecl, typeSpec, pkgPath, imports)
		}
	}
}

// addDeclaration turns one type spec into a graph symbol
func (i *Inspector) addDeclaration(graph *symbol.Graph, genDecl *ast.GenDecl, typeSpec *ast.TypeSpec, pkgPath string, imports map[string]string) {
	qualified := pkgPath + "." + typeSpec.Name.Name

	_, abstract := typeSpec.Type.(*ast.InterfaceType)

	def := graph.Type(qualified)
	if base := baseTypeName(typeSpec, pkgPath, imports); base != "" {
		def = graph.Extend(qualified, base)
	}

	sym := symbol.NewTypeSymbol(def, abstract)
	sym.AddLocation(i.position(typeSpec.Name.Pos()))
	for _, anno := range i.parseDirectives(graph, docComment(genDecl, typeSpec)) {
		sym.Annotate(anno)
	}
	graph.AddSymbol(sym)
}

// docComment prefers the type spec's own doc over the group's when the type
// was declared inside a parenthesized block.
func docComment(genDecl *ast.GenDecl, typeSpec *ast.TypeSpec) *ast.CommentGroup {
	if typeSpec.Doc != nil {
		return typeSpec.Doc
	}
	return genDecl.Doc
}

// parseDirectives converts a doc comment's inspector directives to annotation
// applications in source order. Directives absent from the catalog stay
// uninterpreted but still participate as annotations of their own type.
func (i *Inspector) parseDirectives(graph *symbol.Graph, doc *ast.CommentGroup) []symbol.Annotation {
	if doc == nil {
		return nil
	}
	var out []symbol.Annotation
	for _, comment := range doc.List {
		name, args, ok := cutDirective(comment.Text)
		if !ok {
			continue
		}
		if spec, known := LookupDirective(name); known {
			graph.Extend(spec.Name, spec.Extends)
		}
		anno := symbol.NewAppliedAnnotation(
			graph.Type(name),
			parseDirectiveArgs(args),
			i.position(comment.Pos()),
		)
		out = append(out, anno)
	}
	return out
}

// baseTypeName resolves a struct's first embedded field, the platform's
// convention for extending a rule base. Interfaces and non-struct types have
// no base.
func baseTypeName(typeSpec *ast.TypeSpec, pkgPath string, imports map[string]string) string {
	structType, ok := typeSpec.Type.(*ast.StructType)
	if !ok || structType.Fields == nil {
		return ""
	}
	for _, field := range structType.Fields.List {
		if len(field.Names) > 0 {
			continue
		}
		return qualifyExpr(field.Type, pkgPath, imports)
	}
	return ""
}

// qualifyExpr renders an embedded field type as a qualified name
func qualifyExpr(expr ast.Expr, pkgPath string, imports map[string]string) string {
	switch actual := expr.(type) {
	case *ast.Ident:
		return pkgPath + "." + actual.Name
	case *ast.StarExpr:
		return qualifyExpr(actual.X, pkgPath, imports)
	case *ast.SelectorExpr:
		ident, ok := actual.X.(*ast.Ident)
		if !ok {
			return ""
		}
		if path, ok := imports[ident.Name]; ok {
			return path + "." + actual.Sel.Name
		}
		return ident.Name + "." + actual.Sel.Name
	case *ast.IndexExpr:
		return qualifyExpr(actual.X, pkgPath, imports)
	}
	return ""
}

// buildImportMap maps local package names to import paths
func buildImportMap(file *ast.File) map[string]string {
	imports := make(map[string]string)
	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		name := ""
		if spec.Name != nil {
			name = spec.Name.Name
		} else if idx := strings.LastIndexByte(path, '/'); idx != -1 {
			name = path[idx+1:]
		} else {
			name = path
		}
		if name == "_" || name == "." {
			continue
		}
		imports[name] = path
	}
	return imports
}

// position converts a token position to a 1-based source location
func (i *Inspector) position(pos token.Pos) symbol.Location {
	position := i.fset.Position(pos)
	return symbol.Location{
		Path:   position.Filename,
		Line:   position.Line,
		Column: position.Column,
	}
}
