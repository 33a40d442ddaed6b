// Package debug contains helpers for debugging and testing analyses.
package debug

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
)

// TypeCheck parses and type-checks a single-file Go package from a string,
// using sizes for the sizes of types. The package may only import
// packages from the standard library.
func TypeCheck(src string, sizes types.Sizes) (*token.FileSet, *ast.File, *types.Info, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "foo.go", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, nil, nil, err
	}
	info := &types.Info{
		Types:     map[ast.Expr]types.TypeAndValue{},
		Defs:      map[*ast.Ident]types.Object{},
		Uses:      map[*ast.Ident]types.Object{},
		Instances: map[*ast.Ident]types.Instance{},
	}
	tcfg := &types.Config{
		Importer: importer.Default(),
		Sizes:    sizes,
	}
	if _, err := tcfg.Check(f.Name.Name, fset, []*ast.File{f}, info); err != nil {
		return nil, nil, nil, err
	}
	return fset, f, info, nil
}

// FormatNode renders node as Go source.
func FormatNode(fset *token.FileSet, node ast.Node) string {
	var buf bytes.Buffer
	format.Node(&buf, fset, node)
	return buf.String()
}
