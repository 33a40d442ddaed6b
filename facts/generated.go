package facts

import (
	"go/ast"
	"reflect"

	"golang.org/x/tools/go/analysis"
)

// Generated maps the file names of a package to whether the file was
// generated, going by the "// Code generated ... DO NOT EDIT." convention.
var Generated = &analysis.Analyzer{
	Name: "isgenerated",
	Doc:  "annotate file names that have been code generated",
	Run: func(pass *analysis.Pass) (interface{}, error) {
		m := map[string]bool{}
		for _, f := range pass.Files {
			path := pass.Fset.PositionFor(f.Pos(), false).Filename
			m[path] = ast.IsGenerated(f)
		}
		return m, nil
	},
	RunDespiteErrors: true,
	ResultType:       reflect.TypeOf(map[string]bool{}),
}
