package facts

import (
	"go/ast"
	"go/token"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/tools/go/analysis"
)

const directivePrefix = "//rangecheck:"

// A Directive is a comment of the form '//rangecheck:<command>
// [arguments...]'. It represents instructions to the analysis, such as
// '//rangecheck:ignore RC1000 the loop bound is checked by the caller'.
type Directive struct {
	Command   string
	Arguments []string
	Directive *ast.Comment
	// Node is the node the comment is attached to.
	Node ast.Node
}

// Covers reports whether pos lies within the node the directive is
// attached to.
func (dir Directive) Covers(pos token.Pos) bool {
	return dir.Node.Pos() <= pos && pos < dir.Node.End()
}

func parseDirective(s string) (cmd string, args []string) {
	if !strings.HasPrefix(s, directivePrefix) {
		return "", nil
	}
	fields := strings.Fields(strings.TrimPrefix(s, directivePrefix))
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

// ParseDirectives returns the directives in files, sorted by position.
func ParseDirectives(files []*ast.File, fset *token.FileSet) []Directive {
	var dirs []Directive
	for _, f := range files {
		if !hasDirective(f) {
			continue
		}
		cm := ast.NewCommentMap(fset, f, f.Comments)
		for node, cgs := range cm {
			for _, cg := range cgs {
				for _, c := range cg.List {
					cmd, args := parseDirective(c.Text)
					if cmd == "" {
						continue
					}
					dirs = append(dirs, Directive{
						Command:   cmd,
						Arguments: args,
						Directive: c,
						Node:      node,
					})
				}
			}
		}
	}
	// Comment maps iterate in random order.
	sort.Slice(dirs, func(i, j int) bool {
		return dirs[i].Directive.Pos() < dirs[j].Directive.Pos()
	})
	return dirs
}

func hasDirective(f *ast.File) bool {
	for _, cg := range f.Comments {
		for _, c := range cg.List {
			if strings.HasPrefix(c.Text, directivePrefix) {
				return true
			}
		}
	}
	return false
}

var Directives = &analysis.Analyzer{
	Name: "directives",
	Doc:  "extracts rangecheck directives",
	Run: func(pass *analysis.Pass) (interface{}, error) {
		return ParseDirectives(pass.Files, pass.Fset), nil
	},
	RunDespiteErrors: true,
	ResultType:       reflect.TypeOf([]Directive{}),
}
