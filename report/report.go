// Package report emits diagnostics, honoring generated files and
// //rangecheck:ignore directives.
//
// Analyzers using Report must require facts.Generated and
// facts.Directives.
package report

import (
	"bytes"
	"go/ast"
	"go/printer"
	"go/token"
	"path/filepath"
	"strings"

	"honnef.co/go/ranges/config"
	"honnef.co/go/ranges/facts"

	"golang.org/x/tools/go/analysis"
)

type Options struct {
	Node ast.Node
	// Check is the ID of the check reporting the problem.
	Check           string
	FilterGenerated bool
	Message         string
}

func Report(pass *analysis.Pass, opts Options) {
	file := DisplayPosition(pass.Fset, opts.Node.Pos()).Filename
	if opts.FilterGenerated {
		if pass.ResultOf[facts.Generated].(map[string]bool)[file] {
			return
		}
	}
	if Ignored(pass.ResultOf[facts.Directives].([]facts.Directive), opts.Check, opts.Node.Pos()) {
		return
	}
	pass.Report(analysis.Diagnostic{
		Pos:      opts.Node.Pos(),
		End:      opts.Node.End(),
		Category: opts.Check,
		Message:  opts.Message,
	})
}

// Ignored reports whether an ignore directive covering pos names check.
// The first argument of an ignore directive is a comma-separated list
// of check IDs.
func Ignored(dirs []facts.Directive, check string, pos token.Pos) bool {
	for _, dir := range dirs {
		if dir.Command != "ignore" || len(dir.Arguments) < 2 || !dir.Covers(pos) {
			continue
		}
		for _, pat := range strings.Split(dir.Arguments[0], ",") {
			if config.MatchCheck(strings.TrimSpace(pat), check) {
				return true
			}
		}
	}
	return false
}

// Malformed returns the directives that lack the check list or the
// reason an ignore directive needs.
func Malformed(dirs []facts.Directive) []facts.Directive {
	var out []facts.Directive
	for _, dir := range dirs {
		if dir.Command == "ignore" && len(dir.Arguments) < 2 {
			out = append(out, dir)
		}
	}
	return out
}

func Render(pass *analysis.Pass, x interface{}) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, pass.Fset, x); err != nil {
		panic(err)
	}
	return buf.String()
}

// DisplayPosition returns the position of p, following line directives
// only if they point to another Go file.
func DisplayPosition(fset *token.FileSet, p token.Pos) token.Position {
	// This means we'll point to the original file for cgo files, but
	// we won't point to a YACC grammar file.
	pos := fset.PositionFor(p, false)
	adjPos := fset.PositionFor(p, true)

	if filepath.Ext(adjPos.Filename) == ".go" {
		return adjPos
	}
	return pos
}
