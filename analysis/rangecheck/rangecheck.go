// Package rangecheck reports integer expressions whose outcome is
// fixed by the ranges of their operands.
//
// The analysis is local to single expressions. Variables are assumed
// to hold any value of their type, so every finding holds regardless
// of control flow.
//
// Checks:
//
//	RC1000  comparison is always true or always false
//	RC1001  divisor is always zero
package rangecheck

import (
	"fmt"
	"go/ast"
	"go/token"

	"honnef.co/go/ranges/analysis/code"
	"honnef.co/go/ranges/config"
	"honnef.co/go/ranges/facts"
	"honnef.co/go/ranges/go/rangeset"
	"honnef.co/go/ranges/report"

	"golang.org/x/tools/go/analysis"
)

const (
	CheckComparison = "RC1000"
	CheckZeroDivide = "RC1001"
)

var Analyzer = &analysis.Analyzer{
	Name:     "rangecheck",
	Doc:      "report integer comparisons with fixed outcomes and divisors that are always zero",
	Run:      run,
	Requires: append([]*analysis.Analyzer{config.Analyzer, facts.Generated, facts.Directives}, code.RequiredAnalyzers...),
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, dir := range report.Malformed(pass.ResultOf[facts.Directives].([]facts.Directive)) {
		pass.Reportf(dir.Directive.Pos(), "malformed rangecheck:ignore directive; it needs a list of checks and a reason")
	}

	cfg := config.For(pass)
	ev := newEvaluator(pass.TypesInfo, cfg.Sizes())
	compare := cfg.Enabled(CheckComparison)
	divide := cfg.Enabled(CheckZeroDivide)
	if !compare && !divide {
		return nil, nil
	}

	fn := func(node ast.Node) {
		switch node := node.(type) {
		case *ast.BinaryExpr:
			switch node.Op {
			case token.EQL, token.NEQ, token.LSS, token.LEQ, token.GTR, token.GEQ:
				if compare {
					checkComparison(pass, ev, node)
				}
			case token.QUO, token.REM:
				if divide {
					checkDivisor(pass, ev, node.Y)
				}
			}
		case *ast.AssignStmt:
			if divide && (node.Tok == token.QUO_ASSIGN || node.Tok == token.REM_ASSIGN) {
				checkDivisor(pass, ev, node.Rhs[0])
			}
		}
	}
	code.Preorder(pass, fn, (*ast.BinaryExpr)(nil), (*ast.AssignStmt)(nil))
	return nil, nil
}

func checkComparison(pass *analysis.Pass, ev *evaluator, expr *ast.BinaryExpr) {
	if tv := pass.TypesInfo.Types[expr]; tv.Value != nil {
		// Constant expressions are evaluated by the compiler.
		return
	}
	T := pass.TypesInfo.TypeOf(expr.X)
	if T == nil || !ev.ordered(T) {
		return
	}
	rel, ok := rangeset.RelationFromToken(expr.Op)
	if !ok {
		return
	}
	x, ok1 := ev.eval(expr.X)
	y, ok2 := ev.eval(expr.Y)
	if !ok1 || !ok2 || x.IsEmpty() || y.IsEmpty() {
		return
	}

	var always bool
	if holds, _ := y.FromRelation(rel); !x.Intersects(holds) {
		always = false
	} else if fails, _ := y.FromRelation(rel.Negate()); !x.Intersects(fails) {
		always = true
	} else {
		return
	}

	// Describe the side that isn't a constant.
	side, values := expr.X, x
	if pass.TypesInfo.Types[expr.X].Value != nil {
		side, values = expr.Y, y
	}
	typeRange, _ := ev.typeRange(pass.TypesInfo.TypeOf(side))
	report.Report(pass, report.Options{
		Node:            expr,
		Check:           CheckComparison,
		FilterGenerated: true,
		Message: fmt.Sprintf("comparison is always %t: %s is %s",
			always, report.Render(pass, side), values.Describe(typeRange)),
	})
}

func checkDivisor(pass *analysis.Pass, ev *evaluator, divisor ast.Expr) {
	divisor = ast.Unparen(divisor)
	if tv := pass.TypesInfo.Types[divisor]; tv.Value != nil {
		// The compiler rejects constant division by zero.
		return
	}
	y, ok := ev.eval(divisor)
	if !ok {
		return
	}
	if v, ok := y.ConstantValue(); ok && v == 0 {
		report.Report(pass, report.Options{
			Node:            divisor,
			Check:           CheckZeroDivide,
			FilterGenerated: true,
			Message:         fmt.Sprintf("divisor %s is always zero", report.Render(pass, divisor)),
		})
	}
}
