package rangecheck

import (
	"go/ast"
	"go/token"
	"go/types"

	"honnef.co/go/ranges/go/rangeset"
	"honnef.co/go/ranges/go/types/typeutil"
)

// evaluator computes the possible values of integer expressions. It
// knows nothing about variables: every identifier that isn't a
// constant may hold any value of its type.
type evaluator struct {
	info  *types.Info
	sizes types.Sizes
}

func newEvaluator(info *types.Info, sizes types.Sizes) *evaluator {
	return &evaluator{info: info, sizes: sizes}
}

// typeRange returns the values of an integer type, interpreted as
// int64. Unsigned 64-bit types map onto every int64.
func (ev *evaluator) typeRange(T types.Type) (rangeset.Set, bool) {
	if w, err := rangeset.WidthOf(T, ev.sizes); err == nil {
		return rangeset.All(w), true
	}
	basic, ok := typeutil.IntegerBasic(T)
	if !ok {
		return rangeset.Set{}, false
	}
	bits := ev.sizes.Sizeof(basic) * 8
	if basic.Info()&types.IsUnsigned != 0 {
		if bits >= 64 {
			return rangeset.All(rangeset.W64), true
		}
		return rangeset.Range(0, 1<<bits-1), true
	}
	if bits >= 64 {
		return rangeset.All(rangeset.W64), true
	}
	return rangeset.Range(-1<<(bits-1), 1<<(bits-1)-1), true
}

// ordered reports whether comparisons of values of type T agree with
// the signed ordering of their int64 representation.
func (ev *evaluator) ordered(T types.Type) bool {
	if _, err := rangeset.WidthOf(T, ev.sizes); err == nil {
		return true
	}
	basic, ok := typeutil.IntegerBasic(T)
	if !ok {
		return false
	}
	return basic.Info()&types.IsUnsigned == 0 || ev.sizes.Sizeof(basic) < 8
}

// eval returns the possible values of e. It reports false if e isn't
// an integer expression.
func (ev *evaluator) eval(e ast.Expr) (rangeset.Set, bool) {
	tv, ok := ev.info.Types[e]
	if !ok {
		return rangeset.Set{}, false
	}
	if tv.Value != nil {
		return rangeset.FromConstant(tv.Value)
	}
	w, err := rangeset.WidthOf(tv.Type, ev.sizes)
	if err != nil {
		// Only 32 and 64 bit signed arithmetic is modelled.
		return ev.typeRange(tv.Type)
	}
	full := rangeset.All(w)

	switch e := e.(type) {
	case *ast.ParenExpr:
		return ev.eval(e.X)
	case *ast.UnaryExpr:
		x, ok := ev.eval(e.X)
		if !ok {
			return full, true
		}
		switch e.Op {
		case token.ADD:
			return x, true
		case token.SUB:
			return x.Negate(w), true
		case token.XOR:
			return x.Xor(rangeset.Point(-1), w), true
		}
	case *ast.BinaryExpr:
		return ev.binary(e, w), true
	case *ast.CallExpr:
		return ev.call(e, w), true
	}
	return full, true
}

func (ev *evaluator) binary(e *ast.BinaryExpr, w rangeset.Width) rangeset.Set {
	full := rangeset.All(w)
	x, ok1 := ev.eval(e.X)
	y, ok2 := ev.eval(e.Y)
	if !ok1 || !ok2 {
		return full
	}
	if e.Op == token.AND_NOT {
		return x.And(y.Xor(rangeset.Point(-1), w))
	}
	op, ok := rangeset.BinOpFromToken(e.Op)
	if !ok {
		return full
	}
	switch op {
	case rangeset.Shl, rangeset.Shr:
		// Go doesn't reduce shift counts; counts of at least the
		// bit size shift everything out.
		if !rangeset.Range(0, int64(w.Bits()-1)).ContainsSet(y) {
			return full
		}
	}
	return op.Eval(x, y, w)
}

func (ev *evaluator) call(e *ast.CallExpr, w rangeset.Width) rangeset.Set {
	full := rangeset.All(w)
	if len(e.Args) != 1 {
		return full
	}
	if tv, ok := ev.info.Types[e.Fun]; ok && tv.IsType() {
		// Conversion
		x, ok := ev.eval(e.Args[0])
		if !ok {
			return full
		}
		if cast, err := x.CastTo(w); err == nil {
			return cast
		}
		return full
	}
	if id, ok := ast.Unparen(e.Fun).(*ast.Ident); ok {
		if b, ok := ev.info.Uses[id].(*types.Builtin); ok {
			switch b.Name() {
			case "len", "cap":
				return rangeset.Range(0, w.Max())
			}
		}
	}
	return full
}
