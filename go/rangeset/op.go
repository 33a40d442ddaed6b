package rangeset

import (
	"fmt"
	"go/token"
)

// BinOp is a binary operator with a transfer function over sets.
type BinOp uint8

const (
	Plus BinOp = iota + 1
	Minus
	And
	Or
	Xor
	Mul
	Mod
	Div
	Shl
	Shr
	Ushr
)

var binOpNames = [...]string{
	Plus:  "+",
	Minus: "-",
	And:   "&",
	Or:    "|",
	Xor:   "^",
	Mul:   "*",
	Mod:   "%",
	Div:   "/",
	Shl:   "<<",
	Shr:   ">>",
	Ushr:  ">>>",
}

func (op BinOp) String() string {
	if op == 0 || int(op) >= len(binOpNames) {
		return fmt.Sprintf("BinOp(%d)", uint8(op))
	}
	return binOpNames[op]
}

// Eval returns the possible results of applying op to members of left
// and right, computed in w.
func (op BinOp) Eval(left, right Set, w Width) Set {
	switch op {
	case Plus:
		return left.Plus(right, w)
	case Minus:
		return left.Minus(right, w)
	case And:
		return left.And(right)
	case Or:
		return left.Or(right, w)
	case Xor:
		return left.Xor(right, w)
	case Mul:
		return left.Mul(right, w)
	case Mod:
		return left.Mod(right)
	case Div:
		return left.Div(right, w)
	case Shl:
		return left.ShiftLeft(right, w)
	case Shr:
		return left.ShiftRight(right, w)
	case Ushr:
		return left.UnsignedShiftRight(right, w)
	default:
		panic(fmt.Sprintf("rangeset: unknown operator %d", uint8(op)))
	}
}

// EvalWide is Eval for operations repeated in a loop. Additive and
// multiplicative operators widen their result so that a fixed point is
// reached; the others are evaluated exactly.
func (op BinOp) EvalWide(left, right Set, w Width) Set {
	switch op {
	case Plus:
		return left.PlusWiden(right, w)
	case Minus:
		return left.PlusWiden(right.Negate(w), w)
	case Mul:
		return left.MulWiden(right, w)
	default:
		return op.Eval(left, right, w)
	}
}

// Apply is op.Eval(left, right, w).
func Apply(op BinOp, left, right Set, w Width) Set {
	return op.Eval(left, right, w)
}

// ApplyWiden is op.EvalWide(left, right, w).
func ApplyWiden(op BinOp, left, right Set, w Width) Set {
	return op.EvalWide(left, right, w)
}

// BinOpFromToken maps a Go binary or assignment operator to its BinOp.
// Go has no unsigned right shift operator, so Ushr is never returned.
func BinOpFromToken(tok token.Token) (BinOp, bool) {
	switch tok {
	case token.ADD, token.ADD_ASSIGN:
		return Plus, true
	case token.SUB, token.SUB_ASSIGN:
		return Minus, true
	case token.AND, token.AND_ASSIGN:
		return And, true
	case token.OR, token.OR_ASSIGN:
		return Or, true
	case token.XOR, token.XOR_ASSIGN:
		return Xor, true
	case token.MUL, token.MUL_ASSIGN:
		return Mul, true
	case token.REM, token.REM_ASSIGN:
		return Mod, true
	case token.QUO, token.QUO_ASSIGN:
		return Div, true
	case token.SHL, token.SHL_ASSIGN:
		return Shl, true
	case token.SHR, token.SHR_ASSIGN:
		return Shr, true
	default:
		return 0, false
	}
}

// RelationFromToken maps a Go comparison operator to its Relation.
func RelationFromToken(tok token.Token) (Relation, bool) {
	switch tok {
	case token.EQL:
		return EQ, true
	case token.NEQ:
		return NE, true
	case token.LSS:
		return LT, true
	case token.LEQ:
		return LE, true
	case token.GTR:
		return GT, true
	case token.GEQ:
		return GE, true
	default:
		return 0, false
	}
}
