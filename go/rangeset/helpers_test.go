package rangeset

import (
	"fmt"
	"strings"
	"testing"
)

// enumLimit bounds the number of members enumerated by brute-force checks.
const enumLimit = 1 << 12

func checkString(t *testing.T, what string, got Set, want string) {
	t.Helper()
	if s := got.String(); s != want {
		t.Errorf("%s = %s, want %s", what, s, want)
	}
}

func checkEqual(t *testing.T, what string, got, want Set) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %s, want %s", what, got, want)
	}
}

func members(s Set) []int64 {
	var out []int64
	for v := range s.Values() {
		out = append(out, v)
		if len(out) > enumLimit {
			break
		}
	}
	return out
}

// sample returns the members of s within a few steps of the bounds of
// each of its intervals.
func sample(s Set) []int64 {
	const k = 16
	var out []int64
	seen := map[int64]bool{}
	add := func(v int64) {
		if !seen[v] && s.Contains(v) {
			seen[v] = true
			out = append(out, v)
		}
	}
	for _, iv := range s.AsRanges() {
		for v := iv.Lo; ; v++ {
			add(v)
			if v == iv.Hi || v-iv.Lo >= k {
				break
			}
		}
		for v := iv.Hi; ; v-- {
			add(v)
			if v == iv.Lo || iv.Hi-v >= k {
				break
			}
		}
	}
	return out
}

func relation(t *testing.T, s Set, rel Relation) Set {
	t.Helper()
	out, ok := s.FromRelation(rel)
	if !ok {
		t.Fatalf("FromRelation(%s) failed for %s", rel, s)
	}
	return out
}

func truncate(w Width) func(int64) int64 {
	if w == W32 {
		return func(v int64) int64 { return int64(int32(v)) }
	}
	return func(v int64) int64 { return v }
}

// checkBinOp verifies that result has the expected presentation and
// contains op(a, b) for every member a of left and b of right that
// passes filter.
func checkBinOp(t *testing.T, left, right, result Set, filter func(int64) bool, op func(a, b int64) int64, want, sign string) {
	t.Helper()
	if got := result.String(); got != want {
		t.Errorf("%s %s %s = %s, want %s", left, sign, right, got, want)
		return
	}
	if left.IsCardinalityBigger(enumLimit) || right.IsCardinalityBigger(enumLimit) {
		return
	}
	var errs []string
	for _, a := range members(left) {
		for _, b := range members(right) {
			if filter != nil && !filter(b) {
				continue
			}
			if r := op(a, b); !result.Contains(r) {
				errs = append(errs, fmt.Sprintf("%d %s %d = %d", a, sign, b, r))
			}
		}
	}
	if len(errs) > 0 {
		t.Errorf("%s %s %s = %s misses:\n%s", left, sign, right, result, strings.Join(errs, "\n"))
	}
}

func checkUnOp(t *testing.T, operand, result Set, op func(int64) int64, want, sign string) {
	t.Helper()
	if got := result.String(); got != want {
		t.Errorf("%s(%s) = %s, want %s", sign, operand, got, want)
		return
	}
	if operand.IsCardinalityBigger(enumLimit) {
		return
	}
	for _, v := range members(operand) {
		if r := op(v); !result.Contains(r) {
			t.Errorf("%s(%d) = %d is not in %s", sign, v, r, result)
		}
	}
}

func checkPlus(t *testing.T, a, b Set, w Width, want string) {
	t.Helper()
	result := a.Plus(b, w)
	checkEqual(t, "commuted Plus", b.Plus(a, w), result)
	trunc := truncate(w)
	checkBinOp(t, a, b, result, nil, func(x, y int64) int64 { return trunc(x + y) }, want, "+")
}

func checkMul(t *testing.T, a, b Set, w Width, want string) {
	t.Helper()
	result := a.Mul(b, w)
	checkEqual(t, "commuted Mul", b.Mul(a, w), result)
	trunc := truncate(w)
	checkBinOp(t, a, b, result, nil, func(x, y int64) int64 { return trunc(x * y) }, want, "*")
}

func nonZero(v int64) bool { return v != 0 }

func checkMod(t *testing.T, a, b Set, want string) {
	t.Helper()
	checkBinOp(t, a, b, a.Mod(b), nonZero, func(x, y int64) int64 { return x % y }, want, "%")
}

func checkDiv(t *testing.T, a, b Set, w Width, want string) {
	t.Helper()
	trunc := truncate(w)
	checkBinOp(t, a, b, a.Div(b, w), nonZero, func(x, y int64) int64 {
		if w == W32 {
			return int64(int32(x) / int32(y))
		}
		return trunc(x / y)
	}, want, "/")
}

func checkShr(t *testing.T, a, b Set, w Width, want string) {
	t.Helper()
	checkBinOp(t, a, b, a.ShiftRight(b, w), nil, func(x, y int64) int64 {
		if w == W32 {
			return int64(int32(x) >> uint(y&31))
		}
		return x >> uint(y&63)
	}, want, ">>")
}

func checkShl(t *testing.T, a, b Set, w Width, want string) {
	t.Helper()
	checkBinOp(t, a, b, a.ShiftLeft(b, w), nil, func(x, y int64) int64 {
		if w == W32 {
			return int64(int32(x) << uint(y&31))
		}
		return x << uint(y&63)
	}, want, "<<")
}

func checkUshr(t *testing.T, a, b Set, w Width, want string) {
	t.Helper()
	checkBinOp(t, a, b, a.UnsignedShiftRight(b, w), nil, func(x, y int64) int64 {
		if w == W32 {
			return int64(int32(uint32(x) >> uint(y&31)))
		}
		return int64(uint64(x) >> uint(y&63))
	}, want, ">>>")
}

func checkAnd(t *testing.T, a, b Set, want string) {
	t.Helper()
	result := a.And(b)
	checkEqual(t, "commuted And", b.And(a), result)
	checkBinOp(t, a, b, result, nil, func(x, y int64) int64 { return x & y }, want, "&")
}

func checkOr(t *testing.T, a, b Set, w Width, want string) {
	t.Helper()
	result := a.Or(b, w)
	checkEqual(t, "commuted Or", b.Or(a, w), result)
	checkBinOp(t, a, b, result, nil, func(x, y int64) int64 { return x | y }, want, "|")
}

func checkXor(t *testing.T, a, b Set, w Width, want string) {
	t.Helper()
	result := a.Xor(b, w)
	checkEqual(t, "commuted Xor", b.Xor(a, w), result)
	checkBinOp(t, a, b, result, nil, func(x, y int64) int64 { return x ^ y }, want, "^")
}

func checkNegate(t *testing.T, s Set, w Width, want string) {
	t.Helper()
	trunc := truncate(w)
	checkUnOp(t, s, s.Negate(w), func(v int64) int64 { return trunc(-v) }, want, "-")
}
