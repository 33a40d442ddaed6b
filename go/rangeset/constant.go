package rangeset

import (
	"go/constant"
	"go/types"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/typeparams"
)

// Of returns the set of the given values. Unsigned values above
// math.MaxInt64 wrap around.
func Of[T constraints.Integer](values ...T) Set {
	result := emptySet
	for _, v := range values {
		result = result.Union(Point(int64(v)))
	}
	return result
}

// FromConstant returns the set containing only v. It reports false if v
// isn't an integer constant representable as an int64.
func FromConstant(v constant.Value) (Set, bool) {
	v = constant.ToInt(v)
	if v.Kind() != constant.Int {
		return Set{}, false
	}
	n, exact := constant.Int64Val(v)
	if !exact {
		return Set{}, false
	}
	return Point(n), true
}

// WidthOf returns the width of a signed integer type, using sizes to
// determine the size of int. All terms in the type set of a type parameter
// must share one width.
func WidthOf(T types.Type, sizes types.Sizes) (Width, error) {
	if tp, ok := types.Unalias(T).(*types.TypeParam); ok {
		terms, err := typeparams.NormalTerms(tp)
		if err != nil || len(terms) == 0 {
			return 0, &UnsupportedWidthError{Type: T.String()}
		}
		var w Width
		for i, term := range terms {
			tw, err := WidthOf(term.Type(), sizes)
			if err != nil {
				return 0, &UnsupportedWidthError{Type: T.String()}
			}
			if i > 0 && tw != w {
				return 0, &UnsupportedWidthError{Type: T.String()}
			}
			w = tw
		}
		return w, nil
	}
	basic, ok := T.Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsInteger == 0 || basic.Info()&types.IsUnsigned != 0 {
		return 0, &UnsupportedWidthError{Type: T.String()}
	}
	var size int64
	switch basic.Kind() {
	case types.UntypedInt, types.UntypedRune:
		return W64, nil
	default:
		size = sizes.Sizeof(basic) * 8
	}
	switch size {
	case 32:
		return W32, nil
	case 64:
		return W64, nil
	default:
		return 0, &UnsupportedWidthError{Width: int(size), Type: T.String()}
	}
}
