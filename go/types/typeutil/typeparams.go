// Package typeutil contains helpers for type parameters.
package typeutil

import (
	"go/types"

	"golang.org/x/exp/typeparams"
)

// CoreType returns the single underlying type shared by all terms in
// the type set of t, or nil if there is none. Types other than type
// parameters are returned unchanged.
func CoreType(t types.Type) types.Type {
	tp, ok := types.Unalias(t).(*types.TypeParam)
	if !ok {
		return t
	}
	terms, err := typeparams.NormalTerms(tp)
	if err != nil || len(terms) == 0 {
		return nil
	}
	typ := terms[0].Type().Underlying()
	for _, term := range terms[1:] {
		if !types.Identical(typ, term.Type().Underlying()) {
			return nil
		}
	}
	return typ
}

// IntegerBasic returns the basic integer type underlying t, looking
// through type parameters with a core type.
func IntegerBasic(t types.Type) (*types.Basic, bool) {
	core := CoreType(t)
	if core == nil {
		return nil, false
	}
	basic, ok := core.Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsInteger == 0 {
		return nil, false
	}
	return basic, true
}
