// Package typeutil contains helpers for working with type sets of
// type parameters.
package typeutil

import (
	"go/types"

	"golang.org/x/exp/typeparams"
)

// All reports whether fn holds for every term. An empty term list
// stands for an unrestricted type set and is passed to fn as a single
// nil term.
func All(terms []*typeparams.Term, fn func(*typeparams.Term) bool) bool {
	if len(terms) == 0 {
		return fn(nil)
	}
	for _, term := range terms {
		if !fn(term) {
			return false
		}
	}
	return true
}

// Any reports whether fn holds for at least one term, with the same
// treatment of empty term lists as All.
func Any(terms []*typeparams.Term, fn func(*typeparams.Term) bool) bool {
	if len(terms) == 0 {
		return fn(nil)
	}
	for _, term := range terms {
		if fn(term) {
			return true
		}
	}
	return false
}

// AllAndAny is like All, but requires the type set to be restricted.
func AllAndAny(terms []*typeparams.Term, fn func(*typeparams.Term) bool) bool {
	return All(terms, func(term *typeparams.Term) bool {
		if term == nil {
			return false
		}
		return fn(term)
	})
}

// TermTypes returns the types in the normalized term list of a type
// parameter's constraint. It returns nil if the type set is
// unrestricted, empty, or too complex to compute.
func TermTypes(tparam *types.TypeParam) []types.Type {
	terms, err := typeparams.NormalTerms(tparam)
	if err != nil {
		return nil
	}
	var out []types.Type
	if !AllAndAny(terms, func(term *typeparams.Term) bool {
		out = append(out, term.Type())
		return true
	}) {
		return nil
	}
	return out
}
