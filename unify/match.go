// Package unify matches an open term pattern against an already-ground
// value, extending a substitution. It never unifies two open terms: the
// evaluator only ever matches clause atoms against facts already present
// in the database.
package unify

import "github.com/cs-au-dk/fixlog/term"

// Term matches pattern against the ground value v, extending s. It fails
// if pattern is inconsistent with v under s: a bound variable disagreeing
// with v, a constant disagreeing with v, or a constructor whose name/arity
// or recursive arguments disagree.
func Term(pattern term.Term, v term.Value, s term.Subst) (term.Subst, bool) {
	switch p := pattern.(type) {
	case term.Variable:
		if bound, ok := s.Lookup(string(p)); ok {
			if term.Equal(bound, v) {
				return s, true
			}
			return s, false
		}
		return s.Bind(string(p), v), true

	case term.Constant:
		if term.Equal(p.Value, v) {
			return s, true
		}
		return s, false

	case term.Constructor:
		ctor, ok := v.(term.Ctor)
		if !ok || ctor.Name != p.Name || len(ctor.Args) != len(p.Args) {
			return s, false
		}
		cur := s
		for i, argPattern := range p.Args {
			var matched bool
			cur, matched = Term(argPattern, ctor.Args[i], cur)
			if !matched {
				return s, false
			}
		}
		return cur, true

	default:
		return s, false
	}
}

// Atom matches every element of pattern against the corresponding element
// of tuple, threading a single substitution through all of them so that
// repeated pattern variables are required to agree.
func Atom(pattern []term.Term, tuple []term.Value, s term.Subst) (term.Subst, bool) {
	if len(pattern) != len(tuple) {
		return s, false
	}
	cur := s
	for i, p := range pattern {
		var matched bool
		cur, matched = Term(p, tuple[i], cur)
		if !matched {
			return s, false
		}
	}
	return cur, true
}
