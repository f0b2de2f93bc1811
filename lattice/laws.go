package lattice

import (
	"fmt"

	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/term"
	"github.com/cs-au-dk/fixlog/utils/set"
)

// LawViolation records a lattice law that failed to hold for a sampled
// pair of keys, reported by the CLI's -task check but not treated as fatal: the
// runtime validates what it can, but the correctness of a user-supplied
// Code lattice ultimately remains the user's responsibility.
type LawViolation struct {
	Law    string
	X, Y   term.Value
	Detail string
}

func (v LawViolation) String() string {
	return fmt.Sprintf("%s violated for x=%s y=%s: %s", v.Law, v.X, v.Y, v.Detail)
}

// CheckLaws samples pairs from sampleKeys and checks join(x,x)==x,
// join(x,y)==join(y,x), leq(x,join(x,y)), leq(bottom,x) and join
// associativity against the leqSym/joinSym pair backing a lattice. Its
// only caller outside tests is the CLI's -task check, which runs it on
// lattice-maps whose leq and join are both Code-backed; program.Load does
// not run it, and clause-defined lattices are never checked.
func CheckLaws(rt *Runtime, leqSym, joinSym *symtab.Symbol, bottom term.Value, sampleKeys []term.Value) []LawViolation {
	var violations []LawViolation

	leq := func(a, b term.Value) bool {
		ok, err := rt.Leq(leqSym, a, b)
		return err == nil && ok
	}
	join := func(a, b term.Value) (term.Value, bool) {
		v, ok, err := rt.Join(joinSym, a, b)
		if err != nil {
			return nil, false
		}
		return v, ok
	}

	for _, x := range sampleKeys {
		if jxx, ok := join(x, x); !ok || !term.Equal(jxx, x) {
			violations = append(violations, LawViolation{
				Law: "idempotent join(x,x)==x", X: x, Y: x,
				Detail: "join(x,x) did not equal x",
			})
		}

		if !leq(bottom, x) {
			violations = append(violations, LawViolation{
				Law: "leq(bottom,x)", X: x, Y: bottom,
				Detail: "leq(bottom, x) did not hold",
			})
		}

		for _, y := range sampleKeys {
			jxy, okxy := join(x, y)
			jyx, okyx := join(y, x)
			if okxy != okyx || (okxy && !term.Equal(jxy, jyx)) {
				violations = append(violations, LawViolation{
					Law: "commutative join(x,y)==join(y,x)", X: x, Y: y,
					Detail: "join(x,y) and join(y,x) disagreed",
				})
				continue
			}
			if okxy && !leq(x, jxy) {
				violations = append(violations, LawViolation{
					Law: "leq(x,join(x,y))", X: x, Y: y,
					Detail: "x was not leq its join with y",
				})
			}
		}
	}

	violations = append(violations, checkAssociative(join, sampleKeys)...)

	return violations
}

// checkAssociative checks join(join(x,y),z) == join(x,join(y,z)) for every
// 3-element subset of sampleKeys, using set.Subsets to enumerate
// combinations rather than a nested triple loop.
func checkAssociative(join func(a, b term.Value) (term.Value, bool), sampleKeys []term.Value) []LawViolation {
	entries := make([]interface{}, len(sampleKeys))
	for i, k := range sampleKeys {
		entries[i] = k
	}

	var violations []LawViolation
	set.Subsets(entries).ForEach(func(subset []interface{}) {
		if len(subset) != 3 {
			return
		}
		x, y, z := subset[0].(term.Value), subset[1].(term.Value), subset[2].(term.Value)

		xy, okxy := join(x, y)
		yz, okyz := join(y, z)
		if !okxy || !okyz {
			return
		}
		left, okl := join(xy, z)
		right, okr := join(x, yz)
		if okl != okr || (okl && !term.Equal(left, right)) {
			violations = append(violations, LawViolation{
				Law: "associative join(join(x,y),z)==join(x,join(y,z))", X: x, Y: y,
				Detail: fmt.Sprintf("disagreed for z=%s", z),
			})
		}
	})
	return violations
}

// CheckSymbolLaws is CheckLaws for a PartialFunction symbol carrying its
// own LeqSymbol/JoinSymbol/LatticeBottom, as program.Load resolves them for
// every declared lattice-map.
func CheckSymbolLaws(rt *Runtime, sym *symtab.Symbol, sampleKeys []term.Value) []LawViolation {
	return CheckLaws(rt, sym.LeqSymbol, sym.JoinSymbol, sym.LatticeBottom, sampleKeys)
}
