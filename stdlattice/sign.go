// Package stdlattice implements a standard library of concrete lattices
// the core solver treats as an external collaborator: the Sign, Parity,
// Interval, and Constant-Propagation family, plus a SignAndParity product.
// Sample Code-backed and clause-backed lattices used by the end-to-end test
// scenarios, never imported by eval/db/lattice themselves.
package stdlattice

import "github.com/cs-au-dk/fixlog/term"

// Sign is the five-point sign lattice: Bot < {Neg, Zero, Pos} < Top, with
// the three middle elements pairwise incomparable.
var (
	SignBot  = term.Ctor{Name: "Bot"}
	SignNeg  = term.Ctor{Name: "Neg"}
	SignZero = term.Ctor{Name: "Zero"}
	SignPos  = term.Ctor{Name: "Pos"}
	SignTop  = term.Ctor{Name: "Top"}
)

func signRank(v term.Value) (int, bool) {
	c, ok := v.(term.Ctor)
	if !ok {
		return 0, false
	}
	switch c.Name {
	case "Bot":
		return 0, true
	case "Neg", "Zero", "Pos":
		return 1, true
	case "Top":
		return 2, true
	default:
		return 0, false
	}
}

// SignLeq is the Code function for Sign's leq predicate.
func SignLeq(inputs []term.Value) (term.Value, bool) {
	a, ok1 := signRank(inputs[0])
	b, ok2 := signRank(inputs[1])
	if !ok1 || !ok2 {
		return nil, false
	}
	eq := term.Equal(inputs[0], inputs[1])
	holds := a == 0 || b == 2 || (a == b && eq)
	return term.Bool(holds), true
}

// SignJoin is the Code function for Sign's join predicate.
func SignJoin(inputs []term.Value) (term.Value, bool) {
	a, b := inputs[0], inputs[1]
	if term.Equal(a, SignBot) {
		return b, true
	}
	if term.Equal(b, SignBot) {
		return a, true
	}
	if term.Equal(a, b) {
		return a, true
	}
	ra, _ := signRank(a)
	rb, _ := signRank(b)
	if ra != 1 || rb != 1 {
		return SignTop, true
	}
	return SignTop, true
}
