package stdlattice

import "github.com/cs-au-dk/fixlog/term"

// ConstBot and ConstTop are the sentinel elements of the
// constant-propagation lattice; ordinary elements are Const(v).
var (
	ConstBot = term.Ctor{Name: "Bot"}
	ConstTop = term.Ctor{Name: "Top"}
)

// Const constructs an ordinary constant-propagation element.
func Const(v int64) term.Ctor {
	return term.Ctor{Name: "Const", Args: []term.Value{term.I64(v)}}
}

// ConstLeq is the Code function for constant-propagation's leq predicate.
func ConstLeq(inputs []term.Value) (term.Value, bool) {
	a, b := inputs[0], inputs[1]
	if term.Equal(a, ConstBot) || term.Equal(b, ConstTop) {
		return term.Bool(true), true
	}
	if term.Equal(a, ConstTop) || term.Equal(b, ConstBot) {
		return term.Bool(false), true
	}
	return term.Bool(term.Equal(a, b)), true
}

// ConstJoin is the Code function for constant-propagation's join
// predicate: agreeing constants stay put, disagreeing constants collapse
// to Top.
func ConstJoin(inputs []term.Value) (term.Value, bool) {
	a, b := inputs[0], inputs[1]
	if term.Equal(a, ConstBot) {
		return b, true
	}
	if term.Equal(b, ConstBot) {
		return a, true
	}
	if term.Equal(a, ConstTop) || term.Equal(b, ConstTop) {
		return ConstTop, true
	}
	if term.Equal(a, b) {
		return a, true
	}
	return ConstTop, true
}
