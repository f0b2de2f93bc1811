package stdlattice

import "github.com/cs-au-dk/fixlog/term"

// Parity is the four-point lattice Bot < {Even, Odd} < Top.
var (
	ParityBot  = term.Ctor{Name: "Bot"}
	ParityEven = term.Ctor{Name: "Even"}
	ParityOdd  = term.Ctor{Name: "Odd"}
	ParityTop  = term.Ctor{Name: "Top"}
)

func parityRank(v term.Value) (int, bool) {
	c, ok := v.(term.Ctor)
	if !ok {
		return 0, false
	}
	switch c.Name {
	case "Bot":
		return 0, true
	case "Even", "Odd":
		return 1, true
	case "Top":
		return 2, true
	default:
		return 0, false
	}
}

// ParityLeq is the Code function for Parity's leq predicate.
func ParityLeq(inputs []term.Value) (term.Value, bool) {
	a, ok1 := parityRank(inputs[0])
	b, ok2 := parityRank(inputs[1])
	if !ok1 || !ok2 {
		return nil, false
	}
	eq := term.Equal(inputs[0], inputs[1])
	holds := a == 0 || b == 2 || (a == b && eq)
	return term.Bool(holds), true
}

// ParityJoin is the Code function for Parity's join predicate.
func ParityJoin(inputs []term.Value) (term.Value, bool) {
	a, b := inputs[0], inputs[1]
	if term.Equal(a, ParityBot) {
		return b, true
	}
	if term.Equal(b, ParityBot) {
		return a, true
	}
	if term.Equal(a, b) {
		return a, true
	}
	return ParityTop, true
}
