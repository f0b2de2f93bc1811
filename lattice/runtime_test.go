package lattice

import (
	"testing"

	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/term"
)

func boolLeq(inputs []term.Value) (term.Value, bool) {
	a, ok1 := inputs[0].(term.I64)
	b, ok2 := inputs[1].(term.I64)
	if !ok1 || !ok2 {
		return nil, false
	}
	return term.Bool(a <= b), true
}

func maxJoin(inputs []term.Value) (term.Value, bool) {
	a, ok1 := inputs[0].(term.I64)
	b, ok2 := inputs[1].(term.I64)
	if !ok1 || !ok2 {
		return nil, false
	}
	if a > b {
		return a, true
	}
	return b, true
}

func newTestSymbol() *symtab.Symbol {
	b := symtab.NewTable()
	sym := b.Intern("leq", 2, symtab.LatticeLeq, 0)
	b.Build()
	return sym
}

// TestLeqCodePathUsesReturnedValue guards the fix to Runtime.Leq: a
// registered Code function's returned bool must be the leq judgment
// itself, not merely whether the function recognized its input.
func TestLeqCodePathUsesReturnedValue(t *testing.T) {
	sym := newTestSymbol()
	rt := NewRuntime(nil, nil).WithCode(sym, boolLeq)

	holds, err := rt.Leq(sym, term.I64(1), term.I64(2))
	if err != nil || !holds {
		t.Fatalf("Leq(1, 2) = %v, %v; want true, nil", holds, err)
	}

	holds, err = rt.Leq(sym, term.I64(2), term.I64(1))
	if err != nil || holds {
		t.Fatalf("Leq(2, 1) = %v, %v; want false, nil", holds, err)
	}
}

func TestJoinCodePath(t *testing.T) {
	b := symtab.NewTable()
	sym := b.Intern("join", 3, symtab.LatticeJoin, 0)
	b.Build()

	rt := NewRuntime(nil, nil).WithCode(sym, maxJoin)
	v, ok, err := rt.Join(sym, term.I64(1), term.I64(5))
	if err != nil || !ok || !term.Equal(v, term.I64(5)) {
		t.Fatalf("Join(1, 5) = %v, %v, %v", v, ok, err)
	}
}

func TestLeqDelegatesToClauseQuery(t *testing.T) {
	sym := newTestSymbol()
	var seenSym *symtab.Symbol
	query := func(s *symtab.Symbol, inputs []term.Value) (term.Value, bool, error) {
		seenSym = s
		return term.Unit{}, true, nil
	}
	rt := NewRuntime(nil, query)

	holds, err := rt.Leq(sym, term.I64(1), term.I64(2))
	if err != nil || !holds {
		t.Fatalf("got %v, %v", holds, err)
	}
	if seenSym != sym {
		t.Fatal("Leq should delegate to the ClauseQuery for symbols with no registered Code function")
	}
}

func TestWithCodeDoesNotMutateReceiver(t *testing.T) {
	sym := newTestSymbol()
	base := NewRuntime(nil, nil)
	extended := base.WithCode(sym, boolLeq)

	if base.HasCode(sym) {
		t.Fatal("WithCode must not mutate the receiver")
	}
	if !extended.HasCode(sym) {
		t.Fatal("WithCode should register the function on the returned Runtime")
	}
}
