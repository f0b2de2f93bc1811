package eval

import (
	"errors"
	"testing"

	"github.com/cs-au-dk/fixlog/clauses"
	"github.com/cs-au-dk/fixlog/program"
	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/term"
)

func incrCode(inputs []term.Value) (term.Value, bool) {
	n, ok := inputs[0].(term.I64)
	if !ok {
		return nil, false
	}
	return term.I64(int64(n) + 1), true
}

func newPartialFunctionContext(code program.CodeFunc) (*evalContext, *symtab.Symbol) {
	b := symtab.NewTable()
	f := b.Intern("F", 2, symtab.PartialFunction, 1)
	table := b.Build()

	loaded := &program.Loaded{
		Table: table,
		Index: clauses.NewIndex(table, nil),
		Code:  map[symtab.ID]program.CodeFunc{f.ID: code},
	}
	return newEvalContext(loaded, DefaultOptions()), f
}

// TestSatisfyPartialFunctionReportsUngroundCodeInput is a regression test:
// a Code-backed PartialFunction atom whose key argument is unbound must
// raise EvalError{UngroundFunctionInput} rather than silently returning no
// match.
func TestSatisfyPartialFunctionReportsUngroundCodeInput(t *testing.T) {
	ec, f := newPartialFunctionContext(incrCode)
	atom := clauses.Atom{Symbol: f, Args: []term.Term{term.Variable("X"), term.Variable("Y")}}

	_, err := ec.satisfyPartialFunction(atom, term.EmptySubst())

	var evalErr *EvalError
	if !errors.As(err, &evalErr) || evalErr.Kind != UngroundFunctionInput {
		t.Fatalf("got %v, want EvalError{Kind: UngroundFunctionInput}", err)
	}
}

// TestSatisfyPartialFunctionGroundInputUndefinedIsNoMatch is a regression
// test for the opposite mistake: a Code function legitimately returning
// ok=false for an already-ground key (no defined output for that key) must
// be treated as an ordinary failed match, not an EvalError that would abort
// the whole Solve.
func TestSatisfyPartialFunctionGroundInputUndefinedIsNoMatch(t *testing.T) {
	undefinedCode := func(inputs []term.Value) (term.Value, bool) { return nil, false }
	ec, f := newPartialFunctionContext(undefinedCode)
	atom := clauses.Atom{Symbol: f, Args: []term.Term{term.FromValue(term.I64(1)), term.Variable("Y")}}

	subs, err := ec.satisfyPartialFunction(atom, term.EmptySubst())
	if err != nil {
		t.Fatalf("got error %v, want nil (undefined output is not a fatal eval error)", err)
	}
	if len(subs) != 0 {
		t.Fatalf("got %d substitutions, want 0", len(subs))
	}
}
