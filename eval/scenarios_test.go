package eval

import (
	"context"
	"testing"

	"github.com/cs-au-dk/fixlog/program"
	"github.com/cs-au-dk/fixlog/stdlattice"
	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/term"
)

// signValProgram builds a PartialFunction symbol "Val" keyed by a single
// argument, backed by the Sign lattice's Code-registered leq/join.
func signValProgram() program.Program {
	return program.Program{
		Symbols: []program.SymbolDecl{
			{Name: "sign_leq", Arity: 2, Interpretation: symtab.LatticeLeq},
			{Name: "sign_join", Arity: 3, Interpretation: symtab.LatticeJoin},
			{Name: "Val", Arity: 2, Interpretation: symtab.PartialFunction, KeyArity: 1,
				LeqSymbol: "sign_leq", JoinSymbol: "sign_join", Bottom: stdlattice.SignBot},
		},
		Facts: []program.FactDecl{
			{Symbol: "Val", Args: []term.Value{term.Str("x"), stdlattice.SignPos}},
			{Symbol: "Val", Args: []term.Value{term.Str("x"), stdlattice.SignNeg}},
		},
		Code: map[string]program.CodeFunc{
			"sign_leq":  stdlattice.SignLeq,
			"sign_join": stdlattice.SignJoin,
		},
	}
}

// TestSignLatticeConstantScenario is spec scenario 1: joining Pos and Neg
// at the same key collapses to Top, and a key that was never inserted
// reads back as bottom.
func TestSignLatticeConstantScenario(t *testing.T) {
	loaded, err := program.Load(signValProgram())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	result := Solve(context.Background(), loaded, DefaultOptions())
	if result.Outcome != Fixpoint {
		t.Fatalf("got outcome %v, err %v", result.Outcome, result.Err)
	}

	valSym, _ := loaded.Table.Lookup("Val")
	x := result.Lookup(valSym, []term.Value{term.Str("x")})
	if !term.Equal(x, stdlattice.SignTop) {
		t.Fatalf("Val(x) = %v, want Top", x)
	}

	y := result.Lookup(valSym, []term.Value{term.Str("y")})
	if !term.Equal(y, stdlattice.SignBot) {
		t.Fatalf("Val(y) = %v, want Bot (never inserted)", y)
	}
}

// signAndParityLeqProgram wires the SignAndParity product lattice and adds
// one more clause deriving a Reachable relation fact whenever sp_leq holds
// between two ground product values, so the leq judgment is observable as
// an ordinary relation fact rather than only via solveQuery directly.
func signAndParityLeqProgram(a, b term.Term) program.Program {
	symbols, spClauses, code := stdlattice.SignAndParity()
	symbols = append(symbols, program.SymbolDecl{Name: "Reachable", Arity: 0, Interpretation: symtab.Relation})
	symbols = append(symbols, program.SymbolDecl{Name: "Seed", Arity: 0, Interpretation: symtab.Relation})

	clauses := append(spClauses, program.ClauseDecl{
		Head: program.AtomDecl{Symbol: "Reachable"},
		Body: []program.AtomDecl{
			{Symbol: "Seed"},
			{Symbol: "sp_leq", Args: []term.Term{a, b}},
		},
	})

	return program.Program{
		Symbols: symbols,
		Clauses: clauses,
		Facts:   []program.FactDecl{{Symbol: "Seed"}},
		Code:    code,
	}
}

// TestSignAndParityProductScenario is spec scenario 2: leq(SP(Pos,Even),
// SP(Top,Top)) is satisfiable but leq(SP(Pos,Even), SP(Neg,Odd)) is not,
// exercising solveQuery's recursion into the component Sign/Parity leq
// Code functions through a clause-defined product leq.
func TestSignAndParityProductScenario(t *testing.T) {
	sp := func(sign, parity term.Value) term.Term {
		return term.FromValue(stdlattice.SP(sign, parity))
	}

	satisfiable := signAndParityLeqProgram(
		sp(stdlattice.SignPos, stdlattice.ParityEven),
		sp(stdlattice.SignTop, stdlattice.ParityTop),
	)
	loaded, err := program.Load(satisfiable)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	result := Solve(context.Background(), loaded, DefaultOptions())
	if result.Outcome != Fixpoint {
		t.Fatalf("got outcome %v, err %v", result.Outcome, result.Err)
	}
	reachable, _ := loaded.Table.Lookup("Reachable")
	if result.Count(reachable) != 1 {
		t.Fatal("Leq(SP(Pos,Even), SP(Top,Top)) should be satisfiable")
	}

	unsatisfiable := signAndParityLeqProgram(
		sp(stdlattice.SignPos, stdlattice.ParityEven),
		sp(stdlattice.SignNeg, stdlattice.ParityOdd),
	)
	loaded2, err := program.Load(unsatisfiable)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	result2 := Solve(context.Background(), loaded2, DefaultOptions())
	if result2.Outcome != Fixpoint {
		t.Fatalf("got outcome %v, err %v", result2.Outcome, result2.Err)
	}
	if result2.Count(reachable) != 0 {
		t.Fatal("Leq(SP(Pos,Even), SP(Neg,Odd)) should be unsatisfiable")
	}
}
