package stdlattice

import (
	"github.com/cs-au-dk/fixlog/program"
	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/term"
)

// SP builds a value of the SignAndParity product lattice.
func SP(sign, parity term.Value) term.Ctor {
	return term.Ctor{Name: "SP", Args: []term.Value{sign, parity}}
}

// SignAndParity returns the symbol declarations, clauses, and Code
// registrations for the product lattice SP(Sign, Parity): the component
// lattices are Code-backed, but the product's own leq/join are
// clause-defined, exercising the recursive lattice solving path (a query
// against sp_leq/sp_join dispatches into eval.solveQuery, whose body atoms
// recurse into the component Code functions).
func SignAndParity() ([]program.SymbolDecl, []program.ClauseDecl, map[string]program.CodeFunc) {
	symbols := []program.SymbolDecl{
		{Name: "sign_leq", Arity: 2, Interpretation: symtab.LatticeLeq},
		{Name: "sign_join", Arity: 3, Interpretation: symtab.LatticeJoin},
		{Name: "parity_leq", Arity: 2, Interpretation: symtab.LatticeLeq},
		{Name: "parity_join", Arity: 3, Interpretation: symtab.LatticeJoin},
		{Name: "sp_leq", Arity: 2, Interpretation: symtab.LatticeLeq},
		{Name: "sp_join", Arity: 3, Interpretation: symtab.LatticeJoin},
	}

	s1, p1, s2, p2, s3, p3 := term.Variable("S1"), term.Variable("P1"),
		term.Variable("S2"), term.Variable("P2"), term.Variable("S3"), term.Variable("P3")

	spCtor := func(s, p term.Term) term.Term {
		return term.Constructor{Name: "SP", Args: []term.Term{s, p}}
	}

	cls := []program.ClauseDecl{
		{
			Head: program.AtomDecl{Symbol: "sp_leq", Args: []term.Term{spCtor(s1, p1), spCtor(s2, p2)}},
			Body: []program.AtomDecl{
				{Symbol: "sign_leq", Args: []term.Term{s1, s2}},
				{Symbol: "parity_leq", Args: []term.Term{p1, p2}},
			},
		},
		{
			Head: program.AtomDecl{Symbol: "sp_join", Args: []term.Term{spCtor(s1, p1), spCtor(s2, p2), spCtor(s3, p3)}},
			Body: []program.AtomDecl{
				{Symbol: "sign_join", Args: []term.Term{s1, s2, s3}},
				{Symbol: "parity_join", Args: []term.Term{p1, p2, p3}},
			},
		},
	}

	code := map[string]program.CodeFunc{
		"sign_leq":    SignLeq,
		"sign_join":   SignJoin,
		"parity_leq":  ParityLeq,
		"parity_join": ParityJoin,
	}

	return symbols, cls, code
}
