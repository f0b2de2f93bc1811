// Package program defines the inward interface to the solver: an
// already-elaborated set of symbol declarations, clauses, and facts, plus
// the Go functions backing any Code interpretation. Load validates and
// interns a Program into a Loaded value ready for eval.Solve.
package program

import (
	"github.com/cs-au-dk/fixlog/clauses"
	"github.com/cs-au-dk/fixlog/lattice"
	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/term"
)

// CodeFunc is the inward representation of a registered Code
// implementation — an alias of lattice.CodeFunc so callers constructing a
// Program never need to import package lattice directly.
type CodeFunc = lattice.CodeFunc

// SymbolDecl declares one predicate symbol.
type SymbolDecl struct {
	Name           string
	Arity          int
	Interpretation symtab.Interpretation
	// KeyArity is the number of leading key arguments, used only when
	// Interpretation is PartialFunction.
	KeyArity int
	// Lattice names the leq/join symbol pair backing a PartialFunction's
	// merge-by-join semantics, and the bottom value assigned to
	// never-derived keys. Required when Interpretation is PartialFunction.
	LeqSymbol  string
	JoinSymbol string
	Bottom     term.Value
}

// ClauseDecl is a Horn clause in terms of symbol names rather than
// interned *symtab.Symbol pointers; Load resolves the names.
type ClauseDecl struct {
	Head AtomDecl
	Body []AtomDecl
}

// AtomDecl is a predicate application in terms of a symbol name.
type AtomDecl struct {
	Symbol string
	Args   []term.Term
}

// Fact is an initial ground atom.
type Fact struct {
	Symbol *symtab.Symbol
	Args   []term.Value
}

// FactDecl is a Fact in terms of a symbol name, as supplied by a Program.
type FactDecl struct {
	Symbol string
	Args   []term.Value
}

// Program is the inward value accepted by Load: symbol declarations,
// clauses, optional initial facts, and the Go functions implementing any
// Code interpretation.
type Program struct {
	Symbols []SymbolDecl
	Clauses []ClauseDecl
	Facts   []FactDecl
	Code    map[string]CodeFunc
}

// Loaded is a validated, interned Program ready for eval.Solve. Symbols
// and the clause index are shared and read-only after Load returns.
type Loaded struct {
	Table *symtab.Table
	Index *clauses.Index
	Code  map[symtab.ID]CodeFunc
	Facts []Fact
}
