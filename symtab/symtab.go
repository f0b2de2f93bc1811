// Package symtab interns predicate symbols once at load time into stable,
// read-only handles shared by the clause index, the database, and the
// evaluator.
package symtab

import (
	"fmt"

	"github.com/cs-au-dk/fixlog/term"
)

// Interpretation tags how a predicate symbol's extension is stored and
// satisfied.
type Interpretation int

const (
	// Relation stores a deduplicated set of ground tuples.
	Relation Interpretation = iota
	// LatticeLeq is a boolean lattice-ordering predicate, defined either
	// by a clause set or a registered Code function.
	LatticeLeq
	// LatticeJoin is a lattice-join predicate producing one output value,
	// defined either by a clause set or a registered Code function.
	LatticeJoin
	// PartialFunction stores one lattice value per key, merged by join.
	PartialFunction
)

func (i Interpretation) String() string {
	switch i {
	case Relation:
		return "relation"
	case LatticeLeq:
		return "leq"
	case LatticeJoin:
		return "join"
	case PartialFunction:
		return "partial-function"
	default:
		return "unknown"
	}
}

// ID is a stable integer handle for a Symbol, cheap to use as a map key
// and to compare.
type ID int

// Symbol is an interned predicate symbol: a name, an arity, and how its
// extension is interpreted and stored.
type Symbol struct {
	ID             ID
	Name           string
	Arity          int
	Interpretation Interpretation
	// KeyArity is the number of leading arguments that form the key of a
	// PartialFunction symbol; the remaining trailing argument is the
	// lattice value. Unused for Relation/LatticeLeq/LatticeJoin symbols.
	KeyArity int
	// LatticeBottom, when Interpretation == PartialFunction, is the ⊥
	// value assigned to keys that have never been derived.
	LatticeBottom term.Value
	// LeqSymbol and JoinSymbol name the leq/join predicates implementing
	// this symbol's lattice, when Interpretation == PartialFunction. Set
	// by program.Load from the corresponding lattice declaration.
	LeqSymbol  *Symbol
	JoinSymbol *Symbol
}

func (s *Symbol) String() string {
	return fmt.Sprintf("%s/%d", s.Name, s.Arity)
}

// Table is the read-only, interned symbol table built once by program.Load
// and shared thereafter by the clause index and the evaluator.
type Table struct {
	byName map[string]*Symbol
	byID   []*Symbol
}

// NewTable builds an empty, mutable builder for a symbol table. Use Intern
// to populate it and Build to freeze it.
func NewTable() *Builder {
	return &Builder{byName: map[string]*Symbol{}}
}

// Builder accumulates symbol declarations before the table is frozen.
type Builder struct {
	byName map[string]*Symbol
	byID   []*Symbol
}

// Intern registers a new symbol declaration without validating it.
// Duplicate names are rejected neither here nor by program.Load: a later
// Intern of the same name replaces the earlier symbol in name lookups,
// while both keep their IDs.
func (b *Builder) Intern(name string, arity int, interp Interpretation, keyArity int) *Symbol {
	sym := &Symbol{
		ID:             ID(len(b.byID)),
		Name:           name,
		Arity:          arity,
		Interpretation: interp,
		KeyArity:       keyArity,
	}
	b.byName[name] = sym
	b.byID = append(b.byID, sym)
	return sym
}

// SetLattice records the ⊥ value and the leq/join symbols backing a
// PartialFunction symbol's lattice.
func (b *Builder) SetLattice(sym *Symbol, bottom term.Value, leqSym, joinSym *Symbol) {
	sym.LatticeBottom = bottom
	sym.LeqSymbol = leqSym
	sym.JoinSymbol = joinSym
}

// Build freezes the builder into a read-only Table.
func (b *Builder) Build() *Table {
	byName := make(map[string]*Symbol, len(b.byName))
	for k, v := range b.byName {
		byName[k] = v
	}
	byID := make([]*Symbol, len(b.byID))
	copy(byID, b.byID)
	return &Table{byName: byName, byID: byID}
}

// Lookup resolves a symbol by name.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	s, ok := t.byName[name]
	return s, ok
}

// ByID resolves a symbol by its interned ID.
func (t *Table) ByID(id ID) *Symbol {
	return t.byID[id]
}

// All returns every interned symbol, in declaration order.
func (t *Table) All() []*Symbol {
	return t.byID
}

// Len returns the number of interned symbols.
func (t *Table) Len() int { return len(t.byID) }
