package clauses

import (
	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/utils/graph"
)

// BodyOccurrence records that Clause mentions a symbol in its body at
// Position (0-indexed).
type BodyOccurrence struct {
	Clause   *Clause
	Position int
}

// Index groups clauses by the symbols they mention, in both directions:
// which clauses a symbol appears in the body of, and which clauses have it
// as their head.
type Index struct {
	table      *symtab.Table
	clauses    []*Clause
	inBody     map[symtab.ID][]BodyOccurrence
	asHead     map[symtab.ID][]*Clause
}

// NewIndex builds an Index over cs, keyed against table. Callers
// (program.Load) are responsible for range-restriction validation before
// building the index.
func NewIndex(table *symtab.Table, cs []Clause) *Index {
	idx := &Index{
		table:  table,
		inBody: map[symtab.ID][]BodyOccurrence{},
		asHead: map[symtab.ID][]*Clause{},
	}

	idx.clauses = make([]*Clause, len(cs))
	for i := range cs {
		idx.clauses[i] = &cs[i]
	}

	for _, c := range idx.clauses {
		idx.asHead[c.Head.Symbol.ID] = append(idx.asHead[c.Head.Symbol.ID], c)
		for pos, atom := range c.Body {
			idx.inBody[atom.Symbol.ID] = append(idx.inBody[atom.Symbol.ID], BodyOccurrence{Clause: c, Position: pos})
		}
	}

	return idx
}

// Clauses returns every clause in the index, in declaration order.
func (idx *Index) Clauses() []*Clause { return idx.clauses }

// ClausesWithBodySymbol returns every (clause, position) pair where sym
// occurs in the clause's body.
func (idx *Index) ClausesWithBodySymbol(sym *symtab.Symbol) []BodyOccurrence {
	return idx.inBody[sym.ID]
}

// ClausesWithHead returns every clause whose head symbol is sym.
func (idx *Index) ClausesWithHead(sym *symtab.Symbol) []*Clause {
	return idx.asHead[sym.ID]
}

// DependencyGraph builds the clause dependency graph: an edge from symbol
// P to symbol Q means some clause with P in its body derives Q, i.e. new
// P-facts can drive new Q-derivations. Cycles are expected for recursive
// predicates.
func (idx *Index) DependencyGraph() graph.Graph[*symtab.Symbol] {
	return graph.OfHashable(func(sym *symtab.Symbol) []*symtab.Symbol {
		seen := map[symtab.ID]bool{}
		var out []*symtab.Symbol
		for _, occ := range idx.ClausesWithBodySymbol(sym) {
			head := occ.Clause.Head.Symbol
			if !seen[head.ID] {
				seen[head.ID] = true
				out = append(out, head)
			}
		}
		return out
	})
}

// SCC decomposes the dependency graph reachable from every symbol in the
// table into strongly connected components; a cycle means facts can flow
// back and forth between the symbols in it. Neither the evaluator nor the
// lattice runtime calls it.
func (idx *Index) SCC() graph.SCCDecomposition[*symtab.Symbol] {
	return idx.DependencyGraph().SCC(idx.table.All())
}
