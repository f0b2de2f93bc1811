package eval

import (
	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/term"
	"github.com/cs-au-dk/fixlog/unify"
)

// solveQuery is the single-query driver behind clause-defined leq/join
// symbols (lattice.ClauseQuery): given ground inputs bound to sym's
// leading arguments, it tries every clause with sym as head, matching the
// inputs against the head and solving the body by ordinary conjunction.
// For a leq symbol (inputs cover the whole head) it returns
// (Unit{}, true, nil) on the first satisfying derivation — leq is a
// judgment, not a value-producing query. For a join symbol (inputs cover
// all but the trailing argument) it returns the resulting output value.
//
// Recursive lattice composition (e.g. a product lattice's leq calling its
// components' leq) falls out for free: the component atoms in the body
// are dispatched by satisfyAtom exactly like any other atom, which
// recurses back into solveQuery when the component is itself
// clause-defined.
func (ec *evalContext) solveQuery(sym *symtab.Symbol, inputs []term.Value, budget *int) (term.Value, bool, error) {
	for _, c := range ec.index.ClausesWithHead(sym) {
		if len(inputs) > len(c.Head.Args) {
			continue
		}

		sub := term.EmptySubst()
		matched := true
		for i, v := range inputs {
			var ok bool
			sub, ok = unify.Term(c.Head.Args[i], v, sub)
			if !ok {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}

		*budget--
		if *budget < 0 {
			return nil, false, &EvalError{Kind: LatticeTimeoutOrOverflow, Symbol: sym,
				Detail: "recursive leq/join query did not terminate within its budget"}
		}

		subs, err := ec.solveConjunction(c.Body, sub, budget)
		if err != nil {
			return nil, false, err
		}

		for _, s := range subs {
			if len(inputs) == len(c.Head.Args) {
				return term.Unit{}, true, nil
			}
			if v, ok := term.Groundify(c.Head.Args[len(inputs)], s); ok {
				return v, true, nil
			}
		}
	}

	return nil, false, nil
}
