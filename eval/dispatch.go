package eval

import (
	"github.com/cs-au-dk/fixlog/clauses"
	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/term"
	"github.com/cs-au-dk/fixlog/unify"
)

// satisfyAtom routes satisfaction of a single body atom by its symbol's
// interpretation, returning every substitution extending sub that
// satisfies the atom against the current database.
func (ec *evalContext) satisfyAtom(atom clauses.Atom, sub term.Subst, budget *int) ([]term.Subst, error) {
	ec.stats.BodyMatches++

	switch atom.Symbol.Interpretation {
	case symtab.Relation:
		return ec.satisfyRelation(atom, sub)
	case symtab.PartialFunction:
		return ec.satisfyPartialFunction(atom, sub)
	case symtab.LatticeLeq:
		return ec.satisfyLeq(atom, sub)
	case symtab.LatticeJoin:
		return ec.satisfyJoin(atom, sub)
	default:
		return nil, &EvalError{Kind: ArityMismatch, Symbol: atom.Symbol, Subst: sub,
			Detail: "atom has no recognized interpretation"}
	}
}

func (ec *evalContext) satisfyRelation(atom clauses.Atom, sub term.Subst) ([]term.Subst, error) {
	var prefix []term.Value
	if len(atom.Args) > 0 {
		if v, ok := term.Groundify(atom.Args[0], sub); ok {
			prefix = []term.Value{v}
		}
	}

	var candidates []term.Tuple
	if prefix != nil {
		candidates = ec.database.PointLookup(atom.Symbol, prefix)
	} else {
		candidates = ec.database.Scan(atom.Symbol)
	}

	var out []term.Subst
	for _, tup := range candidates {
		if s2, ok := unify.Atom(atom.Args, []term.Value(tup), sub); ok {
			out = append(out, s2)
		}
	}
	return out, nil
}

// satisfyPartialFunction satisfies a body atom whose symbol is a
// PartialFunction: the key arguments must already be ground; the value
// is either looked up in the lattice-map (clause-derived symbols) or
// computed directly (Code-backed symbols), and bound to the trailing
// argument, defaulting to bottom when the key was never derived.
func (ec *evalContext) satisfyPartialFunction(atom clauses.Atom, sub term.Subst) ([]term.Subst, error) {
	sym := atom.Symbol
	hasCode := ec.runtime.HasCode(sym)

	key := make([]term.Value, sym.KeyArity)
	for i := 0; i < sym.KeyArity; i++ {
		v, ok := term.Groundify(atom.Args[i], sub)
		if !ok {
			if hasCode {
				return nil, &EvalError{Kind: UngroundFunctionInput, Symbol: sym, Subst: sub,
					Detail: "code function's key argument was not ground"}
			}
			return nil, nil
		}
		key[i] = v
	}

	var val term.Value
	if hasCode {
		v, ok := ec.runtime.Call(sym, key)
		if !ok {
			return nil, nil
		}
		val = v
	} else {
		val = ec.database.LatticeLookup(sym, key)
	}

	if s2, ok := unify.Term(atom.Args[sym.KeyArity], val, sub); ok {
		return []term.Subst{s2}, nil
	}
	return nil, nil
}

func (ec *evalContext) satisfyLeq(atom clauses.Atom, sub term.Subst) ([]term.Subst, error) {
	a, ok1 := term.Groundify(atom.Args[0], sub)
	b, ok2 := term.Groundify(atom.Args[1], sub)
	if !ok1 || !ok2 {
		return nil, nil
	}
	result, err := ec.runtime.Leq(atom.Symbol, a, b)
	if err != nil {
		return nil, err
	}
	if result {
		return []term.Subst{sub}, nil
	}
	return nil, nil
}

func (ec *evalContext) satisfyJoin(atom clauses.Atom, sub term.Subst) ([]term.Subst, error) {
	a, ok1 := term.Groundify(atom.Args[0], sub)
	b, ok2 := term.Groundify(atom.Args[1], sub)
	if !ok1 || !ok2 {
		return nil, nil
	}
	v, ok, err := ec.runtime.Join(atom.Symbol, a, b)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	if s2, ok := unify.Term(atom.Args[2], v, sub); ok {
		return []term.Subst{s2}, nil
	}
	return nil, nil
}

// solveConjunction satisfies atoms in order, threading a single
// substitution through the whole conjunction so repeated variables agree
// across atoms, as required by the unifier's contract.
func (ec *evalContext) solveConjunction(atoms []clauses.Atom, sub term.Subst, budget *int) ([]term.Subst, error) {
	if len(atoms) == 0 {
		return []term.Subst{sub}, nil
	}

	extended, err := ec.satisfyAtom(atoms[0], sub, budget)
	if err != nil {
		return nil, err
	}

	var out []term.Subst
	for _, s := range extended {
		more, err := ec.solveConjunction(atoms[1:], s, budget)
		if err != nil {
			return nil, err
		}
		out = append(out, more...)
	}
	return out, nil
}
