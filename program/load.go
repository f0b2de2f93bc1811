package program

import (
	"fmt"

	"github.com/cs-au-dk/fixlog/clauses"
	"github.com/cs-au-dk/fixlog/symtab"
)

// Load interns p's symbols, resolves and validates its clauses and facts,
// and returns a Loaded value ready for eval.Solve. Load performs every
// static check the evaluator relies on: unknown symbols, arity mismatches,
// non-range-restricted clauses, and lattice declarations missing a bottom
// or their leq/join symbols.
func Load(p Program) (*Loaded, error) {
	builder := symtab.NewTable()

	declByName := map[string]SymbolDecl{}
	for _, d := range p.Symbols {
		declByName[d.Name] = d
		builder.Intern(d.Name, d.Arity, d.Interpretation, d.KeyArity)
	}
	table := builder.Build()

	for _, d := range p.Symbols {
		if d.Interpretation != symtab.PartialFunction {
			continue
		}
		sym, _ := table.Lookup(d.Name)
		if d.LeqSymbol == "" || d.JoinSymbol == "" {
			return nil, &LoadError{Kind: MissingInterpretation, Symbol: d.Name,
				Detail: "partial-function symbol declares no leq/join symbol pair"}
		}
		leqSym, ok := table.Lookup(d.LeqSymbol)
		if !ok {
			return nil, &LoadError{Kind: UnknownSymbol, Symbol: d.LeqSymbol,
				Detail: fmt.Sprintf("leq symbol for %s not declared", d.Name)}
		}
		joinSym, ok := table.Lookup(d.JoinSymbol)
		if !ok {
			return nil, &LoadError{Kind: UnknownSymbol, Symbol: d.JoinSymbol,
				Detail: fmt.Sprintf("join symbol for %s not declared", d.Name)}
		}
		if d.Bottom == nil {
			return nil, &LoadError{Kind: MissingBottom, Symbol: d.Name,
				Detail: "partial-function symbol declares no bottom value"}
		}
		sym.LatticeBottom = d.Bottom
		sym.LeqSymbol = leqSym
		sym.JoinSymbol = joinSym
	}

	resolveAtom := func(a AtomDecl) (clauses.Atom, error) {
		sym, ok := table.Lookup(a.Symbol)
		if !ok {
			return clauses.Atom{}, &LoadError{Kind: UnknownSymbol, Symbol: a.Symbol,
				Detail: "referenced but never declared"}
		}
		if len(a.Args) != sym.Arity {
			return clauses.Atom{}, &LoadError{Kind: ArityMismatch, Symbol: a.Symbol,
				Detail: fmt.Sprintf("expected %d argument(s), got %d", sym.Arity, len(a.Args))}
		}
		return clauses.Atom{Symbol: sym, Args: a.Args}, nil
	}

	resolvedClauses := make([]clauses.Clause, 0, len(p.Clauses))
	for _, cd := range p.Clauses {
		head, err := resolveAtom(cd.Head)
		if err != nil {
			return nil, err
		}
		if head.Symbol.Interpretation != symtab.Relation && head.Symbol.Interpretation != symtab.PartialFunction &&
			head.Symbol.Interpretation != symtab.LatticeLeq && head.Symbol.Interpretation != symtab.LatticeJoin {
			return nil, &LoadError{Kind: MissingInterpretation, Symbol: head.Symbol.Name,
				Detail: "clause head symbol has no recognized interpretation"}
		}

		body := make([]clauses.Atom, 0, len(cd.Body))
		for _, bd := range cd.Body {
			atom, err := resolveAtom(bd)
			if err != nil {
				return nil, err
			}
			body = append(body, atom)
		}

		c := clauses.Clause{Head: head, Body: body}
		if !c.IsRangeRestricted() {
			return nil, &LoadError{Kind: NonRangeRestricted, Symbol: head.Symbol.Name,
				Detail: fmt.Sprintf("clause %s has a head variable that does not occur in its body", c)}
		}
		resolvedClauses = append(resolvedClauses, c)
	}

	index := clauses.NewIndex(table, resolvedClauses)

	facts := make([]Fact, 0, len(p.Facts))
	for _, fd := range p.Facts {
		sym, ok := table.Lookup(fd.Symbol)
		if !ok {
			return nil, &LoadError{Kind: UnknownSymbol, Symbol: fd.Symbol, Detail: "fact for undeclared symbol"}
		}
		if len(fd.Args) != sym.Arity {
			return nil, &LoadError{Kind: ArityMismatch, Symbol: fd.Symbol,
				Detail: fmt.Sprintf("expected %d argument(s), got %d", sym.Arity, len(fd.Args))}
		}
		facts = append(facts, Fact{Symbol: sym, Args: fd.Args})
	}

	code := make(map[symtab.ID]CodeFunc, len(p.Code))
	for name, fn := range p.Code {
		sym, ok := table.Lookup(name)
		if !ok {
			return nil, &LoadError{Kind: UnknownSymbol, Symbol: name, Detail: "code registered for undeclared symbol"}
		}
		code[sym.ID] = fn
	}

	return &Loaded{Table: table, Index: index, Code: code, Facts: facts}, nil
}
