package eval

import (
	"github.com/cs-au-dk/fixlog/clauses"
	"github.com/cs-au-dk/fixlog/db"
	"github.com/cs-au-dk/fixlog/lattice"
	"github.com/cs-au-dk/fixlog/program"
	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/term"
)

// evalContext bundles everything one Solve invocation needs to thread
// through dispatch and query resolution: the interned program, the
// database it mutates, and the lattice runtime backing leq/join.
type evalContext struct {
	loaded  *program.Loaded
	index   *clauses.Index
	table   *symtab.Table
	runtime *lattice.Runtime
	database *db.Database
	opts    Options
	stats   Stats

	// queryBudget is shared by every nested clause-defined leq/join query
	// issued under one outermost query, and nil between outermost queries.
	queryBudget *int
}

func newEvalContext(loaded *program.Loaded, opts Options) *evalContext {
	ec := &evalContext{
		loaded: loaded,
		index:  loaded.Index,
		table:  loaded.Table,
		opts:   opts,
	}

	query := func(sym *symtab.Symbol, inputs []term.Value) (term.Value, bool, error) {
		if ec.queryBudget == nil {
			budget := opts.LatticeBudget
			ec.queryBudget = &budget
			defer func() { ec.queryBudget = nil }()
		}
		return ec.solveQuery(sym, inputs, ec.queryBudget)
	}

	rt := lattice.NewRuntime(loaded.Table, query)
	for id, fn := range loaded.Code {
		rt = rt.WithCode(loaded.Table.ByID(id), fn)
	}
	ec.runtime = rt
	ec.database = db.New(loaded.Table, rt)
	return ec
}

// insertFact inserts an already-ground initial fact, following the same
// materialization rules as insertHead.
func (ec *evalContext) insertFact(f program.Fact) error {
	return ec.insertGround(f.Symbol, f.Args)
}

func (ec *evalContext) insertGround(sym *symtab.Symbol, args []term.Value) error {
	switch sym.Interpretation {
	case symtab.Relation:
		if ec.database.InsertTuple(sym, args) {
			ec.stats.FactsDerived++
		}
		return nil
	case symtab.PartialFunction:
		if sym.KeyArity >= len(args) {
			return &EvalError{Kind: ArityMismatch, Symbol: sym, Detail: "partial-function fact has no value argument"}
		}
		key := args[:sym.KeyArity]
		val := args[sym.KeyArity]
		_, changed, err := ec.database.InsertLattice(sym, key, val)
		if err != nil {
			return err
		}
		if changed {
			ec.stats.FactsDerived++
		}
		return nil
	default:
		return &EvalError{Kind: ArityMismatch, Symbol: sym,
			Detail: "leq/join symbols cannot be materialized as clause heads or facts"}
	}
}
