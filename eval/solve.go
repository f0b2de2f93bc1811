package eval

import (
	"context"

	"github.com/cs-au-dk/fixlog/clauses"
	"github.com/cs-au-dk/fixlog/db"
	"github.com/cs-au-dk/fixlog/program"
	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/term"
	"github.com/cs-au-dk/fixlog/unify"
)

// Solve computes the least fixed point of loaded's clauses over its
// initial facts: a bottom-up semi-naive evaluation that pops deltas from a
// FIFO worklist, rematches every clause mentioning the delta's symbol in
// its body, evaluates the rest of the body against the current database,
// and inserts any newly satisfied head instance — requeuing only actual
// deltas, never unchanged re-derivations.
func Solve(ctx context.Context, loaded *program.Loaded, opts Options) Result {
	if opts.LatticeBudget == 0 {
		opts = DefaultOptions()
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	ec := newEvalContext(loaded, opts)

	for _, f := range loaded.Facts {
		if err := ec.insertFact(f); err != nil {
			return Result{Outcome: OutcomeError, Database: ec.database, Table: ec.table, Err: err, Stats: ec.stats}
		}
	}

	for ec.database.HasPendingDeltas() {
		select {
		case <-ctx.Done():
			return Result{Outcome: Cancelled, Database: ec.database, Table: ec.table, Stats: ec.stats}
		default:
		}

		delta, _ := ec.database.PopDelta()
		ec.stats.DeltasProcessed++

		if err := ec.stepDelta(delta); err != nil {
			return Result{Outcome: OutcomeError, Database: ec.database, Table: ec.table, Err: err, Stats: ec.stats}
		}
	}

	return Result{Outcome: Fixpoint, Database: ec.database, Table: ec.table, Stats: ec.stats}
}

// stepDelta implements algorithm step 2: for every clause with delta's
// symbol in its body at some position, bind that position to the delta's
// tuple, solve the rest of the body left-to-right against the current
// database, and insert every resulting head instance.
func (ec *evalContext) stepDelta(delta db.Delta) error {
	for _, occ := range ec.index.ClausesWithBodySymbol(delta.Symbol) {
		c := occ.Clause
		if !materializable(c.Head.Symbol) {
			// Clauses whose head is a leq/join symbol are never advanced
			// by the worklist: they are solved on demand by solveQuery
			// when some other clause's body queries them.
			continue
		}

		boundPattern := c.Body[occ.Position].Args
		sub, ok := matchDelta(boundPattern, delta.Tuple)
		if !ok {
			continue
		}

		rest := restOfBody(c.Body, occ.Position)
		budget := ec.opts.LatticeBudget
		subs, err := ec.solveConjunction(rest, sub, &budget)
		if err != nil {
			return err
		}

		for _, s := range subs {
			if err := ec.insertHead(c.Head, s); err != nil {
				return err
			}
		}
	}
	return nil
}

func materializable(sym *symtab.Symbol) bool {
	return sym.Interpretation == symtab.Relation || sym.Interpretation == symtab.PartialFunction
}

func restOfBody(body []clauses.Atom, exclude int) []clauses.Atom {
	rest := make([]clauses.Atom, 0, len(body)-1)
	rest = append(rest, body[:exclude]...)
	rest = append(rest, body[exclude+1:]...)
	return rest
}

func matchDelta(pattern []term.Term, tuple []term.Value) (term.Subst, bool) {
	return unify.Atom(pattern, tuple, term.EmptySubst())
}

func (ec *evalContext) insertHead(head clauses.Atom, sub term.Subst) error {
	args := make([]term.Value, len(head.Args))
	for i, a := range head.Args {
		v, ok := term.Groundify(a, sub)
		if !ok {
			return &EvalError{Kind: ArityMismatch, Symbol: head.Symbol, Subst: sub,
				Detail: "head atom was not fully ground despite range restriction"}
		}
		args[i] = v
	}
	return ec.insertGround(head.Symbol, args)
}
