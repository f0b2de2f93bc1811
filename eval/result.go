package eval

import (
	"github.com/cs-au-dk/fixlog/db"
	"github.com/cs-au-dk/fixlog/lattice"
	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/term"
)

// Outcome is the termination reason of a Solve call.
type Outcome int

const (
	Fixpoint Outcome = iota
	Cancelled
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case Fixpoint:
		return "fixpoint"
	case Cancelled:
		return "cancelled"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outward interface returned by Solve: the outcome, the
// (possibly partial) database, and any error that aborted evaluation.
type Result struct {
	Outcome  Outcome
	Database *db.Database
	Table    *symtab.Table
	Err      error

	// Stats records evaluator-internal counters used by the semi-naive
	// efficiency test and by the CLI's solve report.
	Stats Stats
}

// Stats counts evaluator work, used to demonstrate the semi-naive
// property (fewer body-match attempts than a naive re-evaluation would
// need) and to report progress from the CLI.
type Stats struct {
	DeltasProcessed int
	BodyMatches     int
	FactsDerived    int
}

// Extension returns the current extension of a Relation symbol.
func (r Result) Extension(sym *symtab.Symbol) []term.Tuple {
	return r.Database.Scan(sym)
}

// Lookup returns the lattice value stored at key for a PartialFunction
// symbol.
func (r Result) Lookup(sym *symtab.Symbol, key []term.Value) lattice.Elem {
	return r.Database.LatticeLookup(sym, key)
}

// Count returns the total number of derived tuples (or keys) for sym.
func (r Result) Count(sym *symtab.Symbol) int {
	return r.Database.FactCount(sym)
}
