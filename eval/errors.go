package eval

import (
	"fmt"

	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/term"
)

// EvalErrorKind discriminates the ways a solve can fail at runtime, after
// loading has already succeeded.
type EvalErrorKind int

const (
	UngroundFunctionInput EvalErrorKind = iota
	ArityMismatch
	NonMonotoneJoin
	LatticeTimeoutOrOverflow
)

func (k EvalErrorKind) String() string {
	switch k {
	case UngroundFunctionInput:
		return "ungrounded function input"
	case ArityMismatch:
		return "arity mismatch"
	case NonMonotoneJoin:
		return "non-monotone join"
	case LatticeTimeoutOrOverflow:
		return "lattice recursion budget exceeded"
	default:
		return "unknown eval error"
	}
}

// EvalError reports a runtime failure during Solve, carrying the symbol,
// the partially-constructed substitution, and (when known) the position
// within the clause being evaluated, per the error handling design.
type EvalError struct {
	Kind      EvalErrorKind
	Symbol    *symtab.Symbol
	Subst     term.Subst
	ClausePos int
	Detail    string
}

func (e *EvalError) Error() string {
	sym := "<unknown>"
	if e.Symbol != nil {
		sym = e.Symbol.String()
	}
	if e.Detail == "" {
		return fmt.Sprintf("%s: symbol %s", e.Kind, sym)
	}
	return fmt.Sprintf("%s: symbol %s: %s", e.Kind, sym, e.Detail)
}
