// Package eval implements the bottom-up semi-naive fixpoint evaluator: the
// worklist driver over deltas (solve.go), the per-atom interpretation
// dispatcher (dispatch.go), the recursive single-query driver used by
// clause-defined lattice operations (query.go), and the optional sharded
// concurrent solver (shard.go).
package eval

import "time"

// Options configures one Solve invocation.
type Options struct {
	// LatticeBudget bounds the number of recursive clause activations a
	// single leq/join query, nested queries included, may perform before it
	// is treated as
	// EvalError{LatticeTimeoutOrOverflow}, guarding against a
	// non-well-founded user lattice.
	LatticeBudget int
	// Timeout, if non-zero, cancels the solve after the given duration in
	// addition to any caller-supplied context.
	Timeout time.Duration
}

// DefaultOptions returns sane defaults for interactive use.
func DefaultOptions() Options {
	return Options{LatticeBudget: 100000}
}
