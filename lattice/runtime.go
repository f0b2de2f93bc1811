// Package lattice implements the uniform leq/join call interface used by
// the evaluator and the database: a lattice's operations are either
// registered Go functions ("code" interpretations) or delegate to a
// recursive Horn-clause query, and callers never need to know which.
package lattice

import (
	"github.com/benbjohnson/immutable"
	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/term"
)

// Elem is a lattice element: an ordinary ground value.
type Elem = term.Value

// CodeFunc is a host-language total function backing a Code interpretation.
// It receives the ground input arguments and returns the ground result, or
// ok=false to signal failure (used by boolean predicates such as leq).
type CodeFunc func(inputs []term.Value) (term.Value, bool)

// ClauseQuery answers a leq/join query for a symbol whose semantics is
// defined by a clause set rather than a Code function, by recursively
// invoking the evaluator's single-query driver over that clause set. It is
// supplied by package eval at construction time to avoid a package cycle
// between lattice and eval.
type ClauseQuery func(sym *symtab.Symbol, inputs []term.Value) (term.Value, bool, error)

// Runtime wraps leq/join behind a single call interface, backed by either
// a copy-on-write Code function registry or a ClauseQuery delegate.
type Runtime struct {
	table *symtab.Table
	code  *immutable.Map[symtab.ID, CodeFunc]
	query ClauseQuery
}

// NewRuntime constructs an empty-registry Runtime; query answers leq/join
// for any symbol not registered via WithCode.
func NewRuntime(table *symtab.Table, query ClauseQuery) *Runtime {
	return &Runtime{
		table: table,
		code:  immutable.NewMap[symtab.ID, CodeFunc](nil),
		query: query,
	}
}

// WithCode returns a new Runtime with fn registered as the Code
// implementation of sym, leaving the receiver unmodified. Following the
// copy-on-write style of the rest of the immutable-collection-backed
// program state, registering a function never mutates a Runtime in place.
func (rt *Runtime) WithCode(sym *symtab.Symbol, fn CodeFunc) *Runtime {
	return &Runtime{
		table: rt.table,
		code:  rt.code.Set(sym.ID, fn),
		query: rt.query,
	}
}

// HasCode reports whether sym has a registered Code implementation.
func (rt *Runtime) HasCode(sym *symtab.Symbol) bool {
	_, ok := rt.code.Get(sym.ID)
	return ok
}

// Leq evaluates sym(a, b) for a two-argument leq symbol, either by
// invoking its registered Code function or by delegating to the clause
// query. The returned error, if any, originates from the ClauseQuery
// (typically a lattice recursion budget being exceeded).
func (rt *Runtime) Leq(sym *symtab.Symbol, a, b term.Value) (bool, error) {
	if fn, ok := rt.code.Get(sym.ID); ok {
		v, ok := fn([]term.Value{a, b})
		if !ok {
			return false, nil
		}
		holds, isBool := v.(term.Bool)
		return isBool && bool(holds), nil
	}
	_, ok, err := rt.query(sym, []term.Value{a, b})
	return ok, err
}

// Join evaluates sym(a, b) for a two-argument join symbol, returning the
// joined value, or ok=false if no join exists (not joinable).
func (rt *Runtime) Join(sym *symtab.Symbol, a, b term.Value) (term.Value, bool, error) {
	if fn, ok := rt.code.Get(sym.ID); ok {
		v, ok := fn([]term.Value{a, b})
		return v, ok, nil
	}
	v, ok, err := rt.query(sym, []term.Value{a, b})
	return v, ok, err
}

// Call invokes a general Code-interpretation partial function on its
// ground inputs, used for atoms with interpretation PartialFunction whose
// symbol has a registered Code implementation rather than a clause set.
func (rt *Runtime) Call(sym *symtab.Symbol, inputs []term.Value) (term.Value, bool) {
	fn, ok := rt.code.Get(sym.ID)
	if !ok {
		return nil, false
	}
	return fn(inputs)
}
