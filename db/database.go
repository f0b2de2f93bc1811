// Package db implements the two per-predicate storage shapes described by
// the data model: deduplicated set-relations, and lattice-maps whose
// values are merged by join on insert. Database is owned exclusively by
// one evaluator instance at a time; it performs no locking of its own.
package db

import (
	"github.com/benbjohnson/immutable"
	"github.com/cs-au-dk/fixlog/lattice"
	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/term"
	"github.com/cs-au-dk/fixlog/utils/worklist"
)

// Delta is a newly-derived ground atom awaiting propagation. For a
// Relation symbol, Tuple is the full argument list. For a PartialFunction
// symbol, Tuple is the key arguments followed by the newly joined value.
type Delta struct {
	Symbol *symtab.Symbol
	Tuple  []term.Value
}

// Database is the shared relational store: one set-relation or
// lattice-map per predicate symbol, plus the FIFO delta queue that drives
// semi-naive evaluation.
type Database struct {
	table   *symtab.Table
	runtime *lattice.Runtime

	relations   map[symtab.ID]*immutable.Map[term.Value, struct{}]
	latticeMaps map[symtab.ID]*immutable.Map[term.Value, lattice.Elem]

	// firstArgIndex accelerates PointLookup for relations queried with a
	// bound first argument, avoiding a full scan of the extension.
	firstArgIndex map[symtab.ID]*immutable.Map[term.Value, []term.Value]

	deltas worklist.Worklist[Delta]
}

// New creates an empty Database for the given symbol table, backed by
// runtime for lattice-map joins.
func New(table *symtab.Table, runtime *lattice.Runtime) *Database {
	return &Database{
		table:         table,
		runtime:       runtime,
		relations:     map[symtab.ID]*immutable.Map[term.Value, struct{}]{},
		latticeMaps:   map[symtab.ID]*immutable.Map[term.Value, lattice.Elem]{},
		firstArgIndex: map[symtab.ID]*immutable.Map[term.Value, []term.Value]{},
	}
}

// Runtime returns the lattice runtime backing this database's join/leq
// operations.
func (db *Database) Runtime() *lattice.Runtime { return db.runtime }

func (db *Database) relationOf(sym *symtab.Symbol) *immutable.Map[term.Value, struct{}] {
	if m, ok := db.relations[sym.ID]; ok {
		return m
	}
	return immutable.NewMap[term.Value, struct{}](term.ValueHasher())
}

func (db *Database) latticeMapOf(sym *symtab.Symbol) *immutable.Map[term.Value, lattice.Elem] {
	if m, ok := db.latticeMaps[sym.ID]; ok {
		return m
	}
	return immutable.NewMap[term.Value, lattice.Elem](term.ValueHasher())
}

func (db *Database) indexOf(sym *symtab.Symbol) *immutable.Map[term.Value, []term.Value] {
	if m, ok := db.firstArgIndex[sym.ID]; ok {
		return m
	}
	return immutable.NewMap[term.Value, []term.Value](term.ValueHasher())
}

// InsertTuple inserts a fully-ground tuple into a Relation symbol's
// extension. It returns whether the tuple was new; a new tuple is
// appended as a delta to the queue.
func (db *Database) InsertTuple(sym *symtab.Symbol, args []term.Value) bool {
	tuple := term.Tuple(args)
	rel := db.relationOf(sym)
	if _, found := rel.Get(tuple); found {
		return false
	}

	db.relations[sym.ID] = rel.Set(tuple, struct{}{})

	if len(args) > 0 {
		idx := db.indexOf(sym)
		bucket, _ := idx.Get(args[0])
		db.firstArgIndex[sym.ID] = idx.Set(args[0], append(append([]term.Value{}, bucket...), tuple))
	}

	db.deltas.Add(Delta{Symbol: sym, Tuple: args})
	return true
}

// InsertLattice merges v into the lattice value stored at key for a
// PartialFunction symbol, computing join(cur-or-bottom, v). It returns the
// resulting value and whether it strictly increased the stored value
// under leq (a "changed" insert enqueues a delta with the new value).
func (db *Database) InsertLattice(sym *symtab.Symbol, key []term.Value, v lattice.Elem) (lattice.Elem, bool, error) {
	keyTuple := term.Tuple(key)
	lm := db.latticeMapOf(sym)

	cur, found := lm.Get(keyTuple)
	if !found {
		cur = sym.LatticeBottom
	}

	joined, ok, err := db.runtime.Join(sym.JoinSymbol, cur, v)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		joined = cur
	}

	leqCur, err := db.runtime.Leq(sym.LeqSymbol, joined, cur)
	if err != nil {
		return nil, false, err
	}
	changed := !leqCur

	db.latticeMaps[sym.ID] = lm.Set(keyTuple, joined)

	if changed {
		db.deltas.Add(Delta{Symbol: sym, Tuple: append(append([]term.Value{}, key...), joined)})
	}
	return joined, changed, nil
}

// Scan returns every tuple currently in a Relation symbol's extension.
func (db *Database) Scan(sym *symtab.Symbol) []term.Tuple {
	rel := db.relationOf(sym)
	out := make([]term.Tuple, 0, rel.Len())
	it := rel.Iterator()
	for !it.Done() {
		k, _, _ := it.Next()
		out = append(out, k.(term.Tuple))
	}
	return out
}

// PointLookup returns every tuple in a Relation symbol's extension whose
// first argument equals prefix[0], when prefix is non-empty; the caller
// (the interpretation dispatcher) still re-checks the remaining pattern
// positions. With an empty prefix it degenerates to Scan.
func (db *Database) PointLookup(sym *symtab.Symbol, prefix []term.Value) []term.Tuple {
	if len(prefix) == 0 {
		return db.Scan(sym)
	}
	idx := db.indexOf(sym)
	bucket, _ := idx.Get(prefix[0])
	out := make([]term.Tuple, len(bucket))
	for i, t := range bucket {
		out[i] = t.(term.Tuple)
	}
	return out
}

// LatticeLookup returns the lattice value stored at key for a
// PartialFunction symbol, or sym.LatticeBottom if the key has never been
// derived — a missing entry is bottom, not an error.
func (db *Database) LatticeLookup(sym *symtab.Symbol, key []term.Value) lattice.Elem {
	lm := db.latticeMapOf(sym)
	if v, found := lm.Get(term.Tuple(key)); found {
		return v
	}
	return sym.LatticeBottom
}

// LatticeKeys enumerates every key that has an entry (i.e. was derived at
// least once) for a PartialFunction symbol.
func (db *Database) LatticeKeys(sym *symtab.Symbol) []term.Tuple {
	lm := db.latticeMapOf(sym)
	out := make([]term.Tuple, 0, lm.Len())
	it := lm.Iterator()
	for !it.Done() {
		k, _, _ := it.Next()
		out = append(out, k.(term.Tuple))
	}
	return out
}

// FactCount returns the number of stored tuples (for a Relation) or keys
// (for a PartialFunction) for sym.
func (db *Database) FactCount(sym *symtab.Symbol) int {
	if sym.Interpretation == symtab.PartialFunction {
		return db.latticeMapOf(sym).Len()
	}
	return db.relationOf(sym).Len()
}

// PopDelta removes and returns the oldest pending delta.
func (db *Database) PopDelta() (Delta, bool) {
	if db.deltas.IsEmpty() {
		return Delta{}, false
	}
	return db.deltas.GetNext(), true
}

// HasPendingDeltas reports whether the delta queue is non-empty.
func (db *Database) HasPendingDeltas() bool {
	return !db.deltas.IsEmpty()
}

// PushDelta enqueues d directly, without inserting anything. The evaluator
// does not call it: initial facts are enqueued by InsertTuple and
// InsertLattice, and the sharded evaluator never moves derivations across
// shards.
func (db *Database) PushDelta(d Delta) {
	db.deltas.Add(d)
}
