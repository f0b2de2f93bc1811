package db

import (
	"github.com/benbjohnson/immutable"
	"github.com/cs-au-dk/fixlog/lattice"
	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/term"
	"github.com/cs-au-dk/fixlog/utils/worklist"
)

// Snapshot is a cheap, structurally-shared copy of a Database's stored
// facts (but not its pending delta queue), grounded on the same
// copy-on-write construction the immutable collections already give every
// insert: duplicating the top-level symbol-to-collection maps is O(symbol
// count), while the collections themselves are shared until the next
// write diverges them.
type Snapshot struct {
	relations     map[symtab.ID]*immutable.Map[term.Value, struct{}]
	latticeMaps   map[symtab.ID]*immutable.Map[term.Value, lattice.Elem]
	firstArgIndex map[symtab.ID]*immutable.Map[term.Value, []term.Value]
}

// Snapshot captures the current facts as a Snapshot. The returned value
// is unaffected by subsequent inserts into db.
func (db *Database) Snapshot() Snapshot {
	s := Snapshot{
		relations:     make(map[symtab.ID]*immutable.Map[term.Value, struct{}], len(db.relations)),
		latticeMaps:   make(map[symtab.ID]*immutable.Map[term.Value, lattice.Elem], len(db.latticeMaps)),
		firstArgIndex: make(map[symtab.ID]*immutable.Map[term.Value, []term.Value], len(db.firstArgIndex)),
	}
	for k, v := range db.relations {
		s.relations[k] = v
	}
	for k, v := range db.latticeMaps {
		s.latticeMaps[k] = v
	}
	for k, v := range db.firstArgIndex {
		s.firstArgIndex[k] = v
	}
	return s
}

// Restore replaces db's stored facts with s, emptying the pending delta
// queue: a restored database has no deltas in flight until the caller
// seeds it again (e.g. by re-running the idempotence check, §8 invariant
// 3, which reinserts every fact and expects every insert to report
// unchanged).
func (db *Database) Restore(s Snapshot) {
	db.relations = s.relations
	db.latticeMaps = s.latticeMaps
	db.firstArgIndex = s.firstArgIndex
	db.deltas = worklist.Empty[Delta]()
}
