package db

import (
	"github.com/benbjohnson/immutable"
	"github.com/cs-au-dk/fixlog/lattice"
	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/term"
)

// Merge combines several databases produced by independent shards into
// one. Shards are expected to own disjoint symbol sets (the sharded
// evaluator guarantees this by construction, since every clause edge
// unions its endpoints into the same shard), so merging is a plain union
// of each per-symbol map; no symbol is ever present in more than one
// input database.
func Merge(dbs ...*Database) *Database {
	if len(dbs) == 0 {
		return nil
	}

	merged := &Database{
		table:         dbs[0].table,
		runtime:       dbs[0].runtime,
		relations:     map[symtab.ID]*immutable.Map[term.Value, struct{}]{},
		latticeMaps:   map[symtab.ID]*immutable.Map[term.Value, lattice.Elem]{},
		firstArgIndex: map[symtab.ID]*immutable.Map[term.Value, []term.Value]{},
	}

	for _, d := range dbs {
		for id, rel := range d.relations {
			merged.relations[id] = rel
		}
		for id, lm := range d.latticeMaps {
			merged.latticeMaps[id] = lm
		}
		for id, idx := range d.firstArgIndex {
			merged.firstArgIndex[id] = idx
		}
	}

	return merged
}
