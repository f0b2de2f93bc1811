package eval

import (
	"context"
	"sync"

	"github.com/cs-au-dk/fixlog/db"
	"github.com/cs-au-dk/fixlog/program"
	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/utils/pq"
	"github.com/spakin/disjoint"
)

// SolveParallel partitions the program's symbols into independent shards
// via union-find over the clause dependency graph — two symbols are
// unioned whenever some clause's body and head mention both — and solves
// each shard concurrently. Because every clause edge unions its endpoints
// into the same shard by construction, no derivation ever needs to cross
// a shard boundary: each shard is a fully independent sub-program, so the
// combined result is identical to a single-threaded Solve regardless of
// shard scheduling.
func SolveParallel(ctx context.Context, loaded *program.Loaded, opts Options) Result {
	shardFacts := partitionFacts(loaded)
	if len(shardFacts) <= 1 {
		return Solve(ctx, loaded, opts)
	}

	// Longest-processing-time-first: order shard indices by descending
	// fact count before launching.
	order := pq.Empty(func(i, j int) bool { return len(shardFacts[i]) > len(shardFacts[j]) })
	for i := range shardFacts {
		order.Add(i)
	}

	results := make([]Result, len(shardFacts))
	var wg sync.WaitGroup
	for !order.IsEmpty() {
		i := order.GetNext()
		wg.Add(1)
		go func(i int, facts []program.Fact) {
			defer wg.Done()
			shard := &program.Loaded{
				Table: loaded.Table,
				Index: loaded.Index,
				Code:  loaded.Code,
				Facts: facts,
			}
			results[i] = Solve(ctx, shard, opts)
		}(i, shardFacts[i])
	}
	wg.Wait()

	return mergeResults(loaded.Table, results)
}

// partitionFacts groups the program's initial facts by dependency shard.
// A shard containing no facts is dropped implicitly (its symbols would
// derive nothing without base facts to seed the worklist).
func partitionFacts(loaded *program.Loaded) [][]program.Fact {
	table := loaded.Table
	elems := make(map[symtab.ID]*disjoint.Element, table.Len())
	for _, sym := range table.All() {
		elems[sym.ID] = disjoint.NewElement()
	}
	for _, c := range loaded.Index.Clauses() {
		for _, atom := range c.Body {
			disjoint.Union(elems[atom.Symbol.ID], elems[c.Head.Symbol.ID])
		}
	}

	byRoot := map[*disjoint.Element][]program.Fact{}
	for _, f := range loaded.Facts {
		root := elems[f.Symbol.ID].Find()
		byRoot[root] = append(byRoot[root], f)
	}

	groups := make([][]program.Fact, 0, len(byRoot))
	for _, facts := range byRoot {
		groups = append(groups, facts)
	}
	return groups
}

// mergeResults combines the per-shard results into one Result. Since
// shards never overlap in the symbols they derive facts for, the merge is
// a disjoint union: Extension/Lookup/Count on a symbol only ever finds
// data in the one shard database that actually derived it.
func mergeResults(table *symtab.Table, results []Result) Result {
	merged := Result{Outcome: Fixpoint, Table: table}

	dbs := make([]*db.Database, 0, len(results))
	for _, r := range results {
		dbs = append(dbs, r.Database)
		merged.Stats.DeltasProcessed += r.Stats.DeltasProcessed
		merged.Stats.BodyMatches += r.Stats.BodyMatches
		merged.Stats.FactsDerived += r.Stats.FactsDerived
		if r.Outcome == Cancelled {
			merged.Outcome = Cancelled
		}
		if r.Outcome == OutcomeError && merged.Err == nil {
			merged.Outcome = OutcomeError
			merged.Err = r.Err
		}
	}

	merged.Database = db.Merge(dbs...)
	return merged
}
