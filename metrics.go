package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cs-au-dk/fixlog/eval"
	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/utils"
	"github.com/cs-au-dk/fixlog/utils/indenter"
	"github.com/cs-au-dk/fixlog/utils/tree"
)

// renderReport formats a solve Result as a human-readable summary: the
// evaluator's own work counters, then the extension size of every
// Relation/PartialFunction symbol. Counts are accumulated into a
// persistent tree.Tree keyed by symbol name rather than a plain map, so a
// future incremental report (one snapshot per SCC layer, say) could diff
// two counts trees cheaply instead of rebuilding from scratch.
func renderReport(table *symtab.Table, result eval.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "outcome: %s\n", result.Outcome)
	fmt.Fprintf(&b, "deltas processed: %d, body matches: %d, facts derived: %d\n",
		result.Stats.DeltasProcessed, result.Stats.BodyMatches, result.Stats.FactsDerived)

	counts := tree.NewTree[string, int](utils.StringHasher{})
	for _, sym := range table.All() {
		if sym.Interpretation != symtab.Relation && sym.Interpretation != symtab.PartialFunction {
			continue
		}
		counts = counts.Insert(sym.String(), result.Count(sym))
	}

	type row struct {
		name  string
		count int
	}
	var rows []row
	counts.ForEach(func(name string, n int) {
		rows = append(rows, row{name, n})
	})
	sort.Slice(rows, func(i, j int) bool { return rows[i].name < rows[j].name })

	lines := make([]func() string, len(rows))
	for i, r := range rows {
		r := r
		lines[i] = func() string { return fmt.Sprintf("%-24s %d facts", r.name, r.count) }
	}
	b.WriteString(indenter.Indenter().Start("extensions:").NestThunked(lines...).End(""))

	return b.String()
}
