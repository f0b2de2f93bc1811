package db

import (
	"testing"

	"github.com/cs-au-dk/fixlog/lattice"
	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/term"
)

func maxJoin(inputs []term.Value) (term.Value, bool) {
	a, aok := inputs[0].(term.I64)
	b, bok := inputs[1].(term.I64)
	if !aok || !bok {
		return nil, false
	}
	if a > b {
		return a, true
	}
	return b, true
}

func leCode(inputs []term.Value) (term.Value, bool) {
	a, aok := inputs[0].(term.I64)
	b, bok := inputs[1].(term.I64)
	if !aok || !bok {
		return nil, false
	}
	return term.Bool(a <= b), true
}

func newTestDB() (*Database, *symtab.Symbol, *symtab.Symbol) {
	b := symtab.NewTable()
	edge := b.Intern("edge", 2, symtab.Relation, 0)
	leq := b.Intern("leq", 2, symtab.LatticeLeq, 0)
	join := b.Intern("join", 3, symtab.LatticeJoin, 0)
	val := b.Intern("val", 2, symtab.PartialFunction, 1)
	b.SetLattice(val, term.I64(0), leq, join)
	table := b.Build()

	rt := lattice.NewRuntime(table, nil).WithCode(leq, leCode).WithCode(join, maxJoin)
	return New(table, rt), edge, val
}

func TestInsertTupleDedupsAndEnqueuesDelta(t *testing.T) {
	database, edge, _ := newTestDB()

	if !database.InsertTuple(edge, []term.Value{term.I64(1), term.I64(2)}) {
		t.Fatal("first insert of a tuple should report new")
	}
	if database.InsertTuple(edge, []term.Value{term.I64(1), term.I64(2)}) {
		t.Fatal("duplicate insert should report not-new")
	}
	if database.FactCount(edge) != 1 {
		t.Fatalf("got %d facts, want 1", database.FactCount(edge))
	}
	if !database.HasPendingDeltas() {
		t.Fatal("a new tuple should enqueue a delta")
	}
	d, ok := database.PopDelta()
	if !ok || d.Symbol != edge {
		t.Fatalf("got %+v, %v", d, ok)
	}
	if database.HasPendingDeltas() {
		t.Fatal("the only delta should have been popped")
	}
}

func TestScanAndPointLookup(t *testing.T) {
	database, edge, _ := newTestDB()
	database.InsertTuple(edge, []term.Value{term.I64(1), term.I64(2)})
	database.InsertTuple(edge, []term.Value{term.I64(1), term.I64(3)})
	database.InsertTuple(edge, []term.Value{term.I64(2), term.I64(3)})

	all := database.Scan(edge)
	if len(all) != 3 {
		t.Fatalf("got %d tuples, want 3", len(all))
	}

	fromOne := database.PointLookup(edge, []term.Value{term.I64(1)})
	if len(fromOne) != 2 {
		t.Fatalf("got %d tuples with first arg 1, want 2", len(fromOne))
	}
}

func TestInsertLatticeJoinsAndReportsChanged(t *testing.T) {
	database, _, val := newTestDB()
	key := []term.Value{term.I64(1)}

	if got := database.LatticeLookup(val, key); !term.Equal(got, term.I64(0)) {
		t.Fatalf("unset key should read as bottom, got %v", got)
	}

	joined, changed, err := database.InsertLattice(val, key, term.I64(5))
	if err != nil || !changed || !term.Equal(joined, term.I64(5)) {
		t.Fatalf("got %v, %v, %v", joined, changed, err)
	}

	// Joining a smaller value must not move the stored value or report a
	// change: max(5, 3) == 5, leq(5, 5) holds.
	joined, changed, err = database.InsertLattice(val, key, term.I64(3))
	if err != nil || changed || !term.Equal(joined, term.I64(5)) {
		t.Fatalf("got %v, %v, %v; want unchanged at 5", joined, changed, err)
	}

	joined, changed, err = database.InsertLattice(val, key, term.I64(9))
	if err != nil || !changed || !term.Equal(joined, term.I64(9)) {
		t.Fatalf("got %v, %v, %v; want changed to 9", joined, changed, err)
	}
}

func TestSnapshotRestore(t *testing.T) {
	database, edge, _ := newTestDB()
	database.InsertTuple(edge, []term.Value{term.I64(1), term.I64(2)})
	snap := database.Snapshot()

	database.InsertTuple(edge, []term.Value{term.I64(3), term.I64(4)})
	if database.FactCount(edge) != 2 {
		t.Fatalf("got %d facts before restore, want 2", database.FactCount(edge))
	}

	database.Restore(snap)
	if database.FactCount(edge) != 1 {
		t.Fatalf("got %d facts after restore, want 1", database.FactCount(edge))
	}
	if database.HasPendingDeltas() {
		t.Fatal("Restore should clear the pending delta queue")
	}
}
