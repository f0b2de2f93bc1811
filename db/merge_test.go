package db

import (
	"testing"

	"github.com/cs-au-dk/fixlog/lattice"
	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/term"
)

func TestMergeUnionsDisjointShards(t *testing.T) {
	b := symtab.NewTable()
	edgeA := b.Intern("edgeA", 2, symtab.Relation, 0)
	edgeB := b.Intern("edgeB", 2, symtab.Relation, 0)
	table := b.Build()

	dbA := New(table, lattice.NewRuntime(table, nil))
	dbA.InsertTuple(edgeA, []term.Value{term.I64(1), term.I64(2)})

	dbB := New(table, lattice.NewRuntime(table, nil))
	dbB.InsertTuple(edgeB, []term.Value{term.I64(3), term.I64(4)})

	merged := Merge(dbA, dbB)
	if merged.FactCount(edgeA) != 1 {
		t.Fatalf("got %d edgeA facts, want 1", merged.FactCount(edgeA))
	}
	if merged.FactCount(edgeB) != 1 {
		t.Fatalf("got %d edgeB facts, want 1", merged.FactCount(edgeB))
	}
}

func TestMergeSingleDatabase(t *testing.T) {
	b := symtab.NewTable()
	edge := b.Intern("edge", 2, symtab.Relation, 0)
	table := b.Build()

	database := New(table, lattice.NewRuntime(table, nil))
	database.InsertTuple(edge, []term.Value{term.I64(1), term.I64(2)})

	merged := Merge(database)
	if merged.FactCount(edge) != 1 {
		t.Fatalf("got %d facts, want 1", merged.FactCount(edge))
	}
}
