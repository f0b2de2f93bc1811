package eval

import (
	"context"
	"testing"

	"github.com/cs-au-dk/fixlog/program"
	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/term"
)

// twoIndependentClosuresProgram declares two disjoint transitive-closure
// sub-programs (E1/T1 and E2/T2, sharing no clause) so partitionFacts
// splits them into separate shards.
func twoIndependentClosuresProgram() program.Program {
	mk := func(suffix string) ([]program.SymbolDecl, []program.ClauseDecl, []program.FactDecl) {
		e, tt := "E"+suffix, "T"+suffix
		symbols := []program.SymbolDecl{
			{Name: e, Arity: 2, Interpretation: symtab.Relation},
			{Name: tt, Arity: 2, Interpretation: symtab.Relation},
		}
		clauses := []program.ClauseDecl{
			{
				Head: program.AtomDecl{Symbol: tt, Args: []term.Term{term.Variable("X"), term.Variable("Y")}},
				Body: []program.AtomDecl{{Symbol: e, Args: []term.Term{term.Variable("X"), term.Variable("Y")}}},
			},
			{
				Head: program.AtomDecl{Symbol: tt, Args: []term.Term{term.Variable("X"), term.Variable("Z")}},
				Body: []program.AtomDecl{
					{Symbol: e, Args: []term.Term{term.Variable("X"), term.Variable("Y")}},
					{Symbol: tt, Args: []term.Term{term.Variable("Y"), term.Variable("Z")}},
				},
			},
		}
		facts := []program.FactDecl{
			{Symbol: e, Args: []term.Value{term.I64(1), term.I64(2)}},
			{Symbol: e, Args: []term.Value{term.I64(2), term.I64(3)}},
		}
		return symbols, clauses, facts
	}

	s1, c1, f1 := mk("1")
	s2, c2, f2 := mk("2")

	return program.Program{
		Symbols: append(s1, s2...),
		Clauses: append(c1, c2...),
		Facts:   append(f1, f2...),
	}
}

func TestSolveParallelMatchesSingleThreaded(t *testing.T) {
	p := twoIndependentClosuresProgram()

	loadedSeq, err := program.Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	seq := Solve(context.Background(), loadedSeq, DefaultOptions())
	if seq.Outcome != Fixpoint {
		t.Fatalf("sequential solve outcome %v, err %v", seq.Outcome, seq.Err)
	}

	loadedPar, err := program.Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	par := SolveParallel(context.Background(), loadedPar, DefaultOptions())
	if par.Outcome != Fixpoint {
		t.Fatalf("parallel solve outcome %v, err %v", par.Outcome, par.Err)
	}

	for _, suffix := range []string{"1", "2"} {
		tSym, _ := loadedSeq.Table.Lookup("T" + suffix)
		tSymPar, _ := loadedPar.Table.Lookup("T" + suffix)

		seqExt := seq.Extension(tSym)
		parExt := par.Extension(tSymPar)
		if len(seqExt) != len(parExt) {
			t.Fatalf("T%s: sequential got %d tuples, parallel got %d", suffix, len(seqExt), len(parExt))
		}
		if len(seqExt) != 3 {
			t.Fatalf("T%s: got %d tuples, want 3 ((1,2),(2,3),(1,3))", suffix, len(seqExt))
		}
	}
}

func TestPartitionFactsSplitsDisjointSymbols(t *testing.T) {
	p := twoIndependentClosuresProgram()
	loaded, err := program.Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	shards := partitionFacts(loaded)
	if len(shards) != 2 {
		t.Fatalf("got %d shards, want 2 for two disjoint clause groups", len(shards))
	}
}
