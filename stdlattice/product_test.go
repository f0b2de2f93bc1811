package stdlattice

import (
	"testing"

	"github.com/cs-au-dk/fixlog/program"
	"github.com/cs-au-dk/fixlog/symtab"
)

func TestSignAndParityDeclarations(t *testing.T) {
	symbols, cls, code := SignAndParity()

	names := map[string]bool{}
	for _, s := range symbols {
		names[s.Name] = true
	}
	for _, want := range []string{"sign_leq", "sign_join", "parity_leq", "parity_join", "sp_leq", "sp_join"} {
		if !names[want] {
			t.Fatalf("expected symbol %s to be declared", want)
		}
	}
	if len(cls) != 2 {
		t.Fatalf("got %d clauses, want 2 (sp_leq, sp_join)", len(cls))
	}
	if len(code) != 4 {
		t.Fatalf("got %d code registrations, want 4 (the component leq/join pairs)", len(code))
	}
}

func TestSignAndParityLoads(t *testing.T) {
	symbols, cls, code := SignAndParity()
	p := program.Program{Symbols: symbols, Clauses: cls, Code: code}

	loaded, err := program.Load(p)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	spLeq, ok := loaded.Table.Lookup("sp_leq")
	if !ok || spLeq.Interpretation != symtab.LatticeLeq {
		t.Fatalf("got %v, %v", spLeq, ok)
	}
	if len(loaded.Index.ClausesWithHead(spLeq)) != 1 {
		t.Fatal("sp_leq should have exactly one clause")
	}
}
