package stdlattice

import (
	"testing"

	"github.com/cs-au-dk/fixlog/term"
)

func mustLeq(t *testing.T, fn func([]term.Value) (term.Value, bool), a, b term.Value) bool {
	t.Helper()
	v, ok := fn([]term.Value{a, b})
	if !ok {
		t.Fatalf("leq(%v, %v) was rejected", a, b)
	}
	holds, isBool := v.(term.Bool)
	if !isBool {
		t.Fatalf("leq(%v, %v) returned non-bool %v", a, b, v)
	}
	return bool(holds)
}

func TestSignLeq(t *testing.T) {
	if !mustLeq(t, SignLeq, SignBot, SignPos) {
		t.Fatal("Bot should be leq everything")
	}
	if !mustLeq(t, SignLeq, SignPos, SignTop) {
		t.Fatal("everything should be leq Top")
	}
	if mustLeq(t, SignLeq, SignPos, SignNeg) {
		t.Fatal("Pos and Neg are incomparable")
	}
	if !mustLeq(t, SignLeq, SignPos, SignPos) {
		t.Fatal("leq should be reflexive")
	}
}

func TestSignJoin(t *testing.T) {
	v, ok := SignJoin([]term.Value{SignBot, SignPos})
	if !ok || !term.Equal(v, SignPos) {
		t.Fatalf("join(Bot, Pos) = %v, %v; want Pos", v, ok)
	}
	v, ok = SignJoin([]term.Value{SignPos, SignPos})
	if !ok || !term.Equal(v, SignPos) {
		t.Fatalf("join(Pos, Pos) = %v, %v; want Pos", v, ok)
	}
	v, ok = SignJoin([]term.Value{SignPos, SignNeg})
	if !ok || !term.Equal(v, SignTop) {
		t.Fatalf("join(Pos, Neg) = %v, %v; want Top", v, ok)
	}
}
