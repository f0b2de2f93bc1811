package stdlattice

import (
	"testing"

	"github.com/cs-au-dk/fixlog/term"
)

func TestConstLeq(t *testing.T) {
	v, ok := ConstLeq([]term.Value{ConstBot, Const(5)})
	if !ok || !bool(v.(term.Bool)) {
		t.Fatal("Bot should be leq any constant")
	}
	v, ok = ConstLeq([]term.Value{Const(5), Const(5)})
	if !ok || !bool(v.(term.Bool)) {
		t.Fatal("a constant should be leq itself")
	}
	v, ok = ConstLeq([]term.Value{Const(5), Const(6)})
	if !ok || bool(v.(term.Bool)) {
		t.Fatal("distinct constants are incomparable")
	}
}

func TestConstJoin(t *testing.T) {
	v, ok := ConstJoin([]term.Value{Const(5), Const(5)})
	if !ok || !term.Equal(v, Const(5)) {
		t.Fatalf("join of equal constants should stay put, got %v, %v", v, ok)
	}
	v, ok = ConstJoin([]term.Value{Const(5), Const(6)})
	if !ok || !term.Equal(v, ConstTop) {
		t.Fatalf("join of disagreeing constants should collapse to Top, got %v, %v", v, ok)
	}
	v, ok = ConstJoin([]term.Value{ConstBot, Const(5)})
	if !ok || !term.Equal(v, Const(5)) {
		t.Fatalf("join(Bot, 5) should be 5, got %v, %v", v, ok)
	}
}
