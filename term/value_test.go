package term

import (
	"math/big"
	"testing"
)

func TestEqualDistinguishesWidths(t *testing.T) {
	if Equal(I32(1), I64(1)) {
		t.Fatal("values of different integer widths must never compare equal")
	}
	if !Equal(I64(1), I64(1)) {
		t.Fatal("equal I64 values should compare equal")
	}
}

func TestEqualBigInt(t *testing.T) {
	a := BigInt{big.NewInt(1_000_000_000_000)}
	b := BigInt{big.NewInt(1_000_000_000_000)}
	c := BigInt{big.NewInt(1)}
	if !Equal(a, b) {
		t.Fatal("equal BigInt values should compare equal")
	}
	if Equal(a, c) {
		t.Fatal("unequal BigInt values should not compare equal")
	}
}

func TestEqualCtorNameAndArity(t *testing.T) {
	a := Ctor{Name: "Pair", Args: []Value{I64(1), I64(2)}}
	b := Ctor{Name: "Pair", Args: []Value{I64(1), I64(2)}}
	c := Ctor{Name: "Pair", Args: []Value{I64(1), I64(3)}}
	d := Ctor{Name: "Other", Args: []Value{I64(1), I64(2)}}
	if !Equal(a, b) {
		t.Fatal("structurally identical constructors should be equal")
	}
	if Equal(a, c) {
		t.Fatal("differing arguments should not be equal")
	}
	if Equal(a, d) {
		t.Fatal("differing constructor names should not be equal")
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	a := Ctor{Name: "Pair", Args: []Value{I64(1), Str("x")}}
	b := Ctor{Name: "Pair", Args: []Value{I64(1), Str("x")}}
	if Hash(a) != Hash(b) {
		t.Fatal("equal values must hash equal")
	}
}

func TestHeightAndSize(t *testing.T) {
	leaf := I64(1)
	if Height(leaf) != 0 || Size(leaf) != 1 {
		t.Fatalf("leaf height/size: got %d/%d", Height(leaf), Size(leaf))
	}

	nested := Ctor{Name: "Pair", Args: []Value{
		Ctor{Name: "Pair", Args: []Value{I64(1), I64(2)}},
		I64(3),
	}}
	if Height(nested) != 2 {
		t.Fatalf("got height %d, want 2", Height(nested))
	}
	if Size(nested) != 5 {
		t.Fatalf("got size %d, want 5", Size(nested))
	}
}

func TestValueHasherMatchesEqual(t *testing.T) {
	h := ValueHasher()
	a := Tuple{I64(1), Str("a")}
	b := Tuple{I64(1), Str("a")}
	if !h.Equal(a, b) {
		t.Fatal("ValueHasher.Equal should agree with Equal")
	}
	if h.Hash(a) != h.Hash(b) {
		t.Fatal("ValueHasher.Hash should agree for equal values")
	}
}
