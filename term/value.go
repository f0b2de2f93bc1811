// Package term implements the ground value and open term representation:
// the algebraic values stored in the database, the open terms that appear
// in clause heads and bodies, and substitutions between the two.
package term

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/cs-au-dk/fixlog/utils"
)

// Value is a ground, algebraic value. It is a closed sum type dispatched by
// type switch; the concrete types below are its only inhabitants.
type Value interface {
	value()
	fmt.Stringer
}

type (
	Unit  struct{}
	Bool  bool
	I8    int8
	I16   int16
	I32   int32
	I64   int64
	BigInt struct{ *big.Int }
	Str   string
	// Tuple is an anonymous fixed-arity product of values.
	Tuple []Value
	// Ctor is a named constructor application.
	Ctor struct {
		Name string
		Args []Value
	}
)

func (Unit) value()    {}
func (Bool) value()    {}
func (I8) value()      {}
func (I16) value()     {}
func (I32) value()     {}
func (I64) value()     {}
func (BigInt) value()  {}
func (Str) value()     {}
func (Tuple) value()   {}
func (Ctor) value()    {}

func (Unit) String() string { return "()" }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (v I8) String() string     { return fmt.Sprintf("%d", int8(v)) }
func (v I16) String() string    { return fmt.Sprintf("%d", int16(v)) }
func (v I32) String() string    { return fmt.Sprintf("%d", int32(v)) }
func (v I64) String() string    { return fmt.Sprintf("%d", int64(v)) }
func (v BigInt) String() string { return v.Int.String() }
func (v Str) String() string    { return fmt.Sprintf("%q", string(v)) }

func (t Tuple) String() string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (c Ctor) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	parts := make([]string, len(c.Args))
	for i, v := range c.Args {
		parts[i] = v.String()
	}
	return c.Name + "(" + strings.Join(parts, ", ") + ")"
}

// Equal reports whether two values are structurally equal. Integer widths
// are distinct types and never compare equal across widths.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Unit:
		_, ok := b.(Unit)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case I8:
		bv, ok := b.(I8)
		return ok && av == bv
	case I16:
		bv, ok := b.(I16)
		return ok && av == bv
	case I32:
		bv, ok := b.(I32)
		return ok && av == bv
	case I64:
		bv, ok := b.(I64)
		return ok && av == bv
	case BigInt:
		bv, ok := b.(BigInt)
		return ok && av.Int.Cmp(bv.Int) == 0
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	case Tuple:
		bv, ok := b.(Tuple)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Ctor:
		bv, ok := b.(Ctor)
		if !ok || av.Name != bv.Name || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !Equal(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Hash computes a structural hash of v, stable across calls, used for
// fact deduplication and as the key hasher for lattice-maps.
func Hash(v Value) uint32 {
	switch vv := v.(type) {
	case Unit:
		return 0x1
	case Bool:
		if vv {
			return 0x2
		}
		return 0x3
	case I8:
		return utils.HashCombine(0x4, uint32(vv))
	case I16:
		return utils.HashCombine(0x5, uint32(vv))
	case I32:
		return utils.HashCombine(0x6, uint32(vv))
	case I64:
		return utils.HashCombine(0x7, uint32(vv), uint32(vv>>32))
	case BigInt:
		h := uint32(0x8)
		for _, w := range vv.Int.Bits() {
			h = utils.HashCombine(h, uint32(w))
		}
		return h
	case Str:
		h := uint32(0x9)
		for _, c := range []byte(vv) {
			h = utils.HashCombine(h, uint32(c))
		}
		return h
	case Tuple:
		h := uint32(0xA)
		for _, e := range vv {
			h = utils.HashCombine(h, Hash(e))
		}
		return h
	case Ctor:
		h := utils.HashCombine(0xB, hashString(vv.Name))
		for _, e := range vv.Args {
			h = utils.HashCombine(h, Hash(e))
		}
		return h
	default:
		return 0
	}
}

func hashString(s string) uint32 {
	h := uint32(0)
	for _, c := range []byte(s) {
		h = utils.HashCombine(h, uint32(c))
	}
	return h
}

// valueHasher implements immutable.Hasher[Value] via the package-level
// Hash/Equal functions, so Value can key immutable.Map/Set directly.
type valueHasher struct{}

func (valueHasher) Hash(v Value) uint32     { return Hash(v) }
func (valueHasher) Equal(a, b Value) bool   { return Equal(a, b) }

// ValueHasher is the canonical immutable.Hasher for Value-keyed collections.
func ValueHasher() utils.Hasher[Value] { return valueHasher{} }

// Height is the maximum constructor nesting depth of v (0 for atomic
// values).
func Height(v Value) int {
	switch vv := v.(type) {
	case Tuple:
		max := 0
		for _, e := range vv {
			if h := Height(e); h > max {
				max = h
			}
		}
		return max + 1
	case Ctor:
		max := 0
		for _, e := range vv.Args {
			if h := Height(e); h > max {
				max = h
			}
		}
		return max + 1
	default:
		return 0
	}
}

// Size is the total number of value nodes in v, counting v itself.
func Size(v Value) int {
	switch vv := v.(type) {
	case Tuple:
		n := 1
		for _, e := range vv {
			n += Size(e)
		}
		return n
	case Ctor:
		n := 1
		for _, e := range vv.Args {
			n += Size(e)
		}
		return n
	default:
		return 1
	}
}
