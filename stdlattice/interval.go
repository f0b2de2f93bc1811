package stdlattice

import "github.com/cs-au-dk/fixlog/term"

// IntervalBot and IntervalTop are the sentinel elements of the bounded
// interval lattice; ordinary elements are Interval(lo, hi) with lo <= hi.
var (
	IntervalBot = term.Ctor{Name: "Bot"}
	IntervalTop = term.Ctor{Name: "Top"}
)

// Interval constructs an ordinary interval element [lo, hi].
func Interval(lo, hi int64) term.Ctor {
	return term.Ctor{Name: "Interval", Args: []term.Value{term.I64(lo), term.I64(hi)}}
}

func intervalBounds(v term.Value) (lo, hi int64, ok bool) {
	c, isCtor := v.(term.Ctor)
	if !isCtor || c.Name != "Interval" || len(c.Args) != 2 {
		return 0, 0, false
	}
	l, ok1 := c.Args[0].(term.I64)
	h, ok2 := c.Args[1].(term.I64)
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	return int64(l), int64(h), true
}

// IntervalLeq is the Code function for the interval lattice's leq
// predicate: Bot is least, Top is greatest, and two ordinary intervals
// compare by inclusion.
func IntervalLeq(inputs []term.Value) (term.Value, bool) {
	a, b := inputs[0], inputs[1]
	if term.Equal(a, IntervalBot) || term.Equal(b, IntervalTop) {
		return term.Bool(true), true
	}
	if term.Equal(a, IntervalTop) || term.Equal(b, IntervalBot) {
		return term.Bool(false), true
	}
	al, ah, ok1 := intervalBounds(a)
	bl, bh, ok2 := intervalBounds(b)
	if !ok1 || !ok2 {
		return nil, false
	}
	return term.Bool(bl <= al && ah <= bh), true
}

// IntervalJoin is the Code function for the interval lattice's join
// predicate: the smallest interval enclosing both operands, widening to
// Top only when an operand already is Top.
func IntervalJoin(inputs []term.Value) (term.Value, bool) {
	a, b := inputs[0], inputs[1]
	if term.Equal(a, IntervalBot) {
		return b, true
	}
	if term.Equal(b, IntervalBot) {
		return a, true
	}
	if term.Equal(a, IntervalTop) || term.Equal(b, IntervalTop) {
		return IntervalTop, true
	}
	al, ah, ok1 := intervalBounds(a)
	bl, bh, ok2 := intervalBounds(b)
	if !ok1 || !ok2 {
		return nil, false
	}
	lo, hi := al, ah
	if bl < lo {
		lo = bl
	}
	if bh > hi {
		hi = bh
	}
	return Interval(lo, hi), true
}
