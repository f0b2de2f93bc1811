package clauses

import (
	"testing"

	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/term"
)

func testSymbols() (edge, path *symtab.Symbol) {
	b := symtab.NewTable()
	edge = b.Intern("edge", 2, symtab.Relation, 0)
	path = b.Intern("path", 2, symtab.Relation, 0)
	b.Build()
	return
}

func TestIsRangeRestricted(t *testing.T) {
	edge, path := testSymbols()

	good := Clause{
		Head: Atom{Symbol: path, Args: []term.Term{term.Variable("X"), term.Variable("Y")}},
		Body: []Atom{{Symbol: edge, Args: []term.Term{term.Variable("X"), term.Variable("Y")}}},
	}
	if !good.IsRangeRestricted() {
		t.Fatal("clause whose head variables all occur in the body should be range restricted")
	}

	bad := Clause{
		Head: Atom{Symbol: path, Args: []term.Term{term.Variable("X"), term.Variable("Z")}},
		Body: []Atom{{Symbol: edge, Args: []term.Term{term.Variable("X"), term.Variable("Y")}}},
	}
	if bad.IsRangeRestricted() {
		t.Fatal("a head variable absent from the body must not be range restricted")
	}
}

func TestHeadAndBodyVariables(t *testing.T) {
	edge, path := testSymbols()
	c := Clause{
		Head: Atom{Symbol: path, Args: []term.Term{term.Variable("X"), term.Variable("Y")}},
		Body: []Atom{
			{Symbol: edge, Args: []term.Term{term.Variable("X"), term.Variable("Z")}},
			{Symbol: path, Args: []term.Term{term.Variable("Z"), term.Variable("Y")}},
		},
	}

	head := c.HeadVariables()
	if len(head) != 2 {
		t.Fatalf("got %d head variables, want 2", len(head))
	}

	body := c.BodyVariables()
	for _, v := range []string{"X", "Z", "Y"} {
		if _, ok := body[v]; !ok {
			t.Fatalf("expected %s in body variables", v)
		}
	}
}

func TestClauseString(t *testing.T) {
	edge, path := testSymbols()
	c := Clause{
		Head: Atom{Symbol: path, Args: []term.Term{term.Variable("X"), term.Variable("Y")}},
		Body: []Atom{{Symbol: edge, Args: []term.Term{term.Variable("X"), term.Variable("Y")}}},
	}
	want := "path(X, Y) :- edge(X, Y)."
	if got := c.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
