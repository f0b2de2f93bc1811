// Package clauses represents Horn clauses over predicate symbols and
// indexes them by the symbols they mention, so the evaluator can find every
// clause a newly derived fact might drive without scanning the whole
// program.
package clauses

import (
	"fmt"
	"strings"

	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/term"
)

// Atom is a predicate applied to a (possibly open) argument list.
type Atom struct {
	Symbol *symtab.Symbol
	Args   []term.Term
}

func (a Atom) String() string {
	if len(a.Args) == 0 {
		return a.Symbol.Name
	}
	parts := make([]string, len(a.Args))
	for i, t := range a.Args {
		parts[i] = t.String()
	}
	return fmt.Sprintf("%s(%s)", a.Symbol.Name, strings.Join(parts, ", "))
}

// Clause is a Horn clause: a head atom implied by a conjunction of body
// atoms. Range restriction (every head variable occurs in the body) is
// validated by program.Load before a Clause is admitted into an Index.
type Clause struct {
	Head Atom
	Body []Atom
}

func (c Clause) String() string {
	if len(c.Body) == 0 {
		return c.Head.String() + "."
	}
	parts := make([]string, len(c.Body))
	for i, a := range c.Body {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s :- %s.", c.Head, strings.Join(parts, ", "))
}

// HeadVariables returns the set of distinct variable names occurring in the
// clause's head.
func (c Clause) HeadVariables() map[string]struct{} {
	vars := map[string]struct{}{}
	for _, t := range c.Head.Args {
		collectVariables(t, vars)
	}
	return vars
}

// BodyVariables returns the set of distinct variable names occurring
// anywhere in the clause's body.
func (c Clause) BodyVariables() map[string]struct{} {
	vars := map[string]struct{}{}
	for _, atom := range c.Body {
		for _, t := range atom.Args {
			collectVariables(t, vars)
		}
	}
	return vars
}

// IsRangeRestricted reports whether every head variable also occurs in the
// body, per spec.
func (c Clause) IsRangeRestricted() bool {
	body := c.BodyVariables()
	for v := range c.HeadVariables() {
		if _, ok := body[v]; !ok {
			return false
		}
	}
	return true
}

func collectVariables(t term.Term, into map[string]struct{}) {
	switch tt := t.(type) {
	case term.Variable:
		into[string(tt)] = struct{}{}
	case term.Constructor:
		for _, a := range tt.Args {
			collectVariables(a, into)
		}
	}
}
