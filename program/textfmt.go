package program

import (
	"fmt"
	"strings"

	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/term"
	"gopkg.in/yaml.v2"
)

// TextProgram is the YAML-friendly encoding of an already-elaborated
// Program: this is deliberately not a surface language, just a flat,
// already-elaborated file format so examples and golden tests can be
// expressed as files rather than Go literals. Clause bodies are
// `head :- body1, body2, ...` strings, read by the small recursive-descent
// term reader in parseterm.go. Code functions still have to be registered
// in Go and merged in by the caller after ParseText, since YAML cannot
// carry a function value.
type TextProgram struct {
	Symbols []struct {
		Name           string `yaml:"name"`
		Arity          int    `yaml:"arity"`
		Interpretation string `yaml:"interpretation"`
		KeyArity       int    `yaml:"key_arity,omitempty"`
		LeqSymbol      string `yaml:"leq_symbol,omitempty"`
		JoinSymbol     string `yaml:"join_symbol,omitempty"`
		Bottom         string `yaml:"bottom,omitempty"`
	} `yaml:"symbols"`
	Clauses []string `yaml:"clauses"`
	Facts   []struct {
		Symbol string   `yaml:"symbol"`
		Args   []string `yaml:"args"`
	} `yaml:"facts"`
}

// ParseText decodes a YAML-encoded TextProgram into a Program ready for
// Load, once Code funcs implementing any declared Code interpretation are
// merged into the returned value's Code map.
func ParseText(data []byte) (Program, error) {
	var tp TextProgram
	if err := yaml.Unmarshal(data, &tp); err != nil {
		return Program{}, fmt.Errorf("decoding program yaml: %w", err)
	}

	p := Program{Code: map[string]CodeFunc{}}

	for _, s := range tp.Symbols {
		interp, err := parseInterpretation(s.Interpretation)
		if err != nil {
			return Program{}, fmt.Errorf("symbol %s: %w", s.Name, err)
		}
		decl := SymbolDecl{
			Name:           s.Name,
			Arity:          s.Arity,
			Interpretation: interp,
			KeyArity:       s.KeyArity,
			LeqSymbol:      s.LeqSymbol,
			JoinSymbol:     s.JoinSymbol,
		}
		if s.Bottom != "" {
			v, err := parseGroundTerm(s.Bottom)
			if err != nil {
				return Program{}, fmt.Errorf("symbol %s bottom: %w", s.Name, err)
			}
			decl.Bottom = v
		}
		p.Symbols = append(p.Symbols, decl)
	}

	for _, c := range tp.Clauses {
		cd, err := parseClauseText(c)
		if err != nil {
			return Program{}, fmt.Errorf("parsing clause %q: %w", c, err)
		}
		p.Clauses = append(p.Clauses, cd)
	}

	for _, f := range tp.Facts {
		args := make([]term.Value, len(f.Args))
		for i, a := range f.Args {
			v, err := parseGroundTerm(a)
			if err != nil {
				return Program{}, fmt.Errorf("fact over %s: %w", f.Symbol, err)
			}
			args[i] = v
		}
		p.Facts = append(p.Facts, FactDecl{Symbol: f.Symbol, Args: args})
	}

	return p, nil
}

func parseInterpretation(s string) (symtab.Interpretation, error) {
	switch s {
	case "relation":
		return symtab.Relation, nil
	case "leq":
		return symtab.LatticeLeq, nil
	case "join":
		return symtab.LatticeJoin, nil
	case "partial-function":
		return symtab.PartialFunction, nil
	default:
		return 0, fmt.Errorf("unknown interpretation %q", s)
	}
}

// parseClauseText reads a "head :- body1, body2" clause; a clause with no
// ":-" is a fact-shaped clause with an empty body.
func parseClauseText(s string) (ClauseDecl, error) {
	parts := strings.SplitN(s, ":-", 2)

	hp := newTermParser(parts[0])
	head, err := parseAtomText(hp)
	if err != nil {
		return ClauseDecl{}, err
	}
	if !hp.atEnd() {
		return ClauseDecl{}, fmt.Errorf("unexpected trailing input after head in %q", parts[0])
	}

	var body []AtomDecl
	if len(parts) == 2 {
		bp := newTermParser(parts[1])
		for {
			atom, err := parseAtomText(bp)
			if err != nil {
				return ClauseDecl{}, err
			}
			body = append(body, atom)
			if bp.peek() == ',' {
				bp.consume(',')
				continue
			}
			break
		}
		if !bp.atEnd() {
			return ClauseDecl{}, fmt.Errorf("unexpected trailing input in body %q", parts[1])
		}
	}

	return ClauseDecl{Head: head, Body: body}, nil
}
