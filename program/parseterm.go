package program

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/cs-au-dk/fixlog/term"
)

// termParser is a small recursive-descent reader for the flat term syntax
// used by textfmt.go's clause and fact strings: identifiers starting with
// an uppercase letter or underscore are variables, everything else is a
// nullary or applied constructor, with integer and quoted-string literals
// as the two atomic value forms.
type termParser struct {
	s   string
	pos int
}

func newTermParser(s string) *termParser { return &termParser{s: s} }

func (p *termParser) skipSpace() {
	for p.pos < len(p.s) && unicode.IsSpace(rune(p.s[p.pos])) {
		p.pos++
	}
}

func (p *termParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

func (p *termParser) atEnd() bool {
	p.skipSpace()
	return p.pos >= len(p.s)
}

func (p *termParser) consume(c byte) error {
	p.skipSpace()
	if p.pos >= len(p.s) || p.s[p.pos] != c {
		return fmt.Errorf("expected %q at position %d in %q", c, p.pos, p.s)
	}
	p.pos++
	return nil
}

func (p *termParser) ident() (string, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.s) && (unicode.IsLetter(rune(p.s[p.pos])) || unicode.IsDigit(rune(p.s[p.pos])) || p.s[p.pos] == '_') {
		p.pos++
	}
	if p.pos == start {
		return "", fmt.Errorf("expected identifier at position %d in %q", p.pos, p.s)
	}
	return p.s[start:p.pos], nil
}

func isVariableName(s string) bool {
	r := []rune(s)
	return len(r) > 0 && (unicode.IsUpper(r[0]) || r[0] == '_')
}

func (p *termParser) parseArgs() ([]term.Term, error) {
	if err := p.consume('('); err != nil {
		return nil, err
	}
	var args []term.Term
	if p.peek() != ')' {
		for {
			arg, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek() == ',' {
				p.consume(',')
				continue
			}
			break
		}
	}
	if err := p.consume(')'); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *termParser) parseTerm() (term.Term, error) {
	p.skipSpace()
	switch {
	case p.pos < len(p.s) && (p.s[p.pos] == '-' || unicode.IsDigit(rune(p.s[p.pos]))):
		start := p.pos
		p.pos++
		for p.pos < len(p.s) && unicode.IsDigit(rune(p.s[p.pos])) {
			p.pos++
		}
		n, err := strconv.ParseInt(p.s[start:p.pos], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer literal in %q: %w", p.s, err)
		}
		return term.Constant{Value: term.I64(n)}, nil

	case p.pos < len(p.s) && p.s[p.pos] == '"':
		p.pos++
		start := p.pos
		for p.pos < len(p.s) && p.s[p.pos] != '"' {
			p.pos++
		}
		if p.pos >= len(p.s) {
			return nil, fmt.Errorf("unterminated string literal in %q", p.s)
		}
		str := p.s[start:p.pos]
		p.pos++
		return term.Constant{Value: term.Str(str)}, nil
	}

	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	if isVariableName(name) {
		return term.Variable(name), nil
	}
	if p.peek() == '(' {
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return term.Constructor{Name: name, Args: args}, nil
	}
	switch name {
	case "true":
		return term.Constant{Value: term.Bool(true)}, nil
	case "false":
		return term.Constant{Value: term.Bool(false)}, nil
	}
	return term.Constant{Value: term.Ctor{Name: name}}, nil
}

// parseAtomText reads one predicate application: name(arg, arg, ...) or a
// bare name for a nullary atom.
func parseAtomText(p *termParser) (AtomDecl, error) {
	name, err := p.ident()
	if err != nil {
		return AtomDecl{}, err
	}
	var args []term.Term
	if p.peek() == '(' {
		args, err = p.parseArgs()
		if err != nil {
			return AtomDecl{}, err
		}
	}
	return AtomDecl{Symbol: name, Args: args}, nil
}

// parseGroundTerm reads a term string that must contain no variables,
// used for fact arguments and lattice bottoms.
func parseGroundTerm(s string) (term.Value, error) {
	p := newTermParser(s)
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, fmt.Errorf("unexpected trailing input in %q", s)
	}
	v, ok := term.Groundify(t, term.EmptySubst())
	if !ok {
		return nil, fmt.Errorf("term %q is not ground", s)
	}
	return v, nil
}
