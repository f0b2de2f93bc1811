package term

import (
	"fmt"
	"strings"

	"github.com/benbjohnson/immutable"
)

// Term is an open value: a variable, a ground constant, or a constructor
// applied to further terms.
type Term interface {
	term()
	fmt.Stringer
}

type (
	// Variable names a substitution slot.
	Variable string
	// Constant wraps an already-ground value.
	Constant struct{ Value Value }
	// Constructor is an open constructor application.
	Constructor struct {
		Name string
		Args []Term
	}
)

func (Variable) term()    {}
func (Constant) term()    {}
func (Constructor) term() {}

func (v Variable) String() string { return string(v) }
func (c Constant) String() string { return c.Value.String() }
func (c Constructor) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Name + "(" + strings.Join(parts, ", ") + ")"
}

// Subst is an immutable persistent map from variable name to bound value.
// It is copy-on-write, so extending a substitution along one branch of the
// evaluator never disturbs substitutions still held by sibling branches.
type Subst struct {
	m *immutable.Map[string, Value]
}

// EmptySubst is the substitution that binds nothing.
func EmptySubst() Subst {
	return Subst{m: immutable.NewMap[string, Value](nil)}
}

// Lookup returns the value bound to name, if any.
func (s Subst) Lookup(name string) (Value, bool) {
	if s.m == nil {
		return nil, false
	}
	return s.m.Get(name)
}

// Bind returns a new substitution extending s with name bound to v.
func (s Subst) Bind(name string, v Value) Subst {
	if s.m == nil {
		s = EmptySubst()
	}
	return Subst{m: s.m.Set(name, v)}
}

// Len returns the number of bound variables.
func (s Subst) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Iterator walks over the (name, value) bindings.
func (s Subst) Iterator() *immutable.MapIterator[string, Value] {
	if s.m == nil {
		s = EmptySubst()
	}
	return s.m.Iterator()
}

// Substitute applies s to t, replacing bound variables with their values
// and leaving unbound variables and constants untouched. It is total: it
// never fails, it just may return a term that is still open.
func Substitute(t Term, s Subst) Term {
	switch tt := t.(type) {
	case Variable:
		if v, ok := s.Lookup(string(tt)); ok {
			return Constant{Value: v}
		}
		return tt
	case Constant:
		return tt
	case Constructor:
		args := make([]Term, len(tt.Args))
		for i, a := range tt.Args {
			args[i] = Substitute(a, s)
		}
		return Constructor{Name: tt.Name, Args: args}
	default:
		return t
	}
}

// IsGround reports whether t contains no unbound variables under s.
func IsGround(t Term, s Subst) bool {
	switch tt := t.(type) {
	case Variable:
		_, ok := s.Lookup(string(tt))
		return ok
	case Constant:
		return true
	case Constructor:
		for _, a := range tt.Args {
			if !IsGround(a, s) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Groundify evaluates t to a Value under s, failing (returning false)
// if t is not fully ground.
func Groundify(t Term, s Subst) (Value, bool) {
	switch tt := t.(type) {
	case Variable:
		return s.Lookup(string(tt))
	case Constant:
		return tt.Value, true
	case Constructor:
		args := make([]Value, len(tt.Args))
		for i, a := range tt.Args {
			v, ok := Groundify(a, s)
			if !ok {
				return nil, false
			}
			args[i] = v
		}
		return Ctor{Name: tt.Name, Args: args}, true
	default:
		return nil, false
	}
}

// FromValue lifts a ground value into an already-ground term.
func FromValue(v Value) Term { return Constant{Value: v} }
