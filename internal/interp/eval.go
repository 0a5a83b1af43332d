package interp

import (
	"fmt"

	"github.com/you-not-fish/polyc/internal/syntax"
)

// env binds the formal parameters of one polynomial call. It shadows
// memory while that call's body is evaluated.
type env map[string]int

// call evaluates a polynomial call made from a statement. Arguments are
// evaluated left to right against memory; nested calls first.
func (m *Machine) call(c *syntax.CallExpr) (int, error) {
	e, ok := m.polys.Lookup(c.Fun.Value)
	if !ok {
		return 0, &Fault{Pos: c.Pos(), Msg: "call of undeclared polynomial " + c.Fun.Value}
	}
	if len(c.Args) != e.Arity() {
		return 0, &Fault{Pos: c.Pos(), Msg: fmt.Sprintf("%s takes %d arguments, called with %d", e.Name, e.Arity(), len(c.Args))}
	}

	params := make(env, len(c.Args))
	for i, a := range c.Args {
		v, err := m.arg(a)
		if err != nil {
			return 0, err
		}
		params[e.Params[i]] = v
	}
	return m.termList(e.Decl.Body, params)
}

func (m *Machine) arg(a syntax.Arg) (int, error) {
	switch a := a.(type) {
	case *syntax.NumberLit:
		return a.Value, nil
	case *syntax.Name:
		return m.variable(a, nil), nil
	case *syntax.CallExpr:
		return m.call(a)
	}
	return 0, &Fault{Pos: a.Pos(), Msg: fmt.Sprintf("unexpected argument %T", a)}
}

// termList folds the terms left to right. The first term's operator is
// NONE or a leading sign.
func (m *Machine) termList(l *syntax.TermList, params env) (int, error) {
	sum := 0
	for _, t := range l.Terms {
		v, err := m.term(t, params)
		if err != nil {
			return 0, err
		}
		if t.Op == syntax.Sub {
			sum -= v
		} else {
			sum += v
		}
	}
	return sum, nil
}

func (m *Machine) term(t *syntax.Term, params env) (int, error) {
	prod := t.Coef
	for _, mono := range t.Monos {
		v, err := m.monomial(mono, params)
		if err != nil {
			return 0, err
		}
		prod *= v
	}
	return prod, nil
}

func (m *Machine) monomial(mono *syntax.Monomial, params env) (int, error) {
	base, err := m.primary(mono.Base, params)
	if err != nil {
		return 0, err
	}
	return pow(base, mono.Exp), nil
}

// primary resolves a variable against the call's parameters, then memory,
// then 0. A parenthesized term list shares the caller's parameters.
func (m *Machine) primary(p syntax.Primary, params env) (int, error) {
	switch p := p.(type) {
	case *syntax.Name:
		return m.variable(p, params), nil
	case *syntax.ParenExpr:
		return m.termList(p.X, params)
	}
	return 0, &Fault{Pos: p.Pos(), Msg: fmt.Sprintf("unexpected primary %T", p)}
}

func (m *Machine) variable(n *syntax.Name, params env) int {
	if v, ok := params[n.Value]; ok {
		return v
	}
	if slot, ok := m.locs.Lookup(n.Value); ok {
		return m.mem[slot]
	}
	return 0
}

// pow computes base^exp by repeated multiplication with native wraparound.
func pow(base, exp int) int {
	r := 1
	for i := 0; i < exp; i++ {
		r *= base
	}
	return r
}
