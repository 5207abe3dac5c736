// Package assume answers assumption queries such as "is x positive?" from a
// context of predicate facts, symbol declarations and numeric values.
package assume

import (
	"errors"
	"fmt"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/cs-au-dk/ineq/algebra/expr"
)

// Predicate names an assumption predicate, written Q.<name>(e).
type Predicate string

const (
	Real        Predicate = "real"
	Positive    Predicate = "positive"
	Negative    Predicate = "negative"
	Nonnegative Predicate = "nonnegative"
	Nonpositive Predicate = "nonpositive"
	Zero        Predicate = "zero"
	Nonzero     Predicate = "nonzero"
	Integer     Predicate = "integer"
	Rational    Predicate = "rational"
	Complex     Predicate = "complex"
)

var predicates = []Predicate{
	Real, Positive, Negative, Nonnegative, Nonpositive,
	Zero, Nonzero, Integer, Rational, Complex,
}

// Valid checks whether p is a known predicate.
func (p Predicate) Valid() bool {
	for _, q := range predicates {
		if p == q {
			return true
		}
	}
	return false
}

// Of applies the predicate to e, e.g. Real.Of(x) is Q.real(x).
func (p Predicate) Of(e *expr.Expr) *expr.Expr {
	return expr.Pred(string(p), e)
}

// Truth is the three-valued answer of a query.
type Truth int8

const (
	Unknown Truth = iota
	True
	False
)

func (t Truth) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	}
	return "unknown"
}

func truthOf(b bool) Truth {
	if b {
		return True
	}
	return False
}

var (
	ErrNotPredicate     = errors.New("not an assumption predicate")
	ErrUnknownPredicate = errors.New("unknown assumption predicate")
)

type fact struct {
	pred    Predicate
	subject *expr.Expr
	holds   bool
}

func (f fact) Expr() *expr.Expr {
	e := f.pred.Of(f.subject)
	if !f.holds {
		return expr.Not(e)
	}
	return e
}

// Context is an immutable conjunction of predicate facts.
type Context struct {
	facts *immutable.List[fact]
}

// Empty is the context without facts.
func Empty() Context {
	return Context{immutable.NewList[fact]()}
}

// Of builds a context from predicate expressions. See With.
func Of(preds ...*expr.Expr) (Context, error) {
	ctx := Empty()
	for _, p := range preds {
		var err error
		if ctx, err = ctx.With(p); err != nil {
			return ctx, err
		}
	}
	return ctx, nil
}

// FromExpr builds a context from a predicate, a negated predicate, a
// conjunction of those, or the constant true.
func FromExpr(e *expr.Expr) (Context, error) {
	return Empty().With(e)
}

// With extends the context by the fact e.
func (c Context) With(e *expr.Expr) (Context, error) {
	switch e.Kind() {
	case expr.KindBool:
		if e.Truth() {
			return c, nil
		}
	case expr.KindAnd:
		var err error
		for _, a := range e.Args() {
			if c, err = c.With(a); err != nil {
				return c, err
			}
		}
		return c, nil
	case expr.KindPredicate:
		return c.add(e, true)
	case expr.KindNot:
		if inner := e.Arg(0); inner.Kind() == expr.KindPredicate {
			return c.add(inner, false)
		}
	}
	return c, fmt.Errorf("%w: %s", ErrNotPredicate, e)
}

func (c Context) add(e *expr.Expr, holds bool) (Context, error) {
	p := Predicate(e.Name())
	if !p.Valid() {
		return c, fmt.Errorf("%w: Q.%s", ErrUnknownPredicate, e.Name())
	}
	return Context{c.list().Append(fact{p, e.Arg(0), holds})}, nil
}

func (c Context) list() *immutable.List[fact] {
	if c.facts == nil {
		return immutable.NewList[fact]()
	}
	return c.facts
}

// And is the conjunction of two contexts.
func (c Context) And(o Context) Context {
	facts := c.list()
	for it := o.list().Iterator(); !it.Done(); {
		_, f := it.Next()
		facts = facts.Append(f)
	}
	return Context{facts}
}

// Len is the number of facts.
func (c Context) Len() int {
	return c.list().Len()
}

// Expr is the conjunction of all facts.
func (c Context) Expr() *expr.Expr {
	var args []*expr.Expr
	for it := c.list().Iterator(); !it.Done(); {
		_, f := it.Next()
		args = append(args, f.Expr())
	}
	return expr.And(args...)
}

func (c Context) String() string {
	var strs []string
	for it := c.list().Iterator(); !it.Done(); {
		_, f := it.Next()
		strs = append(strs, f.Expr().String())
	}
	return "{ " + strings.Join(strs, ", ") + " }"
}

// sameSubject compares fact subjects. Symbols match by name, so that a fact
// about x applies regardless of how x was declared.
func sameSubject(a, b *expr.Expr) bool {
	if a.Kind() == expr.KindSymbol && b.Kind() == expr.KindSymbol {
		return a.Name() == b.Name()
	}
	return a.Equal(b)
}
