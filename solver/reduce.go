package solver

import (
	"fmt"

	"github.com/cs-au-dk/ineq/algebra/assume"
	"github.com/cs-au-dk/ineq/algebra/expr"
	"github.com/cs-au-dk/ineq/algebra/poly"
	L "github.com/cs-au-dk/ineq/analysis/lattice"
	"github.com/cs-au-dk/ineq/utils"
	"github.com/pkg/errors"
)

// Inequality is the relation Expr rel 0 before conversion to a polynomial.
type Inequality struct {
	Expr *expr.Expr
	Rel  expr.Relation
}

// FromExpr normalizes e to an inequality against 0. Relations lhs op rhs
// become lhs - rhs op 0, and any other expression e becomes e == 0.
// Boolean constants become trivially true or false equations.
func FromExpr(e *expr.Expr) Inequality {
	switch {
	case e.Kind() == expr.KindBool && e.Truth():
		return Inequality{expr.Int(0), expr.EQ}
	case e.Kind() == expr.KindBool:
		return Inequality{expr.Int(1), expr.EQ}
	case e.IsRelational():
		return Inequality{expr.Sub(e.Lhs(), e.Rhs()), e.Op()}
	}
	return Inequality{e, expr.EQ}
}

// Groups normalizes every expression with FromExpr.
func Groups(groups ...[]*expr.Expr) [][]Inequality {
	res := make([][]Inequality, 0, len(groups))
	for _, g := range groups {
		ineqs := make([]Inequality, 0, len(g))
		for _, e := range g {
			ineqs = append(ineqs, FromExpr(e))
		}
		res = append(res, ineqs)
	}
	return res
}

func (i Inequality) String() string {
	return fmt.Sprintf("%s %s 0", i.Expr, i.Rel)
}

// Solution of a reduction. The formula is only set for relational
// reductions.
type Solution struct {
	Set     L.IntervalSet
	Formula *expr.Expr
}

func (s Solution) String() string {
	if s.Formula != nil {
		return s.Formula.String()
	}
	return s.Set.String()
}

// ReducePoly reduces a disjunction of conjunctive groups of polynomial
// inequalities in gen.
//
// Polynomials with inexact coefficients are solved over their exact
// counterparts and the endpoints of the solution are numerically evaluated
// afterwards.
func ReducePoly(groups [][]Inequality, gen *expr.Expr, ctx assume.Context, relational bool) (Solution, error) {
	exact := true

	var sys System
	for _, ineqs := range groups {
		var group Group
		for _, ineq := range ineqs {
			if !ineq.Rel.Valid() {
				return Solution{}, errors.Wrapf(ErrInvalidRelation, "%s", ineq)
			}

			p, err := poly.New(ineq.Expr, gen)
			if err != nil {
				return Solution{}, errors.Wrapf(err, "reducing %s", ineq)
			}
			if !p.IsExact() {
				p, exact = p.ToExact(), false
			}
			if d := p.Domain(); d != poly.ZZ && d != poly.QQ {
				return Solution{}, errors.Wrapf(ErrUnsupportedDomain, "%s has domain %s", p, d)
			}

			group = append(group, Entry{p, ineq.Rel})
		}
		if len(group) > 0 {
			sys = append(sys, group)
		}
	}

	set := L.EmptySet()
	if len(groups) > 0 {
		set = L.Reals()
	}
	if len(sys) > 0 {
		sol, err := SolveSystem(sys)
		if err != nil {
			return Solution{}, err
		}
		set = set.Intersect(sol)
	}
	utils.VerbosePrint("%d group(s) in %s reduced to %s\n", len(sys), gen, set)

	if !exact {
		set = set.Evalf()
	}

	if !relational {
		return Solution{Set: set}, nil
	}
	return Solution{Set: set, Formula: AsRelational(set, gen, ctx)}, nil
}

// AsRelational converts a solution set in gen to a formula. Unless gen is
// known to be real, the formula constrains the real part of gen and
// requires the imaginary part to vanish.
func AsRelational(set L.IntervalSet, gen *expr.Expr, ctx assume.Context) *expr.Expr {
	if assume.Ask(assume.Real, gen, ctx) != assume.True {
		return expr.And(
			set.AsRelational(expr.Re(gen)),
			expr.Eq(expr.Im(gen), expr.Int(0)),
		)
	}
	return set.AsRelational(gen)
}
