package solver

import (
	"github.com/pkg/errors"

	"github.com/cs-au-dk/ineq/algebra/assume"
	"github.com/cs-au-dk/ineq/algebra/expr"
	"github.com/cs-au-dk/ineq/algebra/poly"
)

// isolateLinear solves a single ordering relation that is linear in x by
// isolating x: a*x + b rel 0 becomes x rel -b/a, or x rel' -b/a with the
// relation reversed for negative a. The constant term b may contain other
// symbols.
//
// A nil result means the relation is not linear in x. ErrDegenerateLinear
// is returned when the sign of a can not be decided under ctx.
func isolateLinear(rel *expr.Expr, x *expr.Expr, ctx assume.Context) (*expr.Expr, error) {
	if !rel.IsRelational() || !rel.Op().IsOrdering() {
		return nil, nil
	}

	a, b, err := poly.Linear(expr.Sub(rel.Lhs(), rel.Rhs()), x)
	if err != nil {
		return nil, nil
	}

	op := rel.Op()
	switch sign(a, ctx) {
	case 1:
	case -1:
		op = op.Reversed()
	default:
		return nil, errors.Wrapf(ErrDegenerateLinear, "sign of %s in %s", a, rel)
	}

	return expr.Rel(x, op, expr.Quo(expr.Neg(b), a)), nil
}

// sign decides the sign of e under ctx, or returns 0 if it is unknown or e
// is zero.
func sign(e *expr.Expr, ctx assume.Context) int {
	switch {
	case e.IsNumber():
		return e.Sign()
	case assume.Ask(assume.Positive, e, ctx) == assume.True:
		return 1
	case assume.Ask(assume.Negative, e, ctx) == assume.True:
		return -1
	}
	return 0
}
