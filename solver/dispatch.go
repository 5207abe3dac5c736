package solver

import (
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/pkg/errors"

	"github.com/cs-au-dk/ineq/algebra/assume"
	"github.com/cs-au-dk/ineq/algebra/expr"
	"github.com/cs-au-dk/ineq/utils"
)

// bucket collects the inequalities of a single generator.
type bucket struct {
	gen  *expr.Expr
	poly []Inequality
	abs  []Inequality
}

type nameComparer struct{}

func (nameComparer) Compare(a, b string) int {
	return strings.Compare(a, b)
}

// Reduce reduces a conjunction of inequalities, each in a single variable,
// to a formula. Inequalities in the same variable are solved together, and
// the result is the conjunction of the solutions for every variable.
//
// Entries may also be boolean constants and assumption predicates, the
// latter of which are added to ctx. If there is exactly one inequality and
// one symbol to solve for, linear inequalities are solved by isolating the
// symbol, which allows other symbols to appear as parameters.
func Reduce(ineqs []*expr.Expr, ctx assume.Context, symbols []*expr.Expr) (*expr.Expr, error) {
	if len(ineqs) == 1 && len(symbols) == 1 {
		res, err := isolateLinear(ineqs[0], symbols[0], ctx)
		switch {
		case err == nil && res != nil:
			utils.VerbosePrint("Isolated %s in %s\n", symbols[0], ineqs[0])
			return res, nil
		case errors.Is(err, ErrDegenerateLinear):
			utils.VerbosePrint("%v, falling back\n", err)
		case err != nil:
			return nil, err
		}
	}

	var extra []*expr.Expr
	buckets := immutable.NewSortedMap[string, bucket](nameComparer{})

	for _, e := range ineqs {
		switch e.Kind() {
		case expr.KindBool:
			if !e.Truth() {
				return expr.False(), nil
			}
			continue
		case expr.KindPredicate:
			extra = append(extra, e)
			continue
		}

		ineq := FromExpr(e)
		syms := expr.FreeSymbols(ineq.Expr)
		switch {
		case len(syms) == 0:
			return expr.False(), nil
		case len(syms) > 1:
			return nil, errors.Wrapf(ErrMultivariateUnsupported, "%s", e)
		}
		gen := syms[0]

		b, ok := buckets.Get(gen.Name())
		if !ok {
			b = bucket{gen: gen}
		}

		switch fs := expr.Find(ineq.Expr, (*expr.Expr).IsFunction); {
		case len(fs) == 0:
			b.poly = append(append([]Inequality{}, b.poly...), ineq)
		case onlyAbs(fs):
			b.abs = append(append([]Inequality{}, b.abs...), ineq)
		default:
			return nil, errors.Wrapf(ErrUnsupportedFunction, "can't reduce %s", e)
		}
		buckets = buckets.Set(gen.Name(), b)
	}

	extraCtx, err := assume.Of(extra...)
	if err != nil {
		return nil, err
	}
	ctx = ctx.And(extraCtx)

	var polyReduced, absReduced []*expr.Expr
	for it := buckets.Iterator(); !it.Done(); {
		_, b, _ := it.Next()

		if len(b.poly) > 0 {
			sol, err := ReducePoly([][]Inequality{b.poly}, b.gen, ctx, true)
			if err != nil {
				return nil, err
			}
			polyReduced = append(polyReduced, sol.Formula)
		}
		if len(b.abs) > 0 {
			f, err := ReduceAbsSystem(b.abs, b.gen, ctx)
			if err != nil {
				return nil, err
			}
			absReduced = append(absReduced, f)
		}
	}

	return expr.And(append(polyReduced, absReduced...)...), nil
}

func onlyAbs(fs []*expr.Expr) bool {
	for _, f := range fs {
		if f.Kind() != expr.KindAbs {
			return false
		}
	}
	return true
}
