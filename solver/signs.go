package solver

import (
	"github.com/cs-au-dk/ineq/algebra/expr"
	"github.com/cs-au-dk/ineq/algebra/poly"
	L "github.com/cs-au-dk/ineq/analysis/lattice"
	"github.com/cs-au-dk/ineq/utils"
	"github.com/pkg/errors"
)

var el = L.Create().Element()

// SolvePoly computes the set of reals at which p rel 0 holds.
//
// Ordering relations are solved by sweeping the real roots from +∞
// downwards, tracking the sign of p. The sign only changes at roots of odd
// multiplicity; roots of even multiplicity are touching points which are
// either excluded from (strict relations) or added to (inclusive relations)
// the solution.
func SolvePoly(p poly.Poly, rel expr.Relation) (L.IntervalSet, error) {
	if !rel.Valid() {
		return L.EmptySet(), errors.Wrapf(ErrInvalidRelation, "%s", rel)
	}

	if p.IsConstant() {
		if rel.Holds(p.Coeff(0).Sign()) {
			return L.Reals(), nil
		}
		return L.EmptySet(), nil
	}

	roots := p.RealRoots()
	utils.Opts().OnVerbose(func() {
		for _, r := range roots {
			utils.VerbosePrint("root %s of %s with multiplicity %d\n", r.Root, p, r.Mult)
		}
	})

	var intervals []L.Interval
	switch rel {
	case expr.EQ:
		for _, r := range roots {
			intervals = append(intervals, el.Point(r.Root))
		}

	case expr.NE:
		var left L.IntervalBound = L.MinusInfinity{}
		for _, r := range roots {
			right := L.Finite(r.Root)
			intervals = append(intervals, el.Open(left, right))
			left = right
		}
		intervals = append(intervals, el.Open(left, L.PlusInfinity{}))

	default:
		sign := p.LC().Sign()
		eqSign, inclusive := orderingSign(rel)

		var (
			right     L.IntervalBound = L.PlusInfinity{}
			rightOpen                 = true
		)
		prepend := func(iv L.Interval) {
			intervals = append([]L.Interval{iv}, intervals...)
		}

		for i := len(roots) - 1; i >= 0; i-- {
			left := L.Finite(roots[i].Root)
			if roots[i].Mult%2 == 1 {
				if sign == eqSign {
					prepend(el.Interval(left, right, !inclusive, rightOpen))
				}
				sign, right, rightOpen = -sign, left, !inclusive
				continue
			}

			switch {
			case sign == eqSign && !inclusive:
				prepend(el.Interval(left, right, true, rightOpen))
				right, rightOpen = left, true
			case sign != eqSign && inclusive:
				prepend(el.Point(roots[i].Root))
			}
		}

		if sign == eqSign {
			prepend(el.Interval(L.MinusInfinity{}, right, true, rightOpen))
		}
	}

	return el.IntervalSet(intervals...), nil
}

// orderingSign maps an ordering relation to the sign p must have, and
// whether roots of p are included.
func orderingSign(rel expr.Relation) (eqSign int, inclusive bool) {
	switch rel {
	case expr.GT:
		return 1, false
	case expr.LT:
		return -1, false
	case expr.GE:
		return 1, true
	case expr.LE:
		return -1, true
	}
	panic(errors.Errorf("%s is not an ordering relation", rel))
}
