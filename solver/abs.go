package solver

import (
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/pkg/errors"

	"github.com/cs-au-dk/ineq/algebra/assume"
	"github.com/cs-au-dk/ineq/algebra/expr"
	"github.com/cs-au-dk/ineq/utils"
	"github.com/cs-au-dk/ineq/utils/worklist"
)

// Branch is one case of an absolute value case split: Expr equals the
// original expression whenever all conditions hold.
type Branch struct {
	Expr  *expr.Expr
	Conds []*expr.Expr
}

func (b Branch) String() string {
	conds := make([]string, 0, len(b.Conds))
	for _, c := range b.Conds {
		conds = append(conds, c.String())
	}
	return b.Expr.String() + " if [" + strings.Join(conds, ", ") + "]"
}

// Condition is the conjunction of the branch conditions.
func (b Branch) Condition() *expr.Expr {
	return expr.And(b.Conds...)
}

// caseOperands lists the sub-expressions whose case splits determine the
// case split of e.
func caseOperands(e *expr.Expr) []*expr.Expr {
	switch e.Kind() {
	case expr.KindAdd, expr.KindMul:
		return e.Args()
	case expr.KindPow, expr.KindAbs:
		return e.Args()[:1]
	}
	return nil
}

// CaseSplit eliminates every absolute value in e by splitting on the sign
// of its argument. Inner absolute values are split first. The branches of
// sums and products are the cartesian product of the branches of their
// operands.
func CaseSplit(e *expr.Expr) ([]Branch, error) {
	// Parents are visited before their operands.
	var order []*expr.Expr
	worklist.Start(e, func(next *expr.Expr, add func(*expr.Expr)) {
		order = append(order, next)
		for _, op := range caseOperands(next) {
			add(op)
		}
	})

	cases := immutable.NewMap[*expr.Expr, []Branch](utils.HashableHasher[*expr.Expr]())
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		if _, ok := cases.Get(n); ok {
			continue
		}

		branches, err := splitNode(n, cases)
		if err != nil {
			return nil, err
		}
		cases = cases.Set(n, branches)
	}

	res, _ := cases.Get(e)
	utils.VerbosePrint("%s splits into %d case(s)\n", e, len(res))
	return res, nil
}

// splitNode computes the branches of n from the branches of its operands.
func splitNode(n *expr.Expr, cases *immutable.Map[*expr.Expr, []Branch]) ([]Branch, error) {
	of := func(op *expr.Expr) []Branch {
		bs, ok := cases.Get(op)
		if !ok {
			panic(errors.Errorf("operand %s of %s was not split", op, n))
		}
		return bs
	}

	switch n.Kind() {
	case expr.KindAdd, expr.KindMul:
		type partial struct {
			args, conds []*expr.Expr
		}
		partials := []partial{{}}
		for _, op := range n.Args() {
			var next []partial
			for _, p := range partials {
				for _, b := range of(op) {
					next = append(next, partial{
						args:  append(append([]*expr.Expr{}, p.args...), b.Expr),
						conds: append(append([]*expr.Expr{}, p.conds...), b.Conds...),
					})
				}
			}
			partials = next
		}

		res := make([]Branch, 0, len(partials))
		for _, p := range partials {
			res = append(res, Branch{expr.WithArgs(n, p.args), p.conds})
		}
		return res, nil

	case expr.KindPow:
		exp := n.Arg(1)
		if !exp.IsInteger() || exp.Sign() < 0 {
			return nil, errors.Wrapf(ErrUnsupportedExponent, "%s", n)
		}

		var res []Branch
		for _, b := range of(n.Arg(0)) {
			res = append(res, Branch{expr.Pow(b.Expr, exp), b.Conds})
		}
		return res, nil

	case expr.KindAbs:
		var res []Branch
		for _, b := range of(n.Arg(0)) {
			res = append(res,
				Branch{b.Expr, withCond(b.Conds, expr.Ge(b.Expr, expr.Int(0)))},
				Branch{expr.Neg(b.Expr), withCond(b.Conds, expr.Lt(b.Expr, expr.Int(0)))},
			)
		}
		return res, nil
	}

	return []Branch{{n, nil}}, nil
}

func withCond(conds []*expr.Expr, c *expr.Expr) []*expr.Expr {
	return append(append(make([]*expr.Expr, 0, len(conds)+1), conds...), c)
}

// ReduceAbs reduces e rel 0, where e may contain absolute values, for a
// real variable gen. Every branch of the case split of e contributes one
// group, consisting of the branch inequality and its conditions.
func ReduceAbs(e *expr.Expr, rel expr.Relation, gen *expr.Expr, ctx assume.Context) (*expr.Expr, error) {
	if !rel.Valid() {
		return nil, errors.Wrapf(ErrInvalidRelation, "%s", rel)
	}
	if assume.Ask(assume.Real, gen, ctx) != assume.True {
		return nil, errors.Wrapf(ErrNonRealVariable, "%s", gen)
	}

	branches, err := CaseSplit(e)
	if err != nil {
		return nil, err
	}

	groups := make([][]*expr.Expr, 0, len(branches))
	for _, b := range branches {
		var ineq *expr.Expr
		switch rel {
		case expr.LT, expr.LE:
			ineq = expr.Rel(expr.Neg(b.Expr), rel.Reversed(), expr.Int(0))
		default:
			ineq = expr.Rel(b.Expr, rel, expr.Int(0))
		}
		groups = append(groups, append([]*expr.Expr{ineq}, b.Conds...))
	}

	sol, err := ReducePoly(Groups(groups...), gen, ctx, true)
	if err != nil {
		return nil, err
	}
	return sol.Formula, nil
}

// ReduceAbsSystem reduces the conjunction of the given inequalities.
func ReduceAbsSystem(ineqs []Inequality, gen *expr.Expr, ctx assume.Context) (*expr.Expr, error) {
	res := make([]*expr.Expr, 0, len(ineqs))
	for _, ineq := range ineqs {
		f, err := ReduceAbs(ineq.Expr, ineq.Rel, gen, ctx)
		if err != nil {
			return nil, err
		}
		res = append(res, f)
	}
	return expr.And(res...), nil
}
