package poly

import (
	"github.com/cs-au-dk/ineq/algebra/expr"
	"github.com/pkg/errors"
)

// Linear splits an expression of degree 1 in gen into a*gen + b. The
// coefficients may contain other symbols, but not gen.
func Linear(e, gen *expr.Expr) (a, b *expr.Expr, err error) {
	mp, err := Expand(e)
	if err != nil {
		return nil, nil, err
	}

	g := -1
	for i, x := range *mp.gens {
		if sameAtom(x, gen) {
			g = i
		} else if hasSymbolNamed(x, gen.Name()) {
			return nil, nil, errors.Wrapf(ErrNotPolynomial, "%s contains %s", e, x)
		}
	}
	if g < 0 {
		return nil, nil, errors.Wrapf(ErrNotLinear, "%s does not contain %s", e, gen)
	}

	ma, mb := mp.zero(), mp.zero()
	ma.float, mb.float = mp.float, mp.float
	for _, t := range mp.terms {
		switch t.mono.exp(g) {
		case 0:
			mb.addTerm(t)
		case 1:
			m := append(monomial{}, t.mono...)
			m[g] = 0
			ma.addTerm(mterm{trimMono(m), t.coeff})
		default:
			return nil, nil, errors.Wrapf(ErrNotLinear, "%s has degree %d in %s", e, t.mono.exp(g), gen)
		}
	}
	if ma.IsZero() {
		return nil, nil, errors.Wrapf(ErrNotLinear, "%s does not depend on %s", e, gen)
	}
	return ma.Expr(), mb.Expr(), nil
}

func trimMono(m monomial) monomial {
	n := len(m)
	for n > 0 && m[n-1] == 0 {
		n--
	}
	return m[:n]
}
