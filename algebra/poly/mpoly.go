package poly

import (
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/cs-au-dk/ineq/algebra/expr"
	"github.com/pkg/errors"
)

// monomial holds the exponent of every generator, with trailing zeros
// trimmed.
type monomial []int

func (m monomial) key() string {
	strs := make([]string, len(m))
	for i, e := range m {
		strs[i] = strconv.Itoa(e)
	}
	return strings.Join(strs, ",")
}

func (m monomial) exp(i int) int {
	if i < len(m) {
		return m[i]
	}
	return 0
}

func (m monomial) degree() (d int) {
	for _, e := range m {
		d += e
	}
	return
}

func (m monomial) mul(o monomial) monomial {
	n := len(m)
	if len(o) > n {
		n = len(o)
	}
	res := make(monomial, n)
	for i := range res {
		res[i] = m.exp(i) + o.exp(i)
	}
	return res
}

type mterm struct {
	mono  monomial
	coeff *big.Rat
}

// MPoly is a sparse multivariate polynomial with rational coefficients. Its
// generators are the symbols and non-polynomial subterms (such as abs(x) or
// x**(1/2)) found while expanding an expression.
type MPoly struct {
	gens  *[]*expr.Expr
	terms map[string]mterm
	float bool
}

func (mp MPoly) gen(i int) *expr.Expr {
	return (*mp.gens)[i]
}

func (mp MPoly) zero() MPoly {
	return MPoly{mp.gens, map[string]mterm{}, false}
}

func (mp MPoly) constant(c *big.Rat, float bool) MPoly {
	res := mp.zero()
	res.float = float
	if c.Sign() != 0 {
		res.terms[""] = mterm{nil, new(big.Rat).Set(c)}
	}
	return res
}

func (mp MPoly) atom(e *expr.Expr) MPoly {
	i := -1
	for j, g := range *mp.gens {
		if sameAtom(g, e) {
			i = j
			break
		}
	}
	if i < 0 {
		*mp.gens = append(*mp.gens, e)
		i = len(*mp.gens) - 1
	}
	m := make(monomial, i+1)
	m[i] = 1
	res := mp.zero()
	res.terms[m.key()] = mterm{m, big.NewRat(1, 1)}
	return res
}

func (mp MPoly) addTerm(t mterm) {
	k := t.mono.key()
	if old, found := mp.terms[k]; found {
		c := new(big.Rat).Add(old.coeff, t.coeff)
		if c.Sign() == 0 {
			delete(mp.terms, k)
		} else {
			mp.terms[k] = mterm{old.mono, c}
		}
		return
	}
	if t.coeff.Sign() != 0 {
		mp.terms[k] = t
	}
}

func (mp MPoly) add(o MPoly) MPoly {
	res := mp.zero()
	res.float = mp.float || o.float
	for _, t := range mp.terms {
		res.addTerm(t)
	}
	for _, t := range o.terms {
		res.addTerm(t)
	}
	return res
}

func (mp MPoly) mul(o MPoly) MPoly {
	res := mp.zero()
	res.float = mp.float || o.float
	for _, a := range mp.terms {
		for _, b := range o.terms {
			res.addTerm(mterm{a.mono.mul(b.mono), new(big.Rat).Mul(a.coeff, b.coeff)})
		}
	}
	return res
}

func (mp MPoly) pow(n int) MPoly {
	res := mp.constant(big.NewRat(1, 1), mp.float)
	for i := 0; i < n; i++ {
		res = res.mul(mp)
	}
	return res
}

// Expand multiplies out an arithmetic expression.
func Expand(e *expr.Expr) (MPoly, error) {
	root := MPoly{gens: new([]*expr.Expr), terms: map[string]mterm{}}
	return root.expand(e)
}

func (mp MPoly) expand(e *expr.Expr) (MPoly, error) {
	switch e.Kind() {
	case expr.KindNumber:
		return mp.constant(e.Value(), e.IsFloat()), nil

	case expr.KindAdd, expr.KindMul:
		var res MPoly
		for i, a := range e.Args() {
			x, err := mp.expand(a)
			if err != nil {
				return MPoly{}, err
			}
			switch {
			case i == 0:
				res = x
			case e.Kind() == expr.KindAdd:
				res = res.add(x)
			default:
				res = res.mul(x)
			}
		}
		return res, nil

	case expr.KindPow:
		if x := e.Arg(1); x.IsInteger() && x.Sign() > 0 && x.Value().Num().IsInt64() {
			b, err := mp.expand(e.Arg(0))
			if err != nil {
				return MPoly{}, err
			}
			return b.pow(int(x.Value().Num().Int64())), nil
		}
		return mp.atom(e), nil

	case expr.KindSymbol, expr.KindAbs, expr.KindFunc:
		return mp.atom(e), nil
	}
	return MPoly{}, errors.Wrapf(ErrNotPolynomial, "cannot expand %s", e)
}

// sameAtom compares generators. Symbols match by name.
func sameAtom(a, b *expr.Expr) bool {
	if a.Kind() == expr.KindSymbol && b.Kind() == expr.KindSymbol {
		return a.Name() == b.Name()
	}
	return a.Equal(b)
}

func (mp MPoly) sorted() []mterm {
	ts := make([]mterm, 0, len(mp.terms))
	for _, t := range mp.terms {
		ts = append(ts, t)
	}
	// Graded lexicographic, highest first.
	sort.Slice(ts, func(i, j int) bool {
		a, b := ts[i].mono, ts[j].mono
		if a.degree() != b.degree() {
			return a.degree() > b.degree()
		}
		for k := 0; k < len(a) || k < len(b); k++ {
			if a.exp(k) != b.exp(k) {
				return a.exp(k) > b.exp(k)
			}
		}
		return false
	})
	return ts
}

// IsZero is true for the zero polynomial.
func (mp MPoly) IsZero() bool {
	return len(mp.terms) == 0
}

// Expr converts the polynomial back into an expression.
func (mp MPoly) Expr() *expr.Expr {
	terms := []*expr.Expr{}
	for _, t := range mp.sorted() {
		var c *expr.Expr
		if mp.float {
			c = expr.FloatOf(t.coeff)
		} else {
			c = expr.Num(t.coeff)
		}
		factors := []*expr.Expr{c}
		for i, e := range t.mono {
			if e > 0 {
				factors = append(factors, expr.Pow(mp.gen(i), expr.Int(int64(e))))
			}
		}
		terms = append(terms, expr.Mul(factors...))
	}
	return expr.Add(terms...)
}

func (mp MPoly) String() string {
	return mp.Expr().String()
}

// Univariate views the polynomial as a polynomial in gen with numeric
// coefficients.
func (mp MPoly) Univariate(gen *expr.Expr) (Poly, error) {
	g := -1
	for i, a := range *mp.gens {
		if sameAtom(a, gen) {
			g = i
		}
	}

	var others []string
	seen := map[string]bool{}
	coeffs := dense{}
	for _, t := range mp.sorted() {
		for i, e := range t.mono {
			if i == g || e == 0 {
				continue
			}
			a := mp.gen(i)
			if expr.Has(a, gen) || (gen.Kind() == expr.KindSymbol && hasSymbolNamed(a, gen.Name())) {
				return Poly{}, errors.Wrapf(ErrNotPolynomial, "%s contains %s", mp.Expr(), a)
			}
			if s := a.String(); !seen[s] {
				seen[s] = true
				others = append(others, s)
			}
		}

		k := 0
		if g >= 0 {
			k = t.mono.exp(g)
		}
		for len(coeffs) <= k {
			coeffs = append(coeffs, new(big.Rat))
		}
		coeffs[k].Add(coeffs[k], t.coeff)
	}

	if len(others) > 0 {
		dom := "ZZ"
		if mp.float {
			dom = "RR"
		}
		return Poly{}, errors.Wrapf(ErrUnsupportedDomain, "%s has domain %s[%s]",
			mp.Expr(), dom, strings.Join(others, ","))
	}
	return fromDense(gen, coeffs, mp.float), nil
}

func hasSymbolNamed(e *expr.Expr, name string) bool {
	for _, s := range expr.FreeSymbols(e) {
		if s.Name() == name {
			return true
		}
	}
	return false
}
