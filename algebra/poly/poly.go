package poly

import (
	"fmt"
	"math/big"

	"github.com/cs-au-dk/ineq/algebra/expr"
	"github.com/pkg/errors"
)

// Domain is the coefficient domain of a polynomial.
type Domain uint8

const (
	ZZ Domain = iota
	QQ
	RR
)

func (d Domain) String() string {
	switch d {
	case ZZ:
		return "ZZ"
	case QQ:
		return "QQ"
	}
	return "RR"
}

// Poly is an immutable univariate polynomial with rational coefficients.
// Polynomials built from decimal literals carry the inexact RR domain; their
// coefficients are the exact values of the decimals.
type Poly struct {
	gen    *expr.Expr
	coeffs dense
	float  bool
}

func fromDense(gen *expr.Expr, d dense, float bool) Poly {
	return Poly{gen, d.trim(), float}
}

// FromInts builds a polynomial from integer coefficients given from the
// highest degree down, e.g. FromInts(x, 1, 0, -2) is x**2 - 2.
func FromInts(gen *expr.Expr, coeffs ...int64) Poly {
	d := make(dense, len(coeffs))
	for i, c := range coeffs {
		d[len(coeffs)-1-i] = rat(c)
	}
	return fromDense(gen, d, false)
}

// FromRats builds a polynomial from rational coefficients in ascending order
// of degree.
func FromRats(gen *expr.Expr, coeffs []*big.Rat) Poly {
	return fromDense(gen, dense(coeffs).copy(), false)
}

// New converts an expression into a polynomial in gen.
func New(e *expr.Expr, gen *expr.Expr) (Poly, error) {
	mp, err := Expand(e)
	if err != nil {
		return Poly{}, err
	}
	return mp.Univariate(gen)
}

func (p Poly) Gen() *expr.Expr {
	return p.gen
}

// Degree of the polynomial; -1 for the zero polynomial.
func (p Poly) Degree() int {
	return p.coeffs.degree()
}

// LC is the leading coefficient.
func (p Poly) LC() *big.Rat {
	return new(big.Rat).Set(p.coeffs.lc())
}

// Coeffs returns a copy of the coefficients in ascending order of degree.
func (p Poly) Coeffs() []*big.Rat {
	return p.coeffs.copy()
}

// Coeff returns the coefficient of gen**k.
func (p Poly) Coeff(k int) *big.Rat {
	if k < 0 || k >= len(p.coeffs) {
		return new(big.Rat)
	}
	return new(big.Rat).Set(p.coeffs[k])
}

func (p Poly) Domain() Domain {
	switch {
	case p.float:
		return RR
	case p.isIntegral():
		return ZZ
	}
	return QQ
}

func (p Poly) isIntegral() bool {
	for _, c := range p.coeffs {
		if !c.IsInt() {
			return false
		}
	}
	return true
}

// IsExact is true for polynomials over ZZ or QQ.
func (p Poly) IsExact() bool {
	return !p.float
}

// ToExact converts the polynomial to an exact domain.
func (p Poly) ToExact() Poly {
	return Poly{p.gen, p.coeffs, false}
}

func (p Poly) IsZero() bool {
	return len(p.coeffs) == 0
}

func (p Poly) IsConstant() bool {
	return len(p.coeffs) <= 1
}

func (p Poly) Add(o Poly) Poly {
	return fromDense(p.gen, p.coeffs.add(o.coeffs), p.float || o.float)
}

func (p Poly) Sub(o Poly) Poly {
	return fromDense(p.gen, p.coeffs.sub(o.coeffs), p.float || o.float)
}

func (p Poly) Mul(o Poly) Poly {
	return fromDense(p.gen, p.coeffs.mul(o.coeffs), p.float || o.float)
}

func (p Poly) Pow(n int) Poly {
	res := dense{rat(1)}
	for i := 0; i < n; i++ {
		res = res.mul(p.coeffs)
	}
	return fromDense(p.gen, res, p.float)
}

// QuoRem divides p by o.
func (p Poly) QuoRem(o Poly) (Poly, Poly, error) {
	if o.IsZero() {
		return Poly{}, Poly{}, errors.Wrap(ErrZeroPolynomial, "division")
	}
	q, r := p.coeffs.quoRem(o.coeffs)
	float := p.float || o.float
	return fromDense(p.gen, q, float), fromDense(p.gen, r, float), nil
}

func (p Poly) Derivative() Poly {
	return fromDense(p.gen, p.coeffs.deriv(), p.float)
}

// GCD is the monic greatest common divisor.
func (p Poly) GCD(o Poly) Poly {
	return fromDense(p.gen, p.coeffs.gcd(o.coeffs), p.float || o.float)
}

func (p Poly) Monic() Poly {
	return fromDense(p.gen, p.coeffs.monic(), p.float)
}

// Primitive scales p to coprime integer coefficients with a positive leading
// coefficient.
func (p Poly) Primitive() Poly {
	ints := p.coeffs.primitive()
	d := make(dense, len(ints))
	for i, n := range ints {
		d[i] = new(big.Rat).SetInt(n)
	}
	return fromDense(p.gen, d, p.float)
}

// Eval evaluates p at a rational point.
func (p Poly) Eval(x *big.Rat) *big.Rat {
	return p.coeffs.eval(x)
}

// SignAt is the sign of p at a real number.
func (p Poly) SignAt(x Real) int {
	if x.IsRational() {
		return p.coeffs.signAt(x.rat)
	}
	if p.IsZero() {
		return 0
	}

	// p vanishes at x iff x is a root of gcd(p, g).
	if h := p.coeffs.gcd(x.poly); h.degree() > 0 {
		if countRoots(h.sturm(), x.lo, x.hi) > 0 {
			return 0
		}
	}

	seq := p.coeffs.sturm()
	if p.coeffs.degree() == 0 {
		return p.coeffs[0].Sign()
	}
	// Shrink the isolating interval until p has no root in it; p has a
	// constant sign there.
	for x = x.refined(); ; x = x.refined() {
		if p.coeffs.signAt(x.lo) != 0 && countRoots(seq, x.lo, x.hi) == 0 {
			return p.coeffs.signAt(x.lo)
		}
	}
}

// Expr converts the polynomial back to an expression in its generator.
func (p Poly) Expr() *expr.Expr {
	terms := make([]*expr.Expr, 0, len(p.coeffs))
	for k := len(p.coeffs) - 1; k >= 0; k-- {
		c := p.coeffs[k]
		if c.Sign() == 0 {
			continue
		}
		var n *expr.Expr
		if p.float {
			n = expr.FloatOf(c)
		} else {
			n = expr.Num(c)
		}
		terms = append(terms, expr.Mul(n, expr.Pow(p.gen, expr.Int(int64(k)))))
	}
	return expr.Add(terms...)
}

func (p Poly) String() string {
	return fmt.Sprintf("Poly(%s, %s, domain=%s)", p.Expr(), p.gen, p.Domain())
}
