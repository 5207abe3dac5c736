package poly

import (
	"math/big"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/cs-au-dk/ineq/algebra/expr"
)

// Real is an exact real number: either a rational, or the unique root of a
// square-free rational polynomial inside an open isolating interval with
// rational endpoints, neither of which is a root. Float reals are rationals
// produced by numeric evaluation.
type Real struct {
	rat    *big.Rat
	poly   dense
	lo, hi *big.Rat
	gen    *expr.Expr
	float  bool
	text   string
}

// RatReal wraps an exact rational.
func RatReal(r *big.Rat) Real {
	return Real{rat: new(big.Rat).Set(r)}
}

// IntReal wraps an integer.
func IntReal(n int64) Real {
	return Real{rat: rat(n)}
}

// algebraic constructs the root of p isolated by (lo, hi).
func algebraic(gen *expr.Expr, p dense, lo, hi *big.Rat) Real {
	return Real{poly: p, lo: lo, hi: hi, gen: gen}
}

// IsRational is true for rational (and float) reals.
func (x Real) IsRational() bool {
	return x.rat != nil
}

// IsFloat is true for numerically evaluated reals.
func (x Real) IsFloat() bool {
	return x.float
}

// Rat returns the value of a rational real.
func (x Real) Rat() (*big.Rat, bool) {
	if x.rat == nil {
		return nil, false
	}
	return new(big.Rat).Set(x.rat), true
}

// Poly returns the defining polynomial of an irrational real.
func (x Real) Poly() (Poly, bool) {
	if x.rat != nil {
		return Poly{}, false
	}
	return fromDense(x.gen, x.poly, false), true
}

// refined halves the isolating interval.
func (x Real) refined() Real {
	mid := new(big.Rat).Add(x.lo, x.hi)
	mid.Quo(mid, rat(2))
	if x.poly.signAt(mid) == x.poly.signAt(x.lo) {
		return Real{poly: x.poly, lo: mid, hi: x.hi, gen: x.gen}
	}
	return Real{poly: x.poly, lo: x.lo, hi: mid, gen: x.gen}
}

// Sign is the sign of x.
func (x Real) Sign() int {
	return x.Cmp(IntReal(0))
}

// Cmp compares two reals exactly, returning -1, 0 or +1.
func (x Real) Cmp(y Real) int {
	switch {
	case x.rat != nil && y.rat != nil:
		return x.rat.Cmp(y.rat)
	case x.rat != nil:
		return -y.cmpRat(x.rat)
	case y.rat != nil:
		return x.cmpRat(y.rat)
	}

	// Equal roots are common roots of both polynomials.
	if h := x.poly.gcd(y.poly); h.degree() > 0 {
		lo, hi := x.lo, x.hi
		if y.lo.Cmp(lo) > 0 {
			lo = y.lo
		}
		if y.hi.Cmp(hi) < 0 {
			hi = y.hi
		}
		if lo.Cmp(hi) < 0 && countRoots(h.sturm(), lo, hi) > 0 {
			return 0
		}
	}

	// Distinct roots separate under bisection.
	for {
		if x.hi.Cmp(y.lo) <= 0 {
			return -1
		}
		if y.hi.Cmp(x.lo) <= 0 {
			return 1
		}
		x, y = x.refined(), y.refined()
	}
}

// cmpRat compares an irrational x with a rational r.
func (x Real) cmpRat(r *big.Rat) int {
	if x.lo.Cmp(r) < 0 && r.Cmp(x.hi) < 0 && x.poly.signAt(r) == 0 {
		return 0
	}
	for {
		if r.Cmp(x.lo) <= 0 {
			return 1
		}
		if r.Cmp(x.hi) >= 0 {
			return -1
		}
		x = x.refined()
	}
}

// approx returns a rational within relative distance 10**-digits of x.
func (x Real) approx(digits int) *big.Rat {
	if x.rat != nil {
		return x.rat
	}
	scale := new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil))
	for i := 0; i < 4096; i++ {
		width := new(big.Rat).Sub(x.hi, x.lo)
		width.Mul(width, scale)
		mag := new(big.Rat).Abs(x.lo)
		if m := new(big.Rat).Abs(x.hi); m.Cmp(mag) < 0 {
			mag = m
		}
		if x.lo.Sign() == x.hi.Sign() && width.Cmp(mag) <= 0 {
			break
		}
		x = x.refined()
	}
	mid := new(big.Rat).Add(x.lo, x.hi)
	return mid.Quo(mid, rat(2))
}

// Float64 approximates x.
func (x Real) Float64() float64 {
	f, _ := x.approx(20).Float64()
	return f
}

// EvalfDigits is the default precision of numeric evaluation.
const EvalfDigits = 15

// Evalf numerically evaluates x to the given number of significant digits.
func (x Real) Evalf(digits int) Real {
	if x.float {
		return x
	}
	r := x.approx(digits + 5)

	ctx := apd.BaseContext.WithPrecision(uint32(digits))
	num := apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(r.Num()), 0)
	den := apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(r.Denom()), 0)
	d := new(apd.Decimal)
	if _, err := ctx.Quo(d, num, den); err != nil {
		f := RatReal(r)
		f.float = true
		return f
	}

	text := d.Text('f')
	if !strings.ContainsRune(text, '.') {
		text += ".0"
	}
	value, _ := new(big.Rat).SetString(text)
	return Real{rat: value, float: true, text: text}
}

// Expr converts x to an expression: rationals become numbers, quadratic
// irrationals are written with square roots, and other irrationals become
// rootof(p, k), the k'th real root of p in ascending order.
func (x Real) Expr() *expr.Expr {
	switch {
	case x.float:
		return expr.FloatText(x.rat, x.text)
	case x.rat != nil:
		return expr.Num(x.rat)
	case x.poly.degree() == 2:
		return x.quadratic()
	}

	seq := x.poly.sturm()
	bound := x.poly.cauchyBound()
	k := countRoots(seq, new(big.Rat).Neg(bound), x.lo)

	gen := x.gen
	if gen == nil {
		gen = expr.Sym("x")
	}
	p := fromDense(gen, x.poly.primitiveDense(), false)
	return expr.Func("rootof", p.Expr(), expr.Int(int64(k)))
}

func (d dense) primitiveDense() dense {
	ints := d.primitive()
	res := make(dense, len(ints))
	for i, n := range ints {
		res[i] = new(big.Rat).SetInt(n)
	}
	return res
}

// quadratic writes a root of a*x**2 + b*x + c as p ± q*sqrt(m).
func (x Real) quadratic() *expr.Expr {
	a, b, c := x.poly[2], x.poly[1], x.poly[0]

	twoA := new(big.Rat).Mul(a, rat(2))
	center := new(big.Rat).Neg(b)
	center.Quo(center, twoA)

	disc := new(big.Rat).Mul(b, b)
	disc.Sub(disc, new(big.Rat).Mul(rat(4), new(big.Rat).Mul(a, c)))

	// sqrt(n/d) = sqrt(n*d)/d = k*sqrt(m)/d
	nd := new(big.Int).Mul(disc.Num(), disc.Denom())
	k, m := squarePart(nd)
	q := new(big.Rat).SetFrac(k, disc.Denom())
	q.Quo(q, new(big.Rat).Abs(twoA))

	if x.cmpRat(center) < 0 {
		q.Neg(q)
	}
	return expr.Add(expr.Num(center), expr.Mul(expr.Num(q), expr.Sqrt(expr.Num(new(big.Rat).SetInt(m)))))
}

// squarePart splits n = k**2 * m, extracting square factors of small primes.
func squarePart(n *big.Int) (k, m *big.Int) {
	k, m = big.NewInt(1), new(big.Int).Set(n)
	p := big.NewInt(2)
	sq := new(big.Int)
	rem := new(big.Int)
	quo := new(big.Int)
	for i := 0; i < 100000; i++ {
		sq.Mul(p, p)
		if sq.Cmp(m) > 0 {
			break
		}
		for {
			quo.QuoRem(m, sq, rem)
			if rem.Sign() != 0 {
				break
			}
			m.Set(quo)
			k.Mul(k, p)
		}
		p.Add(p, big.NewInt(1))
	}
	return
}

func (x Real) String() string {
	return x.Expr().String()
}
