package poly

import (
	"math/big"
	"sort"
)

// Factor is a square-free factor together with its multiplicity.
type Factor struct {
	Poly Poly
	Mult int
}

// RootMult is a distinct real root with its multiplicity.
type RootMult struct {
	Root Real
	Mult int
}

// SquareFree computes the square-free decomposition of p with Yun's
// algorithm. The factors are monic, pairwise coprime, and p equals the
// leading coefficient times the product of every factor raised to its
// multiplicity.
func (p Poly) SquareFree() []Factor {
	if p.Degree() < 1 {
		return nil
	}

	f := p.coeffs
	df := f.deriv()
	a := f.gcd(df)
	b, _ := f.quoRem(a)
	c, _ := df.quoRem(a)
	d := c.sub(b.deriv())

	var res []Factor
	for i := 1; b.degree() > 0; i++ {
		a = b.gcd(d)
		if a.degree() > 0 {
			res = append(res, Factor{fromDense(p.gen, a, p.float), i})
		}
		b, _ = b.quoRem(a)
		c, _ = d.quoRem(a)
		d = c.sub(b.deriv())
	}
	return res
}

// maxDivisorSearch bounds the magnitude of the constant and leading
// coefficients for which rational roots are enumerated.
const maxDivisorSearch = 1 << 40

// divisors lists the positive divisors of |n| by trial division.
func divisors(n int64) (res []int64) {
	if n < 0 {
		n = -n
	}
	var large []int64
	for i := int64(1); i*i <= n; i++ {
		if n%i == 0 {
			res = append(res, i)
			if j := n / i; j != i {
				large = append(large, j)
			}
		}
	}
	for i := len(large) - 1; i >= 0; i-- {
		res = append(res, large[i])
	}
	return
}

// rationalRoots extracts the rational roots of a square-free polynomial and
// returns them along with the remaining cofactor, which has no rational
// roots.
func rationalRoots(f dense) ([]*big.Rat, dense) {
	var roots []*big.Rat

	// Roots at zero.
	for len(f) > 1 && f[0].Sign() == 0 {
		roots = append(roots, new(big.Rat))
		f = f[1:]
	}
	if f.degree() < 1 {
		return roots, f
	}
	if f.degree() == 1 {
		r := new(big.Rat).Quo(f[0], f[1])
		r.Neg(r)
		return append(roots, r), divideRoot(f, r)
	}

	ints := f.primitive()
	a0, an := ints[0], ints[len(ints)-1]
	if !a0.IsInt64() || !an.IsInt64() ||
		new(big.Int).Abs(a0).Int64() > maxDivisorSearch ||
		new(big.Int).Abs(an).Int64() > maxDivisorSearch {
		for _, r := range scaledRoots(f, an) {
			roots = append(roots, r)
			f = divideRoot(f, r)
		}
		return roots, f
	}

	ps, qs := divisors(a0.Int64()), divisors(an.Int64())
	for _, p := range ps {
		for _, q := range qs {
			if f.degree() < 1 {
				return roots, f
			}
			for _, s := range []int64{p, -p} {
				r := big.NewRat(s, q)
				if f.signAt(r) != 0 {
					continue
				}
				// Square-free: the root is simple.
				f = divideRoot(f, r)
				roots = append(roots, r)
			}
		}
	}
	return roots, f
}

func divideRoot(f dense, r *big.Rat) dense {
	q, _ := f.quoRem(dense{new(big.Rat).Neg(r), rat(1)})
	return q
}

// scaledRoots finds the rational roots of a square-free polynomial whose
// coefficients are too large for divisor enumeration. Every rational root of
// a primitive integer polynomial with leading coefficient an is k/|an| for
// some integer k, so an isolating interval narrower than 1/|an| contains at
// most one candidate.
func scaledRoots(f dense, an *big.Int) (res []*big.Rat) {
	den := new(big.Int).Abs(an)
	scale := new(big.Rat).SetInt(den)
	one := rat(1)

	for _, iv := range isolate(f) {
		// The root lies in (lo, hi].
		lo, hi := iv[0], iv[1]
		if f.signAt(hi) == 0 {
			res = append(res, hi)
			continue
		}

		width := func() *big.Rat {
			w := new(big.Rat).Sub(hi, lo)
			return w.Mul(w, scale)
		}

		found := false
		for width().Cmp(one) >= 0 {
			mid := new(big.Rat).Add(lo, hi)
			mid.Quo(mid, rat(2))
			sign := f.signAt(mid)
			if sign == 0 {
				res, found = append(res, mid), true
				break
			}
			if sign == f.signAt(hi) {
				hi = mid
			} else {
				lo = mid
			}
		}
		if found {
			continue
		}

		// The smallest k with k/|an| > lo.
		k := new(big.Rat).Mul(lo, scale)
		floor := new(big.Int).Div(k.Num(), k.Denom())
		r := new(big.Rat).SetFrac(floor.Add(floor, big.NewInt(1)), den)
		if r.Cmp(hi) < 0 && f.signAt(r) == 0 {
			res = append(res, r)
		}
	}
	return
}

// maxKronecker bounds the number of candidate quadratics tried by
// quadraticFactor.
const maxKronecker = 1 << 16

// quadraticFactor looks for a quadratic factor of a polynomial without
// rational roots with Kronecker's method. An integer factor q satisfies
// q(t) | f(t) for t = -1, 0, 1, which leaves finitely many candidates.
func quadraticFactor(f dense) (dense, bool) {
	if f.degree() < 4 {
		return nil, false
	}
	g := f.primitiveDense()

	var vals [3][]int64
	total := 1
	for i, t := range []int64{-1, 0, 1} {
		v := g.eval(rat(t))
		if !v.Num().IsInt64() || new(big.Int).Abs(v.Num()).Int64() > maxDivisorSearch {
			return nil, false
		}
		vals[i] = divisors(v.Num().Int64())
		total *= 2 * len(vals[i])
		if total > maxKronecker {
			return nil, false
		}
	}

	// The sign of q is free, so q(0) is taken positive.
	for _, c := range vals[1] {
		for _, dm := range vals[0] {
			for _, dp := range vals[2] {
				for _, sm := range []int64{dm, -dm} {
					for _, sp := range []int64{dp, -dp} {
						if (sp-sm)%2 != 0 {
							continue
						}
						a, b := (sm+sp)/2-c, (sp-sm)/2
						if a == 0 {
							continue
						}
						q := dense{rat(c), rat(b), rat(a)}
						if _, r := g.quoRem(q); len(r) == 0 {
							return q.monic(), true
						}
					}
				}
			}
		}
	}
	return nil, false
}

// splitQuadratics splits off the quadratic factors of a monic polynomial
// without rational roots. The remaining cofactor, if any, is the last part.
func splitQuadratics(f dense) (parts []dense) {
	for {
		q, ok := quadraticFactor(f)
		if !ok {
			break
		}
		parts = append(parts, q)
		f, _ = f.quoRem(q)
	}
	if f.degree() > 0 {
		parts = append(parts, f)
	}
	return
}

// isolate finds disjoint isolating intervals for the real roots of a
// square-free polynomial without rational roots.
func isolate(f dense) [][2]*big.Rat {
	if f.degree() < 1 {
		return nil
	}
	seq := f.sturm()
	bound := f.cauchyBound()

	var res [][2]*big.Rat
	type span struct{ lo, hi *big.Rat }
	pending := []span{{new(big.Rat).Neg(bound), bound}}
	for len(pending) > 0 {
		s := pending[0]
		pending = pending[1:]

		switch n := countRoots(seq, s.lo, s.hi); {
		case n == 1:
			res = append(res, [2]*big.Rat{s.lo, s.hi})
		case n > 1:
			mid := new(big.Rat).Add(s.lo, s.hi)
			mid.Quo(mid, rat(2))
			pending = append(pending, span{s.lo, mid}, span{mid, s.hi})
		}
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i][0].Cmp(res[j][0]) < 0
	})
	return res
}

// RealRoots returns the distinct real roots of p in ascending order together
// with their multiplicities. Constant polynomials have no roots.
func (p Poly) RealRoots() []RootMult {
	var res []RootMult
	for _, fac := range p.SquareFree() {
		rs, rest := rationalRoots(fac.Poly.coeffs)
		for _, r := range rs {
			res = append(res, RootMult{RatReal(r), fac.Mult})
		}
		for _, part := range splitQuadratics(rest.monic()) {
			for _, iv := range isolate(part) {
				res = append(res, RootMult{algebraic(p.gen, part, iv[0], iv[1]), fac.Mult})
			}
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Root.Cmp(res[j].Root) < 0
	})
	return res
}
