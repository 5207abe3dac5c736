package poly

import "math/big"

// dense is a coefficient vector in ascending order of degree. Normalized
// vectors have a non-zero last coefficient; the zero polynomial is empty.
type dense []*big.Rat

func rat(n int64) *big.Rat {
	return new(big.Rat).SetInt64(n)
}

func (d dense) trim() dense {
	n := len(d)
	for n > 0 && d[n-1].Sign() == 0 {
		n--
	}
	return d[:n]
}

func (d dense) degree() int {
	return len(d) - 1
}

func (d dense) lc() *big.Rat {
	if len(d) == 0 {
		return new(big.Rat)
	}
	return d[len(d)-1]
}

func (d dense) copy() dense {
	c := make(dense, len(d))
	for i, x := range d {
		c[i] = new(big.Rat).Set(x)
	}
	return c
}

func zeros(n int) dense {
	d := make(dense, n)
	for i := range d {
		d[i] = new(big.Rat)
	}
	return d
}

func (d dense) add(o dense) dense {
	n := len(d)
	if len(o) > n {
		n = len(o)
	}
	res := zeros(n)
	for i, x := range d {
		res[i].Add(res[i], x)
	}
	for i, x := range o {
		res[i].Add(res[i], x)
	}
	return res.trim()
}

func (d dense) neg() dense {
	res := make(dense, len(d))
	for i, x := range d {
		res[i] = new(big.Rat).Neg(x)
	}
	return res
}

func (d dense) sub(o dense) dense {
	return d.add(o.neg())
}

func (d dense) scale(c *big.Rat) dense {
	res := make(dense, len(d))
	for i, x := range d {
		res[i] = new(big.Rat).Mul(x, c)
	}
	return res.trim()
}

func (d dense) mul(o dense) dense {
	if len(d) == 0 || len(o) == 0 {
		return nil
	}
	res := zeros(len(d) + len(o) - 1)
	tmp := new(big.Rat)
	for i, x := range d {
		for j, y := range o {
			res[i+j].Add(res[i+j], tmp.Mul(x, y))
		}
	}
	return res.trim()
}

// quoRem is polynomial long division over QQ. It panics on division by zero.
func (d dense) quoRem(o dense) (dense, dense) {
	if len(o) == 0 {
		panic(ErrZeroPolynomial)
	}
	r := d.copy().trim()
	if len(r) < len(o) {
		return nil, r
	}
	q := zeros(len(r) - len(o) + 1)
	lc := o.lc()
	tmp := new(big.Rat)
	for len(r) >= len(o) {
		shift := len(r) - len(o)
		c := new(big.Rat).Quo(r.lc(), lc)
		q[shift] = c
		for i, y := range o {
			r[i+shift].Sub(r[i+shift], tmp.Mul(c, y))
		}
		// The leading coefficient cancels exactly.
		r = r[:len(r)-1].trim()
	}
	return q.trim(), r
}

func (d dense) deriv() dense {
	if len(d) <= 1 {
		return nil
	}
	res := make(dense, len(d)-1)
	for i := 1; i < len(d); i++ {
		res[i-1] = new(big.Rat).Mul(d[i], rat(int64(i)))
	}
	return res.trim()
}

func (d dense) monic() dense {
	if len(d) == 0 {
		return d
	}
	return d.scale(new(big.Rat).Inv(d.lc()))
}

// gcd is the monic greatest common divisor.
func (d dense) gcd(o dense) dense {
	a, b := d.trim(), o.trim()
	for len(b) > 0 {
		_, r := a.quoRem(b)
		a, b = b, r
	}
	return a.monic()
}

func (d dense) eval(x *big.Rat) *big.Rat {
	res := new(big.Rat)
	for i := len(d) - 1; i >= 0; i-- {
		res.Mul(res, x)
		res.Add(res, d[i])
	}
	return res
}

func (d dense) signAt(x *big.Rat) int {
	return d.eval(x).Sign()
}

func (d dense) isOne() bool {
	return len(d) == 1 && d[0].Cmp(big.NewRat(1, 1)) == 0
}

// primitive scales the polynomial to coprime integer coefficients with a
// positive leading coefficient.
func (d dense) primitive() []*big.Int {
	lcm := big.NewInt(1)
	for _, x := range d {
		den := x.Denom()
		g := new(big.Int).GCD(nil, nil, lcm, den)
		lcm.Mul(lcm, new(big.Int).Quo(den, g))
	}

	ints := make([]*big.Int, len(d))
	content := new(big.Int)
	for i, x := range d {
		n := new(big.Int).Mul(x.Num(), new(big.Int).Quo(lcm, x.Denom()))
		ints[i] = n
		content.GCD(nil, nil, content, new(big.Int).Abs(n))
	}
	if content.Sign() == 0 {
		return ints
	}
	if d.lc().Sign() < 0 {
		content.Neg(content)
	}
	for _, n := range ints {
		n.Quo(n, content)
	}
	return ints
}

// sturm computes the Sturm sequence of a square-free polynomial.
func (d dense) sturm() []dense {
	seq := []dense{d, d.deriv()}
	for {
		n := len(seq)
		if len(seq[n-1]) == 0 {
			return seq[:n-1]
		}
		_, r := seq[n-2].quoRem(seq[n-1])
		seq = append(seq, r.neg())
	}
}

func variations(seq []dense, x *big.Rat) (v int) {
	last := 0
	for _, p := range seq {
		s := p.signAt(x)
		if s == 0 {
			continue
		}
		if last != 0 && s != last {
			v++
		}
		last = s
	}
	return
}

// countRoots is the number of distinct roots in (lo, hi].
func countRoots(seq []dense, lo, hi *big.Rat) int {
	return variations(seq, lo) - variations(seq, hi)
}

// cauchyBound is a bound strictly greater than the magnitude of every root.
func (d dense) cauchyBound() *big.Rat {
	lc := new(big.Rat).Abs(d.lc())
	max := new(big.Rat)
	for _, x := range d[:len(d)-1] {
		q := new(big.Rat).Quo(new(big.Rat).Abs(x), lc)
		if q.Cmp(max) > 0 {
			max = q
		}
	}
	return max.Add(max, big.NewRat(1, 1))
}
