package poly

import (
	"errors"
	"math/big"
	"testing"

	"github.com/cs-au-dk/ineq/algebra/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var x = expr.RealSym("x")

func mustPoly(t *testing.T, src string) Poly {
	t.Helper()
	p, err := New(expr.MustParse(src, expr.WithRealSymbols("x")), x)
	require.NoError(t, err)
	return p
}

func roots(p Poly) (strs []string, mults []int) {
	for _, rm := range p.RealRoots() {
		strs = append(strs, rm.Root.String())
		mults = append(mults, rm.Mult)
	}
	return
}

func TestNew(t *testing.T) {
	p := mustPoly(t, "(x - 1)*(x + 2)")
	assert.Equal(t, 2, p.Degree())
	assert.Equal(t, ZZ, p.Domain())
	var coeffs []string
	for _, c := range p.Coeffs() {
		coeffs = append(coeffs, c.RatString())
	}
	assert.Equal(t, []string{"-2", "1", "1"}, coeffs)
	assert.Equal(t, "x**2 + x - 2", p.Expr().String())

	assert.Equal(t, QQ, mustPoly(t, "x/2 + 1").Domain())

	f := mustPoly(t, "0.5*x - 1")
	assert.Equal(t, RR, f.Domain())
	assert.False(t, f.IsExact())
	assert.Equal(t, QQ, f.ToExact().Domain())

	assert.Equal(t, -1, mustPoly(t, "x - x").Degree())
	assert.True(t, mustPoly(t, "3").IsConstant())
}

func TestNewErrors(t *testing.T) {
	_, err := New(expr.MustParse("x + y", expr.WithRealSymbols("x")), x)
	assert.True(t, errors.Is(err, ErrUnsupportedDomain), "%v", err)

	for _, src := range []string{"1/x", "abs(x) + 1", "sqrt(x)", "sin(x)"} {
		_, err := New(expr.MustParse(src, expr.WithRealSymbols("x")), x)
		assert.True(t, errors.Is(err, ErrNotPolynomial), "%s: %v", src, err)
	}

	_, err = Expand(expr.MustParse("x < 1"))
	assert.True(t, errors.Is(err, ErrNotPolynomial))
}

func TestArithmetic(t *testing.T) {
	q, r, err := mustPoly(t, "x**2 - 1").QuoRem(mustPoly(t, "x - 1"))
	require.NoError(t, err)
	assert.Equal(t, "x + 1", q.Expr().String())
	assert.True(t, r.IsZero())

	_, _, err = q.QuoRem(mustPoly(t, "0"))
	assert.True(t, errors.Is(err, ErrZeroPolynomial))

	assert.Equal(t, "x + 1", mustPoly(t, "x**2 - 1").GCD(mustPoly(t, "x**2 + 2*x + 1")).Expr().String())
	assert.Equal(t, "3*x**2", mustPoly(t, "x**3").Derivative().Expr().String())
	assert.Equal(t, "3*x + 2", mustPoly(t, "x/2 + 1/3").Primitive().Expr().String())
	assert.Equal(t, "x + 2/3", mustPoly(t, "x/2 + 1/3").Monic().Expr().String())
	assert.Equal(t, "x**2 - 2*x + 1", mustPoly(t, "x - 1").Pow(2).Expr().String())
	assert.Equal(t, "x**2 - 1", mustPoly(t, "x - 1").Mul(mustPoly(t, "x + 1")).Expr().String())
	assert.Equal(t, "7", mustPoly(t, "x**2 + 3").Eval(big.NewRat(2, 1)).RatString())
	assert.Equal(t, "x**2 - 2*x", FromInts(x, 1, -2, 0).Expr().String())
}

func TestSquareFree(t *testing.T) {
	fs := mustPoly(t, "x**3 - x**2").SquareFree()
	require.Len(t, fs, 2)
	assert.Equal(t, "x - 1", fs[0].Poly.Expr().String())
	assert.Equal(t, 1, fs[0].Mult)
	assert.Equal(t, "x", fs[1].Poly.Expr().String())
	assert.Equal(t, 2, fs[1].Mult)

	assert.Empty(t, mustPoly(t, "5").SquareFree())
}

func TestRealRoots(t *testing.T) {
	tests := []struct {
		src   string
		roots []string
		mults []int
	}{
		{"x**2", []string{"0"}, []int{2}},
		{"x**2 + 1", nil, nil},
		{"2*x - 1", []string{"1/2"}, []int{1}},
		{"(x - 1)**2*(x + 2)*(x**2 - 2)", []string{"-2", "-sqrt(2)", "1", "sqrt(2)"}, []int{1, 1, 2, 1}},
		{"x**2 - x - 1", []string{"1/2 - sqrt(5)/2", "sqrt(5)/2 + 1/2"}, []int{1, 1}},
		{"x**3 - 2", []string{"rootof(x**3 - 2, 0)"}, []int{1}},
		{"(x**2 - 8)**3", []string{"-2*sqrt(2)", "2*sqrt(2)"}, []int{3, 3}},
		{"(x**2 - 2)*(x**2 - 3)", []string{"-sqrt(3)", "-sqrt(2)", "sqrt(2)", "sqrt(3)"}, []int{1, 1, 1, 1}},
		{"(x**2 - 2)**2*(x**2 - x - 1)", []string{"-sqrt(2)", "1/2 - sqrt(5)/2", "sqrt(2)", "sqrt(5)/2 + 1/2"}, []int{2, 1, 2, 1}},
		{"x**4 - 10*x**2 + 1", []string{
			"rootof(x**4 - 10*x**2 + 1, 0)",
			"rootof(x**4 - 10*x**2 + 1, 1)",
			"rootof(x**4 - 10*x**2 + 1, 2)",
			"rootof(x**4 - 10*x**2 + 1, 3)",
		}, []int{1, 1, 1, 1}},
		{"x - 3000000000000", []string{"3000000000000"}, []int{1}},
		{"2199023255553*x - 1", []string{"1/2199023255553"}, []int{1}},
		{"(x - 3000000000000)*(x + 1)", []string{"-1", "3000000000000"}, []int{1, 1}},
		{"(2199023255553*x - 1)*(x**2 - 2)", []string{"-sqrt(2)", "1/2199023255553", "sqrt(2)"}, []int{1, 1, 1}},
		{"(x - 2199023255551)*(x**2 - 3)", []string{"-sqrt(3)", "sqrt(3)", "2199023255551"}, []int{1, 1, 1}},
	}

	for _, test := range tests {
		strs, mults := roots(mustPoly(t, test.src))
		assert.Equal(t, test.roots, strs, test.src)
		assert.Equal(t, test.mults, mults, test.src)
	}
}

func TestRealCmp(t *testing.T) {
	quadratic := mustPoly(t, "x**2 - 2").RealRoots()
	require.Len(t, quadratic, 2)
	sqrt2 := quadratic[1].Root

	// sqrt(2) as the root of x**4 - 5*x**2 + 6 isolated by (1, 3/2].
	quartic := mustPoly(t, "x**4 - 5*x**2 + 6")
	other := algebraic(quartic.gen, quartic.coeffs.monic(), rat(1), big.NewRat(3, 2))
	assert.Equal(t, 0, other.Cmp(sqrt2), "the same root of different polynomials")
	assert.Equal(t, "rootof(x**4 - 5*x**2 + 6, 2)", other.String())

	irreducible := mustPoly(t, "x**4 - 10*x**2 + 1").RealRoots()
	require.Len(t, irreducible, 4)
	// sqrt(3) - sqrt(2) < sqrt(2) < sqrt(3) + sqrt(2)
	assert.Equal(t, -1, irreducible[2].Root.Cmp(sqrt2))
	assert.Equal(t, 1, irreducible[3].Root.Cmp(sqrt2))

	assert.Equal(t, -1, sqrt2.Cmp(RatReal(big.NewRat(3, 2))))
	assert.Equal(t, 1, sqrt2.Cmp(RatReal(big.NewRat(7, 5))))
	assert.Equal(t, -1, quadratic[0].Root.Sign())
	assert.InDelta(t, 1.41421356237, sqrt2.Float64(), 1e-9)
}

func TestSignAt(t *testing.T) {
	quartic := mustPoly(t, "x**4 - 5*x**2 + 6").RealRoots()
	sqrt2 := quartic[2].Root

	assert.Equal(t, 0, mustPoly(t, "x**2 - 2").SignAt(sqrt2))
	assert.Equal(t, 1, mustPoly(t, "x - 1").SignAt(sqrt2))
	assert.Equal(t, -1, mustPoly(t, "x - 3/2").SignAt(sqrt2))
	assert.Equal(t, 1, mustPoly(t, "x**2 - 2").SignAt(RatReal(big.NewRat(3, 2))))
}

func TestEvalf(t *testing.T) {
	sqrt2 := mustPoly(t, "x**2 - 2").RealRoots()[1].Root
	f := sqrt2.Evalf(EvalfDigits)
	assert.True(t, f.IsFloat())
	assert.Equal(t, "1.41421356237310", f.String())

	third := RatReal(big.NewRat(1, 3)).Evalf(EvalfDigits)
	assert.Equal(t, "0.333333333333333", third.String())
	assert.Equal(t, "-2.00000000000000", IntReal(-2).Evalf(EvalfDigits).String())
}

func TestLinear(t *testing.T) {
	tests := []struct {
		src, a, b string
	}{
		{"2*x + 3*y - 1", "2", "3*y - 1"},
		{"x*y + 1", "y", "1"},
		{"-x", "-1", "0"},
		{"x/2 + 1/3", "1/2", "1/3"},
	}

	for _, test := range tests {
		a, b, err := Linear(expr.MustParse(test.src, expr.WithRealSymbols("x")), x)
		require.NoError(t, err, test.src)
		assert.Equal(t, test.a, a.String(), test.src)
		assert.Equal(t, test.b, b.String(), test.src)
	}

	_, _, err := Linear(expr.MustParse("x**2 + 1"), x)
	assert.True(t, errors.Is(err, ErrNotLinear))
	_, _, err = Linear(expr.MustParse("y + 1"), x)
	assert.True(t, errors.Is(err, ErrNotLinear))
	_, _, err = Linear(expr.MustParse("abs(x) + x"), x)
	assert.True(t, errors.Is(err, ErrNotPolynomial))
}
