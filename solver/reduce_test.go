package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cs-au-dk/ineq/algebra/assume"
	"github.com/cs-au-dk/ineq/algebra/expr"
	L "github.com/cs-au-dk/ineq/analysis/lattice"
	tu "github.com/cs-au-dk/ineq/testutil"
)

func groups(t *testing.T, srcs ...[]string) [][]Inequality {
	var res [][]*expr.Expr
	for _, g := range srcs {
		res = append(res, tu.ParseAll(t, g, expr.WithRealSymbols("x")))
	}
	return Groups(res...)
}

func TestFromExpr(t *testing.T) {
	tests := []struct {
		src, expected string
	}{
		{"x > 1", "x - 1 > 0"},
		{"x**2 <= 2*x", "x**2 - 2*x <= 0"},
		{"x - 3", "x - 3 == 0"},
		{"true", "0 == 0"},
		{"false", "1 == 0"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, FromExpr(tu.Parse(t, test.src)).String())
	}
}

func TestReducePoly(t *testing.T) {
	tests := []struct {
		groups   [][]Inequality
		expected string
	}{
		{groups(t, []string{"x**2 <= 0"}), "x == 0"},
		{groups(t, []string{"x + 2 > 0"}), "-2 < x"},
		{groups(t, []string{"x**2 >= 0"}), "true"},
		{groups(t, []string{"x**2 < 0"}), "false"},
		{groups(t, []string{"x > 1", "x < 3"}, []string{"x < -1"}), "x < -1 || (1 < x && x < 3)"},
		{groups(t, []string{"x**2 - 1"}), "x == -1 || x == 1"},
		{groups(t, []string{"x**2 != 2"}), "x < -sqrt(2) || (-sqrt(2) < x && x < sqrt(2)) || sqrt(2) < x"},
		{groups(t, []string{"x - 3000000000000 > 0"}), "3000000000000 < x"},
		{groups(t, []string{"(x**2 - 2)*(x**2 - 3) <= 0"}), "(-sqrt(3) <= x && x <= -sqrt(2)) || (sqrt(2) <= x && x <= sqrt(3))"},
		{groups(t, []string{"true", "x >= 1"}), "1 <= x"},
		{groups(t, []string{"false", "x >= 1"}), "false"},
		{groups(t, []string{}), "true"},
		{nil, "false"},
	}

	for _, test := range tests {
		sol, err := ReducePoly(test.groups, x, assume.Empty(), true)
		require.NoError(t, err)
		assert.Equal(t, test.expected, sol.Formula.String(), "%v", test.groups)
	}
}

func TestReducePolyIntervals(t *testing.T) {
	sol, err := ReducePoly(groups(t, []string{"x**3 - x > 0"}), x, assume.Empty(), false)
	require.NoError(t, err)
	assert.Nil(t, sol.Formula)
	assert.Equal(t, "(-1, 0) ∪ (1, ∞)", sol.Set.String())
	assert.Equal(t, "(-1, 0) ∪ (1, ∞)", sol.String())
}

func TestReducePolyNotReal(t *testing.T) {
	y := expr.Sym("y")

	sol, err := ReducePoly(Groups([]*expr.Expr{tu.Parse(t, "y + 2 > 0")}), y, assume.Empty(), true)
	require.NoError(t, err)
	assert.Equal(t, "-2 < re(y) && im(y) == 0", sol.Formula.String())

	sol, err = ReducePoly(Groups([]*expr.Expr{tu.Parse(t, "y + 2 > 0")}), y, tu.Context(t, "Q.real(y)"), true)
	require.NoError(t, err)
	assert.Equal(t, "-2 < y", sol.Formula.String())

	sol, err = ReducePoly(Groups([]*expr.Expr{tu.Parse(t, "y + 2 > 0")}), y, tu.Context(t, "Q.positive(y)"), true)
	require.NoError(t, err)
	assert.Equal(t, "-2 < y", sol.Formula.String())
}

func TestReducePolyInexact(t *testing.T) {
	sol, err := ReducePoly(groups(t, []string{"x - 0.5 > 0"}), x, assume.Empty(), false)
	require.NoError(t, err)

	ivs := sol.Set.Intervals()
	require.Len(t, ivs, 1)
	low, ok := ivs[0].Low().(L.FiniteBound)
	require.True(t, ok)
	assert.True(t, low.Value().IsFloat())
	assert.InDelta(t, 0.5, low.Value().Float64(), 1e-12)
	assert.True(t, ivs[0].LowOpen())
}

func TestReducePolyErrors(t *testing.T) {
	tests := []struct {
		src string
		err error
	}{
		{"x + y > 0", ErrUnsupportedDomain},
		{"1/x > 0", ErrNotPolynomial},
		{"sqrt(x) > 0", ErrNotPolynomial},
		{"abs(x) > 1", ErrNotPolynomial},
	}

	for _, test := range tests {
		_, err := ReducePoly(groups(t, []string{test.src}), x, assume.Empty(), true)
		assert.ErrorIs(t, err, test.err, test.src)
	}

	_, err := ReducePoly([][]Inequality{{{x, expr.Relation(42)}}}, x, assume.Empty(), true)
	assert.ErrorIs(t, err, ErrInvalidRelation)
}
