package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cs-au-dk/ineq/algebra/assume"
	"github.com/cs-au-dk/ineq/algebra/expr"
	tu "github.com/cs-au-dk/ineq/testutil"
)

func branchStrings(bs []Branch) (res []string) {
	for _, b := range bs {
		res = append(res, b.String())
	}
	return
}

func TestCaseSplit(t *testing.T) {
	tests := []struct {
		src      string
		expected []string
	}{
		{"x + 1", []string{"x + 1 if []"}},
		{"abs(x)", []string{"x if [x >= 0]", "-x if [x < 0]"}},
		{"abs(x - 5) - 3", []string{
			"x - 8 if [x - 5 >= 0]",
			"2 - x if [x - 5 < 0]",
		}},
		{"abs(x)*abs(x - 1)", []string{
			"x*(x - 1) if [x >= 0, x - 1 >= 0]",
			"x*(1 - x) if [x >= 0, x - 1 < 0]",
			"-x*(x - 1) if [x < 0, x - 1 >= 0]",
			"-x*(1 - x) if [x < 0, x - 1 < 0]",
		}},
		{"abs(abs(x) - 1)", []string{
			"x - 1 if [x >= 0, x - 1 >= 0]",
			"1 - x if [x >= 0, x - 1 < 0]",
			"-x - 1 if [x < 0, -x - 1 >= 0]",
			"x + 1 if [x < 0, -x - 1 < 0]",
		}},
		{"abs(x)**2", []string{"x**2 if [x >= 0]", "x**2 if [x < 0]"}},
	}

	for _, test := range tests {
		bs, err := CaseSplit(tu.Parse(t, test.src))
		require.NoError(t, err)
		assert.Equal(t, test.expected, branchStrings(bs), test.src)
	}
}

func TestCaseSplitSharedOperands(t *testing.T) {
	bs, err := CaseSplit(tu.Parse(t, "abs(x) + abs(x)"))
	require.NoError(t, err)
	assert.Len(t, bs, 2, "abs(x) + abs(x) is 2*abs(x)")

	bs, err = CaseSplit(tu.Parse(t, "abs(x) + abs(x)**3"))
	require.NoError(t, err)
	assert.Len(t, bs, 4)
}

func TestCaseSplitUnsupportedExponent(t *testing.T) {
	for _, src := range []string{"abs(x)**-1", "sqrt(abs(x))", "abs(x)**(1/3)"} {
		_, err := CaseSplit(tu.Parse(t, src))
		assert.ErrorIs(t, err, ErrUnsupportedExponent, src)
	}
}

func TestReduceAbs(t *testing.T) {
	tests := []struct {
		src      string
		rel      expr.Relation
		expected string
	}{
		{"abs(x - 5) - 3", expr.LT, "2 < x && x < 8"},
		{"abs(x - 5) - 3", expr.LE, "2 <= x && x <= 8"},
		{"abs(x - 5) - 3", expr.GT, "x < 2 || 8 < x"},
		{"abs(x - 5) - 3", expr.EQ, "x == 2 || x == 8"},
		{"abs(x) - 2", expr.GE, "x <= -2 || 2 <= x"},
		{"abs(x) + 1", expr.LT, "false"},
		{"abs(abs(x) - 1) - 1", expr.LE, "-2 <= x && x <= 2"},
		{"abs(x)**2 - 4", expr.LT, "-2 < x && x < 2"},
	}

	ctx := tu.Context(t, "Q.real(x)")
	gen := expr.Sym("x")
	for _, test := range tests {
		res, err := ReduceAbs(tu.Parse(t, test.src), test.rel, gen, ctx)
		require.NoError(t, err, test.src)
		assert.Equal(t, test.expected, res.String(), "%s %s 0", test.src, test.rel)
	}
}

func TestReduceAbsNonReal(t *testing.T) {
	_, err := ReduceAbs(tu.Parse(t, "abs(x) - 1"), expr.LT, expr.Sym("x"), assume.Empty())
	assert.ErrorIs(t, err, ErrNonRealVariable)

	_, err = ReduceAbs(tu.Parse(t, "abs(x) - 1"), expr.LT, x, assume.Empty())
	assert.NoError(t, err, "declared real")

	_, err = ReduceAbs(tu.Parse(t, "abs(x) - 1"), expr.Relation(42), x, assume.Empty())
	assert.ErrorIs(t, err, ErrInvalidRelation)
}

func TestReduceAbsSystem(t *testing.T) {
	ineqs := []Inequality{
		FromExpr(tu.Parse(t, "abs(x) < 2")),
		FromExpr(tu.Parse(t, "abs(x - 1) >= 1")),
	}

	res, err := ReduceAbsSystem(ineqs, x, assume.Empty())
	require.NoError(t, err)
	assert.Equal(t, "-2 < x && x < 2 && (x <= 0 || 2 <= x)", res.String())
}
