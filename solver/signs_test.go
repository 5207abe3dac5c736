package solver

import (
	"math/big"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cs-au-dk/ineq/algebra/expr"
	"github.com/cs-au-dk/ineq/algebra/poly"
	L "github.com/cs-au-dk/ineq/analysis/lattice"
	tu "github.com/cs-au-dk/ineq/testutil"
	"github.com/cs-au-dk/ineq/utils"
)

func TestMain(m *testing.M) {
	utils.Opts().SetNoColorize(true)
	os.Exit(m.Run())
}

var x = expr.RealSym("x")

func mustPoly(t *testing.T, src string) poly.Poly {
	t.Helper()
	p, err := poly.New(tu.Parse(t, src), x)
	require.NoError(t, err)
	return p
}

func TestSolvePoly(t *testing.T) {
	tests := []struct {
		poly     string
		rel      expr.Relation
		expected string
	}{
		{"x**2 - 1", expr.GT, "(-∞, -1) ∪ (1, ∞)"},
		{"x**2 - 1", expr.GE, "(-∞, -1] ∪ [1, ∞)"},
		{"x**2 - 1", expr.LT, "(-1, 1)"},
		{"x**2 - 1", expr.LE, "[-1, 1]"},
		{"x**2 - 1", expr.EQ, "{-1} ∪ {1}"},
		{"x**2 - 1", expr.NE, "(-∞, -1) ∪ (-1, 1) ∪ (1, ∞)"},
		{"x**2", expr.LE, "{0}"},
		{"x**2", expr.LT, "∅"},
		{"x**2", expr.GT, "(-∞, 0) ∪ (0, ∞)"},
		{"x**2", expr.GE, "(-∞, ∞)"},
		{"(x - 1)**2*(x - 2)", expr.GT, "(2, ∞)"},
		{"(x - 1)**2*(x - 2)", expr.GE, "{1} ∪ [2, ∞)"},
		{"(x - 1)**2*(x - 2)", expr.LT, "(-∞, 1) ∪ (1, 2)"},
		{"(x - 1)**2*(x - 2)", expr.LE, "(-∞, 2]"},
		{"x**3 - x", expr.EQ, "{-1} ∪ {0} ∪ {1}"},
		{"-x**2 + 2", expr.GT, "(-sqrt(2), sqrt(2))"},
		{"x**2 + 1", expr.GT, "(-∞, ∞)"},
		{"x**2 + 1", expr.EQ, "∅"},
		{"x**2 + 1", expr.NE, "(-∞, ∞)"},
		{"2*x - 1", expr.GE, "[1/2, ∞)"},
		{"2199023255553*x - 1", expr.EQ, "{1/2199023255553}"},
		{"(x - 3000000000000)*(x + 1)", expr.LT, "(-1, 3000000000000)"},
		{"(x**2 - 2)*(x**2 - 3)", expr.LE, "[-sqrt(3), -sqrt(2)] ∪ [sqrt(2), sqrt(3)]"},
		{"3", expr.GT, "(-∞, ∞)"},
		{"3", expr.LE, "∅"},
		{"0", expr.EQ, "(-∞, ∞)"},
		{"0", expr.GE, "(-∞, ∞)"},
		{"0", expr.LE, "(-∞, ∞)"},
		{"0", expr.NE, "∅"},
		{"0", expr.GT, "∅"},
		{"0", expr.LT, "∅"},
	}

	for _, test := range tests {
		res, err := SolvePoly(mustPoly(t, test.poly), test.rel)
		require.NoError(t, err)
		assert.Equal(t, test.expected, res.String(), "%s %s 0", test.poly, test.rel)
	}
}

func TestSolvePolyInvalidRelation(t *testing.T) {
	_, err := SolvePoly(mustPoly(t, "x"), expr.Relation(42))
	assert.ErrorIs(t, err, ErrInvalidRelation)
}

var samplePolys = []string{
	"x",
	"x**2 - 1",
	"(x - 1)**3*(x + 2)*(x - 3)**2",
	"-x**4 + 5*x**2 - 4",
	"x**3 - 2",
	"(x**2 - 2)**2*(x + 1)",
	"x**2 + x + 1",
	"7",
	"0",
}

func solveAll(t *testing.T, p poly.Poly) map[expr.Relation]L.IntervalSet {
	res := map[expr.Relation]L.IntervalSet{}
	for _, rel := range []expr.Relation{expr.EQ, expr.NE, expr.GT, expr.GE, expr.LT, expr.LE} {
		set, err := SolvePoly(p, rel)
		require.NoError(t, err)
		res[rel] = set
	}
	return res
}

func TestSolvePolyPartitions(t *testing.T) {
	for _, src := range samplePolys {
		sets := solveAll(t, mustPoly(t, src))

		assert.True(t, sets[expr.EQ].Union(sets[expr.NE]).IsTop(), "%s: = ∪ ≠", src)
		assert.True(t, sets[expr.EQ].Intersect(sets[expr.NE]).IsEmpty(), "%s: = ∩ ≠", src)
		assert.True(t, sets[expr.GE].Union(sets[expr.LE]).IsTop(), "%s: ≥ ∪ ≤", src)
		assert.True(t, sets[expr.GT].Intersect(sets[expr.LT]).IsEmpty(), "%s: > ∩ <", src)
		assert.True(t, sets[expr.GT].Union(sets[expr.EQ]).Eq(sets[expr.GE]), "%s: > ∪ =", src)
		assert.True(t, sets[expr.LT].Union(sets[expr.EQ]).Eq(sets[expr.LE]), "%s: < ∪ =", src)
	}
}

func TestSolvePolyOddRootsSwapSign(t *testing.T) {
	eps := big.NewRat(1, 1000)

	for _, src := range samplePolys {
		p := mustPoly(t, src)
		sets := solveAll(t, p)

		for _, r := range p.RealRoots() {
			q, ok := r.Root.Rat()
			if !ok {
				continue
			}
			below := poly.RatReal(new(big.Rat).Sub(q, eps))
			above := poly.RatReal(new(big.Rat).Add(q, eps))

			gt, lt := sets[expr.GT], sets[expr.LT]
			if r.Mult%2 == 1 {
				assert.NotEqual(t, gt.Contains(below), gt.Contains(above), "%s at %s", src, r.Root)
				assert.Equal(t, gt.Contains(below), lt.Contains(above), "%s at %s", src, r.Root)
			} else {
				assert.Equal(t, gt.Contains(below), gt.Contains(above), "%s at %s", src, r.Root)
			}
		}
	}
}
