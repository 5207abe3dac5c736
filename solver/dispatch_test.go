package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cs-au-dk/ineq/algebra/assume"
	"github.com/cs-au-dk/ineq/algebra/expr"
	tu "github.com/cs-au-dk/ineq/testutil"
)

func TestReduce(t *testing.T) {
	tests := []struct {
		name     string
		ineqs    []string
		assume   []string
		symbols  []string
		expected string
	}{
		{"fast path", []string{"0 <= x + 3"}, []string{"Q.real(x)"}, []string{"x"}, "x >= -3"},
		{"fast path reversed", []string{"2*x + 1 < 3*x"}, nil, []string{"x"}, "x > 1"},
		{"fast path with parameter", []string{"0 <= x + 2*y - 1"}, nil, []string{"x"}, "x >= 1 - 2*y"},
		{"fast path with assumed sign", []string{"y*x > 2*y"}, []string{"Q.positive(y)"}, []string{"x"}, "x > 2"},
		{"fast path with assumed negative sign", []string{"y*x > 0"}, []string{"Q.negative(y)"}, []string{"x"}, "x < 0"},
		{"non-linear", []string{"x**2 - 1 > 0"}, []string{"Q.real(x)"}, []string{"x"}, "x < -1 || 1 < x"},
		{"equality skips fast path", []string{"x - 1 == 0"}, []string{"Q.real(x)"}, []string{"x"}, "x == 1"},
		{"literal false", []string{"x > 0", "false"}, nil, nil, "false"},
		{"literal false before invalid", []string{"false", "x + y > 0"}, nil, nil, "false"},
		{"literal true", []string{"true", "x**2 <= 0"}, []string{"Q.real(x)"}, nil, "x == 0"},
		{"extra assumptions", []string{"x**2 - 1 > 0", "Q.real(x)"}, nil, nil, "x < -1 || 1 < x"},
		{"not real", []string{"x + 2 > 0"}, nil, nil, "-2 < re(x) && im(x) == 0"},
		{"constant", []string{"x - x > 0"}, nil, nil, "false"},
		{"conjunction", []string{"x > 1", "x**2 < 9"}, []string{"Q.real(x)"}, nil, "1 < x && x < 3"},
		{"independent generators", []string{"y < 2", "x > 1"}, []string{"Q.real(x)", "Q.real(y)"}, nil, "1 < x && y < 2"},
		{"abs", []string{"abs(x - 5) < 3"}, []string{"Q.real(x)"}, nil, "2 < x && x < 8"},
		{"abs and poly", []string{"abs(x) < 2", "x > 0"}, []string{"Q.real(x)"}, nil, "0 < x && -2 < x && x < 2"},
		{"empty", nil, nil, nil, "true"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res, err := Reduce(
				tu.ParseAll(t, test.ineqs),
				tu.Context(t, test.assume...),
				tu.ParseAll(t, test.symbols),
			)
			require.NoError(t, err)
			assert.Equal(t, test.expected, res.String())
		})
	}
}

func TestReduceErrors(t *testing.T) {
	tests := []struct {
		name    string
		ineqs   []string
		symbols []string
		err     error
	}{
		{"two variables", []string{"x + y > 0"}, nil, ErrMultivariateUnsupported},
		{"degenerate fast path", []string{"y*x > 0"}, []string{"x"}, ErrMultivariateUnsupported},
		{"function", []string{"sin(x) > 0"}, nil, ErrUnsupportedFunction},
		{"function next to abs", []string{"abs(x) + sin(x) > 0"}, nil, ErrUnsupportedFunction},
		{"abs of non-real", []string{"abs(x) < 1"}, nil, ErrNonRealVariable},
		{"not a polynomial", []string{"1/x > 0"}, nil, ErrNotPolynomial},
		{"unknown predicate", []string{"x > 0", "Q.small(x)"}, nil, assume.ErrUnknownPredicate},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Reduce(tu.ParseAll(t, test.ineqs), assume.Empty(), tu.ParseAll(t, test.symbols))
			assert.ErrorIs(t, err, test.err)
		})
	}
}

func TestReduceFastPathMatchesGeneralPath(t *testing.T) {
	ctx := tu.Context(t, "Q.real(x)")
	for _, src := range []string{"3*x - 1 > 0", "0 >= 2 - x/2", "-x < 4", "x/3 + 1 <= 0"} {
		ineq := tu.Parse(t, src)

		fast, err := Reduce([]*expr.Expr{ineq}, ctx, []*expr.Expr{expr.Sym("x")})
		require.NoError(t, err)

		sol, err := ReducePoly(Groups([]*expr.Expr{ineq}), expr.Sym("x"), ctx, false)
		require.NoError(t, err)

		ivs := sol.Set.Intervals()
		require.Len(t, ivs, 1, src)
		assert.Contains(t, []expr.Relation{expr.GT, expr.GE, expr.LT, expr.LE}, fast.Op(), src)

		bound := fast.Rhs()
		require.True(t, bound.IsNumber(), src)
		var value = ivs[0].High()
		if fast.Op() == expr.GT || fast.Op() == expr.GE {
			value = ivs[0].Low()
		}
		assert.Equal(t, bound.String(), value.String(), src)
	}
}
