// Package testutil contains helpers shared by the tests of the solver and
// the command line front end.
package testutil

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/cs-au-dk/ineq/algebra/assume"
	"github.com/cs-au-dk/ineq/algebra/expr"
	"github.com/cs-au-dk/ineq/utils"
)

// Parse parses src and fails the test on syntax errors.
func Parse(t testing.TB, src string, opts ...expr.ParseOption) *expr.Expr {
	t.Helper()
	e, err := expr.Parse(src, opts...)
	require.NoError(t, err, "parsing %q", src)
	return e
}

// ParseAll parses every source string with the same options.
func ParseAll(t testing.TB, srcs []string, opts ...expr.ParseOption) []*expr.Expr {
	t.Helper()
	res := make([]*expr.Expr, 0, len(srcs))
	for _, src := range srcs {
		res = append(res, Parse(t, src, opts...))
	}
	return res
}

// Context builds an assumption context from predicate sources such as
// "Q.real(x)".
func Context(t testing.TB, preds ...string) assume.Context {
	t.Helper()
	ctx, err := assume.Of(ParseAll(t, preds)...)
	require.NoError(t, err)
	return ctx
}

// Golden returns a golden file checker reading from testdata/<name>.golden.
// Output is compared without colors.
func Golden(t *testing.T) *goldie.Goldie {
	t.Helper()
	utils.Opts().SetNoColorize(true)
	return goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
}
