// Package expr implements the immutable expression trees consumed by the
// inequality solver.
//
// Every node carries a Kind tag drawn from a closed enumeration, and all
// consumers dispatch on it with an exhaustive switch. Constructors keep trees
// in a light canonical form: sums and products are flattened, numeric constants
// are folded, like terms and equal bases are collected, and numeric
// coefficients are distributed over sums. Numbers are exact rationals backed
// by math/big; decimal literals are kept exact but flagged as floats, so that
// callers can detect inexact input and numerically evaluate their output.
//
// Expressions can be built programmatically:
//
//	x := expr.RealSym("x")
//	e := expr.Sub(expr.Abs(expr.Sub(x, expr.Int(5))), expr.Int(3))
//	ineq := expr.Rel(e, expr.LT, expr.Int(0)) // abs(x - 5) - 3 < 0
//
// or parsed from text, using Go's scanner for tokenisation:
//
//	ineq, err := expr.Parse("abs(x - 5) - 3 < 0", expr.WithRealSymbols("x"))
package expr
