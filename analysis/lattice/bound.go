package lattice

import (
	"math/big"

	"github.com/cs-au-dk/ineq/algebra/expr"
	"github.com/cs-au-dk/ineq/algebra/poly"
)

// IntervalBound is an interface implemented by all interval bounds i.e.,
// any FiniteBound value, PlusInfinity and MinusInfinity.
type IntervalBound interface {
	String() string

	// IsInfinite checks whether the interval bound is infinite.
	IsInfinite() bool

	// BINARY RELATIONS

	// Eq checks for interval bound equality.
	Eq(IntervalBound) bool
	// Leq computes b1 ≤ b2. The semantics is -∞ ≤ c ≤ ∞, where c ∈ ℝ.
	Leq(IntervalBound) bool
	// Geq computes b1 ≥ b2. The semantics is ∞ ≥ c ≥ -∞, where c ∈ ℝ.
	Geq(IntervalBound) bool
	// Lt computes b1 < b2. The semantics is -∞ < c < ∞, where c ∈ ℝ.
	Lt(IntervalBound) bool
	// Gt computes b1 > b2. The semantics is ∞ > c > -∞, where c ∈ ℝ.
	Gt(IntervalBound) bool

	// Max computes max(b1, b2).
	Max(IntervalBound) IntervalBound
	// Min computes min(b1, b2).
	Min(IntervalBound) IntervalBound

	// Evalf numerically evaluates finite bounds.
	Evalf() IntervalBound
}

type (
	// FiniteBound is used to represent finite limits of an interval value.
	FiniteBound struct {
		value poly.Real
	}
	// PlusInfinity represents ∞.
	PlusInfinity struct{}
	// MinusInfinity represents -∞.
	MinusInfinity struct{}
)

// Finite wraps an exact real as an interval bound.
func Finite(r poly.Real) FiniteBound {
	return FiniteBound{r}
}

// FiniteInt wraps an integer as an interval bound.
func FiniteInt(n int64) FiniteBound {
	return FiniteBound{poly.IntReal(n)}
}

// FiniteRat wraps the rational p/q as an interval bound.
func FiniteRat(p, q int64) FiniteBound {
	return FiniteBound{poly.RatReal(big.NewRat(p, q))}
}

// Value is the real number of the bound.
func (b FiniteBound) Value() poly.Real {
	return b.value
}

// Expr converts the bound into an expression.
func (b FiniteBound) Expr() *expr.Expr {
	return b.value.Expr()
}

// IsInfinite is false for the finite bound.
func (FiniteBound) IsInfinite() bool {
	return false
}

func (b FiniteBound) String() string {
	return colorize.Element(b.value.String())
}

// cmp compares a finite bound against any bound.
func (b1 FiniteBound) cmp(b2 IntervalBound) int {
	switch b2 := b2.(type) {
	case FiniteBound:
		return b1.value.Cmp(b2.value)
	case PlusInfinity:
		return -1
	case MinusInfinity:
		return 1
	}
	panic(errPatternMatch(b2))
}

// Eq compares for equality with another bound. Two finite bounds
// are equal if their underlying values are equal.
func (b1 FiniteBound) Eq(b2 IntervalBound) bool {
	return b1.cmp(b2) == 0
}

// Leq computes b1 ≤ b2. The semantics is -∞ ≤ c ≤ ∞, where c ∈ ℝ.
func (b1 FiniteBound) Leq(b2 IntervalBound) bool {
	return b1.cmp(b2) <= 0
}

// Geq computes b1 ≥ b2. The semantics is ∞ ≥ c ≥ -∞, where c ∈ ℝ.
func (b1 FiniteBound) Geq(b2 IntervalBound) bool {
	return b1.cmp(b2) >= 0
}

// Lt computes b1 < b2. The semantics is -∞ < c < ∞, where c ∈ ℝ.
func (b1 FiniteBound) Lt(b2 IntervalBound) bool {
	return b1.cmp(b2) < 0
}

// Gt computes b1 > b2.
func (b1 FiniteBound) Gt(b2 IntervalBound) bool {
	return b1.cmp(b2) > 0
}

// Max computes max(b1, b2).
func (b1 FiniteBound) Max(b2 IntervalBound) IntervalBound {
	if b1.Lt(b2) {
		return b2
	}
	return b1
}

// Min computes min(b1, b2).
func (b1 FiniteBound) Min(b2 IntervalBound) IntervalBound {
	if b1.Gt(b2) {
		return b2
	}
	return b1
}

// Evalf numerically evaluates the bound.
func (b FiniteBound) Evalf() IntervalBound {
	return FiniteBound{b.value.Evalf(poly.EvalfDigits)}
}

// IsInfinite is true for ∞.
func (PlusInfinity) IsInfinite() bool {
	return true
}

func (PlusInfinity) String() string {
	return colorize.Element("∞")
}

// Eq checks for interval bound equality.
func (PlusInfinity) Eq(b2 IntervalBound) bool {
	_, ok := b2.(PlusInfinity)
	return ok
}

// Leq computes ∞ ≤ b.
func (b1 PlusInfinity) Leq(b2 IntervalBound) bool {
	return b1.Eq(b2)
}

// Geq computes ∞ ≥ b. It is always true as ∞ is the largest possible bound.
func (PlusInfinity) Geq(IntervalBound) bool {
	return true
}

// Lt computes ∞ < b. It is always false as ∞ is the largest possible bound.
func (PlusInfinity) Lt(IntervalBound) bool {
	return false
}

// Gt computes ∞ > b.
func (b1 PlusInfinity) Gt(b2 IntervalBound) bool {
	return !b1.Eq(b2)
}

// Max computes max(∞, b) = ∞.
func (b1 PlusInfinity) Max(IntervalBound) IntervalBound {
	return b1
}

// Min computes min(∞, b) = b.
func (PlusInfinity) Min(b2 IntervalBound) IntervalBound {
	return b2
}

func (b PlusInfinity) Evalf() IntervalBound {
	return b
}

// IsInfinite is true for -∞.
func (MinusInfinity) IsInfinite() bool {
	return true
}

func (MinusInfinity) String() string {
	return colorize.Element("-∞")
}

// Eq computes -∞ = b.
func (MinusInfinity) Eq(b2 IntervalBound) bool {
	_, ok := b2.(MinusInfinity)
	return ok
}

// Leq computes -∞ ≤ b. It is always true as -∞ is the smallest possible bound.
func (MinusInfinity) Leq(IntervalBound) bool {
	return true
}

// Geq computes -∞ ≥ b.
func (b1 MinusInfinity) Geq(b2 IntervalBound) bool {
	return b1.Eq(b2)
}

// Lt computes -∞ < b.
func (b1 MinusInfinity) Lt(b2 IntervalBound) bool {
	return !b1.Eq(b2)
}

// Gt computes -∞ > b. It is always false as -∞ is the smallest possible bound.
func (MinusInfinity) Gt(IntervalBound) bool {
	return false
}

// Max computes max(-∞, b) = b.
func (MinusInfinity) Max(b2 IntervalBound) IntervalBound {
	return b2
}

// Min computes min(-∞, b) = -∞.
func (b1 MinusInfinity) Min(IntervalBound) IntervalBound {
	return b1
}

func (b MinusInfinity) Evalf() IntervalBound {
	return b
}
