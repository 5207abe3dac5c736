package lattice

import (
	"fmt"

	"github.com/cs-au-dk/ineq/algebra/expr"
	"github.com/cs-au-dk/ineq/algebra/poly"
)

// Interval is a convex subset of the reals and a member of the interval
// lattice. Any interval consists of two interval bounds, `low` and `high`,
// each of which is either open or closed. Infinite bounds are always open.
type Interval struct {
	element
	low, high         IntervalBound
	lowOpen, highOpen bool
}

// Interval creates an interval with possibly infinite bounds. Intervals
// without members are normalized to ⊥.
func (elementFactory) Interval(low, high IntervalBound, lowOpen, highOpen bool) Interval {
	lowOpen = lowOpen || low.IsInfinite()
	highOpen = highOpen || high.IsInfinite()

	switch {
	case low.Gt(high),
		low.Eq(high) && (lowOpen || highOpen):
		return intervalLattice.Bot().Interval()
	}
	return Interval{low: low, high: high, lowOpen: lowOpen, highOpen: highOpen}
}

// Point creates the degenerate interval {r}.
func (elementFactory) Point(r poly.Real) Interval {
	return elFact.Interval(Finite(r), Finite(r), false, false)
}

// Open creates the interval (low, high).
func (elementFactory) Open(low, high IntervalBound) Interval {
	return elFact.Interval(low, high, true, true)
}

// Closed creates the interval [low, high].
func (elementFactory) Closed(low, high IntervalBound) Interval {
	return elFact.Interval(low, high, false, false)
}

// Lopen creates the interval (low, high].
func (elementFactory) Lopen(low, high IntervalBound) Interval {
	return elFact.Interval(low, high, true, false)
}

// Ropen creates the interval [low, high).
func (elementFactory) Ropen(low, high IntervalBound) Interval {
	return elFact.Interval(low, high, false, true)
}

// Lattice retrieves the interval lattice for any interval.
func (Interval) Lattice() Lattice {
	return intervalLattice
}

func (e Interval) String() string {
	switch {
	case e.IsBot():
		return colorize.Const("∅")
	case e.IsPoint():
		return colorize.Bracket("{") + e.low.String() + colorize.Bracket("}")
	}

	l, r := "[", "]"
	if e.lowOpen {
		l = "("
	}
	if e.highOpen {
		r = ")"
	}
	return colorize.Bracket(l) + e.low.String() + ", " + e.high.String() + colorize.Bracket(r)
}

// Interval safely converts an interval.
func (e Interval) Interval() Interval {
	return e
}

// Low returns the lower bound.
func (e Interval) Low() IntervalBound {
	return e.low
}

// High returns the upper bound.
func (e Interval) High() IntervalBound {
	return e.high
}

// LowOpen is true if the lower bound is excluded.
func (e Interval) LowOpen() bool {
	return e.lowOpen
}

// HighOpen is true if the upper bound is excluded.
func (e Interval) HighOpen() bool {
	return e.highOpen
}

// IsBot checks that the interval is equal to ⊥ = ∅, represented as [∞, -∞].
func (e Interval) IsBot() bool {
	_, low := e.low.(PlusInfinity)
	_, high := e.high.(MinusInfinity)
	return low && high
}

// IsTop checks that the interval is equal to ⊤ = (-∞, ∞).
func (e Interval) IsTop() bool {
	_, low := e.low.(MinusInfinity)
	_, high := e.high.(PlusInfinity)
	return low && high
}

// IsPoint checks whether the interval contains exactly one number.
func (e Interval) IsPoint() bool {
	return !e.IsBot() && !e.low.IsInfinite() && e.low.Eq(e.high)
}

// Contains checks whether r is a member of the interval.
func (e Interval) Contains(r poly.Real) bool {
	if e.IsBot() {
		return false
	}
	p := Finite(r)
	lowOk := e.low.Lt(p) || (!e.lowOpen && e.low.Eq(p))
	highOk := p.Lt(e.high) || (!e.highOpen && e.high.Eq(p))
	return lowOk && highOk
}

// startsBefore checks that no member of o is smaller than the lower bound of e.
func (e Interval) startsBefore(o Interval) bool {
	return e.low.Lt(o.low) || (e.low.Eq(o.low) && (!e.lowOpen || o.lowOpen))
}

// endsAfter checks that no member of o is larger than the upper bound of e.
func (e Interval) endsAfter(o Interval) bool {
	return e.high.Gt(o.high) || (e.high.Eq(o.high) && (!e.highOpen || o.highOpen))
}

// touches checks, for an interval e starting before o, whether their union
// is an interval.
func (e Interval) touches(o Interval) bool {
	return o.low.Lt(e.high) || (o.low.Eq(e.high) && (!o.lowOpen || !e.highOpen))
}

// Eq computes m = o. Performs lattice dynamic type checking.
func (e1 Interval) Eq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "=")
	return e1.eq(e2.Interval())
}

func (e1 Interval) eq(e2 Interval) bool {
	if e1.IsBot() || e2.IsBot() {
		return e1.IsBot() && e2.IsBot()
	}
	return e1.low.Eq(e2.low) && e1.high.Eq(e2.high) &&
		e1.lowOpen == e2.lowOpen && e1.highOpen == e2.highOpen
}

// Leq computes m ⊑ o, i. e. m ⊆ o. Performs lattice dynamic type checking.
func (e1 Interval) Leq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊑")
	return e1.leq(e2.Interval())
}

func (e1 Interval) leq(e2 Interval) bool {
	switch {
	case e1.IsBot():
		return true
	case e2.IsBot():
		return false
	}
	return e2.startsBefore(e1) && e2.endsAfter(e1)
}

// Geq computes m ⊒ o. Performs lattice dynamic type checking.
func (e1 Interval) Geq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊒")
	return e2.Interval().leq(e1)
}

// Join computes m ⊔ o. Performs lattice dynamic type checking.
func (e1 Interval) Join(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊔")
	return e1.hull(e2.Interval())
}

// hull computes the smallest interval containing both intervals.
// The resulting interval takes the lowest of the lower bounds,
// and the highest of the upper bounds.
func (e1 Interval) hull(e2 Interval) Interval {
	switch {
	case e1.IsBot():
		return e2
	case e2.IsBot():
		return e1
	}

	res := e1
	if !e1.startsBefore(e2) {
		res.low, res.lowOpen = e2.low, e2.lowOpen
	}
	if !e1.endsAfter(e2) {
		res.high, res.highOpen = e2.high, e2.highOpen
	}
	return res
}

// Meet computes m ⊓ o. Performs lattice dynamic type checking.
func (e1 Interval) Meet(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊓")
	return e1.meet(e2.Interval())
}

// meet computes the intersection of two intervals.
func (e1 Interval) meet(e2 Interval) Interval {
	if e1.IsBot() || e2.IsBot() {
		return intervalLattice.Bot().Interval()
	}

	// [l1, h1] ∩ [l2, h2] = [max(l1, l2), min(h1, h2)]
	low, lowOpen := e1.low, e1.lowOpen
	if e1.startsBefore(e2) {
		low, lowOpen = e2.low, e2.lowOpen
	}
	high, highOpen := e1.high, e1.highOpen
	if e1.endsAfter(e2) {
		high, highOpen = e2.high, e2.highOpen
	}
	return elFact.Interval(low, high, lowOpen, highOpen)
}

// AsRelational expresses membership of x in the interval as a formula.
// Infinite bounds impose no condition.
func (e Interval) AsRelational(x *expr.Expr) *expr.Expr {
	switch {
	case e.IsBot():
		return expr.False()
	case e.IsPoint():
		return expr.Eq(x, e.low.(FiniteBound).Expr())
	}

	var conds []*expr.Expr
	if low, ok := e.low.(FiniteBound); ok {
		if e.lowOpen {
			conds = append(conds, expr.Lt(low.Expr(), x))
		} else {
			conds = append(conds, expr.Le(low.Expr(), x))
		}
	}
	if high, ok := e.high.(FiniteBound); ok {
		if e.highOpen {
			conds = append(conds, expr.Lt(x, high.Expr()))
		} else {
			conds = append(conds, expr.Le(x, high.Expr()))
		}
	}
	return expr.And(conds...)
}

// Evalf numerically evaluates both bounds.
func (e Interval) Evalf() Interval {
	if e.IsBot() {
		return e
	}
	return Interval{
		low:      e.low.Evalf(),
		high:     e.high.Evalf(),
		lowOpen:  e.lowOpen,
		highOpen: e.highOpen,
	}
}

// GetFiniteBounds unpacks the interval bounds, if finite, and panics otherwise.
func (e Interval) GetFiniteBounds() (poly.Real, poly.Real) {
	if e.low.IsInfinite() || e.high.IsInfinite() {
		panic(fmt.Sprintf("Interval %s does not have finite bounds", e))
	}
	return e.low.(FiniteBound).value, e.high.(FiniteBound).value
}
