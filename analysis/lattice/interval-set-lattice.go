package lattice

import "github.com/benbjohnson/immutable"

// IntervalSetLattice is the powerset lattice of finite unions of real
// intervals, ordered by inclusion.
type IntervalSetLattice struct {
	lattice
}

var intervalSetLattice = &IntervalSetLattice{}

// IntervalSet yields the interval set lattice.
func (latticeFactory) IntervalSet() *IntervalSetLattice {
	return intervalSetLattice
}

// Top yields ℝ.
func (*IntervalSetLattice) Top() Element {
	return IntervalSet{
		intervals: immutable.NewList[Interval]().Append(intervalLattice.Top().Interval()),
	}
}

// Bot yields ∅.
func (*IntervalSetLattice) Bot() Element {
	return IntervalSet{intervals: immutable.NewList[Interval]()}
}

func (*IntervalSetLattice) String() string {
	return colorize.Lattice("℘(ℝ)")
}

// Eq checks for equality with another lattice.
func (*IntervalSetLattice) Eq(l2 Lattice) bool {
	_, ok := l2.(*IntervalSetLattice)
	return ok
}

// IntervalSet safely converts the lattice.
func (l *IntervalSetLattice) IntervalSet() *IntervalSetLattice {
	return l
}
