package lattice

// IntervalLattice represents the lattice of real intervals ordered by
// inclusion. Joins over-approximate unions by the convex hull.
type IntervalLattice struct {
	lattice
}

// intervalLattice is a singleton instantiation of the interval lattice.
var intervalLattice = &IntervalLattice{}

// Interval yields the interval lattice.
func (latticeFactory) Interval() *IntervalLattice {
	return intervalLattice
}

// Top yields (-∞, +∞).
func (*IntervalLattice) Top() Element {
	return Interval{
		low:      MinusInfinity{},
		high:     PlusInfinity{},
		lowOpen:  true,
		highOpen: true,
	}
}

// Bot yields ∅, represented as (+∞, -∞).
func (*IntervalLattice) Bot() Element {
	return Interval{
		low:      PlusInfinity{},
		high:     MinusInfinity{},
		lowOpen:  true,
		highOpen: true,
	}
}

func (*IntervalLattice) String() string {
	return "[" + colorize.Lattice("ℝ") +
		", " + colorize.Lattice("ℝ") + "]"
}

// Eq checks for equality with another lattice.
func (l1 *IntervalLattice) Eq(l2 Lattice) bool {
	switch l2.(type) {
	case *IntervalLattice:
		return true
	default:
		return false
	}
}

// Interval safely converts the interval lattice to IntervalLattice.
func (l1 *IntervalLattice) Interval() *IntervalLattice {
	return l1
}
