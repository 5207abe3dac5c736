package lattice

import (
	"sort"
	"strings"

	"github.com/benbjohnson/immutable"
	uf "github.com/spakin/disjoint"

	"github.com/cs-au-dk/ineq/algebra/expr"
	"github.com/cs-au-dk/ineq/algebra/poly"
)

// IntervalSet is a finite union of pairwise disjoint, non-adjacent intervals,
// kept in ascending order. Every real set produced by the reducer is an
// interval set.
type IntervalSet struct {
	element
	intervals *immutable.List[Interval]
}

// IntervalSet creates the union of the given intervals.
func (elementFactory) IntervalSet(ivs ...Interval) IntervalSet {
	return IntervalSet{intervals: normalize(ivs)}
}

// Reals is the set ℝ.
func Reals() IntervalSet {
	return intervalSetLattice.Top().IntervalSet()
}

// EmptySet is the set ∅.
func EmptySet() IntervalSet {
	return intervalSetLattice.Bot().IntervalSet()
}

// normalize sorts the intervals and merges all intervals whose union is
// convex. Overlapping or touching intervals end up in the same partition.
func normalize(ivs []Interval) *immutable.List[Interval] {
	sorted := make([]Interval, 0, len(ivs))
	for _, iv := range ivs {
		if !iv.IsBot() {
			sorted = append(sorted, iv)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].startsBefore(sorted[j]) && !sorted[j].startsBefore(sorted[i])
	})

	els := make([]*uf.Element, len(sorted))
	var hull Interval
	for i, iv := range sorted {
		els[i] = uf.NewElement()
		els[i].Data = i
		if i > 0 && hull.touches(iv) {
			uf.Union(els[i-1], els[i])
			hull = hull.hull(iv)
			continue
		}
		hull = iv
	}

	res := immutable.NewListBuilder[Interval]()
	for i := 0; i < len(sorted); {
		rep := els[i].Find()
		merged := sorted[i]
		for i++; i < len(sorted) && els[i].Find() == rep; i++ {
			merged = merged.hull(sorted[i])
		}
		res.Append(merged)
	}
	return res.List()
}

func (s IntervalSet) list() *immutable.List[Interval] {
	if s.intervals == nil {
		return immutable.NewList[Interval]()
	}
	return s.intervals
}

// Lattice retrieves the interval set lattice.
func (IntervalSet) Lattice() Lattice {
	return intervalSetLattice
}

// IntervalSet safely converts an interval set.
func (s IntervalSet) IntervalSet() IntervalSet {
	return s
}

// Intervals lists the disjoint intervals in ascending order.
func (s IntervalSet) Intervals() []Interval {
	res := make([]Interval, 0, s.Len())
	s.ForEach(func(iv Interval) {
		res = append(res, iv)
	})
	return res
}

// ForEach visits the intervals in ascending order.
func (s IntervalSet) ForEach(do func(Interval)) {
	for it := s.list().Iterator(); !it.Done(); {
		_, iv := it.Next()
		do(iv)
	}
}

// Len is the number of disjoint intervals.
func (s IntervalSet) Len() int {
	return s.list().Len()
}

// IsEmpty checks for ∅.
func (s IntervalSet) IsEmpty() bool {
	return s.Len() == 0
}

// IsBot checks for ∅.
func (s IntervalSet) IsBot() bool {
	return s.IsEmpty()
}

// IsTop checks for ℝ.
func (s IntervalSet) IsTop() bool {
	return s.Len() == 1 && s.list().Get(0).IsTop()
}

// Contains checks whether r is a member of the set.
func (s IntervalSet) Contains(r poly.Real) bool {
	for it := s.list().Iterator(); !it.Done(); {
		if _, iv := it.Next(); iv.Contains(r) {
			return true
		}
	}
	return false
}

// Union computes s ∪ o.
func (s IntervalSet) Union(o IntervalSet) IntervalSet {
	return elFact.IntervalSet(append(s.Intervals(), o.Intervals()...)...)
}

// Intersect computes s ∩ o.
func (s IntervalSet) Intersect(o IntervalSet) IntervalSet {
	var parts []Interval
	s.ForEach(func(a Interval) {
		o.ForEach(func(b Interval) {
			parts = append(parts, a.meet(b))
		})
	})
	return elFact.IntervalSet(parts...)
}

// Complement computes ℝ \ s.
func (s IntervalSet) Complement() IntervalSet {
	var (
		gaps   []Interval
		lo     IntervalBound = MinusInfinity{}
		loOpen               = true
	)
	s.ForEach(func(iv Interval) {
		gaps = append(gaps, elFact.Interval(lo, iv.low, loOpen, !iv.lowOpen))
		lo, loOpen = iv.high, !iv.highOpen
	})
	gaps = append(gaps, elFact.Interval(lo, PlusInfinity{}, loOpen, true))
	return elFact.IntervalSet(gaps...)
}

// Subtract computes s \ o.
func (s IntervalSet) Subtract(o IntervalSet) IntervalSet {
	return s.Intersect(o.Complement())
}

// Eq computes s = o. Performs lattice dynamic type checking.
func (s IntervalSet) Eq(o Element) bool {
	checkLatticeMatch(s.Lattice(), o.Lattice(), "=")
	return s.eq(o.IntervalSet())
}

func (s IntervalSet) eq(o IntervalSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	for i := 0; i < s.Len(); i++ {
		if !s.list().Get(i).eq(o.list().Get(i)) {
			return false
		}
	}
	return true
}

// Leq computes s ⊑ o, i. e. s ⊆ o. Performs lattice dynamic type checking.
func (s IntervalSet) Leq(o Element) bool {
	checkLatticeMatch(s.Lattice(), o.Lattice(), "⊑")
	return s.leq(o.IntervalSet())
}

// leq relies on normalization: every interval of s must fit inside a
// single interval of o.
func (s IntervalSet) leq(o IntervalSet) bool {
	for it := s.list().Iterator(); !it.Done(); {
		_, a := it.Next()
		found := false
		o.ForEach(func(b Interval) {
			found = found || a.leq(b)
		})
		if !found {
			return false
		}
	}
	return true
}

// Geq computes s ⊒ o. Performs lattice dynamic type checking.
func (s IntervalSet) Geq(o Element) bool {
	checkLatticeMatch(s.Lattice(), o.Lattice(), "⊒")
	return o.IntervalSet().leq(s)
}

// Join computes s ⊔ o = s ∪ o. Performs lattice dynamic type checking.
func (s IntervalSet) Join(o Element) Element {
	checkLatticeMatch(s.Lattice(), o.Lattice(), "⊔")
	return s.Union(o.IntervalSet())
}

// Meet computes s ⊓ o = s ∩ o. Performs lattice dynamic type checking.
func (s IntervalSet) Meet(o Element) Element {
	checkLatticeMatch(s.Lattice(), o.Lattice(), "⊓")
	return s.Intersect(o.IntervalSet())
}

// AsRelational expresses membership of x in the set as a disjunction of
// interval conditions. The empty set yields false.
func (s IntervalSet) AsRelational(x *expr.Expr) *expr.Expr {
	if s.IsEmpty() {
		return expr.False()
	}
	var args []*expr.Expr
	s.ForEach(func(iv Interval) {
		args = append(args, iv.AsRelational(x))
	})
	return expr.Or(args...)
}

// Evalf numerically evaluates every bound.
func (s IntervalSet) Evalf() IntervalSet {
	res := immutable.NewListBuilder[Interval]()
	s.ForEach(func(iv Interval) {
		res.Append(iv.Evalf())
	})
	return IntervalSet{intervals: res.List()}
}

func (s IntervalSet) String() string {
	if s.IsEmpty() {
		return colorize.Const("∅")
	}
	strs := make([]string, 0, s.Len())
	s.ForEach(func(iv Interval) {
		strs = append(strs, iv.String())
	})
	return strings.Join(strs, " ∪ ")
}

// Set lifts an interval to a singleton interval set.
func (e Interval) Set() IntervalSet {
	return elFact.IntervalSet(e)
}
