package lattice

import (
	"errors"
	"fmt"

	"github.com/cs-au-dk/ineq/utils"
	"github.com/fatih/color"
)

var colorize = struct {
	Lattice func(...interface{}) string
	Element func(...interface{}) string
	Const   func(...interface{}) string
	Bracket func(...interface{}) string
}{
	Lattice: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiBlue).SprintFunc())(is...)
	},
	Element: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgCyan).SprintFunc())(is...)
	},
	Const: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiWhite).SprintFunc())(is...)
	},
	Bracket: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgYellow).SprintFunc())(is...)
	},
}

var (
	errUnsupportedTypeConversion = errors.New("UnsupportedTypeConversion")
	errPatternMatch              = func(v interface{}) error {
		return fmt.Errorf("invalid pattern match: %v %T", v, v)
	}
)

// Element is implemented by every lattice element.
type Element interface {
	fmt.Stringer

	// Type conversion API
	Interval() Interval
	IntervalSet() IntervalSet

	Lattice() Lattice

	// Lattice operations
	Eq(Element) bool
	Geq(Element) bool
	Leq(Element) bool
	Join(Element) Element
	Meet(Element) Element

	IsBot() bool
	IsTop() bool
}

// Lattice is implemented by every lattice.
type Lattice interface {
	fmt.Stringer

	Top() Element
	Bot() Element
	Eq(Lattice) bool

	Interval() *IntervalLattice
	IntervalSet() *IntervalSetLattice
}

// element provides the failing conversions of every lattice element.
type element struct{}

func (element) Interval() Interval {
	panic(errUnsupportedTypeConversion)
}

func (element) IntervalSet() IntervalSet {
	panic(errUnsupportedTypeConversion)
}

// lattice provides the failing conversions of every lattice.
type lattice struct{}

func (lattice) Interval() *IntervalLattice {
	panic(errUnsupportedTypeConversion)
}

func (lattice) IntervalSet() *IntervalSetLattice {
	panic(errUnsupportedTypeConversion)
}

// checkLatticeMatch panics if the lattices of two elements differ.
func checkLatticeMatch(l1 Lattice, l2 Lattice, op string) {
	if !l1.Eq(l2) {
		panic(fmt.Sprintf("Lattice mismatch for %s: %s and %s", op, l1, l2))
	}
}
