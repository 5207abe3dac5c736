package lattice

import (
	"os"
	"testing"

	"github.com/cs-au-dk/ineq/algebra/expr"
	"github.com/cs-au-dk/ineq/algebra/poly"
	"github.com/cs-au-dk/ineq/utils"
)

func TestMain(m *testing.M) {
	utils.Opts().SetNoColorize(true)
	os.Exit(m.Run())
}

func TestIntervalJoin(t *testing.T) {
	lat := Create().Lattice().Interval()
	closed := Create().Element().Closed
	open := Create().Element().Open

	b := FiniteInt
	type P = PlusInfinity
	type M = MinusInfinity

	tests := []struct {
		a, b, expected Element
	}{
		{lat.Bot(), lat.Bot(), lat.Bot()},
		{lat.Bot(), lat.Top(), lat.Top()},
		{lat.Top(), lat.Bot(), lat.Top()},
		{lat.Top(), lat.Top(), lat.Top()},
		{lat.Bot(), closed(b(0), b(0)), closed(b(0), b(0))},
		{closed(b(0), b(0)), lat.Bot(), closed(b(0), b(0))},
		{closed(b(0), b(0)), closed(b(1), b(1)), closed(b(0), b(1))},
		{closed(b(1), b(1)), closed(b(0), b(0)), closed(b(0), b(1))},
		{closed(b(1), b(2)), closed(b(3), b(4)), closed(b(1), b(4))},
		{open(b(-1), b(0)), closed(b(0), b(1)), Create().Element().Lopen(b(-1), b(1))},
		{open(b(0), b(1)), closed(b(0), b(1)), closed(b(0), b(1))},
		{closed(b(0), b(1024)), closed(b(0), P{}), closed(b(0), P{})},
		{closed(b(-1024), b(0)), closed(b(0), P{}), closed(b(-1024), P{})},
		{closed(M{}, b(0)), closed(b(-1024), b(0)), closed(M{}, b(0))},
		{closed(M{}, b(-1024)), closed(b(1024), P{}), lat.Top()},
	}

	for _, test := range tests {
		res := test.a.Join(test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s ⊔ %s = %s, expected %s\n", test.a, test.b, res, test.expected)
		} else {
			t.Logf("%s ⊔ %s = %s\n", test.a, test.b, res)
		}
	}
}

func TestIntervalMeet(t *testing.T) {
	lat := Create().Lattice().Interval()
	el := Create().Element()

	b := FiniteInt
	type P = PlusInfinity
	type M = MinusInfinity

	tests := []struct {
		a, b, expected Element
	}{
		{lat.Bot(), lat.Top(), lat.Bot()},
		{lat.Top(), lat.Top(), lat.Top()},
		{el.Closed(b(0), b(2)), el.Closed(b(1), b(3)), el.Closed(b(1), b(2))},
		{el.Open(b(0), b(2)), el.Closed(b(0), b(2)), el.Open(b(0), b(2))},
		{el.Closed(b(0), b(1)), el.Closed(b(1), b(2)), el.Point(poly.IntReal(1))},
		{el.Ropen(b(0), b(1)), el.Closed(b(1), b(2)), lat.Bot()},
		{el.Closed(b(0), b(1)), el.Closed(b(2), b(3)), lat.Bot()},
		{el.Open(M{}, b(5)), el.Open(b(-5), P{}), el.Open(b(-5), b(5))},
	}

	for _, test := range tests {
		res := test.a.Meet(test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s ⊓ %s = %s, expected %s\n", test.a, test.b, res, test.expected)
		}
	}
}

func TestIntervalNormalization(t *testing.T) {
	el := Create().Element()
	b := FiniteInt

	for _, iv := range []Interval{
		el.Open(b(1), b(1)),
		el.Lopen(b(1), b(1)),
		el.Closed(b(2), b(1)),
		el.Closed(PlusInfinity{}, PlusInfinity{}),
	} {
		if !iv.IsBot() {
			t.Errorf("%s should be empty", iv)
		}
	}

	iv := el.Closed(MinusInfinity{}, b(0))
	if !iv.LowOpen() || iv.HighOpen() {
		t.Errorf("%s should be open at -∞ only", iv)
	}
}

func TestIntervalLeq(t *testing.T) {
	el := Create().Element()
	b := FiniteInt

	tests := []struct {
		a, b     Interval
		expected bool
	}{
		{el.Open(b(0), b(1)), el.Closed(b(0), b(1)), true},
		{el.Closed(b(0), b(1)), el.Open(b(0), b(1)), false},
		{el.Closed(b(0), b(1)), el.Open(MinusInfinity{}, PlusInfinity{}), true},
		{el.Closed(b(0), b(2)), el.Closed(b(1), b(3)), false},
	}

	for _, test := range tests {
		if res := test.a.Leq(test.b); res != test.expected {
			t.Errorf("%s ⊑ %s = %v, expected %v", test.a, test.b, res, test.expected)
		}
	}
}

func TestIntervalContains(t *testing.T) {
	el := Create().Element()
	b := FiniteInt
	r := poly.IntReal

	iv := el.Ropen(b(-2), b(3))
	for n, expected := range map[int64]bool{-3: false, -2: true, 0: true, 3: false, 4: false} {
		if res := iv.Contains(r(n)); res != expected {
			t.Errorf("%d ∈ %s = %v, expected %v", n, iv, res, expected)
		}
	}
}

func TestIntervalString(t *testing.T) {
	el := Create().Element()
	b := FiniteInt

	tests := []struct {
		iv       Interval
		expected string
	}{
		{el.Open(b(-2), b(3)), "(-2, 3)"},
		{el.Lopen(b(-2), b(3)), "(-2, 3]"},
		{el.Closed(MinusInfinity{}, b(3)), "(-∞, 3]"},
		{el.Point(poly.IntReal(4)), "{4}"},
		{el.Open(b(1), b(1)), "∅"},
		{el.Closed(FiniteRat(1, 2), PlusInfinity{}), "[1/2, ∞)"},
	}

	for _, test := range tests {
		if res := test.iv.String(); res != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, res)
		}
	}
}

func TestIntervalAsRelational(t *testing.T) {
	el := Create().Element()
	b := FiniteInt
	x := expr.RealSym("x")

	tests := []struct {
		iv       Interval
		expected string
	}{
		{el.Open(b(-2), PlusInfinity{}), "-2 < x"},
		{el.Closed(MinusInfinity{}, b(3)), "x <= 3"},
		{el.Ropen(b(-2), b(3)), "-2 <= x && x < 3"},
		{el.Point(poly.IntReal(4)), "x == 4"},
		{Create().Lattice().Interval().Top().Interval(), "true"},
		{Create().Lattice().Interval().Bot().Interval(), "false"},
	}

	for _, test := range tests {
		if res := test.iv.AsRelational(x).String(); res != test.expected {
			t.Errorf("%s: expected %s, got %s", test.iv, test.expected, res)
		}
	}
}
