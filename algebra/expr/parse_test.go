package expr

import (
	"errors"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		src, expected string
	}{
		{"x - 5", "x - 5"},
		{"-x**2 + 1", "1 - x**2"},
		{"-x^2 + 1", "1 - x**2"},
		{"2**3**2", "512"},
		{"3*x/2", "3*x/2"},
		{"x**(1/2)", "sqrt(x)"},
		{"(x - 1)*(x + 2)", "(x - 1)*(x + 2)"},
		{"abs(x - 5) - 3 < 0", "abs(x - 5) - 3 < 0"},
		{"Abs(Abs(x) - 2) <= 1", "abs(abs(x) - 2) <= 1"},
		{"2 < x < 8", "2 < x && x < 8"},
		{"x > 1 || !(x < 0)", "x > 1 || x >= 0"},
		{"Q.positive(y) && y > 0", "Q.positive(y) && y > 0"},
		{"0.5*x >= 1", "0.5*x >= 1"},
		{"sin(x) > 0", "sin(x) > 0"},
		{"true && x != 0", "x != 0"},
	}

	for _, test := range tests {
		e, err := Parse(test.src)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", test.src, err)
			continue
		}
		if s := e.String(); s != test.expected {
			t.Errorf("Parse(%q) = %q, expected %q", test.src, s, test.expected)
		}
	}
}

func TestParseRealSymbols(t *testing.T) {
	e := MustParse("x + y", WithRealSymbols("x"))
	syms := FreeSymbols(e)
	if len(syms) != 2 {
		t.Fatalf("expected two symbols, found %v", syms)
	}
	if !syms[0].IsReal() || syms[1].IsReal() {
		t.Errorf("only x should be real: %v %v", syms[0].IsReal(), syms[1].IsReal())
	}

	for _, s := range FreeSymbols(MustParse("a*b", WithAllReal())) {
		if !s.IsReal() {
			t.Errorf("%s should be real", s)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		"1 +",
		"x )",
		"(x",
		"x # 2",
		"1/0",
		"Q.real(x, y)",
		"abs()",
	} {
		_, err := Parse(src)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q) returned %v, expected a ParseError", src, err)
		}
	}
}
