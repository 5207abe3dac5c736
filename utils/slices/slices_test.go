package slices

import "testing"

func TestFind(t *testing.T) {
	x, ok := Find([]int{1, 4, 9}, func(x int) bool { return x > 3 })
	if !ok || x != 4 {
		t.Errorf("expected to find 4, got %d, %v", x, ok)
	}
	if _, ok := Find([]int{1, 4, 9}, func(x int) bool { return x > 10 }); ok {
		t.Errorf("found an element larger than 10")
	}
}

func TestOneOf(t *testing.T) {
	if !OneOf("png", "svg", "png") || OneOf("gif", "svg", "png") {
		t.Errorf("OneOf mismatch")
	}
}

func TestUniqueBy(t *testing.T) {
	res := UniqueBy([]string{"x", "y", "x", "z", "y"}, func(s string) string { return s })
	if len(res) != 3 || res[0] != "x" || res[1] != "y" || res[2] != "z" {
		t.Errorf("expected [x y z], got %v", res)
	}
}
