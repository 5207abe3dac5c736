package worklist

import "testing"

func TestStartVisitsInFIFOOrder(t *testing.T) {
	var order []int
	Start(1, func(next int, add func(int)) {
		order = append(order, next)
		if next < 4 {
			add(2 * next)
			add(2*next + 1)
		}
	})

	expected := []int{1, 2, 3, 4, 5, 6, 7}
	if len(order) != len(expected) {
		t.Fatalf("visited %v, expected %v", order, expected)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("visited %v, expected %v", order, expected)
			break
		}
	}
}

func TestEmptyWorklist(t *testing.T) {
	W := Empty[string]()
	if !W.IsEmpty() || W.Len() != 0 {
		t.Fatal("fresh worklist is not empty")
	}
	if next := W.GetNext(); next != "" {
		t.Errorf("GetNext on empty worklist returned %q", next)
	}
	W.Add("a")
	if W.Len() != 1 {
		t.Errorf("Len = %d, expected 1", W.Len())
	}
}
