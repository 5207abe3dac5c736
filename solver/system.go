package solver

import (
	"fmt"
	"strings"

	"github.com/cs-au-dk/ineq/algebra/expr"
	"github.com/cs-au-dk/ineq/algebra/poly"
	L "github.com/cs-au-dk/ineq/analysis/lattice"
)

type (
	// Entry is the inequality p rel 0.
	Entry struct {
		Poly poly.Poly
		Rel  expr.Relation
	}

	// Group is a conjunction of entries.
	Group []Entry

	// System is a disjunction of groups.
	System []Group
)

func (e Entry) String() string {
	return fmt.Sprintf("%s %s 0", e.Poly, e.Rel)
}

func (g Group) String() string {
	strs := make([]string, 0, len(g))
	for _, e := range g {
		strs = append(strs, e.String())
	}
	return "[" + strings.Join(strs, ", ") + "]"
}

// SolveSystem computes the union over all groups of the intersection of
// the solutions of every entry in the group.
func SolveSystem(sys System) (L.IntervalSet, error) {
	res := L.EmptySet()

	for _, group := range sys {
		set := L.Reals()

		for _, entry := range group {
			sol, err := SolvePoly(entry.Poly, entry.Rel)
			if err != nil {
				return L.EmptySet(), err
			}

			if set = set.Intersect(sol); set.IsEmpty() {
				break
			}
		}

		res = res.Union(set)
	}

	return res, nil
}
