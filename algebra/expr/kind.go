package expr

import "fmt"

// Kind tags the variant of an expression node.
type Kind uint8

const (
	KindNumber Kind = iota
	KindSymbol
	KindAdd
	KindMul
	KindPow
	KindAbs
	KindFunc
	KindRel
	KindAnd
	KindOr
	KindNot
	KindBool
	KindPredicate
)

var kindNames = [...]string{
	KindNumber:    "Number",
	KindSymbol:    "Symbol",
	KindAdd:       "Add",
	KindMul:       "Mul",
	KindPow:       "Pow",
	KindAbs:       "Abs",
	KindFunc:      "Func",
	KindRel:       "Rel",
	KindAnd:       "And",
	KindOr:        "Or",
	KindNot:       "Not",
	KindBool:      "Bool",
	KindPredicate: "Predicate",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Relation is the operator of a relational node.
type Relation uint8

const (
	EQ Relation = iota
	NE
	GT
	GE
	LT
	LE
)

var relationOps = [...]string{
	EQ: "==",
	NE: "!=",
	GT: ">",
	GE: ">=",
	LT: "<",
	LE: "<=",
}

func (r Relation) String() string {
	if r.Valid() {
		return relationOps[r]
	}
	return fmt.Sprintf("Relation(%d)", r)
}

// Valid checks that r is one of the six relation kinds.
func (r Relation) Valid() bool {
	return r <= LE
}

// Reversed is the relation obtained by swapping both sides:
//
//	a < b  <=>  b > a
func (r Relation) Reversed() Relation {
	switch r {
	case GT:
		return LT
	case GE:
		return LE
	case LT:
		return GT
	case LE:
		return GE
	}
	return r
}

// Negated is the logical complement of the relation.
func (r Relation) Negated() Relation {
	switch r {
	case EQ:
		return NE
	case NE:
		return EQ
	case GT:
		return LE
	case GE:
		return LT
	case LT:
		return GE
	case LE:
		return GT
	}
	return r
}

// IsOrdering is true for the four order relations.
func (r Relation) IsOrdering() bool {
	switch r {
	case GT, GE, LT, LE:
		return true
	}
	return false
}

// Holds reports whether the relation is satisfied by two values whose
// comparison (as returned by a Cmp method) is c.
func (r Relation) Holds(c int) bool {
	switch r {
	case EQ:
		return c == 0
	case NE:
		return c != 0
	case GT:
		return c > 0
	case GE:
		return c >= 0
	case LT:
		return c < 0
	case LE:
		return c <= 0
	}
	return false
}

// ParseRelation maps an operator string to a Relation.
func ParseRelation(op string) (Relation, bool) {
	for r, s := range relationOps {
		if s == op {
			return Relation(r), true
		}
	}
	return 0, false
}
