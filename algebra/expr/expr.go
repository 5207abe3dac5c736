package expr

import (
	"math/big"

	"github.com/cs-au-dk/ineq/utils"
)

// Expr is an immutable expression node. The fields populated depend on the
// node's Kind:
//
//	Number:    val (and text for floats)
//	Symbol:    name, real
//	Func:      name, args
//	Predicate: name, args[0]
//	Rel:       op, args[0] (left), args[1] (right)
//	Bool:      truth
//	others:    args
type Expr struct {
	kind  Kind
	val   *big.Rat
	float bool
	text  string
	name  string
	real  bool
	op    Relation
	truth bool
	args  []*Expr
}

func (e *Expr) Kind() Kind {
	return e.kind
}

// Args returns the children of a composite node. The slice must not be
// modified.
func (e *Expr) Args() []*Expr {
	return e.args
}

// Arg returns the i'th child.
func (e *Expr) Arg(i int) *Expr {
	return e.args[i]
}

// Name of a symbol, function or predicate node.
func (e *Expr) Name() string {
	return e.name
}

// IsReal is true for symbols declared real.
func (e *Expr) IsReal() bool {
	return e.kind == KindSymbol && e.real
}

// Value returns a copy of a number's exact value.
func (e *Expr) Value() *big.Rat {
	if e.kind != KindNumber {
		panic("Value() called on " + e.kind.String())
	}
	return new(big.Rat).Set(e.val)
}

// IsFloat is true for numbers originating from decimal literals or from
// arithmetic involving them.
func (e *Expr) IsFloat() bool {
	return e.kind == KindNumber && e.float
}

func (e *Expr) IsNumber() bool {
	return e.kind == KindNumber
}

func (e *Expr) IsInteger() bool {
	return e.kind == KindNumber && e.val.IsInt()
}

func (e *Expr) IsZero() bool {
	return e.kind == KindNumber && e.val.Sign() == 0
}

func (e *Expr) IsOne() bool {
	return e.kind == KindNumber && e.val.Cmp(ratOne) == 0
}

// Sign of a number node.
func (e *Expr) Sign() int {
	return e.val.Sign()
}

// IsFunction is true for applied functions, including Abs.
func (e *Expr) IsFunction() bool {
	return e.kind == KindAbs || e.kind == KindFunc
}

// IsRelational is true for relational nodes.
func (e *Expr) IsRelational() bool {
	return e.kind == KindRel
}

// Op of a relational node.
func (e *Expr) Op() Relation {
	return e.op
}

// Lhs of a relational node.
func (e *Expr) Lhs() *Expr {
	return e.args[0]
}

// Rhs of a relational node.
func (e *Expr) Rhs() *Expr {
	return e.args[1]
}

// Truth value of a boolean constant.
func (e *Expr) Truth() bool {
	return e.truth
}

func (e *Expr) IsTrue() bool {
	return e.kind == KindBool && e.truth
}

func (e *Expr) IsFalse() bool {
	return e.kind == KindBool && !e.truth
}

// Equal is structural equality. Numbers compare by value, so that 2 and 2.0
// are equal.
func (e *Expr) Equal(o *Expr) bool {
	if e == o {
		return true
	}
	if e == nil || o == nil || e.kind != o.kind {
		return false
	}

	switch e.kind {
	case KindNumber:
		return e.val.Cmp(o.val) == 0
	case KindSymbol:
		return e.name == o.name && e.real == o.real
	case KindBool:
		return e.truth == o.truth
	case KindRel:
		if e.op != o.op {
			return false
		}
	case KindFunc, KindPredicate:
		if e.name != o.name {
			return false
		}
	}

	if len(e.args) != len(o.args) {
		return false
	}
	for i, a := range e.args {
		if !a.Equal(o.args[i]) {
			return false
		}
	}
	return true
}

// Hash is consistent with Equal.
func (e *Expr) Hash() uint32 {
	hs := []uint32{uint32(e.kind)}
	switch e.kind {
	case KindNumber:
		hs = append(hs, utils.HashString(e.val.RatString()))
	case KindSymbol:
		h := utils.HashString(e.name)
		if e.real {
			h++
		}
		hs = append(hs, h)
	case KindBool:
		if e.truth {
			hs = append(hs, 1)
		}
	case KindRel:
		hs = append(hs, uint32(e.op))
	case KindFunc, KindPredicate:
		hs = append(hs, utils.HashString(e.name))
	}
	for _, a := range e.args {
		hs = append(hs, a.Hash())
	}
	return utils.HashCombine(hs...)
}
