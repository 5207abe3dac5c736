package expr

import "sort"

// Walk visits e and its descendants in pre-order. Returning false from visit
// prunes the subtree below the visited node.
func Walk(e *Expr, visit func(*Expr) bool) {
	if !visit(e) {
		return
	}
	for _, a := range e.args {
		Walk(a, visit)
	}
}

// Find collects every subterm satisfying pred, in pre-order.
func Find(e *Expr, pred func(*Expr) bool) (res []*Expr) {
	Walk(e, func(n *Expr) bool {
		if pred(n) {
			res = append(res, n)
		}
		return true
	})
	return
}

// HasKind checks whether any subterm of e has the given kind.
func HasKind(e *Expr, kind Kind) (found bool) {
	Walk(e, func(n *Expr) bool {
		if n.kind == kind {
			found = true
		}
		return !found
	})
	return
}

// Has checks whether x occurs in e.
func Has(e, x *Expr) (found bool) {
	Walk(e, func(n *Expr) bool {
		if n.Equal(x) {
			found = true
		}
		return !found
	})
	return
}

// FreeSymbols returns the distinct symbols of e ordered by name. Symbols
// under predicates are included.
func FreeSymbols(e *Expr) []*Expr {
	var syms []*Expr
	Walk(e, func(n *Expr) bool {
		if n.kind != KindSymbol {
			return true
		}
		for _, s := range syms {
			if s.Equal(n) {
				return true
			}
		}
		syms = append(syms, n)
		return true
	})
	sort.SliceStable(syms, func(i, j int) bool {
		return syms[i].name < syms[j].name
	})
	return syms
}

// IsConstant is true for expressions without free symbols.
func IsConstant(e *Expr) bool {
	return len(FreeSymbols(e)) == 0
}

// WithArgs rebuilds a composite node of the same kind as e from new
// children, re-applying the canonicalization of the constructors. Leaves
// are returned unchanged.
func WithArgs(e *Expr, args []*Expr) *Expr {
	switch e.kind {
	case KindAdd:
		return Add(args...)
	case KindMul:
		return Mul(args...)
	case KindPow:
		return Pow(args[0], args[1])
	case KindAbs:
		return Abs(args[0])
	case KindFunc:
		return Func(e.name, args...)
	case KindRel:
		return Rel(args[0], e.op, args[1])
	case KindAnd:
		return And(args...)
	case KindOr:
		return Or(args...)
	case KindNot:
		return Not(args[0])
	case KindPredicate:
		return Pred(e.name, args[0])
	}
	return e
}

// Subs replaces every occurrence of old in e by new.
func Subs(e, old, new *Expr) *Expr {
	if e.Equal(old) {
		return new
	}
	if len(e.args) == 0 {
		return e
	}
	args := make([]*Expr, len(e.args))
	changed := false
	for i, a := range e.args {
		args[i] = Subs(a, old, new)
		changed = changed || args[i] != a
	}
	if !changed {
		return e
	}
	return WithArgs(e, args)
}
