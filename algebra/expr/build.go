package expr

import (
	"math/big"
	"strconv"

	"github.com/pkg/errors"
)

var (
	ratZero = new(big.Rat)
	ratOne  = big.NewRat(1, 1)
)

var (
	trueExpr  = &Expr{kind: KindBool, truth: true}
	falseExpr = &Expr{kind: KindBool, truth: false}
)

// Int constructs an integer constant.
func Int(n int64) *Expr {
	return &Expr{kind: KindNumber, val: new(big.Rat).SetInt64(n)}
}

// Rat constructs the rational constant p/q. It panics if q is zero.
func Rat(p, q int64) *Expr {
	return &Expr{kind: KindNumber, val: big.NewRat(p, q)}
}

// Num constructs an exact constant from a copy of r.
func Num(r *big.Rat) *Expr {
	return &Expr{kind: KindNumber, val: new(big.Rat).Set(r)}
}

// Float parses a decimal literal. The value is kept exactly, but the node is
// marked inexact and prints as the given text.
func Float(text string) (*Expr, error) {
	r, ok := new(big.Rat).SetString(text)
	if !ok {
		return nil, errors.Errorf("invalid decimal literal %q", text)
	}
	return &Expr{kind: KindNumber, val: r, float: true, text: text}, nil
}

// FloatOf constructs an inexact constant with the value of r.
func FloatOf(r *big.Rat) *Expr {
	return &Expr{kind: KindNumber, val: new(big.Rat).Set(r), float: true}
}

// FloatText constructs an inexact constant with the value of r that prints
// as text.
func FloatText(r *big.Rat, text string) *Expr {
	return &Expr{kind: KindNumber, val: new(big.Rat).Set(r), float: true, text: text}
}

// Sym constructs a symbol without assumptions.
func Sym(name string) *Expr {
	return &Expr{kind: KindSymbol, name: name}
}

// RealSym constructs a symbol declared real.
func RealSym(name string) *Expr {
	return &Expr{kind: KindSymbol, name: name, real: true}
}

// True is the boolean constant true.
func True() *Expr {
	return trueExpr
}

// False is the boolean constant false.
func False() *Expr {
	return falseExpr
}

// Bool lifts a Go boolean.
func Bool(b bool) *Expr {
	if b {
		return trueExpr
	}
	return falseExpr
}

func numAdd(a, b *Expr) *Expr {
	return &Expr{
		kind:  KindNumber,
		val:   new(big.Rat).Add(a.val, b.val),
		float: a.float || b.float,
	}
}

func numMul(a, b *Expr) *Expr {
	return &Expr{
		kind:  KindNumber,
		val:   new(big.Rat).Mul(a.val, b.val),
		float: a.float || b.float,
	}
}

// numPow raises a number to an integer power. The boolean result is false
// for zero raised to a negative power.
func numPow(b *Expr, n int64) (*Expr, bool) {
	if n < 0 && b.val.Sign() == 0 {
		return nil, false
	}
	neg := n < 0
	if neg {
		n = -n
	}
	num := new(big.Int).Exp(b.val.Num(), big.NewInt(n), nil)
	den := new(big.Int).Exp(b.val.Denom(), big.NewInt(n), nil)
	if neg {
		num, den = den, num
	}
	return &Expr{
		kind:  KindNumber,
		val:   new(big.Rat).SetFrac(num, den),
		float: b.float,
	}, true
}

// splitCoeff separates the numeric coefficient of a term.
func splitCoeff(e *Expr) (*Expr, *Expr) {
	if e.kind == KindMul && e.args[0].kind == KindNumber {
		rest := e.args[1:]
		if len(rest) == 1 {
			return e.args[0], rest[0]
		}
		return e.args[0], &Expr{kind: KindMul, args: rest}
	}
	return Int(1), e
}

// splitPow separates a factor into base and numeric exponent.
func splitPow(e *Expr) (*Expr, *Expr) {
	if e.kind == KindPow && e.args[1].kind == KindNumber {
		return e.args[0], e.args[1]
	}
	return e, Int(1)
}

// Add constructs a sum.
func Add(args ...*Expr) *Expr {
	var flat []*Expr
	for _, a := range args {
		if a.kind == KindAdd {
			flat = append(flat, a.args...)
		} else {
			flat = append(flat, a)
		}
	}

	type term struct{ coeff, base *Expr }
	constant := Int(0)
	var terms []term

	for _, a := range flat {
		if a.kind == KindNumber {
			constant = numAdd(constant, a)
			continue
		}

		c, b := splitCoeff(a)
		found := false
		for i := range terms {
			if terms[i].base.Equal(b) {
				terms[i].coeff = numAdd(terms[i].coeff, c)
				found = true
				break
			}
		}
		if !found {
			terms = append(terms, term{c, b})
		}
	}

	var out []*Expr
	for _, t := range terms {
		if t.coeff.IsZero() {
			continue
		}
		out = append(out, Mul(t.coeff, t.base))
	}
	if !constant.IsZero() || len(out) == 0 {
		out = append(out, constant)
	}

	if len(out) == 1 {
		return out[0]
	}
	return &Expr{kind: KindAdd, args: out}
}

// Mul constructs a product.
func Mul(args ...*Expr) *Expr {
	var flat []*Expr
	for _, a := range args {
		if a.kind == KindMul {
			flat = append(flat, a.args...)
		} else {
			flat = append(flat, a)
		}
	}

	type factor struct{ base, exp *Expr }
	coeff := Int(1)
	var factors []factor

	for _, a := range flat {
		if a.kind == KindNumber {
			coeff = numMul(coeff, a)
			continue
		}

		b, e := splitPow(a)
		found := false
		for i := range factors {
			if factors[i].exp.kind == KindNumber && factors[i].base.Equal(b) {
				factors[i].exp = numAdd(factors[i].exp, e)
				found = true
				break
			}
		}
		if !found {
			factors = append(factors, factor{b, e})
		}
	}

	if coeff.IsZero() {
		return coeff
	}

	var out []*Expr
	for _, f := range factors {
		p := Pow(f.base, f.exp)
		switch p.kind {
		case KindNumber:
			coeff = numMul(coeff, p)
		case KindMul:
			// Powers of products with a numeric part.
			c, rest := splitCoeff(p)
			coeff = numMul(coeff, c)
			if rest.kind == KindMul {
				out = append(out, rest.args...)
			} else {
				out = append(out, rest)
			}
		default:
			out = append(out, p)
		}
	}

	switch {
	case coeff.IsZero():
		return coeff
	case len(out) == 0:
		return coeff
	case len(out) == 1 && out[0].kind == KindAdd && !coeff.IsOne():
		terms := make([]*Expr, 0, len(out[0].args))
		for _, t := range out[0].args {
			terms = append(terms, Mul(coeff, t))
		}
		return Add(terms...)
	case coeff.IsOne() && !coeff.float:
		if len(out) == 1 {
			return out[0]
		}
		return &Expr{kind: KindMul, args: out}
	}
	return &Expr{kind: KindMul, args: append([]*Expr{coeff}, out...)}
}

// Pow constructs b**e.
func Pow(b, e *Expr) *Expr {
	if e.kind == KindNumber {
		switch {
		case e.IsZero():
			return Int(1)
		case e.IsOne():
			return b
		}

		if e.val.IsInt() && e.val.Num().IsInt64() {
			n := e.val.Num().Int64()
			switch b.kind {
			case KindNumber:
				if r, ok := numPow(b, n); ok {
					return r
				}
			case KindPow:
				if inner := b.args[1]; inner.kind == KindNumber && inner.val.IsInt() {
					return Pow(b.args[0], numMul(inner, e))
				}
			case KindMul:
				fs := make([]*Expr, 0, len(b.args))
				for _, f := range b.args {
					fs = append(fs, Pow(f, e))
				}
				return Mul(fs...)
			}
		}
	}
	if b.IsOne() {
		return b
	}
	return &Expr{kind: KindPow, args: []*Expr{b, e}}
}

// Neg constructs -e.
func Neg(e *Expr) *Expr {
	return Mul(Int(-1), e)
}

// Sub constructs a - b.
func Sub(a, b *Expr) *Expr {
	return Add(a, Neg(b))
}

// Quo constructs a / b.
func Quo(a, b *Expr) *Expr {
	if b.kind == KindNumber && !b.IsZero() {
		return Mul(a, &Expr{kind: KindNumber, val: new(big.Rat).Inv(b.val), float: b.float})
	}
	return Mul(a, Pow(b, Int(-1)))
}

// Sqrt constructs e**(1/2).
func Sqrt(e *Expr) *Expr {
	return Pow(e, Rat(1, 2))
}

// Abs constructs |e|. Numeric arguments are folded.
func Abs(e *Expr) *Expr {
	switch e.kind {
	case KindNumber:
		return &Expr{kind: KindNumber, val: new(big.Rat).Abs(e.val), float: e.float, text: absText(e)}
	case KindAbs:
		return e
	}
	return &Expr{kind: KindAbs, args: []*Expr{e}}
}

func absText(e *Expr) string {
	if len(e.text) > 0 && e.text[0] == '-' {
		return e.text[1:]
	}
	return e.text
}

// Func constructs an uninterpreted function application.
func Func(name string, args ...*Expr) *Expr {
	return &Expr{kind: KindFunc, name: name, args: args}
}

// Re is the real part of e.
func Re(e *Expr) *Expr {
	return Func("re", e)
}

// Im is the imaginary part of e.
func Im(e *Expr) *Expr {
	return Func("im", e)
}

// Rel constructs the relation lhs op rhs. Relations between two numbers
// evaluate to a boolean constant.
func Rel(lhs *Expr, op Relation, rhs *Expr) *Expr {
	if lhs.kind == KindNumber && rhs.kind == KindNumber && op.Valid() {
		return Bool(op.Holds(lhs.val.Cmp(rhs.val)))
	}
	return &Expr{kind: KindRel, op: op, args: []*Expr{lhs, rhs}}
}

func Eq(lhs, rhs *Expr) *Expr { return Rel(lhs, EQ, rhs) }
func Ne(lhs, rhs *Expr) *Expr { return Rel(lhs, NE, rhs) }
func Gt(lhs, rhs *Expr) *Expr { return Rel(lhs, GT, rhs) }
func Ge(lhs, rhs *Expr) *Expr { return Rel(lhs, GE, rhs) }
func Lt(lhs, rhs *Expr) *Expr { return Rel(lhs, LT, rhs) }
func Le(lhs, rhs *Expr) *Expr { return Rel(lhs, LE, rhs) }

// Pred constructs the assumption predicate Q.name(arg).
func Pred(name string, arg *Expr) *Expr {
	return &Expr{kind: KindPredicate, name: name, args: []*Expr{arg}}
}

func connective(kind Kind, unit *Expr, args []*Expr) *Expr {
	var out []*Expr
	add := func(a *Expr) bool {
		switch {
		case a.kind == KindBool && a.truth == unit.truth:
			return true
		case a.kind == KindBool:
			return false
		}
		for _, o := range out {
			if o.Equal(a) {
				return true
			}
		}
		out = append(out, a)
		return true
	}

	for _, a := range args {
		if a.kind == kind {
			for _, b := range a.args {
				if !add(b) {
					return Bool(!unit.truth)
				}
			}
		} else if !add(a) {
			return Bool(!unit.truth)
		}
	}

	switch len(out) {
	case 0:
		return unit
	case 1:
		return out[0]
	}
	return &Expr{kind: kind, args: out}
}

// And constructs a flattened conjunction. Duplicate and true operands are
// dropped; any false operand makes the whole conjunction false.
func And(args ...*Expr) *Expr {
	return connective(KindAnd, trueExpr, args)
}

// Or constructs a flattened disjunction.
func Or(args ...*Expr) *Expr {
	return connective(KindOr, falseExpr, args)
}

// Not constructs the negation of e. Relations are negated in place.
func Not(e *Expr) *Expr {
	switch e.kind {
	case KindBool:
		return Bool(!e.truth)
	case KindNot:
		return e.args[0]
	case KindRel:
		if e.op.Valid() {
			return Rel(e.args[0], e.op.Negated(), e.args[1])
		}
	}
	return &Expr{kind: KindNot, args: []*Expr{e}}
}

// floatText renders an inexact value with 15 significant digits.
func floatText(r *big.Rat) string {
	f, _ := r.Float64()
	s := strconv.FormatFloat(f, 'g', 15, 64)
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'n' || c == 'I' {
			return s
		}
	}
	return s + ".0"
}
