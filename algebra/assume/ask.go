package assume

import "github.com/cs-au-dk/ineq/algebra/expr"

type literal struct {
	pred  Predicate
	holds bool
}

func (l literal) not() literal {
	return literal{l.pred, !l.holds}
}

type rule struct {
	premises   []literal
	conclusion literal
}

func is(p Predicate) literal    { return literal{p, true} }
func isNot(p Predicate) literal { return literal{p, false} }

// rules is the implication closure used by Ask. Single premise implications
// are also applied in contrapositive form.
var rules = func() (rs []rule) {
	implications := [][2]literal{
		{is(Positive), is(Nonnegative)},
		{is(Positive), is(Nonzero)},
		{is(Positive), isNot(Negative)},
		{is(Positive), isNot(Nonpositive)},
		{is(Negative), is(Nonpositive)},
		{is(Negative), is(Nonzero)},
		{is(Negative), isNot(Nonnegative)},
		{is(Zero), is(Nonnegative)},
		{is(Zero), is(Nonpositive)},
		{is(Zero), is(Integer)},
		{is(Zero), isNot(Nonzero)},
		{is(Nonnegative), is(Real)},
		{is(Nonpositive), is(Real)},
		{is(Nonzero), is(Real)},
		{is(Integer), is(Rational)},
		{is(Rational), is(Real)},
		{is(Real), is(Complex)},
	}
	for _, imp := range implications {
		rs = append(rs,
			rule{[]literal{imp[0]}, imp[1]},
			rule{[]literal{imp[1].not()}, imp[0].not()},
		)
	}

	return append(rs,
		rule{[]literal{is(Nonnegative), is(Nonzero)}, is(Positive)},
		rule{[]literal{is(Nonpositive), is(Nonzero)}, is(Negative)},
		rule{[]literal{is(Nonnegative), is(Nonpositive)}, is(Zero)},
		rule{[]literal{is(Real), isNot(Zero)}, is(Nonzero)},
		rule{[]literal{is(Real), isNot(Nonzero)}, is(Zero)},
		rule{[]literal{is(Real), isNot(Positive)}, is(Nonpositive)},
		rule{[]literal{is(Real), isNot(Negative)}, is(Nonnegative)},
		rule{[]literal{is(Real), isNot(Nonnegative)}, is(Negative)},
		rule{[]literal{is(Real), isNot(Nonpositive)}, is(Positive)},
	)
}()

type knowledge map[Predicate]bool

func (k knowledge) set(l literal) bool {
	if _, found := k[l.pred]; found {
		return false
	}
	k[l.pred] = l.holds
	return true
}

func (k knowledge) holds(l literal) bool {
	v, found := k[l.pred]
	return found && v == l.holds
}

// close saturates the knowledge under the implication rules.
func (k knowledge) close() knowledge {
	for changed := true; changed; {
		changed = false
		for _, r := range rules {
			all := true
			for _, p := range r.premises {
				if !k.holds(p) {
					all = false
					break
				}
			}
			if all && k.set(r.conclusion) {
				changed = true
			}
		}
	}
	return k
}

// Ask decides whether pred holds for e under the context.
func Ask(pred Predicate, e *expr.Expr, ctx Context) Truth {
	if v, found := known(e, ctx)[pred]; found {
		return truthOf(v)
	}
	return Unknown
}

// known collects every decided predicate about e.
func known(e *expr.Expr, ctx Context) knowledge {
	k := knowledge{}

	switch e.Kind() {
	case expr.KindNumber:
		s := e.Sign()
		k.set(literal{Positive, s > 0})
		k.set(literal{Negative, s < 0})
		k.set(literal{Zero, s == 0})
		k.set(is(Real))
		if !e.IsFloat() {
			k.set(literal{Integer, e.IsInteger()})
			k.set(is(Rational))
		}

	case expr.KindSymbol:
		if e.IsReal() {
			k.set(is(Real))
		}

	case expr.KindMul:
		// A numeric coefficient c transfers the sign of the remaining factors.
		if c := e.Arg(0); c.IsNumber() {
			rest := expr.Mul(e.Args()[1:]...)
			for p, v := range known(rest, ctx) {
				if c.Sign() < 0 {
					p = mirror(p)
				}
				if p == Integer || p == Rational {
					continue
				}
				k.set(literal{p, v})
			}
		}
		fallthrough

	case expr.KindAdd:
		allReal := true
		for _, a := range e.Args() {
			if !known(a, ctx).holds(is(Real)) {
				allReal = false
				break
			}
		}
		if allReal {
			k.set(is(Real))
		}

	case expr.KindPow:
		b, x := e.Arg(0), e.Arg(1)
		if x.IsInteger() && x.Sign() > 0 {
			kb := known(b, ctx)
			if kb.holds(is(Real)) {
				k.set(is(Real))
				if x.Value().Num().Bit(0) == 0 {
					k.set(is(Nonnegative))
				}
			}
			if kb.holds(is(Nonzero)) {
				k.set(is(Nonzero))
			}
		}

	case expr.KindAbs:
		k.set(is(Nonnegative))
	}

	for it := ctx.list().Iterator(); !it.Done(); {
		_, f := it.Next()
		if sameSubject(f.subject, e) {
			k.set(literal{f.pred, f.holds})
		}
	}

	return k.close()
}

// mirror maps a predicate about x to the same fact about -x.
func mirror(p Predicate) Predicate {
	switch p {
	case Positive:
		return Negative
	case Negative:
		return Positive
	case Nonnegative:
		return Nonpositive
	case Nonpositive:
		return Nonnegative
	}
	return p
}
