package expr

import (
	"math/big"
	"strings"

	"github.com/cs-au-dk/ineq/utils"
	"github.com/fatih/color"
)

var colorize = struct {
	Number func(...interface{}) string
	Symbol func(...interface{}) string
	Op     func(...interface{}) string
	Func   func(...interface{}) string
	Const  func(...interface{}) string
}{
	Number: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiWhite).SprintFunc())(is...)
	},
	Symbol: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgCyan).SprintFunc())(is...)
	},
	Op: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgYellow).SprintFunc())(is...)
	},
	Func: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiBlue).SprintFunc())(is...)
	},
	Const: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgMagenta).SprintFunc())(is...)
	},
}

const (
	precOr = iota + 1
	precAnd
	precNot
	precRel
	precAdd
	precMul
	precPow
	precAtom
)

type style func(...interface{}) string

func plain(is ...interface{}) string {
	var sb strings.Builder
	for _, i := range is {
		sb.WriteString(i.(string))
	}
	return sb.String()
}

type printer struct {
	num, sym, op, fn, cnst style
}

var (
	plainPrinter   = printer{plain, plain, plain, plain, plain}
	coloredPrinter = printer{
		colorize.Number,
		colorize.Symbol,
		colorize.Op,
		colorize.Func,
		colorize.Const,
	}
)

// String renders the expression with Python-style operators for arithmetic
// (** for powers) and Go-style operators for logic.
func (e *Expr) String() string {
	s, _ := plainPrinter.print(e)
	return s
}

// Colored renders the expression like String, highlighting its components
// unless colorization is disabled.
func (e *Expr) Colored() string {
	s, _ := coloredPrinter.print(e)
	return s
}

func (p printer) paren(e *Expr, min int) string {
	s, prec := p.print(e)
	if prec < min {
		return "(" + s + ")"
	}
	return s
}

func (p printer) number(v *big.Rat, float bool, text string) (string, int) {
	var s string
	prec := precAtom
	switch {
	case float && text != "":
		s = text
	case float:
		s = floatText(v)
	case v.IsInt():
		s = v.Num().String()
	default:
		s = v.RatString()
		prec = precMul
	}
	if v.Sign() < 0 {
		prec = precMul
	}
	return p.num(s), prec
}

func isNegativeTerm(e *Expr) bool {
	switch e.kind {
	case KindNumber:
		return e.val.Sign() < 0
	case KindMul:
		return e.args[0].kind == KindNumber && e.args[0].val.Sign() < 0
	}
	return false
}

func (p printer) print(e *Expr) (string, int) {
	switch e.kind {
	case KindNumber:
		return p.number(e.val, e.float, e.text)

	case KindSymbol:
		return p.sym(e.name), precAtom

	case KindAdd:
		terms := e.args
		if isNegativeTerm(terms[0]) {
			for i, t := range terms {
				if !isNegativeTerm(t) {
					terms = append([]*Expr{t}, append(append([]*Expr{}, terms[:i]...), terms[i+1:]...)...)
					break
				}
			}
		}

		var sb strings.Builder
		for i, t := range terms {
			switch {
			case i == 0:
				sb.WriteString(p.paren(t, precAdd))
			case isNegativeTerm(t):
				sb.WriteString(" " + p.op("-") + " ")
				sb.WriteString(p.paren(Neg(t), precMul))
			default:
				sb.WriteString(" " + p.op("+") + " ")
				sb.WriteString(p.paren(t, precMul))
			}
		}
		return sb.String(), precAdd

	case KindMul:
		return p.product(e), precMul

	case KindPow:
		b, x := e.args[0], e.args[1]
		if x.kind == KindNumber && !x.float {
			switch {
			case x.val.Cmp(big.NewRat(1, 2)) == 0:
				s, _ := p.print(b)
				return p.fn("sqrt") + "(" + s + ")", precAtom
			case x.val.Cmp(big.NewRat(-1, 2)) == 0:
				s, _ := p.print(b)
				return p.num("1") + p.op("/") + p.fn("sqrt") + "(" + s + ")", precMul
			case x.val.Sign() < 0:
				inv := Pow(b, Num(new(big.Rat).Neg(x.val)))
				return p.num("1") + p.op("/") + p.paren(inv, precPow), precMul
			}
		}
		return p.paren(b, precAtom) + p.op("**") + p.paren(x, precAtom), precPow

	case KindAbs:
		s, _ := p.print(e.args[0])
		return p.fn("abs") + "(" + s + ")", precAtom

	case KindFunc:
		args := make([]string, 0, len(e.args))
		for _, a := range e.args {
			s, _ := p.print(a)
			args = append(args, s)
		}
		return p.fn(e.name) + "(" + strings.Join(args, ", ") + ")", precAtom

	case KindRel:
		return p.paren(e.args[0], precAdd) +
			" " + p.op(e.op.String()) + " " +
			p.paren(e.args[1], precAdd), precRel

	case KindAnd, KindOr:
		sep, prec := " && ", precAnd
		if e.kind == KindOr {
			sep, prec = " || ", precOr
		}
		args := make([]string, 0, len(e.args))
		for _, a := range e.args {
			args = append(args, p.paren(a, precNot))
		}
		return strings.Join(args, p.op(sep)), prec

	case KindNot:
		return p.op("!") + p.paren(e.args[0], precAtom), precNot

	case KindBool:
		if e.truth {
			return p.cnst("true"), precAtom
		}
		return p.cnst("false"), precAtom

	case KindPredicate:
		s, _ := p.print(e.args[0])
		return p.fn("Q."+e.name) + "(" + s + ")", precAtom
	}
	return "?", precAtom
}

// product renders a Mul node as a fraction, e.g. -3*x/2.
func (p printer) product(e *Expr) string {
	coeff, rest := splitCoeff(e)

	var factors []*Expr
	if rest.kind == KindMul {
		factors = rest.args
	} else {
		factors = []*Expr{rest}
	}

	var sign string
	if coeff.val.Sign() < 0 {
		sign = p.op("-")
		coeff = Abs(coeff)
	}

	var num, den []string
	switch {
	case coeff.float:
		s, _ := p.number(coeff.val, true, coeff.text)
		num = append(num, s)
	default:
		if n := coeff.val.Num(); n.Cmp(big.NewInt(1)) != 0 {
			num = append(num, p.num(n.String()))
		}
		if d := coeff.val.Denom(); d.Cmp(big.NewInt(1)) != 0 {
			den = append(den, p.num(d.String()))
		}
	}

	for _, f := range factors {
		if f.kind == KindPow {
			if x := f.args[1]; x.kind == KindNumber && !x.float && x.val.Sign() < 0 &&
				x.val.Cmp(big.NewRat(-1, 2)) != 0 {
				inv := Pow(f.args[0], Num(new(big.Rat).Neg(x.val)))
				den = append(den, p.paren(inv, precPow))
				continue
			}
		}
		num = append(num, p.paren(f, precMul))
	}

	mul := p.op("*")
	numerator := strings.Join(num, mul)
	if numerator == "" {
		numerator = p.num("1")
	}
	if len(den) == 0 {
		return sign + numerator
	}
	denominator := strings.Join(den, mul)
	if len(den) > 1 {
		denominator = "(" + denominator + ")"
	}
	return sign + numerator + p.op("/") + denominator
}
