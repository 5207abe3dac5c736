package expr

import (
	"fmt"
	"go/scanner"
	"go/token"
	"math/big"
)

// ParseError reports a syntax error at a byte offset of the input.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Msg)
}

// ParseOption configures the parser.
type ParseOption func(*parser)

// WithRealSymbols declares the given symbol names real.
func WithRealSymbols(names ...string) ParseOption {
	return func(p *parser) {
		for _, n := range names {
			p.reals[n] = true
		}
	}
}

// WithAllReal declares every parsed symbol real.
func WithAllReal() ParseOption {
	return func(p *parser) {
		p.allReal = true
	}
}

type tok struct {
	pos int
	tok token.Token
	lit string
}

type parser struct {
	toks    []tok
	at      int
	reals   map[string]bool
	allReal bool
}

// Parse reads an expression in the notation produced by String.
//
// Arithmetic uses + - * / with ** or ^ for powers, relations are written
// == != < <= > >=, and formulas are combined with && || and !. Chained
// relations such as 2 < x < 8 denote conjunctions. abs, sqrt, re and im are
// recognized functions; other applied names are uninterpreted. Assumption
// predicates are written Q.name(expr).
func Parse(src string, opts ...ParseOption) (*Expr, error) {
	p := &parser{reals: make(map[string]bool)}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.scan(src); err != nil {
		return nil, err
	}

	e, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.tok != token.EOF {
		return nil, p.errorf(t, "unexpected %s", describe(t))
	}
	return e, nil
}

// MustParse is like Parse but panics on error.
func MustParse(src string, opts ...ParseOption) *Expr {
	e, err := Parse(src, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

func (p *parser) scan(src string) (err error) {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var s scanner.Scanner
	s.Init(file, []byte(src), func(pos token.Position, msg string) {
		if err == nil {
			err = &ParseError{Offset: pos.Offset, Msg: msg}
		}
	}, 0)

	for {
		pos, t, lit := s.Scan()
		if t == token.SEMICOLON && lit == "\n" {
			// Automatically inserted.
			continue
		}
		p.toks = append(p.toks, tok{file.Offset(pos), t, lit})
		if t == token.EOF {
			break
		}
	}
	return
}

func describe(t tok) string {
	switch {
	case t.tok == token.EOF:
		return "end of input"
	case t.lit != "":
		return fmt.Sprintf("%q", t.lit)
	}
	return fmt.Sprintf("%q", t.tok.String())
}

func (p *parser) errorf(t tok, format string, args ...interface{}) error {
	return &ParseError{Offset: t.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) peek() tok {
	return p.toks[p.at]
}

func (p *parser) next() tok {
	t := p.toks[p.at]
	if t.tok != token.EOF {
		p.at++
	}
	return t
}

func (p *parser) expect(kind token.Token) error {
	if t := p.next(); t.tok != kind {
		return p.errorf(t, "expected %q, found %s", kind.String(), describe(t))
	}
	return nil
}

// isPower checks for ** (two adjacent multiplication tokens) or ^.
func (p *parser) isPower() (bool, int) {
	t := p.peek()
	switch t.tok {
	case token.XOR:
		return true, 1
	case token.MUL:
		if n := p.toks[p.at+1]; n.tok == token.MUL && n.pos == t.pos+1 {
			return true, 2
		}
	}
	return false, 0
}

func (p *parser) parseOr() (*Expr, error) {
	l, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	args := []*Expr{l}
	for p.peek().tok == token.LOR {
		p.next()
		r, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		args = append(args, r)
	}
	return Or(args...), nil
}

func (p *parser) parseAnd() (*Expr, error) {
	l, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	args := []*Expr{l}
	for p.peek().tok == token.LAND {
		p.next()
		r, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		args = append(args, r)
	}
	return And(args...), nil
}

func (p *parser) parseNot() (*Expr, error) {
	if p.peek().tok == token.NOT {
		p.next()
		e, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return Not(e), nil
	}
	return p.parseRel()
}

var relTokens = map[token.Token]Relation{
	token.EQL: EQ,
	token.NEQ: NE,
	token.GTR: GT,
	token.GEQ: GE,
	token.LSS: LT,
	token.LEQ: LE,
}

func (p *parser) parseRel() (*Expr, error) {
	l, err := p.parseSum()
	if err != nil {
		return nil, err
	}

	var rels []*Expr
	for {
		op, ok := relTokens[p.peek().tok]
		if !ok {
			break
		}
		p.next()
		r, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		rels = append(rels, Rel(l, op, r))
		l = r
	}

	if len(rels) == 0 {
		return l, nil
	}
	return And(rels...), nil
}

func (p *parser) parseSum() (*Expr, error) {
	l, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().tok {
		case token.ADD:
			p.next()
			r, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			l = Add(l, r)
		case token.SUB:
			p.next()
			r, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			l = Sub(l, r)
		default:
			return l, nil
		}
	}
}

func (p *parser) parseTerm() (*Expr, error) {
	l, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch t := p.peek(); t.tok {
		case token.MUL:
			p.next()
			r, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			l = Mul(l, r)
		case token.QUO:
			p.next()
			r, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			if r.IsZero() {
				return nil, p.errorf(t, "division by zero")
			}
			l = Quo(l, r)
		default:
			return l, nil
		}
	}
}

func (p *parser) parseUnary() (*Expr, error) {
	switch p.peek().tok {
	case token.SUB:
		p.next()
		e, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Neg(e), nil
	case token.ADD:
		p.next()
		return p.parseUnary()
	}
	return p.parsePower()
}

func (p *parser) parsePower() (*Expr, error) {
	b, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if pow, n := p.isPower(); pow {
		p.at += n
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Pow(b, x), nil
	}
	return b, nil
}

func (p *parser) parseArgs() ([]*Expr, error) {
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var args []*Expr
	if p.peek().tok == token.RPAREN {
		p.next()
		return args, nil
	}
	for {
		a, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		switch t := p.next(); t.tok {
		case token.COMMA:
		case token.RPAREN:
			return args, nil
		default:
			return nil, p.errorf(t, "expected \",\" or \")\", found %s", describe(t))
		}
	}
}

func (p *parser) parseAtom() (*Expr, error) {
	t := p.next()
	switch t.tok {
	case token.INT:
		n, ok := new(big.Int).SetString(t.lit, 0)
		if !ok {
			return nil, p.errorf(t, "invalid integer %q", t.lit)
		}
		return Num(new(big.Rat).SetInt(n)), nil

	case token.FLOAT:
		f, err := Float(t.lit)
		if err != nil {
			return nil, p.errorf(t, "%v", err)
		}
		return f, nil

	case token.LPAREN:
		e, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return e, nil

	case token.IDENT:
		return p.parseIdent(t)
	}
	return nil, p.errorf(t, "unexpected %s", describe(t))
}

func (p *parser) parseIdent(t tok) (*Expr, error) {
	switch t.lit {
	case "true":
		return True(), nil
	case "false":
		return False(), nil
	case "Q":
		if p.peek().tok == token.PERIOD {
			p.next()
			name := p.next()
			if name.tok != token.IDENT {
				return nil, p.errorf(name, "expected predicate name, found %s", describe(name))
			}
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			if len(args) != 1 {
				return nil, p.errorf(name, "predicate Q.%s takes one argument", name.lit)
			}
			return Pred(name.lit, args[0]), nil
		}
	}

	if p.peek().tok != token.LPAREN {
		if p.allReal || p.reals[t.lit] {
			return RealSym(t.lit), nil
		}
		return Sym(t.lit), nil
	}

	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}

	unary := func(build func(*Expr) *Expr) (*Expr, error) {
		if len(args) != 1 {
			return nil, p.errorf(t, "%s takes one argument", t.lit)
		}
		return build(args[0]), nil
	}
	switch t.lit {
	case "abs", "Abs":
		return unary(Abs)
	case "sqrt":
		return unary(Sqrt)
	case "re":
		return unary(Re)
	case "im":
		return unary(Im)
	}
	return Func(t.lit, args...), nil
}
