package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/cs-au-dk/ineq/algebra/assume"
	"github.com/cs-au-dk/ineq/algebra/expr"
	"github.com/cs-au-dk/ineq/algebra/poly"
	"github.com/cs-au-dk/ineq/solver"
	"github.com/cs-au-dk/ineq/utils/slices"
)

// config collects everything a pipeline needs to know about the symbols
// in its input.
type config struct {
	Reals      []string `yaml:"real"`
	Assume     []string `yaml:"assume"`
	Symbols    []string `yaml:"symbols"`
	Relational bool     `yaml:"-"`
}

func configFromOpts() config {
	return config{
		Reals:      opts.Reals(),
		Assume:     opts.Assume(),
		Symbols:    opts.Symbols(),
		Relational: opts.Relational(),
	}
}

type pipeline struct {
	out        io.Writer
	parseOpts  []expr.ParseOption
	ctx        assume.Context
	symbols    []*expr.Expr
	relational bool
}

func newPipeline(out io.Writer, conf config) (pipeline, error) {
	pl := pipeline{
		out:        out,
		parseOpts:  []expr.ParseOption{expr.WithRealSymbols(conf.Reals...)},
		relational: conf.Relational,
	}

	var err error
	if pl.symbols, err = pl.parseAll(conf.Symbols); err != nil {
		return pl, errors.WithMessage(err, "-symbols")
	}
	for _, sym := range pl.symbols {
		if sym.Kind() != expr.KindSymbol {
			return pl, errors.Errorf("-symbols: %s is not a symbol", sym)
		}
	}

	preds, err := pl.parseAll(conf.Assume)
	if err != nil {
		return pl, errors.WithMessage(err, "-assume")
	}
	if pl.ctx, err = assume.Of(preds...); err != nil {
		return pl, errors.WithMessage(err, "-assume")
	}
	return pl, nil
}

func (pl pipeline) parseAll(srcs []string) ([]*expr.Expr, error) {
	res := make([]*expr.Expr, 0, len(srcs))
	for _, src := range srcs {
		e, err := expr.Parse(src, pl.parseOpts...)
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, nil
}

func (pl pipeline) printf(format string, a ...interface{}) {
	fmt.Fprintf(pl.out, format, a...)
}

// generator picks the single variable of a univariate task, either the
// only symbol given with -symbols or the only free symbol of the input.
func (pl pipeline) generator(es ...*expr.Expr) (*expr.Expr, error) {
	if len(pl.symbols) == 1 {
		return pl.symbols[0], nil
	}

	var gens []*expr.Expr
	for _, e := range es {
		gens = append(gens, expr.FreeSymbols(e)...)
	}
	gens = slices.UniqueBy(gens, (*expr.Expr).Name)

	switch len(gens) {
	case 0:
		return nil, errors.New("input has no free symbols, use -symbols to name the variable")
	case 1:
		return gens[0], nil
	}
	return nil, errors.WithMessagef(solver.ErrMultivariateUnsupported, "found %d free symbols", len(gens))
}

// reduce reduces the conjunction of the inequalities in srcs.
func (pl pipeline) reduce(srcs []string) (*expr.Expr, error) {
	ineqs, err := pl.parseAll(srcs)
	if err != nil {
		return nil, err
	}
	return solver.Reduce(ineqs, pl.ctx, pl.symbols)
}

func (pl pipeline) reduceTask(srcs []string) error {
	if !pl.relational {
		return pl.intervalsTask(srcs)
	}

	res, err := pl.reduce(srcs)
	if err != nil {
		return err
	}
	pl.printf("%s\n", res.Colored())
	return nil
}

// intervalsTask solves a univariate polynomial system and prints the raw
// interval set.
func (pl pipeline) intervalsTask(srcs []string) error {
	ineqs, err := pl.parseAll(srcs)
	if err != nil {
		return err
	}
	gen, err := pl.generator(ineqs...)
	if err != nil {
		return err
	}

	sol, err := solver.ReducePoly(solver.Groups(ineqs), gen, pl.ctx, false)
	if err != nil {
		return err
	}
	pl.printf("%s\n", sol.Set)
	return nil
}

// rootsTask prints the distinct real roots of a polynomial in ascending
// order.
func (pl pipeline) rootsTask(src string) error {
	e, err := expr.Parse(src, pl.parseOpts...)
	if err != nil {
		return err
	}
	gen, err := pl.generator(e)
	if err != nil {
		return err
	}

	p, err := poly.New(solver.FromExpr(e).Expr, gen)
	if err != nil {
		return errors.WithMessagef(err, "roots of %s", e)
	}
	if !p.IsExact() {
		p = p.ToExact()
	}

	roots := p.RealRoots()
	if len(roots) == 0 {
		pl.printf("%s has no real roots\n", p)
		return nil
	}
	for _, r := range roots {
		pl.printf("%s (multiplicity %d)\n", r.Root, r.Mult)
	}
	return nil
}

// caseSplitTask prints the absolute value case split of an expression.
// Relations are split on their normalized left-hand side.
func (pl pipeline) caseSplitTask(src string) ([]solver.Branch, error) {
	e, err := expr.Parse(src, pl.parseOpts...)
	if err != nil {
		return nil, err
	}

	branches, err := solver.CaseSplit(solver.FromExpr(e).Expr)
	if err != nil {
		return nil, err
	}
	for _, b := range branches {
		pl.printf("%s\n", b)
	}
	return branches, nil
}
