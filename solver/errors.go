package solver

import (
	"github.com/cs-au-dk/ineq/algebra/poly"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidRelation is returned for relations outside of the six
	// comparison kinds.
	ErrInvalidRelation = errors.New("invalid relation")
	// ErrUnsupportedDomain is returned when coefficients are not numbers.
	ErrUnsupportedDomain = poly.ErrUnsupportedDomain
	// ErrNotPolynomial is returned when an expression is not polynomial in
	// its generator.
	ErrNotPolynomial = poly.ErrNotPolynomial
	// ErrUnsupportedExponent is returned for powers under a case split whose
	// exponent is not a non-negative integer.
	ErrUnsupportedExponent = errors.New("only non-negative integer powers are allowed on abs")
	// ErrNonRealVariable is returned when absolute values are expanded for a
	// variable that is not known to be real.
	ErrNonRealVariable = errors.New("can't solve inequalities with absolute values containing non-real variables")
	// ErrMultivariateUnsupported is returned for inequalities in more than
	// one variable.
	ErrMultivariateUnsupported = errors.New("inequalities in more than one symbol are not supported")
	// ErrUnsupportedFunction is returned for inequalities involving
	// functions other than abs.
	ErrUnsupportedFunction = errors.New("unsupported function")
	// ErrDegenerateLinear is returned by the linear fast path when the sign
	// of the leading coefficient can not be decided.
	ErrDegenerateLinear = errors.New("degenerate linear inequality")
)
