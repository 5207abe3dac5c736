package poly

import "github.com/pkg/errors"

var (
	// ErrNotPolynomial is returned for expressions that are not polynomial in
	// the generator, e.g. involving negative or fractional powers of it.
	ErrNotPolynomial = errors.New("not a polynomial")
	// ErrUnsupportedDomain is returned for polynomials whose coefficients are
	// not numbers, e.g. x + y over ZZ[y].
	ErrUnsupportedDomain = errors.New("only univariate polynomials over ZZ or QQ are allowed")
	// ErrNotLinear is returned by Linear for expressions of degree other than 1.
	ErrNotLinear = errors.New("not linear")
	// ErrZeroPolynomial is returned where the zero polynomial has no meaning.
	ErrZeroPolynomial = errors.New("zero polynomial")
)
