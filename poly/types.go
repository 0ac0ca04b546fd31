// Package poly: sentinel error set and the numeric constraint shared by the
// generic constructors. All operations return these sentinels (possibly
// wrapped with fmt.Errorf("...: %w", ...)) and tests match them via
// errors.Is. Panics are reserved for programmer errors (Must* helpers).
package poly

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by the poly package.
var (
	// ErrNoCoefficients indicates that a constructor was given an empty
	// coefficient sequence. There is no canonical zero-length form; use
	// Zero() or New(0) for the zero polynomial.
	ErrNoCoefficients = errors.New("poly: coefficient sequence is empty")

	// ErrBadCoefficient indicates that a coefficient is not a finite number
	// (NaN or ±Inf float input, or a nil *big.Rat). Construction fails
	// before any Polynomial is produced.
	ErrBadCoefficient = errors.New("poly: coefficient is not a finite number")

	// ErrZeroDivisor indicates a division by the zero polynomial (Div) or
	// by the scalar zero (DivScalar).
	ErrZeroDivisor = errors.New("poly: division by zero")

	// ErrNegativeExponent indicates that Pow was called with a negative
	// exponent; polynomials have no general multiplicative inverse.
	ErrNegativeExponent = errors.New("poly: negative exponent")
)

// Real constrains the machine numeric types accepted by the generic
// constructors (New, FromRoots). Values are converted exactly into the
// rational coefficient field; float inputs must be finite.
type Real interface {
	constraints.Integer | constraints.Float
}
