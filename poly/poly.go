package poly

import (
	"fmt"
	"math/big"
)

// Polynomial is an immutable univariate polynomial over exact rational
// coefficients. The zero value of the struct is not usable; construct
// instances through New, FromRat, FromRoots, the Zero/One/X constants, or
// parse.Parse.
//
// The coefficient vector is stored in ascending power order (coeffs[i] is
// the coefficient of x^i) and is always canonical: no trailing zeros, and
// the zero polynomial is the single coefficient 0.
type Polynomial struct {
	coeffs []*big.Rat
}

// canonicalize wraps an owned coefficient slice into a Polynomial,
// trimming trailing zero coefficients from the high-degree end. An empty
// or all-zero slice becomes the zero polynomial. Every constructor and
// operation routes its result through this chokepoint; it is what
// guarantees the canonical-form invariant.
//
// The caller must hand over freshly allocated coefficients; they are
// aliased, not copied.
func canonicalize(coeffs []*big.Rat) *Polynomial {
	n := len(coeffs)
	for n > 1 && coeffs[n-1].Sign() == 0 {
		n--
	}
	if n == 0 {
		return &Polynomial{coeffs: []*big.Rat{new(big.Rat)}}
	}

	return &Polynomial{coeffs: coeffs[:n]}
}

// ratFromReal converts a machine numeric value exactly into the rational
// field. Float inputs that are NaN or ±Inf yield ErrBadCoefficient.
func ratFromReal[T Real](v T) (*big.Rat, error) {
	switch f := any(v).(type) {
	case float64:
		r := new(big.Rat).SetFloat64(f)
		if r == nil {
			return nil, fmt.Errorf("%w: %v", ErrBadCoefficient, f)
		}

		return r, nil
	case float32:
		r := new(big.Rat).SetFloat64(float64(f))
		if r == nil {
			return nil, fmt.Errorf("%w: %v", ErrBadCoefficient, f)
		}

		return r, nil
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return new(big.Rat).SetUint64(uint64(v)), nil
	default:
		return new(big.Rat).SetInt64(int64(v)), nil
	}
}

// New constructs a Polynomial from raw coefficients in ascending power
// order: New(1, 0, -3) is 1 - 3x^2. Any integer or float type is accepted
// and converted exactly into the rational field.
//
// Returns ErrNoCoefficients for an empty argument list and
// ErrBadCoefficient for NaN/±Inf float inputs.
func New[T Real](coeffs ...T) (*Polynomial, error) {
	if len(coeffs) == 0 {
		return nil, ErrNoCoefficients
	}
	rats := make([]*big.Rat, len(coeffs))
	for i, c := range coeffs {
		r, err := ratFromReal(c)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}
		rats[i] = r
	}

	return canonicalize(rats), nil
}

// MustNew is New that panics on error. Intended for constants whose
// coefficients are known valid at compile time.
func MustNew[T Real](coeffs ...T) *Polynomial {
	p, err := New(coeffs...)
	if err != nil {
		panic(err)
	}

	return p
}

// FromRat constructs a Polynomial from rational coefficients in ascending
// power order. The inputs are deep-copied; the resulting Polynomial never
// aliases caller-owned Rats.
//
// Returns ErrNoCoefficients for an empty argument list and
// ErrBadCoefficient if any coefficient is nil.
func FromRat(coeffs ...*big.Rat) (*Polynomial, error) {
	if len(coeffs) == 0 {
		return nil, ErrNoCoefficients
	}
	rats := make([]*big.Rat, len(coeffs))
	for i, c := range coeffs {
		if c == nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, ErrBadCoefficient)
		}
		rats[i] = new(big.Rat).Set(c)
	}

	return canonicalize(rats), nil
}

// MustFromRat is FromRat that panics on error.
func MustFromRat(coeffs ...*big.Rat) *Polynomial {
	p, err := FromRat(coeffs...)
	if err != nil {
		panic(err)
	}

	return p
}

// Zero returns the zero polynomial (Degree() == -1, String() == "0").
func Zero() *Polynomial {
	return &Polynomial{coeffs: []*big.Rat{new(big.Rat)}}
}

// One returns the multiplicative identity, the constant polynomial 1.
func One() *Polynomial {
	return &Polynomial{coeffs: []*big.Rat{big.NewRat(1, 1)}}
}

// X returns the monomial x.
func X() *Polynomial {
	return &Polynomial{coeffs: []*big.Rat{new(big.Rat), big.NewRat(1, 1)}}
}

// constant wraps a single (already owned) rational into a Polynomial.
func constant(c *big.Rat) *Polynomial {
	return canonicalize([]*big.Rat{c})
}

// Degree returns the highest power with a non-zero coefficient, or -1 for
// the zero polynomial. All degree-dependent branches in this package use
// the -1 sentinel consistently.
func (p *Polynomial) Degree() int {
	if p.IsZero() {
		return -1
	}

	return len(p.coeffs) - 1
}

// Len returns the number of stored terms, degree+1 (1 for the zero
// polynomial).
func (p *Polynomial) Len() int { return len(p.coeffs) }

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial) IsZero() bool {
	return len(p.coeffs) == 1 && p.coeffs[0].Sign() == 0
}

// Coefficient returns a copy of the coefficient of x^i. Indices beyond the
// degree (and negative indices) yield zero.
func (p *Polynomial) Coefficient(i int) *big.Rat {
	if i < 0 || i >= len(p.coeffs) {
		return new(big.Rat)
	}

	return new(big.Rat).Set(p.coeffs[i])
}

// Coefficients returns a deep copy of the canonical coefficient vector in
// ascending power order. Mutating the result does not affect p.
func (p *Polynomial) Coefficients() []*big.Rat {
	out := make([]*big.Rat, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = new(big.Rat).Set(c)
	}

	return out
}

// Clone returns an independent copy of p. Polynomials are immutable, so
// Clone is only needed when a caller wants its own allocation lifetime.
func (p *Polynomial) Clone() *Polynomial {
	return &Polynomial{coeffs: p.Coefficients()}
}
