// Package poly implements an immutable univariate polynomial over exact
// rational coefficients, with arithmetic, calculus, evaluation, composition
// and root expansion.
//
// 🚀 What is poly?
//
//	A single value type, Polynomial, holding a canonical coefficient
//	vector c0..cn (ascending power of x) over math/big.Rat:
//	  • Construction: New / FromRat (raw coefficients), FromRoots
//	    (root expansion), or parse.Parse (algebraic strings)
//	  • Arithmetic: Add, Sub, Neg, Mul, Scale, DivScalar, Div (long
//	    division with remainder), Pow
//	  • Calculus: Derivative, Integral (optional constant of integration)
//	  • Evaluation: Evaluate / EvaluateFloat64 (Horner), Compose
//	  • Identity: String (canonical form), Equal, Hash
//
// Canonical form:
//
//	The stored vector never carries trailing zero coefficients; its length
//	is exactly degree+1. The zero polynomial is the single coefficient 0
//	and reports Degree() == -1. Every constructor and operation routes its
//	result through this normalization, so two polynomials built through
//	different entry points that reduce to the same coefficients are Equal
//	and Hash identically.
//
// Immutability:
//
//	No operation mutates its receiver or operands; each returns a fresh
//	Polynomial. Values may therefore be shared across goroutines without
//	synchronization.
//
// Complexity:
//
//	– Add/Sub/Neg/Scale:  O(n)
//	– Mul:                O(n·m)        (coefficient convolution)
//	– Div:                O((n-m+1)·m)  (long division)
//	– Pow(n):             O(M(d)·log n) (square-and-multiply)
//	– Evaluate/Compose:   O(n) field ops / O(n) polynomial ops
//
// Errors (sentinel, matched via errors.Is):
//
//	– ErrNoCoefficients   if a constructor receives no coefficients.
//	– ErrBadCoefficient   if a coefficient is NaN, ±Inf or nil.
//	– ErrZeroDivisor      if dividing by the zero polynomial or scalar 0.
//	– ErrNegativeExponent if Pow receives a negative exponent.
//
// Example usage:
//
//	p := poly.MustNew(-5, 2, 3)     // 3x^2 + 2x - 5
//	d := p.Derivative()             // 6x + 2
//	y := p.EvaluateFloat64(2)       // 11
//	q, r, err := p.Div(poly.MustNew(-1, 1))
//
// The coefficient field is fixed to big.Rat: all operations are exact and
// the field is closed under division, so Integral never rounds and Div
// never truncates non-monic quotients.
package poly
