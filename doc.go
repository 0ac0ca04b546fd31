// Package lvlpoly is an exact symbolic toolkit for univariate polynomials —
// from canonical construction to arithmetic, calculus and algebraic parsing.
//
// 🚀 What is lvlpoly?
//
//	An immutable polynomial value type over exact rational coefficients
//	(math/big.Rat), together with everything you expect around it:
//		• Construction: raw coefficients, roots, or an algebraic string
//		• Arithmetic: add, subtract, multiply, long division, integer powers
//		• Calculus: derivative and indefinite integral
//		• Evaluation & composition via Horner's method
//		• Canonical string form, structural equality and content hashing
//
// ✨ Why choose lvlpoly?
//
//   - Exact by default – rational arithmetic, no rounding, no drift
//   - Immutable values – share polynomials across goroutines freely
//   - Honest failures – sentinel errors for every invalid input, never a
//     silently-substituted zero
//   - Small API – two packages, no hidden machinery
//
// Everything is organized under two subpackages:
//
//	poly/  — the Polynomial value type and all of its operations
//	parse/ — recursive-descent parser turning "3x^2 + 2x - 5" into a Polynomial
//
// Quick sketch:
//
//	p := poly.MustNew(-5, 2, 3)            // 3x^2 + 2x - 5
//	q, _ := parse.Parse("(x+1)^2")         // x^2 + 2x + 1
//	sum := p.Add(q)                        // 4x^2 + 4x - 4
//	fmt.Println(sum, sum.EvaluateFloat64(1))
//
// Dive into each package's doc.go for grammar, complexity and error details.
package lvlpoly
