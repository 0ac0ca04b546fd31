package poly

import "math/big"

// Evaluate returns p(x) by Horner's method: folding from the top
// coefficient downward, acc = acc·x + p[i]. O(n) field operations.
func (p *Polynomial) Evaluate(x *big.Rat) *big.Rat {
	n := len(p.coeffs)
	acc := new(big.Rat).Set(p.coeffs[n-1])
	for i := n - 2; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, p.coeffs[i])
	}

	return acc
}

// EvaluateFloat64 returns p(x) with the Horner fold carried out in
// float64. A convenience for callers that feed and consume machine
// floats; use Evaluate for an exact result.
func (p *Polynomial) EvaluateFloat64(x float64) float64 {
	n := len(p.coeffs)
	acc, _ := p.coeffs[n-1].Float64()
	for i := n - 2; i >= 0; i-- {
		c, _ := p.coeffs[i].Float64()
		acc = acc*x + c
	}

	return acc
}

// Compose returns p(q(x)): the variable of p is substituted by the
// polynomial q. The fold mirrors Evaluate with polynomial arithmetic,
// acc = acc·q + p[i]. For non-constant operands the result degree is
// deg(p)·deg(q).
func (p *Polynomial) Compose(q *Polynomial) *Polynomial {
	n := len(p.coeffs)
	acc := constant(new(big.Rat).Set(p.coeffs[n-1]))
	for i := n - 2; i >= 0; i-- {
		acc = acc.Mul(q).AddRat(p.coeffs[i])
	}

	return acc
}
