package poly

import "math/big"

// Derivative returns dp/dx: the result coefficient at index i is
// (i+1)·p[i+1]. The derivative of a constant (including the zero
// polynomial) is the zero polynomial.
func (p *Polynomial) Derivative() *Polynomial {
	if p.Degree() <= 0 {
		return Zero()
	}
	out := make([]*big.Rat, len(p.coeffs)-1)
	for i := range out {
		out[i] = new(big.Rat).Mul(big.NewRat(int64(i+1), 1), p.coeffs[i+1])
	}

	return canonicalize(out)
}

// Integral returns the indefinite integral of p: the result coefficient at
// index i+1 is p[i]/(i+1), and the constant term is c (nil means 0).
//
// The coefficient field is big.Rat, which is closed under division by
// positive integers, so integration is always exact; no rounding or
// domain failure can occur.
func (p *Polynomial) Integral(c *big.Rat) *Polynomial {
	out := make([]*big.Rat, len(p.coeffs)+1)
	out[0] = new(big.Rat)
	if c != nil {
		out[0].Set(c)
	}
	for i, co := range p.coeffs {
		out[i+1] = new(big.Rat).Quo(co, big.NewRat(int64(i+1), 1))
	}

	return canonicalize(out)
}
