package poly

import (
	"fmt"
	"math/big"
)

// Add returns p + q. Addition is commutative and associative; the shorter
// coefficient vector is implicitly zero-padded.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	sum := make([]*big.Rat, n)
	for i := range sum {
		sum[i] = new(big.Rat)
		if i < len(p.coeffs) {
			sum[i].Add(sum[i], p.coeffs[i])
		}
		if i < len(q.coeffs) {
			sum[i].Add(sum[i], q.coeffs[i])
		}
	}

	return canonicalize(sum)
}

// Sub returns p - q.
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p *Polynomial) Neg() *Polynomial {
	out := make([]*big.Rat, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = new(big.Rat).Neg(c)
	}

	return canonicalize(out)
}

// AddRat returns p + k, shifting the constant term by the scalar k.
func (p *Polynomial) AddRat(k *big.Rat) *Polynomial {
	return p.Add(constant(new(big.Rat).Set(k)))
}

// Mul returns p·q by coefficient convolution: the result coefficient at
// index i+j accumulates p[i]·q[j]. The degree of the product is
// deg(p)+deg(q) unless either operand is zero, in which case the product
// is the zero polynomial.
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	if p.IsZero() || q.IsZero() {
		return Zero()
	}
	out := make([]*big.Rat, len(p.coeffs)+len(q.coeffs)-1)
	for i := range out {
		out[i] = new(big.Rat)
	}
	tmp := new(big.Rat)
	for i, a := range p.coeffs {
		if a.Sign() == 0 {
			continue
		}
		for j, b := range q.coeffs {
			out[i+j].Add(out[i+j], tmp.Mul(a, b))
		}
	}

	return canonicalize(out)
}

// Scale returns k·p. A zero scalar yields the zero polynomial.
func (p *Polynomial) Scale(k *big.Rat) *Polynomial {
	if k.Sign() == 0 {
		return Zero()
	}
	out := make([]*big.Rat, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = new(big.Rat).Mul(c, k)
	}

	return canonicalize(out)
}

// DivScalar returns p/k. Returns ErrZeroDivisor when k is zero.
func (p *Polynomial) DivScalar(k *big.Rat) (*Polynomial, error) {
	if k.Sign() == 0 {
		return nil, fmt.Errorf("scalar: %w", ErrZeroDivisor)
	}
	out := make([]*big.Rat, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = new(big.Rat).Quo(c, k)
	}

	return canonicalize(out), nil
}

// Div performs polynomial long division, returning (quotient, remainder)
// such that p = quotient·q + remainder and deg(remainder) < deg(q).
// Returns ErrZeroDivisor when q is the zero polynomial.
//
// Quotient coefficients are exact rational divisions by q's leading
// coefficient, so division by a non-monic divisor never truncates.
func (p *Polynomial) Div(q *Polynomial) (quot, rem *Polynomial, err error) {
	if q.IsZero() {
		return nil, nil, fmt.Errorf("divisor %q: %w", q, ErrZeroDivisor)
	}
	dq := q.Degree()
	if p.Degree() < dq {
		return Zero(), p.Clone(), nil
	}

	// Working copy of p's coefficients; reduced in place from the top.
	work := p.Coefficients()
	lead := q.coeffs[dq]
	qc := make([]*big.Rat, p.Degree()-dq+1)
	for i := range qc {
		qc[i] = new(big.Rat)
	}

	tmp := new(big.Rat)
	for i := p.Degree(); i >= dq; i-- {
		if work[i].Sign() == 0 {
			continue
		}
		factor := new(big.Rat).Quo(work[i], lead)
		qc[i-dq].Set(factor)
		// Eliminate the x^i term: work -= factor · q · x^(i-dq).
		for j := 0; j <= dq; j++ {
			work[i-dq+j].Sub(work[i-dq+j], tmp.Mul(factor, q.coeffs[j]))
		}
	}

	return canonicalize(qc), canonicalize(work[:dq]), nil
}

// Pow returns p raised to a non-negative integer power via
// square-and-multiply. By documented convention Pow(p, 0) is the constant
// polynomial 1 for every p, including the zero polynomial (0^0 = 1).
// Returns ErrNegativeExponent when n < 0; no general inverse polynomials
// exist.
func (p *Polynomial) Pow(n int) (*Polynomial, error) {
	if n < 0 {
		return nil, fmt.Errorf("exponent %d: %w", n, ErrNegativeExponent)
	}
	result := One()
	base := p
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}

	return result, nil
}
