package poly

import (
	"fmt"
	"math/big"
)

// FromRoots builds the monic polynomial whose roots are exactly the given
// multiset: starting from the constant 1, it multiplies in the linear
// factor (x - r) for each root r. Roots may repeat to express
// multiplicity; an empty sequence yields the constant polynomial 1.
//
// Returns ErrBadCoefficient for NaN/±Inf float roots.
func FromRoots[T Real](roots ...T) (*Polynomial, error) {
	result := One()
	for i, r := range roots {
		root, err := ratFromReal(r)
		if err != nil {
			return nil, fmt.Errorf("root %d: %w", i, err)
		}
		result = result.Mul(linearFactor(root))
	}

	return result, nil
}

// MustFromRoots is FromRoots that panics on error.
func MustFromRoots[T Real](roots ...T) *Polynomial {
	p, err := FromRoots(roots...)
	if err != nil {
		panic(err)
	}

	return p
}

// FromRootsRat is FromRoots over exact rational roots. Returns
// ErrBadCoefficient if any root is nil.
func FromRootsRat(roots ...*big.Rat) (*Polynomial, error) {
	result := One()
	for i, r := range roots {
		if r == nil {
			return nil, fmt.Errorf("root %d: %w", i, ErrBadCoefficient)
		}
		result = result.Mul(linearFactor(new(big.Rat).Set(r)))
	}

	return result, nil
}

// linearFactor returns (x - root), taking ownership of root.
func linearFactor(root *big.Rat) *Polynomial {
	return &Polynomial{coeffs: []*big.Rat{root.Neg(root), big.NewRat(1, 1)}}
}
