package poly_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlpoly/poly"
)

// TestEvaluate_Horner verifies 3x^2 + 2x - 5 at x=2 equals 11.
func TestEvaluate_Horner(t *testing.T) {
	p := poly.MustNew(-5, 2, 3)

	got := p.Evaluate(big.NewRat(2, 1))
	assert.Zero(t, got.Cmp(big.NewRat(11, 1)), "got %s", got)
}

// TestEvaluate_RationalPoint verifies exact evaluation at a non-integer
// point: (x^2 + x) at 1/2 is 3/4.
func TestEvaluate_RationalPoint(t *testing.T) {
	p := poly.MustNew(0, 1, 1)

	got := p.Evaluate(big.NewRat(1, 2))
	assert.Zero(t, got.Cmp(big.NewRat(3, 4)), "got %s", got)
}

// TestEvaluate_ZeroAndConstant verifies the degenerate folds.
func TestEvaluate_ZeroAndConstant(t *testing.T) {
	x := big.NewRat(9, 1)

	assert.Zero(t, poly.Zero().Evaluate(x).Sign())
	assert.Zero(t, poly.MustNew(7).Evaluate(x).Cmp(big.NewRat(7, 1)))
}

// TestEvaluateFloat64 verifies the machine-float convenience fold.
func TestEvaluateFloat64(t *testing.T) {
	p := poly.MustNew(-5, 2, 3)

	assert.InDelta(t, 11.0, p.EvaluateFloat64(2), 1e-12)
	assert.InDelta(t, -5.0, p.EvaluateFloat64(0), 1e-12)
}

// TestCompose_Basic verifies (1+x) ∘ (x^2+x) = 1 + x + x^2.
func TestCompose_Basic(t *testing.T) {
	p := poly.MustNew(1, 1)
	q := poly.MustNew(0, 1, 1)

	assert.True(t, p.Compose(q).Equal(poly.MustNew(1, 1, 1)))
}

// TestCompose_Degree verifies deg(A∘B) = deg(A)·deg(B) for non-constants.
func TestCompose_Degree(t *testing.T) {
	a := poly.MustNew(0, 0, 0, 1) // x^3
	b := poly.MustNew(1, 0, 2)    // 2x^2 + 1

	assert.Equal(t, 6, a.Compose(b).Degree())
}

// TestCompose_ConstantOperands verifies composing with and of constants.
func TestCompose_ConstantOperands(t *testing.T) {
	p := poly.MustNew(-5, 2, 3)

	// Constant p ignores q entirely.
	assert.True(t, poly.MustNew(4).Compose(p).Equal(poly.MustNew(4)))
	// Constant q evaluates p at that constant: p(2) = 11.
	assert.True(t, p.Compose(poly.MustNew(2)).Equal(poly.MustNew(11)))
	// Composing with x is the identity.
	assert.True(t, p.Compose(poly.X()).Equal(p))
}

// TestCompose_MatchesEvaluate cross-checks composition against scalar
// evaluation: (A∘B)(x) == A(B(x)) at sample points.
func TestCompose_MatchesEvaluate(t *testing.T) {
	a := poly.MustNew(1, -2, 0, 1)
	b := poly.MustNew(-3, 2, 5)
	composed := a.Compose(b)

	for _, n := range []int64{-2, -1, 0, 1, 2, 3} {
		x := big.NewRat(n, 1)
		want := a.Evaluate(b.Evaluate(x))
		assert.Zero(t, composed.Evaluate(x).Cmp(want), "mismatch at x=%d", n)
	}
}
