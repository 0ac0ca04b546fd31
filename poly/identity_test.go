package poly_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpoly/poly"
)

// TestString_CanonicalRendering verifies the canonical form term by term:
// highest degree first, zero terms omitted, unit coefficients elided on
// non-constant terms, no ^1, bare constants.
func TestString_CanonicalRendering(t *testing.T) {
	cases := []struct {
		coeffs []int
		want   string
	}{
		{[]int{0}, "0"},
		{[]int{7}, "7"},
		{[]int{-7}, "-7"},
		{[]int{0, 1}, "x"},
		{[]int{0, -1}, "-x"},
		{[]int{0, 0, 1}, "x^2"},
		{[]int{-5, 2, 3}, "3x^2 + 2x - 5"},
		{[]int{1, 0, -3}, "-3x^2 + 1"},
		{[]int{0, 1, 0, 1}, "x^3 + x"},
		{[]int{-1, -1, -1}, "-x^2 - x - 1"},
		{[]int{2, 0, 0, 0, 1}, "x^4 + 2"},
	}
	for _, tc := range cases {
		p := poly.MustNew(tc.coeffs...)
		assert.Equal(t, tc.want, p.String(), "coefficients %v", tc.coeffs)
	}
}

// TestString_RationalCoefficients verifies p/q rendering for non-integer
// coefficients.
func TestString_RationalCoefficients(t *testing.T) {
	p := poly.MustFromRat(big.NewRat(-1, 2), big.NewRat(3, 4))
	assert.Equal(t, "3/4x - 1/2", p.String())
}

// TestEqual_StructuralOverCanonicalForm verifies equality is element-wise
// over canonical coefficients, regardless of how the inputs were written.
func TestEqual_StructuralOverCanonicalForm(t *testing.T) {
	a := poly.MustNew(1, 2, 0, 0)
	b := poly.MustNew(1, 2)

	assert.True(t, a.Equal(b), "trailing zeros must not affect equality")
	assert.False(t, a.Equal(poly.MustNew(1, 2, 3)))
	assert.False(t, a.Equal(nil))
}

// TestEqual_CrossConstructor verifies that polynomials built via different
// entry points reducing to the same canonical sequence compare equal and
// hash identically.
func TestEqual_CrossConstructor(t *testing.T) {
	fromCoeffs := poly.MustNew(-1, 0, 1)
	fromRoots, err := poly.FromRoots(1, -1)
	require.NoError(t, err)

	assert.True(t, fromCoeffs.Equal(fromRoots))
	assert.Equal(t, fromCoeffs.Hash(), fromRoots.Hash())
}

// TestHash_EqualPolynomialsHashEqual verifies the hash/equality contract
// and that distinct polynomials get distinct digests.
func TestHash_EqualPolynomialsHashEqual(t *testing.T) {
	a := poly.MustNew(1, 2, 3)
	b := poly.MustNew(1, 2, 3, 0)

	assert.Equal(t, a.Hash(), b.Hash(), "equal polynomials must hash identically")
	assert.NotEqual(t, a.Hash(), poly.MustNew(1, 2).Hash())
	assert.NotEqual(t, a.Hash(), a.Neg().Hash(), "sign must participate in the digest")
}

// TestHash_DistinguishesRationalLayout verifies that 1/2 and 2/1 (same
// byte magnitudes, different num/den split) produce different digests.
func TestHash_DistinguishesRationalLayout(t *testing.T) {
	half := poly.MustFromRat(big.NewRat(1, 2))
	two := poly.MustFromRat(big.NewRat(2, 1))

	assert.NotEqual(t, half.Hash(), two.Hash())
}

// TestHash_UsableAsMapKey verifies the digest works as a map key: equal
// polynomials collide, distinct ones do not.
func TestHash_UsableAsMapKey(t *testing.T) {
	index := map[[32]byte]string{}
	index[poly.MustNew(-1, 0, 1).Hash()] = "x^2 - 1"
	index[poly.MustNew(0, 1).Hash()] = "x"

	fromRoots, err := poly.FromRoots(1, -1)
	require.NoError(t, err)

	assert.Equal(t, "x^2 - 1", index[fromRoots.Hash()])
	assert.Len(t, index, 2)
}
