package poly

import (
	"encoding/binary"
	"math/big"
	"strconv"
	"strings"

	"github.com/zeebo/blake3"
)

// String renders the canonical algebraic form, highest degree first:
// zero-coefficient terms are omitted, a coefficient of 1 (but not -1) is
// omitted on non-constant terms, the exponent ^1 is omitted, and the
// degree-0 term carries no variable. The zero polynomial renders as "0".
// Non-integer rational coefficients render as p/q.
func (p *Polynomial) String() string {
	var b strings.Builder
	first := true
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		if c.Sign() == 0 {
			continue
		}
		switch {
		case first && c.Sign() < 0:
			b.WriteByte('-')
		case !first && c.Sign() < 0:
			b.WriteString(" - ")
		case !first:
			b.WriteString(" + ")
		}
		abs := new(big.Rat).Abs(c)
		if i == 0 || abs.Cmp(ratOne) != 0 {
			b.WriteString(ratString(abs))
		}
		if i >= 1 {
			b.WriteByte('x')
			if i >= 2 {
				b.WriteByte('^')
				b.WriteString(strconv.Itoa(i))
			}
		}
		first = false
	}
	if first {
		return "0"
	}

	return b.String()
}

var ratOne = big.NewRat(1, 1)

// ratString renders a rational as an integer when possible, p/q otherwise.
func ratString(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}

	return r.RatString()
}

// Equal reports whether p and q have element-wise equal canonical
// coefficient vectors. The construction route (raw coefficients, roots,
// parsed string) is irrelevant: equal canonical forms compare equal.
func (p *Polynomial) Equal(q *Polynomial) bool {
	if q == nil || len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i, c := range p.coeffs {
		if c.Cmp(q.coeffs[i]) != 0 {
			return false
		}
	}

	return true
}

// Hash returns a 32-byte BLAKE3 digest of the canonical coefficient
// vector. Equal polynomials hash identically, and the fixed-size array
// result is comparable, so it can serve directly as a map or set key.
//
// The encoding is unambiguous: per coefficient, a sign byte followed by
// the length-prefixed big-endian magnitudes of numerator and denominator.
func (p *Polynomial) Hash() [32]byte {
	h := blake3.New()
	var lenBuf [8]byte
	writeInt := func(sign int, mag []byte) {
		h.Write([]byte{byte(sign + 1)})
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(mag)))
		h.Write(lenBuf[:])
		h.Write(mag)
	}
	for _, c := range p.coeffs {
		writeInt(c.Num().Sign(), c.Num().Bytes())
		writeInt(c.Denom().Sign(), c.Denom().Bytes())
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))

	return out
}
