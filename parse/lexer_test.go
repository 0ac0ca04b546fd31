package parse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLex_TokenStream verifies kinds, texts and byte offsets for a mixed
// expression.
func TestLex_TokenStream(t *testing.T) {
	toks, err := lex("3x^2 + 1.5(x-1)")
	require.NoError(t, err)

	want := []token{
		{tokNumber, "3", 0},
		{tokSymbol, "x", 1},
		{tokCaret, "^", 2},
		{tokNumber, "2", 3},
		{tokPlus, "+", 5},
		{tokNumber, "1.5", 7},
		{tokLParen, "(", 10},
		{tokSymbol, "x", 11},
		{tokMinus, "-", 12},
		{tokNumber, "1", 13},
		{tokRParen, ")", 14},
		{tokEOF, "", 15},
	}
	assert.Equal(t, want, toks)
}

// TestLex_WhitespaceOnly verifies that blank input lexes to a bare EOF.
func TestLex_WhitespaceOnly(t *testing.T) {
	toks, err := lex("  \t ")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, tokEOF, toks[0].kind)
}

// TestLex_MaximalLetterRun verifies multi-letter identifiers stay one token.
func TestLex_MaximalLetterRun(t *testing.T) {
	toks, err := lex("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", toks[0].text)
}

// TestLex_InvalidRune verifies the unexpected-character failure with its
// context intact.
func TestLex_InvalidRune(t *testing.T) {
	_, err := lex("x # 1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedToken)

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Pos)
	assert.Equal(t, "#", perr.Token)
}

// TestLex_TrailingDot verifies that "1." is rejected as a malformed literal.
func TestLex_TrailingDot(t *testing.T) {
	_, err := lex("1.")
	assert.ErrorIs(t, err, ErrUnexpectedToken)

	_, err = lex("1.x")
	assert.ErrorIs(t, err, ErrUnexpectedToken)
}
