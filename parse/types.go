// Package parse: sentinel error set, the structured Error wrapper, and
// functional options. Sentinels are matched via errors.Is; the *Error
// wrapper adds the failing input, byte offset and offending token so a
// caller can render a precise message without any formatting logic here.
package parse

import (
	"errors"
	"fmt"
	"unicode"
)

// Sentinel errors returned by the parser.
var (
	// ErrEmptyExpression indicates that the input contains no tokens.
	ErrEmptyExpression = errors.New("parse: empty expression")

	// ErrUnbalancedParen indicates an unmatched '(' or ')'.
	ErrUnbalancedParen = errors.New("parse: unbalanced parenthesis")

	// ErrUnexpectedToken indicates an unrecognized character or a token
	// that no grammar rule can accept at its position.
	ErrUnexpectedToken = errors.New("parse: unexpected token")

	// ErrBadExponent indicates that '^' is not followed by a non-negative
	// integer literal.
	ErrBadExponent = errors.New("parse: exponent must be a non-negative integer literal")

	// ErrUnknownSymbol indicates an identifier other than the variable
	// symbol; the grammar is strictly univariate.
	ErrUnknownSymbol = errors.New("parse: unknown symbol")

	// ErrNonScalarDivisor indicates that the right operand of '/' is not a
	// constant; only division by a scalar is defined.
	ErrNonScalarDivisor = errors.New("parse: division requires a scalar divisor")
)

// Error is the structured failure returned by Parse. It wraps one of the
// sentinel errors above (or poly.ErrZeroDivisor for a zero scalar
// divisor); errors.Is and errors.As both work as expected.
type Error struct {
	Input string // the full expression being parsed
	Pos   int    // byte offset of the offending token
	Token string // offending token text; empty at end of input
	err   error  // wrapped sentinel
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%v at offset %d in %q", e.err, e.Pos, e.Input)
	}

	return fmt.Sprintf("%v: %q at offset %d in %q", e.err, e.Token, e.Pos, e.Input)
}

// Unwrap exposes the wrapped sentinel to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.err }

// DefaultVariable is the variable symbol assumed when no WithVariable
// option is supplied.
const DefaultVariable = 'x'

// Options configures parsing.
//
// Variable – the single-letter variable symbol the grammar binds; every
// other identifier is ErrUnknownSymbol.
type Options struct {
	Variable rune
}

// Option is a functional option for configuring Parse.
type Option func(*Options)

// WithVariable sets an alternative variable symbol, e.g. 't' for time
// polynomials. The symbol must be a letter; anything else is a programmer
// error and panics.
func WithVariable(r rune) Option {
	if !unicode.IsLetter(r) {
		panic(fmt.Sprintf("parse: variable symbol %q is not a letter", r))
	}

	return func(o *Options) {
		o.Variable = r
	}
}

// DefaultOptions returns the Options Parse starts from: Variable = 'x'.
func DefaultOptions() Options {
	return Options{Variable: DefaultVariable}
}
