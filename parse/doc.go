// Package parse turns algebraic string expressions like "3x^2 + 2x - 5"
// into poly.Polynomial values via a recursive-descent parser.
//
// 🚀 What does parse accept?
//
//	Addition, subtraction, multiplication (explicit * and implicit
//	juxtaposition: 3x, 2(x+1), (x+1)(x-1)), division by a scalar,
//	exponentiation by a non-negative integer literal, unary minus,
//	parentheses, integer and decimal literals, and a single variable
//	symbol (default 'x', configurable via WithVariable). Whitespace is
//	insignificant.
//
// Grammar (precedence low → high):
//
//	expression → term (('+' | '-') term)*
//	term       → unary (('*' | '/') unary | power)*   ; adjacency multiplies
//	unary      → '-' unary | power
//	power      → atom ('^' integer)?
//	atom       → number | variable | '(' expression ')'
//
// The parser builds the polynomial bottom-up: each reduction applies the
// corresponding poly operation (Add, Sub, Mul, DivScalar, Pow, Neg), so
// the result is always in canonical form. Literals are converted exactly
// via big.Rat; decimals never round.
//
// Parser state is a plain cursor (token slice + position) threaded through
// the mutually recursive rule functions; there is no shared or global
// state, and parsing cost is linear in the input length (modulo the
// polynomial arithmetic the expression itself demands).
//
// Errors (sentinel, matched via errors.Is; each is wrapped in a *Error
// carrying the input, byte offset and offending token):
//
//	– ErrEmptyExpression  if the input contains no tokens.
//	– ErrUnbalancedParen  if parentheses do not match.
//	– ErrUnexpectedToken  for unrecognized or out-of-place tokens.
//	– ErrBadExponent      if a '^' is not followed by a non-negative
//	                      integer literal (e.g. "x^-2", "x^1.5", "3x^^2").
//	– ErrUnknownSymbol    for any identifier other than the variable.
//	– ErrNonScalarDivisor if the right operand of '/' is not constant.
//	– poly.ErrZeroDivisor if the right operand of '/' is the scalar zero.
//
// A failed parse never yields a polynomial: there is no fallback-to-zero.
//
// Example usage:
//
//	p, err := parse.Parse("(x+1)^2 - 4")
//	if err != nil {
//	    var perr *parse.Error
//	    if errors.As(err, &perr) {
//	        fmt.Println("offset", perr.Pos, "token", perr.Token)
//	    }
//	    return
//	}
//	fmt.Println(p) // x^2 + 2x - 3
package parse
