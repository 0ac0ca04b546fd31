package parse

import (
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/lvlpoly/poly"
)

// Parse converts an algebraic expression into a Polynomial, applying poly
// operations bottom-up as grammar rules reduce. See the package
// documentation for the accepted grammar and error inventory.
//
// Example:
//
//	p, err := parse.Parse("3x^2 + 2x - 5")
//	q, err := parse.Parse("2t(t-1)", parse.WithVariable('t'))
func Parse(expr string, opts ...Option) (*poly.Polynomial, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	toks, err := lex(expr)
	if err != nil {
		return nil, err
	}
	if toks[0].kind == tokEOF {
		return nil, &Error{Input: expr, Pos: 0, err: ErrEmptyExpression}
	}

	ps := &parser{input: expr, toks: toks, variable: o.Variable}
	p, err := ps.parseExpression()
	if err != nil {
		return nil, err
	}
	if tok := ps.peek(); tok.kind != tokEOF {
		if tok.kind == tokRParen {
			return nil, ps.fail(tok, ErrUnbalancedParen)
		}

		return nil, ps.fail(tok, ErrUnexpectedToken)
	}

	return p, nil
}

// MustParse is Parse that panics on error. Intended for expressions known
// valid at compile time.
func MustParse(expr string, opts ...Option) *poly.Polynomial {
	p, err := Parse(expr, opts...)
	if err != nil {
		panic(err)
	}

	return p
}

// parser is the cursor threaded through the mutually recursive rule
// functions: the token slice, the current position, and the bound
// variable symbol. No state is shared outside this struct.
type parser struct {
	input    string
	toks     []token
	pos      int
	variable rune
}

// peek returns the current token without consuming it.
func (ps *parser) peek() token { return ps.toks[ps.pos] }

// advance consumes and returns the current token.
func (ps *parser) advance() token {
	tok := ps.toks[ps.pos]
	if tok.kind != tokEOF {
		ps.pos++
	}

	return tok
}

// fail wraps a sentinel with the offending token's context.
func (ps *parser) fail(tok token, sentinel error) error {
	return &Error{Input: ps.input, Pos: tok.pos, Token: tok.text, err: sentinel}
}

// parseExpression → term (('+' | '-') term)*
func (ps *parser) parseExpression() (*poly.Polynomial, error) {
	p, err := ps.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch ps.peek().kind {
		case tokPlus:
			ps.advance()
			rhs, err := ps.parseTerm()
			if err != nil {
				return nil, err
			}
			p = p.Add(rhs)
		case tokMinus:
			ps.advance()
			rhs, err := ps.parseTerm()
			if err != nil {
				return nil, err
			}
			p = p.Sub(rhs)
		default:
			return p, nil
		}
	}
}

// parseTerm → unary (('*' | '/') unary | power)*
//
// A number, variable or '(' directly after a factor is implicit
// multiplication (3x, 2(x+1), (x+1)(x-1)); it binds like '*', so the
// adjacent factor is parsed at power precedence, keeping "6/2x" equal to
// (6/2)·x and "3x^2" equal to 3·(x^2).
func (ps *parser) parseTerm() (*poly.Polynomial, error) {
	p, err := ps.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch ps.peek().kind {
		case tokStar:
			ps.advance()
			rhs, err := ps.parseUnary()
			if err != nil {
				return nil, err
			}
			p = p.Mul(rhs)
		case tokSlash:
			slash := ps.advance()
			rhs, err := ps.parseUnary()
			if err != nil {
				return nil, err
			}
			p, err = ps.divideByScalar(p, rhs, slash)
			if err != nil {
				return nil, err
			}
		case tokNumber, tokSymbol, tokLParen:
			rhs, err := ps.parsePower()
			if err != nil {
				return nil, err
			}
			p = p.Mul(rhs)
		default:
			return p, nil
		}
	}
}

// divideByScalar applies '/' — defined only for a constant, non-zero
// right operand.
func (ps *parser) divideByScalar(p, divisor *poly.Polynomial, at token) (*poly.Polynomial, error) {
	if divisor.Degree() > 0 {
		return nil, ps.fail(at, ErrNonScalarDivisor)
	}
	if divisor.IsZero() {
		return nil, ps.fail(at, poly.ErrZeroDivisor)
	}

	return p.DivScalar(divisor.Coefficient(0))
}

// parseUnary → '-' unary | power
func (ps *parser) parseUnary() (*poly.Polynomial, error) {
	if ps.peek().kind == tokMinus {
		ps.advance()
		p, err := ps.parseUnary()
		if err != nil {
			return nil, err
		}

		return p.Neg(), nil
	}

	return ps.parsePower()
}

// parsePower → atom ('^' integer)?
func (ps *parser) parsePower() (*poly.Polynomial, error) {
	base, err := ps.parseAtom()
	if err != nil {
		return nil, err
	}
	if ps.peek().kind != tokCaret {
		return base, nil
	}
	ps.advance()

	exp := ps.peek()
	if exp.kind != tokNumber || strings.ContainsRune(exp.text, '.') {
		return nil, ps.fail(exp, ErrBadExponent)
	}
	n, err := strconv.Atoi(exp.text)
	if err != nil {
		return nil, ps.fail(exp, ErrBadExponent)
	}
	ps.advance()

	return base.Pow(n)
}

// parseAtom → number | variable | '(' expression ')'
func (ps *parser) parseAtom() (*poly.Polynomial, error) {
	tok := ps.peek()
	switch tok.kind {
	case tokNumber:
		r, ok := new(big.Rat).SetString(tok.text)
		if !ok {
			return nil, ps.fail(tok, ErrUnexpectedToken)
		}
		ps.advance()

		return poly.MustFromRat(r), nil
	case tokSymbol:
		r, size := utf8.DecodeRuneInString(tok.text)
		if size != len(tok.text) || r != ps.variable {
			return nil, ps.fail(tok, ErrUnknownSymbol)
		}
		ps.advance()

		return poly.X(), nil
	case tokLParen:
		open := ps.advance()
		p, err := ps.parseExpression()
		if err != nil {
			return nil, err
		}
		if ps.peek().kind != tokRParen {
			return nil, ps.fail(open, ErrUnbalancedParen)
		}
		ps.advance()

		return p, nil
	default:
		return nil, ps.fail(tok, ErrUnexpectedToken)
	}
}
