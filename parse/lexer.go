package parse

import (
	"unicode"
	"unicode/utf8"
)

// tokenKind enumerates the token classes the grammar distinguishes.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokSymbol
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
)

// token is a lexeme with its byte offset in the input.
type token struct {
	kind tokenKind
	text string
	pos  int
}

// lex splits the input into tokens, always terminated by a tokEOF entry.
// Whitespace is insignificant. Number literals are digits with at most one
// interior decimal point; identifiers are maximal letter runs (the parser
// decides whether one names the variable).
func lex(input string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(input) {
		r, size := utf8.DecodeRuneInString(input[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case r >= '0' && r <= '9':
			start := i
			sawDot := false
			for i < len(input) {
				c := input[i]
				if c == '.' {
					if sawDot {
						break
					}
					// A trailing dot ("1.") is not a valid literal.
					if i+1 >= len(input) || input[i+1] < '0' || input[i+1] > '9' {
						return nil, &Error{Input: input, Pos: start, Token: input[start : i+1], err: ErrUnexpectedToken}
					}
					sawDot = true
					i++
					continue
				}
				if c < '0' || c > '9' {
					break
				}
				i++
			}
			toks = append(toks, token{kind: tokNumber, text: input[start:i], pos: start})
		case unicode.IsLetter(r):
			start := i
			for i < len(input) {
				rr, s := utf8.DecodeRuneInString(input[i:])
				if !unicode.IsLetter(rr) {
					break
				}
				i += s
			}
			toks = append(toks, token{kind: tokSymbol, text: input[start:i], pos: start})
		default:
			kind, ok := punctKind(r)
			if !ok {
				return nil, &Error{Input: input, Pos: i, Token: string(r), err: ErrUnexpectedToken}
			}
			toks = append(toks, token{kind: kind, text: string(r), pos: i})
			i += size
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(input)})

	return toks, nil
}

// punctKind maps a punctuation rune to its token kind.
func punctKind(r rune) (tokenKind, bool) {
	switch r {
	case '+':
		return tokPlus, true
	case '-':
		return tokMinus, true
	case '*':
		return tokStar, true
	case '/':
		return tokSlash, true
	case '^':
		return tokCaret, true
	case '(':
		return tokLParen, true
	case ')':
		return tokRParen, true
	default:
		return tokEOF, false
	}
}
