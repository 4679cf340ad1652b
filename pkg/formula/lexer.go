package formula

import (
	"fmt"
	"strconv"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokNumber:
		return "number"
	case tokIdent:
		return "identifier"
	case tokPlus:
		return "'+'"
	case tokMinus:
		return "'-'"
	case tokStar:
		return "'*'"
	case tokSlash:
		return "'/'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	}
	return "unknown"
}

type token struct {
	kind tokenKind
	pos  int
	text string
	num  float64
}

// lex splits src into tokens. It accepts ASCII only; every other byte is a syntax error.
func lex(src string) ([]token, error) {
	tokens := make([]token, 0, len(src)/2+1)
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '+':
			tokens = append(tokens, token{kind: tokPlus, pos: i, text: "+"})
			i++
		case c == '-':
			tokens = append(tokens, token{kind: tokMinus, pos: i, text: "-"})
			i++
		case c == '*':
			tokens = append(tokens, token{kind: tokStar, pos: i, text: "*"})
			i++
		case c == '/':
			tokens = append(tokens, token{kind: tokSlash, pos: i, text: "/"})
			i++
		case c == '(':
			tokens = append(tokens, token{kind: tokLParen, pos: i, text: "("})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokRParen, pos: i, text: ")"})
			i++
		case isDigit(c) || c == '.':
			tok, next, err := lexNumber(src, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i = next
		case isIdentStart(c):
			start := i
			for i < len(src) && isIdentPart(src[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokIdent, pos: start, text: src[start:i]})
		default:
			return nil, &SyntaxError{Pos: i, Msg: fmt.Sprintf("unexpected character %q", c)}
		}
	}
	tokens = append(tokens, token{kind: tokEOF, pos: len(src)})
	return tokens, nil
}

func lexNumber(src string, start int) (token, int, error) {
	i := start
	digits := 0
	for i < len(src) && isDigit(src[i]) {
		i++
		digits++
	}
	if i < len(src) && src[i] == '.' {
		i++
		for i < len(src) && isDigit(src[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return token{}, 0, &SyntaxError{Pos: start, Msg: "malformed number"}
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(src) && isDigit(src[j]) {
			j++
			expDigits++
		}
		if expDigits == 0 {
			return token{}, 0, &SyntaxError{Pos: i, Msg: "malformed exponent"}
		}
		i = j
	}
	if i < len(src) && isIdentStart(src[i]) {
		return token{}, 0, &SyntaxError{Pos: i, Msg: "identifier cannot follow a number"}
	}

	text := src[start:i]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, 0, &SyntaxError{Pos: start, Msg: fmt.Sprintf("invalid number %q", text)}
	}
	return token{kind: tokNumber, pos: start, text: text, num: v}, i, nil
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isIdentStart(c byte) bool { return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isIdentPart(c byte) bool  { return isIdentStart(c) || isDigit(c) }
