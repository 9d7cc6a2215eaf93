// Package shell is the surface layer: a lexer and recursive-descent parser
// for the textual syntax of terms and equations, and the interactive
// read-eval-print loop around the matcher and unifier.
package shell

import (
	"fmt"
	"unicode"
)

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenInt
	tokenIdent
	tokenPlus
	tokenMinus
	tokenEquals
	tokenLParen
	tokenRParen
)

type token struct {
	typ  tokenType
	text string
	pos  int // rune offset in the input line
}

func (t token) describe() string {
	if t.typ == tokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.text)
}

// lex splits one input line into tokens. Whitespace separates tokens; a
// digit run and a following identifier lex as two tokens, which is how the
// grammar reads juxtaposition as in "2x".
func lex(input string) ([]token, error) {
	var toks []token
	runes := []rune(input)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '+':
			toks = append(toks, token{tokenPlus, "+", i})
			i++
		case r == '-':
			toks = append(toks, token{tokenMinus, "-", i})
			i++
		case r == '=':
			toks = append(toks, token{tokenEquals, "=", i})
			i++
		case r == '(':
			toks = append(toks, token{tokenLParen, "(", i})
			i++
		case r == ')':
			toks = append(toks, token{tokenRParen, ")", i})
			i++
		case unicode.IsDigit(r):
			start := i
			for i < len(runes) && unicode.IsDigit(runes[i]) {
				i++
			}
			toks = append(toks, token{tokenInt, string(runes[start:i]), start})
		case unicode.IsLetter(r):
			start := i
			i++
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i])) {
				i++
			}
			toks = append(toks, token{tokenIdent, string(runes[start:i]), start})
		default:
			return nil, fmt.Errorf("column %d: unexpected character %q", i+1, r)
		}
	}
	return append(toks, token{tokenEOF, "", len(runes)}), nil
}
