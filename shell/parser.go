package shell

import (
	"fmt"
	"strconv"

	"github.com/ramsdell/agum/group"
)

// The grammar:
//
//	equation := term '=' term
//	term     := ['+'|'-'] factor { ('+'|'-') factor }
//	factor   := INT IDENT | INT '(' term ')' | INT | IDENT | '(' term ')'
//
// A bare INT must be 0, the identity; other integers denote nothing in the
// free group. All construction goes through the group constructors, so
// parsed terms satisfy the canonical-form invariant.

type parser struct {
	toks []token
	pos  int
}

// ParseEquation parses a line of the form "term = term".
func ParseEquation(line string) (group.Equation, error) {
	toks, err := lex(line)
	if err != nil {
		return group.Equation{}, err
	}
	p := &parser{toks: toks}
	lhs, err := p.term()
	if err != nil {
		return group.Equation{}, err
	}
	if _, err := p.expect(tokenEquals, "'='"); err != nil {
		return group.Equation{}, err
	}
	rhs, err := p.term()
	if err != nil {
		return group.Equation{}, err
	}
	if _, err := p.expect(tokenEOF, "end of input"); err != nil {
		return group.Equation{}, err
	}
	return group.Equation{Lhs: lhs, Rhs: rhs}, nil
}

// ParseTerm parses a line holding a single term.
func ParseTerm(line string) (group.Term, error) {
	toks, err := lex(line)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	t, err := p.term()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenEOF, "end of input"); err != nil {
		return nil, err
	}
	return t, nil
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.typ != tokenEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(typ tokenType, what string) (token, error) {
	t := p.peek()
	if t.typ != typ {
		return token{}, fmt.Errorf("column %d: expected %s, found %s", t.pos+1, what, t.describe())
	}
	return p.next(), nil
}

func (p *parser) term() (group.Term, error) {
	sign := 1
	switch p.peek().typ {
	case tokenPlus:
		p.next()
	case tokenMinus:
		p.next()
		sign = -1
	}
	t, err := p.factor()
	if err != nil {
		return nil, err
	}
	sum := t.Scale(sign)
	for {
		switch p.peek().typ {
		case tokenPlus:
			sign = 1
		case tokenMinus:
			sign = -1
		default:
			return sum, nil
		}
		p.next()
		t, err := p.factor()
		if err != nil {
			return nil, err
		}
		sum = sum.Add(t.Scale(sign))
	}
}

func (p *parser) factor() (group.Term, error) {
	switch t := p.peek(); t.typ {
	case tokenInt:
		p.next()
		n, err := strconv.Atoi(t.text)
		if err != nil {
			return nil, fmt.Errorf("column %d: coefficient %s out of range", t.pos+1, t.text)
		}
		switch p.peek().typ {
		case tokenIdent:
			id := p.next()
			return group.Var(id.text).Scale(n), nil
		case tokenLParen:
			inner, err := p.parens()
			if err != nil {
				return nil, err
			}
			return inner.Scale(n), nil
		}
		if n != 0 {
			return nil, fmt.Errorf("column %d: expected a variable after %s", t.pos+1, t.text)
		}
		return group.Zero(), nil
	case tokenIdent:
		p.next()
		return group.Var(t.text), nil
	case tokenLParen:
		return p.parens()
	default:
		return nil, fmt.Errorf("column %d: expected a factor, found %s", t.pos+1, t.describe())
	}
}

func (p *parser) parens() (group.Term, error) {
	if _, err := p.expect(tokenLParen, "'('"); err != nil {
		return nil, err
	}
	t, err := p.term()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenRParen, "')'"); err != nil {
		return nil, err
	}
	return t, nil
}
