package group

import (
	"strconv"
	"strings"
)

// remainder is formatting logic

func (t Term) String() string {
	as := t.Assocs()
	if len(as) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, a := range as {
		c := a.Coeff
		if i == 0 {
			if c < 0 {
				b.WriteString("-")
				c = -c
			}
		} else if c < 0 {
			b.WriteString(" - ")
			c = -c
		} else {
			b.WriteString(" + ")
		}
		if c != 1 {
			b.WriteString(strconv.Itoa(c))
		}
		b.WriteString(a.Name)
	}
	return b.String()
}

func (e Equation) String() string {
	return e.Lhs.String() + " = " + e.Rhs.String()
}

func (s *Substitution) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, m := range s.Assocs() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.Name)
		b.WriteString(" : ")
		b.WriteString(m.Term.String())
	}
	b.WriteString("]")
	return b.String()
}
