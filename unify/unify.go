// Package unify implements matching and unification in the free Abelian
// group, by reduction to a single linear Diophantine equation.
package unify

import (
	"errors"
	"strconv"

	"github.com/ramsdell/agum/group"
	"github.com/ramsdell/agum/linear"
)

// ErrNoSolution reports that no substitution maps the left-hand side of an
// equation to its right-hand side.
var ErrNoSolution = errors.New("no solution")

// Match finds a most general substitution s with s(eq.Lhs) == eq.Rhs. The
// variables of the left-hand side are the unknowns; those of the right-hand
// side act as constants. The nil substitution is the (successful) identity.
func Match(eq group.Equation) (*group.Substitution, error) {
	lhs := eq.Lhs.Assocs()
	rhs := eq.Rhs.Assocs()
	if len(lhs) == 0 {
		if len(rhs) == 0 {
			return nil, nil
		}
		return nil, ErrNoSolution
	}

	vars := make([]string, len(lhs))
	a := make([]int, len(lhs))
	for i, as := range lhs {
		vars[i], a[i] = as.Name, as.Coeff
	}
	syms := make([]string, len(rhs))
	b := make([]int, len(rhs))
	for j, as := range rhs {
		syms[j], b[j] = as.Name, as.Coeff
	}

	sol, ok := linear.Solve(a, b)
	if !ok {
		return nil, ErrNoSolution
	}

	pool := newFreshPool(vars, syms)
	k := 0
	if len(sol) > 0 {
		k = len(sol[0].Factors)
	}
	params := make([]string, k)
	for j := range params {
		params[j] = pool.take()
	}

	bound := make(map[int]linear.Binding, len(sol))
	for _, bd := range sol {
		bound[bd.Index] = bd
	}

	var s *group.Substitution
	for i, x := range vars {
		var t group.Term
		if bd, ok := bound[i]; ok {
			t = group.Zero()
			for j, f := range bd.Factors {
				if f != 0 {
					t = t.Add(group.Var(params[j]).Scale(f))
				}
			}
			for j, c := range bd.Consts {
				if c != 0 {
					t = t.Add(group.Var(syms[j]).Scale(c))
				}
			}
		} else {
			t = group.Var(pool.take())
		}
		if t.Equal(group.Var(x)) {
			// identity maplet, absence already means x -> x
			continue
		}
		s = s.Bind(x, t)
	}
	return s, nil
}

// Unify finds a most general substitution s with s(eq.Lhs) == s(eq.Rhs), by
// matching eq.Lhs - eq.Rhs against 0. A single homogeneous linear equation
// is always solvable, so Unify never fails.
func Unify(eq group.Equation) *group.Substitution {
	diff := group.Equation{Lhs: eq.Lhs.Add(eq.Rhs.Neg()), Rhs: group.Zero()}
	s, err := Match(diff)
	if err != nil {
		panic("unify: match failed on a homogeneous equation")
	}
	return s
}

// freshPool hands out the names g0, g1, ..., skipping any name that occurs
// in the input equation. Each Match call gets its own pool, so identical
// inputs yield identical outputs.
type freshPool struct {
	used map[string]bool
	next int
}

func newFreshPool(vars, syms []string) *freshPool {
	used := make(map[string]bool, len(vars)+len(syms))
	for _, x := range vars {
		used[x] = true
	}
	for _, x := range syms {
		used[x] = true
	}
	return &freshPool{used: used}
}

func (f *freshPool) take() string {
	for {
		name := "g" + strconv.Itoa(f.next)
		f.next++
		if !f.used[name] {
			return name
		}
	}
}
