// Package linear solves a single linear Diophantine equation
//
//	a0*x0 + a1*x1 + ... + a(n-1)*x(n-1) = b0*y0 + b1*y1 + ... + b(m-1)*y(m-1)
//
// where the x are integer unknowns and the y are formal symbols treated as
// independent basis elements. The solution returned is most general: every
// integer solution is an instance of it for some assignment of the fresh
// parameters.
//
// Arithmetic is exact machine-int arithmetic; coefficients whose
// intermediate products exceed the int range are not detected.
package linear

import "slices"

// Binding is the parametric value of one unknown:
//
//	x[Index] = sum_j Factors[j]*p(j) + sum_j Consts[j]*y(j)
//
// where the p(j) are fresh integer parameters. Factors has the same length
// for every binding of a solution; Consts has one entry per right-hand-side
// position. Unknowns without a binding are unconstrained and take one fresh
// parameter each.
type Binding struct {
	Index   int
	Factors []int
	Consts  []int
}

// Solve returns the most general integer solution of the equation given by
// the coefficient vectors a (unknowns, len >= 1) and b (symbols), or
// ok == false when gcd(a) does not divide every entry of b.
//
// The reduction is the classical extended-Euclidean elimination: the
// coefficient row is repeatedly reduced modulo its minimally sized entry
// (ties broken by smallest index) while the same column operations are
// mirrored on a transform matrix mapping the original unknowns to the
// reduced ones. Identical inputs produce identical outputs.
func Solve(a, b []int) ([]Binding, bool) {
	n := len(a)
	if n == 0 {
		panic("linear: no unknowns")
	}

	c := slices.Clone(a)
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
		m[i][i] = 1
	}

	p := pivot(c)
	if p < 0 {
		// 0 = b has only the trivial reading
		for _, y := range b {
			if y != 0 {
				return nil, false
			}
		}
		return []Binding{}, true
	}
	for reduce(c, m, p) {
		p = pivot(c)
	}

	g := c[p]
	for _, y := range b {
		if y%g != 0 {
			return nil, false
		}
	}

	// free columns parameterize the solution space; columns of unknowns
	// with a zero input coefficient never change and stay unconstrained
	free := make([]int, 0, n-1)
	for j := range n {
		if j != p && a[j] != 0 {
			free = append(free, j)
		}
	}

	out := make([]Binding, 0, n)
	for i := range n {
		if a[i] == 0 {
			continue
		}
		fs := make([]int, len(free))
		for j, col := range free {
			fs[j] = m[i][col]
		}
		cs := make([]int, len(b))
		for j, y := range b {
			cs[j] = m[i][p] * (y / g)
		}
		out = append(out, Binding{Index: i, Factors: fs, Consts: cs})
	}
	return out, true
}

// pivot returns the index of the smallest non-zero coefficient by absolute
// value, smallest index first, or -1 if all are zero.
func pivot(c []int) int {
	best := -1
	for i, v := range c {
		if v == 0 {
			continue
		}
		if best < 0 || abs(v) < abs(c[best]) {
			best = i
		}
	}
	return best
}

// reduce brings every non-pivot coefficient into (-|c[p]|, |c[p]|) by the
// column operation col(i) -= q*col(p), applied to both the coefficient row
// and the transform matrix. It reports whether any non-pivot coefficient is
// still non-zero. Truncated division keeps |c[i] - q*c[p]| < |c[p]| for all
// sign combinations.
func reduce(c []int, m [][]int, p int) bool {
	more := false
	for i := range c {
		if i == p || c[i] == 0 {
			continue
		}
		q := c[i] / c[p]
		if q != 0 {
			c[i] -= q * c[p]
			for _, row := range m {
				row[i] -= q * row[p]
			}
		}
		if c[i] != 0 {
			more = true
		}
	}
	return more
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
