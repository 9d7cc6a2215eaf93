package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkSolution verifies that a parametric solution actually solves
// sum a[i]*x[i] = sum b[j]*y[j]: the parameter columns must cancel and the
// symbol columns must reproduce b. Unknowns left out of the solution carry a
// private fresh parameter, so they are only sound when their coefficient is
// zero.
func checkSolution(t *testing.T, a, b []int, sol []Binding) {
	t.Helper()
	k := 0
	if len(sol) > 0 {
		k = len(sol[0].Factors)
	}
	seen := make(map[int]bool)
	for _, bd := range sol {
		require.GreaterOrEqual(t, bd.Index, 0)
		require.Less(t, bd.Index, len(a))
		require.False(t, seen[bd.Index], "duplicate index %d", bd.Index)
		seen[bd.Index] = true
		require.Len(t, bd.Factors, k)
		require.Len(t, bd.Consts, len(b))
	}
	for i := range a {
		if !seen[i] {
			assert.Zero(t, a[i], "unconstrained unknown %d has non-zero coefficient", i)
		}
	}
	for j := 0; j < k; j++ {
		sum := 0
		for _, bd := range sol {
			sum += a[bd.Index] * bd.Factors[j]
		}
		assert.Zero(t, sum, "parameter column %d does not cancel", j)
	}
	for j := range b {
		sum := 0
		for _, bd := range sol {
			sum += a[bd.Index] * bd.Consts[j]
		}
		assert.Equal(t, b[j], sum, "symbol column %d", j)
	}
}

func TestSolve(t *testing.T) {
	for i, tt := range []struct {
		a, b []int
		ok   bool
	}{
		{a: []int{2, 1}, b: []int{3}, ok: true},
		{a: []int{2}, b: []int{1}, ok: false},
		{a: []int{2}, b: []int{1, 2}, ok: false},
		{a: []int{6, 10}, b: []int{3}, ok: false},
		{a: []int{6, 10}, b: []int{2}, ok: true},
		{a: []int{64, -41}, b: []int{1}, ok: true},
		{a: []int{1}, b: []int{}, ok: true},
		{a: []int{1, -1}, b: []int{}, ok: true},
		{a: []int{2, 1, -3}, b: []int{}, ok: true},
		{a: []int{0, 3}, b: []int{6}, ok: true},
		{a: []int{0, 3}, b: []int{7}, ok: false},
		{a: []int{0, 0}, b: []int{0}, ok: true},
		{a: []int{0}, b: []int{1}, ok: false},
		{a: []int{-1}, b: []int{}, ok: true},
		{a: []int{12, 30, 42}, b: []int{6, -18}, ok: true},
		{a: []int{12, 30, 42}, b: []int{4}, ok: false},
		{a: []int{5, 7, 11, 13}, b: []int{1}, ok: true},
	} {
		sol, ok := Solve(tt.a, tt.b)
		require.Equal(t, tt.ok, ok, "%d) Solve(%v, %v)", i, tt.a, tt.b)
		if ok {
			checkSolution(t, tt.a, tt.b, sol)
		}
	}
}

func TestSolveExact(t *testing.T) {
	// 2*x0 + 1*x1 = 3*y0 eliminates x0 in one step
	sol, ok := Solve([]int{2, 1}, []int{3})
	require.True(t, ok)
	assert.Equal(t, []Binding{
		{Index: 0, Factors: []int{1}, Consts: []int{0}},
		{Index: 1, Factors: []int{-2}, Consts: []int{3}},
	}, sol)

	// zero-coefficient unknowns stay out of the solution entirely
	sol, ok = Solve([]int{0, 3}, []int{6})
	require.True(t, ok)
	assert.Equal(t, []Binding{
		{Index: 1, Factors: []int{}, Consts: []int{2}},
	}, sol)

	// all coefficients zero: everything is unconstrained
	sol, ok = Solve([]int{0, 0}, []int{0})
	require.True(t, ok)
	assert.Empty(t, sol)
}

func TestSolveParameterCount(t *testing.T) {
	// generic case: n-1 parameters
	sol, ok := Solve([]int{2, 1, -3}, []int{})
	require.True(t, ok)
	require.NotEmpty(t, sol)
	assert.Len(t, sol[0].Factors, 2)

	// a zero coefficient costs no reduction step and no parameter
	sol, ok = Solve([]int{2, 0, 4}, []int{})
	require.True(t, ok)
	require.NotEmpty(t, sol)
	assert.Len(t, sol[0].Factors, 1)
}

func TestSolveDeterministic(t *testing.T) {
	a, b := []int{12, 30, 42}, []int{6, -18}
	first, ok := Solve(a, b)
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		again, ok := Solve(a, b)
		require.True(t, ok)
		require.Equal(t, first, again)
	}
}

func TestSolveLeavesInputsAlone(t *testing.T) {
	a, b := []int{6, 10}, []int{2}
	_, ok := Solve(a, b)
	require.True(t, ok)
	assert.Equal(t, []int{6, 10}, a)
	assert.Equal(t, []int{2}, b)
}

func TestSolveNoUnknownsPanics(t *testing.T) {
	assert.Panics(t, func() { Solve(nil, []int{1}) })
}
