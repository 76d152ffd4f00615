// Package solvers_test exercises the three root finders on polynomials
// and transcendental functions with known roots, plus every validation
// and termination path.
package solvers_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mathx-go/mathx/solvers"
)

func TestBisection_FindsRoots(t *testing.T) {
	cases := []struct {
		name         string
		f            solvers.Func
		lower, upper float64
		want         float64
	}{
		{"sqrt2", func(x float64) float64 { return x*x - 2 }, 1, 2, math.Sqrt2},
		{"cubic", func(x float64) float64 { return x*x*x - 8 }, 0, 5, 2},
		{"cosine", math.Cos, 1, 2, math.Pi / 2},
		{"linear", func(x float64) float64 { return 3*x - 9 }, -10, 10, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root, err := solvers.Bisection(tc.f, tc.lower, tc.upper)
			require.NoError(t, err)
			require.InDelta(t, tc.want, root, 1e-10)
		})
	}
}

func TestBisection_EndpointRoot(t *testing.T) {
	f := func(x float64) float64 { return x - 1 }
	root, err := solvers.Bisection(f, 1, 2)
	require.NoError(t, err)
	require.Equal(t, 1.0, root)
}

func TestBisection_InvalidInterval(t *testing.T) {
	f := func(x float64) float64 { return x }
	_, err := solvers.Bisection(f, 2, 1)
	require.ErrorIs(t, err, solvers.ErrInvalidInterval)

	_, err = solvers.Bisection(f, 1, 1)
	require.ErrorIs(t, err, solvers.ErrInvalidInterval)
}

func TestBisection_NotBracketed(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }
	_, err := solvers.Bisection(f, -1, 1)
	require.ErrorIs(t, err, solvers.ErrNotBracketed)
}

func TestBisection_MaxIterations(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	_, err := solvers.Bisection(f, 1, 2,
		solvers.WithMaxIterations(3),
		solvers.WithAccuracy(1e-15))
	require.ErrorIs(t, err, solvers.ErrMaxIterations)
}

func TestSecant_FindsRoots(t *testing.T) {
	root, err := solvers.Secant(func(x float64) float64 { return x*x*x - 8 }, 1, 3)
	require.NoError(t, err)
	require.InDelta(t, 2, root, 1e-10)

	root, err = solvers.Secant(func(x float64) float64 { return math.Exp(x) - 5 }, 0, 3)
	require.NoError(t, err)
	require.InDelta(t, math.Log(5), root, 1e-10)
}

func TestSecant_NoSignChangeRequired(t *testing.T) {
	// both endpoints on the same side of the root
	root, err := solvers.Secant(func(x float64) float64 { return x - 10 }, 0, 1)
	require.NoError(t, err)
	require.InDelta(t, 10, root, 1e-10)
}

func TestSecant_InvalidInterval(t *testing.T) {
	_, err := solvers.Secant(func(x float64) float64 { return x }, 5, 5)
	require.ErrorIs(t, err, solvers.ErrInvalidInterval)
}

func TestBrent_FindsRoots(t *testing.T) {
	cases := []struct {
		name         string
		f            solvers.Func
		lower, upper float64
		want         float64
	}{
		{"sqrt2", func(x float64) float64 { return x*x - 2 }, 1, 2, math.Sqrt2},
		{"dottie", func(x float64) float64 { return math.Cos(x) - x }, 0, 1, 0.7390851332151607},
		{"quintic", func(x float64) float64 { return math.Pow(x, 5) - 32 }, 0, 5, 2},
		{"sine", math.Sin, 3, 4, math.Pi},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root, err := solvers.Brent(tc.f, tc.lower, tc.upper)
			require.NoError(t, err)
			require.InDelta(t, tc.want, root, 1e-9)
		})
	}
}

func TestBrent_NotBracketed(t *testing.T) {
	_, err := solvers.Brent(func(x float64) float64 { return x*x + 1 }, -1, 1)
	require.ErrorIs(t, err, solvers.ErrNotBracketed)
}

func TestBrent_ConvergesFasterThanBisection(t *testing.T) {
	var brentCalls, bisectCalls int
	f := func(counter *int) solvers.Func {
		return func(x float64) float64 {
			*counter++
			return x*x*x - 2*x - 5
		}
	}

	rb, err := solvers.Brent(f(&brentCalls), 2, 3)
	require.NoError(t, err)
	ri, err := solvers.Bisection(f(&bisectCalls), 2, 3)
	require.NoError(t, err)

	require.InDelta(t, rb, ri, 1e-9)
	require.Less(t, brentCalls, bisectCalls)
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	require.Panics(t, func() { solvers.WithAccuracy(0) })
	require.Panics(t, func() { solvers.WithAccuracy(-1) })
	require.Panics(t, func() { solvers.WithFuncAccuracy(-1) })
	require.Panics(t, func() { solvers.WithMaxIterations(0) })
}

func TestOptions_CustomAccuracy(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	root, err := solvers.Bisection(f, 1, 2, solvers.WithAccuracy(1e-3))
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt2, root, 1e-2)
}
