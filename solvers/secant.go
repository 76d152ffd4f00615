package solvers

import "github.com/pkg/errors"

// Secant finds a root of f starting from the two abscissae lower and
// upper, iterating the secant line through the last two points. Near a
// simple root convergence is superlinear (order ≈ 1.618); unlike
// Bisection and Brent it does not demand a sign change, so it may diverge
// on pathological inputs — the iteration budget catches that.
func Secant(f Func, lower, upper float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts)
	if lower >= upper {
		return 0, errors.Wrapf(ErrInvalidInterval, "[%g, %g]", lower, upper)
	}

	x0, x1 := lower, upper
	f0, f1 := f(x0), f(x1)
	if abs(f0) <= o.funcAccuracy {
		return x0, nil
	}
	if abs(f1) <= o.funcAccuracy {
		return x1, nil
	}

	for i := 0; i < o.maxIterations; i++ {
		denom := f1 - f0
		if denom == 0 {
			return 0, errors.Wrap(ErrMaxIterations, "flat secant")
		}
		x2 := x1 - f1*(x1-x0)/denom
		f2 := f(x2)

		if abs(f2) <= o.funcAccuracy || abs(x2-x1) < o.accuracy {
			return x2, nil
		}
		x0, f0 = x1, f1
		x1, f1 = x2, f2
	}
	return 0, errors.Wrapf(ErrMaxIterations, "after %d iterations", o.maxIterations)
}
