package solvers

import "github.com/pkg/errors"

// Bisection finds a root of f in [lower, upper] by interval halving.
// It requires a sign change across the interval and converges linearly,
// gaining one bit of the abscissa per iteration.
// Complexity: O(log2((upper-lower)/accuracy)) function evaluations.
func Bisection(f Func, lower, upper float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts)

	fLower, fUpper, err := validateBracket(f, lower, upper, o)
	if err != nil {
		return 0, err
	}
	if abs(fLower) <= o.funcAccuracy {
		return lower, nil
	}
	if abs(fUpper) <= o.funcAccuracy {
		return upper, nil
	}

	a, b, fa := lower, upper, fLower
	for i := 0; i < o.maxIterations; i++ {
		m := a + (b-a)/2
		fm := f(m)

		if abs(fm) <= o.funcAccuracy || (b-a)/2 < o.accuracy {
			return m, nil
		}
		if (fa < 0) == (fm < 0) {
			a, fa = m, fm
		} else {
			b = m
		}
	}
	return 0, errors.Wrapf(ErrMaxIterations, "after %d iterations", o.maxIterations)
}
