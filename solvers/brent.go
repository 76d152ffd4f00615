package solvers

import (
	"math"

	"github.com/pkg/errors"
)

// Brent finds a root of f in [lower, upper] using the Brent-Dekker
// scheme: inverse quadratic interpolation when the three working points
// are distinct, secant otherwise, and a bisection fallback whenever the
// interpolated step leaves the bracket or shrinks too slowly. The
// endpoints must bracket a root (f(lower) and f(upper) of opposite sign).
//
// Convergence is guaranteed within roughly (log2((upper-lower)/accuracy))²
// evaluations, and near a simple root it is superlinear.
func Brent(f Func, lower, upper float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts)
	fa, fb, err := validateBracket(f, lower, upper, o)
	if err != nil {
		return 0, err
	}

	a, b := lower, upper
	if abs(fa) <= o.funcAccuracy {
		return a, nil
	}
	if abs(fb) <= o.funcAccuracy {
		return b, nil
	}

	c, fc := a, fa
	d := b - a
	e := d

	for i := 0; i < o.maxIterations; i++ {
		if abs(fc) < abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol := 2*ulp(b) + o.accuracy
		m := 0.5 * (c - b)
		if abs(m) <= tol || fb == 0 || abs(fb) <= o.funcAccuracy {
			return b, nil
		}

		if abs(e) < tol || abs(fa) <= abs(fb) {
			// Bracket barely moved last time; bisect.
			d = m
			e = m
		} else {
			s := fb / fa
			var p, q float64
			if a == c {
				// Secant step.
				p = 2 * m * s
				q = 1 - s
			} else {
				// Inverse quadratic interpolation.
				q = fa / fc
				r := fb / fc
				p = s * (2*m*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			if 2*p < math.Min(3*m*q-abs(tol*q), abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = m
				e = m
			}
		}

		a, fa = b, fb
		if abs(d) > tol {
			b += d
		} else if m > 0 {
			b += tol
		} else {
			b -= tol
		}
		fb = f(b)
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
	}
	return 0, errors.Wrapf(ErrMaxIterations, "after %d iterations", o.maxIterations)
}

// ulp returns the distance from x to the next representable float64
// away from zero.
func ulp(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return math.NaN()
	}
	x = math.Abs(x)
	return math.Nextafter(x, math.Inf(1)) - x
}
