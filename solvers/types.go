package solvers

import "github.com/pkg/errors"

// Sentinel errors for solver input validation and termination.
var (
	// ErrInvalidInterval indicates lower >= upper.
	ErrInvalidInterval = errors.New("solvers: invalid interval")

	// ErrNotBracketed indicates f(lower) and f(upper) share a sign.
	ErrNotBracketed = errors.New("solvers: root not bracketed")

	// ErrMaxIterations indicates the iteration budget ran out.
	ErrMaxIterations = errors.New("solvers: maximum iterations exceeded")
)

// Func is a univariate real function to solve.
type Func func(x float64) float64

// Defaults for solver configuration.
const (
	// DefaultAccuracy is the absolute accuracy on the root abscissa.
	DefaultAccuracy = 1e-12

	// DefaultFuncAccuracy is the function-value threshold treated as an
	// exact root.
	DefaultFuncAccuracy = 1e-15

	// DefaultMaxIterations bounds every solver's outer loop.
	DefaultMaxIterations = 100
)

// Option configures a solver run.
type Option func(*options)

type options struct {
	accuracy      float64
	funcAccuracy  float64
	maxIterations int
}

// WithAccuracy sets the absolute accuracy on the root abscissa.
// Panics on non-positive values (programmer error).
func WithAccuracy(eps float64) Option {
	if eps <= 0 {
		panic("solvers: accuracy must be positive")
	}
	return func(o *options) { o.accuracy = eps }
}

// WithFuncAccuracy sets the |f(x)| threshold accepted as an exact root.
// Panics on negative values.
func WithFuncAccuracy(eps float64) Option {
	if eps < 0 {
		panic("solvers: function accuracy must be non-negative")
	}
	return func(o *options) { o.funcAccuracy = eps }
}

// WithMaxIterations bounds the solver's outer loop. Panics on values < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("solvers: max iterations must be at least 1")
	}
	return func(o *options) { o.maxIterations = n }
}

func gatherOptions(opts []Option) options {
	o := options{
		accuracy:      DefaultAccuracy,
		funcAccuracy:  DefaultFuncAccuracy,
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// validateBracket checks the interval and returns the endpoint values.
func validateBracket(f Func, lower, upper float64, o options) (fLower, fUpper float64, err error) {
	if lower >= upper {
		return 0, 0, errors.Wrapf(ErrInvalidInterval, "[%g, %g]", lower, upper)
	}
	fLower = f(lower)
	fUpper = f(upper)
	if fLower*fUpper > 0 &&
		!(abs(fLower) <= o.funcAccuracy || abs(fUpper) <= o.funcAccuracy) {
		return fLower, fUpper, errors.Wrapf(ErrNotBracketed, "f(%g)=%g, f(%g)=%g", lower, fLower, upper, fUpper)
	}
	return fLower, fUpper, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
