// Package solvers provides univariate root-finders over plain float64
// functions: Bisection, Secant and Brent.
//
// All solvers share the same contract: given f and a bracketing interval
// [a, b] (f(a) and f(b) of opposite sign, except Secant which only prefers
// a bracket), they return an abscissa x with |f(x)| driven below the
// configured accuracy, or an error when the inputs are invalid or the
// iteration budget runs out.
//
// Algorithm outlines:
//
//	Bisection — halve the bracket, keep the half with the sign change.
//	            Linear convergence, unconditionally robust. O(log((b-a)/ε)).
//	Secant    — iterate the secant through the last two points. Superlinear
//	            (golden-ratio order) near simple roots, may wander without
//	            a bracket.
//	Brent     — inverse quadratic interpolation guarded by secant and
//	            bisection fallbacks; never worse than bisection, usually
//	            far better.
//
// Configuration uses functional options in the package's usual style:
//
//	root, err := solvers.Brent(f, 0, 2, solvers.WithAccuracy(1e-12))
//
// Errors:
//
//	ErrInvalidInterval - lower bound is not strictly below the upper bound.
//	ErrNotBracketed    - f has the same sign at both interval endpoints.
//	ErrMaxIterations   - the iteration budget was exhausted before
//	                     reaching the requested accuracy.
package solvers
