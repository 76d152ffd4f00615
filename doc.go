// Package mathx is a general-purpose mathematics toolkit — from an
// arbitrary-precision decimal floating-point engine to root-finding,
// statistics and genetic-algorithm primitives.
//
// 🚀 What is mathx?
//
//	A pure-Go numerical library that brings together:
//		• dfp: software decimal floating point with configurable precision,
//		  eight rounding modes and IEEE-854-style flags & traps
//		• dfpmath: pow, exp, log and trigonometry on top of dfp
//		• solvers: univariate root-finders (bisection, secant, Brent)
//		• stat: streaming descriptive-statistics accumulators
//		• genetic: chromosomes, crossover, selection, evolution loops
//
// ✨ Why choose mathx?
//
//   - Deterministic – identical inputs give bit-identical digit output
//   - Honest arithmetic – overflow, underflow and precision loss are
//     reported through IEEE flags, never silently swallowed
//   - Pure Go – no cgo, no assembly, no hidden deps
//   - Extensible – install a custom trap handler to turn any numeric
//     exception into your own error policy
//
// Under the hood, everything is organized in small subpackages:
//
//	dfp/     — Dfp value type, Field precision context, constant bootstrap
//	dfpmath/ — transcendental functions built from dfp primitives
//	solvers/ — Bisection, Secant, Brent over plain float64 functions
//	stat/    — running mean/variance/min/max (Welford)
//	genetic/ — binary chromosomes, tournament selection, one-point crossover
//
// Quick example, π to 50 decimal digits:
//
//	field, _ := dfp.NewField(50)
//	fmt.Println(field.Pi())
//
// Dive into each package's doc.go for algorithm outlines, complexity notes
// and the full error contract.
//
//	go get github.com/mathx-go/mathx
package mathx
