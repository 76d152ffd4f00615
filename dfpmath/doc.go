// Package dfpmath builds the higher transcendental functions — pow, exp,
// log and trigonometry — from the dfp arithmetic primitives.
//
// Accuracy strategy: every kernel works on (high, low) pairs of Dfp values
// whose exact sum carries roughly twice the working precision, seeded from
// the split constants cached on the dfp.Field (π, e, √2, ln 2, ln 5). The
// pair arithmetic (splitMult, splitDiv, splitPow) keeps the cross terms so
// that the final recombination rounds only once.
//
// Function outlines:
//
//	PowInt — binary exponentiation, inverting for negative exponents.
//	Pow    — IEEE-style special-case table, split power for integer
//	         exponents, exp(y·ln x) otherwise; a negative base with a
//	         non-integer exponent is an invalid operation.
//	Exp    — e^⌊a⌉ by split power times a Taylor kernel on the fraction.
//	Log    — range reduction into (2/3, 4/3) by powers of 10000 and 2,
//	         atanh-series kernel, recombined with ln 2 and ln 5.
//	Sin/Cos/Tan — reduction mod 2π, folding into [0, π/4], split Taylor
//	         kernels; Tan is Sin/Cos.
//	Atan   — reduction by reciprocal and tan(π/8) identities, alternating
//	         series kernel; Asin and Acos derive from Atan.
//
// Error contract: dfpmath never returns Go errors. Domain violations
// (log of a non-positive value, pow of a negative base to a fractional
// exponent) raise FlagInvalid on the argument's field and yield quiet NaN
// through the field's trap handler, exactly like the dfp primitives.
package dfpmath
