// Package dfp implements arbitrary-precision decimal floating-point
// arithmetic with IEEE-854-style rounding modes, exception flags and traps.
//
// A Field is the precision context: it fixes the mantissa length (in
// radix-10000 digits, each worth four decimal digits), owns the current
// RoundingMode, accumulates the IEEE exception flags, and caches the
// transcendental constants (π, e, √2, √3, ln 2, ln 5, ln 10) at its own
// precision. A Dfp is one immutable value bound to the Field that created
// it: sign, radix-10000 mantissa, exponent, and a classification among
// finite, infinite, signaling NaN and quiet NaN.
//
// Representation:
//
//	value = sign × 0.m[n-1]m[n-2]…m[0] × 10000^exp
//
// where m is stored least-significant digit first and a normalized non-zero
// value keeps m[n-1] ≠ 0. The exponent of a finite value stays within
// [MinExp, MaxExp]; results beyond those bounds are routed through the
// overflow/underflow traps.
//
// Exceptional conditions never panic and never return Go errors. Each
// fallible operation raises the matching Flag bit on the Field (flags
// accumulate until ClearFlags) and substitutes an IEEE default result —
// quiet NaN for invalid operations, signed infinity for overflow and
// division by zero, a gradual-underflow value or signed zero for underflow.
// Install a TrapHandler with SetTrapHandler to replace that policy, e.g. to
// panic on any trap. Only caller bugs — a malformed numeric string, a
// nonsensical precision — are reported as ordinary Go errors at
// construction time.
//
// Mixing values from fields of different precision is a detected error: the
// operation raises FlagInvalid and yields quiet NaN, never a silently
// mis-rounded answer.
//
// Determinism: given the same operand digits, rounding mode and precision,
// every operation produces bit-identical digit output. The constant
// bootstrap relies on this to detect fixed points of its iterations.
//
// Errors:
//
//	ErrInvalidDigits - requested decimal precision is below 1.
//	ErrSyntax        - string does not parse as a decimal number.
package dfp
