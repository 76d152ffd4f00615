package dfp

import (
	"github.com/pkg/errors"
)

const (
	// Radix is the base of one mantissa digit; each digit carries four
	// decimal digits.
	Radix = 10000

	// MinExp and MaxExp bound the exponent of a finite Dfp, counted in
	// radix-10000 positions.
	MinExp = -32767
	MaxExp = 32768

	// errScale offsets the exponent of the raw result handed to trap
	// handlers on overflow/underflow so the handler can recover the true
	// magnitude of the out-of-range value.
	errScale = 32760
)

// Sentinel errors for field construction and string parsing. Arithmetic
// exceptions are not Go errors; they go through the flag/trap machinery.
var (
	// ErrInvalidDigits indicates a requested decimal precision below 1.
	ErrInvalidDigits = errors.New("dfp: decimal digits must be at least 1")

	// ErrSyntax indicates a string that does not parse as a decimal number.
	ErrSyntax = errors.New("dfp: invalid number syntax")
)

// Flag is one bit of the IEEE-854 exception bitmask accumulated on a Field.
type Flag uint8

const (
	// FlagInvalid marks invalid operations: 0/0, NaN comparisons,
	// mixed-precision operands, sqrt of a negative number.
	FlagInvalid Flag = 1 << iota

	// FlagDivZero marks division of a finite non-zero value by zero.
	FlagDivZero

	// FlagOverflow marks a result whose exponent exceeded MaxExp.
	FlagOverflow

	// FlagUnderflow marks a result whose exponent fell below MinExp.
	FlagUnderflow

	// FlagInexact marks any rounding that discarded a non-zero digit.
	FlagInexact

	flagMask = FlagInvalid | FlagDivZero | FlagOverflow | FlagUnderflow | FlagInexact
)

// RoundingMode selects the policy applied when a result does not fit the
// field's precision exactly.
type RoundingMode uint8

const (
	// RoundDown rounds toward zero (truncation).
	RoundDown RoundingMode = iota

	// RoundUp rounds away from zero whenever any digit was discarded.
	RoundUp

	// RoundHalfUp rounds to nearest, ties away from zero.
	RoundHalfUp

	// RoundHalfDown rounds to nearest, ties toward zero.
	RoundHalfDown

	// RoundHalfEven rounds to nearest, ties to the even digit (the default).
	RoundHalfEven

	// RoundHalfOdd rounds to nearest, ties to the odd digit.
	RoundHalfOdd

	// RoundCeil rounds toward positive infinity.
	RoundCeil

	// RoundFloor rounds toward negative infinity.
	RoundFloor
)

// TrapHandler is the injectable exception policy of a Field. It runs after
// the flag bit has been raised and the IEEE default substitute has been
// computed, and returns the value the operation will actually yield.
// The default policy (a nil handler) returns def unchanged.
type TrapHandler func(flag Flag, op string, operand *Dfp, def *Dfp) *Dfp

// Field is the precision-scoped context and factory for Dfp values.
//
// A Field is a long-lived context; Dfp values are short-lived and hold a
// non-owning reference back to it. The rounding mode and flag bitmask are
// plain mutable state with no internal locking: a Field is meant to be
// owned by one logical computation at a time.
type Field struct {
	radixDigits int
	mode        RoundingMode
	flags       Flag
	handler     TrapHandler

	zero *Dfp
	one  *Dfp
	two  *Dfp

	sqr2           *Dfp
	sqr2Reciprocal *Dfp
	sqr3           *Dfp
	sqr3Reciprocal *Dfp
	pi             *Dfp
	e              *Dfp
	ln2            *Dfp
	ln5            *Dfp
	ln10           *Dfp

	sqr2Split [2]*Dfp
	piSplit   [2]*Dfp
	eSplit    [2]*Dfp
	ln2Split  [2]*Dfp
	ln5Split  [2]*Dfp
}

// NewField creates the context for the requested number of decimal digits.
// The mantissa length is max(4, ceil(decimalDigits/4)) radix-10000 digits,
// so the effective precision is always at least the requested one. The
// rounding mode starts as RoundHalfEven and all flags are clear.
//
// The first construction for a given precision tier computes the
// transcendental constants at 3× the requested precision (200-digit floor)
// and memoizes their string forms process-wide; later fields reuse them.
func NewField(decimalDigits int) (*Field, error) {
	if decimalDigits < 1 {
		return nil, errors.Wrapf(ErrInvalidDigits, "NewField(%d)", decimalDigits)
	}
	return newField(decimalDigits, true), nil
}

// MustField is like NewField but panics on invalid input. It simplifies
// package-level examples and tests.
func MustField(decimalDigits int) *Field {
	f, err := NewField(decimalDigits)
	if err != nil {
		panic(err)
	}
	return f
}

// newField builds a field, optionally skipping the constant bootstrap.
// The constants-free form exists so the bootstrap can recurse into a
// higher-precision field without recursing forever.
func newField(decimalDigits int, computeConstants bool) *Field {
	f := &Field{
		radixDigits: radixDigitsFor(decimalDigits),
		mode:        RoundHalfEven,
	}
	f.zero = newInt(f, 0)
	f.one = newInt(f, 1)
	f.two = newInt(f, 2)
	if computeConstants {
		f.loadConstants(decimalDigits)
	}
	return f
}

func radixDigitsFor(decimalDigits int) int {
	rd := (decimalDigits + 3) / 4
	if rd < 4 {
		rd = 4
	}
	return rd
}

// RadixDigits returns the mantissa length, in radix-10000 digits, of every
// Dfp this field creates.
func (f *Field) RadixDigits() int { return f.radixDigits }

// RoundingMode returns the current rounding mode.
func (f *Field) RoundingMode() RoundingMode { return f.mode }

// SetRoundingMode changes the rounding mode for all subsequent operations
// on values belonging to this field.
func (f *Field) SetRoundingMode(mode RoundingMode) { f.mode = mode }

// Flags returns the accumulated IEEE exception bitmask.
func (f *Field) Flags() Flag { return f.flags }

// ClearFlags resets the exception bitmask. Flags are never cleared
// implicitly; callers wanting per-operation granularity check-then-clear.
func (f *Field) ClearFlags() { f.flags = 0 }

// SetFlags replaces the exception bitmask, masked to the defined bits.
func (f *Field) SetFlags(flags Flag) { f.flags = flags & flagMask }

// RaiseFlags ORs the given bits into the exception bitmask.
func (f *Field) RaiseFlags(flags Flag) { f.flags |= flags & flagMask }

// SetTrapHandler installs the exception policy invoked by every trap.
// A nil handler restores the default substitute-and-continue policy.
func (f *Field) SetTrapHandler(h TrapHandler) { f.handler = h }

// New returns the Dfp representing x at this field's precision.
func (f *Field) New(x int64) *Dfp { return newInt(f, x) }

// Inf returns positive or negative infinity.
func (f *Field) Inf(negative bool) *Dfp {
	d := newZero(f)
	d.kind = Infinite
	if negative {
		d.sign = -1
	}
	return d
}

// QNaN returns a quiet NaN.
func (f *Field) QNaN() *Dfp {
	d := newZero(f)
	d.kind = QuietNaN
	return d
}

// SNaN returns a signaling NaN.
func (f *Field) SNaN() *Dfp {
	d := newZero(f)
	d.kind = SignalingNaN
	return d
}

// Zero returns the cached +0 of this field.
func (f *Field) Zero() *Dfp { return f.zero }

// One returns the cached 1 of this field.
func (f *Field) One() *Dfp { return f.one }

// Two returns the cached 2 of this field.
func (f *Field) Two() *Dfp { return f.two }

// Sqr2 returns √2 at this field's precision.
func (f *Field) Sqr2() *Dfp { return f.sqr2 }

// Sqr2Reciprocal returns 1/√2 at this field's precision.
func (f *Field) Sqr2Reciprocal() *Dfp { return f.sqr2Reciprocal }

// Sqr3 returns √3 at this field's precision.
func (f *Field) Sqr3() *Dfp { return f.sqr3 }

// Sqr3Reciprocal returns 1/√3 at this field's precision.
func (f *Field) Sqr3Reciprocal() *Dfp { return f.sqr3Reciprocal }

// Pi returns π at this field's precision.
func (f *Field) Pi() *Dfp { return f.pi }

// E returns Euler's number at this field's precision.
func (f *Field) E() *Dfp { return f.e }

// Ln2 returns ln 2 at this field's precision.
func (f *Field) Ln2() *Dfp { return f.ln2 }

// Ln5 returns ln 5 at this field's precision.
func (f *Field) Ln5() *Dfp { return f.ln5 }

// Ln10 returns ln 10 at this field's precision.
func (f *Field) Ln10() *Dfp { return f.ln10 }

// Sqr2Split returns √2 pre-split into a (high, low) pair whose exact sum is
// √2 to twice the working precision. The split constants feed the
// extended-precision kernels in dfpmath.
func (f *Field) Sqr2Split() [2]*Dfp { return f.sqr2Split }

// PiSplit returns the (high, low) pair for π.
func (f *Field) PiSplit() [2]*Dfp { return f.piSplit }

// ESplit returns the (high, low) pair for e.
func (f *Field) ESplit() [2]*Dfp { return f.eSplit }

// Ln2Split returns the (high, low) pair for ln 2.
func (f *Field) Ln2Split() [2]*Dfp { return f.ln2Split }

// Ln5Split returns the (high, low) pair for ln 5.
func (f *Field) Ln5Split() [2]*Dfp { return f.ln5Split }
