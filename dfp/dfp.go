package dfp

// Kind classifies a Dfp value.
type Kind uint8

const (
	// Finite marks an ordinary (possibly zero) value.
	Finite Kind = iota

	// Infinite marks ±∞.
	Infinite

	// SignalingNaN marks a NaN that raises FlagInvalid when touched.
	SignalingNaN

	// QuietNaN marks a NaN that propagates silently.
	QuietNaN
)

// Trap operation names reported to the TrapHandler.
const (
	trapAdd      = "add"
	trapMultiply = "multiply"
	trapDivide   = "divide"
	trapSqrt     = "sqrt"
	trapAlign    = "align"
	trapTrunc    = "trunc"
	trapCompare  = "compare"
	trapParse    = "parse"
)

// Dfp is one decimal floating-point value bound to the Field that created
// it. Values are immutable by convention: every arithmetic method returns
// a new instance, and the low-level mutation helpers below operate only on
// scratch copies that never escape the operation that allocated them.
//
// A finite value is sign × 0.mant × Radix^exp with mant stored
// least-significant digit first; when normalized and non-zero the most
// significant digit mant[len-1] is non-zero.
type Dfp struct {
	field *Field // non-owning back-reference, never nil
	mant  []int  // radix-10000 digits, least significant first
	sign  int    // +1 or -1
	exp   int
	kind  Kind
}

// newZero allocates +0 at the field's precision.
func newZero(f *Field) *Dfp {
	return &Dfp{field: f, mant: make([]int, f.radixDigits), sign: 1}
}

// newInt builds the value of x. Magnitudes beyond the mantissa capacity
// (only possible for |x| ≥ 10^16 at minimum precision) lose their least
// significant digits.
func newInt(f *Field, x int64) *Dfp {
	d := newZero(f)
	ux := uint64(x)
	if x < 0 {
		d.sign = -1
		ux = -uint64(x)
	}

	var groups []int // radix digits of |x|, least significant first
	for v := ux; v != 0; v /= Radix {
		groups = append(groups, int(v%Radix))
	}
	d.exp = len(groups)
	for i, g := range groups {
		if idx := len(d.mant) - len(groups) + i; idx >= 0 {
			d.mant[idx] = g
		}
	}
	return d
}

// clone returns a scratch copy sharing nothing with x.
func (x *Dfp) clone() *Dfp {
	m := make([]int, len(x.mant))
	copy(m, x.mant)
	return &Dfp{field: x.field, mant: m, sign: x.sign, exp: x.exp, kind: x.kind}
}

// Field returns the precision context this value belongs to.
func (x *Dfp) Field() *Field { return x.field }

// Classify reports the value's classification.
func (x *Dfp) Classify() Kind { return x.kind }

// IsNaN reports whether x is a signaling or quiet NaN.
func (x *Dfp) IsNaN() bool { return x.kind == SignalingNaN || x.kind == QuietNaN }

// IsInfinite reports whether x is ±∞.
func (x *Dfp) IsInfinite() bool { return x.kind == Infinite }

// IsZero reports whether x is ±0.
func (x *Dfp) IsZero() bool { return x.kind == Finite && x.mant[len(x.mant)-1] == 0 }

// Signbit reports whether the stored sign is negative. It is true for -0
// and -NaN as well.
func (x *Dfp) Signbit() bool { return x.sign < 0 }

// Sign returns -1, 0 or +1 for negative, zero and positive finite values;
// infinities report their sign and NaN reports 0.
func (x *Dfp) Sign() int {
	switch {
	case x.IsNaN():
		return 0
	case x.IsZero():
		return 0
	default:
		return x.sign
	}
}

// Neg returns -x. Negating a NaN only flips the stored sign bit.
func (x *Dfp) Neg() *Dfp {
	r := x.clone()
	r.sign = -r.sign
	return r
}

// Abs returns |x|.
func (x *Dfp) Abs() *Dfp {
	r := x.clone()
	r.sign = 1
	return r
}

// CopySign returns the magnitude of x with the sign of y.
func (x *Dfp) CopySign(y *Dfp) *Dfp {
	r := x.clone()
	r.sign = y.sign
	return r
}

// shiftLeft moves every digit one position toward the most significant
// end, zero-filling the vacated low digit. The exponent is decremented so
// the value is unchanged as long as the outgoing top digit was zero.
func (x *Dfp) shiftLeft() {
	for i := len(x.mant) - 1; i > 0; i-- {
		x.mant[i] = x.mant[i-1]
	}
	x.mant[0] = 0
	x.exp--
}

// shiftRight moves every digit one position toward the least significant
// end. The digit shifted out is discarded; callers needing it for rounding
// capture mant[0] first.
func (x *Dfp) shiftRight() {
	for i := 0; i < len(x.mant)-1; i++ {
		x.mant[i] = x.mant[i+1]
	}
	x.mant[len(x.mant)-1] = 0
	x.exp++
}

// align brings x to exponent e by repeated shifting and returns the last
// digit shifted out, which the caller folds into its own rounding. A shift
// distance beyond the mantissa length flushes x to zero and fires INEXACT:
// the whole value was below one unit of the target's least digit.
func (x *Dfp) align(e int) int {
	lostdigit := 0
	inexact := false

	diff := x.exp - e
	adiff := diff
	if adiff < 0 {
		adiff = -adiff
	}

	if diff == 0 {
		return 0
	}

	if adiff > len(x.mant)+1 {
		for i := range x.mant {
			x.mant[i] = 0
		}
		x.exp = e
		x.field.RaiseFlags(FlagInexact)
		x.Dotrap(FlagInexact, trapAlign, x, x)
		return 0
	}

	for i := 0; i < adiff; i++ {
		if diff < 0 {
			// Only signal inexact after losing a second digit; the first
			// lost digit is handed back to the caller for rounding.
			if lostdigit != 0 {
				inexact = true
			}
			lostdigit = x.mant[0]
			x.shiftRight()
		} else {
			x.shiftLeft()
		}
	}

	if inexact {
		x.field.RaiseFlags(FlagInexact)
		x.Dotrap(FlagInexact, trapAlign, x, x)
	}
	return lostdigit
}

// complement replaces the mantissa with its radix complement, the
// subtraction-via-addition trick used by add when operand signs differ.
// extra is the pending sub-digit below the least significant stored digit;
// the adjusted extra is returned.
func (x *Dfp) complement(extra int) int {
	extra = Radix - extra
	for i := range x.mant {
		x.mant[i] = Radix - x.mant[i] - 1
	}

	rh := extra / Radix
	extra %= Radix
	for i := range x.mant {
		r := x.mant[i] + rh
		rh = r / Radix
		x.mant[i] = r % Radix
	}
	return extra
}

// shouldIncrement is the pure rounding policy: given a lost sub-digit in
// [0, Radix), the parity of the current least significant digit and the
// sign, it decides whether the mantissa is bumped by one unit.
func shouldIncrement(mode RoundingMode, lost, lsd, sign int) bool {
	switch mode {
	case RoundDown:
		return false
	case RoundUp:
		return lost != 0
	case RoundHalfUp:
		return lost >= Radix/2
	case RoundHalfDown:
		return lost > Radix/2
	case RoundHalfEven:
		return lost > Radix/2 || (lost == Radix/2 && lsd&1 == 1)
	case RoundHalfOdd:
		return lost > Radix/2 || (lost == Radix/2 && lsd&1 == 0)
	case RoundCeil:
		return sign == 1 && lost != 0
	default: // RoundFloor
		return sign == -1 && lost != 0
	}
}

// round applies the field's rounding mode to a pending lost digit, then
// checks the exponent range. It returns the flag the caller must route
// through Dotrap, or 0. The matching field flag has already been raised.
func (x *Dfp) round(lost int) Flag {
	if shouldIncrement(x.field.mode, lost, x.mant[0], x.sign) {
		rh := 1
		for i := range x.mant {
			r := x.mant[i] + rh
			rh = r / Radix
			x.mant[i] = r % Radix
		}

		if rh != 0 {
			x.shiftRight()
			x.mant[len(x.mant)-1] = rh
		}
	}

	if x.exp < MinExp {
		x.field.RaiseFlags(FlagUnderflow)
		return FlagUnderflow
	}

	if x.exp > MaxExp {
		x.field.RaiseFlags(FlagOverflow)
		return FlagOverflow
	}

	if lost != 0 {
		x.field.RaiseFlags(FlagInexact)
		return FlagInexact
	}
	return 0
}

// Dotrap is the central exception dispatch. The flag bit has already been
// raised on the field; Dotrap computes the IEEE default substitute for the
// condition and passes it through the field's TrapHandler, returning the
// handler's choice (the default itself when no handler is installed).
//
// result is the raw computed value; on overflow and underflow its exponent
// is adjusted by a fixed bias so a handler can still read the true
// magnitude.
func (x *Dfp) Dotrap(flag Flag, op string, operand, result *Dfp) *Dfp {
	def := result

	switch flag {
	case FlagInvalid:
		def = newZero(x.field)
		def.sign = result.sign
		def.kind = QuietNaN

	case FlagDivZero:
		if x.kind == Finite && x.mant[len(x.mant)-1] != 0 {
			// finite non-zero over zero: signed infinity
			def = newZero(x.field)
			def.sign = x.sign * operand.sign
			def.kind = Infinite
		} else {
			// zero or non-finite numerators
			def = newZero(x.field)
			def.kind = QuietNaN
		}

	case FlagUnderflow:
		if result.exp+len(x.mant) < MinExp {
			def = newZero(x.field)
			def.sign = result.sign
		} else {
			def = result.clone() // gradual underflow
		}
		result.exp += errScale

	case FlagOverflow:
		result.exp -= errScale
		def = newZero(x.field)
		def.sign = result.sign
		def.kind = Infinite
	}

	if h := x.field.handler; h != nil {
		return h(flag, op, operand, def)
	}
	return def
}

// compare is the total order used by all comparison methods: signed zeros
// are equal regardless of stored sign, infinities sort beyond all finite
// values, and finite values compare by sign, then exponent, then digits
// most significant first. NaN must be filtered by the caller.
func compare(a, b *Dfp) int {
	if a.kind == Finite && b.kind == Finite &&
		a.mant[len(a.mant)-1] == 0 && b.mant[len(b.mant)-1] == 0 {
		return 0
	}

	if a.sign != b.sign {
		if a.sign == -1 {
			return -1
		}
		return 1
	}

	if a.kind == Infinite && b.kind == Finite {
		return a.sign
	}
	if a.kind == Finite && b.kind == Infinite {
		return -b.sign
	}
	if a.kind == Infinite && b.kind == Infinite {
		return 0
	}

	// exponents only order the values when neither side is zero
	if a.mant[len(a.mant)-1] != 0 && b.mant[len(b.mant)-1] != 0 {
		if a.exp < b.exp {
			return -a.sign
		}
		if a.exp > b.exp {
			return a.sign
		}
	}

	for i := len(a.mant) - 1; i >= 0; i-- {
		if a.mant[i] > b.mant[i] {
			return a.sign
		}
		if a.mant[i] < b.mant[i] {
			return -a.sign
		}
	}
	return 0
}

// Equal reports whether x and y hold the same value. Unlike LessThan and
// GreaterThan it never traps: NaN operands or mixed precisions simply
// report false. Signed zeros compare equal.
func (x *Dfp) Equal(y *Dfp) bool {
	if x.field.radixDigits != y.field.radixDigits {
		return false
	}
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	return compare(x, y) == 0
}

// unequal reports a definite ordering difference; NaN and precision
// mismatches report false (not unequal in the trichotomy sense).
func (x *Dfp) unequal(y *Dfp) bool {
	if x.field.radixDigits != y.field.radixDigits {
		return false
	}
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	return compare(x, y) != 0
}

// LessThan reports x < y. Mixed precision or NaN operands raise
// FlagInvalid, trap, and report false.
func (x *Dfp) LessThan(y *Dfp) bool {
	if x.field.radixDigits != y.field.radixDigits {
		x.field.RaiseFlags(FlagInvalid)
		x.Dotrap(FlagInvalid, trapCompare, y, x.field.QNaN())
		return false
	}
	if x.IsNaN() || y.IsNaN() {
		x.field.RaiseFlags(FlagInvalid)
		x.Dotrap(FlagInvalid, trapCompare, y, x.field.QNaN())
		return false
	}
	return compare(x, y) < 0
}

// GreaterThan reports x > y with the same trap contract as LessThan.
func (x *Dfp) GreaterThan(y *Dfp) bool {
	if x.field.radixDigits != y.field.radixDigits {
		x.field.RaiseFlags(FlagInvalid)
		x.Dotrap(FlagInvalid, trapCompare, y, x.field.QNaN())
		return false
	}
	if x.IsNaN() || y.IsNaN() {
		x.field.RaiseFlags(FlagInvalid)
		x.Dotrap(FlagInvalid, trapCompare, y, x.field.QNaN())
		return false
	}
	return compare(x, y) > 0
}

// Pow10K returns Radix^e, i.e. 10^(4e), at x's precision.
func (x *Dfp) Pow10K(e int) *Dfp {
	d := newInt(x.field, 1)
	d.exp = e + 1
	return d
}

// Log10K returns the base-10000 logarithm of x rounded toward -∞,
// valid for normalized non-zero finite values.
func (x *Dfp) Log10K() int { return x.exp - 1 }

// IntLog10 returns floor(log10(|x|)) for normalized non-zero finite x.
func (x *Dfp) IntLog10() int {
	top := x.mant[len(x.mant)-1]
	switch {
	case top > 1000:
		return x.exp*4 - 1
	case top > 100:
		return x.exp*4 - 2
	case top > 10:
		return x.exp*4 - 3
	default:
		return x.exp*4 - 4
	}
}

// Pow10 returns 10^e at x's precision.
func (x *Dfp) Pow10(e int) *Dfp {
	d := newInt(x.field, 1)
	if e >= 0 {
		d.exp = e/4 + 1
	} else {
		d.exp = (e + 1) / 4
	}
	switch ((e % 4) + 4) % 4 {
	case 0:
	case 1:
		d = d.MulInt(10)
	case 2:
		d = d.MulInt(100)
	default:
		d = d.MulInt(1000)
	}
	return d
}
