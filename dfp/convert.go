package dfp

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse converts a decimal string to a Dfp at this field's precision.
// The syntax is an optional sign, digits with an optional decimal point,
// and an optional e/E exponent suffix; "Infinity", "Inf" and "NaN" (with
// optional sign) map to the non-finite values. Digits beyond the mantissa
// capacity are rounded under the current rounding mode (raising INEXACT).
// A malformed string is a caller bug and reported as an error, not a trap.
func (f *Field) Parse(s string) (*Dfp, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil, errors.Wrap(ErrSyntax, "empty string")
	}

	neg := false
	body := t
	if body[0] == '+' || body[0] == '-' {
		neg = body[0] == '-'
		body = body[1:]
	}
	switch body {
	case "Infinity", "Inf":
		return f.Inf(neg), nil
	case "NaN":
		return f.QNaN(), nil
	}

	// split off a scientific exponent suffix
	sciexp := 0
	mantPart := body
	if p := strings.IndexAny(body, "eE"); p >= 0 {
		mantPart = body[:p]
		expPart := body[p+1:]
		eneg := false
		if expPart != "" && (expPart[0] == '+' || expPart[0] == '-') {
			eneg = expPart[0] == '-'
			expPart = expPart[1:]
		}
		if expPart == "" {
			return nil, errors.Wrapf(ErrSyntax, "parse %q", s)
		}
		for i := 0; i < len(expPart); i++ {
			c := expPart[i]
			if c < '0' || c > '9' {
				return nil, errors.Wrapf(ErrSyntax, "parse %q", s)
			}
			if sciexp < 1<<30 { // anything this large over/underflows anyway
				sciexp = sciexp*10 + int(c-'0')
			}
		}
		if eneg {
			sciexp = -sciexp
		}
	}

	// collect the decimal digits, remembering where the point sat
	var digits []byte
	dp := -1
	for i := 0; i < len(mantPart); i++ {
		c := mantPart[i]
		switch {
		case c == '.':
			if dp >= 0 {
				return nil, errors.Wrapf(ErrSyntax, "parse %q", s)
			}
			dp = len(digits)
		case c >= '0' && c <= '9':
			digits = append(digits, c-'0')
		default:
			return nil, errors.Wrapf(ErrSyntax, "parse %q", s)
		}
	}
	if len(digits) == 0 {
		return nil, errors.Wrapf(ErrSyntax, "parse %q", s)
	}
	if dp < 0 {
		dp = len(digits)
	}

	// strip leading and trailing zeros, tracking the point position
	lead := 0
	for lead < len(digits) && digits[lead] == 0 {
		lead++
	}
	digits = digits[lead:]
	dp -= lead
	for len(digits) > 0 && digits[len(digits)-1] == 0 {
		digits = digits[:len(digits)-1]
	}

	d := newZero(f)
	if neg {
		d.sign = -1
	}
	if len(digits) == 0 {
		return d, nil // ±0
	}

	// value = 0.digits × 10^e10; pad on the left until e10 lands on a
	// radix (4-digit) boundary
	e10 := dp + sciexp
	pad := ((-e10)%4 + 4) % 4
	buf := make([]byte, pad+len(digits))
	copy(buf[pad:], digits)
	d.exp = (e10 + pad) / 4

	groupVal := func(g int) int {
		v := 0
		for k := 0; k < 4; k++ {
			dv := 0
			if idx := g*4 + k; idx < len(buf) {
				dv = int(buf[idx])
			}
			v = v*10 + dv
		}
		return v
	}

	n := len(d.mant)
	groups := (len(buf) + 3) / 4
	for g := 0; g < groups && g < n; g++ {
		d.mant[n-1-g] = groupVal(g)
	}

	// round away whatever did not fit
	if groups > n {
		lost := groupVal(n)
		sticky := false
		for idx := (n + 1) * 4; idx < len(buf); idx++ {
			if buf[idx] != 0 {
				sticky = true
				break
			}
		}
		if sticky {
			// fold the digits below the lost one into the rounding
			// decision without disturbing the tie threshold
			switch lost {
			case 0:
				lost = 1
			case Radix / 2:
				lost++
			}
		}
		if excp := d.round(lost); excp != 0 {
			d = d.Dotrap(excp, trapParse, nil, d)
		}
	}
	return d, nil
}

// MustParse is like Parse but panics on a malformed string. It simplifies
// constants in examples and tests.
func (f *Field) MustParse(s string) *Dfp {
	d, err := f.Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewFloat converts a float64 exactly: the binary mantissa is taken as an
// integer and scaled by the matching power of two, so no decimal rounding
// happens unless the field's precision is too small to hold the result.
func (f *Field) NewFloat(x float64) *Dfp {
	if math.IsNaN(x) {
		return f.QNaN()
	}
	if math.IsInf(x, 0) {
		return f.Inf(x < 0)
	}

	bits := math.Float64bits(x)
	mantBits := int64(bits & 0x000fffffffffffff)
	exponent := int((bits>>52)&0x7ff) - 1075
	if exponent == -1075 {
		// zero or subnormal
		if mantBits == 0 {
			d := newZero(f)
			if bits>>63 != 0 {
				d.sign = -1
			}
			return d
		}
		exponent++
	} else {
		mantBits |= 0x0010000000000000
	}

	// shed trailing zero bits so powers of two stay exact
	for mantBits&1 == 0 {
		mantBits >>= 1
		exponent++
	}

	d := newInt(f, mantBits).Mul(powInt(f.two, exponent))
	if bits>>63 != 0 {
		d = d.Neg()
	}
	return d
}

// powInt computes x^n by binary exponentiation; n may be negative.
func powInt(x *Dfp, n int) *Dfp {
	f := x.field
	r := f.one
	invert := n < 0
	if invert {
		n = -n
	}
	p := x
	for n > 0 {
		if n&1 == 1 {
			r = r.Mul(p)
		}
		p = p.Mul(p)
		n >>= 1
	}
	if invert {
		r = f.one.Div(r)
	}
	return r
}

// Float64 converts x to the nearest float64. Out-of-range magnitudes
// become ±Inf and NaN stays NaN; the sign of zero is preserved.
func (x *Dfp) Float64() float64 {
	switch x.kind {
	case Infinite:
		return math.Inf(x.sign)
	case SignalingNaN, QuietNaN:
		return math.NaN()
	}
	if x.IsZero() {
		if x.sign < 0 {
			return math.Copysign(0, -1)
		}
		return 0
	}
	// String always emits a parseable number; ParseFloat only errs on
	// range, already returning the correctly signed ±Inf or 0.
	v, _ := strconv.ParseFloat(x.String(), 64)
	return v
}

// Int converts x to an integer, rounding half-even and saturating at the
// 32-bit bounds (the exponent range dwarfs any machine integer).
func (x *Dfp) Int() int {
	rounded := x.Rint()
	if rounded.GreaterThan(newInt(x.field, math.MaxInt32)) {
		return math.MaxInt32
	}
	if rounded.LessThan(newInt(x.field, math.MinInt32)) {
		return math.MinInt32
	}

	n := len(rounded.mant)
	result := 0
	for i := n - 1; i >= n-rounded.exp; i-- {
		result = result*Radix + rounded.mant[i]
	}
	if rounded.sign == -1 {
		result = -result
	}
	return result
}

// String formats x in fixed notation when the exponent is small and
// scientific notation otherwise. Non-finite values print as "Infinity",
// "-Infinity" and "NaN". The output parses back to an identical value.
func (x *Dfp) String() string {
	switch x.kind {
	case Infinite:
		if x.sign < 0 {
			return "-Infinity"
		}
		return "Infinity"
	case SignalingNaN, QuietNaN:
		return "NaN"
	}
	if x.exp > len(x.mant) || x.exp < -1 {
		return x.sci()
	}
	return x.fixed()
}

// decDigits expands the mantissa into decimal digit characters, most
// significant first.
func (x *Dfp) decDigits() []byte {
	out := make([]byte, 0, len(x.mant)*4)
	for i := len(x.mant) - 1; i >= 0; i-- {
		m := x.mant[i]
		out = append(out,
			byte('0'+m/1000),
			byte('0'+m/100%10),
			byte('0'+m/10%10),
			byte('0'+m%10))
	}
	return out
}

func (x *Dfp) fixed() string {
	digits := x.decDigits()
	var b strings.Builder
	if x.sign < 0 {
		b.WriteByte('-')
	}

	if x.exp <= 0 {
		b.WriteString("0.")
		for i := 0; i > x.exp; i-- {
			b.WriteString("0000")
		}
		frac := strings.TrimRight(string(digits), "0")
		b.WriteString(frac)
		return b.String()
	}

	intpart := strings.TrimLeft(string(digits[:4*x.exp]), "0")
	if intpart == "" {
		intpart = "0"
	}
	b.WriteString(intpart)
	b.WriteByte('.')
	b.WriteString(strings.TrimRight(string(digits[4*x.exp:]), "0"))
	return b.String()
}

func (x *Dfp) sci() string {
	digits := x.decDigits()
	p := 0
	for p < len(digits) && digits[p] == '0' {
		p++
	}
	if p == len(digits) {
		// a zero mantissa can only reach here transiently, but print
		// something sane rather than index out of range
		return "0.0e0"
	}

	var b strings.Builder
	if x.sign < 0 {
		b.WriteByte('-')
	}
	b.WriteByte(digits[p])
	b.WriteByte('.')
	rest := strings.TrimRight(string(digits[p+1:]), "0")
	if rest == "" {
		rest = "0"
	}
	b.WriteString(rest)
	b.WriteByte('e')
	b.WriteString(strconv.Itoa(x.exp*4 - p - 1))
	return b.String()
}
