package dfp

import "sync"

// constantCache memoizes the high-precision decimal-string forms of the
// transcendental constants. It is deliberately process-wide, shared by all
// Field instances: the strings are expensive to compute once and cheap to
// re-parse at any lower precision. The mutex guards first-time computation
// so concurrent field construction never observes torn strings.
var constantCache struct {
	sync.Mutex
	digits         int // decimal digits the cached strings are good for
	sqr2           string
	sqr2Reciprocal string
	sqr3           string
	sqr3Reciprocal string
	pi             string
	e              string
	ln2            string
	ln5            string
	ln10           string
}

// ResetConstantCache drops the memoized constant strings, forcing the next
// field construction to recompute them from scratch. It exists for tests
// and for callers that want to bound memory after a one-off ultra-high
// precision computation.
func ResetConstantCache() {
	constantCache.Lock()
	defer constantCache.Unlock()
	constantCache.digits = 0
	constantCache.sqr2 = ""
	constantCache.sqr2Reciprocal = ""
	constantCache.sqr3 = ""
	constantCache.sqr3Reciprocal = ""
	constantCache.pi = ""
	constantCache.e = ""
	constantCache.ln2 = ""
	constantCache.ln5 = ""
	constantCache.ln10 = ""
}

// loadConstants populates the field's constant set, computing the shared
// string forms first if the cache does not yet cover this precision tier.
//
// The strings are computed at several times the requested precision (with
// a 200-digit floor) so that re-rounding them at the field's precision
// cannot land on a double-rounding boundary (the table-maker's dilemma).
func (f *Field) loadConstants(decimalDigits int) {
	high := 200
	if decimalDigits >= 67 {
		high = 3 * decimalDigits
	}

	constantCache.Lock()
	defer constantCache.Unlock()
	if constantCache.digits < high {
		computeStringConstants(high)
	}

	f.sqr2 = f.MustParse(constantCache.sqr2)
	f.sqr2Split = f.split(constantCache.sqr2)
	f.sqr2Reciprocal = f.MustParse(constantCache.sqr2Reciprocal)
	f.sqr3 = f.MustParse(constantCache.sqr3)
	f.sqr3Reciprocal = f.MustParse(constantCache.sqr3Reciprocal)
	f.pi = f.MustParse(constantCache.pi)
	f.piSplit = f.split(constantCache.pi)
	f.e = f.MustParse(constantCache.e)
	f.eSplit = f.split(constantCache.e)
	f.ln2 = f.MustParse(constantCache.ln2)
	f.ln2Split = f.split(constantCache.ln2)
	f.ln5 = f.MustParse(constantCache.ln5)
	f.ln5Split = f.split(constantCache.ln5)
	f.ln10 = f.MustParse(constantCache.ln10)

	// rounding the high-precision strings down to the field's precision
	// raises INEXACT on f; a freshly constructed field must start clean
	f.flags = 0
}

// computeStringConstants fills the cache at the given precision using an
// internal constants-free field (which breaks the bootstrap recursion).
// The caller holds the cache lock.
func computeStringConstants(highPrecisionDecimalDigits int) {
	hp := newField(highPrecisionDecimalDigits, false)
	one := newInt(hp, 1)
	two := newInt(hp, 2)
	three := newInt(hp, 3)

	sqr2 := two.Sqrt()
	constantCache.sqr2 = sqr2.String()
	constantCache.sqr2Reciprocal = one.Div(sqr2).String()

	sqr3 := three.Sqrt()
	constantCache.sqr3 = sqr3.String()
	constantCache.sqr3Reciprocal = one.Div(sqr3).String()

	constantCache.pi = computePi(one, two, three).String()
	constantCache.e = computeExp(one, one).String()
	constantCache.ln2 = computeLn(two, one, two).String()
	constantCache.ln5 = computeLn(newInt(hp, 5), one, two).String()
	constantCache.ln10 = computeLn(newInt(hp, 10), one, two).String()

	constantCache.digits = highPrecisionDecimalDigits
}

// computePi runs the Borwein quartic iteration. Each pass roughly
// quadruples the number of correct digits: five passes cover ~160 digits,
// eight cover ~10000, and the 20-pass cap is beyond 10^11 digits.
func computePi(one, two, three *Dfp) *Dfp {
	sqrt2 := two.Sqrt()
	yk := sqrt2.Sub(one)
	four := two.Add(two)
	two2kp3 := two
	ak := two.Mul(three.Sub(two.Mul(sqrt2)))

	for i := 1; i < 20; i++ {
		ykM1 := yk

		y2 := yk.Mul(yk)
		oneMinusY4 := one.Sub(y2.Mul(y2))
		s := oneMinusY4.Sqrt().Sqrt()
		yk = one.Sub(s).Div(one.Add(s))

		two2kp3 = two2kp3.Mul(four)

		p := one.Add(yk)
		p2 := p.Mul(p)
		ak = ak.Mul(p2.Mul(p2)).
			Sub(two2kp3.Mul(yk).Mul(one.Add(yk).Add(yk.Mul(yk))))

		if yk.Equal(ykM1) {
			break
		}
	}
	return one.Div(ak)
}

// computeExp sums the Taylor series for e^a until two successive partial
// sums agree.
func computeExp(a, one *Dfp) *Dfp {
	y := one.clone()
	py := one.clone()
	f := one.clone()
	fi := one.clone()
	x := one.clone()

	for i := 0; i < 10000; i++ {
		x = x.Mul(a)
		y = y.Add(x.Div(f))
		fi = fi.Add(one)
		f = f.Mul(fi)
		if y.Equal(py) {
			break
		}
		py = y.clone()
	}
	return y
}

// computeLn evaluates ln(a) through the atanh-style series
//
//	ln((1+x)/(1-x)) = 2 (x + x³/3 + x⁵/5 + …),  x = (a-1)/(a+1)
//
// summing until a fixed point or the 10000-term cap.
func computeLn(a, one, two *Dfp) *Dfp {
	den := 1
	x := a.Add(newInt(a.field, -1)).Div(a.Add(one))

	y := x.clone()
	num := x.clone()
	py := y.clone()
	for i := 0; i < 10000; i++ {
		num = num.Mul(x)
		num = num.Mul(x)
		den += 2
		t := num.Div(newInt(a.field, int64(den)))
		y = y.Add(t)
		if y.Equal(py) {
			break
		}
		py = y.clone()
	}
	return y.Mul(two)
}

// split cuts a high-precision constant string into a (high, low) pair at
// this field's precision: the high part holds the leading half of the
// mantissa digits exactly, the low part the remainder, so hi+lo carries
// the constant to twice the working precision.
func (f *Field) split(a string) [2]*Dfp {
	leading := true
	sig := 0
	sp := len(a)
	for i := 0; i < len(a); i++ {
		c := a[i]
		if c >= '1' && c <= '9' {
			leading = false
		}
		if c == '.' {
			// snap to a radix-digit boundary at the point
			sig += (400 - sig) % 4
			leading = false
		}
		if sig == (f.radixDigits/2)*4 {
			sp = i
			break
		}
		if c >= '0' && c <= '9' && !leading {
			sig++
		}
	}
	hi := f.MustParse(a[:sp])

	// the low part is parsed from the string with the high digits zeroed,
	// not computed as a field-precision subtraction: parsing keeps tail
	// digits far below one ulp of the sum
	buf := []byte(a)
	for i := 0; i < sp && i < len(buf); i++ {
		if buf[i] >= '0' && buf[i] <= '9' {
			buf[i] = '0'
		}
	}
	lo := f.MustParse(string(buf))
	return [2]*Dfp{hi, lo}
}
