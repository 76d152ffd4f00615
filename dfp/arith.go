package dfp

// Add returns x + y rounded to the field's precision.
//
// Special cases follow IEEE 854: the first NaN operand wins, an infinity
// absorbs any finite operand, equal-signed infinities return that infinity
// and opposite-signed infinities are invalid and yield quiet NaN.
func (x *Dfp) Add(y *Dfp) *Dfp {
	f := x.field
	if f.radixDigits != y.field.radixDigits {
		f.RaiseFlags(FlagInvalid)
		return x.Dotrap(FlagInvalid, trapAdd, y, f.QNaN())
	}

	if x.kind != Finite || y.kind != Finite {
		switch {
		case x.IsNaN():
			return x
		case y.IsNaN():
			return y
		case x.kind == Infinite && y.kind == Finite:
			return x
		case y.kind == Infinite && x.kind == Finite:
			return y
		case x.sign == y.sign: // both infinite, same direction
			return x
		default: // ∞ + -∞
			f.RaiseFlags(FlagInvalid)
			return x.Dotrap(FlagInvalid, trapAdd, y, f.QNaN())
		}
	}

	// operate on scratch copies with the signs stripped
	a := x.clone()
	b := y.clone()
	result := newZero(f)

	asign := a.sign
	bsign := b.sign
	a.sign = 1
	b.sign = 1

	// the result carries the sign of the larger-magnitude operand
	rsign := bsign
	if compare(a, b) > 0 {
		rsign = asign
	}

	// a zero operand adopts the other exponent so alignment cannot shift
	// the non-zero operand's digits away
	n := len(a.mant)
	if b.mant[n-1] == 0 {
		b.exp = a.exp
	}
	if a.mant[n-1] == 0 {
		a.exp = b.exp
	}

	var aextra, bextra int
	if a.exp < b.exp {
		aextra = a.align(b.exp)
	} else {
		bextra = b.align(a.exp)
	}

	// subtraction happens as addition of a radix complement
	if asign != bsign {
		if asign == rsign {
			bextra = b.complement(bextra)
		} else {
			aextra = a.complement(aextra)
		}
	}

	rh := 0
	for i := 0; i < n; i++ {
		r := a.mant[i] + b.mant[i] + rh
		rh = r / Radix
		result.mant[i] = r % Radix
	}
	result.exp = a.exp
	result.sign = rsign

	// a carry-out is real only when the signs agreed; for complement
	// subtraction it is the expected wrap and must be dropped
	if rh != 0 && asign == bsign {
		lost := result.mant[0]
		result.shiftRight()
		result.mant[n-1] = rh
		if excp := result.round(lost); excp != 0 {
			result = x.Dotrap(excp, trapAdd, y, result)
		}
	}

	// normalize: strip leading zero digits, re-inserting the extra digit
	// captured during alignment at the first shift
	for i := 0; i < n; i++ {
		if result.mant[n-1] != 0 {
			break
		}
		result.shiftLeft()
		if i == 0 {
			result.mant[0] = aextra + bextra
			aextra = 0
			bextra = 0
		}
	}

	// an all-zero mantissa is a true zero: positive unless we added two
	// negative zeros
	if result.mant[n-1] == 0 {
		result.exp = 0
		if asign != bsign {
			result.sign = 1
		}
	}

	if excp := result.round(aextra + bextra); excp != 0 {
		result = x.Dotrap(excp, trapAdd, y, result)
	}
	return result
}

// Sub returns x - y.
func (x *Dfp) Sub(y *Dfp) *Dfp { return x.Add(y.Neg()) }

// Mul returns x × y rounded to the field's precision.
func (x *Dfp) Mul(y *Dfp) *Dfp {
	f := x.field
	if f.radixDigits != y.field.radixDigits {
		f.RaiseFlags(FlagInvalid)
		return x.Dotrap(FlagInvalid, trapMultiply, y, f.QNaN())
	}

	n := len(x.mant)
	if x.kind != Finite || y.kind != Finite {
		switch {
		case x.IsNaN():
			return x
		case y.IsNaN():
			return y
		case x.kind == Infinite && y.kind == Finite && !y.IsZero():
			r := x.clone()
			r.sign = x.sign * y.sign
			return r
		case y.kind == Infinite && x.kind == Finite && !x.IsZero():
			r := y.clone()
			r.sign = x.sign * y.sign
			return r
		case x.kind == Infinite && y.kind == Infinite:
			r := x.clone()
			r.sign = x.sign * y.sign
			return r
		default: // ∞ × 0
			f.RaiseFlags(FlagInvalid)
			return x.Dotrap(FlagInvalid, trapMultiply, y, f.QNaN())
		}
	}

	result := newZero(f)

	// schoolbook multiply into a double-length buffer
	product := make([]int, n*2)
	for i := 0; i < n; i++ {
		rh := 0
		for j := 0; j < n; j++ {
			r := x.mant[i]*y.mant[j] + product[i+j] + rh
			product[i+j] = r % Radix
			rh = r / Radix
		}
		product[i+n] = rh
	}

	// locate the most significant non-zero digit of the product
	md := n*2 - 1
	for i := n*2 - 1; i >= 0; i-- {
		if product[i] != 0 {
			md = i
			break
		}
	}

	for i := 0; i < n; i++ {
		result.mant[n-i-1] = product[md-i]
	}

	result.exp = x.exp + y.exp + md - 2*n + 1
	if x.sign == y.sign {
		result.sign = 1
	} else {
		result.sign = -1
	}

	if result.mant[n-1] == 0 {
		result.exp = 0
	}

	var excp Flag
	if md > n-1 {
		excp = result.round(product[md-n])
	} else {
		excp = result.round(0)
	}
	if excp != 0 {
		result = x.Dotrap(excp, trapMultiply, y, result)
	}
	return result
}

// MulInt returns x × m. Multipliers in [0, Radix) take a single-pass fast
// path; anything else falls back to full multiplication.
func (x *Dfp) MulInt(m int) *Dfp {
	if m >= 0 && m < Radix {
		return x.mulFast(m)
	}
	return x.Mul(newInt(x.field, int64(m)))
}

func (x *Dfp) mulFast(m int) *Dfp {
	if x.kind != Finite {
		if x.IsNaN() {
			return x
		}
		if m == 0 { // ∞ × 0
			x.field.RaiseFlags(FlagInvalid)
			return x.Dotrap(FlagInvalid, trapMultiply, x, x.field.QNaN())
		}
		return x.clone()
	}

	result := x.clone()
	n := len(x.mant)

	rh := 0
	for i := 0; i < n; i++ {
		r := x.mant[i]*m + rh
		rh = r / Radix
		result.mant[i] = r % Radix
	}

	lost := 0
	if rh != 0 {
		lost = result.mant[0]
		result.shiftRight()
		result.mant[n-1] = rh
	}

	if result.mant[n-1] == 0 {
		result.exp = 0
	}

	if excp := result.round(lost); excp != 0 {
		result = x.Dotrap(excp, trapMultiply, result, result)
	}
	return result
}

// Div returns x / y rounded to the field's precision via long division
// with trial-digit search.
func (x *Dfp) Div(y *Dfp) *Dfp {
	f := x.field
	if f.radixDigits != y.field.radixDigits {
		f.RaiseFlags(FlagInvalid)
		return x.Dotrap(FlagInvalid, trapDivide, y, f.QNaN())
	}

	n := len(x.mant)
	if x.kind != Finite || y.kind != Finite {
		switch {
		case x.IsNaN():
			return x
		case y.IsNaN():
			return y
		case x.kind == Infinite && y.kind == Finite:
			r := x.clone()
			r.sign = x.sign * y.sign
			return r
		case y.kind == Infinite && x.kind == Finite:
			r := newZero(f)
			r.sign = x.sign * y.sign
			return r
		default: // ∞ / ∞
			f.RaiseFlags(FlagInvalid)
			return x.Dotrap(FlagInvalid, trapDivide, y, f.QNaN())
		}
	}

	if y.mant[n-1] == 0 {
		if x.mant[n-1] == 0 {
			// 0/0 is an invalid operation, not a pole
			f.RaiseFlags(FlagInvalid)
			return x.Dotrap(FlagInvalid, trapDivide, y, f.QNaN())
		}
		f.RaiseFlags(FlagDivZero)
		r := newZero(f)
		r.sign = x.sign * y.sign
		r.kind = Infinite
		return x.Dotrap(FlagDivZero, trapDivide, y, r)
	}

	dividend := make([]int, n+1) // one extra digit
	quotient := make([]int, n+2) // one extra for overflow, one for rounding
	remainder := make([]int, n+1)

	copy(dividend, x.mant)

	// one quotient digit per pass, most significant first
	nsqd := 0 // significant quotient digits produced so far
	var trial int
	for qd := n + 1; qd >= 0; qd-- {
		// bound the digit using the leading two dividend digits against
		// the leading divisor digit
		divMsb := dividend[n]*Radix + dividend[n-1]
		min := divMsb / (y.mant[n-1] + 1)
		max := (divMsb + 1) / y.mant[n-1]

		trialgood := false
		for !trialgood {
			trial = (min + max) / 2

			// remainder = divisor × trial
			rh := 0
			for i := 0; i < n+1; i++ {
				dm := 0
				if i < n {
					dm = y.mant[i]
				}
				r := dm*trial + rh
				rh = r / Radix
				remainder[i] = r % Radix
			}

			// remainder = dividend - remainder, via radix complement;
			// a missing carry-out means the trial was too big
			rh = 1
			for i := 0; i < n+1; i++ {
				r := (Radix - 1 - remainder[i]) + dividend[i] + rh
				rh = r / Radix
				remainder[i] = r % Radix
			}

			if rh == 0 {
				max = trial - 1
				continue
			}

			// how far short the trial still is, per the same bound logic
			minadj := (remainder[n]*Radix + remainder[n-1]) / (y.mant[n-1] + 1)
			if minadj >= 2 {
				min = trial + minadj
				continue
			}

			// candidate: accept only if the remainder is below the divisor
			trialgood = false
			for i := n - 1; i >= 0; i-- {
				if y.mant[i] > remainder[i] {
					trialgood = true
				}
				if y.mant[i] < remainder[i] {
					break
				}
			}
			if remainder[n] != 0 {
				trialgood = false
			}
			if !trialgood {
				min = trial + 1
			}
		}

		quotient[qd] = trial
		if trial != 0 || nsqd != 0 {
			nsqd++
		}

		if f.mode == RoundDown && nsqd == n {
			// no rounding digit needed when truncating
			break
		}
		if nsqd > n {
			break
		}

		// shift the remainder up one digit into the dividend
		dividend[0] = 0
		for i := 0; i < n; i++ {
			dividend[i+1] = remainder[i]
		}
	}

	md := n
	for i := n + 1; i >= 0; i-- {
		if quotient[i] != 0 {
			md = i
			break
		}
	}

	result := newZero(f)
	for i := 0; i < n; i++ {
		result.mant[n-i-1] = quotient[md-i]
	}

	result.exp = x.exp - y.exp + md - n
	if x.sign == y.sign {
		result.sign = 1
	} else {
		result.sign = -1
	}

	if result.mant[n-1] == 0 {
		result.exp = 0
	}

	var excp Flag
	if md > n-1 {
		excp = result.round(quotient[md-n])
	} else {
		excp = result.round(0)
	}
	if excp != 0 {
		result = x.Dotrap(excp, trapDivide, y, result)
	}
	return result
}

// DivInt returns x / d for a small positive divisor (0 < d < Radix) using
// single-pass digit-by-digit division. A zero divisor traps DIV_ZERO and a
// divisor outside the range traps INVALID.
func (x *Dfp) DivInt(d int) *Dfp {
	f := x.field
	if x.kind != Finite {
		if x.IsNaN() {
			return x
		}
		return x.clone()
	}

	if d == 0 {
		if x.mant[len(x.mant)-1] == 0 {
			f.RaiseFlags(FlagInvalid)
			return x.Dotrap(FlagInvalid, trapDivide, f.QNaN(), f.QNaN())
		}
		f.RaiseFlags(FlagDivZero)
		r := newZero(f)
		r.sign = x.sign
		r.kind = Infinite
		return x.Dotrap(FlagDivZero, trapDivide, f.Zero(), r)
	}
	if d < 0 || d >= Radix {
		f.RaiseFlags(FlagInvalid)
		return x.Dotrap(FlagInvalid, trapDivide, f.QNaN(), f.QNaN())
	}

	result := x.clone()
	n := len(x.mant)

	rl := 0
	for i := n - 1; i >= 0; i-- {
		r := rl*Radix + result.mant[i]
		result.mant[i] = r / d
		rl = r % d
	}

	if result.mant[n-1] == 0 {
		// normalize and pull one more digit out of the remainder
		result.shiftLeft()
		r := rl * Radix
		result.mant[0] = r / d
		rl = r % d
	}

	if excp := result.round(rl * Radix / d); excp != 0 {
		result = x.Dotrap(excp, trapDivide, result, result)
	}
	return result
}

// Sqrt returns the square root of x by Newton iteration from a coarse
// exponent-halving guess.
//
// The loop stops when two successive iterates agree, when the iteration
// alternates between two values (a period-2 fixed point, which a plain
// equality check would never catch), or when the correction term has
// converged below the working precision.
func (x *Dfp) Sqrt() *Dfp {
	n := len(x.mant)
	if x.kind == Finite && x.mant[n-1] == 0 {
		return x.clone() // √±0 = ±0
	}

	if x.kind != Finite {
		switch {
		case x.kind == Infinite && x.sign == 1:
			return x.clone()
		case x.kind == QuietNaN:
			return x.clone()
		case x.kind == SignalingNaN:
			x.field.RaiseFlags(FlagInvalid)
			return x.Dotrap(FlagInvalid, trapSqrt, nil, x.clone())
		}
	}

	if x.sign == -1 {
		x.field.RaiseFlags(FlagInvalid)
		r := x.clone()
		r.kind = QuietNaN
		return x.Dotrap(FlagInvalid, trapSqrt, nil, r)
	}

	// initial guess: halve the exponent and bucket the leading digit into
	// an empirical starting fraction
	cur := x.clone()
	if cur.exp < -1 || cur.exp > 1 {
		cur.exp = x.exp / 2
	}
	switch cur.mant[n-1] / 2000 {
	case 0:
		cur.mant[n-1] = cur.mant[n-1]/2 + 1
	case 2:
		cur.mant[n-1] = 1500
	case 3:
		cur.mant[n-1] = 2200
	default:
		cur.mant[n-1] = 3000
	}

	// Newton: cur += (x/cur - cur) / 2
	px := x.field.Zero()
	ppx := x.field.Zero()
	for cur.unequal(px) {
		dx := cur.clone()
		dx.sign = -1
		dx = dx.Add(x.Div(cur))
		dx = dx.DivInt(2)

		ppx = px
		px = cur
		cur = cur.Add(dx)

		if cur.Equal(ppx) {
			// alternating between two values: either is within one ulp
			break
		}
		if dx.kind == Finite && dx.mant[n-1] == 0 {
			// correction converged to zero at working precision
			break
		}
	}
	return cur
}

// trunc strips the fractional part, applying the given secondary rounding
// to decide which neighbouring integer wins, and fires INEXACT whenever a
// non-zero digit was discarded.
func (x *Dfp) trunc(mode RoundingMode) *Dfp {
	n := len(x.mant)
	if x.IsNaN() || x.kind == Infinite {
		return x.clone()
	}
	if x.mant[n-1] == 0 {
		return x.clone() // ±0
	}

	if x.exp < 0 {
		// |x| < 1/Radix: nothing survives
		x.field.RaiseFlags(FlagInexact)
		return x.Dotrap(FlagInexact, trapTrunc, x, newZero(x.field))
	}

	if x.exp >= n {
		return x.clone() // already an integer at this precision
	}

	result := x.clone()
	changed := false
	for i := 0; i < n-result.exp; i++ {
		changed = changed || result.mant[i] != 0
		result.mant[i] = 0
	}
	if !changed {
		return result
	}

	switch mode {
	case RoundFloor:
		if result.sign == -1 {
			result = result.Add(newInt(x.field, -1))
		}
	case RoundCeil:
		if result.sign == 1 {
			result = result.Add(x.field.One())
		}
	default: // round to nearest, ties to even
		half := x.field.MustParse("0.5")
		frac := x.Sub(result)
		frac.sign = 1
		if frac.GreaterThan(half) {
			inc := newInt(x.field, 1)
			inc.sign = x.sign
			result = result.Add(inc)
		}
		// a tie bumps only when the integer's low digit is odd
		if frac.Equal(half) && result.exp > 0 && result.mant[n-result.exp]&1 != 0 {
			inc := newInt(x.field, 1)
			inc.sign = x.sign
			result = result.Add(inc)
		}
	}

	x.field.RaiseFlags(FlagInexact)
	return x.Dotrap(FlagInexact, trapTrunc, x, result)
}

// Rint rounds x to the nearest integer, ties to even.
func (x *Dfp) Rint() *Dfp { return x.trunc(RoundHalfEven) }

// Floor rounds x to the largest integer not greater than x.
func (x *Dfp) Floor() *Dfp { return x.trunc(RoundFloor) }

// Ceil rounds x to the smallest integer not less than x.
func (x *Dfp) Ceil() *Dfp { return x.trunc(RoundCeil) }

// Rem returns the IEEE remainder x - Rint(x/y)×y. A zero result carries
// the sign of x per IEEE 854.
func (x *Dfp) Rem(y *Dfp) *Dfp {
	result := x.Sub(x.Div(y).Rint().Mul(y))
	if result.kind == Finite && result.mant[len(result.mant)-1] == 0 {
		result.sign = x.sign
	}
	return result
}
