package dfpmath

import "github.com/mathx-go/mathx/dfp"

const powTrap = "pow"

// PowInt raises x to an integer power using split repeated squaring.
func PowInt(x *dfp.Dfp, n int) *dfp.Dfp {
	return splitPow(split(x), n)
}

// Pow computes x^y with the IEEE 854 special-case table: exact results for
// zeros, infinities and integer exponents, exp(y·ln x) otherwise. A
// negative base with a non-integer exponent raises FlagInvalid.
func Pow(x, y *dfp.Dfp) *dfp.Dfp {
	f := x.Field()
	if f.RadixDigits() != y.Field().RadixDigits() {
		f.RaiseFlags(dfp.FlagInvalid)
		return x.Dotrap(dfp.FlagInvalid, powTrap, y, f.QNaN())
	}

	zero := f.Zero()
	one := f.One()
	two := f.Two()
	invert := false

	// anything to the power zero is one, even NaN per 854
	if y.Equal(zero) {
		return one
	}

	if y.Equal(one) {
		if x.IsNaN() {
			f.RaiseFlags(dfp.FlagInvalid)
			return x.Dotrap(dfp.FlagInvalid, powTrap, y, x)
		}
		return x
	}

	if x.IsNaN() || y.IsNaN() {
		f.RaiseFlags(dfp.FlagInvalid)
		return x.Dotrap(dfp.FlagInvalid, powTrap, y, f.QNaN())
	}

	if x.Equal(zero) {
		if !x.Signbit() {
			// +0
			if y.GreaterThan(zero) {
				return zero
			}
			return f.Inf(false)
		}
		// -0: odd integer exponents preserve the sign
		if y.Classify() == dfp.Finite && y.Rint().Equal(y) && !y.Rem(two).Equal(zero) {
			if y.GreaterThan(zero) {
				return zero.Neg()
			}
			return f.Inf(true)
		}
		if y.GreaterThan(zero) {
			return zero
		}
		return f.Inf(false)
	}

	base := x
	if base.LessThan(zero) {
		base = base.Neg()
		invert = true
	}

	if y.Classify() == dfp.Infinite {
		switch {
		case base.GreaterThan(one):
			if y.GreaterThan(zero) {
				return f.Inf(false)
			}
			return zero
		case base.LessThan(one):
			if y.GreaterThan(zero) {
				return zero
			}
			return f.Inf(false)
		default:
			// 1^±∞ is undefined
			f.RaiseFlags(dfp.FlagInvalid)
			return x.Dotrap(dfp.FlagInvalid, powTrap, y, f.QNaN())
		}
	}

	if base.Classify() == dfp.Infinite {
		if invert {
			// -∞: odd integer exponents keep the negative sign
			if y.Rint().Equal(y) && !y.Rem(two).Equal(zero) {
				if y.GreaterThan(zero) {
					return f.Inf(true)
				}
				return zero.Neg()
			}
			if y.GreaterThan(zero) {
				return f.Inf(false)
			}
			return zero
		}
		if y.GreaterThan(zero) {
			return x
		}
		return zero
	}

	if invert && !y.Rint().Equal(y) {
		// negative base, fractional exponent
		f.RaiseFlags(dfp.FlagInvalid)
		return x.Dotrap(dfp.FlagInvalid, powTrap, y, f.QNaN())
	}

	var r *dfp.Dfp
	if y.LessThan(f.New(100000000)) && y.GreaterThan(f.New(-100000000)) {
		u := y.Rint()
		if u.Equal(y) {
			r = splitPow(split(base), u.Int())
		} else {
			r = Exp(Log(base).Mul(y))
		}
	} else {
		// |y| too large for an int: the result over/underflows anyway
		r = Exp(Log(base).Mul(y))
	}

	if invert && y.Rint().Equal(y) && !y.Rem(two).Equal(zero) {
		// negative base to an odd integer power
		r = r.Neg()
	}
	return r
}
