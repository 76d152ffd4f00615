package dfpmath

import "github.com/mathx-go/mathx/dfp"

// Sin computes the sine of a (radians) after reducing the argument to
// [0, π/2] through the periodicity and sin(π-x) identities, then folding
// into the fast-convergence range [0, π/4] via the cosine kernel.
func Sin(a *dfp.Dfp) *dfp.Dfp {
	f := a.Field()
	pi := f.Pi()
	zero := f.Zero()
	neg := false

	x := a.Rem(pi.MulInt(2))
	if x.LessThan(zero) {
		x = x.Neg()
		neg = true
	}
	if x.GreaterThan(pi.DivInt(2)) {
		x = pi.Sub(x)
	}

	var y *dfp.Dfp
	if x.LessThan(pi.DivInt(4)) {
		y = sinKernel(split(x))
	} else {
		// sin(x) = cos(π/2 - x)
		piSplit := f.PiSplit()
		c := [2]*dfp.Dfp{piSplit[0].DivInt(2).Sub(x), piSplit[1].DivInt(2)}
		y = cosKernel(c)
	}

	if neg {
		y = y.Neg()
	}
	return y
}

// Cos computes the cosine of a (radians) with the reduction mirrored from
// Sin: cos is even, and cos(x) = -cos(π-x) folds the upper quadrant.
func Cos(a *dfp.Dfp) *dfp.Dfp {
	f := a.Field()
	pi := f.Pi()
	zero := f.Zero()
	neg := false

	x := a.Rem(pi.MulInt(2))
	if x.LessThan(zero) {
		x = x.Neg()
	}
	if x.GreaterThan(pi.DivInt(2)) {
		x = pi.Sub(x)
		neg = true
	}

	var y *dfp.Dfp
	if x.LessThan(pi.DivInt(4)) {
		c := [2]*dfp.Dfp{x, zero}
		y = cosKernel(c)
	} else {
		// cos(x) = sin(π/2 - x)
		piSplit := f.PiSplit()
		c := [2]*dfp.Dfp{piSplit[0].DivInt(2).Sub(x), piSplit[1].DivInt(2)}
		y = sinKernel(c)
	}

	if neg {
		y = y.Neg()
	}
	return y
}

// Tan computes sin/cos; the pole behavior falls out of the division.
func Tan(a *dfp.Dfp) *dfp.Dfp {
	return Sin(a).Div(Cos(a))
}

// sinKernel sums c - c³/3! + c⁵/5! - … on a split argument in [0, π/4].
func sinKernel(a [2]*dfp.Dfp) *dfp.Dfp {
	c := a[0].Add(a[1])
	y := c
	c = c.Mul(c)
	x := y
	fact := a[0].Field().One()
	py := y

	for i := 3; i < 90; i += 2 {
		x = x.Mul(c)
		x = x.Neg()
		fact = fact.DivInt((i - 1) * i)
		y = y.Add(x.Mul(fact))
		if y.Equal(py) {
			break
		}
		py = y
	}
	return y
}

// cosKernel sums 1 - c²/2! + c⁴/4! - … on a split argument in [0, π/4].
func cosKernel(a [2]*dfp.Dfp) *dfp.Dfp {
	f := a[0].Field()
	one := f.One()
	x := one
	y := one
	c := a[0].Add(a[1])
	c = c.Mul(c)
	fact := one
	py := y

	for i := 2; i < 90; i += 2 {
		x = x.Mul(c)
		x = x.Neg()
		fact = fact.DivInt((i - 1) * i)
		y = y.Add(x.Mul(fact))
		if y.Equal(py) {
			break
		}
		py = y
	}
	return y
}

// Atan computes the arc tangent of a. Arguments above one reduce through
// atan(1/x) = π/2 - atan(x); arguments above tan(π/8) = √2 - 1 reduce by
// the tangent-subtraction identity against tan(π/8), keeping the series
// argument small enough to converge in a handful of terms.
func Atan(a *dfp.Dfp) *dfp.Dfp {
	f := a.Field()
	zero := f.Zero()
	one := f.One()
	sqr2Split := f.Sqr2Split()
	piSplit := f.PiSplit()
	recp := false
	neg := false
	sub := false

	ty := sqr2Split[0].Sub(one).Add(sqr2Split[1]) // tan(π/8)
	x := a

	if x.LessThan(zero) {
		neg = true
		x = x.Neg()
	}
	if x.GreaterThan(one) {
		recp = true
		x = one.Div(x)
	}
	if x.GreaterThan(ty) {
		sub = true
		sty := [2]*dfp.Dfp{sqr2Split[0].Sub(one), sqr2Split[1]}

		xs := split(x)
		ds := splitMult(xs, sty)
		ds[0] = ds[0].Add(one)

		xs[0] = xs[0].Sub(sty[0])
		xs[1] = xs[1].Sub(sty[1])

		xs = splitDiv(xs, ds)
		x = xs[0].Add(xs[1])
	}

	y := atanKernel(x)

	if sub {
		// atan(x) = π/8 + atan((x - tan π/8)/(1 + x·tan π/8))
		y = y.Add(piSplit[0].DivInt(8)).Add(piSplit[1].DivInt(8))
	}
	if recp {
		y = piSplit[0].DivInt(2).Sub(y).Add(piSplit[1].DivInt(2))
	}
	if neg {
		y = y.Neg()
	}
	return y
}

// atanKernel sums a - a³/3 + a⁵/5 - … for |a| ≤ tan(π/8).
func atanKernel(a *dfp.Dfp) *dfp.Dfp {
	y := a
	x := a
	py := y

	// the divisor stays a fast-path integer below Radix
	for i := 0; 2*i+3 < dfp.Radix; i++ {
		x = x.Mul(a)
		x = x.Mul(a)
		x = x.Neg()
		y = y.Add(x.DivInt(2*i + 3))
		if y.Equal(py) {
			break
		}
		py = y
	}
	return y
}

// Asin computes the arc sine through atan(a/√(1-a²)); |a| > 1 surfaces as
// the invalid sqrt of a negative number.
func Asin(a *dfp.Dfp) *dfp.Dfp {
	one := a.Field().One()
	return Atan(a.Div(one.Sub(a.Mul(a)).Sqrt()))
}

// Acos computes the arc cosine through atan(√(1-a²)/a), mirroring
// negative arguments across π/2.
func Acos(a *dfp.Dfp) *dfp.Dfp {
	f := a.Field()
	negative := a.LessThan(f.Zero())

	abs := a.CopySign(f.One())
	result := Atan(f.One().Sub(abs.Mul(abs)).Sqrt().Div(abs))
	if negative {
		result = f.Pi().Sub(result)
	}
	return result
}
