package dfpmath

import "github.com/mathx-go/mathx/dfp"

const logTrap = "log"

// Exp computes e^a. The argument splits into its nearest integer and a
// fraction in [-1/2, 1/2]: the integer part goes through the split power
// of e, the fraction through the Taylor kernel, keeping every step well
// inside the series' fast-convergence range.
func Exp(a *dfp.Dfp) *dfp.Dfp {
	f := a.Field()
	inta := a.Rint()
	fraca := a.Sub(inta)

	ia := inta.Int()
	if ia > 2147483646 {
		return f.Inf(false)
	}
	if ia < -2147483646 {
		return f.Zero()
	}

	einta := splitPow(f.ESplit(), ia)
	efraca := expKernel(fraca)
	return einta.Mul(efraca)
}

// expKernel sums 1 + a + a²/2! + … for |a| ≤ 1/2 until the partial sums
// reach a fixed point.
func expKernel(a *dfp.Dfp) *dfp.Dfp {
	f := a.Field()
	y := f.One()
	py := y
	x := f.One()
	fact := f.One()

	for i := 1; i < 90; i++ {
		x = x.Mul(a)
		fact = fact.DivInt(i)
		y = y.Add(x.Mul(fact))
		if y.Equal(py) {
			break
		}
		py = y
	}
	return y
}

// Log computes the natural logarithm of a. Non-positive or NaN arguments
// raise FlagInvalid; log(+∞) is +∞.
//
// Range reduction: a = x · 10000^lr / 2^p2 with x in (2/3, 4/3], so
//
//	ln a = lnKernel(x) + (p2 + 4·lr)·ln 2 + 4·lr·ln 5
//
// recombined through the split ln 2 / ln 5 constants.
func Log(a *dfp.Dfp) *dfp.Dfp {
	f := a.Field()
	zero := f.Zero()

	if a.Equal(zero) || a.LessThan(zero) || a.IsNaN() {
		f.RaiseFlags(dfp.FlagInvalid)
		return a.Dotrap(dfp.FlagInvalid, logTrap, a, f.QNaN())
	}
	if a.Classify() == dfp.Infinite {
		return a
	}

	lr := a.Log10K()
	x := a.Div(a.Pow10K(lr)) // x in [1/10000, 1) scaled to [1, 10000)

	p2 := 0
	for ix := x.Floor().Int(); ix > 2; ix >>= 1 {
		p2++
	}

	spx := split(x)
	div := PowInt(f.Two(), p2)
	spx[0] = spx[0].Div(div)
	spx[1] = spx[1].Div(div)

	upper := f.MustParse("1.33333")
	for spx[0].Add(spx[1]).GreaterThan(upper) {
		spx[0] = spx[0].DivInt(2)
		spx[1] = spx[1].DivInt(2)
		p2++
	}

	spz := logKernel(spx)

	spx[0] = f.New(int64(p2 + 4*lr))
	spx[1] = zero
	spy := splitMult(f.Ln2Split(), spx)
	spz[0] = spz[0].Add(spy[0])
	spz[1] = spz[1].Add(spy[1])

	spx[0] = f.New(int64(4 * lr))
	spx[1] = zero
	spy = splitMult(f.Ln5Split(), spx)
	spz[0] = spz[0].Add(spy[0])
	spz[1] = spz[1].Add(spy[1])

	return spz[0].Add(spz[1])
}

// logKernel evaluates ln of a split pair near one via the atanh series
// 2(t + t³/3 + t⁵/5 + …) with t = (a-1)/(a+1), computed as
// (a/4 - 1/4)/(a/4 + 1/4) to avoid cancellation in the subtraction.
func logKernel(a [2]*dfp.Dfp) [2]*dfp.Dfp {
	f := a[0].Field()

	t := a[0].DivInt(4).Add(a[1].DivInt(4))
	x := t.Add(f.MustParse("-0.25")).Div(t.Add(f.MustParse("0.25")))

	y := x
	num := x
	py := y
	den := 1
	for i := 0; i < 10000; i++ {
		num = num.Mul(x)
		num = num.Mul(x)
		den += 2
		y = y.Add(num.Div(f.New(int64(den))))
		if y.Equal(py) {
			break
		}
		py = y
	}

	return split(y.MulInt(2))
}
