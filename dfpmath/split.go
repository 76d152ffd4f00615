package dfpmath

import "github.com/mathx-go/mathx/dfp"

// split cuts a into a (high, low) pair: the high part keeps the leading
// half of the mantissa digits, the low part the remainder, so hi+lo is a
// at twice the working precision.
func split(a *dfp.Dfp) [2]*dfp.Dfp {
	shift := a.Mul(a.Pow10K(a.Field().RadixDigits() / 2))
	hi := a.Add(shift).Sub(shift)
	return [2]*dfp.Dfp{hi, a.Sub(hi)}
}

// splitMult multiplies two split pairs, keeping the cross terms in the low
// part. When the high product is infinite or zero the low part is dropped:
// it can no longer contribute.
func splitMult(a, b [2]*dfp.Dfp) [2]*dfp.Dfp {
	var r [2]*dfp.Dfp
	r[1] = a[0].Field().Zero()
	r[0] = a[0].Mul(b[0])

	if r[0].Classify() == dfp.Infinite || r[0].Equal(r[1]) {
		return r
	}
	r[1] = a[0].Mul(b[1]).Add(a[1].Mul(b[0])).Add(a[1].Mul(b[1]))
	return r
}

// splitDiv divides two split pairs using the first-order correction
// (a·b0 - a0·b1) / b0(b0+b1) for the low part.
func splitDiv(a, b [2]*dfp.Dfp) [2]*dfp.Dfp {
	var r [2]*dfp.Dfp
	r[0] = a[0].Div(b[0])
	r[1] = a[1].Mul(b[0]).Sub(a[0].Mul(b[1]))
	r[1] = r[1].Div(b[0].Mul(b[0]).Add(b[0].Mul(b[1])))
	return r
}

// splitPow raises a split pair to an integer power by greedy repeated
// squaring, recombining only at the end.
func splitPow(base [2]*dfp.Dfp, a int) *dfp.Dfp {
	one := base[0].Field().One()
	if a == 0 {
		return one
	}
	invert := false
	if a < 0 {
		invert = true
		a = -a
	}

	result := [2]*dfp.Dfp{one, base[0].Field().Zero()}
	for a >= 1 {
		r := [2]*dfp.Dfp{base[0], base[1]}
		trial := 1
		for {
			prevtrial := trial
			trial *= 2
			if trial > a {
				trial = prevtrial
				break
			}
			r = splitMult(r, r)
		}
		a -= trial
		result = splitMult(result, r)
	}

	out := result[0].Add(result[1])
	if invert {
		out = one.Div(out)
	}
	return out
}
