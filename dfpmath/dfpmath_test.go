// Package dfpmath_test checks the transcendental functions against known
// values and the usual functional identities, at a precision where every
// comparison has headroom over the kernel roundoff.
package dfpmath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mathx-go/mathx/dfp"
	"github.com/mathx-go/mathx/dfpmath"
)

// approx asserts |got - want| < eps, printing the actual values on
// failure.
func approx(t *testing.T, got, want *dfp.Dfp, eps string) {
	t.Helper()
	diff := got.Sub(want).Abs()
	bound := got.Field().MustParse(eps)
	require.True(t, diff.LessThan(bound), "got %s, want %s (diff %s)", got, want, diff)
}

func TestPowInt_ExactIntegerPowers(t *testing.T) {
	f := dfp.MustField(20)

	require.True(t, dfpmath.PowInt(f.New(2), 10).Equal(f.New(1024)))
	require.True(t, dfpmath.PowInt(f.New(3), 4).Equal(f.New(81)))
	require.True(t, dfpmath.PowInt(f.New(7), 0).Equal(f.One()))
	require.True(t, dfpmath.PowInt(f.New(10), 6).Equal(f.New(1000000)))

	// negative exponents invert
	approx(t, dfpmath.PowInt(f.New(2), -2), f.MustParse("0.25"), "1e-18")
}

func TestPow_IntegerExponents(t *testing.T) {
	f := dfp.MustField(20)

	require.True(t, dfpmath.Pow(f.New(2), f.New(10)).Equal(f.New(1024)))
	require.True(t, dfpmath.Pow(f.New(-2), f.New(3)).Equal(f.New(-8)))
	require.True(t, dfpmath.Pow(f.New(-2), f.New(2)).Equal(f.New(4)))
}

func TestPow_FractionalExponents(t *testing.T) {
	f := dfp.MustField(20)

	approx(t, dfpmath.Pow(f.New(4), f.MustParse("0.5")), f.Two(), "1e-15")
	approx(t, dfpmath.Pow(f.New(27), f.One().DivInt(3)), f.New(3), "1e-15")
}

func TestPow_SpecialCases(t *testing.T) {
	f := dfp.MustField(20)
	zero := f.Zero()
	one := f.One()
	inf := f.Inf(false)

	// y = 0: always one, even for NaN bases
	require.True(t, dfpmath.Pow(f.QNaN(), zero).Equal(one))
	require.True(t, dfpmath.Pow(inf, zero).Equal(one))

	// y = 1 returns the base untouched
	x := f.MustParse("123.456")
	require.True(t, dfpmath.Pow(x, one).Equal(x))

	// zero bases
	require.True(t, dfpmath.Pow(zero, f.New(3)).IsZero())
	require.True(t, dfpmath.Pow(zero, f.New(-1)).IsInfinite())

	// -0 to an odd positive integer keeps the sign
	nzero := zero.Neg()
	r := dfpmath.Pow(nzero, f.New(3))
	require.True(t, r.IsZero())
	require.True(t, r.Signbit())

	// infinite exponents split on |base| vs one
	require.True(t, dfpmath.Pow(f.New(2), inf).IsInfinite())
	require.True(t, dfpmath.Pow(f.New(2), f.Inf(true)).IsZero())
	require.True(t, dfpmath.Pow(f.MustParse("0.5"), inf).IsZero())
	require.True(t, dfpmath.Pow(f.MustParse("0.5"), f.Inf(true)).IsInfinite())

	// 1^∞ is invalid
	f.ClearFlags()
	require.True(t, dfpmath.Pow(one, inf).IsNaN())
	require.NotZero(t, f.Flags()&dfp.FlagInvalid)

	// infinite bases follow the exponent's sign
	require.True(t, dfpmath.Pow(inf, f.New(2)).IsInfinite())
	require.True(t, dfpmath.Pow(inf, f.New(-2)).IsZero())
	require.True(t, dfpmath.Pow(f.Inf(true), f.New(3)).Signbit())

	// negative base with a fractional exponent is invalid
	f.ClearFlags()
	require.True(t, dfpmath.Pow(f.New(-2), f.MustParse("0.5")).IsNaN())
	require.NotZero(t, f.Flags()&dfp.FlagInvalid)
}

func TestExp_KnownValues(t *testing.T) {
	f := dfp.MustField(20)

	approx(t, dfpmath.Exp(f.One()), f.E(), "1e-16")
	approx(t, dfpmath.Exp(f.Zero()), f.One(), "1e-18")
	approx(t, dfpmath.Exp(f.Two()), f.E().Mul(f.E()), "1e-15")
	approx(t, dfpmath.Exp(f.One().Neg()), f.One().Div(f.E()), "1e-16")

	// saturation far outside the climbable range
	require.True(t, dfpmath.Exp(f.MustParse("1e30")).IsInfinite())
	require.True(t, dfpmath.Exp(f.MustParse("-1e30")).IsZero())
}

func TestLog_KnownValues(t *testing.T) {
	f := dfp.MustField(20)

	approx(t, dfpmath.Log(f.E()), f.One(), "1e-16")
	approx(t, dfpmath.Log(f.One()), f.Zero(), "1e-18")
	approx(t, dfpmath.Log(f.Two()), f.Ln2(), "1e-16")
	approx(t, dfpmath.Log(f.New(10)), f.Ln10(), "1e-15")
	approx(t, dfpmath.Log(f.New(1000000)), f.Ln10().MulInt(6), "1e-14")
}

func TestLog_InvalidDomain(t *testing.T) {
	f := dfp.MustField(20)

	require.True(t, dfpmath.Log(f.Zero()).IsNaN())
	require.NotZero(t, f.Flags()&dfp.FlagInvalid)

	f.ClearFlags()
	require.True(t, dfpmath.Log(f.New(-3)).IsNaN())
	require.NotZero(t, f.Flags()&dfp.FlagInvalid)

	f.ClearFlags()
	require.True(t, dfpmath.Log(f.Inf(false)).IsInfinite())
	require.Zero(t, f.Flags()&dfp.FlagInvalid)
}

func TestExpLog_RoundTrip(t *testing.T) {
	f := dfp.MustField(20)

	for _, s := range []string{"0.5", "1", "2", "10", "123.456", "0.001"} {
		x := f.MustParse(s)
		approx(t, dfpmath.Exp(dfpmath.Log(x)), x, "1e-13")
	}
}

func TestTrig_KnownValues(t *testing.T) {
	f := dfp.MustField(20)
	pi := f.Pi()

	approx(t, dfpmath.Sin(f.Zero()), f.Zero(), "1e-18")
	approx(t, dfpmath.Sin(pi.DivInt(6)), f.MustParse("0.5"), "1e-15")
	approx(t, dfpmath.Sin(pi.DivInt(2)), f.One(), "1e-15")
	approx(t, dfpmath.Sin(pi), f.Zero(), "1e-15")

	approx(t, dfpmath.Cos(f.Zero()), f.One(), "1e-18")
	approx(t, dfpmath.Cos(pi.DivInt(3)), f.MustParse("0.5"), "1e-15")
	approx(t, dfpmath.Cos(pi), f.One().Neg(), "1e-15")

	approx(t, dfpmath.Tan(pi.DivInt(4)), f.One(), "1e-15")

	// odd symmetry
	x := f.MustParse("0.7")
	approx(t, dfpmath.Sin(x.Neg()), dfpmath.Sin(x).Neg(), "1e-17")
}

func TestTrig_PythagoreanIdentity(t *testing.T) {
	f := dfp.MustField(20)

	for _, s := range []string{"0.1", "0.5", "1", "2", "3", "-1.2"} {
		x := f.MustParse(s)
		s2 := dfpmath.Sin(x)
		c2 := dfpmath.Cos(x)
		approx(t, s2.Mul(s2).Add(c2.Mul(c2)), f.One(), "1e-15")
	}
}

func TestInverseTrig_KnownValues(t *testing.T) {
	f := dfp.MustField(20)
	pi := f.Pi()

	approx(t, dfpmath.Atan(f.One()), pi.DivInt(4), "1e-15")
	approx(t, dfpmath.Atan(f.Zero()), f.Zero(), "1e-18")
	approx(t, dfpmath.Atan(f.One().Neg()), pi.DivInt(4).Neg(), "1e-15")

	approx(t, dfpmath.Asin(f.MustParse("0.5")), pi.DivInt(6), "1e-15")
	approx(t, dfpmath.Acos(f.MustParse("0.5")), pi.DivInt(3), "1e-15")
	approx(t, dfpmath.Acos(f.MustParse("-0.5")), pi.MulInt(2).DivInt(3), "1e-15")
}

func TestInverseTrig_RoundTrip(t *testing.T) {
	f := dfp.MustField(20)

	for _, s := range []string{"0.1", "0.5", "0.9", "-0.3"} {
		x := f.MustParse(s)
		approx(t, dfpmath.Sin(dfpmath.Asin(x)), x, "1e-14")
	}
	for _, s := range []string{"0.2", "1", "5", "-3"} {
		x := f.MustParse(s)
		approx(t, dfpmath.Tan(dfpmath.Atan(x)), x, "1e-13")
	}
}
