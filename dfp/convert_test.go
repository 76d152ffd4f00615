package dfp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mathx-go/mathx/dfp"
)

func TestParse_Basics(t *testing.T) {
	f := dfp.MustField(16)

	cases := []struct {
		in   string
		want string
	}{
		{"0", "0."},
		{"-0", "-0."},
		{"1", "1."},
		{"-17", "-17."},
		{"3.75", "3.75"},
		{"0.125", "0.125"},
		{"  42  ", "42."},
		{"+9", "9."},
		{"1e3", "1000."},
		{"2.5e-3", "0.0025"},
		{"1E2", "100."},
		{"0.0000001", "0.0000001"},
		{"00012.3400", "12.34"},
	}
	for _, tc := range cases {
		got, err := f.Parse(tc.in)
		require.NoError(t, err, "Parse(%q)", tc.in)
		require.Equal(t, tc.want, got.String(), "Parse(%q)", tc.in)
	}
}

func TestParse_Specials(t *testing.T) {
	f := dfp.MustField(16)

	inf, err := f.Parse("Infinity")
	require.NoError(t, err)
	require.True(t, inf.IsInfinite())
	require.False(t, inf.Signbit())

	ninf, err := f.Parse("-Inf")
	require.NoError(t, err)
	require.True(t, ninf.IsInfinite())
	require.True(t, ninf.Signbit())

	nan, err := f.Parse("NaN")
	require.NoError(t, err)
	require.True(t, nan.IsNaN())
}

func TestParse_Syntax(t *testing.T) {
	f := dfp.MustField(16)

	for _, in := range []string{"", "  ", "abc", "1.2.3", "1e", "1e+", "--5", "1x3", "e5", "."} {
		_, err := f.Parse(in)
		require.ErrorIs(t, err, dfp.ErrSyntax, "Parse(%q)", in)
	}
}

func TestParse_RoundsExcessDigits(t *testing.T) {
	f := dfp.MustField(16)

	got := f.MustParse("0.12345678901234567890")
	require.Equal(t, "0.1234567890123457", got.String())
	require.NotZero(t, f.Flags()&dfp.FlagInexact)
}

func TestMustParse_PanicsOnSyntax(t *testing.T) {
	f := dfp.MustField(16)
	require.Panics(t, func() { f.MustParse("not a number") })
}

func TestString_RoundTrips(t *testing.T) {
	f := dfp.MustField(16)

	for _, in := range []string{
		"0.", "-0.", "1.", "-1.", "3.75", "0.0001", "123456789.",
		"1.234567890123456e19", "1e-40", "-2.5e100", "Infinity", "-Infinity", "NaN",
	} {
		x := f.MustParse(in)
		back := f.MustParse(x.String())
		if x.IsNaN() {
			require.True(t, back.IsNaN())
			continue
		}
		require.True(t, x.Equal(back), "round trip of %q via %q", in, x.String())
		require.Equal(t, x.Signbit(), back.Signbit())
	}
}

func TestString_SwitchesToScientific(t *testing.T) {
	f := dfp.MustField(16)

	require.Equal(t, "1000000000000000.", f.MustParse("1e15").String())
	require.Equal(t, "1.0e17", f.MustParse("1e17").String())
	require.Equal(t, "1.0e20", f.MustParse("1e20").String())
	require.Equal(t, "0.00001", f.MustParse("1e-5").String())
	require.Equal(t, "1.0e-9", f.MustParse("1e-9").String())
}

func TestNewFloat_ExactValues(t *testing.T) {
	f := dfp.MustField(30)

	require.True(t, f.NewFloat(0.5).Equal(f.MustParse("0.5")))
	require.True(t, f.NewFloat(-2).Equal(f.New(-2)))
	require.True(t, f.NewFloat(1.25e3).Equal(f.New(1250)))

	// 0.1 is not a binary fraction; the conversion must expose the real
	// stored value, not the decimal shorthand
	tenth := f.NewFloat(0.1)
	require.False(t, tenth.Equal(f.MustParse("0.1")))
	diff := tenth.Sub(f.MustParse("0.1")).Abs()
	require.True(t, diff.LessThan(f.MustParse("1e-16")))
}

func TestNewFloat_Specials(t *testing.T) {
	f := dfp.MustField(16)

	require.True(t, f.NewFloat(math.Inf(1)).IsInfinite())
	require.True(t, f.NewFloat(math.Inf(-1)).Signbit())
	require.True(t, f.NewFloat(math.NaN()).IsNaN())

	z := f.NewFloat(math.Copysign(0, -1))
	require.True(t, z.IsZero())
	require.True(t, z.Signbit())

	// smallest subnormal float64 survives the conversion
	sub := f.NewFloat(math.SmallestNonzeroFloat64)
	require.False(t, sub.IsZero())
}

func TestFloat64_RoundTrips(t *testing.T) {
	f := dfp.MustField(20)

	for _, v := range []float64{0, 1, -1, 0.5, 3.75, 1e10, -2.5e-7, 12345.6789} {
		got := f.NewFloat(v).Float64()
		require.Equal(t, v, got, "float64 round trip of %g", v)
	}

	require.True(t, math.IsInf(f.Inf(false).Float64(), 1))
	require.True(t, math.IsInf(f.Inf(true).Float64(), -1))
	require.True(t, math.IsNaN(f.QNaN().Float64()))
	require.True(t, math.Signbit(f.MustParse("-0").Float64()))

	// beyond float64 range collapses to infinity
	require.True(t, math.IsInf(f.MustParse("1e400").Float64(), 1))
}

func TestInt_SaturatesAt32Bits(t *testing.T) {
	f := dfp.MustField(16)

	require.Equal(t, 0, f.Zero().Int())
	require.Equal(t, 123456, f.New(123456).Int())
	require.Equal(t, -123456, f.New(-123456).Int())
	require.Equal(t, 2, f.MustParse("2.4").Int())
	require.Equal(t, 3, f.MustParse("2.6").Int())
	require.Equal(t, 2, f.MustParse("2.5").Int(), "half-even tie")
	require.Equal(t, -3, f.MustParse("-2.6").Int())

	require.Equal(t, math.MaxInt32, f.MustParse("1e40").Int())
	require.Equal(t, math.MinInt32, f.MustParse("-1e40").Int())
}

func TestNewInt_LargeMagnitudes(t *testing.T) {
	f := dfp.MustField(16)

	// whole radix groups beyond the mantissa are truncated, not rounded
	x := f.New(math.MaxInt64)
	require.Equal(t, "9.22337203685477e18", x.String())
	require.True(t, f.New(math.MinInt64).Signbit())
}
