// Package dfp_test validates the Field context: construction, precision
// sizing, rounding-mode and flag state, trap-handler dispatch, and the
// bootstrapped transcendental constants.
package dfp_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/mathx-go/mathx/dfp"
)

func TestNewField_InvalidDigits(t *testing.T) {
	for _, d := range []int{0, -1, -100} {
		_, err := dfp.NewField(d)
		require.ErrorIs(t, err, dfp.ErrInvalidDigits, "digits=%d", d)
	}
}

func TestNewField_RadixDigits(t *testing.T) {
	cases := []struct {
		decimal int
		radix   int
	}{
		{1, 4},
		{4, 4},
		{13, 4},
		{16, 4},
		{17, 5},
		{20, 5},
		{40, 10},
	}
	for _, tc := range cases {
		f, err := dfp.NewField(tc.decimal)
		require.NoError(t, err)
		require.Equal(t, tc.radix, f.RadixDigits(), "decimal=%d", tc.decimal)
	}
}

func TestMustField_PanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() { dfp.MustField(0) })
}

func TestField_RoundingModeDefaultsToHalfEven(t *testing.T) {
	f := dfp.MustField(16)
	require.Equal(t, dfp.RoundHalfEven, f.RoundingMode())

	f.SetRoundingMode(dfp.RoundCeil)
	require.Equal(t, dfp.RoundCeil, f.RoundingMode())
}

func TestField_StartsWithCleanFlags(t *testing.T) {
	// constant bootstrap rounds 200-digit strings down to field precision;
	// none of that rounding may leak into the new field's flag state
	dfp.ResetConstantCache()
	f := dfp.MustField(16)
	require.Zero(t, f.Flags())

	// warm-cache path too
	g := dfp.MustField(20)
	require.Zero(t, g.Flags())
}

func TestField_FlagAccumulation(t *testing.T) {
	f := dfp.MustField(16)
	require.Zero(t, f.Flags())

	// 1/3 is inexact; the flag must stick across further exact operations
	f.One().Div(f.MustParse("3"))
	require.NotZero(t, f.Flags()&dfp.FlagInexact)

	f.New(2).Add(f.New(2))
	require.NotZero(t, f.Flags()&dfp.FlagInexact)

	f.ClearFlags()
	require.Zero(t, f.Flags())
}

func TestField_SetAndRaiseFlags(t *testing.T) {
	f := dfp.MustField(16)

	f.SetFlags(dfp.FlagOverflow)
	require.Equal(t, dfp.FlagOverflow, f.Flags())

	f.RaiseFlags(dfp.FlagInexact)
	require.Equal(t, dfp.FlagOverflow|dfp.FlagInexact, f.Flags())

	// SetFlags replaces, RaiseFlags accumulates
	f.SetFlags(dfp.FlagInvalid)
	require.Equal(t, dfp.FlagInvalid, f.Flags())
}

func TestField_TrapHandlerReceivesCondition(t *testing.T) {
	f := dfp.MustField(16)

	var gotFlag dfp.Flag
	var gotOp string
	f.SetTrapHandler(func(flag dfp.Flag, op string, operand, def *dfp.Dfp) *dfp.Dfp {
		gotFlag = flag
		gotOp = op
		return f.New(42)
	})

	r := f.One().Div(f.Zero())
	require.True(t, r.Equal(f.New(42)), "handler result must replace the default")
	require.Equal(t, dfp.FlagDivZero, gotFlag)
	require.Equal(t, "divide", gotOp)
	require.NotZero(t, f.Flags()&dfp.FlagDivZero, "the flag is raised before the trap fires")
}

func TestField_TrapHandlerDefaultPassThrough(t *testing.T) {
	f := dfp.MustField(16)
	f.SetTrapHandler(func(flag dfp.Flag, op string, operand, def *dfp.Dfp) *dfp.Dfp {
		return def
	})

	r := f.New(5).Div(f.Zero())
	require.True(t, r.IsInfinite())
	require.False(t, r.Signbit())
}

func TestField_Factories(t *testing.T) {
	f := dfp.MustField(16)

	require.True(t, f.Zero().IsZero())
	require.True(t, f.One().Equal(f.New(1)))
	require.True(t, f.Two().Equal(f.New(2)))

	require.True(t, f.Inf(false).IsInfinite())
	require.False(t, f.Inf(false).Signbit())
	require.True(t, f.Inf(true).Signbit())

	require.Equal(t, dfp.QuietNaN, f.QNaN().Classify())
	require.Equal(t, dfp.SignalingNaN, f.SNaN().Classify())
	require.True(t, f.QNaN().IsNaN())
}

func TestField_PiToTwentyDigits(t *testing.T) {
	f := dfp.MustField(20)
	want := f.MustParse("3.1415926535897932385")
	require.True(t, f.Pi().Equal(want), "got %s", f.Pi())
}

func TestField_ConstantsSatisfyIdentities(t *testing.T) {
	f := dfp.MustField(20)
	eps := f.MustParse("1e-15")

	approx := func(a, b *dfp.Dfp) {
		t.Helper()
		diff := a.Sub(b).Abs()
		require.True(t, diff.LessThan(eps), "|%s - %s| = %s", a, b, diff)
	}

	approx(f.Sqr2().Mul(f.Sqr2()), f.Two())
	approx(f.Sqr3().Mul(f.Sqr3()), f.New(3))
	approx(f.Sqr2().Mul(f.Sqr2Reciprocal()), f.One())
	approx(f.Sqr3().Mul(f.Sqr3Reciprocal()), f.One())
	approx(f.Ln2().Add(f.Ln5()), f.Ln10())

	require.True(t, f.E().GreaterThan(f.MustParse("2.718281828459045")))
	require.True(t, f.E().LessThan(f.MustParse("2.718281828459046")))
}

func TestField_SplitPairsRecombine(t *testing.T) {
	f := dfp.MustField(20)

	for name, pair := range map[string][2]*dfp.Dfp{
		"sqr2": f.Sqr2Split(),
		"pi":   f.PiSplit(),
		"e":    f.ESplit(),
		"ln2":  f.Ln2Split(),
		"ln5":  f.Ln5Split(),
	} {
		sum := pair[0].Add(pair[1])
		var whole *dfp.Dfp
		switch name {
		case "sqr2":
			whole = f.Sqr2()
		case "pi":
			whole = f.Pi()
		case "e":
			whole = f.E()
		case "ln2":
			whole = f.Ln2()
		case "ln5":
			whole = f.Ln5()
		}
		require.True(t, sum.Equal(whole), "%s split must sum back to the constant", name)
	}
}

func TestResetConstantCache_Recomputes(t *testing.T) {
	before := dfp.MustField(20).Pi().String()
	dfp.ResetConstantCache()
	after := dfp.MustField(20).Pi().String()
	require.Equal(t, before, after, "constants must be deterministic across recomputation")
}

func TestField_IndependentFlagState(t *testing.T) {
	f1 := dfp.MustField(16)
	f2 := dfp.MustField(16)

	f1.One().Div(f1.MustParse("3"))
	require.NotZero(t, f1.Flags())
	require.Zero(t, f2.Flags(), "fields must not share flag state")
}

func TestField_WrappedErrorCarriesContext(t *testing.T) {
	_, err := dfp.NewField(-3)
	require.Error(t, err)
	require.True(t, errors.Is(err, dfp.ErrInvalidDigits))
	require.Contains(t, err.Error(), "-3")
}
