package fourier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireComplexNear(t *testing.T, want, got Complex, eps float64) {
	t.Helper()
	require.InDeltaf(t, want.Re, got.Re, eps, "real part of %v vs %v", got, want)
	require.InDeltaf(t, want.Im, got.Im, eps, "imaginary part of %v vs %v", got, want)
}

func requireComplexSliceNear(t *testing.T, want, got []Complex, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaf(t, want[i].Re, got[i].Re, eps, "bin %d real", i)
		require.InDeltaf(t, want[i].Im, got[i].Im, eps, "bin %d imag", i)
	}
}

func TestComplexArithmetic(t *testing.T) {
	a := NewComplex(1, 2)
	b := NewComplex(3, -1)

	require.Equal(t, NewComplex(4, 1), a.Add(b))
	require.Equal(t, NewComplex(-2, 3), a.Sub(b))
	require.Equal(t, NewComplex(5, 5), a.Mul(b))
	require.Equal(t, NewComplex(1, -2), a.Conjugate())
	require.Equal(t, NewComplex(2, 4), a.Scale(2))
	require.Equal(t, Complex{Re: 7}, Real(7))
	require.Equal(t, 5.0, NewComplex(3, 4).Abs())
}

func TestComplexPhiRange(t *testing.T) {
	tests := []struct {
		name string
		c    Complex
		want float64
	}{
		{"positive real", NewComplex(1, 0), 0},
		{"positive imaginary", NewComplex(0, 1), math.Pi / 2},
		{"negative imaginary", NewComplex(0, -1), -math.Pi / 2},
		{"negative real", NewComplex(-1, 0), math.Pi},
		{"negative real negative zero", NewComplex(-1, math.Copysign(0, -1)), math.Pi},
		{"third quadrant", NewComplex(-1, -1), -3 * math.Pi / 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Phi()
			require.InDelta(t, tt.want, got, 1e-15)
			require.True(t, got > -math.Pi && got <= math.Pi)
		})
	}
}

func TestFromPolar(t *testing.T) {
	requireComplexNear(t, NewComplex(0, 2), FromPolar(2, math.Pi/2), 1e-15)
	requireComplexNear(t, NewComplex(-3, 0), FromPolar(3, math.Pi), 1e-15)

	c := NewComplex(-0.3, 1.7)
	requireComplexNear(t, c, FromPolar(c.Abs(), c.Phi()), 1e-15)
}

func TestPowerMatchesRepeatedMultiplication(t *testing.T) {
	for _, c := range []Complex{NewComplex(1, 1), NewComplex(0.6, -0.8), NewComplex(-2, 0.5)} {
		want := Real(1)
		for n := 0; n <= 8; n++ {
			got := c.Power(n)
			eps := 1e-12 * math.Max(1, want.Abs())
			requireComplexNear(t, want, got, eps)
			want = want.Mul(c)
		}
	}
}

func TestPowerZeroAndNegative(t *testing.T) {
	requireComplexNear(t, Real(1), NewComplex(0, 0).Power(0), 0)
	requireComplexNear(t, NewComplex(0, -0.5), NewComplex(0, 2).Power(-1), 1e-15)
}

func TestComplexConversions(t *testing.T) {
	c := NewComplex(1.5, -2)
	require.Equal(t, complex(1.5, -2), c.Complex128())
	require.Equal(t, c, FromComplex128(c.Complex128()))
	require.Equal(t, "1.5 + -2i", c.String())
}
