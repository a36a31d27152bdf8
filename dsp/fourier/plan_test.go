package fourier

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlanMatchesRecursiveFFT(t *testing.T) {
	for _, norm := range []Normalization{NormForward, NormBackward, NormOrtho} {
		for _, n := range []int{4, 16, 64, 1024} {
			v := complexNoise(int64(n+int(norm)), n)
			want, err := FFT(v, WithNormalization(norm))
			require.NoError(t, err)

			plan, err := NewPlan(n, WithNormalization(norm))
			require.NoError(t, err)
			require.Equal(t, n, plan.Len())

			got := make([]Complex, n)
			require.NoError(t, plan.Forward(got, v))
			requireComplexSliceNear(t, want, got, 1e-9)

			wantInv, err := IFFT(want, WithNormalization(norm))
			require.NoError(t, err)
			require.NoError(t, plan.Inverse(got, got))
			requireComplexSliceNear(t, wantInv, got, 1e-9)
			requireComplexSliceNear(t, v, got, 1e-9)
		}
	}
}

func TestPlanRejectsInvalidSizes(t *testing.T) {
	_, err := NewPlan(12)
	require.ErrorIs(t, err, ErrNotPowerOfTwo)

	plan, err := NewPlan(8)
	require.NoError(t, err)
	require.ErrorIs(t, plan.Forward(make([]Complex, 8), make([]Complex, 4)), ErrLengthMismatch)
	require.ErrorIs(t, plan.Inverse(make([]Complex, 2), make([]Complex, 8)), ErrLengthMismatch)
}
