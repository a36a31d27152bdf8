package interp

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-interp/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestCubicSplineSlopesSolveSystem(t *testing.T) {
	y := []float64{1, 10, 5, -1, 0, 11}
	var cs CubicSpline
	require.NoError(t, cs.Init(0, 10, y))

	s := cs.Slopes()
	require.Len(t, s, len(y))
	require.Zero(t, s[0])
	require.Zero(t, s[len(s)-1])

	h := 2.0
	for i := 0; i+2 < len(y); i++ {
		lhs := s[i] + 4*s[i+1] + s[i+2]
		require.InDeltaf(t, 3/h*(y[i+2]-y[i]), lhs, 1e-12, "equation %d", i)
	}
}

func TestCubicSplineClampsOutsideDomain(t *testing.T) {
	var cs CubicSpline
	require.NoError(t, cs.Init(-1, 1, []float64{2, -3, 4, 5}))
	require.Equal(t, 2.0, cs.Evaluate(-1.5))
	require.Equal(t, 5.0, cs.Evaluate(100))
}

func TestCubicSplineTwoSamples(t *testing.T) {
	var cs CubicSpline
	require.NoError(t, cs.Init(0, 2, []float64{1, 3}))
	require.Equal(t, []float64{0, 0}, cs.Slopes())
	require.InDelta(t, 2, cs.Evaluate(1), 1e-15)
	require.InDelta(t, 1, cs.Evaluate(0), 1e-15)
	require.InDelta(t, 3, cs.Evaluate(2), 1e-15)
}

func TestCubicSplineThreeSamples(t *testing.T) {
	var cs CubicSpline
	require.NoError(t, cs.Init(0, 2, []float64{0, 1, 4}))
	// Single equation 4·y'1 = 3·(4 - 0).
	require.InDelta(t, 3, cs.Slopes()[1], 1e-15)
}

func TestCubicSplineDerivativeContinuity(t *testing.T) {
	a, b := 0.0, 3.0
	y := testutil.Sample(math.Sin, a, b, 6)
	var cs CubicSpline
	require.NoError(t, cs.Init(a, b, y))

	const eps = 1e-6
	slopes := cs.Slopes()
	for i, x := range cs.Nodes()[1 : len(y)-1] {
		left := (cs.Evaluate(x) - cs.Evaluate(x-eps)) / eps
		right := (cs.Evaluate(x+eps) - cs.Evaluate(x)) / eps
		require.InDeltaf(t, left, right, 1e-4, "knot %d", i+1)
		require.InDeltaf(t, slopes[i+1], right, 1e-4, "knot %d", i+1)
	}
}

func TestCubicSplineApproximatesSmoothFunction(t *testing.T) {
	// Interior accuracy only: the zero end slopes distort the first and last
	// segments.
	a, b := 0.0, 2*math.Pi
	y := testutil.Sample(math.Cos, a, b, 40)
	var cs CubicSpline
	require.NoError(t, cs.Init(a, b, y))
	for _, z := range []float64{1, 2, 3.3, 4.4, 5} {
		require.InDelta(t, math.Cos(z), cs.Evaluate(z), 1e-3)
	}
}
