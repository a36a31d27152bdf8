package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want), "length mismatch")
	for i := range got {
		require.InDeltaf(t, want[i], got[i], eps, "index %d", i)
	}
}

// RequireMatrixNearlyEqual is RequireSliceNearlyEqual applied row by row.
func RequireMatrixNearlyEqual(t testing.TB, got, want [][]float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want), "row count mismatch")
	for i := range got {
		require.Lenf(t, got[i], len(want[i]), "row %d length mismatch", i)
		for j := range got[i] {
			require.InDeltaf(t, want[i][j], got[i][j], eps, "element [%d][%d]", i, j)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		require.Falsef(t, math.IsNaN(v) || math.IsInf(v, 0), "index %d: non-finite value %v", i, v)
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
