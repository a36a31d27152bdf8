package interp

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-interp/dsp/linalg"
)

// CubicSpline is a piecewise cubic Hermite interpolant whose knot slopes
// come from a tridiagonal system, with zero slope imposed at both ends.
//
// The interior slopes y'1..y'(n-1) solve
//
//	y'(i) + 4·y'(i+1) + y'(i+2) = 3/h · (y(i+2) - y(i))
//
// with y'0 = y'n = 0. Outside [a, b] the endpoint values are returned.
type CubicSpline struct {
	grid
	slopes []float64
}

// Init implements [Method]. With two samples the interior system is empty
// and both slopes are zero.
func (cs *CubicSpline) Init(a, b float64, y []float64) error {
	g, err := newGrid(a, b, y)
	if err != nil {
		return err
	}

	slopes, err := splineSlopes(g)
	if err != nil {
		return err
	}
	cs.grid = g
	cs.slopes = slopes
	return nil
}

// Slopes returns a copy of the first derivatives at the grid points, nil
// before Init.
func (cs *CubicSpline) Slopes() []float64 {
	if !cs.ready() {
		return nil
	}
	return append([]float64(nil), cs.slopes...)
}

// Evaluate implements [Method].
func (cs *CubicSpline) Evaluate(z float64) float64 {
	if !cs.ready() {
		return math.NaN()
	}
	n := cs.last()
	if z < cs.a {
		return cs.y[0]
	}
	if z > cs.b {
		return cs.y[n]
	}

	i := int(math.Floor((z - cs.a) / cs.h))
	i = max(0, min(i, n-1))
	t := (z - cs.x[i]) / cs.h
	return Hermite(t, cs.y[i], cs.y[i+1], cs.h*cs.slopes[i], cs.h*cs.slopes[i+1])
}

func splineSlopes(g grid) ([]float64, error) {
	n := g.last()
	slopes := make([]float64, n+1)
	size := n - 1
	if size < 1 {
		return slopes, nil
	}

	tri, err := linalg.NewTridiagonal(size)
	if err != nil {
		return nil, fmt.Errorf("interp: spline system: %w", err)
	}
	tri.SetDiagonal(4)
	tri.SetLower(1)
	tri.SetUpper(1)

	factor := 3 / g.h
	rhs := make([]float64, size)
	for i := range rhs {
		rhs[i] = factor * (g.y[i+2] - g.y[i])
	}

	inner, err := tri.Solve(rhs)
	if err != nil {
		return nil, fmt.Errorf("interp: spline system: %w", err)
	}
	copy(slopes[1:n], inner)
	return slopes, nil
}
