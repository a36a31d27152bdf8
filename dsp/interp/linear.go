package interp

import "math"

// PiecewiseLinear joins neighbouring samples with straight segments.
// Outside [a, b] it returns y[0] or y[n].
type PiecewiseLinear struct {
	grid
	slope     []float64
	intercept []float64
}

// Init implements [Method]. Per-segment slope and intercept are precomputed.
func (pl *PiecewiseLinear) Init(a, b float64, y []float64) error {
	g, err := newGrid(a, b, y)
	if err != nil {
		return err
	}

	n := g.last()
	pl.grid = g
	pl.slope = make([]float64, n)
	pl.intercept = make([]float64, n)
	for i := 0; i < n; i++ {
		pl.slope[i] = (g.y[i+1] - g.y[i]) / g.h
		pl.intercept[i] = g.y[i] - pl.slope[i]*g.x[i]
	}
	return nil
}

// Evaluate implements [Method].
func (pl *PiecewiseLinear) Evaluate(z float64) float64 {
	if !pl.ready() {
		return math.NaN()
	}
	if z < pl.a {
		return pl.y[0]
	}
	if z > pl.b {
		return pl.y[pl.last()]
	}

	// b may sit a rounding step beyond x[n]; such z belong to the last segment.
	seg := len(pl.slope) - 1
	for i := 0; i < len(pl.slope); i++ {
		if z >= pl.x[i] && z <= pl.x[i+1] {
			seg = i
			break
		}
	}
	return pl.slope[seg]*z + pl.intercept[seg]
}
