package interp

import "math"

// NearestNeighbor returns the sample of the grid point closest to z.
//
// All grid points are scanned; on an exact tie the later (rightward) point
// wins. Outside [a, b] the nearest endpoint is returned.
type NearestNeighbor struct {
	grid
}

// Init implements [Method].
func (nn *NearestNeighbor) Init(a, b float64, y []float64) error {
	g, err := newGrid(a, b, y)
	if err != nil {
		return err
	}
	nn.grid = g
	return nil
}

// Evaluate implements [Method].
func (nn *NearestNeighbor) Evaluate(z float64) float64 {
	if !nn.ready() {
		return math.NaN()
	}

	best := math.Inf(1)
	out := math.NaN()
	for i, x := range nn.x {
		d := math.Abs(x - z)
		if d <= best {
			best = d
			out = nn.y[i]
		}
	}
	return out
}
