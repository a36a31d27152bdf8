package interp

import (
	"fmt"

	"github.com/cwbudde/algo-interp/dsp/core"
)

// grid is an equally spaced sample set y[i] at x[i] = a + i·h.
type grid struct {
	a, b float64
	h    float64
	x    []float64
	y    []float64
}

func newGrid(a, b float64, y []float64) (grid, error) {
	if !core.IsFinite(a) || !core.IsFinite(b) || !(a < b) {
		return grid{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidDomain, a, b)
	}
	if len(y) < 2 {
		return grid{}, fmt.Errorf("%w: got %d", ErrTooFewSamples, len(y))
	}

	n := len(y) - 1
	g := grid{
		a: a,
		b: b,
		h: (b - a) / float64(n),
		x: make([]float64, len(y)),
		y: append([]float64(nil), y...),
	}
	for i := range g.x {
		g.x[i] = a + float64(i)*g.h
	}
	return g, nil
}

func (g *grid) ready() bool { return len(g.y) > 0 }

// last returns n, the index of the rightmost sample.
func (g *grid) last() int { return len(g.y) - 1 }

// Nodes returns a copy of the grid abscissas, nil before Init.
func (g *grid) Nodes() []float64 {
	if !g.ready() {
		return nil
	}
	return append([]float64(nil), g.x...)
}

// Domain returns the interval passed to Init.
func (g *grid) Domain() (a, b float64) { return g.a, g.b }
