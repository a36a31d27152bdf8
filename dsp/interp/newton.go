package interp

import "math"

// NewtonPolynomial is the unique polynomial of degree n through all n+1
// samples, held in Newton form
//
//	p(z) = c0 + c1(z-x0) + c2(z-x0)(z-x1) + ...
//
// Unlike the other methods it does not clamp: outside [a, b] the full-degree
// polynomial is extrapolated.
type NewtonPolynomial struct {
	grid
	coeffs []float64
}

// Init implements [Method]. Coefficients come from the divided-difference
// triangle c[i][k] = (c[i+1][k-1] - c[i][k-1]) / (x[i+k] - x[i]).
func (np *NewtonPolynomial) Init(a, b float64, y []float64) error {
	g, err := newGrid(a, b, y)
	if err != nil {
		return err
	}
	np.grid = g
	np.coeffs = dividedDifferences(g.x, g.y)
	return nil
}

// Coefficients returns a copy of c0..cn, nil before Init.
func (np *NewtonPolynomial) Coefficients() []float64 {
	if !np.ready() {
		return nil
	}
	return append([]float64(nil), np.coeffs...)
}

// Evaluate implements [Method] with a single Horner-style pass.
func (np *NewtonPolynomial) Evaluate(z float64) float64 {
	if !np.ready() {
		return math.NaN()
	}

	acc := 0.0
	prod := 1.0
	for i, c := range np.coeffs {
		acc += c * prod
		prod *= z - np.x[i]
	}
	return acc
}

// dividedDifferences returns the top row of the divided-difference triangle.
func dividedDifferences(x, y []float64) []float64 {
	n := len(y)
	tri := make([][]float64, n)
	for i := range tri {
		tri[i] = make([]float64, n-i)
		tri[i][0] = y[i]
	}
	for k := 1; k < n; k++ {
		for i := 0; i < n-k; i++ {
			tri[i][k] = (tri[i+1][k-1] - tri[i][k-1]) / (x[i+k] - x[i])
		}
	}
	return append([]float64(nil), tri[0]...)
}
