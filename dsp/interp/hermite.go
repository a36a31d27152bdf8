package interp

// HermiteBasis returns the four cubic Hermite basis polynomials at t in [0,1]:
//
//	h0 = 1 - 3t² + 2t³   (left value)
//	h1 = 3t² - 2t³       (right value)
//	h2 = t - 2t² + t³    (left slope)
//	h3 = -t² + t³        (right slope)
func HermiteBasis(t float64) (h0, h1, h2, h3 float64) {
	t2 := t * t
	t3 := t2 * t
	h0 = 1 - 3*t2 + 2*t3
	h1 = 3*t2 - 2*t3
	h2 = t - 2*t2 + t3
	h3 = -t2 + t3
	return h0, h1, h2, h3
}

// Hermite evaluates the cubic through (0, y0) and (1, y1) with end slopes m0
// and m1, both expressed per unit of t.
func Hermite(t, y0, y1, m0, m1 float64) float64 {
	h0, h1, h2, h3 := HermiteBasis(t)
	return y0*h0 + y1*h1 + m0*h2 + m1*h3
}
