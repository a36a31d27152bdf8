package fourier

import "math"

// DFT computes the discrete Fourier transform of the real sequence v by
// direct summation:
//
//	X[k] = s · Σ_j v[j]·ω^{jk},  ω = e^{-2πi/n}
//
// where s is the forward scale of the selected normalization (1/n by
// default). Twiddle factors are obtained with [Complex.Power], not by
// incremental rotation. Any length is accepted; an empty input yields an
// empty result.
func DFT(v []float64, opts ...Option) []Complex {
	n := len(v)
	if n == 0 {
		return []Complex{}
	}
	cfg := applyOptions(opts)
	scale := cfg.norm.forwardScale(n)

	omega := FromPolar(1, -2*math.Pi/float64(n))
	out := make([]Complex, n)
	for k := range out {
		var sum Complex
		for j, x := range v {
			sum = sum.Add(omega.Power(j * k).Scale(x))
		}
		out[k] = sum.Scale(scale)
	}
	return out
}
