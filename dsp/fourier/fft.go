package fourier

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-interp/dsp/core"
)

// FFT computes the discrete Fourier transform of v with the recursive
// radix-2 Cooley-Tukey algorithm. len(v) must be a power of two.
//
// The input is not modified. The result is scaled by the forward factor of
// the selected normalization (1/n by default).
func FFT(v []Complex, opts ...Option) ([]Complex, error) {
	if err := validateLength(len(v)); err != nil {
		return nil, err
	}
	cfg := applyOptions(opts)

	out := radix2(v)
	scaleInPlace(out, cfg.norm.forwardScale(len(v)))
	return out, nil
}

// IFFT computes the inverse transform of c by conjugating the input, running
// the forward recursion and conjugating the output. len(c) must be a power of
// two.
//
// With the default normalization the inverse is unscaled, so IFFT(FFT(v))
// reproduces v.
func IFFT(c []Complex, opts ...Option) ([]Complex, error) {
	if err := validateLength(len(c)); err != nil {
		return nil, err
	}
	cfg := applyOptions(opts)

	conj := make([]Complex, len(c))
	for i, x := range c {
		conj[i] = x.Conjugate()
	}

	out := radix2(conj)
	scale := cfg.norm.inverseScale(len(c))
	for i, x := range out {
		out[i] = x.Conjugate().Scale(scale)
	}
	return out, nil
}

func validateLength(n int) error {
	if !core.IsPowerOfTwo(n) {
		return fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}
	return nil
}

// radix2 returns the unscaled transform of v. Recursion depth is log2(len(v)).
func radix2(v []Complex) []Complex {
	n := len(v)
	if n == 1 {
		return []Complex{v[0]}
	}

	half := n / 2
	even := make([]Complex, half)
	odd := make([]Complex, half)
	for i := 0; i < half; i++ {
		even[i] = v[2*i]
		odd[i] = v[2*i+1]
	}

	evenT := radix2(even)
	oddT := radix2(odd)

	out := make([]Complex, n)
	for k := 0; k < half; k++ {
		t := oddT[k].Mul(FromPolar(1, -2*math.Pi*float64(k)/float64(n)))
		out[k] = evenT[k].Add(t)
		out[k+half] = evenT[k].Sub(t)
	}
	return out
}

func scaleInPlace(v []Complex, s float64) {
	if s == 1 {
		return
	}
	for i := range v {
		v[i] = v[i].Scale(s)
	}
}
