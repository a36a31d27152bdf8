package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DiagonallyDominant returns the three bands of a random strictly diagonally
// dominant tridiagonal matrix of dimension n: off-diagonals in [-1, 1] and
// |diag[i]| > |lower[i-1]| + |upper[i]| + 1.
func DiagonallyDominant(seed int64, n int) (lower, diag, upper []float64) {
	rng := rand.New(rand.NewSource(seed))
	lower = make([]float64, max(n-1, 0))
	upper = make([]float64, max(n-1, 0))
	diag = make([]float64, n)
	for i := range lower {
		lower[i] = rng.Float64()*2 - 1
		upper[i] = rng.Float64()*2 - 1
	}
	for i := range diag {
		sum := 1.0
		if i > 0 {
			sum += math.Abs(lower[i-1])
		}
		if i < n-1 {
			sum += math.Abs(upper[i])
		}
		d := sum + rng.Float64()*2
		if rng.Intn(2) == 0 {
			d = -d
		}
		diag[i] = d
	}
	return lower, diag, upper
}

// Sample evaluates fn on n+1 equally spaced abscissas from a to b.
func Sample(fn func(float64) float64, a, b float64, n int) []float64 {
	out := make([]float64, n+1)
	h := (b - a) / float64(n)
	for i := range out {
		out[i] = fn(a + float64(i)*h)
	}
	return out
}
