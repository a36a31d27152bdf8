package fourier

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Window selects a tapering function applied to samples before a transform.
type Window int

const (
	WindowRectangular Window = iota
	WindowHann
	WindowHamming
	WindowBlackman
)

var windowNames = [...]string{
	WindowRectangular: "rectangular",
	WindowHann:        "hann",
	WindowHamming:     "hamming",
	WindowBlackman:    "blackman",
}

// Cosine-sum coefficients a0, a1, a2 of w(x) = Σ a_k cos(2πkx).
var windowCoeffs = [...][]float64{
	WindowRectangular: {1},
	WindowHann:        {0.5, -0.5},
	WindowHamming:     {0.54, -0.46},
	WindowBlackman:    {0.42, -0.5, 0.08},
}

func (w Window) String() string {
	if w >= 0 && int(w) < len(windowNames) {
		return windowNames[w]
	}
	return fmt.Sprintf("Window(%d)", int(w))
}

// ParseWindow maps a window name (case-insensitive) to its value.
func ParseWindow(name string) (Window, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for w, n := range windowNames {
		if n == name {
			return Window(w), nil
		}
	}
	return 0, fmt.Errorf("fourier: unknown window %q", name)
}

// Coefficients returns the periodic form of w with n taps, i.e. sample i
// sits at i/n. That form tiles cleanly under the DFT.
func (w Window) Coefficients(n int) []float64 {
	if n <= 0 {
		return nil
	}
	coeffs := windowCoeffs[WindowRectangular]
	if w >= 0 && int(w) < len(windowCoeffs) {
		coeffs = windowCoeffs[w]
	}
	out := make([]float64, n)
	for i := range out {
		phase := 2 * math.Pi * float64(i) / float64(n)
		sum := 0.0
		for k, c := range coeffs {
			sum += c * math.Cos(float64(k)*phase)
		}
		out[i] = sum
	}
	return out
}

// Apply returns v multiplied by the window coefficients. v is not modified.
func (w Window) Apply(v []float64) []float64 {
	if len(v) == 0 {
		return nil
	}
	out := make([]float64, len(v))
	vecmath.MulBlock(out, v, w.Coefficients(len(v)))
	return out
}
