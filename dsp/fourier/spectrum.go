package fourier

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func splitParts(in []Complex) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	n := len(in)
	if cap(buf.data) < 2*n {
		buf.data = make([]float64, 2*n)
	} else {
		buf.data = buf.data[:2*n]
	}
	re, im = buf.data[:n], buf.data[n:]
	for i, c := range in {
		re[i] = c.Re
		im[i] = c.Im
	}
	return re, im, buf
}

// Magnitude returns |X[k]| for each bin.
func Magnitude(in []Complex) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	re, im, buf := splitParts(in)
	vecmath.Magnitude(out, re, im)
	scratchPool.Put(buf)
	return out
}

// Power returns |X[k]|² for each bin.
func Power(in []Complex) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	re, im, buf := splitParts(in)
	vecmath.Power(out, re, im)
	scratchPool.Put(buf)
	return out
}

// Phase returns arg(X[k]) in radians for each bin.
func Phase(in []Complex) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = c.Phi()
	}
	return out
}
