package fourier

import (
	"math"
	"strconv"
)

// Complex is an immutable complex number in Cartesian form.
type Complex struct {
	Re float64
	Im float64
}

// NewComplex returns re + im·i.
func NewComplex(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// Real returns re + 0i.
func Real(re float64) Complex {
	return Complex{Re: re}
}

// FromPolar returns r·e^{i·phi}.
func FromPolar(r, phi float64) Complex {
	sin, cos := math.Sincos(phi)
	return Complex{Re: r * cos, Im: r * sin}
}

// FromComplex128 converts a builtin complex value.
func FromComplex128(c complex128) Complex {
	return Complex{Re: real(c), Im: imag(c)}
}

// Complex128 converts to the builtin complex type.
func (c Complex) Complex128() complex128 {
	return complex(c.Re, c.Im)
}

// Add returns c + o.
func (c Complex) Add(o Complex) Complex {
	return Complex{Re: c.Re + o.Re, Im: c.Im + o.Im}
}

// Sub returns c - o.
func (c Complex) Sub(o Complex) Complex {
	return Complex{Re: c.Re - o.Re, Im: c.Im - o.Im}
}

// Mul returns c · o.
func (c Complex) Mul(o Complex) Complex {
	return Complex{
		Re: c.Re*o.Re - c.Im*o.Im,
		Im: c.Re*o.Im + c.Im*o.Re,
	}
}

// Scale returns c · s for a real s.
func (c Complex) Scale(s float64) Complex {
	return Complex{Re: c.Re * s, Im: c.Im * s}
}

// Conjugate returns the complex conjugate.
func (c Complex) Conjugate() Complex {
	return Complex{Re: c.Re, Im: -c.Im}
}

// Abs returns |c|.
func (c Complex) Abs() float64 {
	return math.Sqrt(c.Re*c.Re + c.Im*c.Im)
}

// Phi returns arg(c) in (-π, π].
func (c Complex) Phi() float64 {
	phi := math.Atan2(c.Im, c.Re)
	if phi == -math.Pi {
		// atan2 yields -π for a negative real axis with Im == -0.
		return math.Pi
	}
	return phi
}

// Power returns c^n.
//
// The power is taken in polar form, FromPolar(|c|^n, n·arg(c)). This is exact
// only in exact arithmetic; for |c| != 1 and large n it drifts further from
// the true value than repeated multiplication would.
func (c Complex) Power(n int) Complex {
	return FromPolar(math.Pow(c.Abs(), float64(n)), c.Phi()*float64(n))
}

// String formats c as "re + imi".
func (c Complex) String() string {
	return strconv.FormatFloat(c.Re, 'g', -1, 64) + " + " + strconv.FormatFloat(c.Im, 'g', -1, 64) + "i"
}
