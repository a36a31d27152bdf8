package interp

import (
	"fmt"
	"strings"
)

// Method is a one-dimensional interpolation scheme on an equally spaced grid.
//
// Init must succeed before Evaluate is meaningful; Evaluate on an
// uninitialized method returns NaN. A second Init replaces all prior state.
type Method interface {
	// Init places y[i] at a + i·(b-a)/(len(y)-1). It requires a < b and
	// len(y) >= 2. y is copied.
	Init(a, b float64, y []float64) error
	// Evaluate returns the interpolated value at z. It is defined for every
	// real z; the behavior outside [a, b] depends on the method.
	Evaluate(z float64) float64
}

var (
	_ Method = (*NearestNeighbor)(nil)
	_ Method = (*PiecewiseLinear)(nil)
	_ Method = (*NewtonPolynomial)(nil)
	_ Method = (*CubicSpline)(nil)
)

// Kind identifies an interpolation method.
type Kind int

const (
	KindNearest Kind = iota
	KindLinear
	KindNewton
	KindSpline
)

var kindNames = [...]string{
	KindNearest: "nearest",
	KindLinear:  "linear",
	KindNewton:  "newton",
	KindSpline:  "spline",
}

// Kinds lists every supported kind in ascending order.
func Kinds() []Kind {
	return []Kind{KindNearest, KindLinear, KindNewton, KindSpline}
}

// String returns the short method name.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a short method name (case-insensitive) to its kind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// New returns an empty method of the given kind.
func New(k Kind) (Method, error) {
	switch k {
	case KindNearest:
		return &NearestNeighbor{}, nil
	case KindLinear:
		return &PiecewiseLinear{}, nil
	case KindNewton:
		return &NewtonPolynomial{}, nil
	case KindSpline:
		return &CubicSpline{}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, k)
	}
}

// EvaluateAll evaluates m at every point of zs.
func EvaluateAll(m Method, zs []float64) []float64 {
	out := make([]float64, len(zs))
	for i, z := range zs {
		out[i] = m.Evaluate(z)
	}
	return out
}
