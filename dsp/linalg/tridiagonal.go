package linalg

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// Tridiagonal is an n×n matrix with non-zero entries only on the
// sub-diagonal, the diagonal and the super-diagonal. The dimension is fixed
// at construction.
//
// Row i reads lower[i-1], diag[i], upper[i].
type Tridiagonal struct {
	n     int
	lower []float64
	diag  []float64
	upper []float64
}

// NewTridiagonal returns a zero n×n tridiagonal matrix.
func NewTridiagonal(n int) (*Tridiagonal, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, n)
	}
	return &Tridiagonal{
		n:     n,
		lower: make([]float64, n-1),
		diag:  make([]float64, n),
		upper: make([]float64, n-1),
	}, nil
}

// NewTridiagonalFromBands builds a matrix from copies of the given bands.
// lower and upper must have length len(diag)-1.
func NewTridiagonalFromBands(lower, diag, upper []float64) (*Tridiagonal, error) {
	t, err := NewTridiagonal(len(diag))
	if err != nil {
		return nil, err
	}
	if len(lower) != t.n-1 || len(upper) != t.n-1 {
		return nil, fmt.Errorf("%w: bands %d/%d for dimension %d", ErrLengthMismatch, len(lower), len(upper), t.n)
	}
	copy(t.lower, lower)
	copy(t.diag, diag)
	copy(t.upper, upper)
	return t, nil
}

// N returns the dimension.
func (t *Tridiagonal) N() int { return t.n }

// Clone returns a deep copy.
func (t *Tridiagonal) Clone() *Tridiagonal {
	return &Tridiagonal{
		n:     t.n,
		lower: append([]float64(nil), t.lower...),
		diag:  append([]float64(nil), t.diag...),
		upper: append([]float64(nil), t.upper...),
	}
}

// SetLower sets every sub-diagonal entry to v.
func (t *Tridiagonal) SetLower(v float64) { fill(t.lower, v) }

// SetDiagonal sets every diagonal entry to v.
func (t *Tridiagonal) SetDiagonal(v float64) { fill(t.diag, v) }

// SetUpper sets every super-diagonal entry to v.
func (t *Tridiagonal) SetUpper(v float64) { fill(t.upper, v) }

// SetLowerAt sets A[i+1][i].
func (t *Tridiagonal) SetLowerAt(i int, v float64) error {
	return setAt(t.lower, i, v)
}

// SetDiagonalAt sets A[i][i].
func (t *Tridiagonal) SetDiagonalAt(i int, v float64) error {
	return setAt(t.diag, i, v)
}

// SetUpperAt sets A[i][i+1].
func (t *Tridiagonal) SetUpperAt(i int, v float64) error {
	return setAt(t.upper, i, v)
}

// At returns A[i][j]; entries outside the three bands are zero.
func (t *Tridiagonal) At(i, j int) float64 {
	if i < 0 || j < 0 || i >= t.n || j >= t.n {
		panic(fmt.Sprintf("linalg: index (%d,%d) out of range for dimension %d", i, j, t.n))
	}
	switch j - i {
	case -1:
		return t.lower[j]
	case 0:
		return t.diag[i]
	case 1:
		return t.upper[i]
	default:
		return 0
	}
}

// Solve returns x with A·x = rhs using the Thomas algorithm.
//
// The stored bands and rhs are left untouched, so one matrix can be solved
// against several right-hand sides. There is no pivoting: a zero pivot
// yields NaN/Inf in the result.
func (t *Tridiagonal) Solve(rhs []float64) ([]float64, error) {
	if len(rhs) != t.n {
		return nil, fmt.Errorf("%w: rhs has %d elements, want %d", ErrLengthMismatch, len(rhs), t.n)
	}

	n := t.n
	d := append([]float64(nil), t.diag...)
	b := append([]float64(nil), rhs...)

	for i := 0; i < n-1; i++ {
		factor := t.lower[i] / d[i]
		d[i+1] -= factor * t.upper[i]
		b[i+1] -= factor * b[i]
	}

	x := make([]float64, n)
	x[n-1] = b[n-1] / d[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = (b[i] - t.upper[i]*x[i+1]) / d[i]
	}
	return x, nil
}

// Apply returns A·x.
func (t *Tridiagonal) Apply(x []float64) ([]float64, error) {
	if len(x) != t.n {
		return nil, fmt.Errorf("%w: x has %d elements, want %d", ErrLengthMismatch, len(x), t.n)
	}

	out := make([]float64, t.n)
	vecmath.MulBlock(out, t.diag, x)
	if t.n == 1 {
		return out, nil
	}

	tmp := make([]float64, t.n-1)
	vecmath.MulBlock(tmp, t.lower, x[:t.n-1])
	vecmath.AddBlockInPlace(out[1:], tmp)
	vecmath.MulBlock(tmp, t.upper, x[1:])
	vecmath.AddBlockInPlace(out[:t.n-1], tmp)
	return out, nil
}

// Dense expands the matrix into a gonum dense matrix.
func (t *Tridiagonal) Dense() *mat.Dense {
	d := mat.NewDense(t.n, t.n, nil)
	for i := 0; i < t.n; i++ {
		d.Set(i, i, t.diag[i])
		if i > 0 {
			d.Set(i, i-1, t.lower[i-1])
		}
		if i < t.n-1 {
			d.Set(i, i+1, t.upper[i])
		}
	}
	return d
}

// String renders the full matrix, one row per line.
func (t *Tridiagonal) String() string {
	return fmt.Sprintf("%.2f", mat.Formatted(t.Dense(), mat.Squeeze()))
}

func fill(dst []float64, v float64) {
	for i := range dst {
		dst[i] = v
	}
}

func setAt(band []float64, i int, v float64) error {
	if i < 0 || i >= len(band) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(band))
	}
	band[i] = v
	return nil
}
