package interp

import "fmt"

// Separable interpolates a cartesian grid z[i][j] = f(x[i], y[j]) by running
// one 1D [Method] along y for every grid row, then along x for every target
// column.
//
// Each pass re-initializes the method on [x[0], x[m-1]] or [y[0], y[n-1]],
// so the axes are treated as equally spaced between their endpoints. The
// single held method is mutated by every pass: a Separable must not be used
// from several goroutines at once.
type Separable struct {
	method Method
	x, y   []float64
	z      [][]float64
}

// NewSeparable wraps m. m must not be shared with other users while the
// Separable is in use.
func NewSeparable(m Method) *Separable {
	return &Separable{method: m}
}

// Method returns the wrapped 1D method.
func (s *Separable) Method() Method { return s.method }

// Init sets the grid. x, y and z are copied; z must be len(x)×len(y) and each
// axis needs at least two points.
func (s *Separable) Init(x, y []float64, z [][]float64) error {
	if len(x) < 2 || len(y) < 2 {
		return fmt.Errorf("%w: grid %d×%d", ErrTooFewSamples, len(x), len(y))
	}
	if len(z) != len(x) {
		return fmt.Errorf("%w: z has %d rows, want %d", ErrLengthMismatch, len(z), len(x))
	}

	zc := make([][]float64, len(z))
	for i, row := range z {
		if len(row) != len(y) {
			return fmt.Errorf("%w: z row %d has %d values, want %d", ErrLengthMismatch, i, len(row), len(y))
		}
		zc[i] = append([]float64(nil), row...)
	}

	s.x = append([]float64(nil), x...)
	s.y = append([]float64(nil), y...)
	s.z = zc
	return nil
}

// Evaluate returns r with r[i][j] ≈ f(s[i], t[j]).
func (s *Separable) Evaluate(sx, ty []float64) ([][]float64, error) {
	if s.method == nil || s.z == nil {
		return nil, ErrNotInitialized
	}
	m, n := len(s.x), len(s.y)

	// Rows: f(x[i], t[j]) for every grid row i.
	tmp := make([][]float64, m)
	for i := 0; i < m; i++ {
		if err := s.method.Init(s.y[0], s.y[n-1], s.z[i]); err != nil {
			return nil, fmt.Errorf("interp: row %d: %w", i, err)
		}
		tmp[i] = EvaluateAll(s.method, ty)
	}

	out := make([][]float64, len(sx))
	for i := range out {
		out[i] = make([]float64, len(ty))
	}

	// Columns: f(s[i], t[j]) from the intermediate column j.
	col := make([]float64, m)
	for j := range ty {
		for i := 0; i < m; i++ {
			col[i] = tmp[i][j]
		}
		if err := s.method.Init(s.x[0], s.x[m-1], col); err != nil {
			return nil, fmt.Errorf("interp: column %d: %w", j, err)
		}
		for i, v := range sx {
			out[i][j] = s.method.Evaluate(v)
		}
	}
	return out, nil
}
