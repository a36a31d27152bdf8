package resample

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-interp/dsp/core"
	"github.com/cwbudde/algo-interp/dsp/interp"
)

var (
	// ErrInvalidSize indicates an empty, ragged or too small plane, or a
	// non-positive target size.
	ErrInvalidSize = errors.New("resample: invalid size")
	// ErrInvalidFactor indicates a non-positive or non-finite scale factor.
	ErrInvalidFactor = errors.New("resample: invalid factor")
)

type config struct {
	kind   interp.Kind
	clamp  bool
	lo, hi float64
}

// Option configures rescaling.
type Option func(*config)

func defaultConfig() config {
	return config{kind: interp.KindLinear}
}

// WithMethod selects the interpolation method. The default is
// [interp.KindLinear].
func WithMethod(k interp.Kind) Option {
	return func(cfg *config) {
		cfg.kind = k
	}
}

// WithClamp limits every output sample to [lo, hi]. Useful for methods that
// overshoot, such as splines and Newton polynomials.
func WithClamp(lo, hi float64) Option {
	return func(cfg *config) {
		cfg.clamp = true
		cfg.lo, cfg.hi = lo, hi
	}
}

// PixelCenters returns the n cell centres (i + 0.5)/n on [0, 1].
func PixelCenters(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	dx := 1 / float64(n)
	for i := range out {
		out[i] = (float64(i) + 0.5) * dx
	}
	return out
}

// Scale resamples plane (width×height, at least 2×2) to width×height.
func Scale(plane [][]float64, width, height int, opts ...Option) ([][]float64, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: target %d×%d", ErrInvalidSize, width, height)
	}
	if err := validatePlane(plane); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	m, err := interp.New(cfg.kind)
	if err != nil {
		return nil, fmt.Errorf("resample: %w", err)
	}
	sep := interp.NewSeparable(m)
	if err := sep.Init(PixelCenters(len(plane)), PixelCenters(len(plane[0])), plane); err != nil {
		return nil, fmt.Errorf("resample: %w", err)
	}

	out, err := sep.Evaluate(PixelCenters(width), PixelCenters(height))
	if err != nil {
		return nil, fmt.Errorf("resample: %w", err)
	}
	if cfg.clamp {
		for _, row := range out {
			for j, v := range row {
				row[j] = core.Clamp(v, cfg.lo, cfg.hi)
			}
		}
	}
	return out, nil
}

// ScaleFactor resamples plane by f in both directions. Target sizes are
// rounded to the nearest integer and never drop below 1.
func ScaleFactor(plane [][]float64, f float64, opts ...Option) ([][]float64, error) {
	if !(f > 0) || !core.IsFinite(f) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFactor, f)
	}
	if err := validatePlane(plane); err != nil {
		return nil, err
	}
	w := max(1, int(math.Round(float64(len(plane))*f)))
	h := max(1, int(math.Round(float64(len(plane[0]))*f)))
	return Scale(plane, w, h, opts...)
}

func validatePlane(plane [][]float64) error {
	if len(plane) < 2 {
		return fmt.Errorf("%w: width %d", ErrInvalidSize, len(plane))
	}
	h := len(plane[0])
	if h < 2 {
		return fmt.Errorf("%w: height %d", ErrInvalidSize, h)
	}
	for i, col := range plane {
		if len(col) != h {
			return fmt.Errorf("%w: column %d has %d samples, want %d", ErrInvalidSize, i, len(col), h)
		}
	}
	return nil
}
