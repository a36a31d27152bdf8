package fourier

import (
	"fmt"
	"math"
)

// Normalization selects where the 1/n factor of a transform pair is applied.
type Normalization int

const (
	// NormForward scales the forward transform by 1/n; the inverse is unscaled.
	NormForward Normalization = iota
	// NormBackward leaves the forward transform unscaled; the inverse is scaled by 1/n.
	NormBackward
	// NormOrtho scales both directions by 1/√n.
	NormOrtho
)

// String returns the lower-case mode name.
func (n Normalization) String() string {
	switch n {
	case NormForward:
		return "forward"
	case NormBackward:
		return "backward"
	case NormOrtho:
		return "ortho"
	default:
		return fmt.Sprintf("Normalization(%d)", int(n))
	}
}

// ParseNormalization maps "forward", "backward" or "ortho" to a mode.
func ParseNormalization(s string) (Normalization, error) {
	switch s {
	case "forward":
		return NormForward, nil
	case "backward":
		return NormBackward, nil
	case "ortho":
		return NormOrtho, nil
	default:
		return 0, fmt.Errorf("fourier: unknown normalization %q", s)
	}
}

// forwardScale is the factor applied to an unscaled forward transform of length n.
func (n Normalization) forwardScale(size int) float64 {
	switch n {
	case NormBackward:
		return 1
	case NormOrtho:
		return 1 / math.Sqrt(float64(size))
	default:
		return 1 / float64(size)
	}
}

// inverseScale is the factor applied to an unscaled inverse transform of length n.
func (n Normalization) inverseScale(size int) float64 {
	switch n {
	case NormBackward:
		return 1 / float64(size)
	case NormOrtho:
		return 1 / math.Sqrt(float64(size))
	default:
		return 1
	}
}

// Option configures a transform.
type Option func(*config)

type config struct {
	norm Normalization
}

func defaultConfig() config {
	return config{norm: NormForward}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithNormalization selects the normalization convention. Unknown values are
// ignored.
func WithNormalization(n Normalization) Option {
	return func(cfg *config) {
		if n >= NormForward && n <= NormOrtho {
			cfg.norm = n
		}
	}
}
