package fourier

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Plan is a reusable transform of fixed power-of-two length backed by an
// algo-fft plan. It follows the same normalization contract as [FFT] and
// [IFFT] and is intended for large or repeated transforms.
//
// A Plan holds scratch buffers and is not safe for concurrent use.
type Plan struct {
	n    int
	norm Normalization
	plan *algofft.Plan[complex128]
	src  []complex128
	dst  []complex128
}

// NewPlan prepares a transform of length n.
func NewPlan(n int, opts ...Option) (*Plan, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}
	cfg := applyOptions(opts)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("fourier: failed to create FFT plan: %w", err)
	}

	return &Plan{
		n:    n,
		norm: cfg.norm,
		plan: plan,
		src:  make([]complex128, n),
		dst:  make([]complex128, n),
	}, nil
}

// Len returns the transform length.
func (p *Plan) Len() int { return p.n }

// Forward writes the forward transform of src into dst. dst and src may alias.
func (p *Plan) Forward(dst, src []Complex) error {
	if err := p.checkLengths(dst, src); err != nil {
		return err
	}
	p.load(src)
	if err := p.plan.Forward(p.dst, p.src); err != nil {
		return fmt.Errorf("fourier: forward FFT failed: %w", err)
	}
	// algo-fft leaves the forward transform unscaled.
	p.store(dst, p.norm.forwardScale(p.n))
	return nil
}

// Inverse writes the inverse transform of src into dst. dst and src may alias.
func (p *Plan) Inverse(dst, src []Complex) error {
	if err := p.checkLengths(dst, src); err != nil {
		return err
	}
	p.load(src)
	if err := p.plan.Inverse(p.dst, p.src); err != nil {
		return fmt.Errorf("fourier: inverse FFT failed: %w", err)
	}
	// algo-fft already divides the inverse by n.
	p.store(dst, float64(p.n)*p.norm.inverseScale(p.n))
	return nil
}

func (p *Plan) checkLengths(dst, src []Complex) error {
	if len(dst) != p.n || len(src) != p.n {
		return fmt.Errorf("%w: dst=%d src=%d, plan=%d", ErrLengthMismatch, len(dst), len(src), p.n)
	}
	return nil
}

func (p *Plan) load(src []Complex) {
	for i, c := range src {
		p.src[i] = c.Complex128()
	}
}

func (p *Plan) store(dst []Complex, scale float64) {
	for i, c := range p.dst {
		dst[i] = FromComplex128(c).Scale(scale)
	}
}
