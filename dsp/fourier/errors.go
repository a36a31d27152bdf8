package fourier

import "errors"

var (
	// ErrNotPowerOfTwo indicates a transform length that is not 2^k.
	ErrNotPowerOfTwo = errors.New("fourier: length must be a power of two")
	// ErrLengthMismatch indicates dst/src slices that do not match the plan size.
	ErrLengthMismatch = errors.New("fourier: length mismatch")
)
