package interp

import "errors"

var (
	// ErrInvalidDomain indicates a ≥ b or a non-finite interval bound.
	ErrInvalidDomain = errors.New("interp: invalid domain")
	// ErrTooFewSamples indicates fewer than two samples on an axis.
	ErrTooFewSamples = errors.New("interp: at least two samples required")
	// ErrLengthMismatch indicates grid axes and values of inconsistent shape.
	ErrLengthMismatch = errors.New("interp: length mismatch")
	// ErrUnknownKind indicates an unsupported method kind or name.
	ErrUnknownKind = errors.New("interp: unknown method")
	// ErrNotInitialized indicates Evaluate on a Separable without Init.
	ErrNotInitialized = errors.New("interp: not initialized")
)
