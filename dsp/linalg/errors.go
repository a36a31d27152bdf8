package linalg

import "errors"

var (
	// ErrInvalidDimension indicates a matrix dimension < 1.
	ErrInvalidDimension = errors.New("linalg: dimension must be >= 1")
	// ErrLengthMismatch indicates a vector whose length does not match the matrix.
	ErrLengthMismatch = errors.New("linalg: vector length mismatch")
	// ErrIndexOutOfRange indicates an element index outside a band.
	ErrIndexOutOfRange = errors.New("linalg: index out of range")
)
