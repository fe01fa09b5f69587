package transform

import "errors"

// Sentinel errors returned by Transform operations.
var (
	// ErrNotPowerOfTwo is returned by New when the requested size is not a
	// power of two greater than or equal to 2.
	ErrNotPowerOfTwo = errors.New("transform: size must be a power of two >= 2")

	// ErrInvalidDimensions is returned when a buffer's length does not match
	// the transform size. The buffer is left untouched.
	ErrInvalidDimensions = errors.New("transform: buffer length does not match transform size")
)
