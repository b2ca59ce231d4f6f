package cubeviz

import "errors"

// Sentinel errors for the cubeviz package.
var (
	// ErrBadSideLength is returned when constructing a cube with a
	// non-positive side length.
	ErrBadSideLength = errors.New("cubeviz: side length must be at least 1")

	// ErrDimensionMismatch is returned when externally supplied layers do
	// not form a perfect NxNxN cube.
	ErrDimensionMismatch = errors.New("cubeviz: layers do not form an NxNxN cube")

	// ErrDepthOutOfRange is returned by Rotate for a move whose depth is
	// outside [0, N). Depths are never clamped or wrapped.
	ErrDepthOutOfRange = errors.New("cubeviz: move depth out of range")

	// ErrInvalidNotation is returned when parsing a malformed move string.
	ErrInvalidNotation = errors.New("cubeviz: invalid move notation")
)
