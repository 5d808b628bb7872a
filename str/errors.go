package str

import "errors"

// Sentinel errors returned by string helpers.
var (
	// ErrInvalidLength is returned when a target length is negative.
	ErrInvalidLength = errors.New("str: length must not be negative")

	// ErrInvalidPadChar is returned by Pad when the fill is not exactly one
	// character.
	ErrInvalidPadChar = errors.New("str: pad fill must be a single character")
)
