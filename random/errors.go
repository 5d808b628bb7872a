package random

import "errors"

// Sentinel errors returned by the random helpers.
var (
	// ErrEmpty is returned when an element is requested from an empty slice.
	ErrEmpty = errors.New("random: slice must not be empty")

	// ErrInvalidRange is returned when min is greater than max.
	ErrInvalidRange = errors.New("random: min must not be greater than max")
)
