package num

import "errors"

// Sentinel errors returned by numeric helpers.
var (
	// ErrInvalidRange is returned when min is greater than max.
	ErrInvalidRange = errors.New("num: min must not be greater than max")

	// ErrEmpty is returned when an average of no values is requested.
	ErrEmpty = errors.New("num: at least one value is required")

	// ErrNotNumber is returned when a loosely typed slice holds a value that
	// is not a number.
	ErrNotNumber = errors.New("num: value is not a number")

	// ErrNegative is returned by Factorial for negative input.
	ErrNegative = errors.New("num: value must not be negative")

	// ErrOverflow is returned when a result does not fit in the return type.
	ErrOverflow = errors.New("num: result overflows")

	// ErrNotPrimeCandidate is returned by IsPrime for integers below 2.
	ErrNotPrimeCandidate = errors.New("num: primality is defined for integers greater than 1")
)
