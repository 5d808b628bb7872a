package num

import (
	"cmp"
	"fmt"

	"github.com/samber/lo"

	"github.com/hasbyte1/go-utils/internal/kind"
)

// Number is satisfied by every built-in integer and floating-point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// maxFactorial is the largest n whose factorial fits in a uint64.
const maxFactorial = 20

// Clamp restricts v to the closed interval [min, max].
// Returns [ErrInvalidRange] when min > max; the bounds are never swapped.
func Clamp[T cmp.Ordered](v, min, max T) (T, error) {
	if min > max {
		var zero T
		return zero, fmt.Errorf("%w: min %v, max %v", ErrInvalidRange, min, max)
	}
	return lo.Clamp(v, min, max), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum adds xs from left to right. The sum of no values is 0.
func Sum[T Number](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

// Average returns the arithmetic mean of xs as a float64.
// Returns [ErrEmpty] when xs is empty.
func Average[T Number](xs []T) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmpty
	}
	var total float64
	for _, x := range xs {
		total += float64(x)
	}
	return total / float64(len(xs)), nil
}

// SumAny adds a loosely typed slice such as a decoded JSON array. Every
// element must be a number of some kind; otherwise [ErrNotNumber] is
// returned along with the offending index.
func SumAny(xs []any) (float64, error) {
	var total float64
	for i, x := range xs {
		f, ok := kind.ToFloat(x)
		if !ok {
			return 0, fmt.Errorf("%w: index %d holds %T", ErrNotNumber, i, x)
		}
		total += f
	}
	return total, nil
}

// AverageAny is [Average] for loosely typed slices.
// Returns [ErrEmpty] or [ErrNotNumber] on invalid input.
func AverageAny(xs []any) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmpty
	}
	total, err := SumAny(xs)
	if err != nil {
		return 0, err
	}
	return total / float64(len(xs)), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Integers
// ─────────────────────────────────────────────────────────────────────────────

// Factorial returns n!. 0! and 1! are 1.
// Returns [ErrNegative] for n < 0 and [ErrOverflow] for n > 20, whose
// factorial does not fit in a uint64.
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrNegative, n)
	}
	if n > maxFactorial {
		return 0, fmt.Errorf("%w: %d! exceeds uint64", ErrOverflow, n)
	}
	result := uint64(1)
	for i := uint64(2); i <= uint64(n); i++ {
		result *= i
	}
	return result, nil
}

// IsPrime reports whether n is prime, using trial division by odd numbers
// up to sqrt(n).
//
// Returns false and [ErrNotPrimeCandidate] for n < 2, so invalid input is
// never mistaken for a composite number.
func IsPrime(n int) (bool, error) {
	if n <= 1 {
		return false, fmt.Errorf("%w: got %d", ErrNotPrimeCandidate, n)
	}
	if n == 2 {
		return true, nil
	}
	if n%2 == 0 {
		return false, nil
	}
	for i := 3; i <= n/i; i += 2 {
		if n%i == 0 {
			return false, nil
		}
	}
	return true, nil
}
