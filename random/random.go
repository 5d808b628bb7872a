package random

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Selection
// ─────────────────────────────────────────────────────────────────────────────

// Element returns a uniformly chosen element of items using [Default].
// Returns the zero value and [ErrEmpty] when items is empty.
func Element[T any](items []T) (T, error) {
	return ElementFrom(nil, items)
}

// ElementFrom is [Element] drawing from src. A nil src means [Default].
func ElementFrom[T any](src Source, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmpty
	}
	return items[index(orDefault(src), len(items))], nil
}

// IntRange returns a uniformly chosen integer in the closed interval
// [min, max] using [Default]. Returns [ErrInvalidRange] when min > max.
//
//	IntRange(1, 6)  // a die roll
//	IntRange(5, 5)  // always 5
func IntRange(min, max int) (int, error) {
	return IntRangeFrom(nil, min, max)
}

// IntRangeFrom is [IntRange] drawing from src. A nil src means [Default].
func IntRangeFrom(src Source, min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("%w: min %d, max %d", ErrInvalidRange, min, max)
	}
	f := orDefault(src).Float64()
	// span wraps to 0 when [min, max] covers every 64-bit int.
	span := uint64(uint(max-min)) + 1
	if span == 0 {
		return min + int(uint64(f*(1<<64))), nil
	}
	off := uint64(f * float64(span))
	if off >= span {
		off = span - 1
	}
	return min + int(off), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Shuffling
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle randomly permutes items in place using [Default] and returns the
// same slice. Every permutation is equally likely.
func Shuffle[T any](items []T) []T {
	return ShuffleFrom(nil, items)
}

// ShuffleFrom is [Shuffle] drawing from src. A nil src means [Default].
//
// The permutation is a backward Fisher–Yates pass: for i from len-1 down
// to 1, items[i] is swapped with items[j] for a uniform j in [0, i].
func ShuffleFrom[T any](src Source, items []T) []T {
	src = orDefault(src)
	for i := len(items) - 1; i > 0; i-- {
		j := index(src, i+1)
		items[i], items[j] = items[j], items[i]
	}
	return items
}

// ShuffleString returns s with its runes randomly permuted using [Default].
// s itself is left untouched.
func ShuffleString(s string) string {
	return ShuffleStringFrom(nil, s)
}

// ShuffleStringFrom is [ShuffleString] drawing from src. A nil src means
// [Default].
func ShuffleStringFrom(src Source, s string) string {
	return string(ShuffleFrom(src, []rune(s)))
}
