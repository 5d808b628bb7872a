package arr

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/samber/lo"

	"github.com/hasbyte1/go-utils/internal/kind"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns an ascending copy of items. The input is not modified.
//
// The algorithm is quicksort with the last element of each range as the
// pivot: elements strictly less than the pivot go left, all others go
// right. It is not stable.
func Sort[T cmp.Ordered](items []T) []T {
	return SortFunc(items, func(a, b T) bool { return a < b })
}

// SortFunc returns a copy of items ordered by less, using the same
// quicksort as [Sort].
func SortFunc[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)

	// Pending [lo, hi) ranges replace recursion.
	type span struct{ lo, hi int }
	stack := []span{{0, len(out)}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.hi-s.lo <= 1 {
			continue
		}
		p := partition(out[s.lo:s.hi], less) + s.lo
		left, right := span{s.lo, p}, span{p + 1, s.hi}
		// Push the larger side first so the stack stays logarithmic.
		if left.hi-left.lo > right.hi-right.lo {
			stack = append(stack, left, right)
		} else {
			stack = append(stack, right, left)
		}
	}
	return out
}

// partition moves elements less than the last one to the front and places
// the pivot right after them, returning its final index.
func partition[T any](items []T, less func(a, b T) bool) int {
	last := len(items) - 1
	pivot := items[last]
	i := 0
	for j := 0; j < last; j++ {
		if less(items[j], pivot) {
			items[i], items[j] = items[j], items[i]
			i++
		}
	}
	items[i], items[last] = items[last], items[i]
	return i
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Unique returns a new slice with duplicates removed, preserving the first
// occurrence of each value.
func Unique[T comparable](items []T) []T {
	return lo.Uniq(items)
}

// Difference returns the elements of a that do not appear in b, in a's
// order. Duplicates in a are kept.
func Difference[T comparable](a, b []T) []T {
	set := toSet(b)
	out := make([]T, 0)
	for _, item := range a {
		if _, found := set[item]; !found {
			out = append(out, item)
		}
	}
	return out
}

// Intersection returns the elements of a that also appear in b, in a's
// order. Duplicates in a are kept.
func Intersection[T comparable](a, b []T) []T {
	set := toSet(b)
	out := make([]T, 0)
	for _, item := range a {
		if _, found := set[item]; found {
			out = append(out, item)
		}
	}
	return out
}

func toSet[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size.
// The last group may contain fewer than size elements. Each group is a
// copy. Returns [ErrInvalidChunkSize] when size <= 0.
func Chunk[T any](items []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkSize, size)
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := min(i+size, len(items))
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

// Flatten recursively flattens nested slices into a single level, in
// left-to-right order. Any slice or array kind counts as nesting; every
// other value is copied through unchanged.
//
//	Flatten([]any{1, []any{2, []any{3, []any{4}}, 5}}) // → [1 2 3 4 5]
//
// Returns [ErrTooDeep] when nesting exceeds [MaxDepth].
func Flatten(items []any) ([]any, error) {
	type frame struct {
		v reflect.Value
		i int
	}
	out := make([]any, 0, len(items))
	stack := []frame{{v: reflect.ValueOf(items)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.i == top.v.Len() {
			stack = stack[:len(stack)-1]
			continue
		}
		elem := top.v.Index(top.i).Interface()
		top.i++
		if !kind.IsSlice(elem) {
			out = append(out, elem)
			continue
		}
		if len(stack) >= MaxDepth {
			return nil, fmt.Errorf("%w (%d)", ErrTooDeep, MaxDepth)
		}
		stack = append(stack, frame{v: reflect.ValueOf(elem)})
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Compaction
// ─────────────────────────────────────────────────────────────────────────────

// Compact returns a new slice without the zero values of T (0, "", false,
// nil pointers). NaN is not a zero value and is kept.
func Compact[T comparable](items []T) []T {
	return lo.Compact(items)
}

// CompactAny returns a new slice without falsy values: nil, nil pointers,
// false, numeric zero and "". Negative numbers, NaN, non-empty strings and
// empty slices or maps are kept.
func CompactAny(items []any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		if !kind.IsFalsy(item) {
			out = append(out, item)
		}
	}
	return out
}
