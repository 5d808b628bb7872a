// Package arr provides standalone helper functions for Go slices: sorting,
// de-duplication, chunking, flattening, compaction and set-like operations.
//
// All helpers are generic and operate on plain []T values; none of them
// mutate their input:
//
//	sorted := arr.Sort([]int{3, 1, 2})                // → [1 2 3]
//	chunks, _ := arr.Chunk([]int{1, 2, 3, 4, 5}, 2)   // → [[1 2] [3 4] [5]]
//	common := arr.Intersection([]int{1, 2, 2, 3}, []int{2, 3}) // → [2 2 3]
//
// # Loosely typed data
//
// [Flatten] and [CompactAny] accept []any, the shape produced by decoding
// JSON arrays. Nested slices of any element type are recognised:
//
//	flat, _ := arr.Flatten([]any{1, []any{2, []int{3, 4}}, 5}) // → [1 2 3 4 5]
//
// Nesting deeper than [MaxDepth] is rejected with [ErrTooDeep] rather than
// exhausting the stack.
package arr
