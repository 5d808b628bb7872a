// Package random provides random selection and shuffling helpers for slices
// and strings, inspired by the rand helpers found in most scripting
// standard libraries.
//
// # Sources
//
// Every helper draws from a [Source], an abstraction over "next float in
// [0, 1)". The plain forms use [Default], which is backed by the
// math/rand/v2 global generator. The ...From forms take an explicit
// source so tests and fixtures can be reproduced:
//
//	r := random.NewSeeded(42)
//	pick, _ := random.ElementFrom(r, []string{"a", "b", "c"})
//	n, _ := random.IntRangeFrom(r, 1, 6)
//
// [NewKeyed] derives a ChaCha20 keystream from an arbitrary byte seed. Its
// output is fixed by RFC 8439 and does not change between Go releases.
//
// # Mutation
//
// [Shuffle] permutes its argument in place and returns the same slice.
// [ShuffleString] returns a new string.
package random
