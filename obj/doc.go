// Package obj provides helpers for shaping and comparing records: string-keyed
// maps such as the map[string]any values produced by decoding JSON objects.
//
//	m := map[string]any{"a": 1, "b": map[string]any{"x": 1}}
//
//	obj.Merge(m, map[string]any{"b": map[string]any{"y": 2}})
//	// → {"a": 1, "b": {"y": 2}}
//	obj.DeepMerge(m, map[string]any{"b": map[string]any{"y": 2}})
//	// → {"a": 1, "b": {"x": 1, "y": 2}}
//	obj.Pick(m, "a")   // → {"a": 1}
//	obj.Omit(m, "a")   // → {"b": {"x": 1}}
//
// Every helper returns a new map; inputs are never modified.
//
// # Records
//
// A record is any non-nil map keyed by strings (see [IsObj]). Nested
// records of other map types, such as map[string]int, are recognised and
// copied into map[string]any when merged. A nil map behaves like a null
// value: it is not a record.
//
// Slices nested inside records are never merged element-wise and compare
// by identity in [DeepEqual].
package obj
