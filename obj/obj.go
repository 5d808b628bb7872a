package obj

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/hasbyte1/go-utils/internal/kind"
)

// IsObj reports whether v is a record: a non-nil map keyed by strings.
// Slices, nil and scalar values are not records.
func IsObj(v any) bool {
	return kind.IsRecord(v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Merging
// ─────────────────────────────────────────────────────────────────────────────

// MergeOptions configures [MergeWith].
type MergeOptions struct {
	// Deep merges nested records key by key instead of letting the source
	// record replace the target one.
	Deep bool

	// MaxDepth bounds record nesting in deep mode.
	// Default: [MaxDepth]. Values <= 0 select the default.
	MaxDepth int
}

// DefaultMergeOptions returns shallow MergeOptions with the default depth
// bound.
func DefaultMergeOptions() MergeOptions {
	return MergeOptions{MaxDepth: MaxDepth}
}

// Merge returns a new map holding dst's keys overwritten and extended by
// src's keys. Nested values are shared, not copied.
func Merge(dst, src map[string]any) map[string]any {
	out := make(map[string]any, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, v := range src {
		out[k] = v
	}
	return out
}

// DeepMerge is [Merge] that recurses into records.
//
// When a src value is a record it is merged into the dst value for the
// same key if that is a record too, and into an empty record otherwise.
// Every other src value, slices included, replaces the dst value outright.
// Returns [ErrTooDeep] past [MaxDepth] levels.
func DeepMerge(dst, src map[string]any) (map[string]any, error) {
	return MergeWith(dst, src, MergeOptions{Deep: true})
}

// MergeWith merges src into a copy of dst as configured by opts.
func MergeWith(dst, src map[string]any, opts MergeOptions) (map[string]any, error) {
	if !opts.Deep {
		return Merge(dst, src), nil
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = MaxDepth
	}
	return deepMerge(dst, src, 1, opts.MaxDepth)
}

func deepMerge(dst, src map[string]any, depth, limit int) (map[string]any, error) {
	if depth > limit {
		return nil, fmt.Errorf("%w (%d)", ErrTooDeep, limit)
	}
	out := make(map[string]any, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, srcVal := range src {
		srcRec, ok := kind.AsRecord(srcVal)
		if !ok {
			out[k] = srcVal
			continue
		}
		dstRec, _ := kind.AsRecord(out[k])
		merged, err := deepMerge(dstRec, srcRec, depth+1, limit)
		if err != nil {
			return nil, err
		}
		out[k] = merged
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Shaping
// ─────────────────────────────────────────────────────────────────────────────

// Pick returns a new map containing only the listed keys.
// Keys missing from m are skipped.
func Pick[V any](m map[string]V, keys ...string) map[string]V {
	return lo.PickByKeys(m, keys)
}

// Omit returns a new map holding every key of m except the listed ones.
func Omit[V any](m map[string]V, keys ...string) map[string]V {
	return lo.OmitByKeys(m, keys)
}

// Invert returns a new map whose keys are m's values rendered as strings
// and whose values are m's keys. nil values render as "null"; floats
// render in plain decimal unless tiny or huge (1000000.0 → "1000000",
// 1e-7 → "1e-7").
//
// When several keys hold values with the same rendering, the key that
// sorts last wins:
//
//	Invert(map[string]any{"a": 1, "b": 1, "c": 2}) // → {"1": "b", "2": "c"}
func Invert[V any](m map[string]V) map[string]string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	out := make(map[string]string, len(m))
	for _, k := range keys {
		out[kind.String(m[k])] = k
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

// DeepEqual reports whether a and b hold the same keys with equal values.
//
// Values that are records on both sides are compared recursively. All
// other values are compared strictly: scalars by value, with numbers of
// different kinds compared numerically so 1 equals a decoded JSON 1.0 (NaN
// never equals itself), and slices and maps that are not records by
// identity. Returns [ErrTooDeep] past [MaxDepth] levels.
func DeepEqual(a, b map[string]any) (bool, error) {
	return deepEqual(a, b, 1)
}

func deepEqual(a, b map[string]any, depth int) (bool, error) {
	if depth > MaxDepth {
		return false, fmt.Errorf("%w (%d)", ErrTooDeep, MaxDepth)
	}
	if len(a) != len(b) {
		return false, nil
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok {
			return false, nil
		}
		ar, aIsRec := kind.AsRecord(av)
		br, bIsRec := kind.AsRecord(bv)
		if aIsRec && bIsRec {
			eq, err := deepEqual(ar, br, depth+1)
			if err != nil || !eq {
				return false, err
			}
			continue
		}
		if !kind.StrictEqual(av, bv) {
			return false, nil
		}
	}
	return true, nil
}
