// Package kind classifies dynamically typed values (any) into the shapes the
// public packages care about: sequences, records, numbers and "falsy" values.
//
// It backs the helpers that accept loosely typed data such as decoded JSON,
// where a []any may hold nested []any and map[string]any values.
package kind

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// MaxDepth bounds every nested traversal (flattening, deep merge, deep
// equality). Inputs nested deeper than this are rejected with an error.
const MaxDepth = 512

// IsSlice reports whether v is a Go slice or array. Strings are not
// sequences.
func IsSlice(v any) bool {
	if v == nil {
		return false
	}
	switch v.(type) {
	case []any:
		return true
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// IsRecord reports whether v is a non-nil map keyed by strings.
// A nil map behaves like a null value and is not a record.
func IsRecord(v any) bool {
	if v == nil {
		return false
	}
	if m, ok := v.(map[string]any); ok {
		return m != nil
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String && !rv.IsNil()
}

// AsRecord returns v as a map[string]any. Other string-keyed map types are
// copied into a fresh map[string]any; map[string]any values are returned as
// is. The second result is false when v is not a record.
func AsRecord(v any) (map[string]any, bool) {
	if !IsRecord(v) {
		return nil, false
	}
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// IsNumber reports whether v holds any integer or floating-point kind.
func IsNumber(v any) bool {
	_, ok := ToFloat(v)
	return ok
}

// ToFloat converts a numeric value of any kind to float64.
func ToFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// IsFalsy reports whether v counts as "falsy": nil, a nil pointer, map,
// func or channel, false, numeric zero of either sign, or the empty string.
//
// NaN, negative numbers, non-empty strings, empty maps and all slices are
// truthy. A nil slice is an empty sequence (see [IsSlice]), while a nil map
// is null (see [IsRecord]).
func IsFalsy(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.String:
		return rv.Len() == 0
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	if f, ok := ToFloat(v); ok {
		return f == 0
	}
	return false
}

// StrictEqual compares a and b without looking inside composite values.
//
// Numbers of any kind are compared by value, so int(1) equals float64(1)
// and NaN never equals itself. Other comparable values are compared with
// == and must share a type. Slices, maps and funcs are equal only when they
// are the same reference: same type, same data pointer and same length.
func StrictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		fa, aok := ToFloat(a)
		fb, bok := ToFloat(b)
		return aok && bok && fa == fb
	}
	if ta.Comparable() {
		// Arrays and structs may still hold uncomparable fields behind
		// interfaces; == panics on those.
		if safe, eq := tryEqual(a, b); safe {
			return eq
		}
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch ta.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map:
		return va.Pointer() == vb.Pointer()
	case reflect.Func:
		return va.IsNil() && vb.IsNil()
	}
	return false
}

func tryEqual(a, b any) (safe, eq bool) {
	defer func() {
		if recover() != nil {
			safe, eq = false, false
		}
	}()
	return true, a == b
}

// String renders v the way a map key derived from a value is spelled:
// nil becomes "null" and floats with magnitude in [1e-6, 1e21) use plain
// decimal, so a decoded JSON 1000000 renders as "1000000" rather than
// "1e+06".
// Everything else uses fmt's default formatting.
func String(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case float64:
		return formatFloat(x, 64)
	case float32:
		return formatFloat(float64(x), 32)
	}
	return fmt.Sprint(v)
}

// formatFloat spells f in plain decimal when 1e-6 <= |f| < 1e21 and in
// exponent form ("1e-7", "1.5e+21") otherwise.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, bitSize), "e")
	return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}
