package setskema

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
)

// numeric reports v as a float64 when it is any Go numeric type (or a
// json.Number). Strings are deliberately excluded; callers that want string
// coercion use toNumber.
func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// toNumber coerces v to a float64, additionally accepting numeric strings.
// NaN never counts as a number.
func toNumber(v any) (float64, bool) {
	if f, ok := numeric(v); ok {
		return f, !math.IsNaN(f)
	}
	if s, ok := v.(string); ok && s != "" {
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil && !math.IsNaN(f)
	}
	return 0, false
}

// looseEq is value-equality across the mixed types a host values mapping can
// hold: nil equals only nil, numbers compare numerically regardless of their
// concrete Go type, everything else falls back to deep equality.
func looseEq(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if fa, ok := numeric(a); ok {
		fb, ok2 := numeric(b)
		return ok2 && fa == fb
	}
	if _, ok := numeric(b); ok {
		return false
	}
	return reflect.DeepEqual(a, b)
}

// truthy mirrors the display-layer notion of a "set" value: false, zero, the
// empty string, NaN and nil are falsy; every other value, including empty
// slices and maps, is truthy.
func truthy(v any) bool {
	if v == nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	}
	if f, ok := numeric(v); ok {
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

// isEmptyValue reports emptiness for visibility and compound-rule checks:
// nil, the empty string, and zero-length arrays are empty.
func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return rv.Len() == 0
	}
	return false
}

// asSlice flattens v into []any when it is any slice or array type.
func asSlice(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
