// Package objects has small helpers for map based documents: copying,
// merging, comparing, freezing and JSON round trips.
package objects

import (
	"maps"
	"reflect"
)

// Copy returns a shallow copy of m. Nested maps and slices are shared.
func Copy(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	return maps.Clone(m)
}

// DeepCopy returns a copy of m with nested maps and slices copied as well.
func DeepCopy(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return DeepCopy(t)
	case []any:
		if t == nil {
			return t
		}
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = deepCopyValue(e)
		}
		return out
	default:
		return v
	}
}

// Merge combines objs left to right into a new map, later keys win. Inputs
// are not modified, nil inputs are skipped.
func Merge(objs ...map[string]any) map[string]any {
	size := 0
	for _, o := range objs {
		size += len(o)
	}
	out := make(map[string]any, size)
	for _, o := range objs {
		maps.Copy(out, o)
	}
	return out
}

// Equal reports whether a and b have the same keys with equal values. Values
// are compared one level deep: comparable values with ==, everything else
// (including structs whose interface fields hold slices or maps) with
// reflect.DeepEqual.
func Equal(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !equalValue(av, bv) {
			return false
		}
	}
	return true
}

func equalValue(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	// type may be comparable while dynamic value is not: struct{ V any }
	// holding a slice panics on ==
	if reflect.ValueOf(a).Comparable() && reflect.ValueOf(b).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
