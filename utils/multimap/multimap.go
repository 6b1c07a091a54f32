// Package multimap groups values under keys, remembering key insertion order.
package multimap

// MultiMap maps a key to any number of values.
type MultiMap[K comparable, V any] struct {
	m    map[K][]V
	keys []K
}

func New[K comparable, V any]() *MultiMap[K, V] {
	return &MultiMap[K, V]{m: make(map[K][]V)}
}

// Add appends values under key.
func (mm *MultiMap[K, V]) Add(key K, values ...V) {
	if mm.m == nil {
		mm.m = make(map[K][]V)
	}
	if _, ok := mm.m[key]; !ok {
		mm.keys = append(mm.keys, key)
		mm.m[key] = nil
	}
	mm.m[key] = append(mm.m[key], values...)
}

// Get returns a copy of values stored under key.
func (mm *MultiMap[K, V]) Get(key K) []V {
	vals, ok := mm.m[key]
	if !ok {
		return nil
	}
	out := make([]V, len(vals))
	copy(out, vals)
	return out
}

// Has reports whether key was ever added.
func (mm *MultiMap[K, V]) Has(key K) bool {
	_, ok := mm.m[key]
	return ok
}

// Keys returns keys in insertion order.
func (mm *MultiMap[K, V]) Keys() []K {
	out := make([]K, len(mm.keys))
	copy(out, mm.keys)
	return out
}

// Len returns number of distinct keys.
func (mm *MultiMap[K, V]) Len() int {
	return len(mm.keys)
}

// Each calls fn for every key in insertion order until fn returns false.
func (mm *MultiMap[K, V]) Each(fn func(key K, values []V) bool) {
	for _, k := range mm.keys {
		if !fn(k, mm.m[k]) {
			return
		}
	}
}

// GroupBy puts every item under key(item), items keep their relative order.
func GroupBy[K comparable, V any](items []V, key func(V) K) *MultiMap[K, V] {
	mm := New[K, V]()
	for _, it := range items {
		mm.Add(key(it), it)
	}
	return mm
}
