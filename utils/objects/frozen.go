package objects

import (
	"errors"
	"fmt"
	"slices"
)

// ErrFrozen is returned on any attempt to modify a frozen object.
var ErrFrozen = errors.New("object is frozen")

// Frozen is a read-only view of a map. It holds a private deep copy, so later
// changes to the original map are not visible either.
type Frozen struct {
	m map[string]any
}

// Freeze returns read-only view of m.
func Freeze(m map[string]any) Frozen {
	return Frozen{m: DeepCopy(m)}
}

// Get returns value stored under key. Nested maps are returned frozen and
// nested slices as copies.
func (f Frozen) Get(key string) (any, bool) {
	v, ok := f.m[key]
	if !ok {
		return nil, false
	}
	switch t := v.(type) {
	case map[string]any:
		return Frozen{m: t}, true
	case []any:
		return deepCopyValue(t), true
	}
	return v, true
}

// Keys returns sorted keys.
func (f Frozen) Keys() []string {
	keys := make([]string, 0, len(f.m))
	for k := range f.m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (f Frozen) Len() int {
	return len(f.m)
}

// Set always fails.
func (f Frozen) Set(key string, _ any) error {
	return fmt.Errorf("set %q: %w", key, ErrFrozen)
}

// Delete always fails.
func (f Frozen) Delete(key string) error {
	return fmt.Errorf("delete %q: %w", key, ErrFrozen)
}

// Thaw returns a modifiable deep copy.
func (f Frozen) Thaw() map[string]any {
	return DeepCopy(f.m)
}
