// Package omap provides a minimal insertion-ordered map.
//
// The structural connectivity core requires deterministic, insertion-order
// iteration over ports, instances, interface entries, and connection lists
// (spec §5: "Determinism requires insertion-ordered maps"). Plain Go maps
// make no such guarantee, and no third-party ordered-map package appears
// anywhere in the reference corpus, so this is a narrow, generic
// implementation over the standard library rather than a borrowed one.
package omap

// Map is an insertion-ordered map from comparable keys to values V.
// The zero value is not usable; construct with New.
type Map[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// New returns an empty, ready-to-use Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{values: make(map[K]V)}
}

// Set inserts or overwrites the value for key. Insertion order is preserved
// for existing keys (overwriting a key does not move it to the end).
func (m *Map[K, V]) Set(key K, val V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = val
}

// Get returns the value for key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.values[key]
	return ok
}

// Delete removes key, if present, preserving the relative order of the rest.
func (m *Map[K, V]) Delete(key K) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order. The returned slice is owned by
// the caller and safe to mutate.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns the values in insertion order.
func (m *Map[K, V]) Values() []V {
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// Each calls fn for every entry in insertion order.
func (m *Map[K, V]) Each(fn func(K, V)) {
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}
