package docfields

import (
	"iter"

	"gopkg.in/yaml.v3"
)

// Entry is a single key/value pair of an OrderedMap.
type Entry[V any] struct {
	Key   string
	Value V
}

// OrderedMap is an insertion-ordered associative container. Iteration
// order is the order in which keys were first set, which keeps rendered
// output independent of Go map iteration.
//
// The zero value is ready to use. A nil *OrderedMap reads as empty.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrderedMap returns a map holding entries in the given order. A
// repeated key keeps its first position and its last value.
func NewOrderedMap[V any](entries ...Entry[V]) *OrderedMap[V] {
	m := &OrderedMap[V]{}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}

	return m
}

// Set stores value under key. Overwriting an existing key keeps its
// original position. Set returns m so calls can be chained.
func (m *OrderedMap[V]) Set(key string, value V) *OrderedMap[V] {
	if m.values == nil {
		m.values = make(map[string]V)
	}

	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value

	return m
}

// Get returns the value stored under key.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}

	v, ok := m.values[key]

	return v, ok
}

// Has reports whether key is present.
func (m *OrderedMap[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *OrderedMap[V]) Keys() []string {
	if m == nil {
		return nil
	}

	out := make([]string, len(m.keys))
	copy(out, m.keys)

	return out
}

// Entries returns the entries in insertion order.
func (m *OrderedMap[V]) Entries() []Entry[V] {
	if m == nil {
		return nil
	}

	out := make([]Entry[V], 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, Entry[V]{Key: k, Value: m.values[k]})
	}

	return out
}

// All iterates over the entries in insertion order.
func (m *OrderedMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil {
			return
		}

		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of m, or nil when m is nil.
func (m *OrderedMap[V]) Clone() *OrderedMap[V] {
	if m == nil {
		return nil
	}

	return NewOrderedMap(m.Entries()...)
}

// MarshalYAML encodes the map as a YAML mapping in insertion order.
func (m *OrderedMap[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for k, v := range m.All() {
		var value yaml.Node
		if err := value.Encode(v); err != nil {
			return nil, err
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&value,
		)
	}

	return node, nil
}
