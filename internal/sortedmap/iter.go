package sortedmap

import "iter"

// All returns the entries in ascending key order.
//
// The sequence follows the sorted list's next links and must not be used
// across a Set or Close on the same map.
func (m *Map) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if m == nil {
			return
		}
		for h := m.head; h != nilHandle; h = m.entries[h].next {
			e := &m.entries[h]
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Backward returns the entries in descending key order.
func (m *Map) Backward() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if m == nil {
			return
		}
		for h := m.tail; h != nilHandle; h = m.entries[h].prev {
			e := &m.entries[h]
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Keys returns the keys in ascending order.
func (m *Map) Keys() []string {
	out := make([]string, 0, m.Len())
	for k := range m.All() {
		out = append(out, k)
	}
	return out
}

// First returns the entry with the smallest key.
func (m *Map) First() (key, value string, ok bool) {
	if m == nil || m.head == nilHandle {
		return "", "", false
	}
	e := &m.entries[m.head]
	return e.key, e.value, true
}

// Last returns the entry with the largest key.
func (m *Map) Last() (key, value string, ok bool) {
	if m == nil || m.tail == nilHandle {
		return "", "", false
	}
	e := &m.entries[m.tail]
	return e.key, e.value, true
}
