package sortedmap

// linkSorted splices h into the sorted list.
//
// h must already be in the arena and its key must not be in the list yet.
// Afterwards the list is strictly ascending, head.prev and tail.next are
// nilHandle, and head/tail are nilHandle only when the list is empty.
func (m *Map) linkSorted(h handle) {
	if m.head == nilHandle {
		m.head, m.tail = h, h
		return
	}

	at := m.successor(m.entries[h].key)
	if at == nilHandle {
		m.pushBack(h)
		return
	}
	m.insertBefore(h, at)
}

// successor returns the first entry whose key is greater than key, or
// nilHandle if key sorts after every entry.
func (m *Map) successor(key string) handle {
	// Fast path for the common append and prepend cases.
	if m.entries[m.tail].key < key {
		return nilHandle
	}
	if m.entries[m.head].key > key {
		return m.head
	}

	for h := m.head; h != nilHandle; h = m.entries[h].next {
		if m.entries[h].key > key {
			return h
		}
	}
	return nilHandle
}

func (m *Map) insertBefore(h, at handle) {
	e := &m.entries[h]
	e.next = at
	e.prev = m.entries[at].prev

	if e.prev == nilHandle {
		m.head = h
	} else {
		m.entries[e.prev].next = h
	}
	m.entries[at].prev = h
}

func (m *Map) pushBack(h handle) {
	e := &m.entries[h]
	e.prev = m.tail
	e.next = nilHandle

	m.entries[m.tail].next = h
	m.tail = h
}
