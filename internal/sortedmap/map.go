package sortedmap

import (
	"math"

	"github.com/pkg/errors"

	"sortedhash/internal/logutil"
)

// handle indexes an entry in the map's arena. Bucket chains, the sorted
// list, and the map's head/tail all refer to entries by handle.
type handle int32

// nilHandle terminates bucket chains and both ends of the sorted list.
const nilHandle handle = -1

// maxEntries is the largest arena a handle can address.
var maxEntries = math.MaxInt32

// ErrAllocation is returned when a new entry cannot be allocated. The map
// is left unchanged.
var ErrAllocation = errors.New("cannot allocate entry")

// entry is one key/value pair. It sits in exactly one bucket chain and
// exactly once in the sorted list.
type entry struct {
	key   string
	value string

	chain handle // next entry in the same bucket, most recent first

	prev handle // sorted list
	next handle
}

// Map is a separate-chaining hash map whose entries are also threaded,
// in ascending byte-wise key order, through a doubly-linked list.
//
// The bucket array is sized once by New and never resized. Keys cannot be
// removed; Set on an existing key replaces its value in place and leaves
// both orders untouched.
//
// Map is not safe for concurrent use. See SyncMap.
type Map struct {
	buckets []handle
	entries []entry

	head handle // smallest key, nilHandle iff empty
	tail handle // largest key, nilHandle iff empty

	closed bool

	trace func(msg string, args ...any)
}

// New allocates a map with capacity buckets.
func New(capacity int) (*Map, error) {
	if capacity < 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "capacity %d", capacity)
	}

	m := &Map{
		buckets: make([]handle, capacity),
		head:    nilHandle,
		tail:    nilHandle,
		trace:   logutil.Tracer("buckets", capacity),
	}
	for i := range m.buckets {
		m.buckets[i] = nilHandle
	}

	m.trace("sorted map created")
	return m, nil
}

// Set stores value under key, replacing the value of an existing key.
//
// A new key is pushed onto the head of its bucket chain and spliced into
// the sorted list. An existing key keeps its place in both.
func (m *Map) Set(key, value string) error {
	if m == nil {
		return errors.Wrap(ErrInvalidArgument, "nil map")
	}
	if m.closed {
		return ErrClosed
	}
	if key == "" {
		return errors.Wrap(ErrInvalidArgument, "empty key")
	}

	idx := m.bucketOf(key)
	if h := m.lookup(idx, key); h != nilHandle {
		m.entries[h].value = value
		return nil
	}

	if len(m.entries) >= maxEntries {
		return errors.Wrapf(ErrAllocation, "%d entries", len(m.entries))
	}

	h := handle(len(m.entries))
	m.entries = append(m.entries, entry{
		key:   key,
		value: value,
		chain: m.buckets[idx],
		prev:  nilHandle,
		next:  nilHandle,
	})
	m.buckets[idx] = h
	m.linkSorted(h)
	return nil
}

// SetBytes is Set for byte slices. Both slices are copied. A nil value is
// rejected; an empty, non-nil value is stored as "".
func (m *Map) SetBytes(key, value []byte) error {
	if key == nil || value == nil {
		return errors.Wrap(ErrInvalidArgument, "nil key or value")
	}
	return m.Set(string(key), string(value))
}

// Get returns the value stored under key. A missing key reports false.
//
// Get only walks the key's bucket chain.
func (m *Map) Get(key string) (string, bool) {
	if m == nil || m.closed {
		return "", false
	}

	h := m.lookup(m.bucketOf(key), key)
	if h == nilHandle {
		return "", false
	}
	return m.entries[h].value, true
}

// Len returns the number of distinct keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Cap returns the number of buckets.
func (m *Map) Cap() int {
	if m == nil {
		return 0
	}
	return len(m.buckets)
}

// Close releases every entry and the bucket array.
//
// Close is safe to call multiple times and on a nil map. After Close, Set
// returns ErrClosed, Get reports every key missing, and traversal yields
// nothing.
func (m *Map) Close() error {
	if m == nil || m.closed {
		return nil
	}

	n := len(m.entries)
	for h := m.head; h != nilHandle; {
		next := m.entries[h].next
		m.entries[h] = entry{}
		h = next
	}

	m.entries = nil
	m.buckets = nil
	m.head, m.tail = nilHandle, nilHandle
	m.closed = true

	m.trace("sorted map closed", "entries", n)
	return nil
}

func (m *Map) lookup(idx int, key string) handle {
	for h := m.buckets[idx]; h != nilHandle; h = m.entries[h].chain {
		if m.entries[h].key == key {
			return h
		}
	}
	return nilHandle
}
