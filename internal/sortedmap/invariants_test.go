package sortedmap

import "github.com/pkg/errors"

// checkInvariants verifies that every entry is in exactly one bucket, in
// the bucket its key hashes to, and exactly once in a strictly ascending
// sorted list bounded by head and tail.
func checkInvariants(m *Map) error {
	n := len(m.entries)
	if (m.head == nilHandle) != (n == 0) || (m.tail == nilHandle) != (n == 0) {
		return errors.Errorf("head=%d tail=%d with %d entries", m.head, m.tail, n)
	}

	seen := make([]int, n)
	for idx, h := range m.buckets {
		for ; h != nilHandle; h = m.entries[h].chain {
			seen[h]++
			if got := m.bucketOf(m.entries[h].key); got != idx {
				return errors.Errorf("key %q in bucket %d, hashes to %d", m.entries[h].key, idx, got)
			}
		}
	}
	for h, c := range seen {
		if c != 1 {
			return errors.Errorf("entry %d appears in %d bucket chains", h, c)
		}
	}

	heads, tails := 0, 0
	for _, e := range m.entries {
		if e.prev == nilHandle {
			heads++
		}
		if e.next == nilHandle {
			tails++
		}
	}
	if n > 0 && (heads != 1 || tails != 1) {
		return errors.Errorf("%d entries without prev, %d without next", heads, tails)
	}

	count := 0
	prev := nilHandle
	for h := m.head; h != nilHandle; h = m.entries[h].next {
		if m.entries[h].prev != prev {
			return errors.Errorf("entry %q has prev %d, want %d", m.entries[h].key, m.entries[h].prev, prev)
		}
		if prev != nilHandle && m.entries[prev].key >= m.entries[h].key {
			return errors.Errorf("keys out of order: %q before %q", m.entries[prev].key, m.entries[h].key)
		}
		prev = h
		count++
		if count > n {
			return errors.New("sorted list has a cycle")
		}
	}
	if prev != m.tail {
		return errors.Errorf("forward walk ends at %d, tail is %d", prev, m.tail)
	}
	if count != n {
		return errors.Errorf("sorted list has %d entries, arena has %d", count, n)
	}
	return nil
}
