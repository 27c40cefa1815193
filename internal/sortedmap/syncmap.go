package sortedmap

import (
	"iter"
	"sync"
)

// SyncMap is a concurrency-safe Map.
//
// A single RWMutex guards the bucket array and the sorted list together,
// so a reader never sees an entry that is linked into its bucket but not
// yet into the sorted list, or the reverse.
type SyncMap struct {
	mu sync.RWMutex
	m  *Map
}

// pair is a snapshot of one entry, taken under the read lock.
type pair struct {
	key   string
	value string
}

// NewSync constructs a SyncMap with capacity buckets.
func NewSync(capacity int) (*SyncMap, error) {
	m, err := New(capacity)
	if err != nil {
		return nil, err
	}
	return &SyncMap{m: m}, nil
}

// Close releases the underlying map.
//
// Close is safe to call multiple times and on a nil SyncMap.
func (s *SyncMap) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Close()
}

// Set writes or overwrites a key under the write lock.
func (s *SyncMap) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Set(key, value)
}

// SetBytes is Set for byte slices.
func (s *SyncMap) SetBytes(key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.SetBytes(key, value)
}

// Get reads a key under the read lock.
func (s *SyncMap) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Get(key)
}

// Len returns the number of distinct keys.
func (s *SyncMap) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Len()
}

// Keys returns the keys in ascending order.
func (s *SyncMap) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Keys()
}

// String renders the map in ascending key order.
func (s *SyncMap) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.String()
}

// RenderReverse renders the map in descending key order.
func (s *SyncMap) RenderReverse() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.RenderReverse()
}

// All returns a snapshot of the entries in ascending key order.
//
// The snapshot is copied under the read lock and yielded without it, so
// the loop body may call back into s.
func (s *SyncMap) All() iter.Seq2[string, string] {
	return replay(s.snapshot(false))
}

// Backward returns a snapshot of the entries in descending key order.
func (s *SyncMap) Backward() iter.Seq2[string, string] {
	return replay(s.snapshot(true))
}

func (s *SyncMap) snapshot(reverse bool) []pair {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seq := s.m.All()
	if reverse {
		seq = s.m.Backward()
	}

	out := make([]pair, 0, s.m.Len())
	for k, v := range seq {
		out = append(out, pair{key: k, value: v})
	}
	return out
}

func replay(pairs []pair) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, p := range pairs {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}
