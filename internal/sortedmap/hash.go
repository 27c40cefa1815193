package sortedmap

// djb2Seed is the initial accumulator of the djb2 hash.
const djb2Seed uint64 = 5381

// Hash returns the djb2 hash of key: acc = acc*33 + b for every byte b,
// starting from 5381.
//
// The accumulator is a uint64 and overflow wraps modulo 2^64. Bucket
// placement depends on that wraparound, so it must not be widened or
// checked.
func Hash(key string) uint64 {
	h := djb2Seed
	for i := 0; i < len(key); i++ {
		h = h<<5 + h + uint64(key[i])
	}
	return h
}

func (m *Map) bucketOf(key string) int {
	return int(Hash(key) % uint64(len(m.buckets)))
}
