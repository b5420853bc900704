package lookup

// HashTable is a chained hash table with a bucket count fixed at
// construction; it never resizes. Besides lookup timing it contributes the
// collision counter to the benchmark output.
type HashTable struct {
	buckets    []*bucket
	collisions uint64
}

type bucket struct {
	key     string
	payload []int
	next    *bucket
}

// NewHashTable returns a table with nBuckets chains. nBuckets must be at
// least 1; the harness sizes it from the dataset (2n+1 by default).
func NewHashTable(nBuckets int) *HashTable {
	if nBuckets < 1 {
		nBuckets = 1
	}
	return &HashTable{buckets: make([]*bucket, nBuckets)}
}

// hashKey is a polynomial rolling hash (base 31) over the key bytes,
// reduced modulo the bucket count at every step.
func hashKey(s string, mod uint64) uint64 {
	const p = 31
	var h uint64
	for i := 0; i < len(s); i++ {
		h = (h*p + uint64(s[i])) % mod
	}
	return h
}

// Insert places pos under key. A collision is counted when the target
// bucket is occupied and its chain does not already contain this exact key.
func (h *HashTable) Insert(key string, pos int) {
	idx := hashKey(key, uint64(len(h.buckets)))
	if h.buckets[idx] == nil {
		h.buckets[idx] = &bucket{key: key, payload: []int{pos}}
		return
	}

	var tail *bucket
	for b := h.buckets[idx]; b != nil; b = b.next {
		if b.key == key {
			b.payload = append(b.payload, pos)
			return
		}
		tail = b
	}

	h.collisions++
	tail.next = &bucket{key: key, payload: []int{pos}}
}

// Search hashes key and walks the chain at its bucket.
func (h *HashTable) Search(key string) []int {
	idx := hashKey(key, uint64(len(h.buckets)))
	for b := h.buckets[idx]; b != nil; b = b.next {
		if b.key == key {
			return b.payload
		}
	}
	return nil
}

// Collisions returns the running collision count.
func (h *HashTable) Collisions() uint64 { return h.collisions }

// Buckets returns the fixed bucket count.
func (h *HashTable) Buckets() int { return len(h.buckets) }
