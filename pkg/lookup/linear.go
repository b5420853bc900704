package lookup

// Linear resolves keys by scanning every inserted entry. O(n) per search;
// the baseline every other structure is compared against.
type Linear struct {
	entries []linearEntry
}

type linearEntry struct {
	key string
	pos int
}

// NewLinear returns a scan index preallocated for n entries.
func NewLinear(n int) *Linear {
	return &Linear{entries: make([]linearEntry, 0, n)}
}

// Insert appends the entry.
func (l *Linear) Insert(key string, pos int) {
	l.entries = append(l.entries, linearEntry{key: key, pos: pos})
}

// Search scans all entries and collects the positions matching key.
func (l *Linear) Search(key string) []int {
	var out []int
	for i := range l.entries {
		if l.entries[i].key == key {
			out = append(out, l.entries[i].pos)
		}
	}
	return out
}

// Len returns the number of inserted entries.
func (l *Linear) Len() int { return len(l.entries) }
