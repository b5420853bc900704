package lookup

import "github.com/google/btree"

// btreeDegree follows the google/btree default used for in-memory maps.
const btreeDegree = 32

// btreeItem orders duplicates by dataset position so equal keys coexist in
// the tree as distinct items.
type btreeItem struct {
	key string
	pos int
}

func lessBTreeItem(a, b btreeItem) bool {
	if a.key != b.key {
		return a.key < b.key
	}
	return a.pos < b.pos
}

// BTreeMap is the ordered multi-map baseline backed by google/btree. It
// stands in for a standard-library ordered container with duplicate keys,
// which Go does not ship; it is timed but never reimplemented.
type BTreeMap struct {
	tr *btree.BTreeG[btreeItem]
}

// NewBTreeMap returns an empty multi-map.
func NewBTreeMap() *BTreeMap {
	return &BTreeMap{tr: btree.NewG(btreeDegree, btree.LessFunc[btreeItem](lessBTreeItem))}
}

// Insert adds the (key, pos) pair. Positions are unique per dataset, so
// nothing is ever replaced.
func (m *BTreeMap) Insert(key string, pos int) {
	m.tr.ReplaceOrInsert(btreeItem{key: key, pos: pos})
}

// Search ascends from the smallest item with key, collecting positions
// until the key changes. Positions come back in insertion order because
// the harness inserts them in increasing order.
func (m *BTreeMap) Search(key string) []int {
	var out []int
	m.tr.AscendGreaterOrEqual(btreeItem{key: key, pos: -1}, func(it btreeItem) bool {
		if it.key != key {
			return false
		}
		out = append(out, it.pos)
		return true
	})
	return out
}

// Len returns the number of stored (key, pos) pairs.
func (m *BTreeMap) Len() int { return m.tr.Len() }
