// Package rbtree implements the red-black multi-value search tree at the
// center of the benchmark: the only structure in the set that maintains
// balance invariants on insertion.
//
// The tree is keyed by string with strict lexicographic ordering. Each key
// holds every dataset position inserted under it, in insertion order.
// Deletion is not supported; the benchmark only bulk-loads and searches.
package rbtree

type color uint8

const (
	red color = iota
	black
)

// node is a tree node. Children and parent are nil at the edges; nil
// children count as black for the black-height invariant.
type node struct {
	key     string
	payload []int // dataset positions, in insertion order
	color   color
	parent  *node
	left    *node
	right   *node
}

// Tree is a red-black tree mapping string keys to dataset positions.
// It maintains, after every insertion:
//
//  1. BST ordering: left subtree keys < node key < right subtree keys.
//  2. No red node has a red child.
//  3. Every root-to-nil path crosses the same number of black nodes.
//  4. The root is black.
//
// New nodes start red; rebalancing happens only when a new key creates a
// node. The tree is not safe for concurrent use.
type Tree struct {
	root  *node
	size  int
	total int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// Len returns the number of distinct keys.
func (t *Tree) Len() int { return t.size }

// Total returns the number of positions inserted across all keys.
func (t *Tree) Total() int { return t.total }

// Insert records that the dataset entry at pos carries key. An existing key
// appends to that node's payload and leaves the structure untouched; there
// is nothing to rebalance because no node moved. A new key is placed by
// standard BST descent as a red leaf and then fixed up.
func (t *Tree) Insert(key string, pos int) {
	t.total++

	var parent *node
	x := t.root
	for x != nil {
		parent = x
		if key == x.key {
			x.payload = append(x.payload, pos)
			return
		}
		if key < x.key {
			x = x.left
		} else {
			x = x.right
		}
	}

	z := &node{key: key, payload: []int{pos}, color: red, parent: parent}
	switch {
	case parent == nil:
		t.root = z
	case key < parent.key:
		parent.left = z
	default:
		parent.right = z
	}
	t.size++
	t.insertFixup(z)
}

// Search returns every position inserted under key, nil when the key is
// absent or the tree is empty. The descent uses the same ordering as
// insertion, so an exact match is found iff the key exists.
func (t *Tree) Search(key string) []int {
	x := t.root
	for x != nil {
		if key == x.key {
			return x.payload
		}
		if key < x.key {
			x = x.left
		} else {
			x = x.right
		}
	}
	return nil
}

// Height returns the node count of the longest root-to-leaf path, 0 for an
// empty tree. The invariants bound it by 2*log2(n+1).
func (t *Tree) Height() int {
	return height(t.root)
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	hl, hr := height(n.left), height(n.right)
	if hl > hr {
		return hl + 1
	}
	return hr + 1
}

// Ascend calls fn for each key in ascending order until fn returns false.
// The payload slice must not be mutated by fn.
func (t *Tree) Ascend(fn func(key string, payload []int) bool) {
	ascend(t.root, fn)
}

func ascend(n *node, fn func(key string, payload []int) bool) bool {
	if n == nil {
		return true
	}
	if !ascend(n.left, fn) {
		return false
	}
	if !fn(n.key, n.payload) {
		return false
	}
	return ascend(n.right, fn)
}

// insertFixup restores the invariants after z was linked in red. A red
// parent is never the root (the root is black), so the grandparent below
// is always non-nil.
func (t *Tree) insertFixup(z *node) {
	for z.parent != nil && z.parent.color == red {
		gp := z.parent.parent
		if z.parent == gp.left {
			uncle := gp.right
			if uncle != nil && uncle.color == red {
				// Red uncle: recolor and push the violation up two levels.
				z.parent.color = black
				uncle.color = black
				gp.color = red
				z = gp
			} else {
				if z == z.parent.right {
					// Inner grandchild: rotate into the outer shape first.
					z = z.parent
					t.rotateLeft(z)
				}
				z.parent.color = black
				gp.color = red
				t.rotateRight(gp)
			}
		} else {
			uncle := gp.left
			if uncle != nil && uncle.color == red {
				z.parent.color = black
				uncle.color = black
				gp.color = red
				z = gp
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rotateRight(z)
				}
				z.parent.color = black
				gp.color = red
				t.rotateLeft(gp)
			}
		}
	}
	t.root.color = black
}

// rotateLeft promotes x's right child into x's position. x.right must be
// non-nil; BST ordering is preserved by construction.
func (t *Tree) rotateLeft(x *node) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == nil:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

// rotateRight is the mirror of rotateLeft.
func (t *Tree) rotateRight(y *node) {
	x := y.left
	y.left = x.right
	if x.right != nil {
		x.right.parent = y
	}
	x.parent = y.parent
	switch {
	case y.parent == nil:
		t.root = x
	case y == y.parent.left:
		y.parent.left = x
	default:
		y.parent.right = x
	}
	x.right = y
	y.parent = x
}
