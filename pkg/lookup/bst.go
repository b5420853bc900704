package lookup

// BST is the unbalanced binary search tree: the same multi-value contract
// as the red-black tree without colors or fix-up. Sorted insertion order
// degrades it to a linked list, which is exactly what the benchmark wants
// to expose.
type BST struct {
	root *bstNode
	size int
}

type bstNode struct {
	key     string
	payload []int
	left    *bstNode
	right   *bstNode
}

// NewBST returns an empty tree.
func NewBST() *BST {
	return &BST{}
}

// Insert places pos under key, creating a leaf node for a new key.
func (t *BST) Insert(key string, pos int) {
	var parent *bstNode
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

	n := &bstNode{key: key, payload: []int{pos}}
	switch {
	case parent == nil:
		t.root = n
	case key < parent.key:
		parent.left = n
	default:
		parent.right = n
	}
	t.size++
}

// Search descends from the root, returning the matching node's payload or
// nil. O(height), which is O(n) in the adversarial case.
func (t *BST) Search(key string) []int {
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

// Len returns the number of distinct keys.
func (t *BST) Len() int { return t.size }
