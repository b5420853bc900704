package rbtree

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"testing"
)

// checkInvariants verifies all four structural invariants, failing the test
// with the sequence of insertions described by label.
func checkInvariants(t *testing.T, tree *Tree, label string) {
	t.Helper()

	if tree.root == nil {
		return
	}
	if tree.root.color != black {
		t.Errorf("%s: root is red, want black", label)
	}
	checkOrdering(t, tree, label)
	checkNoRedRed(t, tree.root, label)
	if _, ok := blackHeight(tree.root); !ok {
		t.Errorf("%s: black-height differs across root-to-nil paths", label)
	}
	checkParentLinks(t, tree.root, nil, label)
}

func checkOrdering(t *testing.T, tree *Tree, label string) {
	t.Helper()
	var keys []string
	tree.Ascend(func(key string, _ []int) bool {
		keys = append(keys, key)
		return true
	})
	if !sort.StringsAreSorted(keys) {
		t.Errorf("%s: in-order keys not sorted: %v", label, keys)
	}
	for i := 1; i < len(keys); i++ {
		if keys[i] == keys[i-1] {
			t.Errorf("%s: duplicate node for key %q", label, keys[i])
		}
	}
}

func checkNoRedRed(t *testing.T, n *node, label string) {
	t.Helper()
	if n == nil {
		return
	}
	if n.color == red {
		if n.left != nil && n.left.color == red {
			t.Errorf("%s: red node %q has red left child %q", label, n.key, n.left.key)
		}
		if n.right != nil && n.right.color == red {
			t.Errorf("%s: red node %q has red right child %q", label, n.key, n.right.key)
		}
	}
	checkNoRedRed(t, n.left, label)
	checkNoRedRed(t, n.right, label)
}

// blackHeight returns the black node count from n down to nil children,
// or false when two paths disagree.
func blackHeight(n *node) (int, bool) {
	if n == nil {
		return 1, true
	}
	hl, okl := blackHeight(n.left)
	hr, okr := blackHeight(n.right)
	if !okl || !okr || hl != hr {
		return 0, false
	}
	if n.color == black {
		hl++
	}
	return hl, true
}

func checkParentLinks(t *testing.T, n, parent *node, label string) {
	t.Helper()
	if n == nil {
		return
	}
	if n.parent != parent {
		t.Errorf("%s: node %q has wrong parent link", label, n.key)
	}
	checkParentLinks(t, n.left, n, label)
	checkParentLinks(t, n.right, n, label)
}

// shape returns a preorder dump of keys, colors and payload sizes, used to
// assert that an insertion left the structure untouched.
func shape(tree *Tree) []string {
	var out []string
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			out = append(out, ".")
			return
		}
		c := "B"
		if n.color == red {
			c = "R"
		}
		out = append(out, fmt.Sprintf("%s/%s", n.key, c))
		walk(n.left)
		walk(n.right)
	}
	walk(tree.root)
	return out
}

func TestEmptyTree(t *testing.T) {
	tree := New()
	if got := tree.Search("anything"); got != nil {
		t.Errorf("Search on empty tree = %v, want nil", got)
	}
	if tree.Len() != 0 || tree.Total() != 0 || tree.Height() != 0 {
		t.Errorf("empty tree: Len=%d Total=%d Height=%d, want all 0", tree.Len(), tree.Total(), tree.Height())
	}
}

func TestInsertScenario(t *testing.T) {
	// Keys from the reference scenario, one record each, in this order.
	keys := []string{"m", "c", "g", "a", "t"}
	tree := New()
	for i, k := range keys {
		tree.Insert(k, i)
		checkInvariants(t, tree, fmt.Sprintf("after inserting %v", keys[:i+1]))
	}

	if tree.Len() != 5 {
		t.Errorf("Len = %d, want 5", tree.Len())
	}

	// Inserting "g" as the inner grandchild of "m" via "c" rotates "g" to
	// the root; the later inserts do not move it.
	if tree.root.key != "g" {
		t.Errorf("root key = %q, want %q", tree.root.key, "g")
	}

	got := tree.Search("a")
	if len(got) != 1 || got[0] != 3 {
		t.Errorf(`Search("a") = %v, want [3]`, got)
	}
	if got := tree.Search("z"); got != nil {
		t.Errorf(`Search("z") = %v, want nil`, got)
	}
}

func TestDuplicateKeyDoesNotRebalance(t *testing.T) {
	tree := New()
	for i, k := range []string{"m", "c", "g", "a", "t"} {
		tree.Insert(k, i)
	}

	before := shape(tree)
	tree.Insert("g", 99)
	after := shape(tree)

	if len(before) != len(after) {
		t.Fatalf("node count changed on duplicate insert: %v -> %v", before, after)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("tree shape changed on duplicate insert at %d: %v -> %v", i, before, after)
		}
	}

	if tree.Len() != 5 {
		t.Errorf("Len = %d, want 5 after duplicate insert", tree.Len())
	}
	if tree.Total() != 6 {
		t.Errorf("Total = %d, want 6 after duplicate insert", tree.Total())
	}
	got := tree.Search("g")
	if len(got) != 2 || got[0] != 2 || got[1] != 99 {
		t.Errorf(`Search("g") = %v, want [2 99]`, got)
	}
}

func TestSortedInsertionStaysBalanced(t *testing.T) {
	// Adversarial sorted order: an unbalanced BST degrades to a list here.
	tree := New()
	n := 1023
	for i := 0; i < n; i++ {
		tree.Insert(fmt.Sprintf("key%05d", i), i)
	}

	checkInvariants(t, tree, "sorted insertion")

	// Red-black height bound: 2*log2(n+1).
	maxHeight := int(2 * math.Log2(float64(n+1)))
	if h := tree.Height(); h > maxHeight {
		t.Errorf("Height = %d after %d sorted inserts, want <= %d", h, n, maxHeight)
	}
}

func TestManyRecordsFewKeys(t *testing.T) {
	// 1000 positions over a pool of 50 keys, every key used at least once.
	rng := rand.New(rand.NewSource(1))
	pool := make([]string, 50)
	for i := range pool {
		pool[i] = fmt.Sprintf("name%02d", i)
	}

	tree := New()
	inserted := make(map[string][]int)
	for pos := 0; pos < 1000; pos++ {
		key := pool[pos%50]
		if pos >= 50 {
			key = pool[rng.Intn(50)]
		}
		tree.Insert(key, pos)
		inserted[key] = append(inserted[key], pos)
	}

	checkInvariants(t, tree, "1000 records over 50 keys")

	if tree.Len() != 50 {
		t.Errorf("Len = %d, want 50", tree.Len())
	}
	total := 0
	tree.Ascend(func(_ string, payload []int) bool {
		total += len(payload)
		return true
	})
	if total != 1000 {
		t.Errorf("total payload across nodes = %d, want 1000", total)
	}

	for key, want := range inserted {
		got := tree.Search(key)
		if len(got) != len(want) {
			t.Errorf("Search(%q) returned %d positions, want %d", key, len(got), len(want))
			continue
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Search(%q)[%d] = %d, want %d (insertion order)", key, i, got[i], want[i])
			}
		}
	}
}

func TestRandomInsertionInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	tree := New()
	for i := 0; i < 5000; i++ {
		tree.Insert(fmt.Sprintf("k%04d", rng.Intn(2000)), i)
	}
	checkInvariants(t, tree, "5000 random inserts")
	if tree.Total() != 5000 {
		t.Errorf("Total = %d, want 5000", tree.Total())
	}
}

func TestAscendOrder(t *testing.T) {
	tree := New()
	for i, k := range []string{"delta", "alpha", "echo", "charlie", "bravo"} {
		tree.Insert(k, i)
	}
	var keys []string
	tree.Ascend(func(key string, _ []int) bool {
		keys = append(keys, key)
		return true
	})
	want := []string{"alpha", "bravo", "charlie", "delta", "echo"}
	if len(keys) != len(want) {
		t.Fatalf("Ascend visited %d keys, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Ascend[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}
