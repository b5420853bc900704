// Package lookup holds the comparison structures benchmarked against the
// red-black tree. Every structure resolves a string key to the positions of
// the matching records inside the dataset slice; structures never own the
// records themselves.
package lookup

// Index is the contract shared by every benchmarked structure.
type Index interface {
	// Insert records that the dataset entry at pos carries key.
	Insert(key string, pos int)
	// Search returns the positions of every entry with key, in insertion
	// order, nil when the key is absent. Absence is not an error.
	Search(key string) []int
}
