// Package dataset generates the synthetic passenger records the benchmark
// structures are built over.
package dataset

// Record describes a single passenger. FullName is the search key; the
// remaining fields are carried along but never examined by any structure.
// Records are immutable after generation and referenced by their position
// in the generated slice.
type Record struct {
	FullName        string
	CabinNumber     int
	CabinType       string
	DestinationPort string
}
