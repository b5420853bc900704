package lookup

import (
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/relab/bbhash"
)

// ErrNoKeys is returned by MPHF.Build when nothing was inserted.
var ErrNoKeys = errors.New("lookup: no keys to build MPHF over")

// mphfGamma trades space for construction speed; 2.0 is a good middle.
const mphfGamma = 2.0

// MPHF is the static entry in the comparison set: positions accumulate via
// Insert and Build freezes them into a bbhash minimal perfect hash over the
// distinct keys. Foreign keys that land on a valid slot are rejected by a
// second-hash fingerprint. Search on an unbuilt index finds nothing.
type MPHF struct {
	pending      map[string][]int
	mph          *bbhash.BBHash2
	fingerprints []uint64
	payloads     [][]int
	built        bool
}

// NewMPHF returns an empty, unbuilt index.
func NewMPHF() *MPHF {
	return &MPHF{pending: make(map[string][]int)}
}

// Insert accumulates pos under key. Takes effect on the next Build.
func (m *MPHF) Insert(key string, pos int) {
	m.pending[key] = append(m.pending[key], pos)
}

// Build constructs the minimal perfect hash over every key seen so far and
// reorders payloads into MPHF positions.
func (m *MPHF) Build() error {
	if len(m.pending) == 0 {
		return ErrNoKeys
	}

	hashes := make([]uint64, 0, len(m.pending))
	for key := range m.pending {
		hashes = append(hashes, hashKey64(key))
	}
	mph, err := bbhash.New(hashes, bbhash.Gamma(mphfGamma))
	if err != nil {
		return fmt.Errorf("build MPHF: %w", err)
	}

	n := len(m.pending)
	fingerprints := make([]uint64, n)
	payloads := make([][]int, n)
	for key, payload := range m.pending {
		v := mph.Find(hashKey64(key))
		if v == 0 || int(v) > n {
			return fmt.Errorf("MPHF lookup failed for %q", key)
		}
		// bbhash positions are 1-based.
		fingerprints[v-1] = fingerprint(key)
		payloads[v-1] = payload
	}

	m.mph = mph
	m.fingerprints = fingerprints
	m.payloads = payloads
	m.built = true
	return nil
}

// Search returns the positions stored under key, nil for foreign keys or
// before Build was called.
func (m *MPHF) Search(key string) []int {
	if !m.built {
		return nil
	}
	v := m.mph.Find(hashKey64(key))
	if v == 0 || int(v) > len(m.payloads) {
		return nil
	}
	if m.fingerprints[v-1] != fingerprint(key) {
		return nil
	}
	return m.payloads[v-1]
}

// Len returns the number of distinct keys accumulated so far.
func (m *MPHF) Len() int { return len(m.pending) }

// hashKey64 maps a key into the uint64 domain bbhash operates on.
func hashKey64(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// fingerprint uses a different hash than hashKey64 so a foreign key rarely
// matches both.
func fingerprint(s string) uint64 {
	h := fnv.New64()
	h.Write([]byte(s))
	return h.Sum64()
}
