// Package sysmem detects total system RAM. The benchmark logs it at startup
// so result tables can be read against the machine they came from.
package sysmem

// DefaultMemoryBytes is the fallback (4 GiB) used when platform-specific
// detection fails or is unsupported.
const DefaultMemoryBytes uint64 = 4 * 1024 * 1024 * 1024

// Result holds the outcome of memory detection.
type Result struct {
	// TotalBytes is the total system memory in bytes.
	TotalBytes uint64

	// Reliable is false when TotalBytes is the fallback default rather
	// than a platform-reported value.
	Reliable bool
}

// Total returns the total system memory, falling back to
// DefaultMemoryBytes when detection is unavailable.
func Total() Result {
	bytes, ok := totalSystemMemory()
	if !ok || bytes == 0 {
		return Result{TotalBytes: DefaultMemoryBytes}
	}
	return Result{TotalBytes: bytes, Reliable: true}
}
