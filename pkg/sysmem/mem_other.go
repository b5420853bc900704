//go:build !linux && !darwin && !windows

package sysmem

// totalSystemMemory reports failure on unsupported platforms so Total
// falls back to the default.
func totalSystemMemory() (uint64, bool) {
	return 0, false
}
