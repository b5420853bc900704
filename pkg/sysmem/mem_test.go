package sysmem

import (
	"runtime"
	"testing"
)

func TestTotal(t *testing.T) {
	result := Total()

	if result.TotalBytes == 0 {
		t.Fatal("Total() returned 0 bytes")
	}

	// Any machine running this benchmark has at least 1 GiB.
	if result.TotalBytes < 1<<30 {
		t.Errorf("Total() = %d bytes, expected at least 1 GiB", result.TotalBytes)
	}

	switch runtime.GOOS {
	case "linux", "darwin", "windows":
		if !result.Reliable {
			t.Logf("memory detection not reliable on %s", runtime.GOOS)
		}
	default:
		if result.Reliable {
			t.Errorf("Reliable = true on %s, want false", runtime.GOOS)
		}
		if result.TotalBytes != DefaultMemoryBytes {
			t.Errorf("TotalBytes = %d on %s, want fallback %d", result.TotalBytes, runtime.GOOS, DefaultMemoryBytes)
		}
	}
}
