// Package memdiag logs runtime memory snapshots between benchmark
// iterations, to spot structures whose footprint dominates a dataset size.
//
// Enable with SEARCHBENCH_MEM_DEBUG=1.
package memdiag

import (
	"os"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/eunmann/searchbench/pkg/humanfmt"
	"github.com/eunmann/searchbench/pkg/logging"
)

// Enabled reports whether memory snapshots should be logged.
func Enabled() bool {
	return os.Getenv("SEARCHBENCH_MEM_DEBUG") == "1"
}

// Stats is a condensed view of runtime.MemStats.
type Stats struct {
	// Alloc is bytes allocated and still in use.
	Alloc uint64
	// TotalAlloc is cumulative bytes allocated, including freed memory.
	TotalAlloc uint64
	// Sys is bytes obtained from the OS.
	Sys uint64
	// HeapObjects is the number of live heap objects.
	HeapObjects uint64
	// NumGC is the number of completed GC cycles.
	NumGC uint32
}

// Capture reads the current memory statistics.
func Capture() Stats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Stats{
		Alloc:       m.Alloc,
		TotalAlloc:  m.TotalAlloc,
		Sys:         m.Sys,
		HeapObjects: m.HeapObjects,
		NumGC:       m.NumGC,
	}
}

// LogSnapshot emits a memory snapshot tagged with the dataset size that
// just finished. No-op unless Enabled.
func LogSnapshot(log zerolog.Logger, size int) {
	if !Enabled() {
		return
	}
	s := Capture()
	e := log.Debug().
		Str("event", "mem_snapshot").
		Int("size", size).
		Uint64("alloc", s.Alloc).
		Uint64("total_alloc", s.TotalAlloc).
		Uint64("sys", s.Sys).
		Uint64("heap_objects", s.HeapObjects).
		Uint32("num_gc", s.NumGC)
	if logging.IsPrettyMode() {
		e = e.Str("alloc_h", humanfmt.Bytes(s.Alloc))
	}
	e.Msg("memory snapshot")
}
