package logging

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/eunmann/searchbench/pkg/humanfmt"
)

// PhaseComplete starts a phase-completion event with the elapsed duration
// attached; callers add their own fields and finish with Msg. Pretty mode
// adds a human-readable duration companion.
func PhaseComplete(log zerolog.Logger, phase string, elapsed time.Duration) *zerolog.Event {
	e := log.Info().
		Str("event", "phase_completed").
		Str("phase", phase).
		Int64("duration_ms", elapsed.Milliseconds())
	if IsPrettyMode() {
		e = e.Str("duration_h", humanfmt.Duration(elapsed))
	}
	return e
}

// SizeStarted logs the start of one dataset-size iteration.
func SizeStarted(log zerolog.Logger, size, done, total int) {
	e := log.Info().
		Str("event", "size_started").
		Int("size", size).
		Int("sizes_complete", done).
		Int("sizes_total", total)
	if IsPrettyMode() {
		e = e.Str("size_h", humanfmt.Count(int64(size)))
	}
	e.Msg("dataset size started")
}
