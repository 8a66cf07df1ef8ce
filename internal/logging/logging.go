// Package logging configures the process-wide slog logger for cleaning runs.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Init installs the default logger for a run. Logs always go to stderr; when
// cleaned rows are streamed to stdout the handler switches to JSON so log
// lines stay machine-separable from the NDJSON record stream.
func Init(outputIsStdout bool, level slog.Level) {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if outputIsStdout {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// ForRun returns a logger stamped with the run identifier, so every stage
// diagnostic of one batch can be grouped by run_id.
func ForRun(runID string) *slog.Logger {
	return slog.Default().With("run_id", runID)
}

// ParseLevel maps a config string to a slog.Level. Unknown strings fall back
// to info rather than failing the run.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
