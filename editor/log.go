package editor

import (
	"io"
	"log/slog"
	"os"
)

// log is the package-wide logger, discarding everything until EnableLogging
// is called, following cmd/hiveexplorer/logger's "defaults to a discarding
// handler, Init swaps it for a real one" shape — generalized from a fixed
// text handler to a JSON handler, since this log is meant to be grepped
// across many editor roots in one process rather than read by a human
// scrolling one file.
var log = slog.New(slog.NewTextHandler(io.Discard, nil))

// LoggingOptions configures EnableLogging.
type LoggingOptions struct {
	// Writer receives log output. Defaults to os.Stderr.
	Writer io.Writer
	// Level is the minimum level logged. The zero value is slog.LevelInfo;
	// since the core only logs at Debug, pass slog.LevelDebug to see its
	// output.
	Level slog.Level
}

// EnableLogging swaps the package logger for a JSON handler over opts.Writer
// (os.Stderr if unset). It affects every Root in the process, since the
// dispatch hot path (call/key_handle) cannot afford a per-Root logger
// lookup on every invocation.
func EnableLogging(opts LoggingOptions) {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	log = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: opts.Level}))
}
