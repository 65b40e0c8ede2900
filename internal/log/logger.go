package log

import (
	"io"
	"log/slog"
)

// New creates the application logger. Warnings and errors only by
// default; verbose enables debug output.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewBasenameHandler(handler))
}
