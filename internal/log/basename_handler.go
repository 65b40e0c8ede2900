package log

import (
	"context"
	"log/slog"
	"path/filepath"
)

// pathKeys are attribute keys whose values are file paths worth
// shortening for display. Error attributes keep full paths so failures
// stay diagnosable.
var pathKeys = map[string]bool{
	"file":   true,
	"output": true,
	"target": true,
}

// BasenameHandler wraps an slog.Handler and rewrites path-valued
// attributes to their base filenames before delegating.
//
// A handler wrapper rather than caller-side trimming keeps call sites
// free to log full paths, works with any underlying handler, and leaves
// one place to change if the display policy changes.
type BasenameHandler struct {
	handler slog.Handler
}

// NewBasenameHandler creates a BasenameHandler wrapping the given
// handler. If handler is nil, slog.Default()'s handler is used.
func NewBasenameHandler(handler slog.Handler) *BasenameHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &BasenameHandler{handler: handler}
}

// Enabled delegates to the underlying handler.
func (h *BasenameHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle rewrites the record's path attributes and delegates.
func (h *BasenameHandler) Handle(ctx context.Context, r slog.Record) error {
	shortened := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		shortened.AddAttrs(h.shortenAttr(a))
		return true
	})
	return h.handler.Handle(ctx, shortened)
}

// WithAttrs returns a new handler with the given attributes added,
// shortened first.
func (h *BasenameHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	shortened := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		shortened[i] = h.shortenAttr(a)
	}
	return &BasenameHandler{handler: h.handler.WithAttrs(shortened)}
}

// WithGroup returns a new handler with the given group name.
func (h *BasenameHandler) WithGroup(name string) slog.Handler {
	return &BasenameHandler{handler: h.handler.WithGroup(name)}
}

// shortenAttr shortens a single attribute, recursing into groups.
func (h *BasenameHandler) shortenAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		shortened := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			shortened[i] = h.shortenAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(shortened...)}
	}

	if pathKeys[a.Key] && a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, filepath.Base(a.Value.String()))
	}
	return a
}
