package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nao1215/photostamp/internal/model"
)

// SimpleWriter outputs a plain-text summary for terminal display.
type SimpleWriter struct {
	output io.Writer

	// verbose adds one line per item to the summary.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables per-item lines in the output.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{output: output}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the summary in human-readable form.
func (w *SimpleWriter) Write(summary *model.RunSummary) (int, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Done. %d processed, %d skipped (no capture date), %d failed.\n",
		summary.Processed(), summary.SkippedNoDate(), summary.Failed())
	fmt.Fprintf(&sb, "Output directory: %s\n", summary.OutputDir)

	if w.verbose {
		for _, item := range summary.Items {
			if item.Detail != "" {
				fmt.Fprintf(&sb, "  [%s] %s (%s)\n", item.Status, item.Name, item.Detail)
			} else {
				fmt.Fprintf(&sb, "  [%s] %s\n", item.Status, item.Name)
			}
		}
		fmt.Fprintf(&sb, "  elapsed: %s\n", summary.Elapsed.Round(time.Millisecond))
	}

	return io.WriteString(w.output, sb.String())
}
