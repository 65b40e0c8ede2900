package report

import "github.com/nao1215/photostamp/internal/model"

// Writer outputs a run summary. Implementations differ only in format
// and destination, so the batch driver and commands stay format-agnostic.
type Writer interface {
	// Write outputs the summary and returns the number of bytes written.
	Write(summary *model.RunSummary) (int, error)
}
