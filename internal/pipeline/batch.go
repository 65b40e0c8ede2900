package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/nao1215/photostamp/internal/model"
)

// Batch processes a set of targets strictly sequentially: one image is
// opened, processed, and released before the next begins. Per-item
// errors are recorded and the batch continues; only context cancellation
// aborts the whole run.
type Batch struct {
	// pipelineFactory creates a fresh pipeline per item so no state
	// leaks between images.
	pipelineFactory func() *Pipeline

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a Batch.
type BatchOption func(*Batch)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *Batch) {
		b.logger = logger
	}
}

// NewBatch creates a Batch around a pipeline factory.
func NewBatch(pipelineFactory func() *Pipeline, opts ...BatchOption) *Batch {
	b := &Batch{pipelineFactory: pipelineFactory}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// Process runs the pipeline over each target in order and returns the
// run summary. Outcomes are classified per item:
//
//   - nil error: processed, stamped copy written
//   - ErrNoDate: skipped, tallied under the no-date reason
//   - context cancellation: batch aborts, summary covers items so far
//   - anything else: failure, logged with the error's type and message
//
// Already-written outputs are never cleaned up on failure or abort.
func (b *Batch) Process(ctx context.Context, targets []string, outputDir string) (*model.RunSummary, error) {
	summary := &model.RunSummary{
		OutputDir: outputDir,
		StartedAt: time.Now(),
	}
	defer func() { summary.Elapsed = time.Since(summary.StartedAt) }()

	b.logger.Info("starting batch", "total_targets", len(targets), "output_dir", outputDir)

	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		name := filepath.Base(target)
		item := &Item{
			Path:       target,
			OutputPath: filepath.Join(outputDir, name),
		}

		err := b.pipelineFactory().Run(ctx, item)
		switch {
		case err == nil:
			b.logger.Info("saved", "file", target, "date", item.Date)
			summary.Add(model.ItemResult{Name: name, Status: model.StatusProcessed, Detail: item.Date})

		case errors.Is(err, ErrNoDate):
			b.logger.Info("skipped, no capture date", "file", target)
			summary.Add(model.ItemResult{Name: name, Status: model.StatusSkippedNoDate})

		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			return summary, err

		default:
			b.logger.Error("processing failed",
				"file", target,
				"error_type", fmt.Sprintf("%T", rootError(err)),
				"error", err,
			)
			summary.Add(model.ItemResult{Name: name, Status: model.StatusFailed, Detail: err.Error()})
		}
	}

	return summary, nil
}

// rootError unwraps to the innermost error so failure logs name the
// concrete type (e.g. *fs.PathError) instead of a wrapper.
func rootError(err error) error {
	for {
		inner := errors.Unwrap(err)
		if inner == nil {
			return err
		}
		err = inner
	}
}
