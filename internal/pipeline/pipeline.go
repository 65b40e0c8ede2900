package pipeline

import (
	"context"
	"fmt"
	"image"
	"log/slog"
)

// Item carries the state of one image through the pipeline steps.
type Item struct {
	// Path is the source image file.
	Path string

	// OutputPath is where the stamped copy will be written.
	OutputPath string

	// Image is the decoded source, set by the decode step.
	Image image.Image

	// Date is the normalized capture date, set by the extract step.
	Date string

	// Stamped is the rendered result, set by the render step.
	Stamped *image.NRGBA
}

// Step is one stage of per-image processing. Steps run in sequence, each
// receiving the item as modified by its predecessors.
//
// An interface rather than function values so steps can carry
// configuration (font face, fill color, encoder quality) and report a
// name for logging.
type Step interface {
	// Do executes the step. Returning an error stops the pipeline for
	// this item; the batch driver classifies the error and moves on.
	Do(ctx context.Context, item *Item) error

	// Name returns the step's name for logging.
	Name() string
}

// Pipeline runs an ordered list of steps over a single item.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a Pipeline. Steps are added with AddStep.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{steps: make([]Step, 0)}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// AddStep appends a step to the pipeline.
func (p *Pipeline) AddStep(s Step) {
	p.steps = append(p.steps, s)
}

// Run executes the steps in order for one item, stopping at the first
// error. The context is checked before each step so cancellation takes
// effect between stages, never mid-write.
func (p *Pipeline) Run(ctx context.Context, item *Item) error {
	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.logger.Debug("running step", "step", step.Name(), "file", item.Path)
		if err := step.Do(ctx, item); err != nil {
			return fmt.Errorf("%s: %w", step.Name(), err)
		}
	}
	return nil
}
