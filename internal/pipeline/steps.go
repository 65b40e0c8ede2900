package pipeline

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"

	"github.com/nao1215/photostamp/internal/exifdate"
	"github.com/nao1215/photostamp/internal/render"
)

// ErrNoDate marks an image that carries no usable capture-time metadata.
// The batch driver tallies it as a skip, distinct from processing
// failures.
var ErrNoDate = errors.New("no capture date in metadata")

// DefaultSteps assembles the standard processing chain.
func DefaultSteps(face font.Face, fill color.Color, anchor render.Anchor, jpegQuality int) []Step {
	return []Step{
		NewExtractDateStep(),
		NewDecodeStep(),
		NewRenderStep(face, fill, anchor),
		NewSaveStep(jpegQuality),
	}
}

// extractDateStep reads the capture date before any pixel work, so
// date-less images are skipped without paying the decode cost.
type extractDateStep struct{}

// NewExtractDateStep creates the capture-date extraction step.
func NewExtractDateStep() Step { return &extractDateStep{} }

// Name returns the step name.
func (s *extractDateStep) Name() string { return "extract-date" }

// Do extracts and normalizes the capture date, or reports ErrNoDate.
func (s *extractDateStep) Do(_ context.Context, item *Item) error {
	date, ok := exifdate.Extract(item.Path)
	if !ok {
		return ErrNoDate
	}
	item.Date = date
	return nil
}

// decodeStep opens and decodes the source image. The file handle lives
// only for the duration of the step.
type decodeStep struct{}

// NewDecodeStep creates the image decode step.
func NewDecodeStep() Step { return &decodeStep{} }

// Name returns the step name.
func (s *decodeStep) Name() string { return "decode" }

// Do decodes the image at item.Path.
func (s *decodeStep) Do(_ context.Context, item *Item) error {
	img, err := imaging.Open(item.Path)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	item.Image = img
	return nil
}

// renderStep composites the date text onto a copy of the decoded image.
type renderStep struct {
	face   font.Face
	fill   color.Color
	anchor render.Anchor
}

// NewRenderStep creates the watermark rendering step.
func NewRenderStep(face font.Face, fill color.Color, anchor render.Anchor) Step {
	return &renderStep{face: face, fill: fill, anchor: anchor}
}

// Name returns the step name.
func (s *renderStep) Name() string { return "render" }

// Do renders the stamped copy.
func (s *renderStep) Do(_ context.Context, item *Item) error {
	item.Stamped = render.Stamp(item.Image, item.Date, s.face, s.fill, s.anchor)
	return nil
}

// saveStep encodes the stamped image to the output path. The encoder is
// chosen from the output extension, which matches the input's, so the
// original file format is preserved. The quality option applies to JPEG
// outputs only; other encoders ignore it.
type saveStep struct {
	jpegQuality int
}

// NewSaveStep creates the save step.
func NewSaveStep(jpegQuality int) Step {
	return &saveStep{jpegQuality: jpegQuality}
}

// Name returns the step name.
func (s *saveStep) Name() string { return "save" }

// Do writes the stamped image, overwriting any existing file silently.
func (s *saveStep) Do(_ context.Context, item *Item) error {
	if err := imaging.Save(item.Stamped, item.OutputPath, imaging.JPEGQuality(s.jpegQuality)); err != nil {
		return fmt.Errorf("save image: %w", err)
	}
	return nil
}
