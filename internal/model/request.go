package model

import (
	"image/color"

	"github.com/nao1215/photostamp/internal/render"
)

// Request holds the immutable parameters of a single batch run.
// It is fully resolved before processing starts: the color has been parsed,
// the anchor validated, and the target set enumerated.
type Request struct {
	// FontSize is the requested font size in points (72 DPI).
	FontSize int

	// Fill is the resolved text fill color.
	Fill color.NRGBA

	// FillName is the color as the user entered it, kept for reporting.
	FillName string

	// Anchor is the canonical placement position.
	Anchor render.Anchor

	// SourceDir is the directory the targets were resolved from.
	SourceDir string

	// Targets are the image file paths to process, in processing order.
	Targets []string

	// OutputDir is the sibling directory that receives stamped copies.
	OutputDir string
}
