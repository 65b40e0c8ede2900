package config

import "errors"

// Configuration validation errors.
//
// Package-level sentinel errors rather than ad-hoc errors.New calls in
// Validate() so callers can classify failures with errors.Is while still
// getting a human-readable message.
var (
	// ErrNoInputPath is returned in non-interactive mode when no input
	// file or directory was provided.
	ErrNoInputPath = errors.New("no input path specified: provide an image file or directory")

	// ErrInvalidFontSize is returned when the font size is zero or
	// negative.
	ErrInvalidFontSize = errors.New("invalid font size: must be a positive integer")

	// ErrInvalidJPEGQuality is returned when the JPEG quality is outside
	// the 1-100 range.
	ErrInvalidJPEGQuality = errors.New("invalid jpeg quality: must be between 1 and 100")
)
