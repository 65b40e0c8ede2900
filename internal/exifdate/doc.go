// Package exifdate extracts the capture date of a photo from its EXIF
// metadata and normalizes it to YYYY-MM-DD. A photo without a usable
// date is a normal, expected condition, reported as absence rather than
// an error.
package exifdate
