// Package main provides the entry point for the photostamp CLI.
//
// Photostamp applies a date-stamp text watermark to photos, deriving the
// stamp from the EXIF capture time embedded in each file.
//
// Usage:
//
//	photostamp stamp <file-or-directory>
//	photostamp stamp
//
// See --help for all available options.
package main

// main is the entry point for photostamp.
func main() {
	Execute()
}
