// Package render draws the date-stamp text onto an image. It computes
// anchor positions from real font metrics and composites the text with a
// dark outline for contrast against varying backgrounds.
package render
