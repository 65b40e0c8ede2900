// Package typeface locates a usable font face for the watermark text.
// It walks an ordered fallback chain from configured font files down to
// a guaranteed-available fixed-size bitmap face, so resolution never
// fails outright.
package typeface
