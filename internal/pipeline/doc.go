// Package pipeline implements the per-image processing pipeline
// (decode, extract date, render, save) and the sequential batch driver
// that runs it over a set of targets while tallying outcomes.
package pipeline
