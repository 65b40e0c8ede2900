// Package report writes the end-of-run summary in human-readable or
// Markdown form.
package report
