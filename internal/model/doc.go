// Package model defines the data types shared across the application:
// the watermark request, per-item results, and the run summary.
package model
