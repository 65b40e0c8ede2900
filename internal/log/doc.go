// Package log builds the application's slog logger. A wrapping handler
// shortens file path attributes to their base names so batch output stays
// readable when processing deep directory trees.
package log
