// Package prompt implements the interactive parameter prompts. Each
// prompt re-asks indefinitely until the input validates; only a closed
// input stream aborts.
package prompt
