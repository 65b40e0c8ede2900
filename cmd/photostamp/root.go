// Package main provides the entry point for the photostamp CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for photostamp.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "photostamp",
		Short: "Stamp photos with their EXIF capture date",
		Long: `Photostamp applies a date-stamp text watermark to photos.

The stamp text is derived from the EXIF capture time (DateTimeOriginal,
falling back to DateTime), normalized to YYYY-MM-DD, and drawn with a
dark outline for legibility. Stamped copies go into a sibling directory
named <source-dir>_watermark; originals are never modified.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewStampCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
