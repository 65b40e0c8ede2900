package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/photostamp/internal/config"
	"github.com/nao1215/photostamp/internal/imagefile"
	photolog "github.com/nao1215/photostamp/internal/log"
	"github.com/nao1215/photostamp/internal/model"
	"github.com/nao1215/photostamp/internal/pipeline"
	"github.com/nao1215/photostamp/internal/prompt"
	"github.com/nao1215/photostamp/internal/report"
	"github.com/nao1215/photostamp/internal/typeface"
	"github.com/nao1215/photostamp/internal/vocab"
)

// errCancelled is returned when the user interrupts a run. Execute
// prints it and exits non-zero.
var errCancelled = errors.New("cancelled")

// NewStampCmd creates the stamp command.
func NewStampCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stamp [path]",
		Short: "Watermark photos with their capture date",
		Long: `Stamp reads the EXIF capture time of each photo, normalizes it to
YYYY-MM-DD, and draws it onto a copy with a dark outline. Copies are
written to a sibling directory named <source-dir>_watermark, keeping the
original filename and format (JPEG outputs use quality 95). Photos
without capture-time metadata are skipped and tallied, not failed.

Parameters not given as flags are prompted for interactively. Colors
accept common English names, Chinese aliases (白色, 黑色, ...), and hex
triples; positions accept the canonical names and Chinese aliases
(右下, 居中, ...).

Examples:
  # Fully interactive
  photostamp stamp

  # Stamp a directory, prompting only for nothing
  photostamp stamp ./vacation -s 36 -c white -p right_bottom

  # Scripted use: never prompt, fail on missing parameters
  photostamp stamp ./vacation --no-input

  # Markdown summary written to a file
  photostamp stamp ./vacation -s 36 -c 白色 -p 右下 -m -o report.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: runStampCmd,
	}

	cmd.Flags().IntP("font-size", "s", config.DefaultFontSize,
		"Font size in points")
	cmd.Flags().StringP("color", "c", config.DefaultColor,
		"Fill color: name, Chinese alias, or hex (#FFFFFF)")
	cmd.Flags().StringP("position", "p", config.DefaultPosition,
		"Watermark position (one of the seven anchors, aliases accepted)")
	cmd.Flags().StringArray("font", nil,
		"Extra font file tried before the built-in fallback chain (repeatable)")
	cmd.Flags().String("config", "",
		"Configuration file path (default: .photostamp in current dir, XDG config dir, or home)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output the run summary as Markdown")
	cmd.Flags().StringP("report", "o", "",
		"Write the run summary to the given file instead of stdout")
	cmd.Flags().Bool("no-input", false,
		"Never prompt; missing or invalid parameters become errors")

	return cmd
}

// suppliedParams tracks which parameters the user provided via argument,
// flag, or config file, so only the missing ones are prompted for.
type suppliedParams struct {
	path     bool
	fontSize bool
	color    bool
	position bool
}

// runStampCmd executes the stamp command.
func runStampCmd(cmd *cobra.Command, args []string) error {
	cfg, supplied, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Set up structured logging
	logger := photolog.New(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling: an interrupt aborts the
	// whole run between items.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		logger.Info("received interrupt, cancelling...")
		cancel()
	}()

	req, err := buildRequest(cmd, cfg, supplied)
	if err != nil {
		return err
	}

	return runStamp(ctx, cmd, cfg, req, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the optional
// config file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, suppliedParams, error) {
	cfg := config.NewConfig()
	var supplied suppliedParams

	if len(args) == 1 {
		cfg.Path = args[0]
		supplied.path = true
	}

	var err error

	cfg.FontSize, err = cmd.Flags().GetInt("font-size")
	if err != nil {
		return nil, supplied, err
	}

	cfg.Color, err = cmd.Flags().GetString("color")
	if err != nil {
		return nil, supplied, err
	}

	cfg.Position, err = cmd.Flags().GetString("position")
	if err != nil {
		return nil, supplied, err
	}

	cfg.FontPaths, err = cmd.Flags().GetStringArray("font")
	if err != nil {
		return nil, supplied, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, supplied, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, supplied, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("report")
	if err != nil {
		return nil, supplied, err
	}

	cfg.NoInput, err = cmd.Flags().GetBool("no-input")
	if err != nil {
		return nil, supplied, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	supplied.fontSize = cmd.Flags().Changed("font-size")
	supplied.color = cmd.Flags().Changed("color")
	supplied.position = cmd.Flags().Changed("position")

	// Load defaults from the config file. An explicitly specified file
	// must exist; the standard locations are optional.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, supplied, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		supplied.fontSize = supplied.fontSize || file.FontSize > 0
		supplied.color = supplied.color || file.Color != ""
		supplied.position = supplied.position || file.Position != ""
		file.Apply(cfg)
	} else if explicitConfigPath {
		return nil, supplied, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if cfg.NoInput {
		if err := cfg.Validate(); err != nil {
			return nil, supplied, fmt.Errorf("configuration error: %w", err)
		}
	} else if cfg.JPEGQuality < 1 || cfg.JPEGQuality > 100 {
		// Quality is never prompted for, so validate it even in
		// interactive mode.
		return nil, supplied, config.ErrInvalidJPEGQuality
	}

	return cfg, supplied, nil
}

// buildRequest resolves the run parameters, prompting interactively for
// anything missing or invalid unless --no-input is set.
func buildRequest(cmd *cobra.Command, cfg *config.Config, supplied suppliedParams) (*model.Request, error) {
	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
	out := cmd.OutOrStdout()

	// Input path
	var dir string
	var targets []string
	if supplied.path {
		var err error
		dir, targets, err = imagefile.Resolve(cfg.Path)
		if err != nil {
			if cfg.NoInput {
				return nil, err
			}
			fmt.Fprintln(out, err)
			supplied.path = false
		}
	}
	if !supplied.path {
		if cfg.NoInput {
			return nil, config.ErrNoInputPath
		}
		var err error
		dir, targets, err = p.Path()
		if err != nil {
			return nil, err
		}
	}

	// Font size
	fontSize := cfg.FontSize
	if fontSize <= 0 || (!supplied.fontSize && !cfg.NoInput) {
		if cfg.NoInput {
			return nil, config.ErrInvalidFontSize
		}
		if fontSize <= 0 {
			fmt.Fprintln(out, config.ErrInvalidFontSize)
		}
		var err error
		fontSize, err = p.FontSize()
		if err != nil {
			return nil, err
		}
	}

	// Fill color
	fillName := cfg.Color
	fill, colorErr := vocab.ParseColor(cfg.Color)
	if colorErr != nil || (!supplied.color && !cfg.NoInput) {
		if cfg.NoInput {
			return nil, colorErr
		}
		if colorErr != nil {
			fmt.Fprintln(out, colorErr)
		}
		var err error
		fill, fillName, err = p.Color()
		if err != nil {
			return nil, err
		}
	}

	// Anchor position
	anchor, anchorErr := vocab.ParseAnchor(cfg.Position)
	if anchorErr != nil || (!supplied.position && !cfg.NoInput) {
		if cfg.NoInput {
			return nil, anchorErr
		}
		if anchorErr != nil {
			fmt.Fprintln(out, anchorErr)
		}
		var err error
		anchor, err = p.Anchor()
		if err != nil {
			return nil, err
		}
	}

	outputDir, err := imagefile.EnsureOutputDir(dir)
	if err != nil {
		return nil, err
	}

	return &model.Request{
		FontSize:  fontSize,
		Fill:      fill,
		FillName:  fillName,
		Anchor:    anchor,
		SourceDir: dir,
		Targets:   targets,
		OutputDir: outputDir,
	}, nil
}

// runStamp executes the batch and writes the summary.
func runStamp(ctx context.Context, cmd *cobra.Command, cfg *config.Config, req *model.Request, logger *slog.Logger) error {
	out := cmd.OutOrStdout()

	if len(req.Targets) == 0 {
		fmt.Fprintln(out, "No supported images found (jpg/jpeg/png).")
		return nil
	}

	face, source := typeface.Resolve(req.FontSize, cfg.FontPaths...)
	logger.Debug("font resolved", "source", source, "size", req.FontSize)
	if source == typeface.BitmapFallback {
		logger.Warn("no scalable font found, falling back to fixed-size bitmap font",
			"requested_size", req.FontSize)
	}

	batch := pipeline.NewBatch(func() *pipeline.Pipeline {
		p := pipeline.New(pipeline.WithLogger(logger))
		for _, step := range pipeline.DefaultSteps(face, req.Fill, req.Anchor, cfg.JPEGQuality) {
			p.AddStep(step)
		}
		return p
	}, pipeline.WithBatchLogger(logger))

	summary, err := batch.Process(ctx, req.Targets, req.OutputDir)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(out, "cancelled.")
			return errCancelled
		}
		return err
	}

	return writeSummary(cmd, cfg, summary)
}

// writeSummary writes the run summary in the configured format and
// destination.
func writeSummary(cmd *cobra.Command, cfg *config.Config, summary *model.RunSummary) error {
	dest := cmd.OutOrStdout()

	if cfg.ReportFile != "" {
		if dir := filepath.Dir(cfg.ReportFile); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("create report directory: %w", err)
			}
		}
		f, err := os.Create(cfg.ReportFile)
		if err != nil {
			return fmt.Errorf("create report file: %w", err)
		}
		defer f.Close()
		dest = f
	}

	var w report.Writer
	if cfg.MarkdownReport {
		w = report.NewMarkdownWriter(dest)
	} else {
		w = report.NewSimpleWriter(dest, report.WithVerbose(cfg.Verbose))
	}

	if _, err := w.Write(summary); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
