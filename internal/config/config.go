package config

// Default configuration values, used when neither flags, prompts, nor the
// config file supply a setting.
const (
	// DefaultFontSize is the font size in points suggested to the user
	// and used in non-interactive mode.
	DefaultFontSize = 36

	// DefaultColor is the fill color used in non-interactive mode.
	// White with the black stroke reads well on most photos.
	DefaultColor = "white"

	// DefaultPosition matches the placement engine's own fallback
	// anchor.
	DefaultPosition = "left_top"

	// DefaultJPEGQuality is deliberately high so stamped JPEG copies
	// show no visible recompression artifacts.
	DefaultJPEGQuality = 95

	// AppName is the application name used for XDG directory paths.
	AppName = "photostamp"
)

// Config holds all settings for one run. It is populated from CLI flags,
// the optional config file, and interactive prompts, then passed through
// the application explicitly rather than via global state.
type Config struct {
	// Path is the input image file or directory.
	Path string

	// FontSize is the requested font size in points.
	FontSize int

	// Color is the fill color as entered: a name, localized alias, or
	// hex triple. Parsed by the vocab package at the input boundary.
	Color string

	// Position is the anchor as entered: canonical or localized.
	Position string

	// FontPaths are extra font files tried before the built-in fallback
	// chain.
	FontPaths []string

	// JPEGQuality is the encoder quality for JPEG outputs.
	JPEGQuality int

	// ConfigFilePath is an explicit config file location. Empty means
	// search the standard locations.
	ConfigFilePath string

	// MarkdownReport switches the run summary to Markdown output.
	MarkdownReport bool

	// ReportFile writes the run summary to a file instead of stdout.
	ReportFile string

	// NoInput disables interactive prompting; missing or invalid
	// parameters become errors.
	NoInput bool

	// Verbose enables slog.LevelDebug and per-item summary lines.
	Verbose bool
}

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	return &Config{
		FontSize:    DefaultFontSize,
		Color:       DefaultColor,
		Position:    DefaultPosition,
		JPEGQuality: DefaultJPEGQuality,
	}
}

// Validate checks settings that do not need the vocabulary tables.
// Color and position strings are validated where they are parsed.
func (c *Config) Validate() error {
	if c.FontSize <= 0 {
		return ErrInvalidFontSize
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return ErrInvalidJPEGQuality
	}
	if c.NoInput && c.Path == "" {
		return ErrNoInputPath
	}
	return nil
}
