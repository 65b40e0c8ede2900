package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".photostamp"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the YAML configuration file shape. Every field is optional;
// zero values leave the corresponding Config setting untouched.
type File struct {
	// FontSize is the default font size in points.
	FontSize int `yaml:"font_size"`

	// Color is the default fill color (name, alias, or hex).
	Color string `yaml:"color"`

	// Position is the default anchor (canonical or localized).
	Position string `yaml:"position"`

	// FontPaths are font files tried before the built-in chain.
	FontPaths []string `yaml:"font_paths"`

	// JPEGQuality overrides the JPEG encoder quality.
	JPEGQuality int `yaml:"jpeg_quality"`
}

// Apply merges file values into cfg without overriding settings the user
// already supplied on the command line.
func (f *File) Apply(cfg *Config) {
	if f.FontSize > 0 && cfg.FontSize == DefaultFontSize {
		cfg.FontSize = f.FontSize
	}
	if f.Color != "" && cfg.Color == DefaultColor {
		cfg.Color = f.Color
	}
	if f.Position != "" && cfg.Position == DefaultPosition {
		cfg.Position = f.Position
	}
	if f.JPEGQuality > 0 && cfg.JPEGQuality == DefaultJPEGQuality {
		cfg.JPEGQuality = f.JPEGQuality
	}
	cfg.FontPaths = append(cfg.FontPaths, f.FontPaths...)
}

// LoadConfigFile loads settings from a YAML file. A missing file yields
// ErrConfigNotFound; callers decide whether that matters based on whether
// the path was explicit.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// FindConfigFile searches for the configuration file in order:
//
//  1. the explicit path, if given
//  2. .photostamp in the current directory
//  3. $XDG_CONFIG_HOME/photostamp/config.yaml
//  4. .photostamp in the home directory
//
// Returns the path if found, or empty string.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		p := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	xdgConfig := filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
