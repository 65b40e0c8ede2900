package config

import (
	"errors"
	"testing"
)

// TestValidate tests the validation sentinels.
func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		mutate   func(*Config)
		expected error
	}{
		{"defaults are valid", func(*Config) {}, nil},
		{"zero font size", func(c *Config) { c.FontSize = 0 }, ErrInvalidFontSize},
		{"negative font size", func(c *Config) { c.FontSize = -12 }, ErrInvalidFontSize},
		{"zero jpeg quality", func(c *Config) { c.JPEGQuality = 0 }, ErrInvalidJPEGQuality},
		{"jpeg quality over 100", func(c *Config) { c.JPEGQuality = 101 }, ErrInvalidJPEGQuality},
		{"no-input without path", func(c *Config) { c.NoInput = true }, ErrNoInputPath},
		{"no-input with path", func(c *Config) { c.NoInput = true; c.Path = "x.jpg" }, nil},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := NewConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.expected) {
				t.Errorf("Validate() = %v, expected %v", err, tc.expected)
			}
		})
	}
}
