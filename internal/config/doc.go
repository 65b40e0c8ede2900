// Package config provides the run configuration for photostamp: defaults,
// CLI-populated settings, validation, and the optional YAML config file.
package config
