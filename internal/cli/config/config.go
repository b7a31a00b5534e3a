// Package config loads CLI configuration for inkwell.
// Precedence, lowest to highest: built-in defaults, inkwell.yaml,
// INKWELL_ environment variables, command-line flags.
package config

import (
	"io"
	"log/slog"
)

// Defaults for config values.
const (
	// DefaultOutputDir is where rendered documents are written.
	DefaultOutputDir = "out"

	// DefaultDevice is the backend used when none is configured.
	DefaultDevice = "svg"
)

// Config holds the resolved CLI configuration.
type Config struct {
	// OutputDir is the directory rendered documents are written to.
	OutputDir string `koanf:"output_dir"`

	// Device selects the backend by registered name.
	Device string `koanf:"device"`

	// Indent is the serializer indentation unit (backend default if empty).
	Indent string `koanf:"indent"`

	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`

	// DeferUnresolved keeps unresolved animation registers as
	// placeholders in the output instead of failing the compile.
	DeferUnresolved bool `koanf:"defer_unresolved"`

	// Registers supplies animation-register values by name.
	Registers map[string]string `koanf:"registers"`
}

// NewLogger creates the CLI logger. Verbose lowers the level to debug.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
