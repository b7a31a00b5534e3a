// Package commands implements the inkwell CLI subcommands.
package commands

import (
	"github.com/inkstack-labs/inkwell/internal/cli/config"
	"github.com/inkstack-labs/inkwell/pkg/device"
)

// getConfig returns the loaded CLI config, falling back to defaults when
// no Load has run (direct command construction in tests).
func getConfig() *config.Config {
	if c := config.GetCurrentConfig(); c != nil {
		return c
	}
	return &config.Config{
		OutputDir:       config.DefaultOutputDir,
		Device:          config.DefaultDevice,
		DeferUnresolved: true,
	}
}

// deviceConfig maps CLI config onto the backend config.
func deviceConfig(cfg *config.Config) device.Config {
	return device.Config{
		Type:            cfg.Device,
		Registers:       cfg.Registers,
		DeferUnresolved: cfg.DeferUnresolved,
		Indent:          cfg.Indent,
	}
}

// outputExt returns the file extension for a device's output.
func outputExt(deviceType string) string {
	if deviceType == "svg" {
		return ".svg"
	}
	return ".out"
}
