// Package cli provides the command-line interface for inkwell.
package cli

import (
	"fmt"
	"os"

	"github.com/inkstack-labs/inkwell/internal/cli/commands"
	"github.com/inkstack-labs/inkwell/internal/cli/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "inkwell",
		Short: "Inkwell - Vector Graphics Compiler",
		Long: `Inkwell authors vector-graphics documents as instruction logs and
compiles them through pluggable device backends into serialized output,
such as SVG documents.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			var err error
			cfg, err = config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
			cmd.SetContext(config.WithLogger(cmd.Context(), logger))

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./inkwell.yaml)")
	rootCmd.PersistentFlags().StringP("device", "d", "", "Device backend to compile with (default: svg)")
	rootCmd.PersistentFlags().String("output-dir", "", "Directory to write rendered documents to")
	rootCmd.PersistentFlags().String("indent", "", "Serializer indentation unit")
	rootCmd.PersistentFlags().Bool("defer-unresolved", true, "Keep unresolved animation registers as placeholders")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewRenderCommand())
	rootCmd.AddCommand(commands.NewDumpCommand())
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewDevicesCommand())

	return rootCmd
}
