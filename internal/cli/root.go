// Package cli defines the command-line interface for cryspack.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cryspack/internal/config"
	"github.com/katalvlaran/cryspack/internal/logging"
)

// Options stores global CLI options shared between commands.
type Options struct {
	Settings config.Settings
	LogLevel string
	Logger   *slog.Logger
}

// Execute loads environment defaults, builds the root command and
// runs it with the provided args and logger.
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}

	settings, err := config.Load()
	if err != nil {
		return err
	}

	opts := &Options{
		Settings: settings,
		LogLevel: settings.LogLevel,
		Logger:   logger,
	}

	rootCmd := newRootCommand(opts)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

// newRootCommand constructs the root cobra.Command with global flags and subcommands.
func newRootCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cryspack",
		Short: "cryspack searches for optimal 2D crystal packings",
		Long: "cryspack runs Monte-Carlo simulated annealing over molecular " +
			"crystal structures constrained by a wallpaper group, maximising " +
			"either the packing fraction of hard shapes or the interaction " +
			"energy of soft ones.",
		PersistentPreRun: func(*cobra.Command, []string) {
			opts.Logger = logging.NewLogger(os.Stderr, logging.ParseLevel(opts.LogLevel))
		},
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", opts.LogLevel,
		"Log verbosity: debug, info, warn or error")

	cmd.AddCommand(newOptimiseCommand(opts))
	cmd.AddCommand(newServeCommand(opts))

	return cmd
}
