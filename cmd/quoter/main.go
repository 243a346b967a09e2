// Package main provides the quoter CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/quoter-cli/quoter/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// jsonOutput controls whether to emit machine-readable JSON instead of
	// human-readable text
	jsonOutput bool
	verbose    bool
	colorMode  string
	storeFile  string

	logger = zap.NewNop()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quoter",
	Short: "Local quote manager",
	Long: `quoter is a CLI for collecting and recalling quotes.

Quotes are stored with authors and stable integer IDs in a local JSON
file. quoter can add, query, list, search and deduplicate them, show a
random quote of the day, pull quotes from a remote quote API, and keep
its own installation up to date via git.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The config file's color setting applies unless the flag was
		// given explicitly.
		if !cmd.Root().PersistentFlags().Changed("color") {
			if cfg, err := config.Load(); err == nil && cfg.Color != "" {
				colorMode = cfg.Color
			}
		}
		if err := applyColorMode(colorMode); err != nil {
			return err
		}

		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Use JSON output instead of human-readable text")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Increase verbosity")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "Color text output: always, never or auto")
	rootCmd.PersistentFlags().StringVar(&storeFile, "file", "", "Quotes file (overrides config)")
	rootCmd.Version = Version
}

// applyColorMode forces or suppresses colored output. In auto mode the
// terminal is left to decide.
func applyColorMode(mode string) error {
	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "auto", "":
	default:
		return fmt.Errorf("invalid --color value %q (want always, never or auto)", mode)
	}
	return nil
}
