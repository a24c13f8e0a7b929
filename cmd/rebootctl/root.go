package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joshuapare/rebootkit/internal/config"
	"github.com/joshuapare/rebootkit/pkg/pending"
	"github.com/joshuapare/rebootkit/pkg/types"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	noColor    bool
	configPath string
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
)

var rootCmd = &cobra.Command{
	Use:   "rebootctl",
	Short: "Schedule file moves/deletes and volatile registry keys for the next reboot",
	Long: `rebootctl schedules filesystem mutations to run during the next boot
sequence using the Windows pending file rename mechanism, and creates
volatile registry keys that disappear at logoff or shutdown.

All commands require an elevated (administrator) process.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: user config dir)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		var terr *types.Error
		if errors.As(err, &terr) && terr.Code != 0 {
			os.Exit(terr.Code)
		}
		os.Exit(1)
	}
}

// newClient loads the config file and assembles the pending-operations
// client with a stderr logger.
func newClient() (*pending.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if noColor {
		color.NoColor = true
	}
	return pending.New(pending.Config{
		Log:         newLogger(cfg.Logging),
		ExitOnError: cfg.ExitOnError,
	}), nil
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	if !cfg.Enabled || quiet {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// printSuccess prints a success message if not in quiet mode
func printSuccess(format string, args ...interface{}) {
	if !quiet {
		successColor.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	errorColor.Fprintf(os.Stderr, "Error: "+format, args...)
}
