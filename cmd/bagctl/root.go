package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/blockbag/cmd/bagctl/logger"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool

	cfg      config
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "bagctl",
	Short: "Simulate block bag withdrawals and deposits against an inventory",
	Long: `bagctl applies a script of block placements and removals to an
inventory fixture through the block bag allocator, the way a world-editing
session would, and reports which materials ran out or did not fit.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = loadConfig(); err != nil {
			return err
		}
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		closeLog, err = logger.Init(logger.Options{
			Enabled: verbose || cfg.LogFile != "",
			Path:    cfg.LogFile,
			Level:   level,
		})
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
