/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Design: PersistentPreRunE validates global flags and resolves the scan
// root before any subcommand runs, so commands can assume Root() is valid.
// Audit logging is opened for the whole process lifetime, gated on the
// log.enabled config key, and closed on exit.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/jpl-au/sift/internal/config"
	"github.com/jpl-au/sift/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sift",
	Short: "Regex search and refactor across text files",
	Long:  `Search a directory tree with regular expressions and rewrite matches in place, with context filtering, capture group templates, and dry-run previews.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		info, err := os.Stat(Root())
		if err != nil {
			return fmt.Errorf("root %s: %w", Root(), err)
		}
		if !info.IsDir() {
			return fmt.Errorf("root %s is not a directory", Root())
		}

		// Tag audit log entries with the project being operated on
		if abs, err := filepath.Abs(Root()); err == nil {
			log.SetProject(abs)
		}
		return nil
	},
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, executes the command, and exits with code 1 on error.
func Execute() {
	// Initialise audit logger unless log.enabled is false (warn if it
	// fails, but continue). An unreadable config falls back to logging
	// on; the command itself surfaces the config error.
	cfg, err := config.Load()
	if err != nil || cfg.LogEnabled() {
		if err := log.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
		}
	}
	defer log.Close()

	if err := rootCmd.Execute(); err != nil {
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
