// Package cli provides the Cobra command structure for gotplfmt.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gotplfmt/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gotplfmt command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "gotplfmt",
		Short: "A fast, template-aware HTML source formatter",
		Long: `gotplfmt formats HTML template sources: Django, Jinja, Nunjucks,
Handlebars, and Go html/template, plus plain HTML.

It re-indents nested markup and template blocks, breaks long attribute
sections onto aligned lines, reformats set-assignments and call
expressions, and can lift inline style attributes into generated CSS
classes. A small lint mode flags structural problems such as orphaned
tags.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newCSSCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
