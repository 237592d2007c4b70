// Package main is the entry point for the gotplfmt CLI.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/yaklabco/gotplfmt/internal/cli"
	"github.com/yaklabco/gotplfmt/internal/logging"

	// Import rules package to register built-in rules via init().
	_ "github.com/yaklabco/gotplfmt/pkg/lint/rules"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)
	ctx := logging.WithLogger(context.Background(), logging.Default())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// ErrLintIssuesFound and ErrChangesFound are exit code signals,
		// not failures worth logging.
		if !errors.Is(err, cli.ErrLintIssuesFound) && !errors.Is(err, cli.ErrChangesFound) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return 1
	}

	return 0
}
