package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gotplfmt/internal/logging"
	"github.com/yaklabco/gotplfmt/pkg/config"
	"github.com/yaklabco/gotplfmt/pkg/lint"
	_ "github.com/yaklabco/gotplfmt/pkg/lint/rules" // Register built-in rules
	"github.com/yaklabco/gotplfmt/pkg/runner"
)

// ErrLintIssuesFound is returned when lint issues are found.
var ErrLintIssuesFound = errors.New("lint issues found")

type lintFlags struct {
	format  string
	ignore  []string
	disable []string
}

func newLintCommand() *cobra.Command {
	var cfg config.Config
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint HTML template files",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, &cfg, flags)
		},
	}

	addLintFlags(cmd, &cfg, flags)

	return cmd
}

const lintLongDescription = `Lint HTML template files for structural problems.

Linting never modifies files. Findings can be suppressed inline with
"gotplfmt:off" / "gotplfmt:on" spans or per-line "gotplfmt:ignore"
comments.

Examples:
  gotplfmt lint                     # Lint current directory
  gotplfmt lint templates/          # Lint a directory
  gotplfmt lint --disable T025      # Skip the orphan tag rule
  gotplfmt lint --format json       # Output as JSON for CI`

func runLint(cmd *cobra.Command, args []string, cfg *config.Config, flags *lintFlags) error {
	logger := logging.FromContext(cmd.Context())

	cfg.Format = config.OutputFormat(flags.format)
	cfg.Ignore = flags.ignore
	cfg.DisableRules = flags.disable

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	finalCfg, workDir, err := loadConfiguration(cmd, cfg)
	if err != nil {
		return err
	}

	profile, err := config.Compile(finalCfg)
	if err != nil {
		return errors.Join(errors.New("invalid configuration"), err)
	}

	engine := lint.NewEngine(lint.DefaultRegistry)
	lintRunner := runner.New(nil, engine)

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		Mode:         runner.ModeLint,
		Profile:      profile,
	}

	logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := lintRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("lint run failed"), err)
	}

	if err := reportResult(cmd, result, finalCfg, workDir); err != nil {
		return err
	}

	if ExitCodeFromResult(result, false) != ExitSuccess {
		return ErrLintIssuesFound
	}

	return nil
}

func addLintFlags(cmd *cobra.Command, cfg *config.Config, flags *lintFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringVar(&cfg.Profile, "profile", "",
		"template dialect: html, django, jinja, nunjucks, handlebars, golang")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule codes or names to disable")
}
