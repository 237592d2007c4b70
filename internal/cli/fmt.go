package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gotplfmt/internal/configloader"
	"github.com/yaklabco/gotplfmt/internal/logging"
	"github.com/yaklabco/gotplfmt/pkg/config"
	"github.com/yaklabco/gotplfmt/pkg/css"
	"github.com/yaklabco/gotplfmt/pkg/format"
	"github.com/yaklabco/gotplfmt/pkg/fsutil"
	"github.com/yaklabco/gotplfmt/pkg/reporter"
	"github.com/yaklabco/gotplfmt/pkg/runner"
)

// ErrChangesFound is returned in check mode when files would be reformatted.
var ErrChangesFound = errors.New("files would be reformatted")

type fmtFlags struct {
	check     bool
	backup    bool
	noCSSFile bool
	ignore    []string
}

func newFmtCommand() *cobra.Command {
	var cfg config.Config
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Format HTML template files",
		Long:  fmtLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, &cfg, flags)
		},
	}

	addFmtFlags(cmd, &cfg, flags)

	return cmd
}

const fmtLongDescription = `Format HTML template files in place.

By default, formats all template files in the current directory and
subdirectories. Specify paths to format specific files or directories.

Inline style attributes are replaced by generated classes; the
corresponding CSS rules are appended to the configured CSS file.

Examples:
  gotplfmt fmt                      # Format current directory
  gotplfmt fmt templates/           # Format a directory
  gotplfmt fmt index.html           # Format a single file
  gotplfmt fmt --check              # Report files that would change
  gotplfmt fmt --profile django     # Use Django template patterns
  gotplfmt fmt --backup             # Keep a sidecar copy of each file`

func runFmt(cmd *cobra.Command, args []string, cfg *config.Config, flags *fmtFlags) error {
	logger := logging.FromContext(cmd.Context())

	cfg.Check = flags.check
	cfg.Ignore = flags.ignore

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

	logger.Debug("configuration loaded",
		logging.FieldProfile, profile.Name,
		logging.FieldCheck, finalCfg.Check,
		logging.FieldJobs, finalCfg.Jobs,
		logging.FieldCSSFile, finalCfg.CSSFilePath,
	)

	session := format.NewSession()
	fmtRunner := runner.New(session, nil)

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		Mode:         runner.ModeFormat,
		Check:        finalCfg.Check,
		Backup:       flags.backup,
		Profile:      profile,
	}

	result, err := fmtRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("format run failed"), err)
	}

	if !finalCfg.Check && !flags.noCSSFile {
		if err := writeCSSFile(ctx, workDir, finalCfg.CSSFilePath, session); err != nil {
			return fmt.Errorf("write css file: %w", err)
		}
	}

	if err := reportResult(cmd, result, finalCfg, workDir); err != nil {
		return err
	}

	logger.Debug("format run complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesChanged, result.Stats.FilesChanged,
	)

	if result.HasErrors() {
		return errors.New("errors occurred while formatting")
	}
	if finalCfg.Check && result.HasChanges() {
		return ErrChangesFound
	}
	return nil
}

// writeCSSFile appends the session's minted CSS rules to the configured
// CSS file, deduplicating equivalent rules already present.
func writeCSSFile(ctx context.Context, workDir, path string, session *format.Session) error {
	rules := session.Rules()
	if len(rules) == 0 {
		return nil
	}
	if path == "" {
		path = config.NewConfig().CSSFilePath
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}

	existing := ""
	if content, err := os.ReadFile(path); err == nil {
		existing = string(content)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read %s: %w", path, err)
	}

	combined := existing
	if combined != "" && !strings.HasSuffix(combined, "\n") {
		combined += "\n"
	}
	combined += css.Render(rules)
	combined = css.Dedupe(combined)

	// Dedupe may fold every new rule into existing ones; skip the
	// write when nothing changed.
	if _, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte(combined), fsutil.DefaultFileMode); err != nil {
		return err
	}
	return nil
}

// reportResult renders a run result with the reporter selected by config.
func reportResult(cmd *cobra.Command, result *runner.Result, cfg *config.Config, workDir string) error {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	outFormat, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      outFormat,
		Color:       colorMode,
		ShowSummary: true,
		Check:       cfg.Check,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(cmd.Context(), result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}
	return nil
}

// loadConfiguration resolves the merged configuration for a command,
// layering the CLI config on top of discovered config files and the
// environment.
func loadConfiguration(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, string, error) {
	logger := logging.FromContext(cmd.Context())

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, "", errors.Join(errors.New("failed to load configuration"), err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	return loadResult.Config, workDir, nil
}

func addFmtFlags(cmd *cobra.Command, cfg *config.Config, flags *fmtFlags) {
	cmd.Flags().BoolVar(&flags.check, "check", false, "report files that would change without writing")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep a sidecar copy of each rewritten file")
	cmd.Flags().StringVar(&cfg.Profile, "profile", "",
		"template dialect: html, django, jinja, nunjucks, handlebars, golang")
	cmd.Flags().IntVar(&cfg.IndentSize, "indent", 0, "indentation width (default 4)")
	cmd.Flags().IntVar(&cfg.MaxLineLength, "max-line-length", 0,
		"target maximum line length for reflowed expressions (default 120)")
	cmd.Flags().IntVar(&cfg.MaxAttributeLength, "max-attribute-length", 0,
		"attribute length at which tags break onto multiple lines (default 70)")
	cmd.Flags().BoolVar(&cfg.FormatAttributeTemplateTags, "format-attribute-template-tags", false,
		"re-indent template tags inside attribute values")
	cmd.Flags().BoolVar(&cfg.NoSetFormatting, "no-set-formatting", false,
		"disable set-assignment reformatting")
	cmd.Flags().BoolVar(&cfg.NoFunctionFormatting, "no-function-formatting", false,
		"disable call-expression reformatting")
	cmd.Flags().BoolVar(&cfg.PreserveBlankLines, "preserve-blank-lines", false,
		"keep blank lines in output")
	cmd.Flags().BoolVar(&cfg.PreserveLeadingSpace, "preserve-leading-space", false,
		"leave text-line indentation unmodified")
	cmd.Flags().StringVar(&cfg.CSSFilePath, "css-file", "",
		"path for generated CSS rules (default gotplfmt.css)")
	cmd.Flags().BoolVar(&flags.noCSSFile, "no-css-file", false,
		"do not write generated CSS rules to disk")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
}
