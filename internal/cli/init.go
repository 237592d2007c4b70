package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gotplfmt/internal/configloader"
	"github.com/yaklabco/gotplfmt/internal/logging"
	"github.com/yaklabco/gotplfmt/pkg/config"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force   bool
	profile string
	output  string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gotplfmt configuration file",
		Long: `Create a new .gotplfmt.yaml configuration file in the current
directory with the tool's defaults. Edit the file to change the
template dialect, indentation, or attribute thresholds.

Examples:
  gotplfmt init                     Create .gotplfmt.yaml
  gotplfmt init --profile django    Preselect the Django dialect
  gotplfmt init --output custom.yaml  Write to a custom file path`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVar(&flags.profile, "profile", "",
		"template dialect to preselect: html, django, jinja, nunjucks, handlebars, golang")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .gotplfmt.yaml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.FromContext(cmd.Context())

	if flags.profile != "" && !configloader.IsValidProfile(flags.profile) {
		return fmt.Errorf("unknown profile %q", flags.profile)
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".gotplfmt.yaml"
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil && !flags.force {
		if !isInteractive() {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		overwrite, err := promptOverwrite(outputPath)
		if err != nil {
			return err
		}
		if !overwrite {
			logger.Info("keeping existing file", logging.FieldPath, outputPath)
			return nil
		}
	}

	cfg := config.NewConfig()
	if flags.profile != "" {
		cfg.Profile = flags.profile
	}

	if err := configloader.WriteConfig(cfg, absPath); err != nil {
		return err
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'gotplfmt rules' to see all available lint rules")

	return nil
}

// promptOverwrite asks the user whether to replace an existing file.
func promptOverwrite(path string) (bool, error) {
	if _, err := os.Stdout.WriteString("File " + path + " already exists\n"); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}
	if _, err := os.Stdout.WriteString("Overwrite? [y/N] "); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read response: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// isInteractive returns true if stdin is a terminal.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
